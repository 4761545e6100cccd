package main

import (
	"github.com/virtual-maker/fastiow/iowkit"
)

type PWMSetCmd struct {
	Pin   int `arg name:"pin" help:"PWM pin to drive." type:"int"`
	Value int `arg name:"value" help:"Duty cycle, 0 to 65535." type:"int"`

	Channels int `optional help:"Number of PWM channels to enable." default:"1"`
}

func (l *PWMSetCmd) Run(c *Context) error {
	config := iowkit.PWMChannel1
	if l.Channels > 1 {
		config = iowkit.PWMChannel1To2
	}

	if err := c.iow.PWM.Enable(config); err != nil {
		return err
	}

	return c.iow.PWM.AnalogWrite(l.Pin, uint16(l.Value))
}
