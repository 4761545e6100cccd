package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type PinSetCmd struct {
	Command string `arg name:"command" help:"Set value: pin=value (eg: 16=1)." type:"string"`
}

func (g *PinSetCmd) Run(c *Context) error {
	parts := strings.SplitN(g.Command, "=", 2)
	if len(parts) != 2 || parts[1] == "" {
		return errors.New("Invalid syntax")
	}

	pin, err := strconv.Atoi(parts[0])
	if err != nil {
		return err
	}

	return c.iow.DigitalWrite(pin, parts[1] != "0")
}

type PinGetCmd struct {
	Pin int `arg name:"pin" help:"Pin number to read." type:"int"`
}

func (g *PinGetCmd) Run(c *Context) error {
	value, err := c.iow.DigitalRead(g.Pin)
	if err != nil {
		return err
	}

	if value {
		fmt.Println(1)
	} else {
		fmt.Println(0)
	}
	return nil
}
