package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/inancgumus/screen"

	"github.com/virtual-maker/fastiow/iowkit"
)

func adcChannelsFromCount(n int) (iowkit.ADCChannels, error) {
	switch {
	case n == 1:
		return iowkit.ADCChannel0, nil
	case n == 2:
		return iowkit.ADCChannel0To1, nil
	case n > 2 && n <= 4:
		return iowkit.ADCChannel0To3, nil
	case n > 4 && n <= 8:
		return iowkit.ADCChannel0To7, nil
	}
	return 0, errors.New("Channel count out of range")
}

type ADCReadCmd struct {
	Pin      int `arg name:"pin" help:"Analog pin to sample." type:"int"`
	Channels int `optional help:"Number of channels to enable." default:"8"`
}

func (l *ADCReadCmd) Run(c *Context) error {
	config, err := adcChannelsFromCount(l.Channels)
	if err != nil {
		return err
	}

	if err := c.iow.ADC.Enable(config); err != nil {
		return err
	}
	defer c.iow.ADC.Disable()

	value, err := c.iow.ADC.AnalogRead(l.Pin)
	if err != nil {
		return err
	}

	fmt.Printf("%.4f\n", value)
	return nil
}

type ADCMonitorCmd struct {
	Interval time.Duration `optional help:"Refresh interval." default:"200ms"`
}

func (l *ADCMonitorCmd) Run(c *Context) error {
	desc := c.iow.Descriptor()
	if desc.MaxADCChannels() == 0 {
		return iowkit.ErrorNotAvailable
	}

	// ADCChannel0To7 is clamped to the model maximum by Enable.
	if err := c.iow.ADC.Enable(iowkit.ADCChannel0To7); err != nil {
		return err
	}
	defer c.iow.ADC.Disable()

	for {
		startTime := time.Now()

		screen.Clear()
		screen.MoveTopLeft()
		fmt.Printf("%s ADC (%d channels)\n\n", c.iow.Model(), desc.MaxADCChannels())

		for ch, pin := range desc.AnalogPins {
			value, err := c.iow.ADC.AnalogRead(pin)
			if err != nil {
				return err
			}

			bar := int(value * 40)
			fmt.Printf("ch%d (pin %2d): %.4f |", ch, pin, value)
			for i := 0; i < 40; i++ {
				if i < bar {
					fmt.Print("#")
				} else {
					fmt.Print(" ")
				}
			}
			fmt.Println("|")
		}

		d := time.Now().Sub(startTime)
		if d < l.Interval {
			time.Sleep(l.Interval - d)
		}
	}
}
