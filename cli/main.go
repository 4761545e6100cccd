package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/sstallion/go-hid"

	"github.com/virtual-maker/fastiow/iowkit"
)

type Context struct {
	iow *iowkit.IOW
}

var CLI struct {
	VID      int    `optional type:"hex" help:"The USB Vendor ID." default:"7c0"`
	PID      int    `optional type:"hex" help:"The USB Product ID, omit to match any IO-Warrior."`
	Serial   string   `optional help:"The USB Serial."`
	RawPath  []string `optional help:"USB device paths, one per pipe in pipe order."`
	Revision int      `optional type:"hex" help:"Firmware revision override (pure GO HID only)."`
	LogLevel int      `optional help:"Higher values give more output."`
	Trace    bool     `optional help:"Trace raw reports on the transport."`

	ListDev ListHIDCmd `cmd help:"List devices."`

	PinSet PinSetCmd `cmd name:"pin-set" help:"Set a digital pin: pin=value (eg: 16=1)."`
	PinGet PinGetCmd `cmd name:"pin-get" help:"Read a digital pin."`

	I2CScan     I2CScanCmd     `cmd name:"i2c-scan" help:"Scan I2C bus and show discovered devices."`
	I2CTransfer I2CTransferCmd `cmd name:"i2c-txfr" help:"Perform I2C transfer."`
	I2CDump     I2CDumpCmd     `cmd name:"i2c-dump" help:"Dump an I2C EEPROM and print its checksum."`

	ADCRead    ADCReadCmd    `cmd name:"adc-read" help:"Sample one ADC pin."`
	ADCMonitor ADCMonitorCmd `cmd name:"adc-monitor" help:"Continuously show all ADC channels."`

	PWMSet PWMSetCmd `cmd name:"pwm-set" help:"Set the duty cycle of a PWM pin."`

	SPITransfer SPITransferCmd `cmd name:"spi-txfr" help:"Perform SPI transfer."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.NamedMapper("hex", intMapper{base: 16}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	hid.Init()
	defer hid.Exit()

	c := &Context{}
	if ctx.Command() != "list-dev" {
		log := logrus.New()
		if CLI.Trace {
			log.SetLevel(logrus.DebugLevel)
		}

		dev, err := OpenDevice(log)
		if err != nil {
			fmt.Println("Failed to open device", err)
			return
		}

		config := iowkit.Config{
			LogFunc: func(level int, format string, param ...interface{}) {
				if level > CLI.LogLevel {
					return
				}
				str := fmt.Sprintf(format, param...)
				fmt.Printf("IOW(%d): %s\n", level, str)
			},
		}

		c.iow, err = iowkit.New(dev, config)
		if err != nil {
			dev.Close()
			fmt.Println("Failed to create connection", err)
			return
		}
		defer c.iow.Close()
	}

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}
