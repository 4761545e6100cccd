package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/sigurn/crc16"

	"github.com/virtual-maker/fastiow/iowkit"
)

type I2CScanCmd struct {
}

func (l *I2CScanCmd) Run(c *Context) error {
	if err := c.iow.I2C.Enable(); err != nil {
		return err
	}
	defer c.iow.I2C.Disable()

	fmt.Printf("Detected I2C devices:\r\n   ")
	for i := 0; i < 16; i++ {
		fmt.Printf("%02X ", i)
	}
	for i := byte(0); i < 0x80; i++ {
		if i&15 == 0 {
			fmt.Printf("\r\n%02x ", i)
		}

		err := c.iow.I2C.WriteBytes(i, nil)
		switch err {
		case nil:
			fmt.Printf("%02X ", i)
		case iowkit.ErrorTransferFailed:
			fmt.Printf("-- ")
		default:
			return err
		}
	}
	fmt.Println()
	return nil
}

type I2CTransferCmd struct {
	Addr int `arg name:"addr" help:"I2C device address" type:"hex"`

	Write string `optional help:"Hex string to write to device"`
	Read  int    `optional help:"Number of bytes to read back"`
}

func (l *I2CTransferCmd) Run(c *Context) error {
	wrBuf, err := hex.DecodeString(l.Write)
	if err != nil {
		return err
	}

	if err := c.iow.I2C.Enable(); err != nil {
		return err
	}
	defer c.iow.I2C.Disable()

	if len(wrBuf) > 0 {
		if err := c.iow.I2C.WriteBytes(byte(l.Addr), wrBuf); err != nil {
			return err
		}
	}

	if l.Read > 0 {
		rdBuf, err := c.iow.I2C.ReadBytes(byte(l.Addr), l.Read)
		if err != nil {
			return err
		}
		fmt.Println(hexdump(0, rdBuf, nil))
	}

	return nil
}

type I2CDumpCmd struct {
	Addr   int `arg name:"addr" help:"I2C EEPROM address" type:"hex"`
	Amount int `arg name:"amount" help:"Number of bytes to dump." optional default:"256"`
}

func (l *I2CDumpCmd) Run(c *Context) error {
	if l.Amount <= 0 {
		return errors.New("Amount must be positive")
	}

	if err := c.iow.I2C.Enable(); err != nil {
		return err
	}
	defer c.iow.I2C.Disable()

	// Reset the EEPROM read pointer to 0, then read sequentially.
	if err := c.iow.I2C.WriteBytes(byte(l.Addr), []byte{0}); err != nil {
		return err
	}

	var dump []byte
	for len(dump) < l.Amount {
		n := l.Amount - len(dump)
		if n > iowkit.I2CMaxPayload {
			n = iowkit.I2CMaxPayload
		}

		buf, err := c.iow.I2C.ReadBytes(byte(l.Addr), n)
		if err != nil {
			return err
		}
		dump = append(dump, buf...)
	}

	fmt.Println(hexdump(0, dump, nil))

	crcTab := crc16.MakeTable(crc16.CRC16_XMODEM)
	fmt.Printf("CRC16/XMODEM: %04x\n", crc16.Checksum(dump, crcTab))
	return nil
}
