package main

import (
	"encoding/hex"
	"fmt"
)

type SPITransferCmd struct {
	Data string `arg name:"data" help:"Hex string to clock out."`
}

func (l *SPITransferCmd) Run(c *Context) error {
	wrBuf, err := hex.DecodeString(l.Data)
	if err != nil {
		return err
	}

	if err := c.iow.SPI.Enable(); err != nil {
		return err
	}
	defer c.iow.SPI.Disable()

	rdBuf, err := c.iow.SPI.TransferBytes(wrBuf)
	if err != nil {
		return err
	}

	fmt.Println("SPI:", hex.EncodeToString(wrBuf), "->", hex.EncodeToString(rdBuf))
	return nil
}
