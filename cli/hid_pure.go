//go:build puregohid
// +build puregohid

package main

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/virtual-maker/fastiow/gohid"
	"github.com/virtual-maker/fastiow/iowkit"
)

// The pure GO build opens hidraw nodes directly and cannot enumerate, so
// the product id and one path per pipe have to be given on the command
// line, e.g. --pid 1504 --raw-path /dev/hidraw0 --raw-path /dev/hidraw1 ...
func OpenDevice(log *logrus.Logger) (*iowkit.PipeSet, error) {
	if CLI.PID == 0 || len(CLI.RawPath) == 0 {
		return nil, errors.New("PID and RawPath must be specified when using pure GO HID")
	}

	desc := iowkit.DescriptorByProductID(uint16(CLI.PID))
	if desc == nil {
		return nil, iowkit.ErrorUnknownDevice
	}

	pipes := make(map[iowkit.Pipe]gohid.HIDDevice)
	for i, path := range CLI.RawPath {
		dev, err := gohid.OpenHID(path)
		if err != nil {
			for _, d := range pipes {
				d.Close()
			}
			return nil, err
		}
		pipes[iowkit.Pipe(i)] = dev
	}

	return iowkit.NewPipeSet(uint16(CLI.PID), CLI.Serial, uint16(CLI.Revision), pipes, log), nil
}

type ListHIDCmd struct {
}

func (l *ListHIDCmd) Run(c *Context) error {
	return errors.New("This command is not supported using pure GO HID")
}
