//go:build !puregohid
// +build !puregohid

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/sstallion/go-hid"

	"github.com/virtual-maker/fastiow/gohid"
	"github.com/virtual-maker/fastiow/iowkit"
)

// hidPipe adapts a go-hid device to the gohid interface. A zero timeout
// read maps to hidapi's non-blocking hid_read_timeout.
type hidPipe struct {
	dev *hid.Device
}

func (h hidPipe) Write(b []byte) (int, error) { return h.dev.Write(b) }
func (h hidPipe) Read(b []byte) (int, error)  { return h.dev.Read(b) }
func (h hidPipe) ReadNonBlocking(b []byte) (int, error) {
	return h.dev.ReadWithTimeout(b, 0)
}
func (h hidPipe) Close() error { return h.dev.Close() }

func matchesFilter(info *hid.DeviceInfo) bool {
	if CLI.PID == 0 && iowkit.DescriptorByProductID(info.ProductID) == nil {
		return false
	}
	if CLI.Serial != "" && info.SerialNbr != CLI.Serial {
		return false
	}
	if len(CLI.RawPath) > 0 {
		for _, p := range CLI.RawPath {
			if info.Path == p {
				return true
			}
		}
		return false
	}
	return true
}

func SearchDevice(foundHandler func(info *hid.DeviceInfo) error) error {
	return hid.Enumerate(uint16(CLI.VID), uint16(CLI.PID), func(info *hid.DeviceInfo) error {
		if !matchesFilter(info) {
			return nil
		}
		return foundHandler(info)
	})
}

// OpenDevice picks the first matching device and opens one HID interface
// per pipe the model supports; the interface number is the pipe id.
func OpenDevice(log *logrus.Logger) (*iowkit.PipeSet, error) {
	var first *hid.DeviceInfo
	err := SearchDevice(func(info *hid.DeviceInfo) error {
		if first == nil {
			tmp := *info
			first = &tmp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, os.ErrNotExist
	}

	desc := iowkit.DescriptorByProductID(first.ProductID)
	if desc == nil {
		return nil, iowkit.ErrorUnknownDevice
	}

	pipes := make(map[iowkit.Pipe]gohid.HIDDevice)
	err = hid.Enumerate(first.VendorID, first.ProductID, func(info *hid.DeviceInfo) error {
		if info.SerialNbr != first.SerialNbr {
			return nil
		}

		pipe := iowkit.Pipe(info.InterfaceNbr)
		if !desc.HasPipe(pipe) {
			return nil
		}
		if _, ok := pipes[pipe]; ok {
			return nil
		}

		d, err := hid.OpenPath(info.Path)
		if err != nil {
			return err
		}
		pipes[pipe] = hidPipe{dev: d}
		return nil
	})
	if err != nil {
		for _, d := range pipes {
			d.Close()
		}
		return nil, err
	}

	return iowkit.NewPipeSet(first.ProductID, first.SerialNbr, first.ReleaseNbr, pipes, log), nil
}

type ListHIDCmd struct {
}

func (l *ListHIDCmd) Run(c *Context) error {
	return SearchDevice(func(info *hid.DeviceInfo) error {
		model := "unknown model"
		if desc := iowkit.DescriptorByProductID(info.ProductID); desc != nil {
			model = desc.Name
		}

		fmt.Printf("%s: ID %04x:%04x %s (%s)\n",
			info.Path, info.VendorID, info.ProductID, info.ProductStr, model)
		fmt.Printf("\tSerialNbr    %s\n", info.SerialNbr)
		fmt.Printf("\tReleaseNbr   %x.%x\n", info.ReleaseNbr>>8, info.ReleaseNbr&0xff)
		fmt.Printf("\tInterfaceNbr %d\n", info.InterfaceNbr)
		fmt.Println()

		return nil
	})
}
