//go:build linux
// +build linux

package gohid

import (
	"os"

	"golang.org/x/sys/unix"
)

type HIDRaw struct {
	dev *os.File
}

func openHIDInternal(path string) (HIDDevice, error) {
	dev, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	return &HIDRaw{
		dev: dev,
	}, nil
}

func (h *HIDRaw) Write(b []byte) (int, error) {
	return h.dev.Write(b)
}

func (h *HIDRaw) Read(b []byte) (int, error) {
	total := 0
	for total < len(b) {
		n, err := h.dev.Read(b[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (h *HIDRaw) ReadNonBlocking(b []byte) (int, error) {
	fds := []unix.PollFd{{
		Fd:     int32(h.dev.Fd()),
		Events: unix.POLLIN,
	}}

	n, err := unix.Poll(fds, 0)
	if err != nil {
		return 0, os.NewSyscallError("poll", err)
	}
	if n == 0 {
		return 0, nil
	}

	return h.Read(b)
}

func (h *HIDRaw) Close() error {
	return h.dev.Close()
}
