package iowkit

import (
	"encoding/hex"

	"github.com/sirupsen/logrus"

	"github.com/virtual-maker/fastiow/gohid"
)

// Transport moves raw reports between the host and one physical device. The
// connection is the only caller; interfaces never touch the transport.
//
// Read must block until a full report of len(buf) bytes arrived.
// ReadNonBlocking must return immediately; the bool reports whether buf was
// filled with fresh data. Identity (product id, serial, revision) comes from
// device enumeration, which is outside this package.
type Transport interface {
	Write(pipe Pipe, buf []byte) error
	Read(pipe Pipe, buf []byte) error
	ReadNonBlocking(pipe Pipe, buf []byte) (bool, error)

	ProductID() uint16
	SerialNumber() string
	Revision() uint16

	Close() error
}

// PipeSet is the gohid backed Transport. Every pipe of an IO-Warrior is a
// separate USB HID interface, so the set holds one open HID device per pipe.
type PipeSet struct {
	product  uint16
	serial   string
	revision uint16

	pipes map[Pipe]gohid.HIDDevice
	log   *logrus.Logger
}

// NewPipeSet builds a transport from already opened per-pipe HID devices.
// The logger is optional; when set, every report is traced at debug level.
func NewPipeSet(product uint16, serial string, revision uint16,
	pipes map[Pipe]gohid.HIDDevice, log *logrus.Logger) *PipeSet {
	return &PipeSet{
		product:  product,
		serial:   serial,
		revision: revision,
		pipes:    pipes,
		log:      log,
	}
}

func (s *PipeSet) device(pipe Pipe) (gohid.HIDDevice, error) {
	dev, ok := s.pipes[pipe]
	if !ok {
		return nil, ErrorInvalidPipe
	}
	return dev, nil
}

func (s *PipeSet) trace(dir string, pipe Pipe, buf []byte) {
	if s.log != nil {
		s.log.Debugf("%s %s %s", dir, pipe, hex.EncodeToString(buf))
	}
}

func (s *PipeSet) Write(pipe Pipe, buf []byte) error {
	dev, err := s.device(pipe)
	if err != nil {
		return err
	}

	s.trace("wr", pipe, buf)
	_, err = dev.Write(buf)
	return err
}

func (s *PipeSet) Read(pipe Pipe, buf []byte) error {
	dev, err := s.device(pipe)
	if err != nil {
		return err
	}

	if _, err := dev.Read(buf); err != nil {
		return err
	}

	s.trace("rd", pipe, buf)
	return nil
}

func (s *PipeSet) ReadNonBlocking(pipe Pipe, buf []byte) (bool, error) {
	dev, err := s.device(pipe)
	if err != nil {
		return false, err
	}

	n, err := dev.ReadNonBlocking(buf)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	s.trace("rn", pipe, buf)
	return true, nil
}

func (s *PipeSet) ProductID() uint16    { return s.product }
func (s *PipeSet) SerialNumber() string { return s.serial }
func (s *PipeSet) Revision() uint16     { return s.revision }

func (s *PipeSet) Close() error {
	var first error
	for _, dev := range s.pipes {
		if err := dev.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
