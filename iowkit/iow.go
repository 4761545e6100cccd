// Package iowkit implements the report protocol of the Code Mercenaries
// IO-Warrior USB I/O expanders. It turns the raw fixed-size reports the
// devices exchange over their HID pipes into typed interfaces: digital pin
// I/O on the connection itself, plus I2C, ADC, PWM and SPI modules that all
// share the connection's transaction lock.
package iowkit

import (
	"encoding/hex"
	"sync"
)

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	// LogFunc receives diagnostic output. Level 1 is lifecycle, level 3
	// traces every report. A nil LogFunc disables logging.
	LogFunc LogFunc
}

// IOW is one connection to a physical device. It owns the transport handle,
// the per-connection transaction lock and the mirrored pin state reports.
// The specialized interfaces are reachable through the exported fields and
// stay valid for the lifetime of the connection.
type IOW struct {
	dev    Transport
	desc   *Descriptor
	config Config

	serial   string
	revision uint16

	mu        sync.Mutex
	connected bool

	// Mirrors of the last written and last seen IOPins report. Byte 0 is
	// kept at 0x00 so the write mirror can be sent as-is to apply pins.
	pinsWrite Report
	pinsRead  Report

	I2C *I2C
	ADC *ADC
	PWM *PWM
	SPI *SPI
}

// New looks up the model of the device behind dev and prepares a connection
// for it. Construction reads the current pin state from the device so the
// mirrors start out matching the hardware.
func New(dev Transport, config Config) (*IOW, error) {
	desc := DescriptorByProductID(dev.ProductID())
	if desc == nil {
		return nil, ErrorUnknownDevice
	}

	c := &IOW{
		dev:       dev,
		desc:      desc,
		config:    config,
		serial:    dev.SerialNumber(),
		revision:  dev.Revision(),
		connected: true,
	}

	c.I2C = &I2C{iow: c}
	c.ADC = &ADC{iow: c}
	c.PWM = &PWM{iow: c}
	c.SPI = &SPI{iow: c}

	if err := c.seedPinState(); err != nil {
		return nil, err
	}

	if desc.MaxPWMChannels() > 0 {
		if err := c.PWM.init(); err != nil {
			return nil, err
		}
	}

	c.logf(1, "Detected %s, serial %s, revision %04x", desc.Name, c.serial, c.revision)
	return c, nil
}

// seedPinState asks the device for its current pin state (special mode
// command 0xFF) and seeds both mirrors from the answer. The command byte is
// cleared to 0x00 so the write mirror means "apply pins" when sent back.
func (c *IOW) seedPinState() error {
	out := newReport(PipeSpecialMode, c.desc.SpecialReportSize)
	out.Data[0] = reportIDGetStatus

	c.mu.Lock()
	defer c.mu.Unlock()

	in, err := c.exchangeLocked(out, PipeSpecialMode)
	if err != nil {
		return err
	}

	c.pinsWrite = newReport(PipeIOPins, c.desc.StandardReportSize)
	c.pinsRead = newReport(PipeIOPins, c.desc.StandardReportSize)
	copy(c.pinsWrite.Data[1:], in.Data[1:c.desc.StandardReportSize])
	copy(c.pinsRead.Data[1:], in.Data[1:c.desc.StandardReportSize])

	c.logf(1, "Pin state %s", hex.EncodeToString(c.pinsWrite.Data[1:]))
	return nil
}

func (c *IOW) logf(level int, format string, param ...interface{}) {
	if c.config.LogFunc != nil {
		c.config.LogFunc(level, format, param...)
	}
}

// Model returns the model name, e.g. "IOWarrior56".
func (c *IOW) Model() string { return c.desc.Name }

// SerialNumber returns the device serial as reported by the transport.
func (c *IOW) SerialNumber() string { return c.serial }

// Revision returns the BCD firmware revision, e.g. 0x1030 for 1.0.3.0.
func (c *IOW) Revision() uint16 { return c.revision }

// Descriptor returns the static model descriptor.
func (c *IOW) Descriptor() *Descriptor { return c.desc }

// Connected reports whether the connection is still usable. Once false it
// never becomes true again.
func (c *IOW) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Close marks the connection disconnected and releases the transport. Every
// later operation fails with ErrorDisconnected. Closing twice is harmless.
func (c *IOW) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	c.connected = false
	return c.dev.Close()
}

// NewReport returns a zero-filled report sized for the pipe on this model.
func (c *IOW) NewReport(pipe Pipe) (Report, error) {
	if !c.desc.HasPipe(pipe) {
		return Report{}, ErrorInvalidPipe
	}
	return newReport(pipe, c.desc.ReportSize(pipe)), nil
}

// WriteReport sends one report as a single transaction.
func (c *IOW) WriteReport(r Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(r)
}

// ReadReport blocks until one report arrived on the pipe.
func (c *IOW) ReadReport(pipe Pipe) (Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocked(pipe)
}

// ReadReportNonBlocking returns immediately. When the bool is false no
// fresh data was available and the returned report must be ignored.
func (c *IOW) ReadReportNonBlocking(pipe Pipe) (Report, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readNonBlockingLocked(pipe)
}

func (c *IOW) checkLocked(pipe Pipe) error {
	if !c.connected {
		return ErrorDisconnected
	}
	if !c.desc.HasPipe(pipe) {
		return ErrorInvalidPipe
	}
	return nil
}

func (c *IOW) writeLocked(r Report) error {
	if err := c.checkLocked(r.Pipe); err != nil {
		return err
	}

	c.logf(3, "Out %s: %s", r.Pipe, hex.EncodeToString(r.Data))
	return c.dev.Write(r.Pipe, r.Data)
}

func (c *IOW) readLocked(pipe Pipe) (Report, error) {
	if err := c.checkLocked(pipe); err != nil {
		return Report{}, err
	}

	r := newReport(pipe, c.desc.ReportSize(pipe))
	if err := c.dev.Read(pipe, r.Data); err != nil {
		return Report{}, err
	}

	c.logf(3, "In  %s: %s", pipe, hex.EncodeToString(r.Data))
	return r, nil
}

func (c *IOW) readNonBlockingLocked(pipe Pipe) (Report, bool, error) {
	if err := c.checkLocked(pipe); err != nil {
		return Report{}, false, err
	}

	r := newReport(pipe, c.desc.ReportSize(pipe))
	fresh, err := c.dev.ReadNonBlocking(pipe, r.Data)
	if err != nil || !fresh {
		return Report{}, false, err
	}

	c.logf(3, "In  %s: %s", pipe, hex.EncodeToString(r.Data))
	return r, true, nil
}

// exchangeLocked performs the write-then-read pair that most special mode
// commands need, as one critical section.
func (c *IOW) exchangeLocked(out Report, in Pipe) (Report, error) {
	if err := c.writeLocked(out); err != nil {
		return Report{}, err
	}
	return c.readLocked(in)
}
