package iowkit

import "encoding/binary"

// PWMChannels selects how many PWM channels to drive, starting at channel 1.
type PWMChannels byte

const (
	PWMChannel1    PWMChannels = 1
	PWMChannel1To2 PWMChannels = 2
)

func (ch PWMChannels) valid() bool {
	return ch == PWMChannel1 || ch == PWMChannel1To2
}

// Per-channel field offsets inside the setup report. Each channel occupies
// five bytes: period (LE), duty (LE), clock selector.
func pwmPeriodOffset(ch int) int { return 2 + 5*ch }
func pwmDutyOffset(ch int) int   { return 4 + 5*ch }
func pwmClockOffset(ch int) int  { return 6 + 5*ch }

// PWM is the pulse-width-modulation interface of a connection. The period
// registers are pinned at 0xFFFF on the 48 MHz master clock, giving a fixed
// output frequency near 732 Hz with the full 16 bit duty range.
//
// The interface is firmware gated: the IOWarrior56 needs revision 0x1030,
// and its second channel needs revision 0x1031 plus a disabled SPI
// interface, because the two share pins.
type PWM struct {
	iow      *IOW
	enabled  bool
	channels int
	setup    Report
}

func pwmSetupReport(c *IOW) Report {
	r := newReport(PipeSpecialMode, c.desc.SpecialReportSize)
	r.Data[0] = reportIDPWMSetup
	for ch := 0; ch < c.desc.MaxPWMChannels(); ch++ {
		binary.LittleEndian.PutUint16(r.Data[pwmPeriodOffset(ch):], 0xFFFF)
		r.Data[pwmClockOffset(ch)] = pwmClock48MHz
	}
	return r
}

// init builds the setup frame once and immediately disables the unit, so a
// fresh connection never has PWM output running.
func (m *PWM) init() error {
	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	m.setup = pwmSetupReport(c)
	return c.writeLocked(m.setup)
}

// PWMSupported probes whether the device accepts a PWM setup report. The
// probe selects no channels, so it does not change any output state. Some
// models lack the PWM unit entirely.
func PWMSupported(c *IOW) bool {
	if c.desc.MaxPWMChannels() == 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(pwmSetupReport(c)) == nil
}

// Enable starts driving the selected channels with zero amplitude.
func (m *PWM) Enable(channels PWMChannels) error {
	if !channels.valid() {
		return ErrorInvalidChannels
	}

	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.desc.MaxPWMChannels() == 0 {
		return ErrorNotAvailable
	}
	if c.revision < c.desc.PWMMinRevision {
		return ErrorOldFirmware
	}
	if channels == PWMChannel1To2 {
		if c.revision < c.desc.PWM2MinRevision {
			return ErrorOldFirmware
		}
		if c.SPI.enabled {
			return ErrorInterfaceInUse
		}
	}

	binary.LittleEndian.PutUint16(m.setup.Data[pwmDutyOffset(0):], 0)
	binary.LittleEndian.PutUint16(m.setup.Data[pwmDutyOffset(1):], 0)
	m.setup.Data[1] = byte(channels)

	if err := c.writeLocked(m.setup); err != nil {
		return err
	}
	m.enabled = true
	m.channels = int(channels)
	return nil
}

// Disable deselects all channels. Disabling an already disabled interface
// does nothing, not even a transport write.
func (m *PWM) Disable() error {
	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.enabled {
		return nil
	}

	m.setup.Data[1] = 0
	if err := c.writeLocked(m.setup); err != nil {
		return err
	}
	m.enabled = false
	m.channels = 0
	return nil
}

// Enabled reports whether the interface is currently enabled.
func (m *PWM) Enabled() bool {
	m.iow.mu.Lock()
	defer m.iow.mu.Unlock()
	return m.enabled
}

// AnalogWrite sets the duty cycle of the pin's channel to value/65536 of
// the fixed period.
func (m *PWM) AnalogWrite(pin int, value uint16) error {
	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.enabled {
		return ErrorNotEnabled
	}

	ch := c.desc.PWMChannel(pin)
	if ch < 0 {
		return ErrorNotPwmPin
	}
	if ch >= m.channels {
		return ErrorChannelNotActive
	}

	binary.LittleEndian.PutUint16(m.setup.Data[pwmDutyOffset(ch):], value)
	return c.writeLocked(m.setup)
}
