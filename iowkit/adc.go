package iowkit

import "encoding/binary"

// ADCChannels selects how many ADC channels to sample. Channels are always
// activated from index 0 upwards; the defined values mirror the hardware's
// channel grouping.
type ADCChannels byte

const (
	ADCChannel0    ADCChannels = 1
	ADCChannel0To1 ADCChannels = 2
	ADCChannel0To3 ADCChannels = 4
	ADCChannel0To7 ADCChannels = 8
)

func (ch ADCChannels) valid() bool {
	switch ch {
	case ADCChannel0, ADCChannel0To1, ADCChannel0To3, ADCChannel0To7:
		return true
	}
	return false
}

// ADC is the analog-to-digital interface of a connection. Samples are
// normalized to [0,1) against the model's resolution (12 bit on the
// IOWarrior28, 14 bit on the IOWarrior56) so callers stay model agnostic.
type ADC struct {
	iow      *IOW
	enabled  bool
	channels int
}

func (m *ADC) setupLocked(channels int) error {
	c := m.iow

	out := newReport(c.desc.ADCPipe, c.desc.SpecialReportSize)
	out.Data[0] = reportIDADCSetup
	if channels > 0 {
		out.Data[1] = 0x01
		out.Data[2] = byte(channels)
		copy(out.Data[3:], c.desc.adcSetupExtra)
	}
	return c.writeLocked(out)
}

// Enable activates sampling on channels 0..n-1. A request for more channels
// than the model has is clamped to the hardware maximum, best effort within
// hardware limits. An enabled interface is disabled first, so Enable is
// always a clean transition.
func (m *ADC) Enable(channels ADCChannels) error {
	if !channels.valid() {
		return ErrorInvalidChannels
	}

	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	max := c.desc.MaxADCChannels()
	if max == 0 {
		return ErrorNotAvailable
	}

	if m.enabled {
		if err := m.setupLocked(0); err != nil {
			return err
		}
		m.enabled = false
		m.channels = 0
	}

	n := int(channels)
	if n > max {
		c.logf(1, "Clamping ADC channel request %d to %d", n, max)
		n = max
	}

	if err := m.setupLocked(n); err != nil {
		return err
	}
	m.enabled = true
	m.channels = n
	return nil
}

// Disable stops sampling. Disabling an already disabled interface does
// nothing, not even a transport write.
func (m *ADC) Disable() error {
	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.enabled {
		return nil
	}
	if err := m.setupLocked(0); err != nil {
		return err
	}
	m.enabled = false
	m.channels = 0
	return nil
}

// Enabled reports whether the interface is currently enabled.
func (m *ADC) Enabled() bool {
	m.iow.mu.Lock()
	defer m.iow.mu.Unlock()
	return m.enabled
}

// AnalogRead blocks for the next sample report and returns the pin's value
// normalized to [0,1). The pin must map to a channel below the enabled
// count. A report with the wrong leading tag means the transport stream
// lost sync; that is unrecoverable at this layer and surfaces as
// ErrorInvalidResponse.
func (m *ADC) AnalogRead(pin int) (float64, error) {
	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.enabled {
		return 0, ErrorNotEnabled
	}

	ch := c.desc.ADCChannel(pin)
	if ch < 0 || ch >= m.channels {
		return 0, ErrorChannelNotActive
	}

	in, err := c.readLocked(c.desc.ADCPipe)
	if err != nil {
		return 0, err
	}
	if in.Data[0] != reportIDADCRead {
		return 0, ErrorInvalidResponse
	}

	offset := c.desc.ADCSampleOffset + 2*ch
	raw := binary.LittleEndian.Uint16(in.Data[offset:])
	return float64(raw) / float64(c.desc.ADCMaxCode), nil
}
