package iowkit

// SPI is the SPI master interface of the IOWarrior56. Its pins are
// multiplexed with the second PWM channel, so the two interfaces refuse to
// be enabled at the same time.
type SPI struct {
	iow     *IOW
	enabled bool
}

func (m *SPI) setupLocked(enable bool) error {
	c := m.iow

	out := newReport(PipeSpecialMode, c.desc.SpecialReportSize)
	out.Data[0] = reportIDSPISetup
	if enable {
		out.Data[1] = 0x01
	}
	return c.writeLocked(out)
}

// Enable claims the SPI pins. Fails with ErrorInterfaceInUse while PWM runs
// with both channels selected.
func (m *SPI) Enable() error {
	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.desc.SPISupported {
		return ErrorNotAvailable
	}
	if m.enabled {
		return nil
	}
	if c.PWM.enabled && c.PWM.channels > 1 {
		return ErrorInterfaceInUse
	}

	if err := m.setupLocked(true); err != nil {
		return err
	}
	m.enabled = true
	return nil
}

// Disable releases the SPI pins. Disabling an already disabled interface
// does nothing, not even a transport write.
func (m *SPI) Disable() error {
	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.enabled {
		return nil
	}
	if err := m.setupLocked(false); err != nil {
		return err
	}
	m.enabled = false
	return nil
}

// Enabled reports whether the interface is currently enabled.
func (m *SPI) Enabled() bool {
	m.iow.mu.Lock()
	defer m.iow.mu.Unlock()
	return m.enabled
}

// TransferBytes clocks data out while capturing the same number of bytes
// from the slave, as one report exchange. The payload has to fit one
// special report after the three header bytes.
func (m *SPI) TransferBytes(data []byte) ([]byte, error) {
	c := m.iow

	if len(data) > c.desc.SpecialReportSize-3 {
		return nil, ErrorInvalidLength
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.enabled {
		return nil, ErrorNotEnabled
	}

	out := newReport(PipeSpecialMode, c.desc.SpecialReportSize)
	out.Data[0] = reportIDSPIXfer
	out.Data[1] = byte(len(data))
	copy(out.Data[3:], data)

	in, err := c.exchangeLocked(out, PipeSpecialMode)
	if err != nil {
		return nil, err
	}
	if in.Data[0] != reportIDSPIXfer {
		return nil, ErrorInvalidResponse
	}

	result := make([]byte, len(data))
	copy(result, in.Data[2:2+len(data)])
	return result, nil
}
