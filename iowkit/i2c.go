package iowkit

import "encoding/binary"

// I2CMaxPayload is the largest number of data bytes one I2C report can
// carry. Longer transfers have to be split by the caller.
const I2CMaxPayload = 6

// i2cStartBit and i2cStopBit live in the flags/length byte of a write
// request. This layer always issues complete transactions, so both are set.
const (
	i2cStartBit byte = 0x80
	i2cStopBit  byte = 0x40
	i2cErrorBit byte = 0x80 // in byte 1 of the acknowledge report
)

// I2C is the I2C master interface of a connection. The device routes it
// over the model's I2C pipe; on the IOWarrior28 that is a dedicated pipe,
// everywhere else the special mode pipe.
type I2C struct {
	iow     *IOW
	enabled bool
}

func (m *I2C) setupLocked(enable bool) error {
	c := m.iow

	out := newReport(c.desc.I2CPipe, c.desc.SpecialReportSize)
	out.Data[0] = reportIDI2CSetup
	if enable {
		out.Data[1] = 0x01
	}
	return c.writeLocked(out)
}

// Enable switches the I2C unit on. The pins it uses stop being available
// for digital I/O until Disable.
func (m *I2C) Enable() error {
	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	if m.enabled {
		return nil
	}
	if err := m.setupLocked(true); err != nil {
		return err
	}
	m.enabled = true
	return nil
}

// Disable switches the I2C unit off. Disabling an already disabled
// interface does nothing, not even a transport write.
func (m *I2C) Disable() error {
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
func (m *I2C) Enabled() bool {
	m.iow.mu.Lock()
	defer m.iow.mu.Unlock()
	return m.enabled
}

// WriteBytes writes up to 6 data bytes to the 7 bit slave address as one
// transaction (start, address, data, stop). A NACK or bus failure surfaces
// as ErrorTransferFailed after the acknowledge report arrives.
func (m *I2C) WriteBytes(address byte, data []byte) error {
	if address&0x80 != 0 {
		return ErrorInvalidAddress
	}
	if len(data) > I2CMaxPayload {
		return ErrorInvalidLength
	}

	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.enabled {
		return ErrorNotEnabled
	}

	out := newReport(c.desc.I2CPipe, c.desc.SpecialReportSize)
	out.Data[0] = reportIDI2CWrite
	out.Data[1] = i2cStartBit | i2cStopBit | byte(1+len(data))
	out.Data[2] = address << 1
	copy(out.Data[3:], data)

	in, err := c.exchangeLocked(out, c.desc.I2CPipe)
	if err != nil {
		return err
	}
	if in.Data[1]&i2cErrorBit != 0 {
		return ErrorTransferFailed
	}
	return nil
}

// ReadBytes reads up to 6 bytes from the 7 bit slave address.
func (m *I2C) ReadBytes(address byte, length int) ([]byte, error) {
	if address&0x80 != 0 {
		return nil, ErrorInvalidAddress
	}
	if length < 0 || length > I2CMaxPayload {
		return nil, ErrorInvalidLength
	}

	c := m.iow
	c.mu.Lock()
	defer c.mu.Unlock()

	if !m.enabled {
		return nil, ErrorNotEnabled
	}

	out := newReport(c.desc.I2CPipe, c.desc.SpecialReportSize)
	out.Data[0] = reportIDI2CRead
	out.Data[1] = byte(length)
	out.Data[2] = address<<1 | 0x01
	out.Data[3] = byte(length)

	in, err := c.exchangeLocked(out, c.desc.I2CPipe)
	if err != nil {
		return nil, err
	}
	if in.Data[1]&i2cErrorBit != 0 {
		return nil, ErrorTransferFailed
	}

	data := make([]byte, length)
	copy(data, in.Data[2:2+length])
	return data, nil
}

// Read2Bytes reads two bytes and composes them big endian, the register
// byte order of most I2C sensors.
func (m *I2C) Read2Bytes(address byte) (uint16, error) {
	data, err := m.ReadBytes(address, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(data), nil
}
