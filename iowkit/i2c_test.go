package iowkit

import (
	"bytes"
	"testing"
)

func enableI2C(t *testing.T, c *IOW) {
	t.Helper()
	if err := c.I2C.Enable(); err != nil {
		t.Fatalf("I2C.Enable: %v", err)
	}
}

func TestI2CEnableFrame(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)
	before := len(f.writesOn(PipeSpecialMode))

	enableI2C(t, c)
	if !c.I2C.Enabled() {
		t.Error("Enabled() = false after Enable")
	}

	writes := f.writesOn(PipeSpecialMode)[before:]
	if len(writes) != 1 {
		t.Fatalf("Enable issued %d writes, want 1", len(writes))
	}
	want := []byte{0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(writes[0].Data, want) {
		t.Errorf("setup report = %x, want %x", writes[0].Data, want)
	}

	// Enabling again is a no-op.
	enableI2C(t, c)
	if n := len(f.writesOn(PipeSpecialMode)[before:]); n != 1 {
		t.Errorf("second Enable raised the write count to %d", n)
	}
}

func TestI2CDisableIdempotent(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)
	before := len(f.writes)

	if err := c.I2C.Disable(); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	if len(f.writes) != before {
		t.Error("disabling a disabled interface touched the transport")
	}

	enableI2C(t, c)
	if err := c.I2C.Disable(); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	last := f.writes[len(f.writes)-1]
	want := []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(last.Data, want) {
		t.Errorf("disable report = %x, want %x", last.Data, want)
	}
	if c.I2C.Enabled() {
		t.Error("Enabled() = true after Disable")
	}
}

func TestI2CWriteBytesFrame(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)
	enableI2C(t, c)
	before := len(f.writes)

	f.script(PipeSpecialMode, []byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	if err := c.I2C.WriteBytes(0x50, []byte{0xDE, 0xAD}); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}

	writes := f.writes[before:]
	if len(writes) != 1 {
		t.Fatalf("WriteBytes issued %d writes, want 1", len(writes))
	}
	// Start+stop, length 3 (address + 2 data), address shifted for write.
	want := []byte{0x02, 0xC3, 0xA0, 0xDE, 0xAD, 0x00, 0x00, 0x00}
	if !bytes.Equal(writes[0].Data, want) {
		t.Errorf("write report = %x, want %x", writes[0].Data, want)
	}
}

func TestI2CWriteBytesNack(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)
	enableI2C(t, c)

	f.script(PipeSpecialMode, []byte{0x02, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	if err := c.I2C.WriteBytes(0x50, nil); err != ErrorTransferFailed {
		t.Errorf("WriteBytes = %v, want ErrorTransferFailed", err)
	}
}

func TestI2CValidationBeforeTransport(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)
	enableI2C(t, c)
	before := len(f.writes)

	if err := c.I2C.WriteBytes(0x85, nil); err != ErrorInvalidAddress {
		t.Errorf("WriteBytes(0x85) = %v, want ErrorInvalidAddress", err)
	}
	if err := c.I2C.WriteBytes(0x50, make([]byte, 7)); err != ErrorInvalidLength {
		t.Errorf("WriteBytes(7 bytes) = %v, want ErrorInvalidLength", err)
	}
	if _, err := c.I2C.ReadBytes(0x90, 2); err != ErrorInvalidAddress {
		t.Errorf("ReadBytes(0x90) = %v, want ErrorInvalidAddress", err)
	}
	if _, err := c.I2C.ReadBytes(0x50, 7); err != ErrorInvalidLength {
		t.Errorf("ReadBytes(7) = %v, want ErrorInvalidLength", err)
	}

	if len(f.writes) != before {
		t.Errorf("rejected requests reached the transport (%d writes)", len(f.writes)-before)
	}
}

func TestI2CNotEnabled(t *testing.T) {
	c, _ := newTestIOW(t, 0x1500, 0x1010)

	if err := c.I2C.WriteBytes(0x50, nil); err != ErrorNotEnabled {
		t.Errorf("WriteBytes = %v, want ErrorNotEnabled", err)
	}
	if _, err := c.I2C.ReadBytes(0x50, 1); err != ErrorNotEnabled {
		t.Errorf("ReadBytes = %v, want ErrorNotEnabled", err)
	}
}

func TestI2CReadBytes(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)
	enableI2C(t, c)
	before := len(f.writes)

	f.script(PipeSpecialMode, []byte{0x03, 0x02, 0xBE, 0xEF, 0x00, 0x00, 0x00, 0x00})
	data, err := c.I2C.ReadBytes(0x50, 2)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(data, []byte{0xBE, 0xEF}) {
		t.Errorf("data = %x, want beef", data)
	}

	writes := f.writes[before:]
	if len(writes) != 1 {
		t.Fatalf("ReadBytes issued %d writes, want 1", len(writes))
	}
	want := []byte{0x03, 0x02, 0xA1, 0x02, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(writes[0].Data, want) {
		t.Errorf("read request = %x, want %x", writes[0].Data, want)
	}
}

func TestI2CRead2Bytes(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)
	enableI2C(t, c)

	f.script(PipeSpecialMode, []byte{0x03, 0x02, 0x12, 0x34, 0x00, 0x00, 0x00, 0x00})
	v, err := c.I2C.Read2Bytes(0x48)
	if err != nil {
		t.Fatalf("Read2Bytes: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("value = 0x%04x, want 0x1234", v)
	}
}

func TestI2CDedicatedPipe(t *testing.T) {
	c, f := newTestIOW(t, 0x1504, 0x1010)
	enableI2C(t, c)

	writes := f.writesOn(PipeI2CMode)
	if len(writes) != 1 {
		t.Fatalf("Enable wrote %d reports on the I2C pipe, want 1", len(writes))
	}
	if writes[0].Data[0] != 0x01 || writes[0].Data[1] != 0x01 {
		t.Errorf("setup header = %x", writes[0].Data[:2])
	}
	if len(writes[0].Data) != 64 {
		t.Errorf("setup report size = %d, want 64", len(writes[0].Data))
	}
}
