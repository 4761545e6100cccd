package iowkit

import (
	"bytes"
	"testing"
)

func TestSPIEnableGating(t *testing.T) {
	c, _ := newTestIOW(t, 0x1504, 0x1010)
	if err := c.SPI.Enable(); err != ErrorNotAvailable {
		t.Errorf("Enable on IOW28 = %v, want ErrorNotAvailable", err)
	}

	c, _ = newTestIOW(t, 0x1503, 0x1031)
	if err := c.SPI.Enable(); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if !c.SPI.Enabled() {
		t.Error("Enabled() = false after Enable")
	}
}

func TestSPIAndPWM2ExcludeEachOther(t *testing.T) {
	c, _ := newTestIOW(t, 0x1503, 0x1031)

	if err := c.PWM.Enable(PWMChannel1To2); err != nil {
		t.Fatalf("PWM.Enable: %v", err)
	}
	if err := c.SPI.Enable(); err != ErrorInterfaceInUse {
		t.Errorf("SPI.Enable = %v, want ErrorInterfaceInUse", err)
	}

	if err := c.PWM.Disable(); err != nil {
		t.Fatalf("PWM.Disable: %v", err)
	}
	if err := c.SPI.Enable(); err != nil {
		t.Fatalf("SPI.Enable after PWM off: %v", err)
	}

	if err := c.PWM.Enable(PWMChannel1To2); err != ErrorInterfaceInUse {
		t.Errorf("PWM.Enable(1To2) = %v, want ErrorInterfaceInUse", err)
	}
	// The single channel does not touch the shared pins.
	if err := c.PWM.Enable(PWMChannel1); err != nil {
		t.Errorf("PWM.Enable(1) = %v", err)
	}
}

func TestSPITransferBytes(t *testing.T) {
	c, f := newTestIOW(t, 0x1503, 0x1031)

	if _, err := c.SPI.TransferBytes([]byte{1}); err != ErrorNotEnabled {
		t.Fatalf("TransferBytes before Enable = %v, want ErrorNotEnabled", err)
	}
	if err := c.SPI.Enable(); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	before := len(f.writes)

	resp := make([]byte, 64)
	resp[0] = 0x09
	resp[1] = 0x03
	copy(resp[2:], []byte{0xCA, 0xFE, 0x42})
	f.script(PipeSpecialMode, resp)

	got, err := c.SPI.TransferBytes([]byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("TransferBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0xCA, 0xFE, 0x42}) {
		t.Errorf("result = %x, want cafe42", got)
	}

	writes := f.writes[before:]
	if len(writes) != 1 {
		t.Fatalf("TransferBytes issued %d writes, want 1", len(writes))
	}
	r := writes[0].Data
	if r[0] != 0x09 || r[1] != 3 {
		t.Errorf("transfer header = %x, want 09 03", r[:2])
	}
	if !bytes.Equal(r[3:6], []byte{0x01, 0x02, 0x03}) {
		t.Errorf("payload = %x", r[3:6])
	}
}

func TestSPITransferBytesTooLong(t *testing.T) {
	c, f := newTestIOW(t, 0x1503, 0x1031)
	if err := c.SPI.Enable(); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	before := len(f.writes)

	if _, err := c.SPI.TransferBytes(make([]byte, 62)); err != ErrorInvalidLength {
		t.Errorf("TransferBytes(62) = %v, want ErrorInvalidLength", err)
	}
	if len(f.writes) != before {
		t.Error("rejected transfer touched the transport")
	}
}
