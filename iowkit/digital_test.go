package iowkit

import (
	"bytes"
	"testing"
)

func TestDigitalWriteInvalidPin(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)

	for _, pin := range []int{0, 7, 40} {
		if err := c.DigitalWrite(pin, true); err != ErrorInvalidPin {
			t.Errorf("DigitalWrite(%d) = %v, want ErrorInvalidPin", pin, err)
		}
	}
	if n := len(f.writesOn(PipeIOPins)); n != 0 {
		t.Errorf("invalid pins caused %d writes", n)
	}
}

func TestDigitalWriteFrame(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)

	// Seeded all high; driving pin 8 low must clear bit 0 of byte 1 and
	// send the apply-pins report.
	if err := c.DigitalWrite(8, false); err != nil {
		t.Fatalf("DigitalWrite: %v", err)
	}

	writes := f.writesOn(PipeIOPins)
	if len(writes) != 1 {
		t.Fatalf("got %d writes, want 1", len(writes))
	}
	want := []byte{0x00, 0xFE, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(writes[0].Data, want) {
		t.Errorf("report = %x, want %x", writes[0].Data, want)
	}
}

func TestDigitalWriteUnchangedIsNoTransaction(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)

	// Already high from the seed.
	if err := c.DigitalWrite(10, true); err != nil {
		t.Fatalf("DigitalWrite: %v", err)
	}
	if n := len(f.writesOn(PipeIOPins)); n != 0 {
		t.Fatalf("unchanged write caused %d transactions", n)
	}

	if err := c.DigitalWrite(10, false); err != nil {
		t.Fatalf("DigitalWrite: %v", err)
	}
	if err := c.DigitalWrite(10, false); err != nil {
		t.Fatalf("DigitalWrite: %v", err)
	}
	if n := len(f.writesOn(PipeIOPins)); n != 1 {
		t.Fatalf("repeated write caused %d transactions, want 1", n)
	}
}

func TestDigitalReadNotDriven(t *testing.T) {
	c, _ := newTestIOW(t, 0x1500, 0x1010)

	if err := c.DigitalWrite(12, false); err != nil {
		t.Fatalf("DigitalWrite: %v", err)
	}
	if _, err := c.DigitalRead(12); err != ErrorPinNotDriven {
		t.Errorf("DigitalRead = %v, want ErrorPinNotDriven", err)
	}
}

func TestDigitalReadStaleAndRefresh(t *testing.T) {
	c, f := newTestIOW(t, 0x1500, 0x1010)

	// No fresh report waiting: the seeded mirror (high) answers.
	v, err := c.DigitalRead(9)
	if err != nil {
		t.Fatalf("DigitalRead: %v", err)
	}
	if !v {
		t.Error("stale read = low, want high")
	}

	// A waiting report showing pin 9 low must replace the mirror.
	f.scriptNonBlocking(PipeIOPins, []byte{0x00, 0xFD, 0xFF, 0xFF, 0xFF})
	v, err = c.DigitalRead(9)
	if err != nil {
		t.Fatalf("DigitalRead: %v", err)
	}
	if v {
		t.Error("refreshed read = high, want low")
	}

	// And the replacement sticks for the next stale read.
	v, err = c.DigitalRead(9)
	if err != nil {
		t.Fatalf("DigitalRead: %v", err)
	}
	if v {
		t.Error("read after refresh = high, want low")
	}
}
