package gohid

// HIDDevice is one open HID interface. IO-Warrior devices expose one HID
// interface per pipe, each moving fixed-size interrupt reports.
type HIDDevice interface {
	// Write sends one output report.
	Write(b []byte) (int, error)

	// Read blocks until one input report arrived.
	Read(b []byte) (int, error)

	// ReadNonBlocking returns immediately. A return of 0 bytes means no
	// report was waiting; b is untouched in that case.
	ReadNonBlocking(b []byte) (int, error)

	Close() error
}

func OpenHID(path string) (HIDDevice, error) {
	return openHIDInternal(path)
}
