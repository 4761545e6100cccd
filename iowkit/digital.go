package iowkit

// Digital pin I/O lives directly on the connection. Pin p maps to byte
// p/8, bit p%8 of the IOPins report; byte 0 is the report header, so the
// first usable pin is 8.

func pinIndex(pin int) (int, byte) {
	return pin / 8, 1 << (uint(pin) % 8)
}

// DigitalWrite drives a pin high or low. The write mirror tracks the state
// already on the device; when the requested state matches, no report is
// sent at all.
func (c *IOW) DigitalWrite(pin int, high bool) error {
	if !c.desc.IsValidPin(pin) {
		return ErrorInvalidPin
	}
	idx, mask := pinIndex(pin)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return ErrorDisconnected
	}

	if (c.pinsWrite.Data[idx]&mask != 0) == high {
		return nil
	}
	c.pinsWrite.Data[idx] ^= mask
	c.pinsWrite.Data[0] = reportIDIOPins

	return c.writeLocked(c.pinsWrite)
}

// DigitalRead returns the sensed level of a pin. The pins are open drain:
// the output driver must be released (written high) before the input level
// means anything, otherwise ErrorPinNotDriven is returned.
//
// The read mirror is refreshed from the device only when a fresh IOPins
// report is already waiting; otherwise the last known state is returned.
// This keeps the call non-blocking at the price of possibly stale data.
func (c *IOW) DigitalRead(pin int) (bool, error) {
	if !c.desc.IsValidPin(pin) {
		return false, ErrorInvalidPin
	}
	idx, mask := pinIndex(pin)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return false, ErrorDisconnected
	}

	if c.pinsWrite.Data[idx]&mask == 0 {
		return false, ErrorPinNotDriven
	}

	r, fresh, err := c.readNonBlockingLocked(PipeIOPins)
	if err != nil {
		return false, err
	}
	if fresh {
		copy(c.pinsRead.Data[1:], r.Data[1:])
	}

	return c.pinsRead.Data[idx]&mask != 0, nil
}
