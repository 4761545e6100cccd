package iowkit

// Pipe identifies one of the logical communication channels a device
// exposes. Each pipe maps to a dedicated USB HID interface with the same
// number, and each pipe carries reports of exactly one size class.
type Pipe byte

const (
	// PipeIOPins carries the standard-size pin state reports.
	PipeIOPins Pipe = 0

	// PipeSpecialMode carries special-size reports for everything that is
	// not plain pin I/O. On most models I2C, ADC, PWM and SPI all run here.
	PipeSpecialMode Pipe = 1

	// PipeI2CMode is the dedicated I2C pipe of the IOWarrior28.
	PipeI2CMode Pipe = 2

	// PipeADCMode is the dedicated ADC pipe of the IOWarrior28.
	PipeADCMode Pipe = 3
)

func (p Pipe) String() string {
	switch p {
	case PipeIOPins:
		return "IOPins"
	case PipeSpecialMode:
		return "SpecialMode"
	case PipeI2CMode:
		return "I2CMode"
	case PipeADCMode:
		return "ADCMode"
	}
	return "Unknown"
}

// IsSpecial reports whether the pipe carries special-size reports. Only the
// IOPins pipe uses the standard report size.
func (p Pipe) IsSpecial() bool {
	return p != PipeIOPins
}
