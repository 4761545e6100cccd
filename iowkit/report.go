package iowkit

// Report command/result tags. The tag is always byte 0 of the report; the
// same value is echoed back in the matching result report.
const (
	reportIDIOPins    byte = 0x00
	reportIDI2CSetup  byte = 0x01
	reportIDI2CWrite  byte = 0x02
	reportIDI2CRead   byte = 0x03
	reportIDSPISetup  byte = 0x08
	reportIDSPIXfer   byte = 0x09
	reportIDADCSetup  byte = 0x1C
	reportIDADCRead   byte = 0x1D
	reportIDPWMSetup  byte = 0x20
	reportIDGetStatus byte = 0xFF
)

// ADC setup trailer bytes. The IOW28 samples continuously at a fixed rate,
// the IOW56 instead takes a voltage range selector.
const (
	adcContinuousSampling byte = 0x01
	adcSampleRate1kHz     byte = 0x02
	adcRangeSingleEnded   byte = 0x00
)

// PWM master clock selector. 48 MHz with the period registers at 0xFFFF
// gives 48e6/65536, roughly 732 Hz, at full 16 bit duty resolution.
const pwmClock48MHz byte = 0x03

// Report is a fixed-size binary buffer exchanged over one pipe. The length
// is dictated by (pipe class, model) at creation and never changes.
type Report struct {
	Pipe Pipe
	Data []byte
}

func newReport(pipe Pipe, size int) Report {
	return Report{
		Pipe: pipe,
		Data: make([]byte, size),
	}
}
