package iowkit

// VendorID is the USB vendor id of Code Mercenaries, shared by all
// IO-Warrior devices.
const VendorID = 0x07C0

// Descriptor holds the static per-model constants. All protocol framing is
// driven from this table so the interface code stays model agnostic.
type Descriptor struct {
	Name      string
	ProductID uint16

	StandardReportSize int
	SpecialReportSize  int

	Pipes   []Pipe
	I2CPipe Pipe

	// Valid digital pins are PinLow..PinHigh in the global numbering where
	// pin p lives in report byte p/8, bit p%8. Group 0 is the report header,
	// so PinLow is always at least 8.
	PinLow  int
	PinHigh int

	// ADC. AnalogPins lists the analog capable pins in channel order; an
	// empty slice means the model has no ADC.
	ADCPipe         Pipe
	AnalogPins      []int
	ADCMaxCode      uint16
	ADCSampleOffset int
	adcSetupExtra   []byte

	// PWM. Zero PWMPins means no PWM. PWMMinRevision gates the interface as
	// a whole, PWM2MinRevision gates the second channel.
	PWMPins         []int
	PWMMinRevision  uint16
	PWM2MinRevision uint16

	// SPI master support. The SPI pins are multiplexed with the second PWM
	// channel, which is why the two interfaces exclude each other.
	SPISupported bool
}

var descriptors = []*Descriptor{
	{
		Name:               "IOWarrior40",
		ProductID:          0x1500,
		StandardReportSize: 5,
		SpecialReportSize:  8,
		Pipes:              []Pipe{PipeIOPins, PipeSpecialMode},
		I2CPipe:            PipeSpecialMode,
		PinLow:             8,
		PinHigh:            39,
	},
	{
		Name:               "IOWarrior24",
		ProductID:          0x1501,
		StandardReportSize: 3,
		SpecialReportSize:  8,
		Pipes:              []Pipe{PipeIOPins, PipeSpecialMode},
		I2CPipe:            PipeSpecialMode,
		PinLow:             8,
		PinHigh:            23,
	},
	{
		Name:               "IOWarrior56",
		ProductID:          0x1503,
		StandardReportSize: 8,
		SpecialReportSize:  64,
		Pipes:              []Pipe{PipeIOPins, PipeSpecialMode},
		I2CPipe:            PipeSpecialMode,
		PinLow:             8,
		PinHigh:            63,

		ADCPipe:         PipeSpecialMode,
		AnalogPins:      []int{8, 9, 10, 11, 12, 13, 14, 15},
		ADCMaxCode:      16383,
		ADCSampleOffset: 2,
		adcSetupExtra:   []byte{adcRangeSingleEnded},

		PWMPins:         []int{56, 57},
		PWMMinRevision:  0x1030,
		PWM2MinRevision: 0x1031,

		SPISupported: true,
	},
	{
		Name:               "IOWarrior28",
		ProductID:          0x1504,
		StandardReportSize: 5,
		SpecialReportSize:  64,
		Pipes:              []Pipe{PipeIOPins, PipeSpecialMode, PipeI2CMode, PipeADCMode},
		I2CPipe:            PipeI2CMode,
		PinLow:             8,
		PinHigh:            25,

		ADCPipe:         PipeADCMode,
		AnalogPins:      []int{8, 9, 10, 11},
		ADCMaxCode:      4095,
		ADCSampleOffset: 1,
		adcSetupExtra:   []byte{adcContinuousSampling, adcSampleRate1kHz},
	},
}

// DescriptorByProductID looks up the descriptor for a USB product id.
// Returns nil for products that are not IO-Warrior devices.
func DescriptorByProductID(productID uint16) *Descriptor {
	for _, d := range descriptors {
		if d.ProductID == productID {
			return d
		}
	}
	return nil
}

// SupportedProductIDs lists the product ids this package can drive.
func SupportedProductIDs() []uint16 {
	ids := make([]uint16, len(descriptors))
	for i, d := range descriptors {
		ids[i] = d.ProductID
	}
	return ids
}

// HasPipe reports whether the model exposes the given pipe.
func (d *Descriptor) HasPipe(pipe Pipe) bool {
	for _, p := range d.Pipes {
		if p == pipe {
			return true
		}
	}
	return false
}

// ReportSize returns the report size of the pipe's size class.
func (d *Descriptor) ReportSize(pipe Pipe) int {
	if pipe.IsSpecial() {
		return d.SpecialReportSize
	}
	return d.StandardReportSize
}

// IsValidPin reports whether p is a usable digital pin on this model.
func (d *Descriptor) IsValidPin(p int) bool {
	return p >= d.PinLow && p <= d.PinHigh
}

// ADCChannel returns the ADC channel index of a pin, or -1 if the pin has
// no ADC channel on this model.
func (d *Descriptor) ADCChannel(pin int) int {
	for ch, p := range d.AnalogPins {
		if p == pin {
			return ch
		}
	}
	return -1
}

// PWMChannel returns the PWM channel index of a pin, or -1 if the pin has
// no PWM channel on this model.
func (d *Descriptor) PWMChannel(pin int) int {
	for ch, p := range d.PWMPins {
		if p == pin {
			return ch
		}
	}
	return -1
}

// MaxADCChannels returns the number of ADC channels the model has.
func (d *Descriptor) MaxADCChannels() int {
	return len(d.AnalogPins)
}

// MaxPWMChannels returns the number of PWM channels the model has.
func (d *Descriptor) MaxPWMChannels() int {
	return len(d.PWMPins)
}
