package iowkit

import "errors"

var (
	ErrorUnknownDevice    = errors.New("Unsupported device found")
	ErrorDisconnected     = errors.New("Device is disconnected")
	ErrorInvalidPipe      = errors.New("Pipe is not supported by this device")
	ErrorInvalidPin       = errors.New("Pin is not valid on this device")
	ErrorPinNotDriven     = errors.New("Pin driver must be high to read it")
	ErrorNotEnabled       = errors.New("Interface is not enabled")
	ErrorInvalidAddress   = errors.New("Address is not a valid 7 bit I2C address")
	ErrorInvalidLength    = errors.New("Data length is not valid for this transfer")
	ErrorTransferFailed   = errors.New("Transfer was not acknowledged")
	ErrorInvalidChannels  = errors.New("Channel selection is not a defined value")
	ErrorChannelNotActive = errors.New("Channel is not active")
	ErrorNotPwmPin        = errors.New("Pin has no PWM channel")
	ErrorOldFirmware      = errors.New("Firmware revision is too old for this feature")
	ErrorInterfaceInUse   = errors.New("A conflicting interface is enabled")
	ErrorNotAvailable     = errors.New("This device does not have the requested interface")
	ErrorInvalidResponse  = errors.New("Received invalid response")
)
