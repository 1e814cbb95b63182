package chroma

import (
	"github.com/openchroma/chromakbd/internal/protocol"
)

// Command classes of the standard encoding family.
const (
	classInfo     byte = 0x00
	classMisc     byte = 0x02
	classLED      byte = 0x03
	classBlade    byte = 0x0E
	classExtended byte = 0x0F
)

// newCommand builds a base record and stamps it with the model
// transaction id from the resolved quirks.
func newCommand(q Quirks, class, id, size byte) *protocol.Report {
	r := protocol.NewReport(class, id, size)
	r.TransactionID = q.TransactionID
	return r
}

// SetLEDState enables or disables a single LED.
func SetLEDState(q Quirks, store, led, enabled byte) *protocol.Report {
	r := newCommand(q, classLED, 0x00, 0x03)
	r.Arguments[0] = store
	r.Arguments[1] = led
	r.Arguments[2] = enabled
	return r
}

// GetLEDState queries a single LED; the state is echoed in the third
// argument byte of the response.
func GetLEDState(q Quirks, store, led byte) *protocol.Report {
	r := newCommand(q, classLED, 0x80, 0x03)
	r.Arguments[0] = store
	r.Arguments[1] = led
	return r
}

// SetLEDRGB assigns a color to a single LED.
func SetLEDRGB(q Quirks, store, led, red, green, blue byte) *protocol.Report {
	r := newCommand(q, classLED, 0x01, 0x05)
	r.Arguments[0] = store
	r.Arguments[1] = led
	r.Arguments[2] = red
	r.Arguments[3] = green
	r.Arguments[4] = blue
	return r
}

// SetLEDEffect selects the effect of a single LED (static, blinking,
// pulsate, spectrum).
func SetLEDEffect(q Quirks, store, led, effect byte) *protocol.Report {
	r := newCommand(q, classLED, 0x02, 0x03)
	r.Arguments[0] = store
	r.Arguments[1] = led
	r.Arguments[2] = effect
	return r
}

func GetLEDEffect(q Quirks, store, led byte) *protocol.Report {
	r := newCommand(q, classLED, 0x82, 0x03)
	r.Arguments[0] = store
	r.Arguments[1] = led
	return r
}

// SetLEDBrightness sets the brightness register of a single LED.
func SetLEDBrightness(q Quirks, store, led, brightness byte) *protocol.Report {
	r := newCommand(q, classLED, 0x03, 0x03)
	r.Arguments[0] = store
	r.Arguments[1] = led
	r.Arguments[2] = brightness
	return r
}

func GetLEDBrightness(q Quirks, store, led byte) *protocol.Report {
	r := newCommand(q, classLED, 0x83, 0x03)
	r.Arguments[0] = store
	r.Arguments[1] = led
	return r
}

// SetDeviceMode switches the device between regular and driver mode.
func SetDeviceMode(q Quirks, mode, param byte) *protocol.Report {
	r := newCommand(q, classInfo, 0x04, 0x02)
	r.Arguments[0] = mode
	r.Arguments[1] = param
	return r
}

func GetDeviceMode(q Quirks) *protocol.Report {
	return newCommand(q, classInfo, 0x84, 0x02)
}

// GetSerial requests the device serial number; the response carries up to
// 22 ASCII bytes in the argument area.
func GetSerial(q Quirks) *protocol.Report {
	return newCommand(q, classInfo, 0x82, 0x16)
}

// GetFirmwareVersion requests the firmware version as two bytes
// (major, minor).
func GetFirmwareVersion(q Quirks) *protocol.Report {
	return newCommand(q, classInfo, 0x81, 0x02)
}
