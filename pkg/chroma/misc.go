package chroma

import (
	"github.com/openchroma/chromakbd/internal/protocol"
)

// FnKeyToggle controls whether the F-row needs FN held to emit function
// keys (Blade keyboards).
func FnKeyToggle(q Quirks, enabled byte) *protocol.Report {
	r := newCommand(q, classMisc, 0x06, 0x02)
	r.Arguments[1] = enabled
	return r
}

// SetBladeBrightness sets the panel backlight on Blade laptops, which
// store brightness behind a misc command instead of an LED register.
func SetBladeBrightness(q Quirks, brightness byte) *protocol.Report {
	r := newCommand(q, classBlade, 0x04, 0x02)
	r.Arguments[0] = 0x01
	r.Arguments[1] = brightness
	return r
}

func GetBladeBrightness(q Quirks) *protocol.Report {
	r := newCommand(q, classBlade, 0x84, 0x02)
	r.Arguments[0] = 0x01
	return r
}

// SetMacroLEDEffect toggles the macro LED between static and blinking.
// Extended-family models apply this volatilely no matter what store the
// caller asked for.
func SetMacroLEDEffect(q Quirks, store, effect byte) *protocol.Report {
	if q.Extended {
		store = NoStore
	}
	return SetLEDEffect(q, store, MacroLED, effect)
}
