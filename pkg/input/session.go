// Package input rewrites the keyboard's proprietary macro reports so the
// generic HID parser can decode them, and applies the FN-layer key
// translations to the decoded events.
package input

// RawReportLength is the fixed size of the vendor macro reports.
const RawReportLength = 16

// Report markers: macro reports arrive under the vendor id and are
// rewritten to look like a plain keyboard report.
const (
	macroReportID    byte = 0x04
	keyboardReportID byte = 0x01
)

// Key usages inside a macro report.
const (
	usageFN byte = 0x01
	usageM1 byte = 0x20
	usageM2 byte = 0x21
	usageM3 byte = 0x22
	usageM4 byte = 0x23
	usageM5 byte = 0x24

	usageF13 byte = 0x68
	usageF14 byte = 0x69
	usageF15 byte = 0x6A
	usageF16 byte = 0x6B
	usageF17 byte = 0x6C
)

// InterfaceKind identifies which of the device's USB interfaces a
// session is bound to.
type InterfaceKind int

const (
	// KeyboardInterface is the keyboard-protocol interface that carries
	// macro reports.
	KeyboardInterface InterfaceKind = iota
	// PointerInterface is the secondary interface; it carries no
	// keyboard semantics and is never touched.
	PointerInterface
)

// Session is the per-interface input state: one per bound keyboard, never
// shared across devices. The FN latch is written only by HandleRawReport
// and read only by TranslateKey, both on the same delivery path, so no
// locking is needed.
type Session struct {
	kind InterfaceKind
	fnOn bool
}

func NewSession(kind InterfaceKind) *Session {
	return &Session{kind: kind}
}

// FnOn reports whether the FN modifier was held in the last macro report.
func (s *Session) FnOn() bool { return s.fnOn }

// HandleRawReport rewrites a vendor macro report in place and reports
// whether the buffer was consumed. FN is blanked and latched, M1-M5
// become F13-F17, every surviving code shifts one slot right, and the
// header becomes the standard keyboard marker pair:
//
//	04 01 20 00 ...   FN held, M1 pressed
//	01 00 00 68 ...   after: FN blanked, M1 now F13
//
// Anything that is not a 16-byte macro report passes through untouched.
func (s *Session) HandleRawReport(data []byte) bool {
	if s.kind != KeyboardInterface || len(data) != RawReportLength || data[0] != macroReportID {
		return false
	}

	foundFN := false
	for i := len(data) - 2; i > 0; i-- {
		v := data[i]
		if v == 0x00 {
			continue
		}
		switch v {
		case usageFN:
			// FN must never reach the parser as a literal key code.
			v = 0x00
			foundFN = true
		case usageM1:
			v = usageF13
		case usageM2:
			v = usageF14
		case usageM3:
			v = usageF15
		case usageM4:
			v = usageF16
		case usageM5:
			v = usageF17
		}
		data[i+1] = v
	}

	s.fnOn = foundFN

	data[0] = keyboardReportID
	data[1] = 0x00
	return true
}
