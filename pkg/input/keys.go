package input

// DecodeKeys extracts the active key usages from a rewritten keyboard
// report: every nonzero byte after the two-byte header. It is a minimal
// stand-in for the host's generic report parser, enough to drive
// TranslateKey from a raw capture.
func DecodeKeys(data []byte) []byte {
	if len(data) < 3 || data[0] != keyboardReportID {
		return nil
	}
	var keys []byte
	for _, v := range data[2:] {
		if v != 0x00 {
			keys = append(keys, v)
		}
	}
	return keys
}

// usageToCode maps HID keyboard usages to Linux event codes for the keys
// this driver handles.
var usageToCode = map[byte]uint16{
	0x3A: KeyF1, 0x3B: KeyF2, 0x3C: KeyF3, 0x3D: KeyF4,
	0x3E: KeyF5, 0x3F: KeyF6, 0x40: KeyF7, 0x41: KeyF8,
	0x42: KeyF9, 0x43: KeyF10, 0x44: KeyF11, 0x45: KeyF12,
	usageF13: KeyF13, usageF14: KeyF14, usageF15: KeyF15,
	usageF16: KeyF16, usageF17: KeyF17,
	0x48: KeyPause,
	0x58: KeyKPEnter,
}

// KeyCode translates a HID usage into its Linux event code.
func KeyCode(usage byte) (uint16, bool) {
	code, ok := usageToCode[usage]
	return code, ok
}
