package input

// Linux input event codes used by the translation layer.
const (
	KeyMute         uint16 = 113
	KeyVolumeDown   uint16 = 114
	KeyVolumeUp     uint16 = 115
	KeyNextSong     uint16 = 163
	KeyPlayPause    uint16 = 164
	KeyPreviousSong uint16 = 165
	KeySleep        uint16 = 142
	KeyCalc         uint16 = 140

	KeyF1  uint16 = 59
	KeyF2  uint16 = 60
	KeyF3  uint16 = 61
	KeyF4  uint16 = 62
	KeyF5  uint16 = 63
	KeyF6  uint16 = 64
	KeyF7  uint16 = 65
	KeyF8  uint16 = 66
	KeyF9  uint16 = 67
	KeyF10 uint16 = 68
	KeyF11 uint16 = 87
	KeyF12 uint16 = 88
	KeyF13 uint16 = 183
	KeyF14 uint16 = 184
	KeyF15 uint16 = 185
	KeyF16 uint16 = 186
	KeyF17 uint16 = 187

	KeyPause   uint16 = 119
	KeyKPEnter uint16 = 96

	// Dedicated keys emitted for the FN layer: macro record, game mode
	// and brightness. F18-F24 are free on this hardware.
	KeyMacroRecord    uint16 = 188 // F18
	KeyGameMode       uint16 = 189 // F19
	KeyBrightnessDown uint16 = 190 // F20
	KeyBrightnessUp   uint16 = 194 // F24
)

// Translation maps one decoded key code to another while FN is held.
// Block consumes the original event without emitting a replacement.
type Translation struct {
	From  uint16
	To    uint16
	Block bool
}

// fnKeys is the FN-layer table. Order matters: the scan stops at the
// first match or at the zero sentinel.
var fnKeys = []Translation{
	{From: KeyF1, To: KeyMute},
	{From: KeyF2, To: KeyVolumeDown},
	{From: KeyF3, To: KeyVolumeUp},

	{From: KeyF5, To: KeyPreviousSong},
	{From: KeyF6, To: KeyPlayPause},
	{From: KeyF7, To: KeyNextSong},

	{From: KeyF9, To: KeyMacroRecord},
	{From: KeyF10, To: KeyGameMode},
	{From: KeyF11, To: KeyBrightnessDown},
	{From: KeyF12, To: KeyBrightnessUp},

	{From: KeyPause, To: KeySleep},

	{From: KeyKPEnter, To: KeyCalc},
	{},
}

func findTranslation(table []Translation, from uint16) *Translation {
	for i := range table {
		if table[i].From == 0 {
			break
		}
		if table[i].From == from {
			return &table[i]
		}
	}
	return nil
}

// Action is the translator's verdict on one decoded key event.
type Action int

const (
	// PassThrough lets the host process the event unchanged.
	PassThrough Action = iota
	// Substitute emits one event with the replacement code, preserving
	// the original event's value and type.
	Substitute
	// Suppress consumes the event without emitting anything.
	Suppress
)

// TranslateKey is called once per decoded key event. Events on the
// pointer-class interface and events with FN up always pass through;
// otherwise the first table match wins and an unmatched code passes
// through with its original meaning.
func (s *Session) TranslateKey(code uint16) (Action, uint16) {
	if s.kind == PointerInterface || !s.fnOn {
		return PassThrough, code
	}
	t := findTranslation(fnKeys, code)
	if t == nil {
		return PassThrough, code
	}
	if t.Block {
		return Suppress, 0
	}
	return Substitute, t.To
}
