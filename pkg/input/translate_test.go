package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fnHeld returns a keyboard session with the FN latch set through a
// macro report, the only way the latch can change.
func fnHeld(t *testing.T) *Session {
	t.Helper()
	s := NewSession(KeyboardInterface)
	require.True(t, s.HandleRawReport(rawReport(0x04, 0x01)))
	return s
}

func TestTranslateKeyFnLayer(t *testing.T) {
	s := fnHeld(t)

	cases := []struct {
		name string
		code uint16
		want uint16
	}{
		{"mute", KeyF1, KeyMute},
		{"volume down", KeyF2, KeyVolumeDown},
		{"volume up", KeyF3, KeyVolumeUp},
		{"previous song", KeyF5, KeyPreviousSong},
		{"play pause", KeyF6, KeyPlayPause},
		{"next song", KeyF7, KeyNextSong},
		{"macro record", KeyF9, KeyMacroRecord},
		{"game mode", KeyF10, KeyGameMode},
		{"brightness down", KeyF11, KeyBrightnessDown},
		{"brightness up", KeyF12, KeyBrightnessUp},
		{"sleep", KeyPause, KeySleep},
		{"calculator", KeyKPEnter, KeyCalc},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action, code := s.TranslateKey(tc.code)
			assert.Equal(t, Substitute, action)
			assert.Equal(t, tc.want, code)
		})
	}
}

func TestTranslateKeyUnmatchedPassesThrough(t *testing.T) {
	s := fnHeld(t)

	// F4 and F8 carry no FN binding on this hardware.
	for _, code := range []uint16{KeyF4, KeyF8, KeyF13} {
		action, out := s.TranslateKey(code)
		assert.Equal(t, PassThrough, action)
		assert.Equal(t, code, out)
	}
}

func TestTranslateKeyFnUp(t *testing.T) {
	s := NewSession(KeyboardInterface)

	action, out := s.TranslateKey(KeyF1)
	assert.Equal(t, PassThrough, action)
	assert.Equal(t, KeyF1, out)
}

func TestTranslateKeyPointerInterface(t *testing.T) {
	s := NewSession(PointerInterface)
	s.fnOn = true

	action, out := s.TranslateKey(KeyF1)
	assert.Equal(t, PassThrough, action)
	assert.Equal(t, KeyF1, out)
}

func TestFindTranslation(t *testing.T) {
	table := []Translation{
		{From: KeyF1, To: KeyMute},
		{From: KeyF2, Block: true},
		{},
		{From: KeyF3, To: KeyVolumeUp}, // unreachable past the sentinel
	}

	assert.Equal(t, KeyMute, findTranslation(table, KeyF1).To)
	assert.True(t, findTranslation(table, KeyF2).Block)
	assert.Nil(t, findTranslation(table, KeyF3))
	assert.Nil(t, findTranslation(table, KeyF4))
}

func TestTranslateKeyBlock(t *testing.T) {
	s := fnHeld(t)

	orig := fnKeys
	t.Cleanup(func() { fnKeys = orig })
	fnKeys = []Translation{
		{From: KeyF1, Block: true},
		{},
	}

	action, out := s.TranslateKey(KeyF1)
	assert.Equal(t, Suppress, action)
	assert.Equal(t, uint16(0), out)
}
