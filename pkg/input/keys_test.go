package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKeys(t *testing.T) {
	assert.Nil(t, DecodeKeys(rawReport(0x04, 0x01, 0x20)), "unrewritten macro report")
	assert.Nil(t, DecodeKeys([]byte{0x01}), "truncated report")
	assert.Empty(t, DecodeKeys(rawReport(0x01)), "all keys up")

	keys := DecodeKeys(rawReport(0x01, 0x00, 0x00, 0x68, 0x3A))
	assert.Equal(t, []byte{0x68, 0x3A}, keys)
}

func TestKeyCode(t *testing.T) {
	cases := []struct {
		usage byte
		want  uint16
	}{
		{0x3A, KeyF1},
		{0x45, KeyF12},
		{0x68, KeyF13},
		{0x6C, KeyF17},
		{0x48, KeyPause},
		{0x58, KeyKPEnter},
	}
	for _, tc := range cases {
		code, ok := KeyCode(tc.usage)
		require.True(t, ok, "usage %#x", tc.usage)
		assert.Equal(t, tc.want, code, "usage %#x", tc.usage)
	}

	_, ok := KeyCode(0x04) // letter A, outside the handled set
	assert.False(t, ok)
}

func TestMacroReportRoundTrip(t *testing.T) {
	// FN + M2 through the whole path: rewrite, decode, translate.
	s := NewSession(KeyboardInterface)
	data := rawReport(0x04, 0x01, 0x21)
	require.True(t, s.HandleRawReport(data))

	keys := DecodeKeys(data)
	require.Equal(t, []byte{0x69}, keys)

	code, ok := KeyCode(keys[0])
	require.True(t, ok)
	assert.Equal(t, KeyF14, code)

	// F14 has no FN binding, so it reaches the host as itself.
	action, out := s.TranslateKey(code)
	assert.Equal(t, PassThrough, action)
	assert.Equal(t, KeyF14, out)
}
