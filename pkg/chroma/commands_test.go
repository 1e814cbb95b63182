package chroma

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openchroma/chromakbd/internal/protocol"
)

func TestNewCommandStampsQuirkTag(t *testing.T) {
	cases := []struct {
		name string
		pid  uint16
		want byte
	}{
		{"default tag", DeviceBlackWidowChroma, protocol.DefaultTransactionID},
		{"ultimate 2016", DeviceBlackWidowUltimate2016, 0x80},
		{"stealth", DeviceBladeStealth, 0x80},
		{"ornata", DeviceOrnataChroma, 0x3F},
		{"unknown model", 0x7777, protocol.DefaultTransactionID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := GetSerial(LookupQuirks(tc.pid))
			assert.Equal(t, tc.want, r.TransactionID)
		})
	}
}

func TestSetLEDState(t *testing.T) {
	q := LookupQuirks(DeviceBlackWidowChroma)
	r := SetLEDState(q, VarStore, GameLED, 0x01)

	assert.Equal(t, byte(0x03), r.CommandClass)
	assert.Equal(t, byte(0x00), r.CommandID)
	assert.Equal(t, byte(0x03), r.DataSize)
	assert.Equal(t, []byte{VarStore, GameLED, 0x01}, r.Arguments[:3])
}

func TestSetLEDRGB(t *testing.T) {
	q := LookupQuirks(DeviceBlackWidowChroma)
	r := SetLEDRGB(q, NoStore, LogoLED, 0x11, 0x22, 0x33)

	assert.Equal(t, byte(0x03), r.CommandClass)
	assert.Equal(t, byte(0x01), r.CommandID)
	assert.Equal(t, byte(0x05), r.DataSize)
	assert.Equal(t, []byte{NoStore, LogoLED, 0x11, 0x22, 0x33}, r.Arguments[:5])
}

func TestDeviceModeCommands(t *testing.T) {
	q := LookupQuirks(DeviceBlackWidowChroma)

	set := SetDeviceMode(q, 0x03, 0x00)
	assert.Equal(t, byte(0x00), set.CommandClass)
	assert.Equal(t, byte(0x04), set.CommandID)
	assert.Equal(t, byte(0x02), set.DataSize)
	assert.Equal(t, byte(0x03), set.Arguments[0])

	get := GetDeviceMode(q)
	assert.Equal(t, byte(0x84), get.CommandID)
}

func TestInfoCommands(t *testing.T) {
	q := LookupQuirks(DeviceBlackWidowChroma)

	serial := GetSerial(q)
	assert.Equal(t, byte(0x00), serial.CommandClass)
	assert.Equal(t, byte(0x82), serial.CommandID)
	assert.Equal(t, byte(0x16), serial.DataSize)

	fw := GetFirmwareVersion(q)
	assert.Equal(t, byte(0x81), fw.CommandID)
	assert.Equal(t, byte(0x02), fw.DataSize)
}

func TestFnKeyToggle(t *testing.T) {
	q := LookupQuirks(DeviceBladeStealth)
	r := FnKeyToggle(q, 0x01)

	assert.Equal(t, byte(0x02), r.CommandClass)
	assert.Equal(t, byte(0x06), r.CommandID)
	assert.Equal(t, byte(0x00), r.Arguments[0])
	assert.Equal(t, byte(0x01), r.Arguments[1])
}

func TestBladeBrightness(t *testing.T) {
	q := LookupQuirks(DeviceBladeStealth)

	set := SetBladeBrightness(q, 0xC8)
	assert.Equal(t, byte(0x0E), set.CommandClass)
	assert.Equal(t, byte(0x04), set.CommandID)
	assert.Equal(t, []byte{0x01, 0xC8}, set.Arguments[:2])

	get := GetBladeBrightness(q)
	assert.Equal(t, byte(0x84), get.CommandID)
	assert.Equal(t, byte(0x01), get.Arguments[0])
}

func TestSetMacroLEDEffectForcesVolatileOnExtended(t *testing.T) {
	std := SetMacroLEDEffect(LookupQuirks(DeviceBlackWidowChroma), VarStore, LEDEffectBlinking)
	assert.Equal(t, VarStore, std.Arguments[0])

	ext := SetMacroLEDEffect(LookupQuirks(DeviceOrnataChroma), VarStore, LEDEffectBlinking)
	assert.Equal(t, NoStore, ext.Arguments[0])
	assert.Equal(t, MacroLED, ext.Arguments[1])
}
