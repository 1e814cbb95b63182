// Package chroma builds and exchanges the vendor command records used by
// the BlackWidow family of backlit keyboards: LED and brightness control,
// lighting effects, per-key matrix rows and device mode.
package chroma

// VendorID is the USB vendor id shared by all supported keyboards.
const VendorID uint16 = 0x1532

// Product identifiers of the supported models.
const (
	DeviceBlackWidowOriginal     uint16 = 0x010E
	DeviceBlackWidowUltimate2012 uint16 = 0x010D
	DeviceBlackWidowUltimate2013 uint16 = 0x011A
	DeviceBlackWidowUltimate2016 uint16 = 0x0214
	DeviceBladeStealth           uint16 = 0x0205
	DeviceBladeStealthLate2016   uint16 = 0x0220
	DeviceTartarusChroma         uint16 = 0x0208
	DeviceBlackWidowChroma       uint16 = 0x0203
	DeviceBlackWidowChromaTE     uint16 = 0x0209
	DeviceBlackWidowXChroma      uint16 = 0x0216
	DeviceBlackWidowXChromaTE    uint16 = 0x021A
	DeviceOrnataChroma           uint16 = 0x021E
)

// Storage targets: NoStore applies a setting volatilely, VarStore
// persists it in the active profile.
const (
	NoStore  byte = 0x00
	VarStore byte = 0x01
)

// Addressable LEDs.
const (
	ScrollWheelLED  byte = 0x01
	BatteryLED      byte = 0x03
	LogoLED         byte = 0x04
	BacklightLED    byte = 0x05
	MacroLED        byte = 0x07
	GameLED         byte = 0x08
	RedProfileLED   byte = 0x0C
	GreenProfileLED byte = 0x0D
	BlueProfileLED  byte = 0x0E
)

// Single-LED effect values for SetLEDEffect.
const (
	LEDEffectStatic   byte = 0x00
	LEDEffectBlinking byte = 0x01
	LEDEffectPulsate  byte = 0x02
	LEDEffectSpectrum byte = 0x04
)

// Wave directions.
const (
	WaveLeft  byte = 0x01
	WaveRight byte = 0x02
)

var deviceNames = map[uint16]string{
	DeviceBlackWidowOriginal:     "Razer BlackWidow Original",
	DeviceBlackWidowUltimate2012: "Razer BlackWidow Ultimate 2012",
	DeviceBlackWidowUltimate2013: "Razer BlackWidow Ultimate 2013",
	DeviceBlackWidowUltimate2016: "Razer BlackWidow Ultimate 2016",
	DeviceBladeStealth:           "Razer Blade Stealth",
	DeviceBladeStealthLate2016:   "Razer Blade Stealth (Late 2016)",
	DeviceTartarusChroma:         "Razer Tartarus Chroma",
	DeviceBlackWidowChroma:       "Razer BlackWidow Chroma",
	DeviceBlackWidowChromaTE:     "Razer BlackWidow Chroma Tournament Edition",
	DeviceBlackWidowXChroma:      "Razer BlackWidow X Chroma",
	DeviceBlackWidowXChromaTE:    "Razer BlackWidow X Chroma Tournament Edition",
	DeviceOrnataChroma:           "Razer Ornata Chroma",
}

// DeviceName returns the friendly name for a product id.
func DeviceName(pid uint16) string {
	if name, ok := deviceNames[pid]; ok {
		return name
	}
	return "Unknown Device"
}
