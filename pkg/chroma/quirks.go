package chroma

import (
	"github.com/openchroma/chromakbd/internal/protocol"
)

// Matrix row lengths. Most keyboards drive 22 LEDs per row; the Stealth
// panels are shorter.
const (
	DefaultRowLength = 22
	stealthRowLength = 16
)

// BrightnessTarget selects where a model stores its global backlight
// brightness.
type BrightnessTarget int

const (
	BrightnessBacklight BrightnessTarget = iota // backlight LED register
	BrightnessLogo                              // pre-Chroma BlackWidows
	BrightnessBlade                             // Blade laptops, misc command class
	BrightnessMatrix                            // extended-family register
)

// Quirks captures the per-model protocol variance: the transaction id the
// model expects echoed back, the matrix row length, and which of the two
// request-encoding families it speaks.
type Quirks struct {
	TransactionID byte
	RowLength     int
	Extended      bool
	Brightness    BrightnessTarget
}

var quirkTable = map[uint16]Quirks{
	DeviceBlackWidowOriginal:     {TransactionID: protocol.DefaultTransactionID, RowLength: DefaultRowLength, Brightness: BrightnessLogo},
	DeviceBlackWidowUltimate2012: {TransactionID: protocol.DefaultTransactionID, RowLength: DefaultRowLength, Brightness: BrightnessLogo},
	DeviceBlackWidowUltimate2013: {TransactionID: protocol.DefaultTransactionID, RowLength: DefaultRowLength, Brightness: BrightnessLogo},
	DeviceBlackWidowUltimate2016: {TransactionID: 0x80, RowLength: DefaultRowLength},
	DeviceBladeStealth:           {TransactionID: 0x80, RowLength: stealthRowLength, Brightness: BrightnessBlade},
	DeviceBladeStealthLate2016:   {TransactionID: 0x80, RowLength: stealthRowLength, Brightness: BrightnessBlade},
	DeviceTartarusChroma:         {TransactionID: protocol.DefaultTransactionID, RowLength: DefaultRowLength},
	DeviceBlackWidowChroma:       {TransactionID: protocol.DefaultTransactionID, RowLength: DefaultRowLength},
	DeviceBlackWidowChromaTE:     {TransactionID: protocol.DefaultTransactionID, RowLength: DefaultRowLength},
	DeviceBlackWidowXChroma:      {TransactionID: protocol.DefaultTransactionID, RowLength: DefaultRowLength},
	DeviceBlackWidowXChromaTE:    {TransactionID: protocol.DefaultTransactionID, RowLength: DefaultRowLength},
	DeviceOrnataChroma:           {TransactionID: 0x3F, RowLength: DefaultRowLength, Extended: true, Brightness: BrightnessMatrix},
}

// LookupQuirks is total: unrecognized product ids get the best-effort
// defaults (standard encoding, default tag and row length) so new or
// untested hardware still attempts operation.
func LookupQuirks(pid uint16) Quirks {
	if q, ok := quirkTable[pid]; ok {
		return q
	}
	return Quirks{TransactionID: protocol.DefaultTransactionID, RowLength: DefaultRowLength}
}
