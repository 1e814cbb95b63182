package chroma

import (
	"github.com/openchroma/chromakbd/internal/protocol"
)

// Matrix effect values, standard family (class 0x03, command 0x0A).
const (
	stdEffectNone      byte = 0x00
	stdEffectWave      byte = 0x01
	stdEffectReactive  byte = 0x02
	stdEffectBreathing byte = 0x03
	stdEffectSpectrum  byte = 0x04
	stdEffectCustom    byte = 0x05
	stdEffectStatic    byte = 0x06
	stdEffectStarlight byte = 0x19
)

// Matrix effect values, extended family (class 0x0F, command 0x02).
const (
	extEffectNone      byte = 0x00
	extEffectStatic    byte = 0x01
	extEffectBreathing byte = 0x02
	extEffectSpectrum  byte = 0x03
	extEffectWave      byte = 0x04
	extEffectReactive  byte = 0x05
	extEffectStarlight byte = 0x07
	extEffectCustom    byte = 0x08
)

// Color sub-mode shared by the breathing and starlight payload shapes.
const (
	modeSingle byte = 0x01
	modeDual   byte = 0x02
	modeRandom byte = 0x03
)

func stdMatrix(q Quirks, size byte) *protocol.Report {
	return newCommand(q, classLED, 0x0A, size)
}

// extMatrix lays down the extended effect preamble: store, led, effect.
func extMatrix(q Quirks, size, store, led, effect byte) *protocol.Report {
	r := newCommand(q, classExtended, 0x02, size)
	r.Arguments[0] = store
	r.Arguments[1] = led
	r.Arguments[2] = effect
	return r
}

// MatrixEffectNone turns the lighting off.
func MatrixEffectNone(q Quirks, store, led byte) *protocol.Report {
	if q.Extended {
		return extMatrix(q, 0x06, store, led, extEffectNone)
	}
	r := stdMatrix(q, 0x01)
	r.Arguments[0] = stdEffectNone
	return r
}

// MatrixEffectWave starts the moving wave effect in the given direction.
func MatrixEffectWave(q Quirks, store, led, direction byte) *protocol.Report {
	if q.Extended {
		r := extMatrix(q, 0x06, store, led, extEffectWave)
		r.Arguments[3] = direction
		r.Arguments[4] = 0x28 // default speed
		return r
	}
	r := stdMatrix(q, 0x02)
	r.Arguments[0] = stdEffectWave
	r.Arguments[1] = direction
	return r
}

// MatrixEffectSpectrum starts the spectrum-cycling effect.
func MatrixEffectSpectrum(q Quirks, store, led byte) *protocol.Report {
	if q.Extended {
		return extMatrix(q, 0x06, store, led, extEffectSpectrum)
	}
	r := stdMatrix(q, 0x01)
	r.Arguments[0] = stdEffectSpectrum
	return r
}

// MatrixEffectReactive lights keys as they are struck. The payload is
// exactly {speed, r, g, b}.
func MatrixEffectReactive(q Quirks, store, led byte, payload []byte) (*protocol.Report, error) {
	if len(payload) != 4 {
		return nil, &protocol.InvalidPayloadError{Command: "reactive", Length: len(payload), Accepted: []int{4}}
	}
	if q.Extended {
		r := extMatrix(q, 0x09, store, led, extEffectReactive)
		r.Arguments[4] = payload[0]
		r.Arguments[5] = 0x01
		copy(r.Arguments[6:9], payload[1:])
		return r, nil
	}
	r := stdMatrix(q, 0x05)
	r.Arguments[0] = stdEffectReactive
	copy(r.Arguments[1:5], payload)
	return r, nil
}

// MatrixEffectStatic paints the whole matrix one color. The payload is
// exactly {r, g, b}.
func MatrixEffectStatic(q Quirks, store, led byte, payload []byte) (*protocol.Report, error) {
	if len(payload) != 3 {
		return nil, &protocol.InvalidPayloadError{Command: "static", Length: len(payload), Accepted: []int{3}}
	}
	if q.Extended {
		r := extMatrix(q, 0x09, store, led, extEffectStatic)
		r.Arguments[5] = 0x01
		copy(r.Arguments[6:9], payload)
		return r, nil
	}
	r := stdMatrix(q, 0x04)
	r.Arguments[0] = stdEffectStatic
	copy(r.Arguments[1:4], payload)
	return r, nil
}

// MatrixEffectBreathing fades the lighting in and out. Payload shapes:
// 1 byte for random colors, 3 bytes for a single color, 6 for two.
func MatrixEffectBreathing(q Quirks, store, led byte, payload []byte) (*protocol.Report, error) {
	var mode byte
	switch len(payload) {
	case 1:
		mode = modeRandom
	case 3:
		mode = modeSingle
	case 6:
		mode = modeDual
	default:
		return nil, &protocol.InvalidPayloadError{Command: "breathing", Length: len(payload), Accepted: []int{1, 3, 6}}
	}

	if q.Extended {
		size := byte(0x06)
		switch mode {
		case modeSingle:
			size = 0x09
		case modeDual:
			size = 0x0C
		}
		r := extMatrix(q, size, store, led, extEffectBreathing)
		r.Arguments[3] = mode
		if mode != modeRandom {
			r.Arguments[5] = byte(len(payload) / 3)
			copy(r.Arguments[6:], payload)
		}
		return r, nil
	}

	r := stdMatrix(q, 0x08)
	r.Arguments[0] = stdEffectBreathing
	r.Arguments[1] = mode
	if mode != modeRandom {
		copy(r.Arguments[2:], payload)
	}
	return r, nil
}

// MatrixEffectStarlight twinkles random keys. Payload shapes: 1 byte
// {speed} for random colors, 4 {speed, r, g, b} for one color, 7 for two.
func MatrixEffectStarlight(q Quirks, store, led byte, payload []byte) (*protocol.Report, error) {
	var mode byte
	switch len(payload) {
	case 1:
		mode = modeRandom
	case 4:
		mode = modeSingle
	case 7:
		mode = modeDual
	default:
		return nil, &protocol.InvalidPayloadError{Command: "starlight", Length: len(payload), Accepted: []int{1, 4, 7}}
	}
	speed := payload[0]

	if q.Extended {
		size := byte(0x06)
		switch mode {
		case modeSingle:
			size = 0x09
		case modeDual:
			size = 0x0C
		}
		r := extMatrix(q, size, store, led, extEffectStarlight)
		r.Arguments[3] = mode
		r.Arguments[4] = speed
		if mode != modeRandom {
			r.Arguments[5] = byte(len(payload) / 3)
			copy(r.Arguments[6:], payload[1:])
		}
		return r, nil
	}

	r := stdMatrix(q, 0x09)
	r.Arguments[0] = stdEffectStarlight
	r.Arguments[1] = mode
	r.Arguments[2] = speed
	copy(r.Arguments[3:], payload[1:])
	return r, nil
}

// MatrixEffectCustom makes the device display whatever frame has been
// uploaded with SetKeyRow.
func MatrixEffectCustom(q Quirks, store, led byte) *protocol.Report {
	if q.Extended {
		return extMatrix(q, 0x06, store, led, extEffectCustom)
	}
	r := stdMatrix(q, 0x02)
	r.Arguments[0] = stdEffectCustom
	return r
}

// SetKeyRow uploads the colors of one matrix row: exactly RowLength RGB
// triplets addressed from column 0 to RowLength-1.
func SetKeyRow(q Quirks, row byte, colors []byte) (*protocol.Report, error) {
	want := q.RowLength * 3
	if len(colors) != want {
		return nil, &protocol.InvalidPayloadError{Command: "key row", Length: len(colors), Accepted: []int{want}}
	}

	id := byte(0x0B)
	frame := byte(0xFF)
	if q.Extended {
		id = 0x03
		frame = 0x00
	}
	r := newCommand(q, classByRow(q), id, byte(want+4))
	r.Arguments[0] = frame
	r.Arguments[1] = row
	r.Arguments[2] = 0x00
	r.Arguments[3] = byte(q.RowLength - 1)
	copy(r.Arguments[4:], colors)
	return r, nil
}

func classByRow(q Quirks) byte {
	if q.Extended {
		return classExtended
	}
	return classLED
}

// SetMatrixBrightness sets the global backlight level on extended-family
// models.
func SetMatrixBrightness(q Quirks, store, led, brightness byte) *protocol.Report {
	r := newCommand(q, classExtended, 0x04, 0x03)
	r.Arguments[0] = store
	r.Arguments[1] = led
	r.Arguments[2] = brightness
	return r
}

func GetMatrixBrightness(q Quirks, store, led byte) *protocol.Report {
	r := newCommand(q, classExtended, 0x84, 0x03)
	r.Arguments[0] = store
	r.Arguments[1] = led
	return r
}
