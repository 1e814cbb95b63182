package chroma

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/openchroma/chromakbd/internal/hid"
	"github.com/openchroma/chromakbd/internal/protocol"
)

// Device is one bound keyboard: a serialized transport plus the model
// quirks resolved at open time.
type Device struct {
	t      *protocol.Transport
	quirks Quirks
	pid    uint16
	closer io.Closer
}

// NewDevice wraps an already-opened control device.
func NewDevice(dev protocol.ControlDevice, pid uint16) *Device {
	d := &Device{
		t:      protocol.NewTransport(dev),
		quirks: LookupQuirks(pid),
		pid:    pid,
	}
	if c, ok := dev.(io.Closer); ok {
		d.closer = c
	}
	return d
}

// Open opens a specific model through the given HID manager.
func Open(mgr hid.Manager, pid uint16) (*Device, error) {
	dev, err := mgr.OpenVIDPID(VendorID, pid)
	if err != nil {
		return nil, fmt.Errorf("open %04x:%04x: %w", VendorID, pid, err)
	}
	return NewDevice(dev, pid), nil
}

// Find opens the first attached supported keyboard.
func Find(mgr hid.Manager) (*Device, error) {
	infos, err := mgr.List()
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		if info.VendorID != VendorID {
			continue
		}
		d, err := Open(mgr, info.ProductID)
		if err != nil {
			continue
		}
		return d, nil
	}
	return nil, errors.New("no supported keyboard found")
}

func (d *Device) Close() error {
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}

// Name returns the friendly model name.
func (d *Device) Name() string { return DeviceName(d.pid) }

// ProductID returns the model identifier the device was opened with.
func (d *Device) ProductID() uint16 { return d.pid }

// Quirks returns the resolved protocol variance for this model.
func (d *Device) Quirks() Quirks { return d.quirks }

// Serial reads the device serial number.
func (d *Device) Serial(ctx context.Context) (string, error) {
	resp, err := d.t.Transact(ctx, GetSerial(d.quirks))
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(resp.Arguments[:22], "\x00")), nil
}

// FirmwareVersion reads the firmware version, formatted "vMAJOR.MINOR".
func (d *Device) FirmwareVersion(ctx context.Context) (string, error) {
	resp, err := d.t.Transact(ctx, GetFirmwareVersion(d.quirks))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("v%d.%d", resp.Arguments[0], resp.Arguments[1]), nil
}

// DeviceMode reads the current mode and parameter bytes.
func (d *Device) DeviceMode(ctx context.Context) (mode, param byte, err error) {
	resp, err := d.t.Transact(ctx, GetDeviceMode(d.quirks))
	if err != nil {
		return 0, 0, err
	}
	return resp.Arguments[0], resp.Arguments[1], nil
}

// SetDeviceMode switches between regular (0x00) and driver (0x03) mode.
func (d *Device) SetDeviceMode(ctx context.Context, mode, param byte) error {
	_, err := d.t.Transact(ctx, SetDeviceMode(d.quirks, mode, param))
	return err
}

// Brightness reads the global backlight level, routed per model.
func (d *Device) Brightness(ctx context.Context) (byte, error) {
	var req *protocol.Report
	switch d.quirks.Brightness {
	case BrightnessBlade:
		req = GetBladeBrightness(d.quirks)
	case BrightnessLogo:
		req = GetLEDBrightness(d.quirks, VarStore, LogoLED)
	case BrightnessMatrix:
		req = GetMatrixBrightness(d.quirks, VarStore, BacklightLED)
	default:
		req = GetLEDBrightness(d.quirks, VarStore, BacklightLED)
	}
	resp, err := d.t.Transact(ctx, req)
	if err != nil {
		return 0, err
	}
	// Blade models echo the level in the second argument byte.
	if d.quirks.Brightness == BrightnessBlade {
		return resp.Arguments[1], nil
	}
	return resp.Arguments[2], nil
}

// SetBrightness writes the global backlight level, routed per model.
func (d *Device) SetBrightness(ctx context.Context, brightness byte) error {
	var req *protocol.Report
	switch d.quirks.Brightness {
	case BrightnessBlade:
		req = SetBladeBrightness(d.quirks, brightness)
	case BrightnessLogo:
		req = SetLEDBrightness(d.quirks, VarStore, LogoLED, brightness)
	case BrightnessMatrix:
		req = SetMatrixBrightness(d.quirks, VarStore, BacklightLED, brightness)
	default:
		req = SetLEDBrightness(d.quirks, VarStore, BacklightLED, brightness)
	}
	_, err := d.t.Transact(ctx, req)
	return err
}

func onOff(on bool) byte {
	if on {
		return 0x01
	}
	return 0x00
}

// SetGameMode toggles game mode and its indicator LED.
func (d *Device) SetGameMode(ctx context.Context, on bool) error {
	_, err := d.t.Transact(ctx, SetLEDState(d.quirks, VarStore, GameLED, onOff(on)))
	return err
}

func (d *Device) GameMode(ctx context.Context) (bool, error) {
	resp, err := d.t.Transact(ctx, GetLEDState(d.quirks, VarStore, GameLED))
	if err != nil {
		return false, err
	}
	return resp.Arguments[2] != 0, nil
}

// SetMacroMode toggles the macro recording LED.
func (d *Device) SetMacroMode(ctx context.Context, on bool) error {
	_, err := d.t.Transact(ctx, SetLEDState(d.quirks, VarStore, MacroLED, onOff(on)))
	return err
}

func (d *Device) MacroMode(ctx context.Context) (bool, error) {
	resp, err := d.t.Transact(ctx, GetLEDState(d.quirks, VarStore, MacroLED))
	if err != nil {
		return false, err
	}
	return resp.Arguments[2] != 0, nil
}

// SetMacroModeEffect makes the macro LED blink (true) or hold static.
func (d *Device) SetMacroModeEffect(ctx context.Context, blinking bool) error {
	effect := LEDEffectStatic
	if blinking {
		effect = LEDEffectBlinking
	}
	_, err := d.t.Transact(ctx, SetMacroLEDEffect(d.quirks, VarStore, effect))
	return err
}

func (d *Device) MacroModeEffect(ctx context.Context) (byte, error) {
	resp, err := d.t.Transact(ctx, GetLEDEffect(d.quirks, VarStore, MacroLED))
	if err != nil {
		return 0, err
	}
	return resp.Arguments[2], nil
}

// SetPulsate starts the logo brightness oscillation on pre-Chroma models.
func (d *Device) SetPulsate(ctx context.Context) error {
	_, err := d.t.Transact(ctx, SetLEDEffect(d.quirks, VarStore, LogoLED, LEDEffectPulsate))
	return err
}

// ProfileLED reads one of the Tartarus profile indicator LEDs.
func (d *Device) ProfileLED(ctx context.Context, led byte) (bool, error) {
	resp, err := d.t.Transact(ctx, GetLEDState(d.quirks, VarStore, led))
	if err != nil {
		return false, err
	}
	return resp.Arguments[2] != 0, nil
}

func (d *Device) SetProfileLED(ctx context.Context, led byte, on bool) error {
	_, err := d.t.Transact(ctx, SetLEDState(d.quirks, VarStore, led, onOff(on)))
	return err
}

// SetLogo enables or disables the logo lighting.
func (d *Device) SetLogo(ctx context.Context, state byte) error {
	_, err := d.t.Transact(ctx, SetLEDEffect(d.quirks, VarStore, LogoLED, state))
	return err
}

// EffectNone turns the matrix lighting off.
func (d *Device) EffectNone(ctx context.Context) error {
	_, err := d.t.Transact(ctx, MatrixEffectNone(d.quirks, VarStore, BacklightLED))
	return err
}

// EffectWave starts the wave effect in the given direction.
func (d *Device) EffectWave(ctx context.Context, direction byte) error {
	_, err := d.t.Transact(ctx, MatrixEffectWave(d.quirks, VarStore, BacklightLED, direction))
	return err
}

// EffectSpectrum starts the spectrum-cycling effect.
func (d *Device) EffectSpectrum(ctx context.Context) error {
	_, err := d.t.Transact(ctx, MatrixEffectSpectrum(d.quirks, VarStore, BacklightLED))
	return err
}

// EffectReactive lights keys as they are struck; payload is
// {speed, r, g, b}.
func (d *Device) EffectReactive(ctx context.Context, payload []byte) error {
	req, err := MatrixEffectReactive(d.quirks, VarStore, BacklightLED, payload)
	if err != nil {
		return err
	}
	_, err = d.t.Transact(ctx, req)
	return err
}

// EffectStatic paints the matrix one color; payload is {r, g, b}.
func (d *Device) EffectStatic(ctx context.Context, payload []byte) error {
	req, err := MatrixEffectStatic(d.quirks, VarStore, BacklightLED, payload)
	if err != nil {
		return err
	}
	_, err = d.t.Transact(ctx, req)
	return err
}

// EffectBreathing starts the breathing effect; payload is 1, 3 or 6
// bytes.
func (d *Device) EffectBreathing(ctx context.Context, payload []byte) error {
	req, err := MatrixEffectBreathing(d.quirks, VarStore, BacklightLED, payload)
	if err != nil {
		return err
	}
	_, err = d.t.Transact(ctx, req)
	return err
}

// EffectStarlight starts the starlight effect; payload is 1, 4 or 7
// bytes.
func (d *Device) EffectStarlight(ctx context.Context, payload []byte) error {
	req, err := MatrixEffectStarlight(d.quirks, VarStore, BacklightLED, payload)
	if err != nil {
		return err
	}
	_, err = d.t.Transact(ctx, req)
	return err
}

// EffectCustom displays the uploaded custom frame.
func (d *Device) EffectCustom(ctx context.Context) error {
	_, err := d.t.Transact(ctx, MatrixEffectCustom(d.quirks, VarStore, BacklightLED))
	return err
}

// SetKeyRow uploads one row of the custom frame.
func (d *Device) SetKeyRow(ctx context.Context, row byte, colors []byte) error {
	req, err := SetKeyRow(d.quirks, row, colors)
	if err != nil {
		return err
	}
	_, err = d.t.Transact(ctx, req)
	return err
}

// SetKeyRows uploads a packed sequence of rows, each encoded as a row
// index byte followed by RowLength RGB triplets.
func (d *Device) SetKeyRows(ctx context.Context, buf []byte) error {
	stride := d.quirks.RowLength*3 + 1
	if len(buf) == 0 || len(buf)%stride != 0 {
		return &protocol.InvalidPayloadError{Command: "key rows", Length: len(buf), Accepted: []int{stride}}
	}
	for off := 0; off < len(buf); off += stride {
		if err := d.SetKeyRow(ctx, buf[off], buf[off+1:off+stride]); err != nil {
			return err
		}
	}
	return nil
}

// SetFnToggle controls whether the F-row needs FN held.
func (d *Device) SetFnToggle(ctx context.Context, on bool) error {
	_, err := d.t.Transact(ctx, FnKeyToggle(d.quirks, onOff(on)))
	return err
}
