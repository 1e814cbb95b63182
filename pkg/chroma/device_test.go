package chroma

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openchroma/chromakbd/internal/hid"
	"github.com/openchroma/chromakbd/internal/protocol"
)

// echoDevice wires a MockDevice to answer every request with a matching
// success response, optionally filling the argument area first.
func echoDevice(t *testing.T, fill func(req, resp *protocol.Report)) *hid.MockDevice {
	t.Helper()
	mock := hid.NewMockDevice()
	mock.Respond = func(buf []byte) []byte {
		req, err := protocol.Unmarshal(buf)
		require.NoError(t, err)
		resp := *req
		resp.Status = protocol.StatusOK
		if fill != nil {
			fill(req, &resp)
		}
		resp.Checksum = resp.CRC()
		return resp.Marshal()
	}
	return mock
}

func TestDeviceSerial(t *testing.T) {
	mock := echoDevice(t, func(req, resp *protocol.Report) {
		copy(resp.Arguments[:], "PM1719J00000042")
	})
	dev := NewDevice(mock, DeviceBlackWidowChroma)

	serial, err := dev.Serial(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PM1719J00000042", serial)

	sent, err := protocol.Unmarshal(mock.Sent[0])
	require.NoError(t, err)
	assert.Equal(t, byte(0x82), sent.CommandID)
}

func TestDeviceFirmwareVersion(t *testing.T) {
	mock := echoDevice(t, func(req, resp *protocol.Report) {
		resp.Arguments[0] = 2
		resp.Arguments[1] = 5
	})
	dev := NewDevice(mock, DeviceBlackWidowChroma)

	fw, err := dev.FirmwareVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v2.5", fw)
}

func TestDeviceMode(t *testing.T) {
	mock := echoDevice(t, func(req, resp *protocol.Report) {
		if resp.CommandID == 0x84 {
			resp.Arguments[0] = 0x03
		}
	})
	dev := NewDevice(mock, DeviceBlackWidowChroma)
	ctx := context.Background()

	require.NoError(t, dev.SetDeviceMode(ctx, 0x03, 0x00))
	mode, param, err := dev.DeviceMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, byte(0x03), mode)
	assert.Equal(t, byte(0x00), param)
}

func TestDeviceBrightnessRouting(t *testing.T) {
	cases := []struct {
		name      string
		pid       uint16
		wantClass byte
		wantLED   byte // meaningful for LED-register targets only
	}{
		{"backlight register", DeviceBlackWidowChroma, 0x03, BacklightLED},
		{"logo register", DeviceBlackWidowUltimate2012, 0x03, LogoLED},
		{"blade misc command", DeviceBladeStealth, 0x0E, 0x00},
		{"extended register", DeviceOrnataChroma, 0x0F, BacklightLED},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := echoDevice(t, nil)
			dev := NewDevice(mock, tc.pid)

			require.NoError(t, dev.SetBrightness(context.Background(), 0x90))

			sent, err := protocol.Unmarshal(mock.Sent[0])
			require.NoError(t, err)
			assert.Equal(t, tc.wantClass, sent.CommandClass)
			if tc.wantClass != 0x0E {
				assert.Equal(t, tc.wantLED, sent.Arguments[1])
				assert.Equal(t, byte(0x90), sent.Arguments[2])
			} else {
				assert.Equal(t, byte(0x90), sent.Arguments[1])
			}
		})
	}
}

func TestDeviceBrightnessReadback(t *testing.T) {
	// Blade models echo the level one byte earlier than LED registers.
	blade := NewDevice(echoDevice(t, func(req, resp *protocol.Report) {
		resp.Arguments[1] = 0x42
	}), DeviceBladeStealth)
	b, err := blade.Brightness(context.Background())
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), b)

	std := NewDevice(echoDevice(t, func(req, resp *protocol.Report) {
		resp.Arguments[2] = 0x99
	}), DeviceBlackWidowChroma)
	b, err = std.Brightness(context.Background())
	require.NoError(t, err)
	assert.Equal(t, byte(0x99), b)
}

func TestDeviceGameMode(t *testing.T) {
	mock := echoDevice(t, func(req, resp *protocol.Report) {
		if resp.CommandID == 0x80 {
			resp.Arguments[2] = 0x01
		}
	})
	dev := NewDevice(mock, DeviceBlackWidowChroma)
	ctx := context.Background()

	require.NoError(t, dev.SetGameMode(ctx, true))
	on, err := dev.GameMode(ctx)
	require.NoError(t, err)
	assert.True(t, on)

	sent, err := protocol.Unmarshal(mock.Sent[0])
	require.NoError(t, err)
	assert.Equal(t, GameLED, sent.Arguments[1])
	assert.Equal(t, byte(0x01), sent.Arguments[2])
}

func TestDeviceEffectPayloadRejectedBeforeIO(t *testing.T) {
	mock := echoDevice(t, nil)
	dev := NewDevice(mock, DeviceBlackWidowChroma)

	err := dev.EffectStatic(context.Background(), []byte{0xFF})
	var perr *protocol.InvalidPayloadError
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, mock.Sent)
}

func TestDeviceSetKeyRows(t *testing.T) {
	mock := echoDevice(t, nil)
	dev := NewDevice(mock, DeviceBlackWidowChroma)

	stride := DefaultRowLength*3 + 1
	buf := make([]byte, stride*2)
	buf[0] = 0
	buf[stride] = 1

	require.NoError(t, dev.SetKeyRows(context.Background(), buf))
	require.Len(t, mock.Sent, 2)

	second, err := protocol.Unmarshal(mock.Sent[1])
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), second.Arguments[1])

	// Trailing partial row is rejected up front.
	err = dev.SetKeyRows(context.Background(), make([]byte, stride+1))
	var perr *protocol.InvalidPayloadError
	require.ErrorAs(t, err, &perr)
}

func TestDeviceStatusErrorSurfaced(t *testing.T) {
	mock := hid.NewMockDevice()
	mock.Respond = func(buf []byte) []byte {
		req, _ := protocol.Unmarshal(buf)
		resp := *req
		resp.Status = protocol.StatusUnsupported
		resp.Checksum = resp.CRC()
		return resp.Marshal()
	}
	dev := NewDevice(mock, DeviceBlackWidowChroma)

	_, err := dev.Serial(context.Background())
	assert.ErrorIs(t, err, protocol.ErrUnsupported)
}

func TestFindFiltersVendor(t *testing.T) {
	_, err := Find(stubManager{infos: []hid.Info{
		{VendorID: 0x046D, ProductID: 0xC52B},
	}})
	assert.Error(t, err)
}

type stubManager struct {
	infos []hid.Info
}

func (m stubManager) List() ([]hid.Info, error) { return m.infos, nil }

func (m stubManager) OpenVIDPID(vid, pid uint16) (hid.Device, error) {
	return hid.NewMockDevice(), nil
}
