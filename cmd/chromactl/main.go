// chromactl drives the lighting and mode controls of a connected
// keyboard from the command line.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/openchroma/chromakbd/internal/hid"
	"github.com/openchroma/chromakbd/internal/log"
	"github.com/openchroma/chromakbd/internal/rawusb"
	"github.com/openchroma/chromakbd/pkg/chroma"
	"github.com/openchroma/chromakbd/pkg/input"
)

type CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info" env:"CHROMAKBD_LOG"`
	Backend  string `help:"Transfer backend: OS HID layer or raw control transfers." enum:"hid,usb" default:"hid"`

	List       ListCmd       `cmd:"" help:"List attached keyboards."`
	Info       InfoCmd       `cmd:"" help:"Show model, serial, firmware and device mode."`
	Brightness BrightnessCmd `cmd:"" help:"Get or set the backlight brightness."`
	Effect     EffectCmd     `cmd:"" help:"Set a lighting effect."`
	Row        RowCmd        `cmd:"" help:"Upload one custom-frame row from hex colors."`
	Mode       ModeCmd       `cmd:"" help:"Get or set the device mode."`
	Game       GameCmd       `cmd:"" help:"Toggle game mode."`
	FnToggle   FnToggleCmd   `cmd:"" name:"fn-toggle" help:"Toggle whether the F-row needs FN held."`
	Listen     ListenCmd     `cmd:"" help:"Print FN-translated key events from the raw report stream."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chromactl"),
		kong.Description("Control backlit keyboards speaking the vendor command protocol."),
		kong.UsageOnError(),
	)

	logger := log.Setup(cli.LogLevel)
	ctx.Bind(&cli)
	ctx.Bind(logger)
	ctx.FatalIfErrorf(ctx.Run())
}

func newManager(cli *CLI) (hid.Manager, error) {
	if cli.Backend == "usb" {
		return hid.NewControlManager()
	}
	return hid.NewManager()
}

func openDevice(cli *CLI) (*chroma.Device, error) {
	mgr, err := newManager(cli)
	if err != nil {
		return nil, err
	}
	return chroma.Find(mgr)
}

type ListCmd struct{}

func (c *ListCmd) Run(cli *CLI) error {
	mgr, err := newManager(cli)
	if err != nil {
		return err
	}
	infos, err := mgr.List()
	if err != nil {
		return err
	}
	for _, info := range infos {
		if info.VendorID != chroma.VendorID {
			continue
		}
		fmt.Printf("%04x:%04x  %s\n", info.VendorID, info.ProductID, chroma.DeviceName(info.ProductID))
	}
	return nil
}

type InfoCmd struct{}

func (c *InfoCmd) Run(cli *CLI, logger *slog.Logger) error {
	dev, err := openDevice(cli)
	if err != nil {
		return err
	}
	defer dev.Close()

	ctx := context.Background()
	fmt.Printf("device:   %s\n", dev.Name())

	serial, err := dev.Serial(ctx)
	if err != nil {
		logger.Warn("serial read failed", "error", err)
	} else {
		fmt.Printf("serial:   %s\n", serial)
	}

	fw, err := dev.FirmwareVersion(ctx)
	if err != nil {
		logger.Warn("firmware read failed", "error", err)
	} else {
		fmt.Printf("firmware: %s\n", fw)
	}

	mode, param, err := dev.DeviceMode(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("mode:     %d:%d\n", mode, param)
	return nil
}

type BrightnessCmd struct {
	Value int `arg:"" optional:"" default:"-1" help:"New brightness 0-255; omit to read."`
}

func (c *BrightnessCmd) Run(cli *CLI) error {
	dev, err := openDevice(cli)
	if err != nil {
		return err
	}
	defer dev.Close()

	ctx := context.Background()
	if c.Value < 0 {
		b, err := dev.Brightness(ctx)
		if err != nil {
			return err
		}
		fmt.Println(b)
		return nil
	}
	if c.Value > 0xFF {
		return fmt.Errorf("brightness %d out of range", c.Value)
	}
	return dev.SetBrightness(ctx, byte(c.Value))
}

type EffectCmd struct {
	Name    string `arg:"" enum:"none,wave,spectrum,reactive,static,starlight,breath,custom" help:"Effect name."`
	Payload string `arg:"" optional:"" help:"Hex payload; shape depends on the effect."`
}

func (c *EffectCmd) Run(cli *CLI) error {
	payload, err := hex.DecodeString(c.Payload)
	if err != nil {
		return fmt.Errorf("payload: %w", err)
	}

	dev, err := openDevice(cli)
	if err != nil {
		return err
	}
	defer dev.Close()

	ctx := context.Background()
	switch c.Name {
	case "none":
		return dev.EffectNone(ctx)
	case "wave":
		direction := chroma.WaveLeft
		if len(payload) == 1 {
			direction = payload[0]
		}
		return dev.EffectWave(ctx, direction)
	case "spectrum":
		return dev.EffectSpectrum(ctx)
	case "reactive":
		return dev.EffectReactive(ctx, payload)
	case "static":
		return dev.EffectStatic(ctx, payload)
	case "starlight":
		return dev.EffectStarlight(ctx, payload)
	case "breath":
		return dev.EffectBreathing(ctx, payload)
	case "custom":
		return dev.EffectCustom(ctx)
	}
	return fmt.Errorf("unknown effect %q", c.Name)
}

type RowCmd struct {
	Row    int    `arg:"" help:"Row index."`
	Colors string `arg:"" help:"Hex RGB triplets for the whole row."`
}

func (c *RowCmd) Run(cli *CLI) error {
	colors, err := hex.DecodeString(c.Colors)
	if err != nil {
		return fmt.Errorf("colors: %w", err)
	}

	dev, err := openDevice(cli)
	if err != nil {
		return err
	}
	defer dev.Close()

	if err := dev.SetKeyRow(context.Background(), byte(c.Row), colors); err != nil {
		return err
	}
	return dev.EffectCustom(context.Background())
}

type ModeCmd struct {
	Mode  int `arg:"" optional:"" default:"-1" help:"Mode byte; omit to read."`
	Param int `arg:"" optional:"" default:"0" help:"Mode parameter byte."`
}

func (c *ModeCmd) Run(cli *CLI) error {
	dev, err := openDevice(cli)
	if err != nil {
		return err
	}
	defer dev.Close()

	ctx := context.Background()
	if c.Mode < 0 {
		mode, param, err := dev.DeviceMode(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d:%d\n", mode, param)
		return nil
	}
	return dev.SetDeviceMode(ctx, byte(c.Mode), byte(c.Param))
}

type GameCmd struct {
	On bool `arg:"" help:"Enable or disable game mode."`
}

func (c *GameCmd) Run(cli *CLI) error {
	dev, err := openDevice(cli)
	if err != nil {
		return err
	}
	defer dev.Close()
	return dev.SetGameMode(context.Background(), c.On)
}

type FnToggleCmd struct {
	On bool `arg:"" help:"Require FN for function keys."`
}

func (c *FnToggleCmd) Run(cli *CLI) error {
	dev, err := openDevice(cli)
	if err != nil {
		return err
	}
	defer dev.Close()
	return dev.SetFnToggle(context.Background(), c.On)
}

type ListenCmd struct{}

func (c *ListenCmd) Run(cli *CLI, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader, err := rawusb.Open(chroma.VendorID, 0)
	if err != nil {
		return err
	}
	defer reader.Close()

	session := input.NewSession(input.KeyboardInterface)
	logger.Info("listening for raw reports")

	for ctx.Err() == nil {
		report, err := reader.ReadReport()
		if err != nil {
			return err
		}
		if !session.HandleRawReport(report) {
			continue
		}
		for _, usage := range input.DecodeKeys(report) {
			code, ok := input.KeyCode(usage)
			if !ok {
				continue
			}
			action, out := session.TranslateKey(code)
			switch action {
			case input.Substitute:
				fmt.Printf("key %d -> %d (fn)\n", code, out)
			case input.Suppress:
				fmt.Printf("key %d suppressed (fn)\n", code)
			default:
				fmt.Printf("key %d\n", code)
			}
		}
	}
	return nil
}
