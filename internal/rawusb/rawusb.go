// Package rawusb taps the keyboard-protocol interface for the raw input
// reports the vendor firmware emits, before any generic HID parser has
// seen them.
package rawusb

import (
	"fmt"

	"github.com/karalabe/usb"
)

// ReportLength is the size of the vendor macro reports we care about.
const ReportLength = 16

// Reader reads raw interrupt-IN reports from one keyboard.
type Reader struct {
	dev usb.Device
}

// Open finds and opens the first device matching the given ids.
func Open(vendorID, productID uint16) (*Reader, error) {
	infos, err := usb.Enumerate(vendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("device %04x:%04x not found", vendorID, productID)
	}
	dev, err := infos[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}
	return &Reader{dev: dev}, nil
}

// ReadReport blocks for the next raw report. Reports must be handed to
// the remapper in arrival order; callers must not buffer them.
func (r *Reader) ReadReport() ([]byte, error) {
	buf := make([]byte, ReportLength)
	n, err := r.dev.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("usb read: %w", err)
	}
	return buf[:n], nil
}

func (r *Reader) Close() error { return r.dev.Close() }
