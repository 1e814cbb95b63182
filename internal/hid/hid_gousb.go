package hid

import (
	"fmt"

	"github.com/google/gousb"
)

// HID class control requests used by the vendor protocol.
const (
	reqSetReport = 0x09
	reqGetReport = 0x01

	// feature report 0: report type 3 in the high byte
	featureReportValue = 0x0300

	// the control interface of the keyboard
	controlInterface = 0x02
)

// gousbManager drives the raw control-transfer path over libusb. It is
// the byte-faithful rendition of the protocol exchange and works without
// a HID report descriptor, at the cost of detaching the kernel driver.
type gousbManager struct{ ctx *gousb.Context }

// NewControlManager returns a manager performing the exchange with raw
// vendor control transfers instead of the OS HID layer.
func NewControlManager() (Manager, error) {
	return &gousbManager{ctx: gousb.NewContext()}, nil
}

func (m *gousbManager) List() ([]Info, error) {
	var out []Info
	devs, err := m.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		out = append(out, Info{
			Path:      fmt.Sprintf("%d:%d", desc.Bus, desc.Address),
			VendorID:  uint16(desc.Vendor),
			ProductID: uint16(desc.Product),
		})
		return false
	})
	for _, d := range devs {
		d.Close()
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *gousbManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	dev, err := m.ctx.OpenDeviceWithVIDPID(gousb.ID(vendorID), gousb.ID(productID))
	if err != nil {
		return nil, err
	}
	if dev == nil {
		return nil, fmt.Errorf("device %04x:%04x not found", vendorID, productID)
	}
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		return nil, err
	}
	return &gousbDevice{dev: dev}, nil
}

type gousbDevice struct{ dev *gousb.Device }

func (d *gousbDevice) SendControl(data []byte) error {
	_, err := d.dev.Control(
		gousb.ControlOut|gousb.ControlClass|gousb.ControlInterface,
		reqSetReport, featureReportValue, controlInterface, data)
	return err
}

func (d *gousbDevice) ReceiveControl(length int) ([]byte, error) {
	buf := make([]byte, length)
	n, err := d.dev.Control(
		gousb.ControlIn|gousb.ControlClass|gousb.ControlInterface,
		reqGetReport, featureReportValue, controlInterface, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (d *gousbDevice) Close() error { return d.dev.Close() }
