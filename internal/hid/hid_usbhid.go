//go:build !windows

package hid

import (
	usbhid "rafaelmartins.com/p/usbhid"
)

type usbhidManager struct{}

func newManager() (Manager, error) { return &usbhidManager{}, nil }

func (m *usbhidManager) List() ([]Info, error) {
	devs, err := usbhid.Enumerate(nil)
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}
	return out, nil
}

func (m *usbhidManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.VendorId() == vendorID && dev.ProductId() == productID
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbhidDevice{d}, nil
}

type usbhidDevice struct{ d *usbhid.Device }

// The command protocol rides on feature report 0: wValue 0x0300 on the
// control endpoint, which the HID layer issues for us.
func (d *usbhidDevice) SendControl(data []byte) error {
	return d.d.SetFeatureReport(0, data)
}

func (d *usbhidDevice) ReceiveControl(length int) ([]byte, error) {
	buf, err := d.d.GetFeatureReport(0)
	if err != nil {
		return nil, err
	}
	if len(buf) > length {
		buf = buf[:length]
	}
	return buf, nil
}

func (d *usbhidDevice) Close() error { return d.d.Close() }
