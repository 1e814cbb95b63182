//go:build windows

package hid

import (
	hidapi "github.com/sstallion/go-hid"
)

type gohidManager struct{}

func newManager() (Manager, error) {
	if err := hidapi.Init(); err != nil {
		return nil, err
	}
	return &gohidManager{}, nil
}

func (m *gohidManager) List() ([]Info, error) {
	var out []Info
	err := hidapi.Enumerate(hidapi.VendorIDAny, hidapi.ProductIDAny, func(info *hidapi.DeviceInfo) error {
		out = append(out, Info{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Product:      info.ProductStr,
			Manufacturer: info.MfrStr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *gohidManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	d, err := hidapi.OpenFirst(vendorID, productID)
	if err != nil {
		return nil, err
	}
	return &gohidDevice{d}, nil
}

type gohidDevice struct{ d *hidapi.Device }

func (d *gohidDevice) SendControl(data []byte) error {
	// hidapi expects the report id as the leading byte
	buf := make([]byte, len(data)+1)
	copy(buf[1:], data)
	_, err := d.d.SendFeatureReport(buf)
	return err
}

func (d *gohidDevice) ReceiveControl(length int) ([]byte, error) {
	buf := make([]byte, length+1)
	n, err := d.d.GetFeatureReport(buf)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return buf[1:n], nil
	}
	return nil, nil
}

func (d *gohidDevice) Close() error { return d.d.Close() }
