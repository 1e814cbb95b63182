// Package hid opens the keyboard's control interface and carries the
// vendor feature-report exchange used by the command protocol.
package hid

// Device represents an opened HID device capable of vendor control-report
// I/O. SendControl issues the SET_REPORT control transfer carrying a full
// command record; ReceiveControl reads back the same-length response.
type Device interface {
	SendControl(data []byte) error
	ReceiveControl(length int) ([]byte, error)
	Close() error
}

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	OpenVIDPID(vendorID, productID uint16) (Device, error)
}

// NewManager returns the OS-specific HID manager.
func NewManager() (Manager, error) {
	return newManager()
}
