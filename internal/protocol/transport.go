package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// The device needs time to process a request before the response can be
// read back from the control endpoint.
const (
	WaitMin = 600 * time.Microsecond
	WaitMax = 800 * time.Microsecond
)

// ControlDevice is the control-transfer primitive supplied by the host
// HID layer: a vendor SET_REPORT followed by a GET_REPORT of the same
// length.
type ControlDevice interface {
	SendControl(data []byte) error
	ReceiveControl(length int) ([]byte, error)
}

// Transport performs the synchronous send-then-receive exchange for one
// device. The correlation tag allows only a single outstanding exchange
// per device, so concurrent callers are serialized here.
type Transport struct {
	dev ControlDevice
	mu  sync.Mutex
}

func NewTransport(dev ControlDevice) *Transport {
	return &Transport{dev: dev}
}

// Transact recomputes the request checksum, performs the exchange and
// validates the response. Device-reported errors still return the
// response record so the caller can inspect the echoed fields. There are
// no internal retries.
func (t *Transport) Transact(ctx context.Context, req *Report) (*Report, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	req.Checksum = req.CRC()

	if err := t.dev.SendControl(req.Marshal()); err != nil {
		return nil, &TransportError{Op: "send", Err: err}
	}

	timer := time.NewTimer(WaitMax)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrDeviceTimeout, ctx.Err())
	case <-timer.C:
	}

	buf, err := t.dev.ReceiveControl(ReportLength)
	if err != nil {
		return nil, &TransportError{Op: "receive", Err: err}
	}
	resp, err := Unmarshal(buf)
	if err != nil {
		return nil, &TransportError{Op: "receive", Err: err}
	}

	// The reference driver never fails on a bad response checksum, only
	// logs correlation and status problems. Keep that contract but
	// surface the mismatch in the log.
	if crc := resp.CRC(); crc != resp.Checksum {
		slog.Warn("response checksum mismatch",
			slog.Int("declared", int(resp.Checksum)),
			slog.Int("computed", int(crc)))
	}

	if resp.RemainingPackets != req.RemainingPackets ||
		resp.CommandClass != req.CommandClass ||
		resp.CommandID != req.CommandID {
		slog.Warn("response does not match request", slog.String("report", resp.DumpString()))
		return resp, ErrMismatch
	}

	switch resp.Status {
	case StatusBusy:
		slog.Warn("device is busy", slog.String("report", resp.DumpString()))
		return resp, ErrBusy
	case StatusFailure:
		slog.Warn("command failed", slog.String("report", resp.DumpString()))
		return resp, ErrCommandFailed
	case StatusUnsupported:
		slog.Warn("command not supported", slog.String("report", resp.DumpString()))
		return resp, ErrUnsupported
	case StatusTimeout:
		slog.Warn("command timed out", slog.String("report", resp.DumpString()))
		return resp, ErrDeviceTimeout
	}

	return resp, nil
}
