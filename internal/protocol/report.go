// Package protocol implements the vendor command protocol spoken by the
// keyboard's control endpoint: a fixed 90-byte request/response record
// with an XOR checksum, exchanged one request at a time.
package protocol

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Device status byte values reported on responses.
const (
	StatusNew         = 0x00 // unset, as carried on a request
	StatusBusy        = 0x01
	StatusOK          = 0x02
	StatusFailure     = 0x03
	StatusTimeout     = 0x04
	StatusUnsupported = 0x05
)

const (
	// ReportLength is the fixed wire size of a request or response record.
	ReportLength = 90

	// ArgumentsLength is the fixed size of the payload area.
	ArgumentsLength = 80

	// DefaultTransactionID is used unless a model quirk overrides it.
	DefaultTransactionID = 0xFF
)

// Report is the fixed-length record exchanged with the keyboard. Field
// order matches the wire layout; RemainingPackets is big endian on the
// wire (device byte order, never host order).
type Report struct {
	Status           byte
	TransactionID    byte
	RemainingPackets uint16
	ProtocolType     byte
	DataSize         byte
	CommandClass     byte
	CommandID        byte
	Arguments        [ArgumentsLength]byte
	Checksum         byte
	Reserved         byte
}

// NewReport returns a zeroed record with the identifying fields set and
// the default transaction id. The checksum stays unset until the
// transport recomputes it at transmission time.
func NewReport(class, id, size byte) *Report {
	return &Report{
		TransactionID: DefaultTransactionID,
		DataSize:      size,
		CommandClass:  class,
		CommandID:     id,
	}
}

// Marshal serializes the record to its wire form.
func (r *Report) Marshal() []byte {
	buf := make([]byte, ReportLength)
	buf[0] = r.Status
	buf[1] = r.TransactionID
	binary.BigEndian.PutUint16(buf[2:4], r.RemainingPackets)
	buf[4] = r.ProtocolType
	buf[5] = r.DataSize
	buf[6] = r.CommandClass
	buf[7] = r.CommandID
	copy(buf[8:8+ArgumentsLength], r.Arguments[:])
	buf[88] = r.Checksum
	buf[89] = r.Reserved
	return buf
}

// Unmarshal reinterprets a wire buffer field-wise. It performs no
// validation beyond the length check; correlating a response to its
// request is the transport's job.
func Unmarshal(b []byte) (*Report, error) {
	if len(b) != ReportLength {
		return nil, fmt.Errorf("short report: %d bytes, want %d", len(b), ReportLength)
	}
	r := &Report{
		Status:           b[0],
		TransactionID:    b[1],
		RemainingPackets: binary.BigEndian.Uint16(b[2:4]),
		ProtocolType:     b[4],
		DataSize:         b[5],
		CommandClass:     b[6],
		CommandID:        b[7],
		Checksum:         b[88],
		Reserved:         b[89],
	}
	copy(r.Arguments[:], b[8:8+ArgumentsLength])
	return r, nil
}

// CRC folds every marshalled byte preceding the checksum byte with
// exclusive-or.
func (r *Report) CRC() byte {
	var crc byte
	for _, b := range r.Marshal()[:88] {
		crc ^= b
	}
	return crc
}

// DumpString renders the record as dash-separated hex for log output.
func (r *Report) DumpString() string {
	hexDigits := hex.EncodeToString(r.Marshal())
	var builder strings.Builder
	for i, c := range hexDigits {
		if i > 0 && i%2 == 0 {
			builder.WriteString("-")
		}
		builder.WriteRune(c)
	}
	return builder.String()
}
