package advertisement

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ManufacturerData is the content of one manufacturer-specific item.
//
// CompanyID is nil when the item is too short to carry the 2-byte
// little-endian identifier; Data then holds the raw item bytes.
type ManufacturerData struct {
	CompanyID *uint16
	Data      []byte
}

func newManufacturerData(d []byte) ManufacturerData {
	if len(d) < 2 {
		raw := make([]byte, len(d))
		copy(raw, d)
		return ManufacturerData{Data: raw}
	}
	id := binary.LittleEndian.Uint16(d)
	data := make([]byte, len(d)-2)
	copy(data, d[2:])
	return ManufacturerData{CompanyID: &id, Data: data}
}

// Equal compares the company identifier and the data bytes.
func (m ManufacturerData) Equal(other ManufacturerData) bool {
	if (m.CompanyID == nil) != (other.CompanyID == nil) {
		return false
	}
	if m.CompanyID != nil && *m.CompanyID != *other.CompanyID {
		return false
	}
	return bytes.Equal(m.Data, other.Data)
}

// Key returns a comparable value such that a.Key() == b.Key() iff a.Equal(b).
func (m ManufacturerData) Key() string {
	if m.CompanyID == nil {
		return "-:" + hex.EncodeToString(m.Data)
	}
	return fmt.Sprintf("%04x:%s", *m.CompanyID, hex.EncodeToString(m.Data))
}

// CompanyName resolves the company identifier, or returns "" when there is none.
func (m ManufacturerData) CompanyName() string {
	if m.CompanyID == nil {
		return ""
	}
	return CompanyName(*m.CompanyID)
}

func (m ManufacturerData) String() string {
	if m.CompanyID == nil {
		return fmt.Sprintf("[% X]", m.Data)
	}
	return fmt.Sprintf("0x%04X:[% X]", *m.CompanyID, m.Data)
}

// ManufacturerDataParser decodes the vendor-specific part of a manufacturer item.
type ManufacturerDataParser func(data []byte) (interface{}, error)

var parsersMu sync.RWMutex

var manufacturerDataParsers = map[uint16]ManufacturerDataParser{
	CompanyApple: parseAppleManufacturerData,
}

// RegisterManufacturerDataParser installs the parser used by Decoded for a company.
// Registering a parser for a company that already has one replaces it.
func RegisterManufacturerDataParser(companyID uint16, parser ManufacturerDataParser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	manufacturerDataParsers[companyID] = parser
}

// Decoded runs the registered parser for the entry's company.
// It returns (nil, nil) when the company is unknown or has no parser.
func (m ManufacturerData) Decoded() (interface{}, error) {
	if m.CompanyID == nil {
		return nil, nil
	}
	parsersMu.RLock()
	parser, ok := manufacturerDataParsers[*m.CompanyID]
	parsersMu.RUnlock()
	if !ok {
		return nil, nil
	}
	return parser(m.Data)
}

// IBeacon is the Apple proximity beacon frame.
//
// Format (23 bytes after the company id):
//   - Byte 0:      0x02 (iBeacon)
//   - Byte 1:      0x15 (remaining length, 21)
//   - Bytes 2-17:  proximity UUID, big endian
//   - Bytes 18-19: major, big endian
//   - Bytes 20-21: minor, big endian
//   - Byte 22:     measured power at 1m, signed dBm
type IBeacon struct {
	UUID          uuid.UUID
	Major         uint16
	Minor         uint16
	MeasuredPower int8
}

const (
	iBeaconType   = 0x02
	iBeaconLength = 0x15
)

// VendorID reports the Apple company identifier.
func (b *IBeacon) VendorID() uint16 {
	return CompanyApple
}

// VendorName reports the Apple company name.
func (b *IBeacon) VendorName() string {
	return CompanyName(CompanyApple)
}

func (b *IBeacon) String() string {
	return fmt.Sprintf("iBeacon uuid=%s major=%d minor=%d power=%ddBm", b.UUID, b.Major, b.Minor, b.MeasuredPower)
}

// Bytes encodes the frame without the company identifier.
func (b *IBeacon) Bytes() []byte {
	md := make([]byte, 23)
	md[0] = iBeaconType
	md[1] = iBeaconLength
	copy(md[2:18], b.UUID[:])
	binary.BigEndian.PutUint16(md[18:], b.Major)
	binary.BigEndian.PutUint16(md[20:], b.Minor)
	md[22] = uint8(b.MeasuredPower)
	return md
}

// parseAppleManufacturerData decodes iBeacon frames and ignores other Apple payloads.
func parseAppleManufacturerData(data []byte) (interface{}, error) {
	if len(data) < 2 || data[0] != iBeaconType {
		return nil, nil
	}
	if data[1] != iBeaconLength || len(data) < 23 {
		return nil, fmt.Errorf("ibeacon data too short: %d bytes, expected 23", len(data))
	}
	var id uuid.UUID
	copy(id[:], data[2:18])
	return &IBeacon{
		UUID:          id,
		Major:         binary.BigEndian.Uint16(data[18:20]),
		Minor:         binary.BigEndian.Uint16(data[20:22]),
		MeasuredPower: int8(data[22]),
	}, nil
}
