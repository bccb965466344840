// Package bleuuid converts between Bluetooth SIG adopted keys, device addresses
// and full 128-bit UUIDs.
//
// All UUIDs are held as github.com/google/uuid values, i.e. in RFC 4122
// network byte order. Wire formats that carry UUIDs little-endian are reversed
// by the callers that decode them.
package bleuuid

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// BaseUUID is the Bluetooth Base UUID, 00000000-0000-1000-8000-00805F9B34FB.
// Adopted 16-bit and 32-bit keys occupy its first four bytes.
var BaseUUID = uuid.UUID{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0x80, 0x5f, 0x9b, 0x34, 0xfb,
}

// AddressLength is the size of a BLE device address in bytes.
const AddressLength = 6

// ExpandAdoptedKey returns the 128-bit UUID 0000XXXX-0000-1000-8000-00805F9B34FB
// for a 16-bit adopted key.
func ExpandAdoptedKey(key uint16) uuid.UUID {
	id := BaseUUID
	id[2] = byte(key >> 8)
	id[3] = byte(key)
	return id
}

// ExpandAdoptedKey32 returns XXXXXXXX-0000-1000-8000-00805F9B34FB for a 32-bit key.
func ExpandAdoptedKey32(key uint32) uuid.UUID {
	id := BaseUUID
	id[0] = byte(key >> 24)
	id[1] = byte(key >> 16)
	id[2] = byte(key >> 8)
	id[3] = byte(key)
	return id
}

// ParseAdoptedKey expands a 16-bit key given as exactly four hex characters.
func ParseAdoptedKey(key string) (uuid.UUID, error) {
	if len(key) != 4 {
		return uuid.Nil, &InvalidArgumentError{
			Argument: "key",
			Expected: "4 hex characters",
			Got:      fmt.Sprintf("%q", key),
		}
	}
	b, err := hex.DecodeString(key)
	if err != nil {
		return uuid.Nil, &InvalidArgumentError{
			Argument: "key",
			Expected: "4 hex characters",
			Got:      fmt.Sprintf("%q", key),
		}
	}
	return ExpandAdoptedKey(uint16(b[0])<<8 | uint16(b[1])), nil
}

// AddressToUUID maps a 6-byte device address onto a UUID: bytes 0..9 are zero
// and bytes 10..15 carry the address in the given order.
func AddressToUUID(addr []byte) (uuid.UUID, error) {
	if len(addr) != AddressLength {
		return uuid.Nil, &InvalidArgumentError{
			Argument: "address",
			Expected: fmt.Sprintf("byte[%d]", AddressLength),
			Got:      fmt.Sprintf("byte[%d]", len(addr)),
		}
	}
	var id uuid.UUID
	copy(id[16-AddressLength:], addr)
	return id, nil
}

// IsReservedKey reports whether id lies in the 16-bit range of the Bluetooth
// Base UUID, that is whether it equals the base once bytes 2..3 are cleared.
func IsReservedKey(id uuid.UUID) bool {
	id[2], id[3] = 0, 0
	return id == BaseUUID
}

// AdoptedKey returns the 16-bit key of a reserved UUID.
func AdoptedKey(id uuid.UUID) (uint16, bool) {
	if !IsReservedKey(id) {
		return 0, false
	}
	return uint16(id[2])<<8 | uint16(id[3]), true
}

// Parse accepts the textual forms users type for BLE UUIDs:
// "180d", "0x180D", "0000180d", "0000180d-0000-1000-8000-00805f9b34fb",
// the dashless 32-character form, and any of these wrapped in braces.
// Four hex characters expand as a 16-bit key and eight as a 32-bit key.
func Parse(s string) (uuid.UUID, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(strings.TrimSuffix(cleaned, "}"), "{")
	if strings.HasPrefix(cleaned, "0x") || strings.HasPrefix(cleaned, "0X") {
		cleaned = cleaned[2:]
	}

	switch len(cleaned) {
	case 4:
		return ParseAdoptedKey(cleaned)
	case 8:
		b, err := hex.DecodeString(cleaned)
		if err != nil {
			return uuid.Nil, invalidUUID(s)
		}
		return ExpandAdoptedKey32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), nil
	}

	id, err := uuid.Parse(cleaned)
	if err != nil {
		return uuid.Nil, invalidUUID(s)
	}
	return id, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) uuid.UUID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Normalize returns the comparison form of a UUID string: the 4-digit short
// form for SIG UUIDs and 32 lowercase hex digits otherwise. Invalid input
// yields an empty string.
func Normalize(s string) string {
	id, err := Parse(s)
	if err != nil {
		return ""
	}
	if key, ok := AdoptedKey(id); ok {
		return fmt.Sprintf("%04x", key)
	}
	return hex.EncodeToString(id[:])
}

// Short renders reserved UUIDs as their 16-bit key and the rest in full.
func Short(id uuid.UUID) string {
	if key, ok := AdoptedKey(id); ok {
		return fmt.Sprintf("%04x", key)
	}
	return id.String()
}

func invalidUUID(s string) error {
	return &InvalidArgumentError{
		Argument: "uuid",
		Expected: "16-bit key, 32-bit key or 128-bit UUID",
		Got:      fmt.Sprintf("%q", s),
	}
}
