package bleuuid

import (
	"github.com/go-ble/ble"
	"github.com/google/uuid"
)

// FromBLE converts a go-ble UUID (little-endian, 2, 4 or 16 bytes) to a full UUID.
// Other lengths map to uuid.Nil.
func FromBLE(u ble.UUID) uuid.UUID {
	switch len(u) {
	case 2:
		return ExpandAdoptedKey(uint16(u[1])<<8 | uint16(u[0]))
	case 4:
		return ExpandAdoptedKey32(uint32(u[3])<<24 | uint32(u[2])<<16 | uint32(u[1])<<8 | uint32(u[0]))
	case 16:
		var id uuid.UUID
		for i := range id {
			id[i] = u[15-i]
		}
		return id
	default:
		return uuid.Nil
	}
}

// ToBLE converts a UUID to go-ble's representation, using the 16-bit form
// for reserved keys.
func ToBLE(id uuid.UUID) ble.UUID {
	if key, ok := AdoptedKey(id); ok {
		return ble.UUID16(key)
	}
	b := make([]byte, len(id))
	copy(b, id[:])
	return ble.UUID(ble.Reverse(b))
}
