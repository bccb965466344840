package bleuuid

import (
	"errors"
	"testing"

	"github.com/go-ble/ble"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandAdoptedKey(t *testing.T) {
	tests := []struct {
		name     string
		key      uint16
		expected string
	}{
		{name: "client characteristic configuration", key: 0x2902, expected: "00002902-0000-1000-8000-00805f9b34fb"},
		{name: "heart rate service", key: 0x180d, expected: "0000180d-0000-1000-8000-00805f9b34fb"},
		{name: "zero key is the base uuid", key: 0x0000, expected: "00000000-0000-1000-8000-00805f9b34fb"},
		{name: "max key", key: 0xffff, expected: "0000ffff-0000-1000-8000-00805f9b34fb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandAdoptedKey(tt.key).String())
		})
	}
}

func TestExpandAdoptedKey_AllKeysAreReserved(t *testing.T) {
	for k := 0; k <= 0xffff; k++ {
		id := ExpandAdoptedKey(uint16(k))
		key, ok := AdoptedKey(id)
		if !ok || key != uint16(k) {
			t.Fatalf("key %04x did not round trip: got %04x ok=%v", k, key, ok)
		}
	}
}

func TestExpandAdoptedKey32(t *testing.T) {
	assert.Equal(t, "12345678-0000-1000-8000-00805f9b34fb", ExpandAdoptedKey32(0x12345678).String())
	assert.Equal(t, ExpandAdoptedKey(0x180f), ExpandAdoptedKey32(0x180f))
}

func TestParseAdoptedKey(t *testing.T) {
	t.Run("four hex characters", func(t *testing.T) {
		id, err := ParseAdoptedKey("2a37")
		require.NoError(t, err)
		assert.Equal(t, ExpandAdoptedKey(0x2a37), id)
	})

	t.Run("upper case", func(t *testing.T) {
		id, err := ParseAdoptedKey("2A37")
		require.NoError(t, err)
		assert.Equal(t, ExpandAdoptedKey(0x2a37), id)
	})

	for _, input := range []string{"", "2a3", "2a370", "zzzz", "0x2a"} {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := ParseAdoptedKey(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestAddressToUUID(t *testing.T) {
	t.Run("places address in the last six bytes", func(t *testing.T) {
		id, err := AddressToUUID([]byte{1, 2, 3, 4, 5, 6})
		require.NoError(t, err)
		assert.Equal(t, "00000000-0000-0000-0000-010203040506", id.String())
		assert.Equal(t, make([]byte, 10), id[:10])
		assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, id[10:])
	})

	for _, n := range []int{0, 5, 7, 16} {
		t.Run("rejects wrong length", func(t *testing.T) {
			_, err := AddressToUUID(make([]byte, n))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			var argErr *InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, "byte[6]", argErr.Expected)
		})
	}
}

func TestIsReservedKey(t *testing.T) {
	tests := []struct {
		name     string
		id       uuid.UUID
		expected bool
	}{
		{name: "adopted service", id: ExpandAdoptedKey(0x180f), expected: true},
		{name: "base uuid", id: BaseUUID, expected: true},
		{name: "32-bit key is outside 16-bit range", id: ExpandAdoptedKey32(0x0001180f), expected: false},
		{name: "vendor uuid", id: uuid.MustParse("6e400001-b5a3-f393-e0a9-e50e24dcca9e"), expected: false},
		{name: "nil uuid", id: uuid.Nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsReservedKey(tt.id))
		})
	}
}

func TestParse(t *testing.T) {
	heartRate := ExpandAdoptedKey(0x180d)
	nus := uuid.MustParse("6e400001-b5a3-f393-e0a9-e50e24dcca9e")

	tests := []struct {
		name     string
		input    string
		expected uuid.UUID
	}{
		{name: "16-bit short form", input: "180d", expected: heartRate},
		{name: "16-bit with 0x prefix", input: "0x180D", expected: heartRate},
		{name: "32-bit form", input: "0000180d", expected: heartRate},
		{name: "full form", input: "0000180d-0000-1000-8000-00805f9b34fb", expected: heartRate},
		{name: "full form without dashes", input: "0000180d00001000800000805f9b34fb", expected: heartRate},
		{name: "braces", input: "{0000180d-0000-1000-8000-00805f9b34fb}", expected: heartRate},
		{name: "vendor uuid", input: "6E400001-B5A3-F393-E0A9-E50E24DCCA9E", expected: nus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Parse("not-a-uuid")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "180d", Normalize("0000180D-0000-1000-8000-00805F9B34FB"))
	assert.Equal(t, "180d", Normalize("0x180d"))
	assert.Equal(t, "6e400001b5a3f393e0a9e50e24dcca9e", Normalize("6e400001-b5a3-f393-e0a9-e50e24dcca9e"))
	assert.Equal(t, "", Normalize("xyz"))
}

func TestShort(t *testing.T) {
	assert.Equal(t, "2902", Short(ExpandAdoptedKey(0x2902)))
	assert.Equal(t, "6e400001-b5a3-f393-e0a9-e50e24dcca9e", Short(uuid.MustParse("6e400001-b5a3-f393-e0a9-e50e24dcca9e")))
}

func TestBLEConversion(t *testing.T) {
	t.Run("16-bit", func(t *testing.T) {
		assert.Equal(t, ExpandAdoptedKey(0x180d), FromBLE(ble.UUID16(0x180d)))
		assert.True(t, ble.UUID16(0x180d).Equal(ToBLE(ExpandAdoptedKey(0x180d))))
	})

	t.Run("128-bit round trip", func(t *testing.T) {
		id := uuid.MustParse("6e400001-b5a3-f393-e0a9-e50e24dcca9e")
		converted := ToBLE(id)
		require.Len(t, converted, 16)
		assert.Equal(t, byte(0x9e), converted[0])
		assert.Equal(t, id, FromBLE(converted))
	})

	t.Run("unsupported length", func(t *testing.T) {
		assert.Equal(t, uuid.Nil, FromBLE(ble.UUID{1, 2, 3}))
	})
}
