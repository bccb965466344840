package gatt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/srg/bleadv/pkg/bleuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAttributes(t *testing.T) {
	input := `
attributes:
  - uuid: 6e400001-b5a3-f393-e0a9-e50e24dcca9e
    name: Nordic UART Service
    type: service
  - uuid: 0x2A37
    name: Heart Rate Measurement
    type: characteristic
  - uuid: "2902"
    name: CCCD
    type: Descriptor
`
	attrs, err := LoadAttributes(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, attrs, 3)

	assert.Equal(t, Attribute{
		ID:          uuid.MustParse("6e400001-b5a3-f393-e0a9-e50e24dcca9e"),
		Description: "Nordic UART Service",
		Type:        Service,
	}, attrs[0])
	assert.Equal(t, NewAttribute(Characteristic, 0x2a37, "Heart Rate Measurement"), attrs[1])
	assert.Equal(t, NewAttribute(Descriptor, 0x2902, "CCCD"), attrs[2])
}

func TestLoadAttributes_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{
			name:  "bad type",
			input: "attributes:\n  - uuid: \"180d\"\n    name: HR\n    type: widget\n",
			msg:   "invalid attribute type",
		},
		{
			name:  "bad uuid",
			input: "attributes:\n  - uuid: not-a-uuid\n    name: HR\n    type: service\n",
			msg:   "invalid uuid",
		},
		{
			name:  "missing name",
			input: "attributes:\n  - uuid: \"180d\"\n    type: service\n",
			msg:   "missing name",
		},
		{
			name:  "not yaml",
			input: "attributes: [",
			msg:   "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAttributes(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadAttributes_Empty(t *testing.T) {
	attrs, err := LoadAttributes(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, attrs)
}

func TestLoadAttributesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attrs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("attributes:\n  - uuid: 0x1530\n    name: DFU\n    type: service\n"), 0o600))

	attrs, err := LoadAttributesFile(path)
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	assert.Equal(t, bleuuid.ExpandAdoptedKey(0x1530), attrs[0].ID)

	_, err = LoadAttributesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSIGAttributes(t *testing.T) {
	input := `
uuids:
  - uuid: 0x1800
    name: GAP
    id: org.bluetooth.service.gap
  - uuid: 0x1801
    name: GATT
    id: org.bluetooth.service.gatt
  - uuid: 0x1802
    id: no.name.skipped
`
	attrs, err := LoadSIGAttributes(strings.NewReader(input), Service)
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	assert.Equal(t, NewAttribute(Service, 0x1800, "GAP"), attrs[0])
	assert.Equal(t, NewAttribute(Service, 0x1801, "GATT"), attrs[1])
}

func TestLoadSIGAttributesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descriptors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("uuids:\n  - uuid: 0x2900\n    name: Characteristic Extended Properties\n"), 0o600))

	attrs, err := LoadSIGAttributesFile(path, Descriptor)
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	assert.Equal(t, NewAttribute(Descriptor, 0x2900, "Characteristic Extended Properties"), attrs[0])

	_, err = LoadSIGAttributesFile(filepath.Join(t.TempDir(), "missing.yaml"), Descriptor)
	assert.Error(t, err)
}

func TestRegistry_AddAllFromFile(t *testing.T) {
	attrs, err := LoadAttributes(strings.NewReader("attributes:\n  - uuid: 0x180d\n    name: Custom HR\n    type: service\n"))
	require.NoError(t, err)

	reg := NewRegistryWithAdoptedAttributes(nil)
	results := reg.AddAll(attrs)
	require.Len(t, results, 1)
	assert.False(t, results[0].OK(), "adopted entry registered first wins")
	assert.Equal(t, "Heart Rate", reg.DescriptionOrUUID(bleuuid.ExpandAdoptedKey(0x180d)))
}

func TestAttributeType_Text(t *testing.T) {
	for _, at := range []AttributeType{Service, Characteristic, Descriptor} {
		text, err := at.MarshalText()
		require.NoError(t, err)

		var parsed AttributeType
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, at, parsed)
	}

	var parsed AttributeType
	assert.Error(t, parsed.UnmarshalText([]byte("widget")))
	assert.Equal(t, "AttributeType(7)", AttributeType(7).String())
}
