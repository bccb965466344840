package gatt

import (
	"testing"

	"github.com/go-ble/ble"
	"github.com/stretchr/testify/assert"
)

func TestCharacteristicProperty(t *testing.T) {
	tests := []struct {
		name        string
		p           CharacteristicProperty
		canRead     bool
		canWrite    bool
		canNotify   bool
		canIndicate bool
		str         string
	}{
		{name: "none", p: 0, str: "None"},
		{name: "read only", p: PropertyRead, canRead: true, str: "Read"},
		{name: "write without response only", p: PropertyWriteNoResponse, canWrite: true, str: "WriteNoResponse"},
		{name: "write only", p: PropertyWrite, canWrite: true, str: "Write"},
		{
			name:      "read notify",
			p:         PropertyRead | PropertyNotify,
			canRead:   true,
			canNotify: true,
			str:       "Read|Notify",
		},
		{
			name:        "everything",
			p:           0xff,
			canRead:     true,
			canWrite:    true,
			canNotify:   true,
			canIndicate: true,
			str:         "Broadcast|Read|WriteNoResponse|Write|Notify|Indicate|SignedWrite|ExtendedProperties",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canRead, tt.p.CanRead())
			assert.Equal(t, tt.canWrite, tt.p.CanWrite())
			assert.Equal(t, tt.canNotify, tt.p.CanNotify())
			assert.Equal(t, tt.canIndicate, tt.p.CanIndicate())
			assert.Equal(t, tt.str, tt.p.String())
		})
	}
}

func TestCharacteristicProperty_Has(t *testing.T) {
	p := PropertyRead | PropertyWrite
	assert.True(t, p.Has(PropertyRead))
	assert.True(t, p.Has(PropertyRead|PropertyWrite))
	assert.False(t, p.Has(PropertyRead|PropertyNotify))
}

func TestExtendedProperty(t *testing.T) {
	e := NotifyEncryptionRequired
	assert.True(t, e.Has(NotifyEncryptionRequired))
	assert.False(t, e.Has(IndicateEncryptionRequired))
	assert.Equal(t, "NotifyEncryptionRequired", e.String())
	assert.Equal(t, "NotifyEncryptionRequired|IndicateEncryptionRequired", (e | IndicateEncryptionRequired).String())
	assert.Equal(t, "None", ExtendedProperty(0).String())
	assert.Equal(t, ExtendedProperty(256), NotifyEncryptionRequired)
	assert.Equal(t, ExtendedProperty(512), IndicateEncryptionRequired)
}

func TestPropertyBLEConversion(t *testing.T) {
	assert.Equal(t, PropertyRead|PropertyNotify, PropertyFromBLE(ble.CharRead|ble.CharNotify))
	assert.Equal(t, PropertyWriteNoResponse, PropertyFromBLE(ble.CharWriteNR))

	for p := 0; p <= 0xff; p++ {
		prop := CharacteristicProperty(p)
		assert.Equal(t, prop, PropertyFromBLE(prop.ToBLE()))
	}
}
