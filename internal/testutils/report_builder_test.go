package testutils

import (
	"testing"

	"github.com/srg/bleadv/pkg/advertisement"
	"github.com/srg/bleadv/pkg/bleuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBuilder_Defaults(t *testing.T) {
	r := NewReportBuilder().Build()

	assert.Equal(t, "AA:BB:CC:DD:EE:FF", r.AddressString)
	assert.Len(t, r.Address, 6)
	assert.True(t, r.Connectable)
	assert.Nil(t, r.AddressIsRandom)
	assert.Empty(t, r.Items)
}

func TestReportBuilder_PayloadRoundTrip(t *testing.T) {
	r := CreateMockReport("Sensor", "11:22:33:44:55:66", -52).
		WithRandomAddress(true).
		WithServices("180F").
		WithManufacturerData(advertisement.CompanyNordic, []byte{0xAA}).
		WithTxPower(-4).
		Build()

	require.NotNil(t, r.AddressIsRandom)
	assert.True(t, *r.AddressIsRandom)
	assert.Equal(t, -52, r.RSSI)

	adv, err := r.Decode()
	require.NoError(t, err)
	assert.Equal(t, "Sensor", adv.DeviceName)
	assert.True(t, adv.HasService(bleuuid.ExpandAdoptedKey(0x180F)))
	assert.True(t, adv.HasCompanyID(advertisement.CompanyNordic))
	assert.True(t, adv.HasTxPowerLevel)
	assert.Equal(t, -4, adv.TxPowerLevel)
}

func TestReportBuilder_PreSplit(t *testing.T) {
	r := CreateMockReport("Sensor", "11:22:33:44:55:66", -52).PreSplit().Build()

	assert.Nil(t, r.Payload)
	require.Len(t, r.Items, 1)
	assert.Equal(t, advertisement.TypeCompleteLocalName, r.Items[0].Type)
}

func TestReportBuilder_FromJSON(t *testing.T) {
	r := CreateMockReportFromJSON(`{
		"address": "%s",
		"random": false,
		"rssi": -70,
		"connectable": false,
		"service_data": {"180f": "64"}
	}`, "01:02:03:04:05:06").Build()

	assert.Equal(t, "01:02:03:04:05:06", r.AddressString)
	assert.False(t, r.Connectable)
	assert.Equal(t, -70, r.RSSI)

	adv, err := r.Decode()
	require.NoError(t, err)
	data, ok := adv.ServiceDataFor(bleuuid.ExpandAdoptedKey(0x180F))
	require.True(t, ok)
	assert.Equal(t, []byte{0x64}, data)
}

func TestReportBuilder_RawPayload(t *testing.T) {
	r := CreateMockReportFromJSON(`{"raw": "0501"}`).Build()

	assert.Equal(t, []byte{0x05, 0x01}, r.Payload)
	_, err := r.Decode()
	assert.ErrorIs(t, err, advertisement.ErrDataFormat)
}

func TestReportBuilder_InvalidJSONPanics(t *testing.T) {
	assert.Panics(t, func() { CreateMockReportFromJSON(`{`) })
}
