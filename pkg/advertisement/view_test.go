package advertisement_test

import (
	"encoding/json"
	"testing"

	"github.com/srg/bleadv/internal/testutils"
	"github.com/srg/bleadv/pkg/advertisement"
	"github.com/srg/bleadv/pkg/bleuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fullAdvertisement() *advertisement.Advertisement {
	return advertisement.NewBuilder().
		AppendFlags(advertisement.FlagGeneralDiscoverable | advertisement.FlagClassicNotSupported).
		AppendCompleteName("Thermo").
		AppendServices(bleuuid.ExpandAdoptedKey(0x181A)).
		AppendServiceData(bleuuid.ExpandAdoptedKey(0x180F), []byte{0x64}).
		AppendManufacturerData(advertisement.CompanyApple, []byte{0x01, 0x02}).
		AppendTxPower(-8).
		AppendAppearance(0x0300).
		Advertisement()
}

func TestNewView(t *testing.T) {
	// GOAL: Verify every interpreted field appears in the view with hex data and short UUIDs
	//
	// TEST SCENARIO: Build an advertisement with each common field → view JSON matches

	v := advertisement.NewView(fullAdvertisement(), false)

	testutils.NewJSONAsserter(t).WithOptions(testutils.WithIgnoreExtraKeys(false)).AssertValue(v, `{
		"name": "Thermo",
		"flags": ["GeneralDiscoverable", "ClassicNotSupported"],
		"services": ["181a"],
		"service_data": [{"uuid": "180f", "data": "64"}],
		"manufacturer_data": [{"company_id": "0x004C", "company": "Apple, Inc.", "data": "0102"}],
		"tx_power": -8,
		"appearance": 768
	}`)
}

func TestNewView_Raw(t *testing.T) {
	v := advertisement.NewView(fullAdvertisement(), true)
	require.Len(t, v.RawData, 7)
	assert.Equal(t, advertisement.ItemView{Type: "Flags", Data: "06"}, v.RawData[0])
	assert.Equal(t, "CompleteLocalName", v.RawData[1].Type)
}

func TestNewView_Nil(t *testing.T) {
	assert.Equal(t, advertisement.View{}, advertisement.NewView(nil, true))
}

func TestNewView_ManufacturerWithoutCompany(t *testing.T) {
	adv := advertisement.New([]advertisement.Item{
		{Type: advertisement.TypeManufacturerSpecificData, Data: []byte{0x4c}},
	})
	testutils.NewJSONAsserter(t).AssertValue(advertisement.NewView(adv, false), `{
		"manufacturer_data": [{"data": "4c"}]
	}`)
}

func TestAdvertisement_MarshalIncludesRaw(t *testing.T) {
	adv := fullAdvertisement()

	data, err := json.Marshal(adv)
	require.NoError(t, err)
	testutils.NewJSONAsserter(t).Assert(string(data), `{
		"name": "Thermo",
		"raw": "<<PRESENCE>>"
	}`)

	out, err := yaml.Marshal(adv)
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: Thermo")
	assert.Contains(t, string(out), "raw:")
}
