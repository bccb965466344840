package advertisement

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/srg/bleadv/pkg/bleuuid"
)

// View is the serializable form of an Advertisement used for JSON and YAML output.
// Byte slices are rendered as lowercase hex and UUIDs in their short form when reserved.
type View struct {
	Name              *string                `json:"name,omitempty" yaml:"name,omitempty"`
	Flags             []string               `json:"flags,omitempty" yaml:"flags,omitempty"`
	Services          []string               `json:"services,omitempty" yaml:"services,omitempty"`
	SolicitedServices []string               `json:"solicited_services,omitempty" yaml:"solicited_services,omitempty"`
	ServiceData       []ServiceDataView      `json:"service_data,omitempty" yaml:"service_data,omitempty"`
	ManufacturerData  []ManufacturerDataView `json:"manufacturer_data,omitempty" yaml:"manufacturer_data,omitempty"`
	TxPowerLevel      *int                   `json:"tx_power,omitempty" yaml:"tx_power,omitempty"`
	Appearance        *uint16                `json:"appearance,omitempty" yaml:"appearance,omitempty"`
	URI               string                 `json:"uri,omitempty" yaml:"uri,omitempty"`
	RawData           []ItemView             `json:"raw,omitempty" yaml:"raw,omitempty"`
}

type ServiceDataView struct {
	UUID string `json:"uuid" yaml:"uuid"`
	Data string `json:"data" yaml:"data"`
}

type ManufacturerDataView struct {
	CompanyID *string `json:"company_id,omitempty" yaml:"company_id,omitempty"`
	Company   string  `json:"company,omitempty" yaml:"company,omitempty"`
	Data      string  `json:"data" yaml:"data"`
}

type ItemView struct {
	Type string `json:"type" yaml:"type"`
	Data string `json:"data" yaml:"data"`
}

// NewView builds the serializable form. RawData is included only when withRaw is set.
func NewView(a *Advertisement, withRaw bool) View {
	var v View
	if a == nil {
		return v
	}

	if a.HasDeviceName {
		name := a.DeviceName
		v.Name = &name
	}
	v.Flags = a.Flags.Names()
	for _, s := range a.Services {
		v.Services = append(v.Services, bleuuid.Short(s))
	}
	for _, s := range a.SolicitedServices {
		v.SolicitedServices = append(v.SolicitedServices, bleuuid.Short(s))
	}
	if a.ServiceData != nil {
		for pair := a.ServiceData.Oldest(); pair != nil; pair = pair.Next() {
			v.ServiceData = append(v.ServiceData, ServiceDataView{
				UUID: bleuuid.Short(pair.Key),
				Data: hex.EncodeToString(pair.Value),
			})
		}
	}
	for _, md := range a.ManufacturerData {
		mv := ManufacturerDataView{Data: hex.EncodeToString(md.Data)}
		if md.CompanyID != nil {
			id := fmt.Sprintf("0x%04X", *md.CompanyID)
			mv.CompanyID = &id
			mv.Company = md.CompanyName()
		}
		v.ManufacturerData = append(v.ManufacturerData, mv)
	}
	if a.HasTxPowerLevel {
		tx := a.TxPowerLevel
		v.TxPowerLevel = &tx
	}
	if a.HasAppearance {
		appearance := a.Appearance
		v.Appearance = &appearance
	}
	v.URI = a.URI

	if withRaw {
		for _, item := range a.RawData {
			v.RawData = append(v.RawData, ItemView{Type: item.Type.String(), Data: hex.EncodeToString(item.Data)})
		}
	}
	return v
}

// MarshalJSON encodes the advertisement through its View, raw items included.
func (a *Advertisement) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewView(a, true))
}

// MarshalYAML encodes the advertisement through its View, raw items included.
func (a *Advertisement) MarshalYAML() (interface{}, error) {
	return NewView(a, true), nil
}
