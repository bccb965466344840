package advertisement

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/srg/bleadv/pkg/bleuuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TxPowerUnknown is the TxPowerLevel of an advertisement without a Tx Power item.
const TxPowerUnknown = 127

// Advertisement is the interpreted view of a parsed payload.
// It is built once by New and must not be modified afterwards.
type Advertisement struct {
	DeviceName    string
	HasDeviceName bool

	Flags Flags

	// ManufacturerData keeps one entry per manufacturer item, in payload order.
	ManufacturerData []ManufacturerData

	// RawData holds every item of the payload, known or not, in payload order.
	RawData []Item

	// ServiceData maps service UUIDs to their data in first-seen order.
	// A later item for the same UUID replaces the data but keeps the position.
	ServiceData *orderedmap.OrderedMap[uuid.UUID, []byte]

	// Services is the set of advertised service UUIDs in first-seen order.
	Services []uuid.UUID

	// SolicitedServices is the set of service solicitation UUIDs in first-seen order.
	SolicitedServices []uuid.UUID

	TxPowerLevel    int
	HasTxPowerLevel bool

	Appearance    uint16
	HasAppearance bool

	URI string
}

// Decode parses a raw payload and interprets it.
func Decode(b []byte) (*Advertisement, error) {
	items, err := Parse(b)
	if err != nil {
		return nil, err
	}
	return New(items), nil
}

// New interprets a list of items. Items of unknown or uninterpreted types
// are only reflected in RawData.
func New(items []Item) *Advertisement {
	adv := &Advertisement{
		RawData:      make([]Item, len(items)),
		ServiceData:  orderedmap.New[uuid.UUID, []byte](),
		TxPowerLevel: TxPowerUnknown,
	}
	copy(adv.RawData, items)

	var shortName string
	var hasShortName bool

	for _, item := range items {
		switch item.Type {
		case TypeFlags:
			if len(item.Data) > 0 {
				adv.Flags = Flags(item.Data[0])
			}

		case TypeCompleteLocalName:
			adv.DeviceName = string(item.Data)
			adv.HasDeviceName = true

		case TypeShortenedLocalName:
			if !hasShortName {
				shortName = string(item.Data)
				hasShortName = true
			}

		case TypeIncompleteServices16, TypeCompleteServices16:
			adv.Services = appendUnique(adv.Services, uuidList(item.Data, 2)...)
		case TypeIncompleteServices32, TypeCompleteServices32:
			adv.Services = appendUnique(adv.Services, uuidList(item.Data, 4)...)
		case TypeIncompleteServices128, TypeCompleteServices128:
			adv.Services = appendUnique(adv.Services, uuidList(item.Data, 16)...)

		case TypeServiceSolicitations16:
			adv.SolicitedServices = appendUnique(adv.SolicitedServices, uuidList(item.Data, 2)...)
		case TypeServiceSolicitations32:
			adv.SolicitedServices = appendUnique(adv.SolicitedServices, uuidList(item.Data, 4)...)
		case TypeServiceSolicitations128:
			adv.SolicitedServices = appendUnique(adv.SolicitedServices, uuidList(item.Data, 16)...)

		case TypeServiceData16:
			adv.addServiceData(item.Data, 2)
		case TypeServiceData32:
			adv.addServiceData(item.Data, 4)
		case TypeServiceData128:
			adv.addServiceData(item.Data, 16)

		case TypeManufacturerSpecificData:
			adv.ManufacturerData = append(adv.ManufacturerData, newManufacturerData(item.Data))

		case TypeTxPowerLevel:
			if len(item.Data) > 0 {
				adv.TxPowerLevel = int(int8(item.Data[0]))
				adv.HasTxPowerLevel = true
			}

		case TypeAppearance:
			if len(item.Data) >= 2 {
				adv.Appearance = binary.LittleEndian.Uint16(item.Data)
				adv.HasAppearance = true
			}

		case TypeURI:
			adv.URI = decodeURI(item.Data)
		}
	}

	if !adv.HasDeviceName && hasShortName {
		adv.DeviceName = shortName
		adv.HasDeviceName = true
	}

	return adv
}

// HasService reports whether id is among the advertised services.
func (a *Advertisement) HasService(id uuid.UUID) bool {
	if a == nil {
		return false
	}
	for _, s := range a.Services {
		if s == id {
			return true
		}
	}
	return false
}

// ServiceDataFor returns the data advertised for a service UUID.
func (a *Advertisement) ServiceDataFor(id uuid.UUID) ([]byte, bool) {
	if a == nil || a.ServiceData == nil {
		return nil, false
	}
	return a.ServiceData.Get(id)
}

// CompanyIDs lists the company identifiers of all manufacturer entries that have one.
func (a *Advertisement) CompanyIDs() []uint16 {
	if a == nil {
		return nil
	}
	var ids []uint16
	for _, md := range a.ManufacturerData {
		if md.CompanyID != nil {
			ids = append(ids, *md.CompanyID)
		}
	}
	return ids
}

// HasCompanyID reports whether any manufacturer entry carries the given company id.
func (a *Advertisement) HasCompanyID(id uint16) bool {
	for _, cid := range a.CompanyIDs() {
		if cid == id {
			return true
		}
	}
	return false
}

func (a *Advertisement) String() string {
	if a == nil {
		return "<nil>"
	}
	var parts []string
	if a.HasDeviceName {
		parts = append(parts, fmt.Sprintf("name=%q", a.DeviceName))
	}
	if a.Flags != 0 {
		parts = append(parts, "flags="+a.Flags.String())
	}
	if len(a.Services) > 0 {
		svcs := make([]string, len(a.Services))
		for i, s := range a.Services {
			svcs[i] = bleuuid.Short(s)
		}
		parts = append(parts, "services=["+strings.Join(svcs, ",")+"]")
	}
	for _, md := range a.ManufacturerData {
		parts = append(parts, "mfg="+md.String())
	}
	if a.HasTxPowerLevel {
		parts = append(parts, fmt.Sprintf("tx=%ddBm", a.TxPowerLevel))
	}
	return "Advertisement{" + strings.Join(parts, " ") + "}"
}

func (a *Advertisement) addServiceData(data []byte, width int) {
	if len(data) < width {
		return
	}
	id := uuidFromLE(data[:width])
	value := make([]byte, len(data)-width)
	copy(value, data[width:])
	a.ServiceData.Set(id, value)
}

// uuidList decodes consecutive little-endian UUIDs of the given width.
// A trailing partial entry is ignored.
func uuidList(d []byte, width int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(d)/width)
	for len(d) >= width {
		ids = append(ids, uuidFromLE(d[:width]))
		d = d[width:]
	}
	return ids
}

func uuidFromLE(d []byte) uuid.UUID {
	switch len(d) {
	case 2:
		return bleuuid.ExpandAdoptedKey(binary.LittleEndian.Uint16(d))
	case 4:
		return bleuuid.ExpandAdoptedKey32(binary.LittleEndian.Uint32(d))
	default:
		var id uuid.UUID
		for i := range id {
			id[i] = d[15-i]
		}
		return id
	}
}

func appendUnique(set []uuid.UUID, ids ...uuid.UUID) []uuid.UUID {
next:
	for _, id := range ids {
		for _, existing := range set {
			if existing == id {
				continue next
			}
		}
		set = append(set, id)
	}
	return set
}

// uriSchemes maps the scheme codes of the URI AD type to their prefixes.
// Code 0x01 means the scheme is spelled out in the remaining text.
var uriSchemes = map[byte]string{
	0x01: "",
	0x16: "http:",
	0x17: "https:",
}

func decodeURI(d []byte) string {
	if len(d) == 0 {
		return ""
	}
	if prefix, ok := uriSchemes[d[0]]; ok {
		return prefix + string(d[1:])
	}
	return string(d)
}
