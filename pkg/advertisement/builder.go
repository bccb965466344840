package advertisement

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"github.com/srg/bleadv/pkg/bleuuid"
)

const (
	// MaxLegacyPayloadLength is the size limit of a legacy advertising or scan response payload.
	MaxLegacyPayloadLength = 31

	// MaxItemDataLength is the largest data part one structure can describe.
	MaxItemDataLength = 254
)

// Encode serializes items into the [length][type][data] wire form.
func Encode(items []Item) ([]byte, error) {
	size := 0
	for _, item := range items {
		if len(item.Data) > MaxItemDataLength {
			return nil, fmt.Errorf("%s data is %d bytes, at most %d fit in one structure", item.Type, len(item.Data), MaxItemDataLength)
		}
		size += 2 + len(item.Data)
	}

	out := make([]byte, 0, size)
	for _, item := range items {
		out = append(out, byte(len(item.Data)+1), byte(item.Type))
		out = append(out, item.Data...)
	}
	return out, nil
}

// Builder assembles a payload item by item.
//
// Example:
//
//	payload, err := advertisement.NewBuilder().
//		AppendFlags(advertisement.FlagGeneralDiscoverable | advertisement.FlagClassicNotSupported).
//		AppendCompleteName("Thermometer").
//		AppendServices(bleuuid.ExpandAdoptedKey(0x1809)).
//		Bytes()
type Builder struct {
	items []Item
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AppendField appends an item with an arbitrary type.
func (b *Builder) AppendField(typ DataType, data []byte) *Builder {
	d := make([]byte, len(data))
	copy(d, data)
	b.items = append(b.items, Item{Type: typ, Data: d})
	return b
}

// AppendFlags appends a flags item.
func (b *Builder) AppendFlags(f Flags) *Builder {
	return b.AppendField(TypeFlags, []byte{byte(f)})
}

// AppendCompleteName appends a complete local name item.
func (b *Builder) AppendCompleteName(name string) *Builder {
	return b.AppendField(TypeCompleteLocalName, []byte(name))
}

// AppendShortName appends a shortened local name item.
func (b *Builder) AppendShortName(name string) *Builder {
	return b.AppendField(TypeShortenedLocalName, []byte(name))
}

// AppendTxPower appends a tx power level item.
func (b *Builder) AppendTxPower(dBm int8) *Builder {
	return b.AppendField(TypeTxPowerLevel, []byte{byte(dBm)})
}

// AppendAppearance appends an appearance item.
func (b *Builder) AppendAppearance(appearance uint16) *Builder {
	return b.AppendField(TypeAppearance, binary.LittleEndian.AppendUint16(nil, appearance))
}

// AppendManufacturerData appends a manufacturer item with the company id in front of data.
func (b *Builder) AppendManufacturerData(companyID uint16, data []byte) *Builder {
	d := binary.LittleEndian.AppendUint16(make([]byte, 0, len(data)+2), companyID)
	return b.AppendField(TypeManufacturerSpecificData, append(d, data...))
}

// AppendIBeacon appends an Apple iBeacon manufacturer item.
func (b *Builder) AppendIBeacon(beacon IBeacon) *Builder {
	return b.AppendManufacturerData(CompanyApple, beacon.Bytes())
}

// AppendServices appends complete service lists, one per UUID width present:
// reserved keys go to the 16-bit list and everything else to the 128-bit list.
func (b *Builder) AppendServices(ids ...uuid.UUID) *Builder {
	return b.appendUUIDLists(TypeCompleteServices16, TypeCompleteServices128, ids)
}

// AppendIncompleteServices is AppendServices with the incomplete list types.
func (b *Builder) AppendIncompleteServices(ids ...uuid.UUID) *Builder {
	return b.appendUUIDLists(TypeIncompleteServices16, TypeIncompleteServices128, ids)
}

// AppendSolicitedServices appends service solicitation lists.
func (b *Builder) AppendSolicitedServices(ids ...uuid.UUID) *Builder {
	return b.appendUUIDLists(TypeServiceSolicitations16, TypeServiceSolicitations128, ids)
}

// AppendServiceData appends a service data item, using the 16-bit form for reserved keys.
func (b *Builder) AppendServiceData(id uuid.UUID, data []byte) *Builder {
	if key, ok := bleuuid.AdoptedKey(id); ok {
		d := binary.LittleEndian.AppendUint16(make([]byte, 0, len(data)+2), key)
		return b.AppendField(TypeServiceData16, append(d, data...))
	}
	d := appendUUID128(make([]byte, 0, len(data)+16), id)
	return b.AppendField(TypeServiceData128, append(d, data...))
}

// Items returns a copy of the items appended so far.
func (b *Builder) Items() []Item {
	items := make([]Item, len(b.items))
	copy(items, b.items)
	return items
}

// Bytes encodes the appended items.
func (b *Builder) Bytes() ([]byte, error) {
	return Encode(b.items)
}

// MustBytes is like Bytes but panics on oversized items.
func (b *Builder) MustBytes() []byte {
	out, err := b.Bytes()
	if err != nil {
		panic(err)
	}
	return out
}

// Advertisement interprets the appended items.
func (b *Builder) Advertisement() *Advertisement {
	return New(b.items)
}

func (b *Builder) appendUUIDLists(type16, type128 DataType, ids []uuid.UUID) *Builder {
	var short, long []byte
	for _, id := range ids {
		if key, ok := bleuuid.AdoptedKey(id); ok {
			short = binary.LittleEndian.AppendUint16(short, key)
		} else {
			long = appendUUID128(long, id)
		}
	}
	if len(short) > 0 {
		b.AppendField(type16, short)
	}
	if len(long) > 0 {
		b.AppendField(type128, long)
	}
	return b
}

func appendUUID128(d []byte, id uuid.UUID) []byte {
	for i := len(id) - 1; i >= 0; i-- {
		d = append(d, id[i])
	}
	return d
}
