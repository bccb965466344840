package gatt

import (
	"strings"

	"github.com/go-ble/ble"
)

// CharacteristicProperty is the properties byte of a characteristic declaration.
type CharacteristicProperty uint8

const (
	PropertyBroadcast          CharacteristicProperty = 0x01
	PropertyRead               CharacteristicProperty = 0x02
	PropertyWriteNoResponse    CharacteristicProperty = 0x04
	PropertyWrite              CharacteristicProperty = 0x08
	PropertyNotify             CharacteristicProperty = 0x10
	PropertyIndicate           CharacteristicProperty = 0x20
	PropertySignedWrite        CharacteristicProperty = 0x40
	PropertyExtendedProperties CharacteristicProperty = 0x80
)

var propertyNames = []struct {
	p    CharacteristicProperty
	name string
}{
	{PropertyBroadcast, "Broadcast"},
	{PropertyRead, "Read"},
	{PropertyWriteNoResponse, "WriteNoResponse"},
	{PropertyWrite, "Write"},
	{PropertyNotify, "Notify"},
	{PropertyIndicate, "Indicate"},
	{PropertySignedWrite, "SignedWrite"},
	{PropertyExtendedProperties, "ExtendedProperties"},
}

// Has reports whether every bit of p2 is set.
func (p CharacteristicProperty) Has(p2 CharacteristicProperty) bool {
	return p&p2 == p2
}

// CanRead reports the Read bit.
func (p CharacteristicProperty) CanRead() bool {
	return p&PropertyRead != 0
}

// CanWrite is true for Write or WriteNoResponse.
func (p CharacteristicProperty) CanWrite() bool {
	return p&(PropertyWrite|PropertyWriteNoResponse) != 0
}

// CanNotify reports the Notify bit.
func (p CharacteristicProperty) CanNotify() bool {
	return p&PropertyNotify != 0
}

// CanIndicate reports the Indicate bit.
func (p CharacteristicProperty) CanIndicate() bool {
	return p&PropertyIndicate != 0
}

// Names lists the set properties in bit order.
func (p CharacteristicProperty) Names() []string {
	var names []string
	for _, pn := range propertyNames {
		if p&pn.p != 0 {
			names = append(names, pn.name)
		}
	}
	return names
}

func (p CharacteristicProperty) String() string {
	if p == 0 {
		return "None"
	}
	return strings.Join(p.Names(), "|")
}

// ExtendedProperty holds the extended property bits, which live above the
// declaration byte.
type ExtendedProperty uint16

const (
	NotifyEncryptionRequired   ExtendedProperty = 0x100
	IndicateEncryptionRequired ExtendedProperty = 0x200
)

// Has reports whether every bit of e2 is set.
func (e ExtendedProperty) Has(e2 ExtendedProperty) bool {
	return e&e2 == e2
}

func (e ExtendedProperty) String() string {
	var names []string
	if e&NotifyEncryptionRequired != 0 {
		names = append(names, "NotifyEncryptionRequired")
	}
	if e&IndicateEncryptionRequired != 0 {
		names = append(names, "IndicateEncryptionRequired")
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// PropertyFromBLE converts go-ble characteristic properties.
func PropertyFromBLE(p ble.Property) CharacteristicProperty {
	var out CharacteristicProperty
	if p&ble.CharBroadcast != 0 {
		out |= PropertyBroadcast
	}
	if p&ble.CharRead != 0 {
		out |= PropertyRead
	}
	if p&ble.CharWriteNR != 0 {
		out |= PropertyWriteNoResponse
	}
	if p&ble.CharWrite != 0 {
		out |= PropertyWrite
	}
	if p&ble.CharNotify != 0 {
		out |= PropertyNotify
	}
	if p&ble.CharIndicate != 0 {
		out |= PropertyIndicate
	}
	if p&ble.CharSignedWrite != 0 {
		out |= PropertySignedWrite
	}
	if p&ble.CharExtended != 0 {
		out |= PropertyExtendedProperties
	}
	return out
}

// ToBLE converts to go-ble characteristic properties.
func (p CharacteristicProperty) ToBLE() ble.Property {
	var out ble.Property
	if p&PropertyBroadcast != 0 {
		out |= ble.CharBroadcast
	}
	if p&PropertyRead != 0 {
		out |= ble.CharRead
	}
	if p&PropertyWriteNoResponse != 0 {
		out |= ble.CharWriteNR
	}
	if p&PropertyWrite != 0 {
		out |= ble.CharWrite
	}
	if p&PropertyNotify != 0 {
		out |= ble.CharNotify
	}
	if p&PropertyIndicate != 0 {
		out |= ble.CharIndicate
	}
	if p&PropertySignedWrite != 0 {
		out |= ble.CharSignedWrite
	}
	if p&PropertyExtendedProperties != 0 {
		out |= ble.CharExtended
	}
	return out
}
