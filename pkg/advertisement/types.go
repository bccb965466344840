package advertisement

import (
	"bytes"
	"fmt"
	"strings"
)

// DataType is the AD type byte of an advertising data structure.
// Refer to Supplement to Bluetooth Core Specification, Part A.
type DataType uint8

const (
	TypeFlags                          DataType = 0x01
	TypeIncompleteServices16           DataType = 0x02
	TypeCompleteServices16             DataType = 0x03
	TypeIncompleteServices32           DataType = 0x04
	TypeCompleteServices32             DataType = 0x05
	TypeIncompleteServices128          DataType = 0x06
	TypeCompleteServices128            DataType = 0x07
	TypeShortenedLocalName             DataType = 0x08
	TypeCompleteLocalName              DataType = 0x09
	TypeTxPowerLevel                   DataType = 0x0A
	TypeClassOfDevice                  DataType = 0x0D
	TypeSimplePairingHashC192          DataType = 0x0E
	TypeSimplePairingRandomizerR192    DataType = 0x0F
	TypeDeviceID                       DataType = 0x10
	TypeSecurityManagerTKValue         DataType = 0x10 // same code as TypeDeviceID
	TypeSecurityManagerOOBFlags        DataType = 0x11
	TypeSlaveConnectionIntervalRange   DataType = 0x12
	TypeServiceSolicitations16         DataType = 0x14
	TypeServiceSolicitations128        DataType = 0x15
	TypeServiceData16                  DataType = 0x16
	TypePublicTargetAddress            DataType = 0x17
	TypeRandomTargetAddress            DataType = 0x18
	TypeAppearance                     DataType = 0x19
	TypeAdvertisingInterval            DataType = 0x1A
	TypeLEBluetoothDeviceAddress       DataType = 0x1B
	TypeLERole                         DataType = 0x1C
	TypeSimplePairingHashC256          DataType = 0x1D
	TypeSimplePairingRandomizerR256    DataType = 0x1E
	TypeServiceSolicitations32         DataType = 0x1F
	TypeServiceData32                  DataType = 0x20
	TypeServiceData128                 DataType = 0x21
	TypeLESecureConnectionsConfirm     DataType = 0x22
	TypeLESecureConnectionsRandom      DataType = 0x23
	TypeURI                            DataType = 0x24
	TypeIndoorPositioning              DataType = 0x25
	TypeTransportDiscoveryData         DataType = 0x26
	TypeInformationData3D              DataType = 0x3D
	TypeManufacturerSpecificData       DataType = 0xFF
)

var dataTypeNames = map[DataType]string{
	TypeFlags:                        "Flags",
	TypeIncompleteServices16:         "IncompleteServices16",
	TypeCompleteServices16:           "CompleteServices16",
	TypeIncompleteServices32:         "IncompleteServices32",
	TypeCompleteServices32:           "CompleteServices32",
	TypeIncompleteServices128:        "IncompleteServices128",
	TypeCompleteServices128:          "CompleteServices128",
	TypeShortenedLocalName:           "ShortenedLocalName",
	TypeCompleteLocalName:            "CompleteLocalName",
	TypeTxPowerLevel:                 "TxPowerLevel",
	TypeClassOfDevice:                "ClassOfDevice",
	TypeSimplePairingHashC192:        "SimplePairingHashC192",
	TypeSimplePairingRandomizerR192:  "SimplePairingRandomizerR192",
	TypeDeviceID:                     "DeviceId",
	TypeSecurityManagerOOBFlags:      "SecurityManagerOutOfBandFlags",
	TypeSlaveConnectionIntervalRange: "SlaveConnectionIntervalRange",
	TypeServiceSolicitations16:       "ServiceSolicitations16",
	TypeServiceSolicitations128:      "ServiceSolicitations128",
	TypeServiceData16:                "ServiceData16",
	TypePublicTargetAddress:          "PublicTargetAddress",
	TypeRandomTargetAddress:          "RandomTargetAddress",
	TypeAppearance:                   "Appearance",
	TypeAdvertisingInterval:          "AdvertisingInterval",
	TypeLEBluetoothDeviceAddress:     "LeBluetoothDeviceAddress",
	TypeLERole:                       "LeRole",
	TypeSimplePairingHashC256:        "SimplePairingHash",
	TypeSimplePairingRandomizerR256:  "SimplePairingRandomizer",
	TypeServiceSolicitations32:       "ServiceSolicitations32",
	TypeServiceData32:                "ServiceData32",
	TypeServiceData128:               "ServiceData128",
	TypeLESecureConnectionsConfirm:   "LeSecureConnectionsConfirmationValue",
	TypeLESecureConnectionsRandom:    "LeSecureConnectionsRandomValue",
	TypeURI:                          "Uri",
	TypeIndoorPositioning:            "IndoorPositioning",
	TypeTransportDiscoveryData:       "TransportDiscoveryData",
	TypeInformationData3D:            "InformationData3d",
	TypeManufacturerSpecificData:     "ManufacturerSpecificData",
}

// String returns the symbolic name, or the hex code for unassigned types.
func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint8(t))
}

// Known reports whether t is an assigned AD type.
func (t DataType) Known() bool {
	_, ok := dataTypeNames[t]
	return ok
}

// Item is one [length][type][data] structure from an advertising payload.
type Item struct {
	Type DataType
	Data []byte
}

// Equal compares type and data bytes.
func (i Item) Equal(other Item) bool {
	return i.Type == other.Type && bytes.Equal(i.Data, other.Data)
}

func (i Item) String() string {
	return fmt.Sprintf("%s[% X]", i.Type, i.Data)
}

// Flags is the bit field carried by a TypeFlags item.
type Flags uint8

const (
	FlagLimitedDiscoverable       Flags = 0x01
	FlagGeneralDiscoverable       Flags = 0x02
	FlagClassicNotSupported       Flags = 0x04
	FlagDualModeControllerCapable Flags = 0x08
	FlagDualModeHostCapable       Flags = 0x10
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagLimitedDiscoverable, "LimitedDiscoverable"},
	{FlagGeneralDiscoverable, "GeneralDiscoverable"},
	{FlagClassicNotSupported, "ClassicNotSupported"},
	{FlagDualModeControllerCapable, "DualModeControllerCapable"},
	{FlagDualModeHostCapable, "DualModeHostCapable"},
}

// Has reports whether every bit of f2 is set.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Names lists the set flags in bit order. Undefined bits are ignored.
func (f Flags) Names() []string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

func (f Flags) String() string {
	if f == 0 {
		return "None"
	}
	return strings.Join(f.Names(), "|")
}
