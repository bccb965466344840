// Package gatt holds the catalog of known GATT attributes and the
// characteristic property flags.
//
// A Registry maps 128-bit UUIDs to human-readable descriptions. It is
// populated once (the Bluetooth SIG adopted attributes plus any vendor or
// user-supplied ones), frozen, and then shared read-only.
package gatt

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/srg/bleadv/pkg/bleuuid"
)

// AttributeType is the kind of GATT attribute.
type AttributeType int

const (
	Service AttributeType = iota
	Characteristic
	Descriptor
)

func (t AttributeType) String() string {
	switch t {
	case Service:
		return "service"
	case Characteristic:
		return "characteristic"
	case Descriptor:
		return "descriptor"
	default:
		return fmt.Sprintf("AttributeType(%d)", int(t))
	}
}

// ParseAttributeType accepts the names produced by String, case-insensitively.
func ParseAttributeType(s string) (AttributeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "service":
		return Service, nil
	case "characteristic":
		return Characteristic, nil
	case "descriptor":
		return Descriptor, nil
	default:
		return 0, fmt.Errorf("invalid attribute type %q: must be one of service, characteristic, descriptor", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t AttributeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AttributeType) UnmarshalText(text []byte) error {
	parsed, err := ParseAttributeType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Attribute is a known service, characteristic or descriptor.
type Attribute struct {
	ID          uuid.UUID     `json:"uuid" yaml:"uuid"`
	Description string        `json:"description" yaml:"description"`
	Type        AttributeType `json:"type" yaml:"type"`
}

// NewAttribute builds an attribute from a 16-bit adopted key.
func NewAttribute(t AttributeType, key uint16, description string) Attribute {
	return Attribute{ID: bleuuid.ExpandAdoptedKey(key), Description: description, Type: t}
}

// Equal reports whether both attributes have the same UUID.
// Description and type do not take part in identity.
func (a Attribute) Equal(other Attribute) bool {
	return a.ID == other.ID
}

func (a Attribute) String() string {
	return fmt.Sprintf("%s %s (%s)", a.Type, bleuuid.Short(a.ID), a.Description)
}
