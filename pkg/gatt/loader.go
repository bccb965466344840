package gatt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/srg/bleadv/pkg/bleuuid"
	"gopkg.in/yaml.v3"
)

// attributeFile is the custom attribute file format:
//
//	attributes:
//	  - uuid: 6e400001-b5a3-f393-e0a9-e50e24dcca9e
//	    name: Nordic UART Service
//	    type: service
//	  - uuid: 0x2a37
//	    name: Heart Rate Measurement
//	    type: characteristic
type attributeFile struct {
	Attributes []attributeEntry `yaml:"attributes"`
}

type attributeEntry struct {
	UUID any    `yaml:"uuid"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// sigFile is the layout of the Bluetooth SIG assigned-numbers YAML files
// (service_uuids.yaml, characteristic_uuids.yaml, descriptors.yaml).
type sigFile struct {
	UUIDs []attributeEntry `yaml:"uuids"`
}

// LoadAttributes reads a custom attribute file. Every entry must carry a
// valid UUID, a name and a type; the first invalid entry fails the load.
// Unquoted numbers are read as integers, so short keys need quotes or a
// 0x prefix: "2a37" and 0x2a37 are the same key, 2902 is not 0x2902.
func LoadAttributes(r io.Reader) ([]Attribute, error) {
	var f attributeFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode attribute file: %w", err)
	}

	attrs := make([]Attribute, 0, len(f.Attributes))
	for i, e := range f.Attributes {
		t, err := ParseAttributeType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, err)
		}
		a, err := e.attribute(t)
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, err)
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

// LoadAttributesFile reads a custom attribute file from disk.
func LoadAttributesFile(path string) ([]Attribute, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	attrs, err := LoadAttributes(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return attrs, nil
}

// LoadSIGAttributes reads a Bluetooth SIG assigned-numbers file, typing every
// entry as t. Entries without a usable UUID or name are skipped.
func LoadSIGAttributes(r io.Reader, t AttributeType) ([]Attribute, error) {
	var f sigFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode assigned numbers file: %w", err)
	}

	attrs := make([]Attribute, 0, len(f.UUIDs))
	for _, e := range f.UUIDs {
		a, err := e.attribute(t)
		if err != nil {
			continue
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

// LoadSIGAttributesFile is LoadSIGAttributes over a file on disk.
func LoadSIGAttributesFile(path string, t AttributeType) ([]Attribute, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	attrs, err := LoadSIGAttributes(f, t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return attrs, nil
}

func (e attributeEntry) attribute(t AttributeType) (Attribute, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return Attribute{}, fmt.Errorf("missing name")
	}
	id, err := bleuuid.Parse(uuidText(e.UUID))
	if err != nil {
		return Attribute{}, err
	}
	return Attribute{ID: id, Description: name, Type: t}, nil
}

// uuidText turns the YAML value of a uuid field back into text.
// Unquoted hex such as 0x2A37 decodes as an integer.
func uuidText(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case int:
		return keyText(uint64(t))
	case int64:
		return keyText(uint64(t))
	case uint64:
		return keyText(t)
	default:
		return ""
	}
}

func keyText(k uint64) string {
	if k <= 0xffff {
		return fmt.Sprintf("%04x", k)
	}
	return fmt.Sprintf("%08x", k)
}
