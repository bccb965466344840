package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/srg/bleadv/pkg/bleuuid"
	"github.com/srg/bleadv/pkg/gatt"
)

// sigSource is a Bluetooth SIG assigned-numbers file whose entries all have one type.
type sigSource struct {
	path string
	typ  gatt.AttributeType
}

// loadRegistry builds the frozen attribute registry: adopted and vendor
// tables first, then assigned-numbers files, then the entries of
// attributesFile when given. Earlier entries win over later ones with the
// same UUID.
func loadRegistry(attributesFile string, logger *logrus.Logger, sig ...sigSource) (*gatt.Registry, error) {
	reg := gatt.NewRegistryWithAdoptedAttributes(logger)
	reg.AddVendorAttributes()

	for _, src := range sig {
		attrs, err := gatt.LoadSIGAttributesFile(src.path, src.typ)
		if err != nil {
			return nil, fmt.Errorf("failed to load assigned numbers: %w", err)
		}
		// assigned-numbers files overlap the adopted tables
		var unknown []gatt.Attribute
		for _, a := range attrs {
			if _, ok := reg.Get(a.ID); !ok {
				unknown = append(unknown, a)
			}
		}
		logger.WithFields(logrus.Fields{
			"file":    src.path,
			"type":    src.typ,
			"entries": len(attrs),
			"added":   countAdded(reg.AddAll(unknown)),
		}).Info("Loaded assigned numbers")
	}

	if attributesFile != "" {
		attrs, err := gatt.LoadAttributesFile(attributesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load attributes: %w", err)
		}
		logger.WithFields(logrus.Fields{
			"file":    attributesFile,
			"entries": len(attrs),
			"added":   countAdded(reg.AddAll(attrs)),
		}).Info("Loaded custom attributes")
	}

	reg.Freeze()
	return reg, nil
}

func countAdded(results []gatt.AddResult) int {
	added := 0
	for _, res := range results {
		if res.OK() {
			added++
		}
	}
	return added
}

// describe renders a UUID in short form with its registry name, if known.
func describe(reg *gatt.Registry, id uuid.UUID) string {
	short := bleuuid.Short(id)
	if reg == nil {
		return short
	}
	if a, ok := reg.Get(id); ok {
		return fmt.Sprintf("%s (%s)", short, a.Description)
	}
	return short
}
