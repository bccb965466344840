// Package scan evaluates scan filters against decoded advertisements and runs
// deduplicated discovery over a pluggable radio Source.
package scan

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/srg/bleadv/pkg/advertisement"
	"github.com/srg/bleadv/pkg/bleuuid"
)

// Filter is an immutable set of scan criteria. A zero Filter passes everything.
//
// Criteria combine with AND; the service list matches when any listed service
// is advertised.
type Filter struct {
	deviceName             *string
	manufacturerCompanyID  *uint16
	serviceIsInList        []uuid.UUID
	ignoreRepeatBroadcasts bool
}

// UniqueBroadcastsOnly passes every advertisement but reports each device once.
var UniqueBroadcastsOnly = NewFilterBuilder().SetIgnoreRepeatBroadcasts(true).Build()

// DeviceName returns the exact local name required, if set.
func (f Filter) DeviceName() (string, bool) {
	if f.deviceName == nil {
		return "", false
	}
	return *f.deviceName, true
}

// ManufacturerCompanyID returns the required company identifier, if set.
func (f Filter) ManufacturerCompanyID() (uint16, bool) {
	if f.manufacturerCompanyID == nil {
		return 0, false
	}
	return *f.manufacturerCompanyID, true
}

// ServiceIsInList returns a copy of the accepted service UUIDs.
func (f Filter) ServiceIsInList() []uuid.UUID {
	return append([]uuid.UUID(nil), f.serviceIsInList...)
}

func (f Filter) IgnoreRepeatBroadcasts() bool {
	return f.ignoreRepeatBroadcasts
}

// HasCriteria reports whether any advertisement-content criterion is set.
func (f Filter) HasCriteria() bool {
	return f.deviceName != nil || f.manufacturerCompanyID != nil || len(f.serviceIsInList) > 0
}

// Passes reports whether adv satisfies every criterion of the filter.
// A nil advertisement only passes a filter without criteria.
func (f Filter) Passes(adv *advertisement.Advertisement) bool {
	if !f.HasCriteria() {
		return true
	}
	if adv == nil {
		return false
	}

	if f.deviceName != nil {
		if !adv.HasDeviceName || adv.DeviceName != *f.deviceName {
			return false
		}
	}

	if f.manufacturerCompanyID != nil && !adv.HasCompanyID(*f.manufacturerCompanyID) {
		return false
	}

	if len(f.serviceIsInList) > 0 {
		found := false
		for _, id := range f.serviceIsInList {
			if adv.HasService(id) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Passes is the functional form of Filter.Passes.
func Passes(f Filter, adv *advertisement.Advertisement) bool {
	return f.Passes(adv)
}

func (f Filter) String() string {
	var parts []string
	if f.deviceName != nil {
		parts = append(parts, fmt.Sprintf("name=%q", *f.deviceName))
	}
	if f.manufacturerCompanyID != nil {
		parts = append(parts, "company="+advertisement.CompanyLabel(*f.manufacturerCompanyID))
	}
	if len(f.serviceIsInList) > 0 {
		ids := make([]string, len(f.serviceIsInList))
		for i, id := range f.serviceIsInList {
			ids[i] = bleuuid.Short(id)
		}
		parts = append(parts, "services=["+strings.Join(ids, " ")+"]")
	}
	if f.ignoreRepeatBroadcasts {
		parts = append(parts, "unique")
	}
	return "Filter{" + strings.Join(parts, " ") + "}"
}

// FilterBuilder accumulates criteria for a Filter. It is not safe for
// concurrent use; Build returns an independent copy.
type FilterBuilder struct {
	f Filter
}

func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

// NewFilterBuilderFrom starts a builder seeded with the criteria of f.
func NewFilterBuilderFrom(f Filter) *FilterBuilder {
	return &FilterBuilder{f: f.clone()}
}

// AddAdvertisedService adds id to the accepted service list. Duplicates are ignored.
func (b *FilterBuilder) AddAdvertisedService(id uuid.UUID) *FilterBuilder {
	for _, existing := range b.f.serviceIsInList {
		if existing == id {
			return b
		}
	}
	b.f.serviceIsInList = append(b.f.serviceIsInList, id)
	return b
}

// AddAdvertisedServiceKey adds the adopted 16-bit service key.
func (b *FilterBuilder) AddAdvertisedServiceKey(key uint16) *FilterBuilder {
	return b.AddAdvertisedService(bleuuid.ExpandAdoptedKey(key))
}

// AddAdvertisedServiceString parses s as a full UUID or a short key and adds it.
func (b *FilterBuilder) AddAdvertisedServiceString(s string) error {
	id, err := bleuuid.Parse(s)
	if err != nil {
		return err
	}
	b.AddAdvertisedService(id)
	return nil
}

func (b *FilterBuilder) SetAdvertisedDeviceName(name string) *FilterBuilder {
	b.f.deviceName = &name
	return b
}

func (b *FilterBuilder) ClearAdvertisedDeviceName() *FilterBuilder {
	b.f.deviceName = nil
	return b
}

func (b *FilterBuilder) SetAdvertisedManufacturerCompanyID(id uint16) *FilterBuilder {
	b.f.manufacturerCompanyID = &id
	return b
}

func (b *FilterBuilder) ClearAdvertisedManufacturerCompanyID() *FilterBuilder {
	b.f.manufacturerCompanyID = nil
	return b
}

func (b *FilterBuilder) SetIgnoreRepeatBroadcasts(ignore bool) *FilterBuilder {
	b.f.ignoreRepeatBroadcasts = ignore
	return b
}

// Build returns the accumulated filter. Later builder calls do not affect it.
func (b *FilterBuilder) Build() Filter {
	return b.f.clone()
}

func (f Filter) clone() Filter {
	out := Filter{ignoreRepeatBroadcasts: f.ignoreRepeatBroadcasts}
	if f.deviceName != nil {
		name := *f.deviceName
		out.deviceName = &name
	}
	if f.manufacturerCompanyID != nil {
		id := *f.manufacturerCompanyID
		out.manufacturerCompanyID = &id
	}
	if len(f.serviceIsInList) > 0 {
		out.serviceIsInList = append([]uuid.UUID(nil), f.serviceIsInList...)
	}
	return out
}
