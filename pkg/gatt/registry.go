package gatt

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/srg/bleadv/pkg/bleuuid"
)

var (
	// ErrDuplicateAttribute marks an insert whose UUID is already registered.
	ErrDuplicateAttribute = errors.New("attribute already registered")

	// ErrRegistryFrozen marks an insert into a frozen registry.
	ErrRegistryFrozen = errors.New("registry is frozen")
)

// AddResult is the outcome of a registry insert.
//
// On success Attribute points to the stored entry. When the insert is
// rejected Attribute is nil and Err says why; for duplicates Conflict holds
// the entry that stays registered.
type AddResult struct {
	Attribute *Attribute
	Conflict  *Attribute
	Err       error
}

// OK reports whether the attribute was stored.
func (r AddResult) OK() bool {
	return r.Attribute != nil
}

// Registry is a UUID-keyed catalog of known attributes.
// The first registration for a UUID wins; later ones are logged and ignored.
type Registry struct {
	mu         sync.RWMutex
	attributes map[uuid.UUID]Attribute
	frozen     bool
	logger     *logrus.Logger
}

// NewRegistry creates an empty registry. A nil logger falls back to the logrus standard logger.
func NewRegistry(logger *logrus.Logger) *Registry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Registry{
		attributes: make(map[uuid.UUID]Attribute),
		logger:     logger,
	}
}

// NewRegistryWithAdoptedAttributes creates a registry holding every SIG adopted attribute.
// The registry is left unfrozen so callers can add their own before freezing it.
func NewRegistryWithAdoptedAttributes(logger *logrus.Logger) *Registry {
	r := NewRegistry(logger)
	r.AddAdoptedServices()
	r.AddAdoptedCharacteristics()
	r.AddAdoptedDescriptors()
	return r
}

// Add registers an attribute unless its UUID is already known or the registry is frozen.
func (r *Registry) Add(attr Attribute) AddResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		r.logger.WithField("uuid", attr.ID).Warn("Attempt to add attribute to frozen registry")
		return AddResult{Err: fmt.Errorf("%w: cannot add %s", ErrRegistryFrozen, attr)}
	}

	if existing, ok := r.attributes[attr.ID]; ok {
		r.logger.WithFields(logrus.Fields{
			"uuid":     attr.ID,
			"existing": existing.Description,
			"rejected": attr.Description,
		}).Warn("Duplicate attribute ignored")
		return AddResult{
			Conflict: &existing,
			Err:      fmt.Errorf("%w: %s is registered as %q", ErrDuplicateAttribute, attr.ID, existing.Description),
		}
	}

	r.attributes[attr.ID] = attr
	r.logger.WithFields(logrus.Fields{
		"uuid": attr.ID,
		"type": attr.Type,
		"name": attr.Description,
	}).Debug("Attribute registered")
	return AddResult{Attribute: &attr}
}

// AddAll registers attributes in order and returns one result per attribute.
func (r *Registry) AddAll(attrs []Attribute) []AddResult {
	results := make([]AddResult, len(attrs))
	for i, a := range attrs {
		results[i] = r.Add(a)
	}
	return results
}

// AddService registers a service by its 16-bit adopted key.
func (r *Registry) AddService(key uint16, description string) AddResult {
	return r.Add(NewAttribute(Service, key, description))
}

// AddCharacteristic registers a characteristic by its 16-bit adopted key.
func (r *Registry) AddCharacteristic(key uint16, description string) AddResult {
	return r.Add(NewAttribute(Characteristic, key, description))
}

// AddDescriptor registers a descriptor by its 16-bit adopted key.
func (r *Registry) AddDescriptor(key uint16, description string) AddResult {
	return r.Add(NewAttribute(Descriptor, key, description))
}

// AddServiceUUID registers a service by full UUID.
func (r *Registry) AddServiceUUID(id uuid.UUID, description string) AddResult {
	return r.Add(Attribute{ID: id, Description: description, Type: Service})
}

// AddCharacteristicUUID registers a characteristic by full UUID.
func (r *Registry) AddCharacteristicUUID(id uuid.UUID, description string) AddResult {
	return r.Add(Attribute{ID: id, Description: description, Type: Characteristic})
}

// AddDescriptorUUID registers a descriptor by full UUID.
func (r *Registry) AddDescriptorUUID(id uuid.UUID, description string) AddResult {
	return r.Add(Attribute{ID: id, Description: description, Type: Descriptor})
}

// AddServiceString registers a service by UUID text in any form bleuuid.Parse accepts.
func (r *Registry) AddServiceString(id, description string) AddResult {
	return r.addString(Service, id, description)
}

// AddCharacteristicString registers a characteristic by UUID text.
func (r *Registry) AddCharacteristicString(id, description string) AddResult {
	return r.addString(Characteristic, id, description)
}

// AddDescriptorString registers a descriptor by UUID text.
func (r *Registry) AddDescriptorString(id, description string) AddResult {
	return r.addString(Descriptor, id, description)
}

func (r *Registry) addString(t AttributeType, id, description string) AddResult {
	parsed, err := bleuuid.Parse(id)
	if err != nil {
		r.logger.WithError(err).WithField("name", description).Warn("Attribute with invalid UUID ignored")
		return AddResult{Err: err}
	}
	return r.Add(Attribute{ID: parsed, Description: description, Type: t})
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Get looks an attribute up by UUID.
func (r *Registry) Get(id uuid.UUID) (Attribute, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.attributes[id]
	return a, ok
}

// Lookup resolves UUID text in any form bleuuid.Parse accepts.
func (r *Registry) Lookup(id string) (Attribute, bool) {
	parsed, err := bleuuid.Parse(id)
	if err != nil {
		return Attribute{}, false
	}
	return r.Get(parsed)
}

// DescriptionOrUUID returns the registered description, or the UUID text when unknown.
func (r *Registry) DescriptionOrUUID(id uuid.UUID) string {
	if a, ok := r.Get(id); ok {
		return a.Description
	}
	return id.String()
}

// Len returns the number of registered attributes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.attributes)
}

// All returns every attribute ordered by type and then by UUID.
func (r *Registry) All() []Attribute {
	r.mu.RLock()
	all := make([]Attribute, 0, len(r.attributes))
	for _, a := range r.attributes {
		all = append(all, a)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].Type != all[j].Type {
			return all[i].Type < all[j].Type
		}
		return all[i].ID.String() < all[j].ID.String()
	})
	return all
}

// Range calls fn for each attribute in All order until fn returns false.
func (r *Registry) Range(fn func(Attribute) bool) {
	for _, a := range r.All() {
		if !fn(a) {
			return
		}
	}
}
