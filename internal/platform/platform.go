// Package platform maps backend names to radio-backed scan.Source
// implementations. Backends register themselves from their init functions.
package platform

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/srg/bleadv/pkg/scan"
)

// Auto selects the first registered backend in preference order.
const Auto = "auto"

var (
	ErrUnsupported      = errors.New("bluetooth backend is not supported on this platform")
	ErrBluetoothOff     = errors.New("bluetooth is turned off")
	ErrPermissionDenied = errors.New("bluetooth access denied")
)

// Factory creates a Source for one backend.
type Factory func(logger *logrus.Logger) (scan.Source, error)

type backend struct {
	factory  Factory
	priority int
}

var (
	mu       sync.RWMutex
	backends = map[string]backend{}
)

// Register makes a backend available by name. Lower priority values are
// preferred by Auto. Registering a name twice panics.
func Register(name string, priority int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	name = strings.ToLower(name)
	if _, dup := backends[name]; dup {
		panic(fmt.Sprintf("platform: backend %q registered twice", name))
	}
	backends[name] = backend{factory: f, priority: priority}
}

// Backends lists registered backend names in preference order.
func Backends() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := backends[names[i]].priority, backends[names[j]].priority
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})
	return names
}

// NewSource creates a Source for the named backend, or for the preferred
// one when name is empty or Auto.
func NewSource(name string, logger *logrus.Logger) (scan.Source, error) {
	if logger == nil {
		logger = logrus.New()
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == Auto {
		available := Backends()
		if len(available) == 0 {
			return nil, ErrUnsupported
		}
		name = available[0]
	}

	mu.RLock()
	b, ok := backends[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnsupported, name, strings.Join(Backends(), ", "))
	}

	logger.WithField("backend", name).Debug("Creating scan source")
	src, err := b.factory(logger)
	if err != nil {
		return nil, NormalizeError(err)
	}
	return src, nil
}

// NormalizeError maps known backend error strings to the sentinel errors.
// It ensures consistent handling even if the upstream libraries change messages slightly.
// Returns wrapped errors to preserve original context.
func NormalizeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrBluetoothOff) || errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrUnsupported) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "is bluetooth turned on"),
		strings.Contains(msg, "bluetooth is turned off"),
		strings.Contains(msg, "powered off"):
		return fmt.Errorf("%w: %v", ErrBluetoothOff, err)
	case strings.Contains(msg, "operation not permitted"),
		strings.Contains(msg, "permission denied"),
		strings.Contains(msg, "unauthorized"):
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	case strings.Contains(msg, "not supported"),
		strings.Contains(msg, "no such device"):
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	default:
		return err
	}
}
