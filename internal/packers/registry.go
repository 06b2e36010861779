package packers

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"obsid/internal/dimpack"
)

// Packer is one configured packing strategy: a reversible mapping between
// observation keys and integers with a declared bit budget.
type Packer interface {
	Pack(key dimpack.Key) (uint64, error)
	Unpack(packed uint64) (dimpack.Key, error)
	MaxBits() int
}

// Driver constructs a Packer from a codec configuration. Drivers must be
// comparable values: registration uses Go equality to decide whether a
// re-registration is the same driver or a collision.
type Driver interface {
	New(cfg dimpack.Config) (Packer, error)
}

// ErrPackerCollision is returned when a name is re-registered with a
// different driver.
var ErrPackerCollision = errors.New("packer name already registered with a different driver")

// Registry maps strategy names to drivers. The zero value is not usable;
// construct with NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	drivers map[string]Driver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{drivers: make(map[string]Driver)}
}

// Register adds a driver under name. Registering the identical driver
// again is a no-op; a different driver under an existing name fails.
func (r *Registry) Register(name string, drv Driver) error {
	if drv == nil {
		return fmt.Errorf("register packer %q: nil driver", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.drivers[name]; ok {
		if existing == drv {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrPackerCollision, name)
	}
	r.drivers[name] = drv
	return nil
}

// Lookup returns the driver registered under name.
func (r *Registry) Lookup(name string) (Driver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	drv, ok := r.drivers[name]
	return drv, ok
}

// Open looks up name and constructs a Packer from cfg.
func (r *Registry) Open(name string, cfg dimpack.Config) (Packer, error) {
	drv, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown packer %q (registered: %v)", name, r.Names())
	}
	return drv.New(cfg)
}

// Names lists the registered strategy names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Register adds a driver to the process-wide registry.
func Register(name string, drv Driver) error { return defaultRegistry.Register(name, drv) }

// Lookup finds a driver in the process-wide registry.
func Lookup(name string) (Driver, bool) { return defaultRegistry.Lookup(name) }

// Open constructs a Packer from the process-wide registry.
func Open(name string, cfg dimpack.Config) (Packer, error) { return defaultRegistry.Open(name, cfg) }

// Names lists the process-wide registry's strategy names.
func Names() []string { return defaultRegistry.Names() }
