package backend

import (
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/natesway/nova-renderer/rhi"
)

// Backend names.
const (
	// BackendNative is the gogpu/wgpu HAL backend.
	BackendNative = "native"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when no requested backend is registered.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Factory creates an rhi.Device over a platform GPU handle. The handle's
// expected type is backend-specific; the native backend accepts a
// hal.Device or a gpucontext device provider.
type Factory func(handle any, log *slog.Logger) (rhi.Device, error)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	priority = []string{BackendNative}
)

// Register registers a device factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns a list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// New creates a device using the named backend.
func New(name string, handle any, log *slog.Logger) (rhi.Device, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrBackendNotAvailable, "backend %s", name)
	}
	return factory(handle, log)
}

// NewDefault creates a device using the best available backend in
// priority order, falling back to any registered backend.
func NewDefault(handle any, log *slog.Logger) (rhi.Device, error) {
	registryMu.RLock()
	ordered := make([]Factory, 0, len(factories))
	for _, name := range priority {
		if factory, ok := factories[name]; ok {
			ordered = append(ordered, factory)
		}
	}
	for name, factory := range factories {
		if !inPriority(name) {
			ordered = append(ordered, factory)
		}
	}
	registryMu.RUnlock()

	var firstErr error
	for _, factory := range ordered {
		device, err := factory(handle, log)
		if err == nil {
			return device, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, ErrBackendNotAvailable
}

func inPriority(name string) bool {
	for _, p := range priority {
		if p == name {
			return true
		}
	}
	return false
}
