package gx

import (
	"fmt"
	"sort"
	"sync"
)

// DeviceFactory creates a new Device instance.
// Factories are registered via Register() and called by NewDevice().
type DeviceFactory func() Device

var (
	registryMu sync.RWMutex
	devices    = make(map[string]DeviceFactory)
)

// Register registers a device factory with the given name.
// This function is typically called from init() in device packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    gx.Register("record", func() gx.Device {
//	        return NewRecorder()
//	    })
//	}
//
// Register panics if factory is nil or if a device with the same name is
// already registered.
func Register(name string, factory DeviceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("gx: Register factory is nil")
	}
	if _, dup := devices[name]; dup {
		panic("gx: Register called twice for " + name)
	}
	devices[name] = factory
}

// Unregister removes a device from the registry.
// If the device is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(devices, name)
}

// NewDevice creates a new device instance by name.
// Returns an error if the device is not registered.
func NewDevice(name string) (Device, error) {
	registryMu.RLock()
	factory, ok := devices[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("gx: unknown device %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustDevice creates a new device instance by name, panicking on error.
func MustDevice(name string) Device {
	d, err := NewDevice(name)
	if err != nil {
		panic(err)
	}
	return d
}

// Devices returns the sorted list of registered device names.
func Devices() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(devices))
	for name := range devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a device with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := devices[name]
	return ok
}

// Count returns the number of registered devices.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(devices)
}
