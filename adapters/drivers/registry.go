// Package drivers defines the driver abstraction over a CloudStack-compatible
// API endpoint and the registry drivers self-register into.
package drivers

import (
	"fmt"
	"time"

	"github.com/csops-dev/csops/domain/model"
)

// Config carries API connection settings shared by drivers.
type Config struct {
	URL       string
	Key       string
	Secret    string
	Timeout   time.Duration
	VerifySSL bool
	// Settings holds driver-specific settings (e.g. default zone, pod or
	// hypervisor for host registration).
	Settings map[string]string
}

// Driver exposes the resource ports of one API endpoint implementation.
// Implementations live under adapters/drivers/<name> and register themselves
// from their init() function.
type Driver interface {
	// ID returns the driver identifier (e.g. "cloudstack").
	ID() string
	// Zones returns the zone state port.
	Zones() model.ZonePort
	// Hosts returns the host state port.
	Hosts() model.HostPort
}

// driverFactory is a constructor function for a driver.
type driverFactory func(cfg *Config) (Driver, error)

// registry holds registered drivers by name.
var registry = map[string]driverFactory{}

// Register makes a driver available by the given name. Drivers should call
// this from their init() function.
func Register(name string, factory driverFactory) {
	registry[name] = factory
}

// New constructs the named driver with the given configuration.
func New(name string, cfg *Config) (Driver, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown driver: %s", name)
	}
	return factory(cfg)
}
