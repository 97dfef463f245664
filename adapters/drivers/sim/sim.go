// Package sim implements an in-memory driver that mimics the CloudStack API
// surface csops depends on. It backs the unit tests and offline dry runs.
package sim

import (
	"github.com/csops-dev/csops/adapters/drivers"
	"github.com/csops-dev/csops/domain/model"
)

// Driver is the in-memory simulator.
type Driver struct {
	zones *zoneStore
	hosts *hostStore
}

// New returns an empty simulator.
func New() *Driver {
	return &Driver{
		zones: newZoneStore(),
		hosts: newHostStore(),
	}
}

// ID returns the driver identifier.
func (d *Driver) ID() string { return "sim" }

// Zones returns the zone state port.
func (d *Driver) Zones() model.ZonePort { return d.zones }

// Hosts returns the host state port.
func (d *Driver) Hosts() model.HostPort { return d.hosts }

// init registers the simulator driver.
func init() {
	drivers.Register("sim", func(_ *drivers.Config) (drivers.Driver, error) {
		return New(), nil
	})
}
