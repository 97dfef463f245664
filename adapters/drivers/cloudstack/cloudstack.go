// Package cloudstack implements the driver for real Apache CloudStack
// endpoints on top of the official Go SDK.
package cloudstack

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/apache/cloudstack-go/v2/cloudstack"

	"github.com/csops-dev/csops/adapters/drivers"
	"github.com/csops-dev/csops/domain/model"
)

// driver wraps a CloudStack API client.
type driver struct {
	cs       *cloudstack.CloudStackClient
	settings map[string]string
}

// ID returns the driver identifier.
func (d *driver) ID() string { return "cloudstack" }

// Zones returns the zone state port.
func (d *driver) Zones() model.ZonePort { return &zonePort{cs: d.cs} }

// Hosts returns the host state port.
func (d *driver) Hosts() model.HostPort { return &hostPort{cs: d.cs, settings: d.settings} }

// init registers the cloudstack driver.
func init() {
	drivers.Register("cloudstack", func(cfg *drivers.Config) (drivers.Driver, error) {
		if cfg == nil || cfg.URL == "" || cfg.Key == "" || cfg.Secret == "" {
			return nil, fmt.Errorf("cloudstack driver requires api url, key and secret")
		}
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc := &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: !cfg.VerifySSL},
			},
		}
		cs := cloudstack.NewAsyncClient(cfg.URL, cfg.Key, cfg.Secret, cfg.VerifySSL, cloudstack.WithHTTPClient(hc))
		return &driver{cs: cs, settings: cfg.Settings}, nil
	})
}
