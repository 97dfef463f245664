package csopscfg

import (
	"fmt"
	"strings"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	if err := r.Driver.validate(); err != nil {
		return fmt.Errorf("driver: %w", err)
	}
	if err := r.API.validate(r.Driver.Name); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := r.History.validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

func (d *Driver) validate() error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func (a *API) validate(driverName string) error {
	// The sim driver runs without an endpoint.
	if driverName == "sim" {
		return nil
	}
	if a.URL == "" {
		return fmt.Errorf("url is required")
	}
	if a.Key == "" {
		return fmt.Errorf("key is required")
	}
	if a.Secret == "" {
		return fmt.Errorf("secret is required")
	}
	if a.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

func (h *History) validate() error {
	if h.URL == "" {
		return nil
	}
	if !strings.HasPrefix(h.URL, "sqlite:") && !strings.HasPrefix(h.URL, "sqlite3:") {
		return fmt.Errorf("unsupported url scheme in %q", h.URL)
	}
	return nil
}
