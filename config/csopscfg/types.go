// Package csopscfg defines the configuration schema (structs) for csops.yml.
// This package is intended for YAML -> struct deserialization.
// Loading helpers and validations are implemented separately.
package csopscfg

// Root is the root structure of csops.yml.
type Root struct {
	Version string  `yaml:"version"`
	API     API     `yaml:"api"`
	Driver  Driver  `yaml:"driver"`
	History History `yaml:"history"`
}

// API holds CloudStack management API connection settings.
type API struct {
	URL       string `yaml:"url"`                  // management API endpoint
	Key       string `yaml:"key"`                  // API key
	Secret    string `yaml:"secret"`               // API secret
	Timeout   int    `yaml:"timeout"`              // request timeout in seconds
	VerifySSL *bool  `yaml:"verify_ssl,omitempty"` // TLS certificate verification, default true
}

// Driver selects the resource driver and carries driver-specific settings.
type Driver struct {
	Name     string            `yaml:"name"`     // e.g., "cloudstack", "sim"
	Settings map[string]string `yaml:"settings"` // driver-specific settings
}

// History configures the reconcile run history store.
type History struct {
	URL string `yaml:"url"` // e.g., "sqlite:csops.db", empty disables history
}

// VerifySSLEnabled reports whether TLS verification is on. Unset means true.
func (a *API) VerifySSLEnabled() bool {
	return a.VerifySSL == nil || *a.VerifySSL
}
