package csopscfg

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file used when --config and CSOPS_CONFIG are unset.
const DefaultPath = "csops.yml"

// Environment variable names recognized by applyEnv. They mirror the
// variables the CloudStack command line tools use so credentials never
// need to live in the config file.
const (
	envEndpoint = "CLOUDSTACK_ENDPOINT"
	envKey      = "CLOUDSTACK_KEY"
	envSecret   = "CLOUDSTACK_SECRET"
	envTimeout  = "CLOUDSTACK_TIMEOUT"
)

// Load reads a YAML file from the given path, applies environment variable
// overrides, validates the result and returns the deserialized Root.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides API settings from the environment.
func (r *Root) applyEnv() error {
	if v := os.Getenv(envEndpoint); v != "" {
		r.API.URL = v
	}
	if v := os.Getenv(envKey); v != "" {
		r.API.Key = v
	}
	if v := os.Getenv(envSecret); v != "" {
		r.API.Secret = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", envTimeout, v, err)
		}
		r.API.Timeout = n
	}
	return nil
}
