package csopscfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "csops.yml")

	content := `
version: v1
api:
  url: https://cloud.example.com/client/api
  key: test-key
  secret: test-secret
  timeout: 20
driver:
  name: cloudstack
  settings:
    zone: zone01
    hypervisor: KVM
history:
  url: sqlite:csops.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Version != "v1" {
		t.Errorf("expected version v1, got %s", cfg.Version)
	}
	if cfg.API.URL != "https://cloud.example.com/client/api" || cfg.API.Key != "test-key" {
		t.Errorf("unexpected api: %+v", cfg.API)
	}
	if cfg.API.Timeout != 20 {
		t.Errorf("unexpected timeout: %d", cfg.API.Timeout)
	}
	if !cfg.API.VerifySSLEnabled() {
		t.Errorf("verify_ssl should default to true")
	}
	if cfg.Driver.Name != "cloudstack" || cfg.Driver.Settings["zone"] != "zone01" {
		t.Errorf("unexpected driver: %+v", cfg.Driver)
	}
	if cfg.History.URL != "sqlite:csops.db" {
		t.Errorf("unexpected history: %+v", cfg.History)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load("/path/does/not/exist.yml"); err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")

	// invalid YAML (missing closing bracket)
	bad := "version: [1,2\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for invalid YAML, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "csops.yml")

	content := `
version: v1
api:
  url: https://cloud.example.com/client/api
  key: file-key
  secret: file-secret
driver:
  name: cloudstack
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	t.Setenv("CLOUDSTACK_ENDPOINT", "https://env.example.com/client/api")
	t.Setenv("CLOUDSTACK_KEY", "env-key")
	t.Setenv("CLOUDSTACK_SECRET", "env-secret")
	t.Setenv("CLOUDSTACK_TIMEOUT", "30")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.URL != "https://env.example.com/client/api" {
		t.Errorf("endpoint not overridden: %s", cfg.API.URL)
	}
	if cfg.API.Key != "env-key" || cfg.API.Secret != "env-secret" {
		t.Errorf("credentials not overridden: %+v", cfg.API)
	}
	if cfg.API.Timeout != 30 {
		t.Errorf("timeout not overridden: %d", cfg.API.Timeout)
	}
}

func TestLoad_InvalidEnvTimeout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "csops.yml")

	content := `
version: v1
api:
  url: https://cloud.example.com/client/api
  key: k
  secret: s
driver:
  name: cloudstack
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	t.Setenv("CLOUDSTACK_TIMEOUT", "soon")

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for invalid timeout, got nil")
	} else if !strings.Contains(err.Error(), "CLOUDSTACK_TIMEOUT") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "csops.yml")

	content := `
version: v1
api:
  url: https://cloud.example.com/client/api
driver:
  name: cloudstack
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	t.Setenv("CLOUDSTACK_KEY", "")
	t.Setenv("CLOUDSTACK_SECRET", "")

	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error, got nil")
	} else if !strings.Contains(err.Error(), "key is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}
