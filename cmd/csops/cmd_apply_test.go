package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	root.SetContext(context.Background())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	_, err := root.ExecuteC()
	return out.String(), err
}

func TestApplyCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "csops.yml")
	writeFile(t, cfgPath, "version: v1\ndriver:\n  name: sim\n")

	manifestPath := filepath.Join(dir, "resources.yml")
	writeFile(t, manifestPath, `resources:
  - kind: zone
    name: zone01
    dns1: 8.8.8.8
  - kind: host
    name: kvm01
    pod: pod01
    url: http://kvm01.example.com
    username: root
    password: secret
    zone: zone01
    hypervisor: KVM
`)

	out, err := runCommand(t, "apply", "--config", cfgPath, "-f", manifestPath)
	if err != nil {
		t.Fatalf("apply returned error: %v\noutput: %s", err, out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 result lines, got %d: %s", len(lines), out)
	}
	for i, line := range lines {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
		if rec["changed"] != true {
			t.Errorf("line %d: expected changed=true, got %v", i, rec["changed"])
		}
		if rec["failed"] == true {
			t.Errorf("line %d: unexpected failure: %v", i, rec["msg"])
		}
	}
}

func TestApplyCommand_ContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "csops.yml")
	writeFile(t, cfgPath, "version: v1\ndriver:\n  name: sim\n")

	// The first zone lacks dns1 and fails; the second one still applies.
	manifestPath := filepath.Join(dir, "resources.yml")
	writeFile(t, manifestPath, `resources:
  - kind: zone
    name: zone01
  - kind: zone
    name: zone02
    dns1: 8.8.8.8
`)

	out, err := runCommand(t, "apply", "--config", cfgPath, "-f", manifestPath)
	if err == nil {
		t.Fatalf("expected error, got nil\noutput: %s", out)
	}
	if !strings.Contains(err.Error(), "1 of 2 resources failed") {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 result lines, got %d: %s", len(lines), out)
	}
	var first, second map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("second line is not JSON: %v", err)
	}
	if first["failed"] != true || first["msg"] != "missing required arguments: dns1" {
		t.Errorf("unexpected first record: %v", first)
	}
	if second["changed"] != true || second["failed"] == true {
		t.Errorf("unexpected second record: %v", second)
	}
}

func TestApplyCommand_UnknownKind(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "csops.yml")
	writeFile(t, cfgPath, "version: v1\ndriver:\n  name: sim\n")

	manifestPath := filepath.Join(dir, "resources.yml")
	writeFile(t, manifestPath, "resources:\n  - kind: volume\n    name: data\n")

	_, err := runCommand(t, "apply", "--config", cfgPath, "-f", manifestPath)
	if err == nil || !strings.Contains(err.Error(), `unknown kind "volume"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyCommand_EmptyManifest(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "csops.yml")
	writeFile(t, cfgPath, "version: v1\ndriver:\n  name: sim\n")

	manifestPath := filepath.Join(dir, "resources.yml")
	writeFile(t, manifestPath, "resources: []\n")

	_, err := runCommand(t, "apply", "--config", cfgPath, "-f", manifestPath)
	if err == nil || !strings.Contains(err.Error(), "no resources") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyCommand_RecordsHistory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "csops.yml")
	dbPath := filepath.Join(dir, "csops.db")
	writeFile(t, cfgPath, "version: v1\ndriver:\n  name: sim\nhistory:\n  url: sqlite:"+dbPath+"\n")

	manifestPath := filepath.Join(dir, "resources.yml")
	writeFile(t, manifestPath, "resources:\n  - kind: zone\n    name: zone01\n    dns1: 8.8.8.8\n")

	if out, err := runCommand(t, "apply", "--config", cfgPath, "-f", manifestPath); err != nil {
		t.Fatalf("apply returned error: %v\noutput: %s", err, out)
	}

	out, err := runCommand(t, "history", "list", "--config", cfgPath)
	if err != nil {
		t.Fatalf("history list returned error: %v\noutput: %s", err, out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 history line, got %d: %s", len(lines), out)
	}
	var run map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &run); err != nil {
		t.Fatalf("history line is not JSON: %v", err)
	}
	if run["kind"] != "zone" || run["name"] != "zone01" || run["changed"] != true {
		t.Errorf("unexpected history record: %v", run)
	}
}
