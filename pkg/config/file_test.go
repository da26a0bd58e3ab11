package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideapadctl.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file should have been created: %v", err)
	}

	if f.AllowNonRootAccess() {
		t.Fatalf("default allowNonRootAccess should be false")
	}
	if f.DefaultHandler() != "switch" {
		t.Fatalf("default handler should be switch, got %q", f.DefaultHandler())
	}
	if f.DisableRapidChargeOnExit() {
		t.Fatalf("default disableRapidChargeOnExit should be false")
	}
	if f.ProfileOverride() != "" {
		t.Fatalf("default profileOverride should be empty, got %q", f.ProfileOverride())
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideapadctl.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}

	f.SetAllowNonRootAccess(true)
	if err := f.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	g, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}
	if !g.AllowNonRootAccess() {
		t.Fatalf("allowNonRootAccess should survive a save/load round trip")
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideapadctl.json")
	if err := os.WriteFile(path, []byte(`{"defaultHandler": "error"}`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}

	if f.DefaultHandler() != "error" {
		t.Fatalf("explicit defaultHandler should win, got %q", f.DefaultHandler())
	}
	if f.AllowNonRootAccess() {
		t.Fatalf("missing fields should keep their defaults")
	}
}
