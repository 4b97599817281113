package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "droidview.yaml")
	content := `adbPath: /opt/android/adb
device: emulator-5554
dumpTimeoutSeconds: 30
compactDepth: 8
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ADBPath != "/opt/android/adb" {
		t.Errorf("ADBPath = %q", cfg.ADBPath)
	}
	if cfg.Device != "emulator-5554" {
		t.Errorf("Device = %q", cfg.Device)
	}
	if cfg.DumpTimeoutSeconds != 30 {
		t.Errorf("DumpTimeoutSeconds = %d, want 30", cfg.DumpTimeoutSeconds)
	}
	if cfg.CompactDepth != 8 {
		t.Errorf("CompactDepth = %d, want 8", cfg.CompactDepth)
	}
	// Unset fields fall back to defaults.
	if cfg.FlattenDepth != DefaultFlattenDepth {
		t.Errorf("FlattenDepth = %d, want default %d", cfg.FlattenDepth, DefaultFlattenDepth)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "droidview.yaml")
	if err := os.WriteFile(path, []byte("adbPath: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromDirMissing(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if cfg.DumpTimeoutSeconds != DefaultDumpTimeoutSeconds {
		t.Errorf("DumpTimeoutSeconds = %d, want default %d", cfg.DumpTimeoutSeconds, DefaultDumpTimeoutSeconds)
	}
	if cfg.CompactDepth != DefaultCompactDepth {
		t.Errorf("CompactDepth = %d, want default %d", cfg.CompactDepth, DefaultCompactDepth)
	}
}

func TestLoadFromDirYmlFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "droidview.yml"), []byte("device: pixel\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if cfg.Device != "pixel" {
		t.Errorf("Device = %q, want %q", cfg.Device, "pixel")
	}
}
