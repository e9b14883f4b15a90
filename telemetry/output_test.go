package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/netzer-git/Organizm/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager when output is disabled")
	}

	// All methods must be safe on the nil manager.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("nil WriteTelemetry error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close error: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("nil Dir() = %q, want empty", om.Dir())
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run1")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}

	if err := om.WriteTelemetry(WindowStats{WindowEnd: 10, HerbivoreCount: 5}); err != nil {
		t.Fatalf("first write error: %v", err)
	}
	if err := om.WriteTelemetry(WindowStats{WindowEnd: 20, HerbivoreCount: 4}); err != nil {
		t.Fatalf("second write error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want header plus 2 records", len(lines))
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("header missing window_end: %q", lines[0])
	}
	if strings.Contains(lines[1], "window_end") {
		t.Error("header repeated in record line")
	}
}

func TestOutputManagerWriteConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
}
