package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadPartialFileLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skimline.yaml")
	body := "windowWidth: 640\ndemoTracks: 3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.WindowWidth != 640 || cfg.DemoTracks != 3 {
		t.Fatalf("overridden fields not applied: %+v", cfg)
	}
	if cfg.WindowHeight != Default().WindowHeight || cfg.DemoSpansPerTrack != Default().DemoSpansPerTrack {
		t.Fatalf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("windowWidth: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestNormalizeBackfillsNonPositiveValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zeroed.yaml")
	if err := os.WriteFile(path, []byte("windowWidth: 0\nwindowHeight: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.WindowWidth != Default().WindowWidth || cfg.WindowHeight != Default().WindowHeight {
		t.Fatalf("non-positive sizes should fall back to defaults: %+v", cfg)
	}
}
