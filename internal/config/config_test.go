package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.FOV != 80 {
		t.Errorf("expected fov 80, got %f", cfg.Graphics.FOV)
	}

	if cfg.Scene.File != "" {
		t.Errorf("expected empty scene file (built-in room), got %s", cfg.Scene.File)
	}
	if cfg.Scene.AssetDir != "textures" {
		t.Errorf("expected asset dir 'textures', got %s", cfg.Scene.AssetDir)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  file: scenes/office.yaml
  asset_dir: /opt/viewer/textures

logging:
  level: debug
  log_file: viewer.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync false")
	}
	if cfg.Scene.File != "scenes/office.yaml" {
		t.Errorf("unexpected scene file %s", cfg.Scene.File)
	}
	if cfg.Scene.AssetDir != "/opt/viewer/textures" {
		t.Errorf("unexpected asset dir %s", cfg.Scene.AssetDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("unexpected log file %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// Values absent from the file keep their defaults.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 800
  height: 600
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Scene.AssetDir != "textures" {
		t.Errorf("expected default asset dir, got %s", cfg.Scene.AssetDir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level, got %s", cfg.Logging.Level)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	for name, value := range map[string]string{
		"scene": "scenes/custom.yaml",
		"width": "1600",
		"debug": "true",
	} {
		if err := flag.Set(name, value); err != nil {
			t.Fatalf("setting flag %s: %v", name, err)
		}
	}
	t.Cleanup(func() {
		flag.Set("scene", "")
		flag.Set("width", "0")
		flag.Set("debug", "false")
	})

	cfg := Default()
	cfg.Scene.File = "from-file.yaml"
	cfg.Graphics.Width = 1024
	applyFlags(cfg)

	if cfg.Scene.File != "scenes/custom.yaml" {
		t.Errorf("flag did not override scene file: %s", cfg.Scene.File)
	}
	if cfg.Graphics.Width != 1600 {
		t.Errorf("flag did not override width: %d", cfg.Graphics.Width)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("debug flag did not raise log level: %s", cfg.Logging.Level)
	}
	// Untouched flags leave file values alone.
	if cfg.Graphics.Height != 720 {
		t.Errorf("height changed without a flag: %d", cfg.Graphics.Height)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 2560
	cfg.Scene.File = "room.yaml"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Graphics.Width != 2560 {
		t.Errorf("expected width 2560 after round trip, got %d", loaded.Graphics.Width)
	}
	if loaded.Scene.File != "room.yaml" {
		t.Errorf("expected scene file room.yaml, got %s", loaded.Scene.File)
	}
}
