package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load without config file: %v", err)
	}
	if cfg.Title != DefaultTitle {
		t.Fatalf("expected default title, got %q", cfg.Title)
	}
	if cfg.Environment != "" || cfg.Overwrite || cfg.Verbose {
		t.Fatalf("expected zero defaults, got %+v", cfg)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	contents := "environment: automated\ntitle: Nightly\noverwrite: true\n"
	if err := os.WriteFile(filepath.Join(dir, ".buildreport.yml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "automated" {
		t.Fatalf("environment = %q", cfg.Environment)
	}
	if cfg.Title != "Nightly" {
		t.Fatalf("title = %q", cfg.Title)
	}
	if !cfg.Overwrite {
		t.Fatal("overwrite should be set from file")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".buildreport.yml"), []byte("title: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error for malformed yaml")
	}
}

func TestApplyFlagsOverridesFile(t *testing.T) {
	cfg := Default()
	cfg.Environment = "automated"
	cfg.Title = "From file"

	ApplyFlags(&cfg, FlagValues{
		Environment: StringFlag{Value: "production", Set: true},
		Verbose:     BoolFlag{Value: true, Set: true},
	})

	if cfg.Environment != "production" {
		t.Fatalf("flag should win over file, got %q", cfg.Environment)
	}
	if cfg.Title != "From file" {
		t.Fatalf("unset flag must not clear file value, got %q", cfg.Title)
	}
	if !cfg.Verbose {
		t.Fatal("verbose flag not applied")
	}
}
