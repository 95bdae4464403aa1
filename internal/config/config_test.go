package config

import (
	"os"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.OutputSuffix != "_formatted.txt" {
		t.Errorf("expected default suffix, got %q", cfg.OutputSuffix)
	}
	if cfg.ColumnLimit != 95 {
		t.Errorf("expected default column limit 95, got %d", cfg.ColumnLimit)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	yaml := "port: \"9090\"\ncolumn_limit: 80\nrubric_path: rubric.yaml\n"
	if err := os.WriteFile("config.yaml", []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.ColumnLimit != 80 {
		t.Errorf("expected column limit 80, got %d", cfg.ColumnLimit)
	}
	if cfg.RubricPath != "rubric.yaml" {
		t.Errorf("expected rubric path, got %q", cfg.RubricPath)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CALLGRADER_PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("expected env override 7070, got %q", cfg.Port)
	}
}
