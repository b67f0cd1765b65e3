package conf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OKR_CONF", "")
	t.Setenv("OKR_REPO_PATH", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ParserURL == "" || cfg.NerURL == "" {
		t.Errorf("expected default endpoints, got %+v", cfg)
	}
	if cfg.Implicits || cfg.ZeroArgs || cfg.Conj {
		t.Errorf("expected filter flags off by default, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("OKR_REPO_PATH", "")

	path := filepath.Join(t.TempDir(), "conf.yaml")
	content := "parser_url: http://parser:9000/parse\nner_url: http://ner:9001/ner\nrepository: /tmp/okr.db\nzero_args: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ParserURL != "http://parser:9000/parse" {
		t.Errorf("unexpected parser url: %q", cfg.ParserURL)
	}
	if cfg.Repository != "/tmp/okr.db" {
		t.Errorf("unexpected repository: %q", cfg.Repository)
	}
	if !cfg.ZeroArgs {
		t.Error("expected zero_args true")
	}
	if cfg.Implicits {
		t.Error("expected implicits false")
	}
}

func TestLoadRepoEnvOverride(t *testing.T) {
	t.Setenv("OKR_REPO_PATH", "/data/override.db")

	path := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte("repository: /tmp/okr.db\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Repository != "/data/override.db" {
		t.Errorf("expected env override, got %q", cfg.Repository)
	}
}
