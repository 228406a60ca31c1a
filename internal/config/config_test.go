package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"STORYFORGE_LISTEN_ADDR", "STORYFORGE_DB_DSN", "STORYFORGE_MIGRATIONS_DIR", "STORYFORGE_OUTCOME_TABLES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.MigrationsDir != "migrations" {
		t.Fatalf("expected default migrations dir, got %q", cfg.MigrationsDir)
	}
	if cfg.DBDSN != "" || cfg.OutcomePath != "" {
		t.Fatalf("expected empty optional settings, got %+v", cfg)
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("STORYFORGE_LISTEN_ADDR", ":9999")
	t.Setenv("STORYFORGE_DB_DSN", "postgres://localhost/storyforge")
	t.Setenv("STORYFORGE_OUTCOME_TABLES", "/etc/storyforge/outcomes.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":9999" || cfg.DBDSN != "postgres://localhost/storyforge" || cfg.OutcomePath != "/etc/storyforge/outcomes.yaml" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
