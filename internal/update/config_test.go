package update

import (
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.TickMs != 1000 || !cfg.AltScreen {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TickInterval() != time.Second {
		t.Fatalf("unexpected tick interval: %v", cfg.TickInterval())
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("ACHIEVERS_DB", "/tmp/achievers-test.db")
	t.Setenv("ACHIEVERS_LOG", "/tmp/achievers-test.log")
	t.Setenv("ACHIEVERS_TICK_MS", "250")
	t.Setenv("ACHIEVERS_DISABLE_ALT_SCREEN", "true")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "/tmp/achievers-test.db" || cfg.LogPath != "/tmp/achievers-test.log" {
		t.Fatalf("unexpected paths: %+v", cfg)
	}
	if cfg.TickMs != 250 || cfg.TickInterval() != 250*time.Millisecond {
		t.Fatalf("unexpected tick override: %+v", cfg)
	}
	if cfg.AltScreen {
		t.Fatal("expected alt screen disabled")
	}
}

func TestRuntimeConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("ACHIEVERS_TICK_MS", "soon")
	t.Setenv("ACHIEVERS_DISABLE_ALT_SCREEN", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.TickMs != 1000 || !cfg.AltScreen {
		t.Fatalf("expected defaults kept on bad env, got %+v", cfg)
	}
}
