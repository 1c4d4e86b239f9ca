package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ADDR", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DB", "")

	cfg := Load()
	if cfg.Addr != ":5000" {
		t.Errorf("Addr = %q, want :5000", cfg.Addr)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDB != "rci-maria" {
		t.Errorf("MongoDB = %q", cfg.MongoDB)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ADDR", "")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DB", "rci-test")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDB != "rci-test" {
		t.Errorf("MongoDB = %q", cfg.MongoDB)
	}

	// ADDR wins over PORT when both are set.
	t.Setenv("ADDR", "127.0.0.1:7000")
	if cfg := Load(); cfg.Addr != "127.0.0.1:7000" {
		t.Errorf("Addr = %q, want 127.0.0.1:7000", cfg.Addr)
	}
}
