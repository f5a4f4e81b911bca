package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "DB_DSN", "SERVER_PORT", "SESSION_SECRET", "ADMIN_USERNAME", "ADMIN_PASSWORD"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.DBDSN != "movimientos.db" {
		t.Errorf("DBDSN = %q, want movimientos.db", cfg.DBDSN)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.SessionSecret == "" {
		t.Error("SessionSecret is empty")
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "123456" {
		t.Errorf("admin defaults = %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "host=localhost user=app dbname=movimientos")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SESSION_SECRET", "super-secreta")
	t.Setenv("ADMIN_USERNAME", "sergio")
	t.Setenv("ADMIN_PASSWORD", "otraclave")

	cfg := Load()

	if cfg.DBDriver != "postgres" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.DBDSN != "host=localhost user=app dbname=movimientos" {
		t.Errorf("DBDSN = %q", cfg.DBDSN)
	}
	if cfg.ServerPort != "9000" {
		t.Errorf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.SessionSecret != "super-secreta" {
		t.Errorf("SessionSecret = %q", cfg.SessionSecret)
	}
	if cfg.AdminUsername != "sergio" || cfg.AdminPassword != "otraclave" {
		t.Errorf("admin = %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
}
