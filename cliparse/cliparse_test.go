// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import "testing"

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-p", "9000",
		"-d", "file:dev.db",
		"-t", "sqlite",
		"-session-salt", "s3cret",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:dev.db" {
		t.Errorf("Expected database URL file:dev.db, got %s", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.SessionSalt != "s3cret" {
		t.Errorf("Expected salt s3cret, got %s", cfg.SessionSalt)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"-d", "file:dev.db", "-session-salt", "x"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 3324 {
		t.Errorf("Expected default port 3324, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected default type sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SESSION_SALT", "env-salt")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 4000 || cfg.DatabaseURL != "postgres://example" ||
		cfg.DatabaseType != "postgres" || cfg.SessionSalt != "env-salt" {
		t.Errorf("Env fallback not applied: %+v", cfg)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing database URL", []string{"-session-salt", "x"}},
		{"missing session salt", []string{"-d", "file:dev.db"}},
		{"bad database type", []string{"-d", "file:dev.db", "-t", "oracle", "-session-salt", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
