// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPath != "./data/mathlog.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/mathlog.db")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true for default env")
	}
	if cfg.UseRedisCache() {
		t.Error("UseRedisCache() = true, want false without MATHLOG_REDIS_URL")
	}
	if !cfg.DoSeed {
		t.Error("DoSeed = false, want true by default")
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("MATHLOG_SERVER_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Error("Load() with out-of-range port should return error")
	}
}

func TestLoadInvalidRetention(t *testing.T) {
	t.Setenv("MATHLOG_EVENT_RETENTION_DAYS", "0")

	if _, err := Load(); err == nil {
		t.Error("Load() with zero retention should return error")
	}
}

func TestServerAddr(t *testing.T) {
	cfg := Config{ServerHost: "0.0.0.0", ServerPort: 9090}
	if got := cfg.ServerAddr(); got != "0.0.0.0:9090" {
		t.Errorf("ServerAddr() = %q, want %q", got, "0.0.0.0:9090")
	}
}

func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    []string
	}{
		{"wildcard", "*", []string{"*"}},
		{"multiple", "https://a.example, https://b.example", []string{"https://a.example", "https://b.example"}},
		{"empty entries skipped", "https://a.example,,   ", []string{"https://a.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{CORSOrigins: tt.origins}
			got := cfg.AllowedOrigins()
			if len(got) != len(tt.want) {
				t.Fatalf("AllowedOrigins() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("AllowedOrigins()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
