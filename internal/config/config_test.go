package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Setenv("SMD_CONFIG", "")
	cfg := Load()
	if cfg.DefaultIntegrator != "rkf45" {
		t.Errorf("expected default integrator rkf45, got %s", cfg.DefaultIntegrator)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadCaches(t *testing.T) {
	Reset()
	a := Load()
	b := Load()
	if a != b {
		t.Errorf("expected cached config to be stable across calls")
	}
}
