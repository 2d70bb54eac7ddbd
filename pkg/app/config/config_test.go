package config

import "testing"

func TestNewAppliesDefaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.AppName != "embernote" {
		t.Fatalf("AppName default mismatch: got %q", cfg.AppName)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel default mismatch: got %q", cfg.LogLevel)
	}
	if cfg.SubID != "sub_1" {
		t.Fatalf("SubID default mismatch: got %q", cfg.SubID)
	}
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("EMBERNOTE_LOG_LEVEL", "trace")
	t.Setenv("EMBERNOTE_SUB_ID", "subscription_1")
	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.LogLevel != "trace" {
		t.Fatalf("LogLevel mismatch: got %q", cfg.LogLevel)
	}
	if cfg.SubID != "subscription_1" {
		t.Fatalf("SubID mismatch: got %q", cfg.SubID)
	}
}
