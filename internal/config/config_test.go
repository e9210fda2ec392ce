package config

import (
	"os"
	"testing"
)

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"dev", "development"},
		{"Development", "development"},
		{" local ", "development"},
		{"prod", "production"},
		{"PRODUCTION", "production"},
		{"staging", "staging"},
		{"testing", "test"},
		{"sandbox", "sandbox"},
	}
	for _, tc := range cases {
		if got := normalizeEnv(tc.in); got != tc.want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGetEnvBool(t *testing.T) {
	cases := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"ON", false, true},
		{"false", true, false},
		{"off", true, false},
		{"maybe", true, true},
		{"", false, false},
	}
	for _, tc := range cases {
		t.Setenv("TEST_BOOL_FLAG", tc.value)
		if got := getEnvBool("TEST_BOOL_FLAG", tc.fallback); got != tc.want {
			t.Errorf("getEnvBool(%q, %v) = %v, want %v", tc.value, tc.fallback, got, tc.want)
		}
	}
}

func TestDocsEnabled(t *testing.T) {
	cases := []struct {
		appEnv     string
		enableDocs bool
		want       bool
	}{
		{"development", true, true},
		{"development", false, false},
		{"production", true, false},
		{"staging", true, false},
	}
	for _, tc := range cases {
		cfg := &Config{AppEnv: tc.appEnv, EnableDocs: tc.enableDocs}
		if got := cfg.DocsEnabled(); got != tc.want {
			t.Errorf("DocsEnabled() with env=%s docs=%v = %v, want %v", tc.appEnv, tc.enableDocs, got, tc.want)
		}
	}

	var nilCfg *Config
	if nilCfg.DocsEnabled() {
		t.Error("expected nil config to report docs disabled")
	}
}
