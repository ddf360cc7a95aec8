package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 5000 || cfg.BackPolicy != "login" || cfg.StaticDir != "static" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if got := cfg.ListenAddr(); got != "localhost:5000" {
		t.Errorf("unexpected listen addr %q", got)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userpanel.yml")
	yml := "port: 8080\nback_policy: previous\nprofile:\n  name: Bob\n  email: bob@example.com\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("USERPANEL_ADDR", "0.0.0.0")
	t.Setenv("USERPANEL_PROFILE_NICKNAME", "bobby")
	t.Setenv("USERPANEL_STATIC_DIR", "/srv/static")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 || cfg.BackPolicy != "previous" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Profile.Name != "Bob" || cfg.Profile.Email != "bob@example.com" || cfg.Profile.Nickname != "bobby" {
		t.Errorf("unexpected profile %+v", cfg.Profile)
	}
	if cfg.Addr != "0.0.0.0" || cfg.StaticDir != "/srv/static" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BackPolicy = "sideways"
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid back_policy error")
	}
	cfg = DefaultConfig()
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid port error")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"USERPANEL_PORT":              "port",
		"USERPANEL_ALLOW_ALL_ORIGINS": "allow_all_origins",
		"USERPANEL_PROFILE_EMAIL":     "profile.email",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
