package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "USERPANEL_"

// Config is the userpanel server configuration.
type Config struct {
	Addr            string  `koanf:"addr"`
	Port            int     `koanf:"port"`
	StaticDir       string  `koanf:"static_dir"`
	AllowAllOrigins bool    `koanf:"allow_all_origins"`
	BackPolicy      string  `koanf:"back_policy"`
	Profile         Profile `koanf:"profile"`
}

// Profile is the demo user shown on the profile page.
type Profile struct {
	Name     string `koanf:"name"`
	Email    string `koanf:"email"`
	Nickname string `koanf:"nickname"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:       "localhost",
		Port:       5000,
		StaticDir:  "static",
		BackPolicy: "login",
		Profile: Profile{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Nickname: "jane",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (USERPANEL_*). A missing file is fine.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// USERPANEL_STATIC_DIR -> static_dir, USERPANEL_PROFILE_EMAIL -> profile.email
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "profile_"); ok {
		return "profile." + rest
	}
	return key
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.BackPolicy {
	case "login", "previous":
	default:
		return fmt.Errorf("invalid back_policy %q: must be one of login, previous", c.BackPolicy)
	}
	return nil
}

// ListenAddr is the host:port the server binds.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Addr, c.Port)
}
