package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// Defaults for the static server.
const (
	DefaultPort  = 3000
	DefaultDir   = "dist"
	DefaultEntry = "index.html"
)

// Config holds the settings shared by the serve and build commands.
type Config struct {
	Port  int
	Dir   string
	Entry string
}

// New returns a viper instance with defaults and environment bindings.
// Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("dir", DefaultDir)
	v.SetDefault("entry", DefaultEntry)

	// BindEnv only errors when no key is given.
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("dir", "ASSETS_DIR")
	_ = v.BindEnv("entry", "ENTRY_DOCUMENT")
	return v
}

// Load reads the configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	raw := v.GetString("port")
	port, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("port %d out of range", port)
	}

	cfg := &Config{
		Port:  port,
		Dir:   v.GetString("dir"),
		Entry: v.GetString("entry"),
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.Entry == "" {
		cfg.Entry = DefaultEntry
	}
	return cfg, nil
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
