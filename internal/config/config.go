// Package config loads application configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Source  SourceConfig
}

// ServerConfig holds the portal listen settings.
type ServerConfig struct {
	Addr string
}

// StorageConfig holds sqlite settings and cache lifetimes.
type StorageConfig struct {
	Path string
	// StateTTL forces a re-fetch of carts whose stored state is older.
	// Zero keeps stored state forever.
	StateTTL time.Duration
	// CacheTTL bounds the raw-cart fetch cache.
	CacheTTL time.Duration
}

// SourceConfig holds the share-a-cart endpoint settings.
type SourceConfig struct {
	APIBase string
	// Strict rejects unknown fields in fetched payloads instead of
	// ignoring them.
	Strict bool
}

// Load reads configuration from file and env. Env var overrides use prefix
// CARTLIST_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8787")
	v.SetDefault("storage.path", filepath.Join("data", "cartlist.db"))
	v.SetDefault("storage.state_ttl", "24h")
	v.SetDefault("storage.cache_ttl", "1h")
	v.SetDefault("source.api_base", "")
	v.SetDefault("source.strict", false)

	v.SetConfigType("toml")
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join("$HOME", ".config", "cartlist"))

	v.SetEnvPrefix("CARTLIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	// keys with underscores don't line up with field names; read them directly
	c.Storage.StateTTL = v.GetDuration("storage.state_ttl")
	c.Storage.CacheTTL = v.GetDuration("storage.cache_ttl")
	c.Source.APIBase = v.GetString("source.api_base")
	return c, nil
}
