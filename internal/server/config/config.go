// Package config loads runtime settings for the BarberBook server.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - Addr: listen address for the HTTP API.
//   - DBPath: path of the sqlite database file.
//   - JWTSecret: key used to sign session tokens.
//   - TokenTTL: how long issued tokens stay valid.
type Config struct {
	Addr      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
}

// LoadDefaults populates c with sensible defaults. The default secret only
// suits local demo runs; real deployments override it.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DBPath = "barberbook.db"
	c.JWTSecret = "dev-secret-change-me"
	c.TokenTTL = 12 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
