// Package config loads runtime settings for the BarberBook terminal client.
package config

// Config holds runtime settings for the terminal client.
//
// Fields:
//   - ServerURL: base URL of the backend API.
//   - DBPath: path of the local sqlite file holding the saved session token.
//   - LogFile: where client logs go (the TUI owns stdout).
type Config struct {
	ServerURL string
	DBPath    string
	LogFile   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.DBPath = "barberbook-client.db"
	c.LogFile = "barberbook-client.log"
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
