package config

import (
	"encoding/json"
	"os"

	"github.com/barberbook/barberbook/internal/flagx"
	"github.com/barberbook/barberbook/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// keep their current (default) values.
type jsonConfig struct {
	Addr      *string         `json:"addr"`
	DBPath    *string         `json:"db_path"`
	JWTSecret *string         `json:"jwt_secret"`
	TokenTTL  *timex.Duration `json:"token_ttl"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flag. When no flag is given, nothing is loaded. Read or
// unmarshal errors panic; the entrypoint treats a broken config file as
// fatal misconfiguration.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Addr != nil {
		cfg.Addr = *jc.Addr
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.JWTSecret != nil {
		cfg.JWTSecret = *jc.JWTSecret
	}
	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
}
