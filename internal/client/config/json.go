package config

import (
	"encoding/json"
	"os"

	"github.com/barberbook/barberbook/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// keep their current (default) values.
type jsonConfig struct {
	ServerURL *string `json:"server_url"`
	DBPath    *string `json:"db_path"`
	LogFile   *string `json:"log_file"`
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

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
}
