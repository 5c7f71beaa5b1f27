package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/flagx"
	"github.com/ecotrack-app/ecotrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s" or
// as integer nanoseconds.
type JsonConfig struct {
	VerifyEndpointAddr  string         `json:"verify_endpoint_addr"`
	DatabaseDSN         string         `json:"database_dsn"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is given, nothing is
// loaded. Read or unmarshal errors panic (caller may recover).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.VerifyEndpointAddr = jc.VerifyEndpointAddr
	cfg.DatabaseDSN = jc.DatabaseDSN
	cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
}
