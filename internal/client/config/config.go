package config

import "time"

// Config holds runtime settings for the EcoTrack CLI.
//
// Fields:
//   - VerifyEndpointAddr: full URL of the external verification endpoint.
//   - DatabaseDSN: path of the local SQLite database file.
//   - OnlineCheckInterval: how often the client probes endpoint reachability.
type Config struct {
	VerifyEndpointAddr  string
	DatabaseDSN         string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.VerifyEndpointAddr = "http://127.0.0.1:8000/verify-action"
	c.DatabaseDSN = "ecotrack.db"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
