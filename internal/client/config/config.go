package config

import "time"

// GlobalFlags are the flags owned by this package. Everything else on the
// command line belongs to the subcommand.
var GlobalFlags = []string{"-a", "-t", "-token", "-c", "-config"}

// Config holds runtime settings for invctl.
type Config struct {
	ServerURL      string        `env:"INVTRACK_SERVER"`
	RequestTimeout time.Duration `env:"INVTRACK_TIMEOUT"`
	Token          string        `env:"INVTRACK_TOKEN"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3000"
	c.RequestTimeout = 10 * time.Second
	c.Token = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
