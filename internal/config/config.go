package config

import "time"

// Config holds runtime settings for the primezone CLI.
type Config struct {
	StorageDriver  string
	StorageDSN     string
	SyncDelay      time.Duration
	ErrorNoticeTTL time.Duration
	Locale         string
	LogLevel       string
	LogBackend     string
	LogFile        string
}

// LoadDefaults populates c with the defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = "sqlite"
	c.StorageDSN = "primezone.db"
	c.SyncDelay = 800 * time.Millisecond
	c.ErrorNoticeTTL = 2 * time.Second
	c.Locale = "pt-BR"
	c.LogLevel = "info"
	c.LogBackend = "zap"
	c.LogFile = "primezone.log"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if any) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
