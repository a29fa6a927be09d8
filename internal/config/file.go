package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/primezone/internal/flagx"
	"github.com/dmitrijs2005/primezone/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO for config files. Empty fields leave the current
// value alone.
type FileConfig struct {
	StorageDriver  string          `json:"storage_driver" yaml:"storage_driver"`
	StorageDSN     string          `json:"storage_dsn" yaml:"storage_dsn"`
	SyncDelay      *timex.Duration `json:"sync_delay" yaml:"sync_delay"`
	ErrorNoticeTTL *timex.Duration `json:"error_notice_ttl" yaml:"error_notice_ttl"`
	Locale         string          `json:"locale" yaml:"locale"`
	LogLevel       string          `json:"log_level" yaml:"log_level"`
	LogBackend     string          `json:"log_backend" yaml:"log_backend"`
	LogFile        string          `json:"log_file" yaml:"log_file"`
}

// parseFile overlays cfg with the file named by -c/-config. It panics on
// read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	setIf(&cfg.StorageDriver, fc.StorageDriver)
	setIf(&cfg.StorageDSN, fc.StorageDSN)
	setIf(&cfg.Locale, fc.Locale)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.LogBackend, fc.LogBackend)
	setIf(&cfg.LogFile, fc.LogFile)
	if fc.SyncDelay != nil {
		cfg.SyncDelay = fc.SyncDelay.Duration
	}
	if fc.ErrorNoticeTTL != nil {
		cfg.ErrorNoticeTTL = fc.ErrorNoticeTTL.Duration
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
