// Package config loads runtime configuration for the primezone CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via -c or -config.
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   storage driver: sqlite, postgres or memory
//	-d string   storage DSN (sqlite file path or postgres URL)
//	-l string   weekday label locale (pt-BR, en)
//	-v string   log level (debug, info, warn, error)
//	-delay int  startup sync delay in milliseconds
//
// # File schema
//
// Durations accept strings like "800ms" or integer nanoseconds:
//
//	{
//	  "storage_driver": "sqlite",
//	  "storage_dsn": "primezone.db",
//	  "sync_delay": "800ms",
//	  "error_notice_ttl": "2s",
//	  "locale": "pt-BR",
//	  "log_level": "info",
//	  "log_backend": "zap",
//	  "log_file": "primezone.log"
//	}
package config
