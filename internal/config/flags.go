package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/primezone/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags listed in the package doc are looked at; bad values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-l", "-v", "-delay"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver (sqlite, postgres, memory)")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "storage DSN")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "weekday label locale")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	delay := fs.Int("delay", int(cfg.SyncDelay.Milliseconds()), "startup sync delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SyncDelay = time.Duration(*delay) * time.Millisecond
}
