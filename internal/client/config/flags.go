package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/usersconsole/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote API
//	-k string   API key
//	-p int      directory page size
//	-s string   session storage driver
//	-d string   session storage DSN
//	-l string   log level
//
// Other arguments (for example -c) are filtered out with flagx.FilterArgs
// before parsing.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the remote API")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key sent as x-api-key")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "directory page size")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "session storage driver (sqlite, redis, memory)")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "session storage DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(flagx.FilterArgs(args, "a", "k", "p", "s", "d", "l")); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
