package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "USERSCONSOLE_"

// envConfig mirrors Config for environment decoding; noinit keeps unset
// variables nil so they do not clobber earlier sources.
type envConfig struct {
	APIBaseURL           *string        `env:"API_BASE_URL, noinit"`
	APIKey               *string        `env:"API_KEY, noinit"`
	RequestTimeout       *time.Duration `env:"REQUEST_TIMEOUT, noinit"`
	PageSize             *int           `env:"PAGE_SIZE, noinit"`
	StorageDriver        *string        `env:"STORAGE_DRIVER, noinit"`
	StorageDSN           *string        `env:"STORAGE_DSN, noinit"`
	RedisAddr            *string        `env:"REDIS_ADDR, noinit"`
	RedisDB              *int           `env:"REDIS_DB, noinit"`
	StoragePassphrase    *string        `env:"STORAGE_PASSPHRASE, noinit"`
	LogLevel             *string        `env:"LOG_LEVEL, noinit"`
	LogFormat            *string        `env:"LOG_FORMAT, noinit"`
	StrictProfile        *bool          `env:"STRICT_PROFILE, noinit"`
	RefetchAfterMutation *bool          `env:"REFETCH_AFTER_MUTATION, noinit"`
}

func envLookuper() envconfig.Lookuper {
	return envconfig.PrefixLookuper(EnvPrefix, envconfig.OsLookuper())
}

// parseEnv overlays cfg with the variables visible through l.
func parseEnv(cfg *Config, l envconfig.Lookuper) error {
	var ec envConfig
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &ec,
		Lookuper: l,
	}); err != nil {
		return fmt.Errorf("decode environment: %w", err)
	}

	setIf(&cfg.APIBaseURL, ec.APIBaseURL)
	setIf(&cfg.APIKey, ec.APIKey)
	setIf(&cfg.RequestTimeout, ec.RequestTimeout)
	setIf(&cfg.PageSize, ec.PageSize)
	setIf(&cfg.StorageDriver, ec.StorageDriver)
	setIf(&cfg.StorageDSN, ec.StorageDSN)
	setIf(&cfg.RedisAddr, ec.RedisAddr)
	setIf(&cfg.RedisDB, ec.RedisDB)
	setIf(&cfg.StoragePassphrase, ec.StoragePassphrase)
	setIf(&cfg.LogLevel, ec.LogLevel)
	setIf(&cfg.LogFormat, ec.LogFormat)
	setIf(&cfg.StrictProfile, ec.StrictProfile)
	setIf(&cfg.RefetchAfterMutation, ec.RefetchAfterMutation)
	return nil
}
