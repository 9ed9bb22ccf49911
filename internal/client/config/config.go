package config

import (
	"os"
	"time"
)

// Storage drivers for the persisted session.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds runtime settings for the console.
//
// Fields:
//   - APIBaseURL: root of the remote REST API (login and users endpoints).
//   - APIKey: service credential sent with every request as x-api-key.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - PageSize: directory page size used by the console.
//   - StorageDriver / StorageDSN: where the session token and profile live.
//   - RedisAddr / RedisDB: redis settings when StorageDriver is "redis".
//   - StoragePassphrase: when set, stored values are encrypted with a key
//     derived from it. Not accepted as a flag.
//   - LogLevel / LogFormat: see logging.Options.
//   - StrictProfile: fail logins whose response lacks a token or identity
//     instead of substituting sandbox fallbacks.
//   - RefetchAfterMutation: reload the current page after every successful
//     create, update or delete.
type Config struct {
	APIBaseURL           string        `validate:"required,url"`
	APIKey               string        `validate:"required"`
	RequestTimeout       time.Duration `validate:"gt=0"`
	PageSize             int           `validate:"gt=0,lte=100"`
	StorageDriver        string        `validate:"oneof=sqlite redis memory"`
	StorageDSN           string        `validate:"required_if=StorageDriver sqlite"`
	RedisAddr            string        `validate:"required_if=StorageDriver redis"`
	RedisDB              int           `validate:"gte=0"`
	StoragePassphrase    string
	LogLevel             string        `validate:"oneof=debug info warn error"`
	LogFormat            string        `validate:"oneof=text json zerolog pretty"`
	StrictProfile        bool
	RefetchAfterMutation bool
}

// LoadDefaults populates c with defaults pointing at the public reqres.in sandbox.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://reqres.in/api"
	c.APIKey = "reqres-free-v1"
	c.RequestTimeout = 10 * time.Second
	c.PageSize = 10
	c.StorageDriver = StorageSQLite
	c.StorageDSN = "session.db"
	c.RedisAddr = "localhost:6379"
	c.RedisDB = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.StrictProfile = false
	c.RefetchAfterMutation = false
}

// Load constructs a Config from args (without the program name): defaults,
// then the config file named by -c/-config, then USERSCONSOLE_* environment
// variables, then flags. Later sources take precedence. The result is validated.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, envLookuper()); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process command line.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
