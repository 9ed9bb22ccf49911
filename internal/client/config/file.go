package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/usersconsole/internal/flagx"
	"github.com/dmitrijs2005/usersconsole/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO decoded from a config file. Pointer fields stay nil
// when the key is absent, so only keys present in the file override Config.
type FileConfig struct {
	APIBaseURL           *string         `json:"api_base_url" yaml:"api_base_url"`
	APIKey               *string         `json:"api_key" yaml:"api_key"`
	RequestTimeout       *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	PageSize             *int            `json:"page_size" yaml:"page_size"`
	StorageDriver        *string         `json:"storage_driver" yaml:"storage_driver"`
	StorageDSN           *string         `json:"storage_dsn" yaml:"storage_dsn"`
	RedisAddr            *string         `json:"redis_addr" yaml:"redis_addr"`
	RedisDB              *int            `json:"redis_db" yaml:"redis_db"`
	StoragePassphrase    *string         `json:"storage_passphrase" yaml:"storage_passphrase"`
	LogLevel             *string         `json:"log_level" yaml:"log_level"`
	LogFormat            *string         `json:"log_format" yaml:"log_format"`
	StrictProfile        *bool           `json:"strict_profile" yaml:"strict_profile"`
	RefetchAfterMutation *bool           `json:"refetch_after_mutation" yaml:"refetch_after_mutation"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setIf(&cfg.APIBaseURL, fc.APIBaseURL)
	setIf(&cfg.APIKey, fc.APIKey)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	setIf(&cfg.PageSize, fc.PageSize)
	setIf(&cfg.StorageDriver, fc.StorageDriver)
	setIf(&cfg.StorageDSN, fc.StorageDSN)
	setIf(&cfg.RedisAddr, fc.RedisAddr)
	setIf(&cfg.RedisDB, fc.RedisDB)
	setIf(&cfg.StoragePassphrase, fc.StoragePassphrase)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.LogFormat, fc.LogFormat)
	setIf(&cfg.StrictProfile, fc.StrictProfile)
	setIf(&cfg.RefetchAfterMutation, fc.RefetchAfterMutation)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
