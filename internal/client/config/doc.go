// Package config loads runtime configuration for the user console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml/.yml are decoded as YAML, everything else as JSON.
//  3. Environment variables prefixed with USERSCONSOLE_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the remote API
//	-k string   API key sent as x-api-key
//	-p int      directory page size
//	-s string   session storage driver (sqlite, redis, memory)
//	-d string   session storage DSN (sqlite file path)
//	-l string   log level
//
// # File schema
//
// Durations accept strings like "10s" or integer nanoseconds:
//
//	api_base_url: https://reqres.in/api
//	api_key: reqres-free-v1
//	request_timeout: 10s
//	page_size: 10
//	storage_driver: sqlite
//	storage_dsn: session.db
//	strict_profile: false
//	refetch_after_mutation: false
package config
