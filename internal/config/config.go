package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	BaseURL             string
	AuthParam           string
	StatePath           string
	PageSize            int
	AutocompleteDelay   time.Duration
	RequestTimeout      time.Duration
	NotificationTimeout time.Duration
}

const (
	defaultBaseURL             = "https://edu.std-900.ist.mospolytech.ru/exam-2024-1/api"
	defaultAuthParam           = "api_key"
	defaultStatePath           = "shopfront.db"
	defaultPageSize            = 8
	defaultAutocompleteDelay   = 200 * time.Millisecond
	defaultRequestTimeout      = 10 * time.Second
	defaultNotificationTimeout = 5 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		BaseURL:             getString(lookup, "STORE_API_BASE_URL", defaultBaseURL),
		AuthParam:           getString(lookup, "STORE_API_AUTH_PARAM", defaultAuthParam),
		StatePath:           getString(lookup, "STATE_PATH", defaultStatePath),
		PageSize:            getInt(lookup, "PAGE_SIZE", defaultPageSize),
		AutocompleteDelay:   getDuration(lookup, "AUTOCOMPLETE_DELAY", defaultAutocompleteDelay),
		RequestTimeout:      getDuration(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout),
		NotificationTimeout: getDuration(lookup, "NOTIFICATION_TIMEOUT", defaultNotificationTimeout),
	}

	fs := flag.NewFlagSet("shopfront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		delayStr   = cfg.AutocompleteDelay.String()
		timeoutStr = cfg.RequestTimeout.String()
	)

	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Store API base URL")
	fs.StringVar(&cfg.AuthParam, "auth-param", cfg.AuthParam, "Name of the credential query parameter")
	fs.StringVar(&cfg.StatePath, "state", cfg.StatePath, "Path to the local state database")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Catalog page size")
	fs.StringVar(&delayStr, "autocomplete-delay", delayStr, "Debounce window before autocomplete fires")
	fs.StringVar(&timeoutStr, "timeout", timeoutStr, "HTTP request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.AutocompleteDelay, err = time.ParseDuration(delayStr); err != nil {
		return nil, fmt.Errorf("invalid autocomplete delay: %w", err)
	}

	if cfg.RequestTimeout, err = time.ParseDuration(timeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}

	if cfg.AutocompleteDelay <= 0 {
		cfg.AutocompleteDelay = defaultAutocompleteDelay
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.NotificationTimeout <= 0 {
		cfg.NotificationTimeout = defaultNotificationTimeout
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("store API base URL must be provided")
	}

	if cfg.AuthParam == "" {
		cfg.AuthParam = defaultAuthParam
	}

	if cfg.StatePath == "" {
		cfg.StatePath = defaultStatePath
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
