package config

import (
	"fmt"

	"github.com/getsentry/sentry-go"
)

// NewSentry initialises error reporting. It is a no-op without SENTRY_DSN.
func NewSentry(cfg *Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		TracesSampleRate: 1.0,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}
