// Package tgship forwards application logs to a Telegram chat.
//
// This package re-exports the pkg/tgship API for the shorter import path.
//
// Example usage:
//
//	cfg := tgship.DefaultConfig()
//	cfg.Token = os.Getenv("BOT_TOKEN")
//	cfg.ChatID = -1001234567890
//
//	handler, err := tgship.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := handler.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	defer handler.Stop()
package tgship

import (
	api "github.com/bft-labs/tgship/pkg/tgship"
)

// Config holds the configuration for a Handler.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = api.Config

// Handler batches log lines and forwards them to a Telegram chat.
// It implements io.Writer.
type Handler = api.Handler

// Option configures optional behavior of a Handler.
type Option = api.Option

// New creates a Handler with the given configuration.
func New(cfg Config, opts ...Option) (*Handler, error) {
	return api.New(cfg, opts...)
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set Token and ChatID before calling New.
func DefaultConfig() Config {
	return api.DefaultConfig()
}

// WithHTTPClient sets a custom HTTP client for API communication.
func WithHTTPClient(client api.HTTPClient) Option {
	return api.WithHTTPClient(client)
}

// WithLogger sets the logger for local diagnostics.
func WithLogger(logger api.Logger) Option {
	return api.WithLogger(logger)
}
