package tgship

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/tgship/internal/domain"
)

func TestConfigSetDefaults(t *testing.T) {
	cfg := Config{Token: "123:abc", ChatID: 1}
	cfg.SetDefaults()

	if cfg.Title != "tgship" {
		t.Fatalf("title = %q", cfg.Title)
	}
	if cfg.UpdateInterval != 5*time.Second {
		t.Fatalf("update interval = %v", cfg.UpdateInterval)
	}
	if cfg.MinimumLines != 1 || cfg.PendingLogs != 200000 {
		t.Fatalf("batching defaults: %+v", cfg)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("http timeout = %v", cfg.HTTPTimeout)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing token", func(c *Config) { c.Token = "" }, true},
		{"missing chat id", func(c *Config) { c.ChatID = 0 }, true},
		{"negative thread id", func(c *Config) { c.ThreadID = -5 }, true},
		{"pending logs below one chunk", func(c *Config) { c.PendingLogs = 4000 }, true},
		{"negative interval", func(c *Config) { c.UpdateInterval = -time.Second }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Token = "123:abc"
			cfg.ChatID = -100123
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr != (err != nil) {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("error %v does not match ErrInvalidConfig", err)
			}
		})
	}
}
