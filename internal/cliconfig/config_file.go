package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to keep the TOML
// friendly.
type FileConfig struct {
	Token          string   `toml:"token"`
	ChatID         int64    `toml:"chat_id"`
	ThreadID       int64    `toml:"thread_id"`
	Title          string   `toml:"title"`
	IgnoreMatch    []string `toml:"ignore_match"`
	UpdateInterval string   `toml:"update_interval"`
	MinimumLines   int      `toml:"minimum_lines"`
	PendingLogs    int      `toml:"pending_logs"`
	HTTPTimeout    string   `toml:"http_timeout"`
	Follow         string   `toml:"follow"`
	FromStart      *bool    `toml:"from_start"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.tgship/config.toml if the user home directory
// is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".tgship", "config.toml")
	}
	return ""
}

// FileExists reports whether the given path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("token", fc.Token, &cfg.Token)
	s.setInt64("chat-id", fc.ChatID, &cfg.ChatID)
	s.setInt64("thread-id", fc.ThreadID, &cfg.ThreadID)
	s.setString("title", fc.Title, &cfg.Title)
	s.setStrings("ignore", fc.IgnoreMatch, &cfg.IgnoreMatch)
	s.setInt("minimum-lines", fc.MinimumLines, &cfg.MinimumLines)
	s.setInt("pending-logs", fc.PendingLogs, &cfg.PendingLogs)
	s.setString("follow", fc.Follow, &cfg.Follow)
	s.setBool("from-start", fc.FromStart, &cfg.FromStart)

	if err := s.setDurationString("update-interval", fc.UpdateInterval, &cfg.UpdateInterval); err != nil {
		return err
	}
	if err := s.setDurationString("http-timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	return nil
}
