package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleTOML = `
token = "123:abc"
chat_id = -100123
thread_id = 7
title = "myapp"
ignore_match = ["DEBUG", "heartbeat"]
update_interval = "10s"
minimum_lines = 3
pending_logs = 50000
http_timeout = "30s"
follow = "/var/log/app.log"
from_start = true
`

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfigFile(t, sampleTOML)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	if fc.Token != "123:abc" || fc.ChatID != -100123 || fc.ThreadID != 7 {
		t.Fatalf("routing fields: %+v", fc)
	}
	if len(fc.IgnoreMatch) != 2 || fc.IgnoreMatch[0] != "DEBUG" {
		t.Fatalf("ignore_match = %v", fc.IgnoreMatch)
	}
	if fc.FromStart == nil || !*fc.FromStart {
		t.Fatal("from_start not parsed")
	}
}

func TestApplyFileConfig(t *testing.T) {
	path := writeConfigFile(t, sampleTOML)
	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, nil); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}

	if cfg.UpdateInterval != 10*time.Second {
		t.Fatalf("update interval = %v", cfg.UpdateInterval)
	}
	if cfg.MinimumLines != 3 || cfg.PendingLogs != 50000 {
		t.Fatalf("batching fields: %+v", cfg)
	}
	if cfg.Title != "myapp" || cfg.Follow != "/var/log/app.log" || !cfg.FromStart {
		t.Fatalf("misc fields: %+v", cfg)
	}
}

func TestApplyFileConfigRespectsFlags(t *testing.T) {
	path := writeConfigFile(t, sampleTOML)
	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Title = "from-flag"
	changed := map[string]bool{"title": true}
	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}

	if cfg.Title != "from-flag" {
		t.Fatalf("title = %q, flag value must win over file", cfg.Title)
	}
	if cfg.ChatID != -100123 {
		t.Fatal("unflagged fields must still come from the file")
	}
}

func TestApplyFileConfigBadDuration(t *testing.T) {
	fc := FileConfig{UpdateInterval: "not-a-duration"}
	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, nil); err == nil {
		t.Fatal("expected an error for a malformed duration")
	}
}
