package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/tgship/internal/cliconfig"
	"github.com/bft-labs/tgship/pkg/log"
)

func TestLogStartupMasksToken(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewZerologAdapterWithLogger(zerolog.New(&buf))

	cfg := cliconfig.DefaultConfig()
	cfg.Token = "123:secret"
	cfg.ChatID = -100123
	logStartup(logger, cfg)

	out := buf.String()
	if out == "" {
		t.Fatal("no startup log emitted")
	}
	if strings.Contains(out, "123:secret") {
		t.Fatalf("token leaked into startup log: %s", out)
	}
	if !strings.Contains(out, "*****") {
		t.Fatalf("masked token missing from startup log: %s", out)
	}
	if !strings.Contains(out, "-100123") {
		t.Fatalf("chat id missing from startup log: %s", out)
	}
}

func TestLogStartupEmptyTokenStaysEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewZerologAdapterWithLogger(zerolog.New(&buf))

	logStartup(logger, cliconfig.DefaultConfig())

	if strings.Contains(buf.String(), "*****") {
		t.Fatal("empty token must not be rendered as masked")
	}
}
