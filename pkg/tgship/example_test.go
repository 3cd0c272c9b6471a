package tgship_test

import (
	"context"
	"io"
	stdlog "log"
	"os"

	"github.com/bft-labs/tgship/pkg/log"
	"github.com/bft-labs/tgship/pkg/tgship"
)

// ExampleNew shows how to mirror the standard library logger into a
// Telegram chat.
func ExampleNew() {
	cfg := tgship.DefaultConfig()
	cfg.Token = os.Getenv("BOT_TOKEN")
	cfg.ChatID = -1001234567890
	cfg.IgnoreMatch = []string{"DEBUG"}

	handler, err := tgship.New(cfg, tgship.WithLogger(log.NewZerologAdapter()))
	if err != nil {
		stdlog.Fatal(err)
	}
	if err := handler.Start(context.Background()); err != nil {
		stdlog.Fatal(err)
	}
	defer handler.Stop()

	stdlog.SetOutput(io.MultiWriter(os.Stderr, handler))
	stdlog.Println("service started")
}
