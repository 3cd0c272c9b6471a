// Package tgship forwards application logs to a Telegram chat.
//
// A Handler accumulates formatted log lines, batches them under a
// time/line-count gate, and incrementally edits a single chat message so the
// destination is not spammed with one message per line. Oversized backlogs
// are shipped as a document instead of text, and flood-control responses
// from the Bot API automatically delay the next update.
//
// Example usage:
//
//	cfg := tgship.DefaultConfig()
//	cfg.Token = os.Getenv("BOT_TOKEN")
//	cfg.ChatID = -1001234567890
//
//	handler, err := tgship.New(cfg, tgship.WithLogger(log.NewZerologAdapter()))
//	if err != nil {
//	    panic(err)
//	}
//	if err := handler.Start(context.Background()); err != nil {
//	    panic(err)
//	}
//	defer handler.Stop()
//
//	stdlog.SetOutput(io.MultiWriter(os.Stderr, handler))
package tgship
