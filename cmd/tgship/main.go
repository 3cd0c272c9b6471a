package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	fsAdapter "github.com/bft-labs/tgship/internal/adapters/fs"
	"github.com/bft-labs/tgship/internal/cliconfig"
	"github.com/bft-labs/tgship/internal/ports"
	"github.com/bft-labs/tgship/pkg/log"
	"github.com/bft-labs/tgship/pkg/tgship"
)

const helpDescription = `
Ship application logs to a Telegram chat.

Lines are batched and delivered by incrementally editing a single chat
message, so the destination is not flooded with one message per line.
Oversized backlogs are uploaded as a document, and Telegram flood-control
responses automatically delay the next update.

Reads stdin by default; use --follow to tail a growing log file instead.
Configure via ~/.tgship/config.toml, TGSHIP_* environment variables, or
flags (flags win, then env, then file).
`

var exampleUsage = strings.TrimSpace(`
  app 2>&1 | tgship --token <bot-token> --chat-id -1001234567890
  tgship --follow /var/log/app.log --ignore DEBUG --update-interval 10s
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewZerologAdapter()

	root := &cobra.Command{
		Use:     "tgship",
		Short:   "Ship application logs to a Telegram chat",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config file first (default ~/.tgship/config.toml), then env,
			// then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logStartup(logger, cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, logger)
		},
		SilenceUsage: true,
	}

	flags := root.Flags()
	flags.StringVar(&cfgPath, "config", "", "path to TOML config file")
	flags.StringVar(&cfg.Token, "token", cfg.Token, "bot token")
	flags.Int64Var(&cfg.ChatID, "chat-id", cfg.ChatID, "destination chat id")
	flags.Int64Var(&cfg.ThreadID, "thread-id", cfg.ThreadID, "forum topic id (0 = standard chat)")
	flags.StringVar(&cfg.Title, "title", cfg.Title, "title rendered as the first line of every message")
	flags.StringSliceVar(&cfg.IgnoreMatch, "ignore", cfg.IgnoreMatch, "drop lines containing this substring (repeatable)")
	flags.DurationVar(&cfg.UpdateInterval, "update-interval", cfg.UpdateInterval, "minimum time between updates")
	flags.IntVar(&cfg.MinimumLines, "minimum-lines", cfg.MinimumLines, "minimum buffered lines per update")
	flags.IntVar(&cfg.PendingLogs, "pending-logs", cfg.PendingLogs, "buffered characters before switching to file upload")
	flags.DurationVar(&cfg.HTTPTimeout, "http-timeout", cfg.HTTPTimeout, "per-request HTTP timeout")
	flags.StringVar(&cfg.Follow, "follow", cfg.Follow, "tail this log file instead of reading stdin")
	flags.BoolVar(&cfg.FromStart, "from-start", cfg.FromStart, "with --follow, read the file from the beginning")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logStartup reports the effective configuration with the token masked.
func logStartup(logger *log.ZerologAdapter, cfg cliconfig.Config) {
	if cfg.Token != "" {
		cfg.Token = "*****"
	}
	zl := logger.Logger()
	zl.Info().Interface("config", cfg).Msg("configuration")
}

func run(ctx context.Context, cfg cliconfig.Config, logger *log.ZerologAdapter) error {
	handler, err := tgship.New(tgship.Config{
		Token:          cfg.Token,
		ChatID:         cfg.ChatID,
		ThreadID:       cfg.ThreadID,
		Title:          cfg.Title,
		IgnoreMatch:    cfg.IgnoreMatch,
		UpdateInterval: cfg.UpdateInterval,
		MinimumLines:   cfg.MinimumLines,
		PendingLogs:    cfg.PendingLogs,
		HTTPTimeout:    cfg.HTTPTimeout,
	}, tgship.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := handler.Start(ctx); err != nil {
		return err
	}
	defer handler.Stop()

	var source ports.LineSource
	if cfg.Follow != "" {
		source = fsAdapter.NewFollower(cfg.Follow, cfg.FromStart, logger)
	} else {
		source = stdinSource{}
	}

	if err := source.Run(ctx, handler.Emit); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// stdinSource reads lines from standard input until EOF.
type stdinSource struct{}

func (stdinSource) Run(ctx context.Context, emit func(line string)) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		emit(scanner.Text())
	}
	return scanner.Err()
}
