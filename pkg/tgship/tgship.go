package tgship

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bft-labs/tgship/internal/adapters/telegram"
	"github.com/bft-labs/tgship/internal/app"
	"github.com/bft-labs/tgship/internal/domain"
	"github.com/bft-labs/tgship/pkg/log"
)

// ShutdownTimeout is the maximum time Stop waits for the flush worker.
const ShutdownTimeout = 10 * time.Second

// Handler intercepts formatted log lines, batches them, and forwards them
// to a Telegram chat. It implements io.Writer, so it can be installed as an
// output of the standard library logger or any framework that writes lines:
//
//	log.SetOutput(io.MultiWriter(os.Stderr, handler))
//
// Use New() to create an instance, then Start() to launch the flush worker.
// Emit and Write never block on network I/O and never return remote errors;
// all diagnostics go through the configured logger.
type Handler struct {
	config    Config
	forwarder *app.Forwarder
	logger    log.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	wmu     sync.Mutex
	partial []byte
}

// New creates a Handler with the given configuration.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*Handler, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions(&http.Client{Timeout: cfg.HTTPTimeout})
	for _, opt := range opts {
		opt(&o)
	}

	client := telegram.NewClient(telegram.ClientConfig{
		Token:    cfg.Token,
		ChatID:   cfg.ChatID,
		ThreadID: cfg.ThreadID,
		Title:    cfg.Title,
		BaseURL:  o.baseURL,
	}, o.httpClient, o.logger)

	forwarder := app.NewForwarder(app.Config{
		IgnoreMatch:    cfg.IgnoreMatch,
		UpdateInterval: cfg.UpdateInterval,
		MinimumLines:   cfg.MinimumLines,
		PendingLogs:    cfg.PendingLogs,
	}, client, o.logger)

	return &Handler{
		config:    cfg,
		forwarder: forwarder,
		logger:    o.logger,
	}, nil
}

// Start launches the flush worker in the background and returns immediately.
// The provided context bounds the worker's lifetime.
func (h *Handler) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return domain.ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.done = make(chan struct{})
	h.running = true

	go func() {
		defer close(h.done)
		_ = h.forwarder.Run(runCtx)
	}()

	return nil
}

// Stop cancels the worker and waits for its final drain.
// Returns domain.ErrShutdownTimeout if the worker does not exit in time;
// an in-flight flush is abandoned in that case.
func (h *Handler) Stop() error {
	h.mu.Lock()
	if !h.running {
		h.mu.Unlock()
		return domain.ErrNotRunning
	}
	h.running = false
	cancel := h.cancel
	done := h.done
	h.mu.Unlock()

	cancel()

	select {
	case <-done:
		return nil
	case <-time.After(ShutdownTimeout):
		return domain.ErrShutdownTimeout
	}
}

// Emit buffers one formatted log line, without a trailing newline.
func (h *Handler) Emit(line string) {
	h.forwarder.Accept(line)
}

// Write implements io.Writer. Complete lines are forwarded; a trailing
// partial line is held until its newline arrives. Write always reports the
// full length as written.
func (h *Handler) Write(p []byte) (int, error) {
	h.wmu.Lock()
	defer h.wmu.Unlock()

	h.partial = append(h.partial, p...)
	for {
		i := bytes.IndexByte(h.partial, '\n')
		if i < 0 {
			return len(p), nil
		}
		line := strings.TrimRight(string(h.partial[:i]), "\r")
		h.partial = h.partial[i+1:]
		h.forwarder.Accept(line)
	}
}
