package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bft-labs/tgship/internal/domain"
	"github.com/bft-labs/tgship/internal/ports"
	"github.com/bft-labs/tgship/pkg/log"
)

// initialText seeds the first message of a session so the endpoint assigns
// an identifier before any log content is committed to it.
const initialText = "Initializing log forwarder"

// drainTimeout bounds the final flush attempted after Run's context is
// canceled.
const drainTimeout = 5 * time.Second

// Config contains the batching parameters for the forwarder.
type Config struct {
	// IgnoreMatch lists substrings that cause a line to be dropped.
	IgnoreMatch []string

	// UpdateInterval is the minimum time between two flushes.
	UpdateInterval time.Duration

	// MinimumLines is the minimum buffered line count to permit a flush.
	MinimumLines int

	// PendingLogs is the buffered character count above which content is
	// dumped as a file instead of text.
	PendingLogs int
}

// Forwarder batches accepted log lines and ships them to the chat endpoint.
//
// Accept runs on the producer's goroutine and never blocks on network I/O;
// it hands flush work to the single worker driven by Run, which serializes
// all remote mutation. The remote session state (msg) is therefore touched
// only by the worker.
type Forwarder struct {
	config Config
	client ports.BotClient
	logger log.Logger
	now    func() time.Time

	mu        sync.Mutex
	pending   []byte
	lines     int
	lastFlush time.Time
	floor     time.Duration
	flushCh   chan struct{}

	msg domain.Message
}

// NewForwarder creates a forwarder with the given batching configuration.
func NewForwarder(config Config, client ports.BotClient, logger log.Logger) *Forwarder {
	return &Forwarder{
		config:  config,
		client:  client,
		logger:  logger,
		now:     time.Now,
		flushCh: make(chan struct{}, 1),
	}
}

// Accept buffers one formatted log line and schedules a flush when the gate
// passes. Lines containing a configured ignore substring are dropped without
// buffering or counting. Accept never blocks and never surfaces an error to
// the log producer.
func (f *Forwarder) Accept(line string) {
	for _, match := range f.config.IgnoreMatch {
		if match != "" && strings.Contains(line, match) {
			return
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = append(f.pending, line...)
	f.pending = append(f.pending, '\n')
	f.lines++

	// The gate: enough time elapsed (respecting any flood-control floor)
	// and enough new lines buffered.
	wait := f.config.UpdateInterval
	if f.floor > wait {
		wait = f.floor
	}
	if f.now().Sub(f.lastFlush) < wait || f.lines < f.config.MinimumLines {
		return
	}

	f.lines = 0
	f.lastFlush = f.now()
	f.floor = 0

	select {
	case f.flushCh <- struct{}{}:
	default:
		// A flush is already queued; it will pick up this content.
	}
}

// Run consumes scheduled flushes until ctx is canceled. On cancellation it
// drains whatever is still buffered within a short grace period before
// returning.
func (f *Forwarder) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			grace, cancel := context.WithTimeout(context.Background(), drainTimeout)
			f.Drain(grace)
			cancel()
			return ctx.Err()
		case <-f.flushCh:
			f.flush(ctx)
		}
	}
}

// Drain flushes repeatedly until the buffer is empty or ctx expires.
func (f *Forwarder) Drain(ctx context.Context) {
	for f.HasPending() {
		if ctx.Err() != nil {
			return
		}
		f.flush(ctx)
	}
}

// HasPending reports whether unsent content is buffered.
func (f *Forwarder) HasPending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending) > 0
}

// flush carves one bounded chunk off the pending buffer and routes it to the
// file path or the incremental text path. Exactly the carved bytes are
// removed from the buffer.
func (f *Forwarder) flush(ctx context.Context) {
	f.mu.Lock()
	if len(f.pending) == 0 {
		f.mu.Unlock()
		return
	}

	if len(f.pending) > f.config.PendingLogs {
		span := cutChunk(string(f.pending), len(f.pending))
		f.pending = f.pending[len(span):]
		f.mu.Unlock()

		f.msg.Reset()
		f.logger.Info("too much output for text messages, sending logs as a file",
			log.Int("bytes", len(span)))
		if err := f.client.SendFile(ctx, span); err != nil {
			f.handleError(err)
		}
		return
	}

	chunk := cutChunk(string(f.pending), maxMessageChars)
	f.pending = f.pending[len(chunk):]
	f.mu.Unlock()

	if !f.msg.Active() {
		f.bootstrap(ctx)
	}

	candidate := f.msg.Committed + chunk
	if len(candidate) > maxMessageChars {
		head, tail := splitMessage(candidate, maxMessageChars)
		if head != f.msg.Committed {
			if err := f.client.EditText(ctx, f.msg.ID, head); err != nil {
				f.handleError(err)
			}
		}
		id, err := f.client.SendText(ctx, tail)
		if err != nil {
			f.handleError(err)
			// Keep the remainder as committed text; the next flush starts a
			// fresh message and re-sends it as part of the candidate.
			f.msg = domain.Message{Committed: tail}
			return
		}
		f.msg = domain.Message{ID: id, Committed: tail}
		return
	}

	if err := f.client.EditText(ctx, f.msg.ID, candidate); err != nil {
		f.handleError(err)
	}
	f.msg.Committed = candidate
}

// bootstrap verifies the credential and sends the initializing placeholder
// to obtain a message identifier. An invalid token is a configuration error:
// it is logged locally and the forwarder stays inert for sends.
func (f *Forwarder) bootstrap(ctx context.Context) {
	if _, err := f.client.VerifyIdentity(ctx); err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Unauthorized() {
			f.logger.Error("invalid bot token provided")
		} else {
			f.logger.Error("bot identity check failed", log.Err(err))
		}
	}
	id, err := f.client.SendText(ctx, initialText)
	if err != nil {
		f.handleError(err)
		return
	}
	f.msg.ID = id
}

// handleError interprets a remote-call failure at the flush boundary.
// Nothing propagates to the log producer.
func (f *Forwarder) handleError(err error) {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		f.logger.Error("log update failed", log.Err(err))
		return
	}
	if apiErr.RateLimited() {
		f.mu.Lock()
		f.floor = time.Duration(apiErr.RetryAfter) * time.Second
		f.mu.Unlock()
		f.logger.Warn("flood control engaged, delaying next update",
			log.Int("retry_after_seconds", apiErr.RetryAfter))
		return
	}
	if apiErr.Unauthorized() {
		// Already reported at bootstrap.
		return
	}
	f.logger.Error("log update rejected",
		log.Int("code", apiErr.Code),
		log.String("description", apiErr.Description))
}
