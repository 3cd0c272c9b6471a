package tgship_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/tgship/internal/domain"
	"github.com/bft-labs/tgship/pkg/tgship"
)

// botServer is a minimal Bot API stub recording every method call.
type botServer struct {
	mu    sync.Mutex
	calls []botCall
	srv   *httptest.Server
}

type botCall struct {
	method string
	body   map[string]interface{}
}

func newBotServer(t *testing.T) *botServer {
	t.Helper()
	b := &botServer{}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := path.Base(r.URL.Path)
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		b.calls = append(b.calls, botCall{method: method, body: body})
		b.mu.Unlock()

		switch method {
		case "getMe":
			fmt.Fprint(w, `{"ok":true,"result":{"username":"tgship_bot"}}`)
		case "sendMessage":
			fmt.Fprint(w, `{"ok":true,"result":{"message_id":5}}`)
		default:
			fmt.Fprint(w, `{"ok":true,"result":true}`)
		}
	}))
	t.Cleanup(b.srv.Close)
	return b
}

// lastEditText returns the text of the most recent editMessageText call.
func (b *botServer) lastEditText() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.calls) - 1; i >= 0; i-- {
		if b.calls[i].method == "editMessageText" {
			text, _ := b.calls[i].body["text"].(string)
			return text, true
		}
	}
	return "", false
}

func newTestHandler(t *testing.T, bot *botServer) *tgship.Handler {
	t.Helper()
	cfg := tgship.DefaultConfig()
	cfg.Token = "TOKEN"
	cfg.ChatID = -100123
	cfg.UpdateInterval = 10 * time.Millisecond

	h, err := tgship.New(cfg, tgship.WithBaseURL(bot.srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return h
}

func TestHandlerShipsWrittenLines(t *testing.T) {
	bot := newBotServer(t)
	h := newTestHandler(t, bot)

	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer h.Stop()

	// Partial writes must be reassembled into one line.
	io.WriteString(h, "hello ")
	io.WriteString(h, "world\n")

	deadline := time.After(5 * time.Second)
	for {
		if text, ok := bot.lastEditText(); ok {
			if text != "```tgship\nhello world\n```" {
				t.Fatalf("edited text = %q", text)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for the edit call")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestHandlerLifecycle(t *testing.T) {
	bot := newBotServer(t)
	h := newTestHandler(t, bot)

	if err := h.Stop(); !errors.Is(err, domain.ErrNotRunning) {
		t.Fatalf("Stop before Start = %v, want ErrNotRunning", err)
	}

	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := h.Start(context.Background()); !errors.Is(err, domain.ErrAlreadyRunning) {
		t.Fatalf("second Start = %v, want ErrAlreadyRunning", err)
	}

	if err := h.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := h.Stop(); !errors.Is(err, domain.ErrNotRunning) {
		t.Fatalf("second Stop = %v, want ErrNotRunning", err)
	}
}

func TestStopDrainsPendingContent(t *testing.T) {
	bot := newBotServer(t)

	cfg := tgship.DefaultConfig()
	cfg.Token = "TOKEN"
	cfg.ChatID = -100123
	// A large minimum keeps the gate shut so content is still pending at
	// shutdown.
	cfg.MinimumLines = 1000

	h, err := tgship.New(cfg, tgship.WithBaseURL(bot.srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	h.Emit("parting words")
	if err := h.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	text, ok := bot.lastEditText()
	if !ok {
		t.Fatal("pending content was not drained on Stop")
	}
	if text != "```tgship\nparting words\n```" {
		t.Fatalf("drained text = %q", text)
	}
}
