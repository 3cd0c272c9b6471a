// Package telegram implements ports.BotClient against the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/bft-labs/tgship/internal/domain"
	"github.com/bft-labs/tgship/internal/ports"
	"github.com/bft-labs/tgship/pkg/log"
)

// DefaultBaseURL is the production Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

const documentName = "tgship.log"

const fileCaption = "Too many logs for text messages! This file contains the logs."

// ClientConfig carries the fixed routing parameters for one destination.
type ClientConfig struct {
	Token    string
	ChatID   int64
	ThreadID int64
	Title    string
	BaseURL  string
}

// Client talks to the Bot API over an injected HTTP client.
// It is safe for use by a single flush worker; the underlying *http.Client
// pools connections across calls.
type Client struct {
	http   ports.HTTPClient
	logger log.Logger
	config ClientConfig
}

// NewClient creates a Bot API client for one destination chat.
func NewClient(config ClientConfig, httpClient ports.HTTPClient, logger log.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	return &Client{
		http:   httpClient,
		logger: logger,
		config: config,
	}
}

// VerifyIdentity calls getMe and returns the bot username.
func (c *Client) VerifyIdentity(ctx context.Context) (string, error) {
	result, err := c.post(ctx, "getMe", struct{}{})
	if err != nil {
		return "", err
	}
	var me struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(result, &me); err != nil {
		return "", fmt.Errorf("decode getMe result: %w", err)
	}
	return me.Username, nil
}

// SendText posts a new message and returns its identifier.
func (c *Client) SendText(ctx context.Context, text string) (int64, error) {
	result, err := c.post(ctx, "sendMessage", c.newTextPayload(text))
	if err != nil {
		return 0, err
	}
	var sent struct {
		MessageID int64 `json:"message_id"`
	}
	if err := json.Unmarshal(result, &sent); err != nil {
		return 0, fmt.Errorf("decode sendMessage result: %w", err)
	}
	return sent.MessageID, nil
}

// EditText replaces the text of an existing message.
func (c *Client) EditText(ctx context.Context, messageID int64, text string) error {
	payload := c.newTextPayload(text)
	payload.MessageID = messageID
	_, err := c.post(ctx, "editMessageText", payload)
	return err
}

// SendFile uploads the given content as a document attachment. The document
// payload carries no disable_web_page_preview field; it does not apply to
// uploads.
func (c *Client) SendFile(ctx context.Context, contents string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := [][2]string{
		{"chat_id", strconv.FormatInt(c.config.ChatID, 10)},
		{"caption", fileCaption},
	}
	if c.config.ThreadID > 0 {
		fields = append(fields, [2]string{"message_thread_id", strconv.FormatInt(c.config.ThreadID, 10)})
	}
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("write %s field: %w", f[0], err)
		}
	}

	part, err := writer.CreateFormFile("document", documentName)
	if err != nil {
		return fmt.Errorf("create document field: %w", err)
	}
	if _, err := part.Write([]byte(contents)); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendDocument"), &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if _, err := decodeResponse("sendDocument", resp.Body); err != nil {
		return err
	}
	return nil
}

// post sends one Bot API method call with a JSON payload and decodes the
// envelope. Every text-mode remote mutation funnels through here.
func (c *Client) post(ctx context.Context, method string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send %s request: %w", method, err)
	}
	defer resp.Body.Close()

	return decodeResponse(method, resp.Body)
}

func (c *Client) methodURL(method string) string {
	return c.config.BaseURL + "/bot" + c.config.Token + "/" + method
}

// decodeResponse parses the API envelope, converting a non-ok response into
// a *domain.APIError carrying any flood-control parameters.
func decodeResponse(method string, r io.Reader) (json.RawMessage, error) {
	var env apiResponse
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if !env.OK {
		apiErr := &domain.APIError{
			Code:        env.ErrorCode,
			Description: env.Description,
		}
		if env.Parameters != nil {
			apiErr.RetryAfter = env.Parameters.RetryAfter
		}
		return nil, apiErr
	}
	return env.Result, nil
}
