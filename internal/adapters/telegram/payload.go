package telegram

import "encoding/json"

// textPayload is the JSON body for sendMessage and editMessageText.
// A fresh value is built per call; nothing is shared or mutated between
// requests.
type textPayload struct {
	ChatID                int64  `json:"chat_id"`
	MessageThreadID       int64  `json:"message_thread_id,omitempty"`
	MessageID             int64  `json:"message_id,omitempty"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// newTextPayload builds the payload for one text call, wrapping the body in
// a fixed-width code block with the configured title as its first line.
func (c *Client) newTextPayload(body string) textPayload {
	return textPayload{
		ChatID:                c.config.ChatID,
		MessageThreadID:       c.config.ThreadID,
		Text:                  renderCodeBlock(c.config.Title, body),
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
	}
}

func renderCodeBlock(title, body string) string {
	return "```" + title + "\n" + body + "```"
}

// apiResponse is the Bot API envelope common to every method.
type apiResponse struct {
	OK          bool                `json:"ok"`
	Result      json.RawMessage     `json:"result"`
	ErrorCode   int                 `json:"error_code"`
	Description string              `json:"description"`
	Parameters  *responseParameters `json:"parameters,omitempty"`
}

type responseParameters struct {
	RetryAfter int `json:"retry_after"`
}
