package ports

import "context"

// BotClient is the four-operation contract against the remote chat endpoint.
// Implementations handle payload construction, HTTP communication, and
// response decoding; failures surface as *domain.APIError where the endpoint
// returned a structured error.
type BotClient interface {
	// VerifyIdentity checks the configured credential and returns the bot
	// username on success.
	VerifyIdentity(ctx context.Context) (string, error)

	// SendText posts a new message and returns its identifier.
	SendText(ctx context.Context, text string) (int64, error)

	// EditText replaces the text of an existing message in place.
	EditText(ctx context.Context, messageID int64, text string) error

	// SendFile uploads the given content as a document attachment.
	SendFile(ctx context.Context, contents string) error
}
