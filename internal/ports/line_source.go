package ports

import "context"

// LineSource produces log lines one at a time, without trailing newlines.
// Run blocks until the context is canceled or the source is exhausted,
// invoking emit for every complete line.
type LineSource interface {
	Run(ctx context.Context, emit func(line string)) error
}
