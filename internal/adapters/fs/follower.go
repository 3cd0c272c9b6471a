// Package fs provides filesystem-backed line sources.
package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/tgship/pkg/log"
)

// Follower tails a log file and emits complete lines as they are appended.
// Rotation is handled by reopening when the path is recreated; truncation
// rewinds to the start of the file. The file may not exist yet when Run is
// called; the follower waits for it to appear.
type Follower struct {
	path      string
	fromStart bool
	logger    log.Logger
}

// NewFollower creates a follower for the given path. When fromStart is
// false, only lines appended after Run starts are emitted.
func NewFollower(path string, fromStart bool, logger log.Logger) *Follower {
	return &Follower{
		path:      filepath.Clean(path),
		fromStart: fromStart,
		logger:    logger,
	}
}

// Run implements ports.LineSource. It blocks until ctx is canceled.
func (f *Follower) Run(ctx context.Context, emit func(line string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: events for create/rename of the file itself are
	// only delivered on its parent.
	dir := filepath.Dir(f.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	file, reader, err := f.open(f.fromStart)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	defer func() {
		if file != nil {
			file.Close()
		}
	}()

	var partial strings.Builder
	for {
		if file != nil {
			if err := readAvailable(reader, &partial, emit); err != nil {
				return err
			}
			f.rewindIfTruncated(file, reader, &partial)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			switch {
			case event.Op&fsnotify.Create != 0:
				// Rotated or newly created: read the fresh file from the top.
				if file != nil {
					file.Close()
				}
				file, reader, err = f.open(true)
				if err != nil {
					f.logger.Warn("reopen after rotation failed", log.Err(err))
					file = nil
				}
				partial.Reset()

			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				if file != nil {
					file.Close()
					file = nil
				}

			case event.Op&fsnotify.Write != 0:
				if file == nil {
					file, reader, err = f.open(true)
					if err != nil {
						file = nil
					}
				}
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.logger.Warn("watch error", log.Err(werr))
		}
	}
}

func (f *Follower) open(fromStart bool) (*os.File, *bufio.Reader, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, nil, err
	}
	if !fromStart {
		if _, err := file.Seek(0, io.SeekEnd); err != nil {
			file.Close()
			return nil, nil, err
		}
	}
	return file, bufio.NewReader(file), nil
}

// rewindIfTruncated detects in-place truncation (size shrank below the read
// offset) and restarts from the top of the file.
func (f *Follower) rewindIfTruncated(file *os.File, reader *bufio.Reader, partial *strings.Builder) {
	info, err := os.Stat(f.path)
	if err != nil {
		return
	}
	offset, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return
	}
	if info.Size() >= offset {
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return
	}
	reader.Reset(file)
	partial.Reset()
}

// readAvailable consumes everything currently readable, emitting complete
// lines and carrying a trailing partial line over to the next round.
func readAvailable(reader *bufio.Reader, partial *strings.Builder, emit func(string)) error {
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if strings.HasSuffix(line, "\n") {
				full := partial.String() + strings.TrimRight(line, "\r\n")
				partial.Reset()
				emit(full)
			} else {
				partial.WriteString(line)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
