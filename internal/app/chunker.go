package app

import "strings"

// maxMessageChars is the per-message cap on log content. The endpoint's true
// limit is 4096 characters; the headroom absorbs the title line and the
// code-block wrapper added at the transport edge.
const maxMessageChars = 4050

// cutChunk returns the prefix of s to carve for one flush: at most limit
// bytes, cut back to just after the last newline so no line is split. The
// bounded prefix is used whole when it contains no newline.
func cutChunk(s string, limit int) string {
	if len(s) > limit {
		s = s[:limit]
	}
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[:i+1]
	}
	return s
}

// splitMessage splits text that overflowed the message cap. head is at most
// limit bytes, ending just after the last newline in the bounded prefix, or
// hard-cut at limit when there is none. tail is the remainder.
func splitMessage(s string, limit int) (head, tail string) {
	cut := limit
	if i := strings.LastIndexByte(s[:limit], '\n'); i >= 0 {
		cut = i + 1
	}
	return s[:cut], s[cut:]
}
