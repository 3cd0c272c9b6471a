package domain

// Message tracks the live chat message being built incrementally.
// ID is zero until the first successful send; Committed holds the text
// already confirmed displayed remotely, so subsequent chunks edit in
// place instead of spamming new messages.
type Message struct {
	ID        int64
	Committed string
}

// Active reports whether a remote message exists to append to.
func (m *Message) Active() bool {
	return m.ID != 0
}

// Reset clears the identifier and committed text, forcing the next
// flush to start a fresh message.
func (m *Message) Reset() {
	m.ID = 0
	m.Committed = ""
}
