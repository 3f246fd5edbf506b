package schema

import (
	// Packages
	types "github.com/rxwp5657/ia-agent-demo/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Session is a sequence of messages exchanged with an LLM. Sessions are held
// in memory for the lifetime of a conversation and are never persisted.
type Session []*Message

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append adds a message to the session
func (s *Session) Append(message Message) {
	*s = append(*s, &message)
}

// Truncate discards messages beyond the first n, rolling the conversation
// back to an earlier point
func (s *Session) Truncate(n int) {
	if n >= 0 && n < len(*s) {
		*s = (*s)[:n]
	}
}

// Last returns the most recent message in the session, or nil when empty
func (s Session) Last() *Message {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Session) String() string {
	return types.Stringify(s)
}
