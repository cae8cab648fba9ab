package room

import "github.com/4xmen/hamgap/internal/models"

// Log is the append-only message history of a room. Messages keep the
// order they arrived in; nothing is dropped or reordered.
type Log struct {
	messages []models.Message
}

func NewLog() *Log {
	return &Log{}
}

// Append adds a message to the end of the history.
func (l *Log) Append(msg models.Message) {
	l.messages = append(l.messages, msg)
}

func (l *Log) Len() int {
	return len(l.messages)
}

// All returns a copy of the history, oldest first. Mutating the
// returned slice does not affect the log.
func (l *Log) All() []models.Message {
	out := make([]models.Message, len(l.messages))
	copy(out, l.messages)
	return out
}
