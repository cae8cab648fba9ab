package room

import "github.com/4xmen/hamgap/internal/models"

// ConnState describes the server connection as shown in the status bar.
type ConnState string

const (
	ConnConnecting   ConnState = "connecting"
	ConnOnline       ConnState = "connected"
	ConnReconnecting ConnState = "reconnecting"
	ConnClosed       ConnState = "disconnected"
)

// Event is one input to the room state machine. Events come from the
// server connection and from the user interface; both funnel through
// Room.HandleEvent.
type Event interface {
	event()
}

// MessageReceived carries one chat message delivered by the server.
type MessageReceived struct {
	Message models.Message
}

// RosterSnapshot is the authoritative list of currently connected
// users. Known users missing from the list have gone offline.
type RosterSnapshot struct {
	Names []string
}

// PresenceChanged flips the status of a single user.
type PresenceChanged struct {
	UserID string
	Status models.Status
}

// DraftChanged mirrors the compose box contents into the room state.
type DraftChanged struct {
	Text string
}

// SubmitDraft asks the room to send the current draft.
type SubmitDraft struct{}

// SearchChanged updates the member list filter.
type SearchChanged struct {
	Query string
}

// ToggleEmojiPicker opens or closes the emoji picker.
type ToggleEmojiPicker struct{}

// EmojiPicked appends one emoji to the draft and closes the picker.
type EmojiPicked struct {
	Emoji string
}

// ConnStateChanged reports a transport state transition.
type ConnStateChanged struct {
	State ConnState
}

func (MessageReceived) event()   {}
func (RosterSnapshot) event()    {}
func (PresenceChanged) event()   {}
func (DraftChanged) event()      {}
func (SubmitDraft) event()       {}
func (SearchChanged) event()     {}
func (ToggleEmojiPicker) event() {}
func (EmojiPicked) event()       {}
func (ConnStateChanged) event()  {}
