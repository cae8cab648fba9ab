// Package room holds the client-side state of a chat room: the message
// history, the presence table and the compose state. The room is a
// plain state machine; it talks to no sockets and draws nothing.
// Everything that happens, from a server frame to a keystroke, is
// applied through HandleEvent, and the returned Effect tells the caller
// what to do next.
package room

import (
	"strings"

	"github.com/4xmen/hamgap/internal/models"
)

// Emojis is the fixed picker catalog.
var Emojis = []string{
	"😀", "😁", "😂", "🤣", "😃", "😄", "😅", "😆",
	"😉", "😊", "😋", "😎", "😍", "😘", "🥰", "😗",
}

// Effect tells the caller what to do after an event was applied.
type Effect struct {
	// Rerender reports that visible state changed.
	Rerender bool
	// ScrollToBottom hints that the message view should follow the
	// newest message.
	ScrollToBottom bool
	// Send, when non-empty, is a chat message body to transmit to the
	// server.
	Send string
	// SyncDraft reports that the room changed the draft text itself
	// and the compose box should be refreshed from Draft.
	SyncDraft bool
}

// Room is the state of one chat room as seen by the local user. It is
// not safe for concurrent use; apply all events from a single
// goroutine.
type Room struct {
	self   string
	log    *Log
	roster *Roster

	draft     string
	search    string
	emojiOpen bool
	conn      ConnState
}

// New creates a room for the given local username.
func New(self string) *Room {
	return &Room{
		self:   self,
		log:    NewLog(),
		roster: NewRoster(),
		conn:   ConnConnecting,
	}
}

func (r *Room) Self() string { return r.self }

// HandleEvent applies one event and reports what the caller should do
// next. This is the single entry point for all room mutations.
func (r *Room) HandleEvent(ev Event) Effect {
	switch ev := ev.(type) {
	case MessageReceived:
		return r.OnMessageReceived(ev.Message)
	case RosterSnapshot:
		return r.applyRoster(ev.Names)
	case PresenceChanged:
		return r.OnPresenceChanged(ev.UserID, ev.Status)
	case DraftChanged:
		r.draft = ev.Text
		return Effect{}
	case SubmitDraft:
		return r.submitDraft()
	case SearchChanged:
		r.search = ev.Query
		return Effect{Rerender: true}
	case ToggleEmojiPicker:
		r.emojiOpen = !r.emojiOpen
		return Effect{Rerender: true}
	case EmojiPicked:
		r.draft += ev.Emoji
		r.emojiOpen = false
		return Effect{Rerender: true, SyncDraft: true}
	case ConnStateChanged:
		r.conn = ev.State
		return Effect{Rerender: true}
	}
	return Effect{}
}

// OnMessageReceived appends a message to the history. Authorship is
// decided here: a message whose sender matches the local username is
// marked as the user's own.
func (r *Room) OnMessageReceived(msg models.Message) Effect {
	msg.Mine = msg.From == r.self
	r.log.Append(msg)
	return Effect{Rerender: true, ScrollToBottom: true}
}

// OnPresenceChanged flips the status of a known user. Unknown
// identifiers are ignored; going offline keeps the entry in the table.
func (r *Room) OnPresenceChanged(id string, status models.Status) Effect {
	if !r.roster.SetStatus(id, status) {
		return Effect{}
	}
	return Effect{Rerender: true}
}

// applyRoster reconciles the authoritative list of connected users.
// Listed users are upserted as online; known users missing from the
// list are marked offline but stay in the table.
func (r *Room) applyRoster(names []string) Effect {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		seen[name] = true
		r.roster.Upsert(name, name, models.StatusOnline)
	}
	for _, u := range r.roster.All() {
		if !seen[u.ID] {
			r.roster.SetStatus(u.ID, models.StatusOffline)
		}
	}
	return Effect{Rerender: true}
}

func (r *Room) submitDraft() Effect {
	body := strings.TrimSpace(r.draft)
	if body == "" {
		return Effect{}
	}
	r.draft = ""
	return Effect{Send: body, SyncDraft: true}
}

// GroupedUsers partitions the presence table into online and offline
// users, filtered by query, preserving first-seen order within each
// group.
func (r *Room) GroupedUsers(query string) (online, offline []models.User) {
	for _, u := range r.roster.Search(query) {
		if u.Online() {
			online = append(online, u)
		} else {
			offline = append(offline, u)
		}
	}
	return online, offline
}

// VisibleMessages returns the full history, oldest first.
func (r *Room) VisibleMessages() []models.Message {
	return r.log.All()
}

func (r *Room) Draft() string        { return r.draft }
func (r *Room) Query() string        { return r.search }
func (r *Room) EmojiOpen() bool      { return r.emojiOpen }
func (r *Room) ConnState() ConnState { return r.conn }

// Snapshot is an immutable view of the room for rendering.
type Snapshot struct {
	Self      string
	Messages  []models.Message
	Online    []models.User
	Offline   []models.User
	// Participants counts all online users, ignoring the search filter.
	Participants int
	Draft        string
	Query        string
	EmojiOpen    bool
	Conn         ConnState
}

// Snapshot captures the current state with the stored search filter
// applied to the member list.
func (r *Room) Snapshot() Snapshot {
	online, offline := r.GroupedUsers(r.search)
	return Snapshot{
		Self:         r.self,
		Messages:     r.VisibleMessages(),
		Online:       online,
		Offline:      offline,
		Participants: r.roster.OnlineCount(),
		Draft:        r.draft,
		Query:        r.search,
		EmojiOpen:    r.emojiOpen,
		Conn:         r.conn,
	}
}
