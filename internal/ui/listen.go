package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/4xmen/hamgap/internal/room"
)

// serverEvent wraps one transport event for the Bubble Tea loop.
type serverEvent struct {
	ev room.Event
}

// eventsClosed reports that the transport shut down for good.
type eventsClosed struct{}

// listenEvents waits for the next transport event. Re-issue it after
// every serverEvent to keep the stream flowing.
func listenEvents(events <-chan room.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosed{}
		}
		return serverEvent{ev: ev}
	}
}
