// Package ui renders the chat client as a terminal program. It is a
// thin shell around internal/room: key presses and server events are
// translated into room events, the returned effects drive the
// viewport, and every frame is drawn from a room snapshot.
package ui

import "github.com/4xmen/hamgap/pkg/i18n"

func __(message string) string {
	return i18n.Translate(message)
}
