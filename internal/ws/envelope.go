package ws

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/4xmen/hamgap/internal/models"
	"github.com/4xmen/hamgap/internal/room"
)

// The server speaks JSON text frames with a camelCase envelope. A
// "users" frame carries the full roster in DataArray; a "message"
// frame nests the chat payload as a JSON string in Data; "register" is
// sent by the client right after connecting, with the username in
// Data. Outgoing chat messages put the plain body in Data and the
// server wraps them into payloads when echoing.
const (
	TypeUsers    = "users"
	TypeRegister = "register"
	TypeMessage  = "message"
)

type Envelope struct {
	Type      string   `json:"messageType"`
	DataArray []string `json:"dataArray,omitempty"`
	Data      string   `json:"data,omitempty"`
}

type chatPayload struct {
	From      string `json:"from"`
	Body      string `json:"message"`
	Timestamp *int64 `json:"timestamp,omitempty"` // epoch milliseconds
}

// EncodeRegister builds the registration frame.
func EncodeRegister(username string) ([]byte, error) {
	return json.Marshal(Envelope{Type: TypeRegister, Data: username})
}

// EncodeChat builds an outgoing chat message frame.
func EncodeChat(body string) ([]byte, error) {
	return json.Marshal(Envelope{Type: TypeMessage, Data: body})
}

// DecodeEvent maps one server frame onto a room event. Frames of a
// type the client does not understand yield (nil, nil) and should be
// skipped.
func DecodeEvent(raw []byte) (room.Event, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}

	switch env.Type {
	case TypeUsers:
		return room.RosterSnapshot{Names: env.DataArray}, nil
	case TypeMessage:
		var payload chatPayload
		if err := json.Unmarshal([]byte(env.Data), &payload); err != nil {
			return nil, fmt.Errorf("failed to decode message payload: %w", err)
		}
		msg := models.Message{From: payload.From, Body: payload.Body}
		if payload.Timestamp != nil {
			msg.SentAt = time.UnixMilli(*payload.Timestamp)
		}
		return room.MessageReceived{Message: msg}, nil
	default:
		return nil, nil
	}
}
