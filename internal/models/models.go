package models

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Status      Status `json:"status"` // online, offline
}

func (u User) Online() bool {
	return u.Status == StatusOnline
}

type Message struct {
	From   string    `json:"from"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"` // zero when the sender did not include a timestamp
	Mine   bool      `json:"mine"`
}

type MessageKind string

const (
	KindText  MessageKind = "text"
	KindMedia MessageKind = "media"
)

var mediaSuffixes = []string{".gif", ".png", ".jpg", ".jpeg", ".webp"}

// Kind reports how the message body should be rendered. Bodies that end
// in an image extension are treated as media links.
func (m Message) Kind() MessageKind {
	body := strings.ToLower(m.Body)
	for _, suffix := range mediaSuffixes {
		if strings.HasSuffix(body, suffix) {
			return KindMedia
		}
	}
	return KindText
}

const avatarBaseURL = "https://avatars.dicebear.com/api/adventurer-neutral/"

// AvatarURL derives the generated avatar image for a user identifier.
// The same identifier always yields the same URL.
func AvatarURL(id string) string {
	return avatarBaseURL + url.PathEscape(id) + ".svg"
}

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateUsername checks a username against the rules the backend
// enforces at registration time.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 32 {
		return fmt.Errorf("username must be between 3 and 32 characters")
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, and underscores")
	}
	return nil
}
