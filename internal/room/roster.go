package room

import (
	"strings"

	"github.com/4xmen/hamgap/internal/models"
)

// Roster is the presence table of a room. Users keep the position they
// were first seen at; going offline never removes an entry.
type Roster struct {
	order []string
	users map[string]models.User
}

func NewRoster() *Roster {
	return &Roster{users: make(map[string]models.User)}
}

// Upsert adds a user or updates an existing one in place.
func (r *Roster) Upsert(id, displayName string, status models.Status) {
	if u, ok := r.users[id]; ok {
		u.DisplayName = displayName
		u.Status = status
		r.users[id] = u
		return
	}
	r.order = append(r.order, id)
	r.users[id] = models.User{ID: id, DisplayName: displayName, Status: status}
}

// SetStatus flips the status of a known user and reports whether the
// user existed. Unknown identifiers are ignored.
func (r *Roster) SetStatus(id string, status models.Status) bool {
	u, ok := r.users[id]
	if !ok {
		return false
	}
	u.Status = status
	r.users[id] = u
	return true
}

func (r *Roster) Get(id string) (models.User, bool) {
	u, ok := r.users[id]
	return u, ok
}

func (r *Roster) Len() int {
	return len(r.order)
}

// OnlineCount reports how many users are currently online.
func (r *Roster) OnlineCount() int {
	n := 0
	for _, u := range r.users {
		if u.Online() {
			n++
		}
	}
	return n
}

// All returns every user in first-seen order.
func (r *Roster) All() []models.User {
	out := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out
}

// Search returns the users whose display name contains the query,
// case-insensitively, in first-seen order. An empty query matches
// everyone.
func (r *Roster) Search(query string) []models.User {
	query = strings.ToLower(query)
	out := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.users[id]
		if strings.Contains(strings.ToLower(u.DisplayName), query) {
			out = append(out, u)
		}
	}
	return out
}
