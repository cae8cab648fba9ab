package room

import (
	"testing"

	"github.com/4xmen/hamgap/internal/models"
)

func TestLogAppendKeepsOrder(t *testing.T) {
	log := NewLog()

	bodies := []string{"first", "second", "third"}
	for _, body := range bodies {
		log.Append(models.Message{From: "alice", Body: body})
	}

	all := log.All()
	if len(all) != len(bodies) {
		t.Fatalf("Len = %d, want %d", len(all), len(bodies))
	}
	for i, body := range bodies {
		if all[i].Body != body {
			t.Fatalf("All()[%d].Body = %q, want %q", i, all[i].Body, body)
		}
	}
}

func TestLogAllReturnsCopy(t *testing.T) {
	log := NewLog()
	log.Append(models.Message{From: "alice", Body: "original"})

	first := log.All()
	first[0].Body = "mutated"

	if got := log.All()[0].Body; got != "original" {
		t.Fatalf("log was mutated through All(): Body = %q", got)
	}
}

func TestLogEmpty(t *testing.T) {
	log := NewLog()
	if log.Len() != 0 {
		t.Fatalf("Len = %d, want 0", log.Len())
	}
	if len(log.All()) != 0 {
		t.Fatalf("All() = %d entries, want 0", len(log.All()))
	}
}
