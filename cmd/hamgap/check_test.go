package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/4xmen/hamgap/internal/ws"
	"github.com/4xmen/hamgap/pkg/config"
)

func TestParseCheckArgs(t *testing.T) {
	opts, err := parseCheckArgs([]string{"--json"})
	if err != nil {
		t.Fatalf("parseCheckArgs returned error: %v", err)
	}
	if !opts.JSON {
		t.Fatalf("parseCheckArgs JSON = false, want true")
	}

	if _, err := parseCheckArgs([]string{"--bad"}); err == nil {
		t.Fatalf("parseCheckArgs expected error for unknown flag")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{input: 0, want: "0 ms"},
		{input: 1500 * time.Millisecond, want: "1500 ms"},
		{input: 2 * time.Second, want: "2000 ms"},
	}

	for _, tt := range tests {
		got := formatDuration(tt.input)
		if got != tt.want {
			t.Fatalf("formatDuration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

var checkUpgrader = websocket.Upgrader{}

// newCheckServer answers a probe the way the chat server would: it
// waits for the register frame and replies with the member list.
func newCheckServer(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := checkUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var env ws.Envelope
		if err := json.Unmarshal(data, &env); err != nil || env.Type != ws.TypeRegister {
			t.Errorf("first frame = %s, want register", data)
			return
		}

		users, _ := json.Marshal(ws.Envelope{
			Type:      ws.TypeUsers,
			DataArray: []string{env.Data, "alice"},
		})
		if err := conn.WriteMessage(websocket.TextMessage, users); err != nil {
			return
		}

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestCollectCheckProbesServer(t *testing.T) {
	cfg := &config.Config{
		ServerURL:   newCheckServer(t),
		DialTimeout: time.Second,
	}

	report := collectCheck(cfg)

	if !report.Reachable {
		t.Fatalf("report not reachable: %+v", report)
	}
	if !report.RosterReady {
		t.Fatalf("report roster not ready: %+v", report)
	}
	if report.Participants != 2 {
		t.Fatalf("participants = %d, want 2", report.Participants)
	}
	if len(report.Users) != 1 || report.Users[0].Name != "alice" {
		t.Fatalf("users = %+v, want just alice", report.Users)
	}
	if !strings.Contains(report.Users[0].Avatar, "avatars.dicebear.com") {
		t.Fatalf("avatar url = %q", report.Users[0].Avatar)
	}
	if report.Warning != "" {
		t.Fatalf("unexpected warning: %q", report.Warning)
	}
}

func TestRunCheckPrintsReport(t *testing.T) {
	cfg := &config.Config{
		ServerURL:   newCheckServer(t),
		DialTimeout: time.Second,
	}

	var out bytes.Buffer
	if err := runCheck(cfg, &out, nil); err != nil {
		t.Fatalf("runCheck returned error: %v", err)
	}

	for _, want := range []string{"Hamgap Check", "Participants : 2", "alice"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPrintCheckJSON(t *testing.T) {
	report := checkReport{
		GeneratedAt: time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC),
		ServerURL:   "ws://127.0.0.1:8080",
		ConnectTime: 12 * time.Millisecond,
		RosterTime:  30 * time.Millisecond,
		Reachable:   true,
		RosterReady: true,
		Users:       []checkUser{{Name: "alice", Avatar: "https://avatars.dicebear.com/api/adventurer-neutral/alice.svg"}},
	}

	var out bytes.Buffer
	if err := printCheckJSON(&out, report); err != nil {
		t.Fatalf("printCheckJSON returned error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if payload["server_url"] != "ws://127.0.0.1:8080" {
		t.Fatalf("unexpected server_url: %#v", payload["server_url"])
	}
	if payload["reachable"] != true {
		t.Fatalf("unexpected reachable: %#v", payload["reachable"])
	}
}
