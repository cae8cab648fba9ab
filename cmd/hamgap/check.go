package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/4xmen/hamgap/internal/models"
	"github.com/4xmen/hamgap/internal/room"
	"github.com/4xmen/hamgap/internal/ws"
	"github.com/4xmen/hamgap/pkg/config"
)

const checkTimeout = 15 * time.Second

type checkUser struct {
	Name   string
	Avatar string
}

type checkReport struct {
	GeneratedAt  time.Time
	ServerURL    string
	ConnectTime  time.Duration
	RosterTime   time.Duration
	Participants int
	Users        []checkUser
	Reachable    bool
	RosterReady  bool
	Warning      string
}

type checkOptions struct {
	JSON bool
}

func parseCheckArgs(args []string) (checkOptions, error) {
	opts := checkOptions{}
	for _, arg := range args {
		switch arg {
		case "--json", "-j":
			opts.JSON = true
		default:
			return opts, fmt.Errorf("unknown check flag: %s", arg)
		}
	}
	return opts, nil
}

func runCheck(cfg *config.Config, out io.Writer, args []string) error {
	opts, err := parseCheckArgs(args)
	if err != nil {
		return err
	}

	report := collectCheck(cfg)
	if opts.JSON {
		if err := printCheckJSON(out, report); err != nil {
			return err
		}
	} else {
		printCheck(out, report)
	}

	if !report.RosterReady {
		return fmt.Errorf("check failed: %s", report.Warning)
	}
	return nil
}

// collectCheck joins the room under a throwaway name and measures how
// long the server takes to accept the connection and announce the
// member list. The probe itself is left out of the reported users.
func collectCheck(cfg *config.Config) checkReport {
	report := checkReport{
		GeneratedAt: time.Now(),
		ServerURL:   cfg.ServerURL,
	}

	client := ws.New(ws.Config{
		URL:         cfg.ServerURL,
		DialTimeout: cfg.DialTimeout,
	}, zerolog.Nop())
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	probe := "probe_" + uuid.NewString()[:8]
	start := time.Now()
	client.Start(ctx, probe)

	for {
		select {
		case ev, ok := <-client.Events():
			if !ok {
				if report.Warning == "" {
					report.Warning = "connection closed before the member list arrived"
				}
				return report
			}
			switch ev := ev.(type) {
			case room.ConnStateChanged:
				if ev.State == room.ConnOnline && !report.Reachable {
					report.Reachable = true
					report.ConnectTime = time.Since(start)
				}
			case room.RosterSnapshot:
				report.RosterReady = true
				report.RosterTime = time.Since(start)
				report.Participants = len(ev.Names)
				for _, name := range ev.Names {
					if name == probe {
						continue
					}
					report.Users = append(report.Users, checkUser{
						Name:   name,
						Avatar: models.AvatarURL(name),
					})
				}
				return report
			}
		case <-ctx.Done():
			report.Warning = fmt.Sprintf("server did not answer within %s", checkTimeout)
			return report
		}
	}
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%d ms", d.Milliseconds())
}

func printCheck(out io.Writer, report checkReport) {
	fmt.Fprintln(out, "Hamgap Check")
	fmt.Fprintf(out, "Generated at: %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "Server      : %s\n", report.ServerURL)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Probe")
	if report.Reachable {
		fmt.Fprintf(out, "  Connect      : %s\n", formatDuration(report.ConnectTime))
	} else {
		fmt.Fprintln(out, "  Connect      : n/a")
	}
	if report.RosterReady {
		fmt.Fprintf(out, "  Roster       : %s\n", formatDuration(report.RosterTime))
		fmt.Fprintf(out, "  Participants : %d\n", report.Participants)
	} else {
		fmt.Fprintln(out, "  Roster       : n/a")
	}

	if len(report.Users) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Users")
		for _, u := range report.Users {
			fmt.Fprintf(out, "  %-20s %s\n", u.Name, u.Avatar)
		}
	}

	if report.Warning != "" {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Warning: %s\n", report.Warning)
	}
}

func printCheckJSON(out io.Writer, report checkReport) error {
	users := make([]map[string]any, 0, len(report.Users))
	for _, u := range report.Users {
		users = append(users, map[string]any{
			"name":   u.Name,
			"avatar": u.Avatar,
		})
	}

	payload := map[string]any{
		"generated_at": report.GeneratedAt.Format(time.RFC3339),
		"server_url":   report.ServerURL,
		"reachable":    report.Reachable,
		"probe": map[string]any{
			"connect_ms":   report.ConnectTime.Milliseconds(),
			"roster_ms":    report.RosterTime.Milliseconds(),
			"roster_ready": report.RosterReady,
			"participants": report.Participants,
		},
		"users":   users,
		"warning": report.Warning,
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
