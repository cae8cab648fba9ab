package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/4xmen/hamgap/internal/models"
	"github.com/4xmen/hamgap/internal/ui"
	"github.com/4xmen/hamgap/internal/ws"
	"github.com/4xmen/hamgap/pkg/config"
	"github.com/4xmen/hamgap/pkg/i18n"
)

func main() {
	cfg := config.Load()

	if len(os.Args) > 1 {
		if err := runCommand(cfg, os.Args[1:]); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	if err := runClient(cfg); err != nil {
		log.Fatalf("Failed to start client: %v", err)
	}
}

func runCommand(cfg *config.Config, args []string) error {
	command := args[0]

	switch command {
	case "check":
		return runCheck(cfg, os.Stdout, args[1:])
	case "-h", "--help", "help":
		printUsage(os.Stdout)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(out *os.File) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  hamgap           Start the chat client")
	fmt.Fprintln(out, "  hamgap check     Probe the configured chat server")
	fmt.Fprintln(out, "  hamgap check --json")
}

// newLogger builds the file logger. The UI owns the terminal, so
// without a configured log file everything is discarded.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}

func runClient(cfg *config.Config) error {
	i18n.SetLocale(cfg.Locale)

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client := ws.New(ws.Config{
		URL:               cfg.ServerURL,
		DialTimeout:       cfg.DialTimeout,
		ReconnectMaxDelay: cfg.ReconnectMaxDelay,
	}, logger)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A preset username skips the login screen.
	var model tea.Model
	if username := strings.TrimSpace(cfg.Username); username != "" {
		if err := models.ValidateUsername(username); err != nil {
			return fmt.Errorf("invalid configured username: %w", err)
		}
		client.Start(ctx, username)
		model = ui.NewChat(username, client, logger)
	} else {
		model = ui.NewLogin(ctx, client, logger)
	}

	logger.Info().Str("server", cfg.ServerURL).Msg("starting client")
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run ui: %w", err)
	}
	return nil
}
