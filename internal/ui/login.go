package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/4xmen/hamgap/internal/models"
	"github.com/4xmen/hamgap/internal/ws"
)

// LoginModel asks for a username before joining the room.
type LoginModel struct {
	input  textinput.Model
	errMsg string

	ctx    context.Context
	client *ws.Client
	log    zerolog.Logger

	width  int
	height int
}

func NewLogin(ctx context.Context, client *ws.Client, log zerolog.Logger) LoginModel {
	input := textinput.New()
	input.Placeholder = __("Pick a username")
	input.CharLimit = 32
	input.Width = 32
	input.Focus()

	return LoginModel{
		input:  input,
		ctx:    ctx,
		client: client,
		log:    log,
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			username := strings.TrimSpace(m.input.Value())
			if err := models.ValidateUsername(username); err != nil {
				m.errMsg = __(err.Error())
				return m, nil
			}
			return m.join(username)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m LoginModel) join(username string) (tea.Model, tea.Cmd) {
	m.log.Info().Str("username", username).Msg("joining room")
	m.client.Start(m.ctx, username)

	chat := NewChat(username, m.client, m.log)
	if m.width > 0 {
		chat.setSize(m.width, m.height)
	}
	return chat, chat.Init()
}

func (m LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("💬 " + __("Chat Room")))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(__("Press Enter to join")))
	return b.String()
}
