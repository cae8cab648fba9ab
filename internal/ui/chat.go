package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/4xmen/hamgap/internal/room"
	"github.com/4xmen/hamgap/internal/ws"
)

const (
	sidebarWidth  = 24
	composeHeight = 3
)

// ChatModel is the main chat screen: member sidebar, message history,
// compose box and emoji picker.
type ChatModel struct {
	room   *room.Room
	client *ws.Client
	log    zerolog.Logger

	viewport viewport.Model
	compose  textarea.Model
	search   textinput.Model

	searchFocused bool
	emojiIndex    int
	unread        int

	width  int
	height int
	ready  bool
}

func NewChat(username string, client *ws.Client, log zerolog.Logger) ChatModel {
	compose := textarea.New()
	compose.Placeholder = __("Type a message...")
	compose.Prompt = "┃ "
	compose.CharLimit = 280
	compose.SetHeight(composeHeight)
	compose.ShowLineNumbers = false
	compose.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	compose.FocusedStyle.CursorLine = lipgloss.NewStyle()
	compose.Focus()

	search := textinput.New()
	search.Placeholder = __("Search users...")
	search.CharLimit = 32
	search.Prompt = "/ "

	return ChatModel{
		room:    room.New(username),
		client:  client,
		log:     log,
		compose: compose,
		search:  search,
	}
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, listenEvents(m.client.Events()))
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case eventsClosed:
		return m, tea.Quit

	case serverEvent:
		eff := m.room.HandleEvent(msg.ev)
		if pc, ok := msg.ev.(room.PresenceChanged); ok && !eff.Rerender {
			m.log.Debug().Str("user", pc.UserID).Msg("dropped presence change for unknown user")
		}
		cmd := m.applyEffect(eff)
		return m, tea.Batch(cmd, listenEvents(m.client.Events()))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (cursor blinks and the like) goes to the widgets.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	cmds = append(cmds, cmd)
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m ChatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.toggleFocus()
		return m, nil

	case "ctrl+e":
		m.room.HandleEvent(room.ToggleEmojiPicker{})
		m.emojiIndex = 0
		m.layout()
		return m, nil

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		if m.viewport.AtBottom() {
			m.unread = 0
		}
		return m, cmd
	}

	if m.room.EmojiOpen() {
		return m.handleEmojiKey(msg)
	}

	if m.searchFocused {
		if msg.String() == "esc" {
			m.toggleFocus()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.room.HandleEvent(room.SearchChanged{Query: m.search.Value()})
		return m, cmd
	}

	if msg.String() == "enter" {
		m.room.HandleEvent(room.DraftChanged{Text: m.compose.Value()})
		eff := m.room.HandleEvent(room.SubmitDraft{})
		return m, m.applyEffect(eff)
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	m.room.HandleEvent(room.DraftChanged{Text: m.compose.Value()})
	return m, cmd
}

func (m ChatModel) handleEmojiKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.room.HandleEvent(room.ToggleEmojiPicker{})
		m.layout()
		return m, nil
	case "left":
		if m.emojiIndex > 0 {
			m.emojiIndex--
		}
	case "right":
		if m.emojiIndex < len(room.Emojis)-1 {
			m.emojiIndex++
		}
	case "up":
		if m.emojiIndex >= emojiCols {
			m.emojiIndex -= emojiCols
		}
	case "down":
		if m.emojiIndex+emojiCols < len(room.Emojis) {
			m.emojiIndex += emojiCols
		}
	case "enter":
		eff := m.room.HandleEvent(room.EmojiPicked{Emoji: room.Emojis[m.emojiIndex]})
		cmd := m.applyEffect(eff)
		m.layout()
		return m, cmd
	}
	return m, nil
}

func (m *ChatModel) toggleFocus() {
	if m.searchFocused {
		m.searchFocused = false
		m.search.Blur()
		m.compose.Focus()
	} else {
		m.searchFocused = true
		m.compose.Blur()
		m.search.Focus()
	}
}

// applyEffect carries a room effect out: syncing the compose box,
// transmitting a message, scrolling or re-rendering.
func (m *ChatModel) applyEffect(eff room.Effect) tea.Cmd {
	var cmds []tea.Cmd

	if eff.SyncDraft {
		m.compose.SetValue(m.room.Draft())
		m.compose.CursorEnd()
	}

	if eff.Send != "" {
		if err := m.client.Send(eff.Send); err != nil {
			m.log.Error().Err(err).Msg("failed to send message")
		}
	}

	if eff.ScrollToBottom {
		if m.viewport.AtBottom() {
			m.refresh(true)
		} else {
			m.refresh(false)
			// Own echoes are not news even while scrolled away.
			if msgs := m.room.VisibleMessages(); len(msgs) > 0 && !msgs[len(msgs)-1].Mine {
				m.unread++
				cmds = append(cmds, ringBell)
			}
		}
	} else if eff.Rerender {
		m.refresh(false)
	}

	return tea.Batch(cmds...)
}

// ringBell nudges the terminal when a message arrives off-screen.
func ringBell() tea.Msg {
	fmt.Print("\a")
	return nil
}

func (m *ChatModel) setSize(width, height int) {
	m.width, m.height = width, height
	m.layout()
	m.refresh(m.viewport.AtBottom())
}

func (m *ChatModel) layout() {
	mainWidth := m.width - sidebarWidth - 3
	if mainWidth < 20 {
		mainWidth = 20
	}

	bodyHeight := m.height - composeHeight - 2
	if m.room.EmojiOpen() {
		pickerRows := (len(room.Emojis) + emojiCols - 1) / emojiCols
		bodyHeight -= pickerRows + 1
	}
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(mainWidth, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = mainWidth
		m.viewport.Height = bodyHeight
	}
	m.compose.SetWidth(mainWidth)
	m.search.Width = sidebarWidth - 6
	m.refresh(m.viewport.AtBottom())
}

// refresh rebuilds the message pane from the room state.
func (m *ChatModel) refresh(goBottom bool) {
	if !m.ready {
		return
	}
	snap := m.room.Snapshot()
	m.viewport.SetContent(renderMessages(snap.Messages, m.viewport.Width))
	if goBottom {
		m.viewport.GotoBottom()
		m.unread = 0
	}
}

func (m ChatModel) View() string {
	if !m.ready {
		return __("connecting") + "..."
	}

	snap := m.room.Snapshot()

	header := m.renderHeader(snap)

	var side strings.Builder
	side.WriteString(m.search.View())
	side.WriteString("\n\n")
	side.WriteString(renderUserList(snap, sidebarWidth-2))
	sidebar := sidebarStyle.Width(sidebarWidth).Height(m.viewport.Height).Render(side.String())

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", m.viewport.View())

	bottom := m.compose.View()
	if snap.EmojiOpen {
		bottom = renderEmojiPicker(m.emojiIndex) + "\n" + bottom
	}

	return strings.Join([]string{header, body, bottom, m.renderStatus()}, "\n")
}

func (m ChatModel) renderHeader(snap room.Snapshot) string {
	title := titleStyle.Render("💬 " + __("Chat Room"))
	conn := connStyle(snap.Conn).Render(__(string(snap.Conn)))
	count := headerMetaStyle.Render(fmt.Sprintf("%d %s", snap.Participants, __("participants")))
	return title + "  " + conn + "  " + count
}

func (m ChatModel) renderStatus() string {
	help := helpStyle.Render(__("enter to send, tab to switch focus, ctrl+e for emoji, ctrl+c to quit"))
	if m.unread > 0 {
		badge := unreadStyle.Render(fmt.Sprintf("↓ %d %s", m.unread, __("new messages")))
		return badge + "  " + help
	}
	return help
}
