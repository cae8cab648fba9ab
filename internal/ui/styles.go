package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/4xmen/hamgap/internal/room"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	meStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8")).Bold(true)
	otherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#45f")).Bold(true)
	timeStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	unreadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	sidebarStyle       = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).PaddingRight(1)
	onlineHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	offlineHeaderStyle = lipgloss.NewStyle().Bold(true).Faint(true)
	offlineNameStyle   = lipgloss.NewStyle().Faint(true)
	onlineDotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offlineDotStyle    = lipgloss.NewStyle().Faint(true)
	headerMetaStyle    = lipgloss.NewStyle().Faint(true)
	emojiSelectedStyle = lipgloss.NewStyle().Reverse(true)

	connOnlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	connWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	connDownStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func connStyle(state room.ConnState) lipgloss.Style {
	switch state {
	case room.ConnOnline:
		return connOnlineStyle
	case room.ConnConnecting, room.ConnReconnecting:
		return connWarnStyle
	default:
		return connDownStyle
	}
}
