package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/4xmen/hamgap/internal/models"
	"github.com/4xmen/hamgap/internal/room"
)

const emojiCols = 4

// formatClock renders a message timestamp for display. Messages
// without a server timestamp read as "Just now".
func formatClock(ts time.Time) string {
	if ts.IsZero() {
		return __("Just now")
	}
	return ts.Local().Format("15:04")
}

// wrapText greedily wraps s at the given display width, keeping
// explicit line breaks. Words longer than the limit stay on their own
// line.
func wrapText(s string, limit int) []string {
	if limit < 1 {
		limit = 1
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(line)+1+lipgloss.Width(word) <= limit {
				line += " " + word
			} else {
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func truncate(s string, limit int) string {
	if limit < 2 || lipgloss.Width(s) <= limit {
		return s
	}
	var b strings.Builder
	width := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if width+rw > limit-1 {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + "…"
}

// renderMessage lays one message out as a block of lines. Messages
// written by the local user hug the right edge.
func renderMessage(msg models.Message, width int) string {
	limit := width * 2 / 3
	if limit < 16 {
		limit = width
	}
	if limit < 1 {
		limit = 1
	}

	body := msg.Body
	if msg.Kind() == models.KindMedia {
		body = "🖼 " + msg.Body + " (" + __("media attachment") + ")"
	}

	nameStyle := otherStyle
	if msg.Mine {
		nameStyle = meStyle
	}

	lines := []string{nameStyle.Render(msg.From) + " " + timeStyle.Render(formatClock(msg.SentAt))}
	lines = append(lines, wrapText(body, limit)...)
	block := strings.Join(lines, "\n")

	if msg.Mine {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
	}
	return block
}

func renderMessages(msgs []models.Message, width int) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, renderMessage(m, width))
	}
	return strings.Join(parts, "\n\n")
}

// renderUserList draws the online and offline groups of the sidebar.
func renderUserList(snap room.Snapshot, width int) string {
	var b strings.Builder

	b.WriteString(onlineHeaderStyle.Render(fmt.Sprintf("%s (%d)", __("online"), len(snap.Online))))
	for _, u := range snap.Online {
		b.WriteString("\n" + onlineDotStyle.Render("●") + " " + truncate(u.DisplayName, width-2))
	}

	if len(snap.Offline) > 0 {
		b.WriteString("\n\n")
		b.WriteString(offlineHeaderStyle.Render(fmt.Sprintf("%s (%d)", __("offline"), len(snap.Offline))))
		for _, u := range snap.Offline {
			b.WriteString("\n" + offlineDotStyle.Render("○") + " " + offlineNameStyle.Render(truncate(u.DisplayName, width-2)))
		}
	}

	return b.String()
}

func renderEmojiPicker(selected int) string {
	var rows []string
	var row strings.Builder
	for i, e := range room.Emojis {
		cell := " " + e + " "
		if i == selected {
			cell = emojiSelectedStyle.Render(cell)
		}
		row.WriteString(cell)
		if (i+1)%emojiCols == 0 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}
