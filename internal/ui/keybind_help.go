package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help box shown after SPC,
// listing the keys that may follow the current sequence in mode.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := strings.Join(keyHandler.Buffer, " ")
	if prefix == "" {
		prefix = keyHandler.LeaderSeq
	}
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}
