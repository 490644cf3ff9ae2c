package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// textCapturer is implemented by views that can hold a focused text input.
// While CapturingText is true, keys (space included) go to the view and
// bypass the leader keybinds.
type textCapturer interface {
	CapturingText() bool
}

func capturingText(v View) bool {
	tc, ok := v.(textCapturer)
	return ok && tc.CapturingText()
}
