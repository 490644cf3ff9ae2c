package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal shown above the current screen.
type Overlay struct {
	View View
}

// OverlayStack manages open modals; the topmost receives input first.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens v on top of the stack.
func (s *OverlayStack) Push(v View) {
	s.Stack = append(s.Stack, Overlay{View: v})
}

// Pop closes the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Clear closes every overlay.
func (s *OverlayStack) Clear() {
	s.Stack = nil
}

// UpdateTop passes msg to the top overlay and stores the resulting View.
// The caller runs the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
