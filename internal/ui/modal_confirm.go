package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadconsole/internal/roster"
)

// ConfirmModal asks before a destructive action.
// Enter or y confirms; Esc or n cancels.
type ConfirmModal struct {
	Title       string
	Label       string
	Details     string
	OnConfirm   func() tea.Msg
	boxStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	detailStyle lipgloss.Style
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:       title,
		Label:       label,
		OnConfirm:   onConfirm,
		boxStyle:    Styles.BoxDanger,
		titleStyle:  Styles.TitleWarning,
		detailStyle: Styles.Details,
	}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewRemoveUserConfirmModal confirms removing u from the roster.
func NewRemoveUserConfirmModal(u roster.User) *ConfirmModal {
	return NewConfirmModal(
		"Remover usuário?",
		sellerLabel(u),
		func() tea.Msg { return RemoveUserMsg{ID: u.ID} },
	).WithDetails("O usuário deixará de aparecer na distribuição de leads")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + m.detailStyle.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirmar  Esc: cancelar")
	return m.boxStyle.Render(content)
}
