package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"leadconsole/internal/roster"
)

// PickerModal selects one value from a filterable list.
type PickerModal struct {
	list     list.Model
	onSelect func(value string) tea.Msg
}

type pickerItem struct {
	value string
	label string
}

func (p pickerItem) FilterValue() string { return p.label }
func (p pickerItem) Title() string       { return p.label }
func (p pickerItem) Description() string { return "" }

// Ensure PickerModal implements View.
var _ View = (*PickerModal)(nil)

// NewFilePickerModal lists the CSV files found in the import directory.
func NewFilePickerModal(dir string, names []string) *PickerModal {
	items := make([]list.Item, len(names))
	for i, n := range names {
		items[i] = pickerItem{value: n, label: n}
	}
	return newPickerModal("Arquivos CSV em "+dir, items, func(name string) tea.Msg {
		return FileSelectedMsg{Name: name}
	})
}

// NewSellerPickerModal lists every user as "Name (email)", preselecting
// the current seller.
func NewSellerPickerModal(users []roster.User, currentID string) *PickerModal {
	items := make([]list.Item, len(users))
	selected := 0
	for i, u := range users {
		items[i] = pickerItem{value: u.ID, label: sellerLabel(u)}
		if u.ID == currentID {
			selected = i
		}
	}
	m := newPickerModal("Selecione um vendedor", items, func(id string) tea.Msg {
		return SellerSelectedMsg{ID: id}
	})
	m.list.Select(selected)
	return m
}

func newPickerModal(title string, items []list.Item, onSelect func(string) tea.Msg) *PickerModal {
	l := list.New(items, NewCompactListDelegate(), 50, 12)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &PickerModal{list: l, onSelect: onSelect}
}

// Init implements View.
func (m *PickerModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *PickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if sel, ok := m.list.SelectedItem().(pickerItem); ok {
				return m, func() tea.Msg { return m.onSelect(sel.value) }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *PickerModal) View() string {
	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = Styles.Title.Render(m.list.Title) + "\n\n" + Styles.Empty.Render("Nenhum item encontrado")
	}
	return Styles.BoxCompact.Render(body + "\n" + Styles.Hint.Render("Enter: selecionar  /: filtrar  Esc: cancelar"))
}

func sellerLabel(u roster.User) string {
	return u.Name + " (" + u.Email + ")"
}
