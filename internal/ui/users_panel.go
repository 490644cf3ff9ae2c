package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"leadconsole/internal/roster"
	"leadconsole/internal/ui/textutil"
)

const (
	fieldName  = "name"
	fieldEmail = "email"
	fieldPhone = "phone"
	fieldTier  = "tier"
	fieldSave  = "save"
	fieldList  = "list"
)

var userColumns = []int{18, 24, 16, 7}

// UsersPanel is the "Cadastrar Usuários" tab: a new-user form and the roster.
type UsersPanel struct {
	Name  textinput.Model
	Email textinput.Model
	Phone textinput.Model
	Tier  roster.Tier

	// Selected is the roster row highlighted while the list has focus.
	Selected int

	focus *FocusManager
	users []roster.User
	width int
}

// Ensure UsersPanel implements View.
var _ View = (*UsersPanel)(nil)

// NewUsersPanel creates an empty form. Nothing is focused until Tab.
func NewUsersPanel() *UsersPanel {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.Width = 30
		return ti
	}
	p := &UsersPanel{
		Name:  newInput("Ex: João Silva"),
		Email: newInput("joao@empresa.com"),
		Phone: newInput("(11) 99999-9999"),
		Tier:  roster.TierStandard,
		width: 80,
	}
	p.focus = NewFocusManager(fieldName, fieldEmail, fieldPhone, fieldTier, fieldSave, fieldList)
	p.focus.OnChange = func(_, to string) { p.applyFocus(to) }
	p.focus.Current = ""
	return p
}

// Focus exposes the panel's focus ring.
func (p *UsersPanel) Focus() *FocusManager { return p.focus }

// CapturingText implements textCapturer.
func (p *UsersPanel) CapturingText() bool {
	return p.focus.Is(fieldName) || p.focus.Is(fieldEmail) || p.focus.Is(fieldPhone)
}

// SetData replaces the roster shown, keeping the selection in range.
func (p *UsersPanel) SetData(users []roster.User) {
	p.users = users
	p.Selected = min(p.Selected, max(len(users)-1, 0))
}

// SetSize records the available width.
func (p *UsersPanel) SetSize(width, _ int) {
	p.width = width
}

// ResetForm clears the form after a successful add.
func (p *UsersPanel) ResetForm() {
	p.Name.Reset()
	p.Email.Reset()
	p.Phone.Reset()
	p.Tier = roster.TierStandard
	p.focus.SetFocus(fieldName)
}

// Candidate returns the form's current contents.
func (p *UsersPanel) Candidate() roster.Candidate {
	return roster.Candidate{
		Name:  p.Name.Value(),
		Email: p.Email.Value(),
		Phone: p.Phone.Value(),
		Tier:  p.Tier,
	}
}

// Init implements View.
func (p *UsersPanel) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *UsersPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	key := km.String()

	switch key {
	case "tab":
		p.focus.Next()
		return p, nil
	case "shift+tab":
		p.focus.Prev()
		return p, nil
	case "esc":
		p.focus.Blur()
		return p, nil
	}

	switch p.focus.Current {
	case fieldName, fieldEmail, fieldPhone:
		if key == "enter" {
			return p, p.submitCmd()
		}
		var cmd tea.Cmd
		in := p.input(p.focus.Current)
		*in, cmd = in.Update(msg)
		return p, cmd

	case fieldTier:
		switch key {
		case "enter", "left", "right", "h", "l":
			p.toggleTier()
		}

	case fieldSave:
		if key == "enter" {
			return p, p.submitCmd()
		}

	case fieldList:
		switch key {
		case "up", "k":
			p.Selected = max(p.Selected-1, 0)
		case "down", "j":
			p.Selected = min(p.Selected+1, max(len(p.users)-1, 0))
		case "d", "x", "delete":
			if p.Selected < len(p.users) {
				u := p.users[p.Selected]
				// Masters get no confirmation: the roster refuses them.
				if u.Tier == roster.TierMaster {
					return p, func() tea.Msg { return RemoveUserMsg{ID: u.ID} }
				}
				return p, func() tea.Msg { return ShowRemoveUserMsg{ID: u.ID} }
			}
		}
	}
	return p, nil
}

func (p *UsersPanel) submitCmd() tea.Cmd {
	c := p.Candidate()
	return func() tea.Msg { return AddUserMsg{Candidate: c} }
}

func (p *UsersPanel) toggleTier() {
	if p.Tier == roster.TierMaster {
		p.Tier = roster.TierStandard
	} else {
		p.Tier = roster.TierMaster
	}
}

func (p *UsersPanel) input(id string) *textinput.Model {
	switch id {
	case fieldEmail:
		return &p.Email
	case fieldPhone:
		return &p.Phone
	default:
		return &p.Name
	}
}

func (p *UsersPanel) applyFocus(id string) {
	p.Name.Blur()
	p.Email.Blur()
	p.Phone.Blur()
	switch id {
	case fieldName, fieldEmail, fieldPhone:
		p.input(id).Focus()
	}
}

// View implements View.
func (p *UsersPanel) View() string {
	label := func(id, text string) string {
		if p.focus.Is(id) {
			return Styles.Focused.Render("▸ " + text)
		}
		return Styles.Normal.Render("  " + text)
	}

	var form strings.Builder
	form.WriteString(Styles.CardTitle.Render("Novo Usuário") + "\n\n")
	form.WriteString(label(fieldName, "Nome do Vendedor") + "\n  " + p.Name.View() + "\n")
	form.WriteString(label(fieldEmail, "Email") + "\n  " + p.Email.View() + "\n")
	form.WriteString(label(fieldPhone, "Telefone") + "\n  " + p.Phone.View() + "\n")
	form.WriteString(label(fieldTier, "Tipo de Usuário") + "\n  ‹ " + Styles.Selected.Render(p.Tier.Label()) + " ›\n\n")
	button := Styles.Button
	if p.focus.Is(fieldSave) {
		button = Styles.ButtonOn
	}
	form.WriteString(button.Render("Cadastrar Usuário"))

	var list strings.Builder
	list.WriteString(label(fieldList, "Usuários Cadastrados") + "\n")
	header := []string{"NOME", "EMAIL", "TELEFONE", "TIPO"}
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = textutil.Cell(h, userColumns[i])
	}
	list.WriteString(Styles.Section.Render("  "+strings.Join(cells, " ")+" AÇÕES") + "\n")
	for i, u := range p.users {
		tier := textutil.Cell(u.Tier.Label(), userColumns[3])
		action := Styles.Hint.Render("[d]")
		if u.Tier == roster.TierMaster {
			tier = Styles.Badge.Render(tier)
			action = ""
		}
		row := strings.Join([]string{
			textutil.Cell(u.Name, userColumns[0]),
			textutil.Cell(u.Email, userColumns[1]),
			textutil.Cell(u.Phone, userColumns[2]),
		}, " ")
		bullet := "  "
		if p.focus.Is(fieldList) && i == p.Selected {
			bullet = "▸ "
			row = Styles.Selected.Render(row)
		}
		list.WriteString(bullet + row + " " + tier + " " + action + "\n")
	}
	if len(p.users) == 0 {
		list.WriteString(Styles.Empty.Render("  Nenhum usuário cadastrado") + "\n")
	}
	if p.focus.Is(fieldList) {
		list.WriteString(Styles.Hint.Render("  j/k: selecionar  d: remover") + "\n")
	}

	w := max(p.width-2, 60)
	return Styles.Card.Width(w).Render(form.String()) + "\n" + Styles.Card.Width(w).Render(strings.TrimRight(list.String(), "\n"))
}
