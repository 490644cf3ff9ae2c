package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldUsername = "username"
	fieldPassword = "password"
)

// LoginView is the logged-out screen: username, masked password, Enter to
// submit. ctrl+r toggles password visibility.
type LoginView struct {
	username textinput.Model
	password textinput.Model
	focus    *FocusManager
	width    int
}

// Ensure LoginView implements View.
var _ View = (*LoginView)(nil)

// NewLoginView creates an empty login form with the username focused.
func NewLoginView() *LoginView {
	u := textinput.New()
	u.Placeholder = "(seu_usuario)"
	u.Prompt = ""
	u.Width = 30

	p := textinput.New()
	p.Placeholder = "••••••"
	p.Prompt = ""
	p.Width = 30
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'

	v := &LoginView{username: u, password: p}
	v.focus = NewFocusManager(fieldUsername, fieldPassword)
	v.focus.OnChange = func(_, to string) { v.applyFocus(to) }
	v.applyFocus(fieldUsername)
	return v
}

// Reset clears both fields and focuses the username.
func (v *LoginView) Reset() {
	v.username.Reset()
	v.password.Reset()
	v.password.EchoMode = textinput.EchoPassword
	v.focus.SetFocus(fieldUsername)
	v.applyFocus(fieldUsername)
}

// PasswordVisible reports whether the password is shown in clear text.
func (v *LoginView) PasswordVisible() bool {
	return v.password.EchoMode == textinput.EchoNormal
}

// CapturingText implements textCapturer; the form is all text.
func (v *LoginView) CapturingText() bool { return true }

// Init implements View.
func (v *LoginView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *LoginView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			v.focus.Next()
			return v, nil
		case "shift+tab", "up":
			v.focus.Prev()
			return v, nil
		case "ctrl+r":
			if v.PasswordVisible() {
				v.password.EchoMode = textinput.EchoPassword
			} else {
				v.password.EchoMode = textinput.EchoNormal
			}
			return v, nil
		case "enter":
			if v.focus.Is(fieldUsername) && v.password.Value() == "" {
				v.focus.Next()
				return v, nil
			}
			username, password := strings.TrimSpace(v.username.Value()), v.password.Value()
			return v, func() tea.Msg { return LoginMsg{Username: username, Password: password} }
		}
	}

	var cmd tea.Cmd
	if v.focus.Is(fieldPassword) {
		v.password, cmd = v.password.Update(msg)
	} else {
		v.username, cmd = v.username.Update(msg)
	}
	return v, cmd
}

// View implements View.
func (v *LoginView) View() string {
	label := func(id, text string) string {
		if v.focus.Is(id) {
			return Styles.Focused.Render("▸ " + text)
		}
		return Styles.Muted.Render("  " + text)
	}
	eye := "ctrl+r: mostrar senha"
	if v.PasswordVisible() {
		eye = "ctrl+r: ocultar senha"
	}

	var b strings.Builder
	b.WriteString(Styles.Muted.Render("Promotora de Crédito") + "\n")
	b.WriteString(Styles.Title.Render("Sistema de Gestão de Leads") + "\n\n")
	b.WriteString(label(fieldUsername, "Usuário") + "\n")
	b.WriteString("  " + v.username.View() + "\n\n")
	b.WriteString(label(fieldPassword, "Senha") + "\n")
	b.WriteString("  " + v.password.View() + "\n\n")
	b.WriteString(Styles.ButtonOn.Render("Entrar") + "\n")
	b.WriteString(Styles.Hint.Render("Enter: entrar  Tab: próximo campo  " + eye + "  ctrl+c: sair"))

	box := Styles.Box.Render(b.String())
	if v.width > 0 {
		return lipgloss.PlaceHorizontal(v.width, lipgloss.Center, box)
	}
	return box
}

func (v *LoginView) applyFocus(id string) {
	v.username.Blur()
	v.password.Blur()
	switch id {
	case fieldUsername:
		v.username.Focus()
	case fieldPassword:
		v.password.Focus()
	}
}
