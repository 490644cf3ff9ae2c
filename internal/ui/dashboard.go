package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadconsole/internal/lead"
	"leadconsole/internal/roster"
	"leadconsole/internal/session"
)

// DashboardView is the logged-in screen: brand header, tab bar and the
// active tab's panel.
type DashboardView struct {
	Operator string
	Tab      session.Tab
	Leads    *LeadsPanel
	Users    *UsersPanel
	width    int
	height   int
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates a dashboard on the leads tab.
func NewDashboardView(quantity int) *DashboardView {
	return &DashboardView{
		Tab:   session.TabLeads,
		Leads: NewLeadsPanel(quantity),
		Users: NewUsersPanel(),
	}
}

// SetData pushes the roster and the pool into the panels.
func (d *DashboardView) SetData(users []roster.User, pool lead.Pool) {
	d.Leads.SetData(users, pool)
	d.Users.SetData(users)
}

// CapturingText implements textCapturer for the active panel.
func (d *DashboardView) CapturingText() bool {
	if p := d.activePanel(); p != nil {
		return capturingText(p)
	}
	return false
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		d.width, d.height = msg.Width, msg.Height
		d.Leads.SetSize(msg.Width, msg.Height)
		d.Users.SetSize(msg.Width, msg.Height)
		return d, nil
	}
	p := d.activePanel()
	if p == nil {
		return d, nil
	}
	_, cmd := p.Update(msg)
	return d, cmd
}

func (d *DashboardView) activePanel() View {
	switch d.Tab {
	case session.TabLeads:
		return d.Leads
	case session.TabUsers:
		return d.Users
	}
	return nil
}

// View implements View.
func (d *DashboardView) View() string {
	var b strings.Builder
	b.WriteString(d.renderHeader() + "\n")
	b.WriteString(d.renderTabs() + "\n")

	switch d.Tab {
	case session.TabLeads:
		b.WriteString(d.Leads.View())
	case session.TabRanking:
		b.WriteString(placeholder(d.Tab.Title(), "Ranking de vendas em desenvolvimento"))
	case session.TabScripts:
		b.WriteString(placeholder(d.Tab.Title(), "Scripts de vendas em desenvolvimento"))
	case session.TabUsers:
		b.WriteString(d.Users.View())
	}
	b.WriteString("\n" + Styles.Hint.Render("Tab: próximo campo  Esc: sair do campo  [SPC]: comandos"))
	return b.String()
}

func (d *DashboardView) renderHeader() string {
	width := max(d.width, 80)
	left := Styles.HeaderSub.Render("Promotora de Crédito") + Styles.Header.Render("Sistema de Gestão de Leads")
	greeting := "Olá, " + d.Operator
	right := Styles.HeaderSub.Render(greeting) + Styles.Header.Render("SPC l: Sair")
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + Styles.HeaderSub.Render(strings.Repeat(" ", max(gap-2, 0))) + right
}

func (d *DashboardView) renderTabs() string {
	tabs := make([]string, len(session.Tabs))
	for i, t := range session.Tabs {
		title := strconv.Itoa(i+1) + " " + t.Title()
		if t == d.Tab {
			tabs[i] = Styles.TabActive.Render(title)
		} else {
			tabs[i] = Styles.TabInactive.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func placeholder(title, text string) string {
	return Styles.Card.Width(60).Render(
		Styles.CardTitle.Render(title) + "\n\n" + Styles.Empty.Render(text),
	)
}
