package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"leadconsole/internal/lead"
	"leadconsole/internal/roster"
	"leadconsole/internal/ui/textutil"
)

const (
	fieldFile       = "file"
	fieldSeller     = "seller"
	fieldQuantity   = "quantity"
	fieldDistribute = "distribute"

	maxQuantity = 99999
)

// lead table column widths
var leadColumns = []int{24, 14, 16, 16}

// LeadsPanel is the "Gestão de Leads" tab: import form, distribution form
// and the current pool.
type LeadsPanel struct {
	Path     textinput.Model
	SellerID string
	Quantity int

	focus *FocusManager
	users []roster.User
	leads []lead.Lead
	total decimal.Decimal
	table viewport.Model
	width int

	// The next digit typed replaces Quantity instead of extending it.
	replaceQuantity bool
}

// Ensure LeadsPanel implements View.
var _ View = (*LeadsPanel)(nil)

// NewLeadsPanel creates the panel with the quantity stepper at quantity
// (at least 1). Nothing is focused until Tab is pressed.
func NewLeadsPanel(quantity int) *LeadsPanel {
	ti := textinput.New()
	ti.Placeholder = "Nenhum arquivo selecionado"
	ti.Prompt = ""
	ti.Width = 36

	p := &LeadsPanel{
		Path:     ti,
		Quantity: max(quantity, 1),
		table:    viewport.New(76, 8),
		width:    80,
	}
	p.focus = NewFocusManager(fieldFile, fieldSeller, fieldQuantity, fieldDistribute)
	p.focus.OnChange = func(_, to string) {
		p.replaceQuantity = to == fieldQuantity
		if to == fieldFile {
			p.Path.Focus()
		} else {
			p.Path.Blur()
		}
	}
	p.focus.Current = ""
	p.refreshTable()
	return p
}

// Focus exposes the panel's focus ring.
func (p *LeadsPanel) Focus() *FocusManager { return p.focus }

// CapturingText implements textCapturer.
func (p *LeadsPanel) CapturingText() bool { return p.focus.Is(fieldFile) }

// SetData replaces the seller list and the pool shown. A seller that no
// longer exists is deselected.
func (p *LeadsPanel) SetData(users []roster.User, pool lead.Pool) {
	p.users = users
	if !slices.ContainsFunc(users, func(u roster.User) bool { return u.ID == p.SellerID }) {
		p.SellerID = ""
	}
	p.leads = pool.Leads()
	p.total = pool.Total()
	p.refreshTable()
}

// SetSize fits the lead table into the space left under the forms.
func (p *LeadsPanel) SetSize(width, height int) {
	p.width = width
	p.table.Width = width - 4
	p.table.Height = max(height-18, 5)
	p.refreshTable()
}

// Seller returns the selected seller, if any.
func (p *LeadsPanel) Seller() (roster.User, bool) {
	i := slices.IndexFunc(p.users, func(u roster.User) bool { return u.ID == p.SellerID })
	if i < 0 {
		return roster.User{}, false
	}
	return p.users[i], true
}

// StepQuantity adds delta to the requested count, never going below 1.
func (p *LeadsPanel) StepQuantity(delta int) {
	p.replaceQuantity = false
	p.Quantity = min(max(p.Quantity+delta, 1), maxQuantity)
}

// Init implements View.
func (p *LeadsPanel) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *LeadsPanel) Update(msg tea.Msg) (View, tea.Cmd) {
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
	}

	switch p.focus.Current {
	case fieldFile:
		switch key {
		case "esc":
			p.focus.Blur()
			return p, nil
		case "enter":
			name := strings.TrimSpace(p.Path.Value())
			return p, func() tea.Msg { return ImportFileMsg{Name: name} }
		}
		var cmd tea.Cmd
		p.Path, cmd = p.Path.Update(msg)
		return p, cmd

	case fieldSeller:
		switch key {
		case "enter":
			return p, func() tea.Msg { return ShowSellerPickerMsg{} }
		case "left", "h":
			p.cycleSeller(-1)
			return p, nil
		case "right", "l":
			p.cycleSeller(1)
			return p, nil
		}

	case fieldQuantity:
		switch key {
		case "+", "=", "right", "l":
			p.StepQuantity(1)
			return p, nil
		case "-", "left", "h":
			p.StepQuantity(-1)
			return p, nil
		case "backspace":
			p.replaceQuantity = false
			p.Quantity = max(p.Quantity/10, 1)
			return p, nil
		}
		if d, err := strconv.Atoi(key); err == nil && len(key) == 1 {
			if p.replaceQuantity {
				p.replaceQuantity = false
				p.Quantity = max(d, 1)
			} else {
				p.Quantity = min(max(p.Quantity*10+d, 1), maxQuantity)
			}
			return p, nil
		}

	case fieldDistribute:
		if key == "enter" {
			return p, p.distributeCmd()
		}
	}

	if key == "esc" {
		p.focus.Blur()
		return p, nil
	}

	// Anything left scrolls the lead table.
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p *LeadsPanel) distributeCmd() tea.Cmd {
	id, n := p.SellerID, p.Quantity
	return func() tea.Msg { return DistributeMsg{SellerID: id, Count: n} }
}

func (p *LeadsPanel) cycleSeller(delta int) {
	if len(p.users) == 0 {
		return
	}
	i := slices.IndexFunc(p.users, func(u roster.User) bool { return u.ID == p.SellerID })
	switch {
	case i < 0 && delta < 0:
		i = len(p.users) - 1
	case i < 0:
		i = 0
	default:
		i = (i + delta + len(p.users)) % len(p.users)
	}
	p.SellerID = p.users[i].ID
}

// View implements View.
func (p *LeadsPanel) View() string {
	half := max((p.width-2)/2, 30)

	distribution := p.renderDistributionForm(half - 4)
	performance := Styles.CardTitle.Render("Desempenho da Equipe") + "\n\n" +
		Styles.Empty.Render("Dados de desempenho serão exibidos aqui")

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		Styles.Card.Width(half).Render(distribution),
		Styles.Card.Width(half).Render(performance),
	)

	title := "Visualização de Leads"
	if len(p.leads) > 0 {
		title += Styles.Muted.Render(fmt.Sprintf("  %d leads · %s", len(p.leads), lead.FormatBRL(p.total)))
	}
	table := Styles.CardTitle.Render(title) + "\n" + p.renderTableHeader() + "\n" + p.table.View()

	return top + "\n" + Styles.Card.Width(max(p.width-2, 60)).Render(table)
}

func (p *LeadsPanel) renderDistributionForm(width int) string {
	label := func(id, text string) string {
		if p.focus.Is(id) {
			return Styles.Focused.Render("▸ " + text)
		}
		return Styles.Normal.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(Styles.CardTitle.Render("Distribuição de Leads") + "\n\n")

	b.WriteString(label(fieldFile, "Importar Leads (CSV)") + "\n")
	b.WriteString("  " + Styles.Hint.Render("Formato: "+strings.Join(lead.Columns, ",")) + "\n")
	b.WriteString("  " + p.Path.View() + "\n")
	b.WriteString("  " + Styles.Hint.Render("Enter: importar  SPC i: escolher arquivo") + "\n\n")

	b.WriteString(label(fieldSeller, "Selecione um vendedor") + "\n")
	seller := Styles.Empty.Render("Selecione um vendedor")
	if u, ok := p.Seller(); ok {
		seller = Styles.Normal.Render(textutil.Truncate(sellerLabel(u), width-6))
	}
	b.WriteString("  ‹ " + seller + " ›\n\n")

	b.WriteString(label(fieldQuantity, "Quantidade de leads") + "\n")
	b.WriteString("  [-] " + Styles.Selected.Render(strconv.Itoa(p.Quantity)) + " [+]\n\n")

	button := Styles.Button
	if p.focus.Is(fieldDistribute) {
		button = Styles.ButtonOn
	}
	b.WriteString(button.Render("Distribuir Leads"))
	return b.String()
}

func (p *LeadsPanel) renderTableHeader() string {
	cells := make([]string, len(lead.Columns))
	for i, c := range lead.Columns {
		if i == len(lead.Columns)-1 {
			cells[i] = textutil.CellRight(c, leadColumns[i])
		} else {
			cells[i] = textutil.Cell(c, leadColumns[i])
		}
	}
	return Styles.Section.Render(strings.Join(cells, " "))
}

func (p *LeadsPanel) refreshTable() {
	if len(p.leads) == 0 {
		p.table.SetContent(Styles.Empty.Render("Nenhum lead importado"))
		return
	}
	rows := make([]string, len(p.leads))
	for i, l := range p.leads {
		rows[i] = strings.Join([]string{
			textutil.Cell(l.Name, leadColumns[0]),
			textutil.Cell(l.TaxID, leadColumns[1]),
			textutil.Cell(l.Phone, leadColumns[2]),
			textutil.CellRight(lead.FormatBRL(l.ReleasedAmount), leadColumns[3]),
		}, " ")
	}
	p.table.SetContent(strings.Join(rows, "\n"))
}
