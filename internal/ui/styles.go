package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - selected items, borders
	ColorDanger    = "196" // Red - errors, destructive actions
	ColorSuccess   = "42"  // Green - success notices
	ColorMuted     = "241" // Gray - hints, placeholders
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "208" // Orange - warning details
	ColorBrand     = "25"  // Blue - header bar
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	Header       lipgloss.Style // full-width brand bar
	HeaderSub    lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Box        lipgloss.Style
	BoxDanger  lipgloss.Style
	BoxCompact lipgloss.Style
	Card       lipgloss.Style // panel section
	CardTitle  lipgloss.Style

	Selected lipgloss.Style
	Section  lipgloss.Style // table headers
	Focused  lipgloss.Style // focused form field label
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Empty    lipgloss.Style
	Label    lipgloss.Style
	Details  lipgloss.Style
	Button   lipgloss.Style
	ButtonOn lipgloss.Style
	Badge    lipgloss.Style // tier badge for masters

	NoticeSuccess lipgloss.Style
	NoticeError   lipgloss.Style
	NoticeInfo    lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(ColorBrand)).
		Padding(0, 1),
	HeaderSub: lipgloss.NewStyle().
		Foreground(lipgloss.Color("153")).
		Background(lipgloss.Color(ColorBrand)).
		Padding(0, 1),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Border(lipgloss.HiddenBorder(), false, false, true, false).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Margin(1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	ButtonOn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2),
	Badge: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning)),
	NoticeSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Padding(0, 1),
	NoticeError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	NoticeInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
