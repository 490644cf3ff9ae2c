// Package textutil lays out fixed-width table cells in terminal columns,
// so accented names and currency values line up.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis marks a cell that was cut to fit.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending in "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}

	result := make([]rune, 0, available)
	width := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > available {
			break
		}
		result = append(result, r)
		width += rw
	}
	return string(result) + TruncateEllipsis
}

// Cell left-aligns s in a column of the given width.
func Cell(s string, width int) string {
	if VisualWidth(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// CellRight right-aligns s in a column of the given width (amounts).
func CellRight(s string, width int) string {
	if VisualWidth(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillLeft(s, width)
}
