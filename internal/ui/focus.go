package ui

import "slices"

// FocusManager tracks which field of a form has focus and rotates it in
// tab order. An empty Current means nothing is focused.
type FocusManager struct {
	Current  string
	Order    []string
	OnChange func(from, to string)
}

// NewFocusManager focuses the first entry of order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current != "" && f.Current == id
}

// Next advances focus, wrapping at the end. With nothing focused it starts
// at the first entry.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	f.move(f.Order[(idx+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus back, wrapping at the start.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx <= 0 {
		idx = len(f.Order)
	}
	f.move(f.Order[idx-1])
	return f.Current
}

// SetFocus focuses id. Returns false, leaving focus alone, if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.move(id)
	return true
}

// Blur clears focus.
func (f *FocusManager) Blur() {
	f.move("")
}

func (f *FocusManager) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
