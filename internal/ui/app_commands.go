package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"leadconsole/internal/importdir"
)

// readLeadFileCmd reads the named CSV off the update loop. Parsing happens
// back on the loop when LeadFileReadMsg arrives.
func readLeadFileCmd(ctx context.Context, store *importdir.Store, name string) tea.Cmd {
	return func() tea.Msg {
		text, err := store.Read(ctx, name)
		return LeadFileReadMsg{Name: name, Text: text, Err: err}
	}
}

// noticeExpiryCmd fires once the notice stamped at has been up for ttl.
func noticeExpiryCmd(at time.Time, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return noticeExpiredMsg{At: at}
	})
}
