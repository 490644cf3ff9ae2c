package ui

import (
	"time"

	"leadconsole/internal/roster"
	"leadconsole/internal/session"
)

// LoginMsg is sent when the operator submits the login form.
type LoginMsg struct {
	Username string
	Password string
}

// LogoutMsg ends the session (SPC l).
type LogoutMsg struct{}

// SelectTabMsg switches the dashboard tab (SPC 1..4).
type SelectTabMsg struct {
	Tab session.Tab
}

// CycleTabMsg moves to the next (Delta 1) or previous (Delta -1) tab.
type CycleTabMsg struct {
	Delta int
}

// ShowFilePickerMsg opens the CSV picker (SPC i).
type ShowFilePickerMsg struct{}

// FileSelectedMsg is sent when a CSV is chosen in the picker.
type FileSelectedMsg struct {
	Name string
}

// ImportFileMsg asks for the named CSV to be read and imported.
type ImportFileMsg struct {
	Name string
}

// LeadFileReadMsg carries the outcome of the async file read.
type LeadFileReadMsg struct {
	Name string
	Text string
	Err  error
}

// ShowSellerPickerMsg opens the seller picker (SPC v).
type ShowSellerPickerMsg struct{}

// SellerSelectedMsg is sent when a seller is chosen in the picker.
type SellerSelectedMsg struct {
	ID string
}

// DistributeMsg hands Count leads to the seller SellerID. A zero message
// (from SPC d) uses the leads panel's current selection.
type DistributeMsg struct {
	SellerID string
	Count    int
}

// AddUserMsg is sent when the new-user form is submitted.
type AddUserMsg struct {
	Candidate roster.Candidate
}

// ShowRemoveUserMsg asks for confirmation before removing a user.
type ShowRemoveUserMsg struct {
	ID string
}

// RemoveUserMsg is sent when removal is confirmed.
type RemoveUserMsg struct {
	ID string
}

// DismissModalMsg is sent when the operator cancels a modal (Esc).
type DismissModalMsg struct{}

// noticeExpiredMsg clears the notice stamped At, if it is still showing.
type noticeExpiredMsg struct {
	At time.Time
}
