package ui

// AppMode is the top-level screen, mirroring session.State.
type AppMode int

const (
	ModeLogin AppMode = iota
	ModeDashboard
)

func (m AppMode) String() string {
	switch m {
	case ModeLogin:
		return "Login"
	case ModeDashboard:
		return "Dashboard"
	default:
		return "Unknown"
	}
}
