// Package session models the operator's session: logged out or logged in,
// and which dashboard tab is showing. It holds no credentials; the
// Authenticator decides whether a login succeeds.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	// ErrMissingCredentials is returned when username or password is blank.
	ErrMissingCredentials = fmt.Errorf("%w: username and password are required", ErrValidation)
)

// State is the top-level screen.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "LoggedOut"
	case LoggedIn:
		return "LoggedIn"
	default:
		return "Unknown"
	}
}

// Tab is a dashboard panel. Switching tabs changes nothing but the display.
type Tab int

const (
	TabLeads Tab = iota
	TabRanking
	TabScripts
	TabUsers
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabLeads, TabRanking, TabScripts, TabUsers}

// Title is the tab's label in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabLeads:
		return "Gestão de Leads"
	case TabRanking:
		return "Ranking de Vendas"
	case TabScripts:
		return "Scripts de Vendas"
	case TabUsers:
		return "Cadastrar Usuários"
	default:
		return "?"
	}
}

// Authenticator checks operator credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) error
}

// PlaceholderAuthenticator accepts any credentials. It is not a security
// control; a real credential check plugs in through Authenticator.
type PlaceholderAuthenticator struct{}

// Authenticate implements Authenticator.
func (PlaceholderAuthenticator) Authenticate(context.Context, string, string) error {
	return nil
}

// Shell is the session state machine.
type Shell struct {
	Auth     Authenticator
	OnChange func(from, to State)

	state    State
	operator string
	tab      Tab
}

// NewShell returns a logged-out shell. A nil auth means PlaceholderAuthenticator.
func NewShell(auth Authenticator) *Shell {
	if auth == nil {
		auth = PlaceholderAuthenticator{}
	}
	return &Shell{Auth: auth, state: LoggedOut, tab: TabLeads}
}

// State returns the current state.
func (s *Shell) State() State { return s.state }

// Operator returns the logged-in username, or "" when logged out.
func (s *Shell) Operator() string { return s.operator }

// Tab returns the selected dashboard tab.
func (s *Shell) Tab() Tab { return s.tab }

// Login moves to LoggedIn when both fields are non-blank and Auth accepts
// them. On error the shell stays logged out.
func (s *Shell) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return ErrMissingCredentials
	}
	if err := s.Auth.Authenticate(ctx, username, password); err != nil {
		return fmt.Errorf("authenticate %s: %w", username, err)
	}
	s.operator = username
	s.tab = TabLeads
	s.transition(LoggedIn)
	return nil
}

// Logout returns to LoggedOut and resets the tab.
func (s *Shell) Logout() {
	s.operator = ""
	s.tab = TabLeads
	s.transition(LoggedOut)
}

// SelectTab shows t. It is a no-op returning false when logged out or when t
// is not a known tab.
func (s *Shell) SelectTab(t Tab) bool {
	if s.state != LoggedIn || t < TabLeads || t > TabUsers {
		return false
	}
	s.tab = t
	return true
}

// NextTab advances to the next tab, wrapping around.
func (s *Shell) NextTab() Tab {
	s.SelectTab((s.tab + 1) % Tab(len(Tabs)))
	return s.tab
}

// PrevTab moves to the previous tab, wrapping around.
func (s *Shell) PrevTab() Tab {
	s.SelectTab((s.tab + Tab(len(Tabs)) - 1) % Tab(len(Tabs)))
	return s.tab
}

func (s *Shell) transition(to State) {
	from := s.state
	s.state = to
	if s.OnChange != nil && from != to {
		s.OnChange(from, to)
	}
}
