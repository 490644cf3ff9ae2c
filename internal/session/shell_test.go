package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type denyAuth struct{ err error }

func (d denyAuth) Authenticate(context.Context, string, string) error { return d.err }

func TestShell_LoginRequiresBothFields(t *testing.T) {
	s := NewShell(nil)
	for _, c := range [][2]string{{"", ""}, {"admin", ""}, {"", "secret"}, {"  ", "secret"}, {"admin", "   "}} {
		err := s.Login(context.Background(), c[0], c[1])
		assert.ErrorIs(t, err, ErrValidation, "login(%q, %q)", c[0], c[1])
		assert.Equal(t, LoggedOut, s.State())
	}
}

func TestShell_LoginLogout(t *testing.T) {
	var transitions [][2]State
	s := NewShell(nil)
	s.OnChange = func(from, to State) { transitions = append(transitions, [2]State{from, to}) }

	require.NoError(t, s.Login(context.Background(), " admin ", "x"))
	assert.Equal(t, LoggedIn, s.State())
	assert.Equal(t, "admin", s.Operator())

	s.SelectTab(TabUsers)
	s.Logout()
	assert.Equal(t, LoggedOut, s.State())
	assert.Equal(t, "", s.Operator())
	assert.Equal(t, TabLeads, s.Tab())

	assert.Equal(t, [][2]State{{LoggedOut, LoggedIn}, {LoggedIn, LoggedOut}}, transitions)
}

func TestShell_AuthenticatorRejects(t *testing.T) {
	denied := errors.New("bad credentials")
	s := NewShell(denyAuth{err: denied})

	err := s.Login(context.Background(), "admin", "x")
	assert.ErrorIs(t, err, denied)
	assert.Equal(t, LoggedOut, s.State())
}

func TestShell_Tabs(t *testing.T) {
	s := NewShell(nil)
	assert.False(t, s.SelectTab(TabUsers), "tabs are not selectable while logged out")

	require.NoError(t, s.Login(context.Background(), "a", "b"))
	assert.Equal(t, TabLeads, s.Tab())

	assert.Equal(t, TabRanking, s.NextTab())
	assert.Equal(t, TabScripts, s.NextTab())
	assert.Equal(t, TabUsers, s.NextTab())
	assert.Equal(t, TabLeads, s.NextTab())
	assert.Equal(t, TabUsers, s.PrevTab())

	assert.False(t, s.SelectTab(Tab(9)))
	assert.Equal(t, TabUsers, s.Tab())
	assert.True(t, s.SelectTab(TabScripts))
	assert.Equal(t, "Scripts de Vendas", s.Tab().Title())
}
