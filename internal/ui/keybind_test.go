package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("ctrl+c") == nil {
		t.Error("expected ctrl+c to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC l", tea.Quit, "Logout", []AppMode{ModeDashboard})
	reg.BindWithDesc("SPC q", tea.Quit, "Sair")

	if reg.LookupForMode("SPC l", ModeLogin) != nil {
		t.Error("SPC l must not fire on the login screen")
	}
	if reg.LookupForMode("SPC l", ModeDashboard) == nil {
		t.Error("SPC l must fire on the dashboard")
	}

	hints := reg.LeaderHints("", ModeLogin)
	if _, ok := hints["l"]; ok {
		t.Errorf("login hints should not list l, got %v", hints)
	}
	if hints["q"] != "Sair" {
		t.Errorf("expected q hint Sair, got %v", hints)
	}
}

func TestKeybindRegistry_LeaderHints_Submenu(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC t 1", tea.Quit, "Leads")
	reg.BindWithDesc("SPC t 2", tea.Quit, "Ranking")

	hints := reg.LeaderHints("", ModeDashboard)
	if hints["t"] != "t…" {
		t.Errorf("expected t to be shown as a submenu, got %v", hints)
	}
	sub := reg.LeaderHints("SPC t", ModeDashboard)
	if sub["1"] != "Leads" || sub["2"] != "Ranking" {
		t.Errorf("unexpected SPC t hints: %v", sub)
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Bubble Tea reports space as " "
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected a command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_RespectsMode(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC l", tea.Quit, "Logout", []AppMode{ModeDashboard})
	h := NewKeyHandler(reg)
	h.Mode = ModeLogin

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("l"))
	if !consumed || cmd != nil {
		t.Errorf("SPC l on login: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unmatched sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	consumed, _ = h.Handle(keyMsg("esc"))
	if consumed {
		t.Error("esc outside leader mode should fall through to the view")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("ctrl+c"))
	if !consumed || cmd == nil {
		t.Errorf("ctrl+c: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC i", tea.Quit, "Importar CSV", []AppMode{ModeDashboard})
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "))

	out := RenderKeybindHelp(h, ModeDashboard)
	for _, want := range []string{"SPC", "Importar CSV", "cancelar"} {
		if !strings.Contains(out, want) {
			t.Errorf("help should contain %q, got:\n%s", want, out)
		}
	}
	if RenderKeybindHelp(h, ModeLogin) != "" {
		t.Error("no hints apply on the login screen")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
