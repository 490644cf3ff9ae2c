package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC l" for SPC then l.
// Single keys: "ctrl+c", "esc", "enter".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key sequence to a command in every mode.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers a key sequence that only fires, and is only
// hinted, in the given modes. Nil or empty modes means every mode.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupForMode is Lookup restricted to bindings active in mode.
func (r *KeybindRegistry) LookupForMode(seq string, mode AppMode) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Hints returns all bound sequences with descriptions for display.
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil {
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[seq] = d
		} else {
			out[seq] = seq
		}
	}
	return out
}

// LeaderHints returns hints for SPC-prefixed bindings active in mode.
// When currentSeq is empty it returns first-level keys ("1", "l", "q");
// for a deeper currentSeq it returns the keys that may follow it.
// Keys that open a further level are shown as "key…".
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.appliesToMode(seq, mode) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		k := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			k = parts[0]
		}
		if r.HasPrefix(prefix + k) {
			out[k] = k + "…"
			continue
		}
		if d := r.descriptions[seq]; d != "" {
			out[k] = d
		} else {
			out[k] = seq
		}
	}
	return out
}

func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	if !ok || len(modes) == 0 {
		return true
	}
	return slices.Contains(modes, mode)
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	Mode          AppMode  // set by the app before each Handle
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// A consumed key must not be passed on to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.LookupForMode(seq, h.Mode); c != nil {
			h.reset()
			return true, c
		}
		// Stay in leader mode if a longer binding exists.
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c := h.Registry.LookupForMode(keyToSeqPart(s), h.Mode); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap over the leader hints of one mode.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for the given registry, handler, and mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{
		registry:   registry,
		keyHandler: keyHandler,
		mode:       mode,
	}
}

// ShortHelp returns the leader hints for the current sequence, sorted, plus esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	currentSeq := ""
	if km.keyHandler != nil && len(km.keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(km.keyHandler.Buffer, " ")
	}
	hints := km.registry.LeaderHints(currentSeq, km.mode)
	if len(hints) == 0 {
		return nil
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancelar"),
	))
	return bindings
}

// FullHelp returns the ShortHelp bindings as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
