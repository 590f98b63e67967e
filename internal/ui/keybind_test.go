package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap_Matches(t *testing.T) {
	k := DefaultKeyMap()
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"space toggles", keyMsg("space"), k.Toggle},
		{"x toggles", keyMsg("x"), k.Toggle},
		{"s sorts", keyMsg("s"), k.Sort},
		{"enter sorts", keyMsg("enter"), k.Sort},
		{"l moves right", keyMsg("l"), k.Right},
		{"h moves left", keyMsg("h"), k.Left},
		{"u undoes", keyMsg("u"), k.Undo},
		{"tab switches panel", keyMsg("tab"), k.Panel},
		{"slash filters", keyMsg("/"), k.Filter},
		{"esc cancels", keyMsg("esc"), k.CancelInput},
		{"q quits", keyMsg("q"), k.Quit},
		{"ctrl+c force quits", keyMsg("ctrl+c"), k.ForceQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q did not match %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}
}

func TestTableKeyMap_FreesBoardKeys(t *testing.T) {
	tk := tableKeyMap(DefaultKeyMap())
	bindings := []key.Binding{
		tk.LineUp, tk.LineDown, tk.PageUp, tk.PageDown,
		tk.HalfPageUp, tk.HalfPageDown, tk.GotoTop, tk.GotoBottom,
	}
	for _, s := range []string{"space", "u", "d", "b", "f"} {
		for _, b := range bindings {
			if key.Matches(keyMsg(s), b) {
				t.Errorf("table binding %v claims %q", b.Keys(), s)
			}
		}
	}
	if !key.Matches(keyMsg("j"), tk.LineDown) {
		t.Error("j should still move the table cursor down")
	}
}

func TestKeyMap_HelpIncludesToggle(t *testing.T) {
	k := DefaultKeyMap()
	found := false
	for _, b := range k.ShortHelp() {
		if b.Help().Key == "space" {
			found = true
		}
	}
	if !found {
		t.Error("short help should advertise the draft toggle")
	}
	if got := len(k.FullHelp()); got != 4 {
		t.Errorf("FullHelp columns = %d, want 4", got)
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
