package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

func helpKeys(km help.KeyMap) []string {
	var keys []string
	for _, b := range km.ShortHelp() {
		if b.Enabled() {
			keys = append(keys, b.Help().Key+" "+b.Help().Desc)
		}
	}
	return keys
}

func TestHelpBindings(t *testing.T) {
	tests := []struct {
		name       string
		focus      Focus
		editing    bool
		confirming bool
		want       []string
	}{
		{
			name:  "search",
			focus: FocusSearch,
			want:  []string{"enter search now", "tab next", "shift+tab prev", "ctrl+c quit"},
		},
		{
			name:  "form in create mode hides cancel",
			focus: FocusName,
			want:  []string{"enter save customer", "tab next", "shift+tab prev", "ctrl+c quit"},
		},
		{
			name:    "form in edit mode",
			focus:   FocusEmail,
			editing: true,
			want:    []string{"enter update", "esc cancel edit", "tab next", "shift+tab prev", "ctrl+c quit"},
		},
		{
			name:  "list",
			focus: FocusList,
			want:  []string{"↑/k up", "↓/j down", "enter/e edit", "d delete", "tab next", "q quit"},
		},
		{
			name:       "confirmation overrides focus",
			focus:      FocusList,
			confirming: true,
			want:       []string{"y delete", "n keep"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := helpKeys(HelpBindings(tt.focus, tt.editing, tt.confirming))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("help = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyMaps_FullHelpCoversShortHelp(t *testing.T) {
	maps := map[string]help.KeyMap{
		"search":  SearchKeyMap(),
		"form":    FormKeyMap(true),
		"list":    ListKeyMap(),
		"confirm": ConfirmKeyMap(),
	}
	for name, km := range maps {
		var full []key.Binding
		for _, group := range km.FullHelp() {
			full = append(full, group...)
		}
		if len(full) != len(km.ShortHelp()) {
			t.Errorf("%s: FullHelp has %d bindings, ShortHelp %d", name, len(full), len(km.ShortHelp()))
		}
	}
}

func TestListKeyMap_Keys(t *testing.T) {
	km := ListKeyMap()
	tests := []struct {
		binding key.Binding
		want    []string
	}{
		{km.Up, []string{"up", "k"}},
		{km.Down, []string{"down", "j"}},
		{km.Edit, []string{"enter", "e"}},
		{km.Delete, []string{"d", "x"}},
		{km.Quit, []string{"q", "ctrl+c"}},
	}
	for _, tt := range tests {
		if got := tt.binding.Keys(); strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("keys = %v, want %v", got, tt.want)
		}
	}
}
