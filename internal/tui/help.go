package tui

import "github.com/charmbracelet/bubbles/help"

// HelpBindings returns the help.KeyMap for the focused widget,
// providing context-aware help bar content.
func HelpBindings(focus Focus, editing, confirming bool) help.KeyMap {
	if confirming {
		return ConfirmKeyMap()
	}
	switch focus {
	case FocusSearch:
		return SearchKeyMap()
	case FocusList:
		return ListKeyMap()
	default:
		return FormKeyMap(editing)
	}
}
