package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/shopdesk/internal/customer"
)

// searchCommitMsg fires when the search quiet period for token has elapsed.
// Only the most recent token commits; older ones are ignored by the controller.
type searchCommitMsg struct {
	token customer.SearchToken
}

// scheduleCommit returns a tea.Cmd that delivers a searchCommitMsg after d.
func scheduleCommit(d time.Duration, tok customer.SearchToken) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return searchCommitMsg{token: tok}
	})
}
