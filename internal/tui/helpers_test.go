package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/shopdesk/internal/customer"
)

type sequentialIDs struct{ n int }

func (s *sequentialIDs) NewID() string {
	s.n++
	return fmt.Sprintf("c%d", s.n)
}

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func newTestController(t testing.TB) *customer.Controller {
	t.Helper()
	return customer.NewController(
		customer.WithIDSource(&sequentialIDs{}),
		customer.WithClock(func() time.Time { return fixedNow }),
	)
}

// seed creates customers through the controller, oldest first.
func seed(t testing.TB, ctrl *customer.Controller, names ...string) {
	t.Helper()
	for _, name := range names {
		ctrl.SetName(name)
		if err := ctrl.Submit(); err != nil {
			t.Fatalf("Submit(%q) error = %v", name, err)
		}
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// send feeds msgs to m in order, discarding commands.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

// typeText sends one key message per rune of s.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, runes(string(r)))
	}
	return m
}

// focusList moves focus from the name input to the list.
func focusList(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, keyPress(tea.KeyShiftTab), keyPress(tea.KeyShiftTab))
	if m.focus != FocusList {
		t.Fatalf("focus = %d, want FocusList", m.focus)
	}
	return m
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}
