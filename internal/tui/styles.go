package tui

import "github.com/charmbracelet/lipgloss"

// CursorMarker is the prefix shown on the selected customer row.
const CursorMarker = "▸ "

var (
	accent = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dim    = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	subtitleStyle = lipgloss.NewStyle().Foreground(dim)
	labelStyle    = lipgloss.NewStyle().Width(7)
	errorText     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	mutedText     = lipgloss.NewStyle().Foreground(dim)
	nameStyle     = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"}).
		Padding(0, 1)
}

// ConfirmBorder returns the style of the delete confirmation box.
func ConfirmBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}).
		Padding(0, 2)
}

// boxWidth returns the inner width for a bordered box on a terminal of the
// given width, or 0 (unconstrained) when the width is unknown.
func boxWidth(total int) int {
	const chrome = 4 // border + horizontal padding
	if total <= chrome {
		return 0
	}
	return total - chrome
}
