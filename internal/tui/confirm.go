package tui

import (
	"fmt"
	"strings"

	"github.com/smileynet/shopdesk/internal/customer"
)

// confirmState holds the data needed for the delete confirmation box.
type confirmState struct {
	record customer.Record
}

// View renders the confirmation box for the given terminal width.
func (cs confirmState) View(width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delete %s?\n", nameStyle.Render(cs.record.Name))
	if details := contactLine(cs.record, ""); details != "" {
		fmt.Fprintf(&b, "\n  %s\n", mutedText.Render(details))
	}
	b.WriteString("\n  This cannot be undone.")
	b.WriteString("\n\n  [Enter] Delete   [Esc] Keep")

	style := ConfirmBorder()
	if w := boxWidth(width); w > 0 {
		style = style.Width(w)
	}
	return style.Render(b.String())
}
