package tui

import (
	"fmt"
	"strings"

	"github.com/smileynet/shopdesk/internal/customer"
	"github.com/smileynet/shopdesk/internal/phone"
)

const (
	emptyListText = "No customers yet. Add one above."
	noMatchFormat = "No customers match %q."
)

// listView renders the filtered customer list with the cursor row marked.
// query is the committed search query used for the empty-state text.
func listView(records []customer.Record, cursor int, focused bool, query, region, timeFormat string) string {
	if len(records) == 0 {
		if query != "" {
			return mutedText.Render(fmt.Sprintf(noMatchFormat, query))
		}
		return mutedText.Render(emptyListText)
	}

	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		if focused && i == cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(nameStyle.Render(r.Name))
		if details := contactLine(r, region); details != "" {
			b.WriteString("\n    " + details)
		}
		b.WriteString("\n    " + mutedText.Render(addedLine(r, timeFormat)))
	}
	return b.String()
}

// contactLine joins the present phone and email of r. Phones are formatted
// for display when region is set.
func contactLine(r customer.Record, region string) string {
	var parts []string
	if r.Phone != "" {
		p := r.Phone
		if region != "" {
			p = phone.Format(p, region)
		}
		parts = append(parts, p)
	}
	if r.Email != "" {
		parts = append(parts, r.Email)
	}
	return strings.Join(parts, " · ")
}

func addedLine(r customer.Record, timeFormat string) string {
	return "Added " + r.CreatedAt.Local().Format(timeFormat)
}

// clampCursor keeps cursor within [0, n).
func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
