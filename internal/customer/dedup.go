package customer

import "strings"

// ExistsByName reports whether any record other than excludingID has a name
// equal to name, ignoring case and surrounding whitespace.
func ExistsByName(records []Record, name, excludingID string) bool {
	lower := newLower()
	want := lower.String(strings.TrimSpace(name))
	for _, r := range records {
		if excludingID != "" && r.ID == excludingID {
			continue
		}
		if lower.String(strings.TrimSpace(r.Name)) == want {
			return true
		}
	}
	return false
}
