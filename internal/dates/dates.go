// Package dates normalizes the date spellings found in archive index files.
// Legacy exports carry textual dates ("12 March 1984"), the current schema
// carries ISO dates; both parse paths funnel into the ISO form.
package dates

import "time"

const isoLayout = "2006-01-02"

var inputLayouts = []string{
	isoLayout,
	"2 January 2006",
	"02 January 2006",
	"2 Jan 2006",
	"02 Jan 2006",
}

// ToISO parses a date in any accepted layout and returns it as YYYY-MM-DD.
// Unparseable input (including the empty string) maps to "".
func ToISO(value string) string {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(isoLayout)
		}
	}
	return ""
}

// Display formats an ISO date for the rendered catalogue ("02 January 2006").
// Anything that does not parse renders as an empty cell.
func Display(iso string) string {
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		return ""
	}
	return t.Format("02 January 2006")
}
