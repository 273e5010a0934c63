package httpstatus

import "strings"

// FormatStatuses formats statuses for console output.
// Each status is rendered as three lines followed by a blank line.
func FormatStatuses(statuses []Status) string {
	var b strings.Builder
	for _, s := range statuses {
		b.WriteString(s.Code + " " + s.Phrase + "\n")
		b.WriteString(s.Description + "\n")
		b.WriteString(s.SpecTitle + " (" + s.SpecHref + ")\n")
		b.WriteString("\n")
	}
	return b.String()
}
