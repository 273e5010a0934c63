package sqlite

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/httpstatus"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// Fingerprint computes an xxHash of the dataset and returns it as hex.
// Fields are NUL-separated so shifting text between fields changes the hash.
func Fingerprint(statuses []httpstatus.Status) string {
	d := xxhash.New()
	for _, s := range statuses {
		for _, field := range []string{s.Code, s.Phrase, s.Description, s.SpecTitle, s.SpecHref} {
			_, _ = d.WriteString(field)
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
