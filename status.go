package httpstatus

import (
	"context"
	"strings"
)

// Status represents a single HTTP status code entry.
// Several entries may share a code, so lookups always return a slice.
type Status struct {
	Code        string `json:"code"`
	Phrase      string `json:"phrase"`
	Description string `json:"description"`
	SpecTitle   string `json:"spec_title"`
	SpecHref    string `json:"spec_href"`
}

// Contains reports whether keyword is a case-sensitive substring of the
// code, phrase or description.
func (s Status) Contains(keyword string) bool {
	return strings.Contains(s.Code, keyword) ||
		strings.Contains(s.Phrase, keyword) ||
		strings.Contains(s.Description, keyword)
}

// StatusFilter represents a filter for FindStatuses.
// Keyword takes precedence over Code when both are set.
type StatusFilter struct {
	Code    *string `json:"code"`
	Keyword *string `json:"keyword"`
}

// StatusService represents a service for querying status records.
type StatusService interface {
	// FindStatuses retrieves statuses matching the filter in dataset order.
	// Returns ENOTFOUND if nothing matches.
	FindStatuses(ctx context.Context, filter StatusFilter) ([]Status, error)
}

// StatusLoader loads the full status dataset.
type StatusLoader interface {
	// LoadStatuses returns every record in dataset order.
	// Returns EINVALID if the dataset is malformed.
	LoadStatuses(ctx context.Context) ([]Status, error)
}
