package fs

import (
	"context"

	"github.com/fwojciec/httpstatus"
)

// Ensure StatusService implements httpstatus.StatusService at compile time.
var _ httpstatus.StatusService = (*StatusService)(nil)

// StatusService answers queries over a dataset held in memory.
type StatusService struct {
	statuses []httpstatus.Status
}

// NewStatusService creates a new StatusService over statuses.
func NewStatusService(statuses []httpstatus.Status) *StatusService {
	return &StatusService{statuses: statuses}
}

// FindStatuses retrieves statuses matching the filter.
func (s *StatusService) FindStatuses(ctx context.Context, filter httpstatus.StatusFilter) ([]httpstatus.Status, error) {
	return httpstatus.FindStatuses(s.statuses, filter)
}
