package mock

import (
	"context"

	"github.com/fwojciec/httpstatus"
)

var _ httpstatus.StatusService = (*StatusService)(nil)

// StatusService is a mock implementation of httpstatus.StatusService.
type StatusService struct {
	FindStatusesFn func(ctx context.Context, filter httpstatus.StatusFilter) ([]httpstatus.Status, error)
}

func (s *StatusService) FindStatuses(ctx context.Context, filter httpstatus.StatusFilter) ([]httpstatus.Status, error) {
	return s.FindStatusesFn(ctx, filter)
}

var _ httpstatus.StatusLoader = (*StatusLoader)(nil)

// StatusLoader is a mock implementation of httpstatus.StatusLoader.
type StatusLoader struct {
	LoadStatusesFn func(ctx context.Context) ([]httpstatus.Status, error)
}

func (l *StatusLoader) LoadStatuses(ctx context.Context) ([]httpstatus.Status, error) {
	return l.LoadStatusesFn(ctx)
}
