package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/httpstatus"
)

// Ensure LoggingStatusService implements httpstatus.StatusService.
var _ httpstatus.StatusService = (*LoggingStatusService)(nil)

// LoggingStatusService wraps a StatusService with debug logging.
type LoggingStatusService struct {
	next   httpstatus.StatusService
	logger *slog.Logger
}

// NewLoggingStatusService creates a new LoggingStatusService.
func NewLoggingStatusService(next httpstatus.StatusService, logger *slog.Logger) *LoggingStatusService {
	return &LoggingStatusService{next: next, logger: logger}
}

// FindStatuses delegates to the wrapped service and logs the query.
func (s *LoggingStatusService) FindStatuses(ctx context.Context, filter httpstatus.StatusFilter) (statuses []httpstatus.Status, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"count", len(statuses),
			"duration", time.Since(begin),
		}
		if filter.Keyword != nil {
			attrs = append(attrs, "keyword", *filter.Keyword)
		}
		if filter.Code != nil {
			attrs = append(attrs, "code", *filter.Code)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		s.logger.Debug("find statuses", attrs...)
	}(time.Now())
	return s.next.FindStatuses(ctx, filter)
}

// Ensure LoggingStatusLoader implements httpstatus.StatusLoader.
var _ httpstatus.StatusLoader = (*LoggingStatusLoader)(nil)

// LoggingStatusLoader wraps a StatusLoader with debug logging.
type LoggingStatusLoader struct {
	next   httpstatus.StatusLoader
	source string
	logger *slog.Logger
}

// NewLoggingStatusLoader creates a new LoggingStatusLoader.
// source names the dataset in log records.
func NewLoggingStatusLoader(next httpstatus.StatusLoader, source string, logger *slog.Logger) *LoggingStatusLoader {
	return &LoggingStatusLoader{next: next, source: source, logger: logger}
}

// LoadStatuses delegates to the wrapped loader and logs the load.
func (l *LoggingStatusLoader) LoadStatuses(ctx context.Context) (statuses []httpstatus.Status, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("load dataset",
			"source", l.source,
			"count", len(statuses),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadStatuses(ctx)
}
