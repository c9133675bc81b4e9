package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kinolist"
)

// Ensure LoggingSink implements kinolist.RecordSink.
var _ kinolist.RecordSink = (*LoggingSink)(nil)

// LoggingSink wraps a RecordSink with logging.
type LoggingSink struct {
	next   kinolist.RecordSink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
// The logger should carry the destination, e.g. via logger.With("path", path).
func NewLoggingSink(next kinolist.RecordSink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// WriteTable delegates to the wrapped sink and logs the write.
func (s *LoggingSink) WriteTable(ctx context.Context, t *kinolist.Table) (err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"list", t.Name,
			"layout", string(t.Layout),
			"records", len(t.Records),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		s.logger.Log(ctx, levelFor(err), "write table", attrs...)
	}(time.Now())
	return s.next.WriteTable(ctx, t)
}
