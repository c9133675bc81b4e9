package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kinolist"
)

// Ensure LoggingExtractor implements kinolist.Extractor.
var _ kinolist.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of the detected layout
// and every skipped item.
type LoggingExtractor struct {
	next   kinolist.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next kinolist.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) Extract(html string) (result *kinolist.Extraction, err error) {
	defer func(begin time.Time) {
		ctx := context.Background()
		if err != nil {
			e.logger.Warn("extract", "bytes", len(html), "duration", time.Since(begin), "err", err)
			return
		}
		e.logger.Info("extract",
			"layout", string(result.Layout),
			"records", len(result.Records),
			"skipped", len(result.Skipped),
			"duration", time.Since(begin),
		)
		for _, item := range result.Skipped {
			e.logger.Log(ctx, slog.LevelWarn, "item skipped", "index", item.Index, "err", item.Err)
		}
	}(time.Now())
	return e.next.Extract(html)
}
