package mock

import (
	"context"

	"github.com/fwojciec/kinolist"
)

var _ kinolist.RecordSink = (*RecordSink)(nil)

// RecordSink is a mock implementation of kinolist.RecordSink.
type RecordSink struct {
	WriteTableFn func(ctx context.Context, t *kinolist.Table) error
}

func (s *RecordSink) WriteTable(ctx context.Context, t *kinolist.Table) error {
	return s.WriteTableFn(ctx, t)
}
