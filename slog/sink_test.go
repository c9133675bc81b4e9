package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/kinolist"
	"github.com/fwojciec/kinolist/mock"
	kslog "github.com/fwojciec/kinolist/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSink_WriteTable(t *testing.T) {
	t.Parallel()

	table := &kinolist.Table{
		Name:    "Watched",
		Layout:  kinolist.LayoutVotes,
		Records: []*kinolist.MovieRecord{{Title: "Солярис"}},
	}

	t.Run("logs table summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var written *kinolist.Table
		inner := &mock.RecordSink{
			WriteTableFn: func(_ context.Context, t *kinolist.Table) error {
				written = t
				return nil
			},
		}
		logger := newLogger(&buf).With("path", "Watched/Watched-2026-10-16.xlsx")

		err := kslog.NewLoggingSink(inner, logger).WriteTable(context.Background(), table)

		require.NoError(t, err)
		assert.Same(t, table, written)
		output := buf.String()
		assert.Contains(t, output, `msg="write table"`)
		assert.Contains(t, output, "path=Watched/Watched-2026-10-16.xlsx")
		assert.Contains(t, output, "list=Watched")
		assert.Contains(t, output, "records=1")
	})

	t.Run("logs failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecordSink{
			WriteTableFn: func(context.Context, *kinolist.Table) error {
				return errors.New("disk full")
			},
		}

		err := kslog.NewLoggingSink(inner, newLogger(&buf)).WriteTable(context.Background(), table)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), `err="disk full"`)
	})
}
