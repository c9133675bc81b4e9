package kinolist_test

import (
	"testing"
	"time"

	"github.com/fwojciec/kinolist"
	"github.com/stretchr/testify/assert"
)

func TestMovieRecord_Row(t *testing.T) {
	t.Parallel()

	rec := &kinolist.MovieRecord{
		Title:     "Solaris",
		Year:      "1972",
		Duration:  "169",
		Director:  "Andrei Tarkovsky",
		DateAdded: "01.02.2020",
	}

	assert.Equal(t, []string{"Solaris", "1972", "169", "Andrei Tarkovsky"}, rec.Row(kinolist.LayoutVotes))
	assert.Equal(t, []string{"Solaris", "1972", "169", "01.02.2020"}, rec.Row(kinolist.LayoutWatched))
}

func TestLayout_Header(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Title", "Year", "Duration", "Director"}, kinolist.LayoutVotes.Header())
	assert.Equal(t, []string{"Title", "Year", "Duration", "DateAdded"}, kinolist.LayoutWatched.Header())
}

func TestMovieRecord_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&kinolist.MovieRecord{Title: "Stalker"}).Validate())
	assert.Equal(t, kinolist.ELAYOUT, kinolist.ErrorCode((&kinolist.MovieRecord{}).Validate()))
}

func TestOutputFileName(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "Watched-2026-01-31.xlsx", kinolist.OutputFileName("Watched", date, "xlsx"))
	assert.Equal(t, "Любимые-2026-01-31.csv", kinolist.OutputFileName("Любимые", date, "csv"))
}
