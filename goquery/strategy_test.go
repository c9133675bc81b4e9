package goquery_test

import (
	"testing"

	"github.com/fwojciec/kinolist/goquery"
	"github.com/stretchr/testify/assert"
)

func TestExtractYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"single year", "Film (2001)", "2001", true},
		{"year range", "Film (2001-2005)", "2001-2005", true},
		{"no parentheses", "Film", "", false},
		{"year with runtime", "Solaris (1972) 169 мин.", "1972", true},
		{"series range with en dash", "Во все тяжкие (сериал, 2008 – 2013)", "2008 – 2013", true},
		{"series single year", "Breaking Bad (сериал, 2008)", "2008", true},
		{"ongoing series", "Show (2019 – ...)", "2019 – ...", true},
		{"parentheses without year", "Film (director's cut)", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := goquery.ExtractYear(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractDuration(t *testing.T) {
	t.Parallel()

	t.Run("numeric second-to-last token", func(t *testing.T) {
		t.Parallel()

		got, ok := goquery.ExtractDuration("Lost (2004) 45 мин.")
		assert.True(t, ok)
		assert.Equal(t, "45", got)
	})

	t.Run("non-numeric second-to-last token", func(t *testing.T) {
		t.Parallel()

		_, ok := goquery.ExtractDuration("Lost (2004) сериал ...")
		assert.False(t, ok)
	})

	t.Run("single token", func(t *testing.T) {
		t.Parallel()

		_, ok := goquery.ExtractDuration("Lost")
		assert.False(t, ok)
	})
}

func TestStripSeriesYears(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Breaking Bad (сериал)", goquery.StripSeriesYears("Breaking Bad (сериал, 2008)"))
	assert.Equal(t, "Во все тяжкие (сериал)", goquery.StripSeriesYears("Во все тяжкие (сериал, 2008 – 2013)"))
	assert.Equal(t, "Movie", goquery.StripSeriesYears("Movie"))
}

func TestDropLastToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Сталкер", goquery.DropLastToken("Сталкер (1979)"))
	assert.Equal(t, "Once Upon a Time", goquery.DropLastToken("Once Upon a Time (2011)"))
	assert.Equal(t, "Alone", goquery.DropLastToken("Alone"))
}
