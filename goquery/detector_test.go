package goquery_test

import (
	"testing"

	"github.com/fwojciec/kinolist"
	"github.com/fwojciec/kinolist/goquery"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want kinolist.Layout
	}{
		{
			name: "votes list",
			html: `<html><body><ul id="itemList"><li></li></ul></body></html>`,
			want: kinolist.LayoutVotes,
		},
		{
			name: "watched list",
			html: `<html><body><div class="profileFilmsList"><div class="item"></div></div></body></html>`,
			want: kinolist.LayoutWatched,
		},
		{
			name: "unrelated page",
			html: `<html><body><p>Доступ ограничен</p></body></html>`,
			want: kinolist.LayoutUnknown,
		},
		{
			name: "empty document",
			html: ``,
			want: kinolist.LayoutUnknown,
		},
	}

	d := goquery.NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, d.Detect(tt.html))
		})
	}
}
