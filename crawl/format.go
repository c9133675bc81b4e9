package crawl

import (
	"fmt"
	"strconv"
	"strings"
)

// ShortenURL keeps the last max bytes of u, marking the cut with "...".
// The tail of a list URL carries the page number, so that end is kept.
func ShortenURL(u string, max int) string {
	switch {
	case max <= 0:
		return ""
	case len(u) <= max:
		return u
	case max < 4:
		return u[:max]
	}
	return "..." + u[len(u)-max+3:]
}

// FormatBytes renders a byte count with a binary unit.
func FormatBytes(n int) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
	)
	switch {
	case n >= mib:
		return fmt.Sprintf("%.1f MB", float64(n)/mib)
	case n >= kib:
		return fmt.Sprintf("%.1f KB", float64(n)/kib)
	}
	return fmt.Sprintf("%d B", n)
}

// FormatPages renders page numbers as a comma-separated list.
func FormatPages(pages []int) string {
	s := make([]string, len(pages))
	for i, n := range pages {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ", ")
}
