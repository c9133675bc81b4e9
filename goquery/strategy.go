package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FieldStrategy derives one field from a list item.
// It reports false when the item has no value for the field.
type FieldStrategy func(item *goquery.Selection) (string, bool)

// FirstOf returns the value of the first strategy that finds one.
func FirstOf(item *goquery.Selection, strategies ...FieldStrategy) string {
	for _, s := range strategies {
		if v, ok := s(item); ok {
			return v
		}
	}
	return ""
}

var (
	singleYearRe = regexp.MustCompile(`\((\d{4})\)`)
	yearRangeRe  = regexp.MustCompile(`\([^()]*?(\d{4}(?:\s*[-–—]\s*(?:\d{4}|\.\.\.|…)?)?)[^()]*\)`)
)

// ExtractYear returns the release year, or year range for series,
// from text like "Film (2001)" or "Show (2001-2005)".
func ExtractYear(text string) (string, bool) {
	if m := singleYearRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := yearRangeRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// ExtractDuration returns the runtime in minutes from text like
// "Film (2001) 120 мин.", where it is the second-to-last token.
func ExtractDuration(text string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "", false
	}
	token := fields[len(fields)-2]
	if !isDigits(token) {
		return "", false
	}
	return token, true
}

var episodeSuffixRe = regexp.MustCompile(`\((\D*?)\d.*?\)`)

// StripSeriesYears removes the numeric part of a series parenthetical:
// "Breaking Bad (сериал, 2008)" becomes "Breaking Bad (сериал)".
func StripSeriesYears(title string) string {
	title = episodeSuffixRe.ReplaceAllString(title, "($1)")
	return strings.ReplaceAll(title, ", )", ")")
}

// DropLastToken removes the trailing token, typically a "(year)" suffix.
func DropLastToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return strings.Join(fields, " ")
	}
	return strings.Join(fields[:len(fields)-1], " ")
}

// textOf returns a strategy reading the trimmed text of the first match.
func textOf(selector string) FieldStrategy {
	return func(item *goquery.Selection) (string, bool) {
		sel := item.Find(selector).First()
		if sel.Length() == 0 {
			return "", false
		}
		text := normSpace(sel.Text())
		return text, text != ""
	}
}

// joinedTextOf returns a strategy joining the texts of all matches.
func joinedTextOf(selector, sep string) FieldStrategy {
	return func(item *goquery.Selection) (string, bool) {
		var parts []string
		item.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if text := normSpace(s.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, sep), true
	}
}

// derivedFrom applies parse to the text found by source.
func derivedFrom(source FieldStrategy, parse func(string) (string, bool)) FieldStrategy {
	return func(item *goquery.Selection) (string, bool) {
		text, ok := source(item)
		if !ok {
			return "", false
		}
		return parse(text)
	}
}

func normSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
