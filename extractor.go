package kinolist

import "fmt"

// Layout identifies the markup shape of a list page.
type Layout string

// Known list layouts.
const (
	LayoutUnknown Layout = ""
	// LayoutVotes is the votes list and the per-folder movie list.
	LayoutVotes Layout = "votes"
	// LayoutWatched is the profile list of watched films.
	LayoutWatched Layout = "watched"
)

// Header returns the column names for records of this layout.
func (l Layout) Header() []string {
	if l == LayoutWatched {
		return []string{"Title", "Year", "Duration", "DateAdded"}
	}
	return []string{"Title", "Year", "Duration", "Director"}
}

// ItemError describes a list item that could not be turned into a record.
type ItemError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// Extraction holds the records found on one page.
type Extraction struct {
	Layout  Layout
	Records []*MovieRecord

	// Skipped lists items that lacked a mandatory field, in document order.
	Skipped []*ItemError
}

// Extractor parses a stored list page into movie records.
type Extractor interface {
	// Extract returns records in document order.
	// Returns ELAYOUT if the page has no recognizable list container.
	Extract(html string) (*Extraction, error)
}
