package kinolist

import "context"

// Outcome classifies the result of fetching one page.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeCaptchaBlocked
	OutcomeTransportError
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeCaptchaBlocked:
		return "captcha"
	case OutcomeTransportError:
		return "transport error"
	default:
		return "unknown"
	}
}

// PageResult is the outcome of fetching one list page.
type PageResult struct {
	Number  int
	Body    string
	Outcome Outcome
	Err     error
}

// NewPageResult classifies a fetch of page n.
func NewPageResult(n int, body string, err error) *PageResult {
	r := &PageResult{Number: n, Body: body, Err: err}
	switch {
	case err == nil:
		r.Outcome = OutcomeSuccess
	case ErrorCode(err) == EBLOCKED:
		r.Outcome = OutcomeCaptchaBlocked
		r.Body = ""
	default:
		r.Outcome = OutcomeTransportError
		r.Body = ""
	}
	return r
}

// PageStore persists fetched pages with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *PageResult) error
	Commit() error
	Abort() error
}

// PageSource reads back committed pages.
type PageSource interface {
	// List returns stored page numbers in ascending order.
	List(ctx context.Context) ([]int, error)

	// Read returns the markup of page n.
	// Returns ENOTFOUND if the page was not stored.
	Read(ctx context.Context, n int) (string, error)
}
