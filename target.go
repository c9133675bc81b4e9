package kinolist

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultSite is the origin all list URLs are built on.
const DefaultSite = "https://www.kinopoisk.ru"

// Target identifies the movie list to save.
// At least one of UserID and FolderID must be set.
type Target struct {
	Site     string
	UserID   string
	FolderID string
}

// Validate returns an error if the target cannot be resolved to a list URL.
func (t *Target) Validate() error {
	if t.UserID == "" && t.FolderID == "" {
		return Errorf(EINVALID, "user ID or folder ID required")
	}
	return nil
}

func (t *Target) site() string {
	if t.Site == "" {
		return DefaultSite
	}
	return strings.TrimSuffix(t.Site, "/")
}

// BaseURL returns the URL that page numbers are appended to.
//
//   - user and folder: the user's list filtered by folder
//   - folder only: the shared folder page
//   - user only: the user's votes
func (t *Target) BaseURL() (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	site := t.site()
	user := url.PathEscape(t.UserID)
	folder := url.PathEscape(t.FolderID)
	switch {
	case t.UserID != "" && t.FolderID != "":
		return fmt.Sprintf("%s/user/%s/movies/list/type/%s/sort/name/vector/asc/page/", site, user, folder), nil
	case t.FolderID != "":
		return fmt.Sprintf("%s/mykp/folders/%s/?sort=name", site, folder), nil
	default:
		return fmt.Sprintf("%s/user/%s/votes/list/ord/name/vs/novote/page/", site, user), nil
	}
}

// PageURL returns the URL of list page n, counting from 1.
func (t *Target) PageURL(n int) (string, error) {
	if n < 1 {
		return "", Errorf(EINVALID, "page number must be positive, got %d", n)
	}
	base, err := t.BaseURL()
	if err != nil {
		return "", err
	}
	if strings.Contains(base, "?") {
		return fmt.Sprintf("%s&page=%d", base, n), nil
	}
	return fmt.Sprintf("%s%d/", base, n), nil
}
