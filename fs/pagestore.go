// Package fs provides file-based storage for list pages and credentials.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/kinolist"
)

// PagesDir is the directory under the output folder holding fetched pages.
const PagesDir = "html"

// Compile-time interface verification.
var (
	_ kinolist.PageStore  = (*PageStore)(nil)
	_ kinolist.PageSource = (*PageStore)(nil)
)

// PageStore implements kinolist.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
// It also reads committed pages back as a kinolist.PageSource.
type PageStore struct {
	baseDir string
	name    string
}

// NewPageStore creates a new PageStore.
// baseDir is the parent directory, name is the output folder name.
// Pages are saved to baseDir/name/html.tmp and moved to baseDir/name/html on Commit.
func NewPageStore(baseDir, name string) *PageStore {
	return &PageStore{
		baseDir: baseDir,
		name:    name,
	}
}

// Dir returns the output folder.
func (s *PageStore) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *PageStore) tempDir() string {
	return filepath.Join(s.Dir(), PagesDir+".tmp")
}

func (s *PageStore) finalDir() string {
	return filepath.Join(s.Dir(), PagesDir)
}

// PageFileName returns the file name of page n.
func PageFileName(n int) string {
	return strconv.Itoa(n) + ".html"
}

func (s *PageStore) Save(ctx context.Context, page *kinolist.PageResult) error {
	if page.Outcome != kinolist.OutcomeSuccess {
		return kinolist.Errorf(kinolist.EINVALID, "page %d was not fetched successfully", page.Number)
	}
	if page.Number < 1 {
		return kinolist.Errorf(kinolist.EINVALID, "page number must be positive, got %d", page.Number)
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), PageFileName(page.Number))
	return os.WriteFile(fullPath, []byte(page.Body), 0644)
}

// Commit replaces the committed pages with the ones saved since the last
// Commit or Abort. When nothing was saved the committed set becomes empty.
func (s *PageStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	if _, err := os.Stat(s.tempDir()); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(s.finalDir(), 0755)
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *PageStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// List returns the numbers of committed pages in ascending order.
// Files not named <number>.html are ignored.
func (s *PageStore) List(ctx context.Context) ([]int, error) {
	entries, err := os.ReadDir(s.finalDir())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, kinolist.Errorf(kinolist.ENOTFOUND, "no stored pages in %s", s.finalDir())
	}
	if err != nil {
		return nil, err
	}

	var pages []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n, ok := parsePageFileName(e.Name())
		if !ok {
			continue
		}
		pages = append(pages, n)
	}
	sort.Ints(pages)
	return pages, nil
}

// Read returns the markup of committed page n.
func (s *PageStore) Read(ctx context.Context, n int) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.finalDir(), PageFileName(n)))
	if errors.Is(err, fs.ErrNotExist) {
		return "", kinolist.Errorf(kinolist.ENOTFOUND, "page %d not stored", n)
	}
	if err != nil {
		return "", fmt.Errorf("read page %d: %w", n, err)
	}
	return string(data), nil
}

func parsePageFileName(name string) (int, bool) {
	base, ok := strings.CutSuffix(name, ".html")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(base)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
