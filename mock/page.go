package mock

import (
	"context"

	"github.com/fwojciec/kinolist"
)

// Compile-time interface verification.
var (
	_ kinolist.PageStore  = (*PageStore)(nil)
	_ kinolist.PageSource = (*PageSource)(nil)
)

// PageStore is a mock implementation of kinolist.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *kinolist.PageResult) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *kinolist.PageResult) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

// PageSource is a mock implementation of kinolist.PageSource.
type PageSource struct {
	ListFn func(ctx context.Context) ([]int, error)
	ReadFn func(ctx context.Context, n int) (string, error)
}

func (s *PageSource) List(ctx context.Context) ([]int, error) {
	return s.ListFn(ctx)
}

func (s *PageSource) Read(ctx context.Context, n int) (string, error) {
	return s.ReadFn(ctx, n)
}
