package mock

import (
	"context"

	"github.com/fwojciec/kinolist"
)

var _ kinolist.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is a mock implementation of kinolist.CredentialStore.
type CredentialStore struct {
	LoadFn func(ctx context.Context) (kinolist.Credentials, error)
}

func (s *CredentialStore) Load(ctx context.Context) (kinolist.Credentials, error) {
	return s.LoadFn(ctx)
}
