package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/kinolist"
)

// Ensure LoggingCredentialStore implements kinolist.CredentialStore.
var _ kinolist.CredentialStore = (*LoggingCredentialStore)(nil)

// LoggingCredentialStore wraps a CredentialStore, logging cookie names but never values.
type LoggingCredentialStore struct {
	next   kinolist.CredentialStore
	logger *slog.Logger
}

// NewLoggingCredentialStore creates a new LoggingCredentialStore.
func NewLoggingCredentialStore(next kinolist.CredentialStore, logger *slog.Logger) *LoggingCredentialStore {
	return &LoggingCredentialStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the outcome.
func (s *LoggingCredentialStore) Load(ctx context.Context) (creds kinolist.Credentials, err error) {
	defer func() {
		if err != nil {
			s.logger.WarnContext(ctx, "load credentials", "err", err)
			return
		}
		s.logger.InfoContext(ctx, "load credentials",
			"cookies", creds.Len(),
			"names", creds.Names(),
		)
	}()
	return s.next.Load(ctx)
}
