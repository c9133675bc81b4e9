package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/kinolist"
	"github.com/fwojciec/kinolist/mock"
	kslog "github.com/fwojciec/kinolist/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCredentialStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs cookie names without values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.CredentialStore{
			LoadFn: func(context.Context) (kinolist.Credentials, error) {
				return kinolist.NewCredentials(map[string]string{"Session_id": "secret-session", "uid": "42"}), nil
			},
		}

		creds, err := kslog.NewLoggingCredentialStore(inner, newLogger(&buf)).Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, creds.Len())
		output := buf.String()
		assert.Contains(t, output, "cookies=2")
		assert.Contains(t, output, "Session_id")
		assert.NotContains(t, output, "secret-session")
	})

	t.Run("logs failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.CredentialStore{
			LoadFn: func(context.Context) (kinolist.Credentials, error) {
				return kinolist.Credentials{}, kinolist.Errorf(kinolist.ENOTFOUND, "cookies.txt not found")
			},
		}

		_, err := kslog.NewLoggingCredentialStore(inner, newLogger(&buf)).Load(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "cookies.txt not found")
	})
}
