package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"auction-engine/internal/biddingerrors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestMarkTransient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantTransient bool
	}{
		{name: "nil", err: nil},
		{name: "serialization_failure", err: &pgconn.PgError{Code: "40001"}, wantTransient: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, wantTransient: true},
		{name: "connection_exception", err: &pgconn.PgError{Code: "08006"}, wantTransient: true},
		{name: "admin_shutdown", err: &pgconn.PgError{Code: "57P01"}, wantTransient: true},
		{name: "unique_violation", err: &pgconn.PgError{Code: "23505"}},
		{name: "check_violation", err: &pgconn.PgError{Code: "23514"}},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), wantTransient: true},
		{name: "plain", err: errors.New("syntax error")},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := markTransient(tc.err)
			if tc.err == nil {
				require.NoError(t, got)
				return
			}
			require.Equal(t, tc.wantTransient, biddingerrors.IsTransient(got))
			// the original cause stays reachable
			require.ErrorIs(t, got, tc.err)

			wrapped := fmt.Errorf("service: %w", got)
			require.Equal(t, tc.wantTransient, biddingerrors.IsTransient(wrapped))
		})
	}

	require.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	require.False(t, isUniqueViolation(errors.New("other")))
}
