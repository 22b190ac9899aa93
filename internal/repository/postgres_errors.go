package repository

import (
	"context"
	"errors"
	"net"
	"strings"

	"auction-engine/internal/biddingerrors"

	cr "github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the engine cares about
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgTooManyConnections   = "53300"
	pgAdminShutdown        = "57P01"
	pgCannotConnectNow     = "57P03"
)

// markTransient tags driver failures a retry can fix with ErrTransientStorage.
// The original error and its stack stay reachable.
func markTransient(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgTooManyConnections, pgAdminShutdown, pgCannotConnectNow:
			return cr.Mark(err, biddingerrors.ErrTransientStorage)
		}
		if strings.HasPrefix(pgErr.Code, "08") {
			// class 08: connection exception
			return cr.Mark(err, biddingerrors.ErrTransientStorage)
		}
		return err
	}

	var netErr net.Error
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return cr.Mark(err, biddingerrors.ErrTransientStorage)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
