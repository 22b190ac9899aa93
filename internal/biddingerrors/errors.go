package biddingerrors

import (
	"errors"
	"fmt"

	cr "github.com/cockroachdb/errors"
)

// Lookup errors
var (
	ErrNotFound             = errors.New("not found")
	ErrAuctionNotFound      = fmt.Errorf("auction %w", ErrNotFound)
	ErrBidNotFound          = fmt.Errorf("bid %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)
)

// Bid submission errors
var (
	ErrAuctionClosed    = errors.New("auction closed")
	ErrInvalidSelection = errors.New("invalid variation or service selection")
	ErrInvalidAmount    = errors.New("bid amount must be positive")
	ErrInvalidAuction   = errors.New("invalid auction listing")
)

// Notification and acceptance errors
var (
	ErrUnauthorized      = errors.New("caller is not allowed to perform this action")
	ErrAlreadyAccepted   = errors.New("another notification for this auction was already accepted")
	ErrInvalidTransition = errors.New("notification is no longer awaiting a response")
	ErrInvalidDecision   = errors.New("decision must be accept or decline")
)

// Lifecycle errors
var (
	ErrAuctionStillActive = errors.New("auction has not ended yet")
)

// Storage errors
var (
	ErrTransientStorage = errors.New("transient storage error")
)

// IsTransient reports whether err, or any error it wraps or is marked with, is a
// retryable storage failure.
func IsTransient(err error) bool {
	return cr.Is(err, ErrTransientStorage)
}
