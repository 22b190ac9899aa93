package repository

import (
	"context"
	"time"

	model "auction-engine/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB is the auction catalog and the append-only bid ledger.
// AppendBid and TransitionAuction on the same auction are serialized, so the
// open/closed check of a bid is atomic with its append.
type AuctionDB interface {
	CreateAuction(ctx context.Context, auction model.Auction) error
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context, state model.AuctionState) ([]model.Auction, error)
	TransitionAuction(ctx context.Context, auctionID string, from, to model.AuctionState) (bool, error)
	AppendBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	GetBid(ctx context.Context, auctionID, bidID string) (model.Bid, error)
}

// NotificationStore persists winner notifications and their responses
type NotificationStore interface {
	CreateNotification(ctx context.Context, rec model.NotificationRecord) (model.NotificationRecord, bool, error)
	GetNotification(ctx context.Context, notificationID string) (model.NotificationRecord, error)
	ListNotificationsByBuyer(ctx context.Context, buyerID string) ([]model.NotificationRecord, error)
	ListNotificationsByAuction(ctx context.Context, auctionID string) ([]model.NotificationRecord, error)
	RespondToNotification(ctx context.Context, notificationID string, decision model.Decision, at time.Time) (model.NotificationRecord, error)
}

// MirrorStore holds the per-buyer copy of placed bids
type MirrorStore interface {
	UpsertMirrorEntry(ctx context.Context, entry model.BidMirrorEntry) error
	GetMirrorEntries(ctx context.Context, buyerID string) ([]model.BidMirrorEntry, error)
}

// Store bundles every store the engine needs from one backend
type Store interface {
	AuctionDB
	NotificationStore
	MirrorStore
}

// ledgerResolution is the granularity of ledger timestamps; Postgres keeps microseconds.
const ledgerResolution = time.Microsecond

// nextCreatedAt returns the server timestamp for a bid arriving at `at`, strictly
// after the previous bid of the same auction.
func nextCreatedAt(last, at time.Time) time.Time {
	at = at.UTC().Truncate(ledgerResolution)
	if last.IsZero() || at.After(last) {
		return at
	}
	return last.Add(ledgerResolution)
}
