package scheduler

import (
	"context"
	"fmt"
	"time"

	"auction-engine/internal/archive"
	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/config"
	"auction-engine/internal/leaderboard"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"code.cloudfoundry.org/clock"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

// Archiver closes auctions: Active -> Expired once the end time has passed, then
// Expired -> Archived once the terminal snapshot is durably stored.
type Archiver struct {
	repo  repository.AuctionDB
	store archive.Store
	hub   *leaderboard.Hub
	clock clock.Clock

	maxRetries uint64
	retryBase  time.Duration

	inflight singleflight.Group
}

// NewArchiver creates an archiver
func NewArchiver(repo repository.AuctionDB, store archive.Store, hub *leaderboard.Hub, clk clock.Clock, cfg config.ArchiveConfig) *Archiver {
	return &Archiver{
		repo:       repo,
		store:      store,
		hub:        hub,
		clock:      clk,
		maxRetries: cfg.MaxRetries,
		retryBase:  cfg.RetryBase,
	}
}

// Expire flips an auction from Active to Expired if its end time has passed.
// It reports whether this call performed the transition; losers of a race and
// calls before the end time return false.
func (a *Archiver) Expire(ctx context.Context, auctionID string) (bool, error) {
	auction, err := a.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return false, fmt.Errorf("expire: %w", err)
	}
	if !auction.HasExpiredAt(a.clock.Now()) {
		return false, nil
	}

	ok, err := a.repo.TransitionAuction(ctx, auctionID, model.AuctionActive, model.AuctionExpired)
	if err != nil {
		return false, fmt.Errorf("expire auction %s: %w", auctionID, err)
	}
	if !ok {
		return false, nil
	}

	utils.Info("Auction expired", map[string]any{
		"auction_id": auctionID,
		"end_time":   auction.EndTime,
	})

	bids, err := a.repo.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		utils.Warn("Failed to load bids for expiry broadcast", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return true, nil
	}
	auction.State = model.AuctionExpired
	a.hub.Publish(leaderboard.Resolve(auction, bids))
	return true, nil
}

// Close expires and archives an auction. It is what both the timer and the
// lazy read path call, and is safe to run any number of times.
func (a *Archiver) Close(ctx context.Context, auctionID string) error {
	if _, err := a.Expire(ctx, auctionID); err != nil {
		return err
	}
	return a.Archive(ctx, auctionID)
}

// Archive copies an expired auction into the archive store and then marks it
// Archived. Concurrent calls for the same auction share one attempt, and
// archiving an already archived auction is a no-op.
func (a *Archiver) Archive(ctx context.Context, auctionID string) error {
	_, err, _ := a.inflight.Do(auctionID, func() (any, error) {
		return nil, a.archive(ctx, auctionID)
	})
	return err
}

func (a *Archiver) archive(ctx context.Context, auctionID string) error {
	auction, err := a.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}

	switch auction.State {
	case model.AuctionArchived:
		return nil
	case model.AuctionActive:
		return fmt.Errorf("archive auction %s: %w", auctionID, biddingerrors.ErrAuctionStillActive)
	}

	bids, err := a.repo.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("archive auction %s: load bids: %w", auctionID, err)
	}

	auction.State = model.AuctionArchived
	board := leaderboard.Resolve(auction, bids)
	rec := model.ArchiveRecord{
		Auction:     auction,
		Leaderboard: board,
		Bids:        bids,
		ArchivedAt:  a.clock.Now().UTC(),
	}

	if err := a.withRetry(ctx, auctionID, "put archive record", func(ctx context.Context) error {
		return a.store.Put(ctx, rec)
	}); err != nil {
		return fmt.Errorf("archive auction %s: %w", auctionID, err)
	}

	var moved bool
	if err := a.withRetry(ctx, auctionID, "mark archived", func(ctx context.Context) error {
		var err error
		moved, err = a.repo.TransitionAuction(ctx, auctionID, model.AuctionExpired, model.AuctionArchived)
		return err
	}); err != nil {
		return fmt.Errorf("archive auction %s: %w", auctionID, err)
	}
	if !moved {
		return nil
	}

	a.hub.Publish(board)
	a.hub.CloseAuction(auctionID)

	utils.Info("Auction archived", map[string]any{
		"auction_id": auctionID,
		"bids":       len(bids),
	})
	return nil
}

// withRetry retries op with exponential backoff while it fails with a transient storage error
func (a *Archiver) withRetry(ctx context.Context, auctionID, step string, op func(context.Context) error) error {
	backoff := retry.WithMaxRetries(a.maxRetries, retry.NewExponential(a.retryBase))
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op(ctx)
		if err == nil || !biddingerrors.IsTransient(err) {
			return err
		}
		utils.Warn("Archive step failed, retrying", map[string]any{
			"auction_id": auctionID,
			"step":       step,
			"attempt":    attempt,
			"error":      err.Error(),
		})
		return retry.RetryableError(err)
	})
}
