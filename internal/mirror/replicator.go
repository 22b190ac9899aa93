package mirror

import (
	"context"
	"fmt"
	"sync"
	"time"

	"auction-engine/internal/config"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/workpool"
	"github.com/sethvargo/go-retry"
)

// Replicator copies every appended bid into its buyer's mirror on a worker pool.
// The mirror is convenience data: failures are logged and never reach the bidder.
// Replicate only hands the entry to a bounded intake queue, so a slow mirror
// store never holds up bid submission.
type Replicator struct {
	store repository.MirrorStore
	pool  *workpool.WorkPool
	clock clock.Clock

	maxRetries uint64
	retryBase  time.Duration

	intake     chan model.BidMirrorEntry
	dispatched chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	pending sync.WaitGroup
}

// NewReplicator starts a replicator with cfg.Workers workers and an intake
// queue of cfg.QueueSize entries
func NewReplicator(store repository.MirrorStore, clk clock.Clock, cfg config.MirrorConfig) (*Replicator, error) {
	if cfg.QueueSize <= 0 {
		return nil, fmt.Errorf("mirror: queue size must be positive, got %d", cfg.QueueSize)
	}
	pool, err := workpool.NewWorkPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("mirror: create work pool: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &Replicator{
		store:      store,
		pool:       pool,
		clock:      clk,
		maxRetries: cfg.MaxRetries,
		retryBase:  cfg.RetryBase,
		intake:     make(chan model.BidMirrorEntry, cfg.QueueSize),
		dispatched: make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
	go r.dispatch()
	return r, nil
}

// Replicate queues the mirror write for a bid that was just appended to the
// ledger. It never blocks: when the intake queue is full the entry is dropped
// with a warning.
func (r *Replicator) Replicate(auction model.Auction, bid model.Bid) {
	entry := model.BidMirrorEntry{
		BuyerID:     bid.BuyerID,
		AuctionID:   bid.AuctionID,
		BidID:       bid.BidID,
		ProductName: auction.ProductName,
		Variation:   bid.Variation,
		Total:       bid.Total,
		EndTime:     auction.EndTime,
		CreatedAt:   bid.CreatedAt,
	}
	fields := map[string]any{
		"auction_id": bid.AuctionID,
		"bid_id":     bid.BidID,
		"buyer_id":   bid.BuyerID,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		utils.Warn("Mirror replicator stopped, dropping entry", fields)
		return
	}

	r.pending.Add(1)
	select {
	case r.intake <- entry:
	default:
		r.pending.Done()
		utils.Warn("Mirror queue full, dropping entry", fields)
	}
}

// dispatch feeds queued entries to the pool until the intake is closed
func (r *Replicator) dispatch() {
	defer close(r.dispatched)
	for entry := range r.intake {
		entry := entry
		r.pool.Submit(func() {
			defer r.pending.Done()
			r.upsert(entry)
		})
	}
}

func (r *Replicator) upsert(entry model.BidMirrorEntry) {
	backoff := retry.WithMaxRetries(r.maxRetries, retry.NewExponential(r.retryBase))
	err := retry.Do(r.ctx, backoff, func(ctx context.Context) error {
		entry.MirroredAt = r.clock.Now().UTC()
		if err := r.store.UpsertMirrorEntry(ctx, entry); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		utils.Error("Failed to mirror bid", map[string]any{
			"auction_id": entry.AuctionID,
			"bid_id":     entry.BidID,
			"buyer_id":   entry.BuyerID,
			"error":      err.Error(),
		})
		return
	}

	utils.Debug("Bid mirrored", map[string]any{
		"bid_id":   entry.BidID,
		"buyer_id": entry.BuyerID,
	})
}

// GetMyBids returns the buyer's mirrored bids, newest first
func (r *Replicator) GetMyBids(ctx context.Context, buyerID string) ([]model.BidMirrorEntry, error) {
	entries, err := r.store.GetMirrorEntries(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("mirror: get bids of buyer %s: %w", buyerID, err)
	}
	return entries, nil
}

// Flush blocks until every queued mirror write has finished
func (r *Replicator) Flush() {
	r.pending.Wait()
}

// Stop waits for every queued write to finish and releases the workers
func (r *Replicator) Stop() {
	_ = r.Shutdown(context.Background())
}

// Shutdown refuses new entries and drains the queued ones. If ctx ends first,
// writes still in flight are abandoned and ctx's error is returned.
func (r *Replicator) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	close(r.intake)
	r.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		<-r.dispatched
		r.pending.Wait()
		close(drained)
	}()

	var err error
	select {
	case <-drained:
	case <-ctx.Done():
		err = ctx.Err()
		utils.Warn("Mirror drain interrupted, abandoning queued writes", map[string]any{"error": err.Error()})
		r.cancel()
		<-drained
	}

	r.cancel()
	r.pool.Stop()
	return err
}
