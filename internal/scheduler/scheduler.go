package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"code.cloudfoundry.org/clock"
)

// Closer ends an auction once its deadline passes. *Archiver implements it.
type Closer interface {
	Close(ctx context.Context, auctionID string) error
}

type pending struct {
	timer clock.Timer
	stop  chan struct{}
}

// Scheduler keeps one timer per active auction and closes the auction when it
// fires. Timers are keyed by auction id; scheduling an auction twice keeps the
// first timer. A close that fails is re-armed to run again after retryInterval.
type Scheduler struct {
	clock         clock.Clock
	closer        Closer
	retryInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	timers map[string]*pending // key: auctionID
}

// NewScheduler creates a scheduler; Stop releases its timers
func NewScheduler(clk clock.Clock, closer Closer, retryInterval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		clock:         clk,
		closer:        closer,
		retryInterval: retryInterval,
		ctx:           ctx,
		cancel:        cancel,
		timers:        make(map[string]*pending),
	}
}

// Schedule arms the expiry timer of an active auction. An auction whose end time
// has already passed fires right away.
func (s *Scheduler) Schedule(auction model.Auction) {
	if auction.State != model.AuctionActive {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return
	}
	if _, ok := s.timers[auction.AuctionID]; ok {
		return
	}

	delay := auction.EndTime.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}
	s.arm(auction.AuctionID, delay)

	utils.Debug("Expiry timer scheduled", map[string]any{
		"auction_id": auction.AuctionID,
		"fires_in":   delay.String(),
	})
}

// arm starts a timer for auctionID; s.mu must be held
func (s *Scheduler) arm(auctionID string, delay time.Duration) {
	p := &pending{timer: s.clock.NewTimer(delay), stop: make(chan struct{})}
	s.timers[auctionID] = p

	s.wg.Add(1)
	go s.wait(auctionID, p)
}

// retryLater re-arms the timer of an auction whose close failed. Auctions that
// no longer exist are not retried.
func (s *Scheduler) retryLater(auctionID string, err error) {
	fields := map[string]any{
		"auction_id": auctionID,
		"error":      err.Error(),
	}
	if errors.Is(err, biddingerrors.ErrAuctionNotFound) || s.retryInterval <= 0 {
		utils.Error("Failed to close auction", fields)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return
	}
	if _, ok := s.timers[auctionID]; ok {
		return
	}
	s.arm(auctionID, s.retryInterval)

	fields["retry_in"] = s.retryInterval.String()
	utils.Warn("Failed to close auction, retrying later", fields)
}

func (s *Scheduler) wait(auctionID string, p *pending) {
	defer s.wg.Done()

	select {
	case <-p.timer.C():
	case <-p.stop:
		p.timer.Stop()
		return
	case <-s.ctx.Done():
		p.timer.Stop()
		return
	}

	if !s.forget(auctionID, p) {
		return
	}
	if err := s.closer.Close(s.ctx, auctionID); err != nil && s.ctx.Err() == nil {
		s.retryLater(auctionID, err)
	}
}

// forget drops p from the arena and reports whether it was still armed
func (s *Scheduler) forget(auctionID string, p *pending) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timers[auctionID] != p {
		return false
	}
	delete(s.timers, auctionID)
	return true
}

// FireNow closes an auction ahead of its timer, for readers that noticed the
// deadline first. The close runs in the background and its timer is disarmed.
func (s *Scheduler) FireNow(auctionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return
	}
	if p, ok := s.timers[auctionID]; ok {
		delete(s.timers, auctionID)
		close(p.stop)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.closer.Close(s.ctx, auctionID); err != nil && s.ctx.Err() == nil {
			s.retryLater(auctionID, err)
		}
	}()
}

// Pending returns the number of armed timers
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Recover re-arms timers for active auctions and finishes archival of auctions
// that expired while the process was down.
func (s *Scheduler) Recover(ctx context.Context, repo repository.AuctionDB) error {
	active, err := repo.ListAuctions(ctx, model.AuctionActive)
	if err != nil {
		return fmt.Errorf("scheduler recover: list active auctions: %w", err)
	}
	for _, a := range active {
		s.Schedule(a)
	}

	expired, err := repo.ListAuctions(ctx, model.AuctionExpired)
	if err != nil {
		return fmt.Errorf("scheduler recover: list expired auctions: %w", err)
	}
	for _, a := range expired {
		if err := s.closer.Close(ctx, a.AuctionID); err != nil {
			s.retryLater(a.AuctionID, err)
		}
	}

	utils.Info("Scheduler recovered", map[string]any{
		"active":  len(active),
		"expired": len(expired),
	})
	return nil
}

// Stop disarms every timer and waits for in-flight closes to return
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.cancel()
	s.timers = make(map[string]*pending)
	s.mu.Unlock()

	s.wg.Wait()
}
