package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// auctionLedger serializes bids and state changes of a single auction
type auctionLedger struct {
	mu      sync.Mutex
	auction model.Auction
	bids    []model.Bid
}

// MemoryRepo is a concurrency-safe in-memory implementation of Store.
// mu guards the maps only; it is never held while a ledger lock is acquired.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]*auctionLedger // key: auctionID

	notifMu              sync.Mutex
	notifications        map[string]model.NotificationRecord // key: notificationID
	notificationsByAucID map[string][]string                 // key: auctionID -> notificationIDs

	mirrorMu sync.RWMutex
	mirror   map[string]map[string]model.BidMirrorEntry // key: buyerID -> bidID -> entry
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:             make(map[string]*auctionLedger),
		notifications:        make(map[string]model.NotificationRecord),
		notificationsByAucID: make(map[string][]string),
		mirror:               make(map[string]map[string]model.BidMirrorEntry),
	}
}

func (r *MemoryRepo) ledger(auctionID string) (*auctionLedger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.auctions[auctionID]
	if !ok {
		return nil, fmt.Errorf("auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return l, nil
}

// CreateAuction stores a new listing
func (r *MemoryRepo) CreateAuction(_ context.Context, auction model.Auction) error {
	if auction.AuctionID == "" {
		return fmt.Errorf("create auction: %w - empty auction id", biddingerrors.ErrInvalidAuction)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.auctions[auction.AuctionID]; exists {
		return fmt.Errorf("create auction %s: %w - duplicate id", auction.AuctionID, biddingerrors.ErrInvalidAuction)
	}
	r.auctions[auction.AuctionID] = &auctionLedger{auction: cloneAuction(auction)}
	return nil
}

// GetAuction returns a point-in-time snapshot of a listing
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID string) (model.Auction, error) {
	l, err := r.ledger(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneAuction(l.auction), nil
}

// ListAuctions returns every auction in the given state, or all auctions when state is empty
func (r *MemoryRepo) ListAuctions(_ context.Context, state model.AuctionState) ([]model.Auction, error) {
	r.mu.RLock()
	ledgers := make([]*auctionLedger, 0, len(r.auctions))
	for _, l := range r.auctions {
		ledgers = append(ledgers, l)
	}
	r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(ledgers))
	for _, l := range ledgers {
		l.mu.Lock()
		a := cloneAuction(l.auction)
		l.mu.Unlock()
		if state == "" || a.State == state {
			auctions = append(auctions, a)
		}
	}

	sort.Slice(auctions, func(i, j int) bool {
		if auctions[i].EndTime.Equal(auctions[j].EndTime) {
			return auctions[i].AuctionID < auctions[j].AuctionID
		}
		return auctions[i].EndTime.Before(auctions[j].EndTime)
	})
	return auctions, nil
}

// TransitionAuction moves an auction from one state to the next if it is still in `from`.
// It returns false without error when another caller already moved it.
func (r *MemoryRepo) TransitionAuction(_ context.Context, auctionID string, from, to model.AuctionState) (bool, error) {
	if !from.CanTransitionTo(to) {
		return false, fmt.Errorf("transition auction %s from %s to %s: %w", auctionID, from, to, biddingerrors.ErrInvalidAuction)
	}

	l, err := r.ledger(auctionID)
	if err != nil {
		return false, fmt.Errorf("transition auction: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.auction.State != from {
		return false, nil
	}
	l.auction.State = to
	return true, nil
}

// AppendBid records a bid if the auction is open at the bid's stored time.
// The stored CreatedAt is strictly greater than every earlier bid of the auction
// and strictly before the end time.
func (r *MemoryRepo) AppendBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	l, err := r.ledger(bid.AuctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("append bid: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var last model.Bid
	if n := len(l.bids); n > 0 {
		last = l.bids[n-1]
	}
	bid.CreatedAt = nextCreatedAt(last.CreatedAt, bid.CreatedAt)

	if !l.auction.IsOpenAt(bid.CreatedAt) {
		return model.Bid{}, fmt.Errorf("append bid to auction %s (state %s): %w", bid.AuctionID, l.auction.State, biddingerrors.ErrAuctionClosed)
	}
	bid.Services = append([]model.SelectedService(nil), bid.Services...)

	l.bids = append(l.bids, bid)
	return bid, nil
}

// GetBidsByAuction returns all bids of an auction in ledger order
func (r *MemoryRepo) GetBidsByAuction(_ context.Context, auctionID string) ([]model.Bid, error) {
	l, err := r.ledger(auctionID)
	if err != nil {
		return nil, fmt.Errorf("get bids: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.Bid{}, l.bids...), nil
}

// GetBid returns one bid of an auction
func (r *MemoryRepo) GetBid(_ context.Context, auctionID, bidID string) (model.Bid, error) {
	l, err := r.ledger(auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.bids {
		if b.BidID == bidID {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("get bid %s of auction %s: %w", bidID, auctionID, biddingerrors.ErrBidNotFound)
}

// AddAuction stores a listing without validation. This method is intended for tests and seeding only.
func (r *MemoryRepo) AddAuction(auction model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.AuctionID] = &auctionLedger{auction: cloneAuction(auction)}
}

func cloneAuction(a model.Auction) model.Auction {
	out := a
	if a.Variations != nil {
		out.Variations = make(map[string]decimal.Decimal, len(a.Variations))
		for k, v := range a.Variations {
			out.Variations[k] = v
		}
	}
	if a.Services != nil {
		out.Services = make(map[string]model.ServiceOption, len(a.Services))
		for k, v := range a.Services {
			out.Services[k] = v
		}
	}
	return out
}
