package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// Helper to create a new Auction
func newAuction(auctionID string, endAfter time.Duration) model.Auction {
	return model.Auction{
		AuctionID:     auctionID,
		ProductID:     "product-" + auctionID,
		SellerID:      "seller1",
		ProductName:   "Tiger prawns",
		Category:      "shellfish",
		StartingPrice: decimal.NewFromInt(500),
		Variations: map[string]decimal.Decimal{
			"1kg": decimal.NewFromInt(500),
			"2kg": decimal.NewFromInt(950),
		},
		Services: map[string]model.ServiceOption{
			"cleaning": {Label: "Cleaning", Price: decimal.NewFromInt(30), Enabled: true},
		},
		StartTime: baseTime,
		EndTime:   baseTime.Add(endAfter),
		State:     model.AuctionActive,
		CreatedAt: baseTime,
	}
}

// Helper to create a new Bid
func newBid(bidID, auctionID, buyerID string, amount int64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		BuyerID:   buyerID,
		Variation: "1kg",
		BidAmount: decimal.NewFromInt(amount),
		Total:     decimal.NewFromInt(amount),
		CreatedAt: createdAt,
	}
}

func TestNextCreatedAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		last time.Time
		at   time.Time
		want time.Time
	}{
		{name: "first_bid", at: baseTime, want: baseTime},
		{name: "later_arrival", last: baseTime, at: baseTime.Add(time.Second), want: baseTime.Add(time.Second)},
		{name: "same_instant", last: baseTime, at: baseTime, want: baseTime.Add(time.Microsecond)},
		{name: "clock_went_back", last: baseTime, at: baseTime.Add(-time.Second), want: baseTime.Add(time.Microsecond)},
		{name: "sub_microsecond_truncated", at: baseTime.Add(1500 * time.Nanosecond), want: baseTime.Add(time.Microsecond)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.True(t, tc.want.Equal(nextCreatedAt(tc.last, tc.at)), "got %s", nextCreatedAt(tc.last, tc.at))
		})
	}
}

// Test CreateAuction and GetAuction
func TestMemoryRepo_CreateAndGetAuction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	a := newAuction("a1", time.Minute)
	require.NoError(t, repo.CreateAuction(ctx, a))

	err := repo.CreateAuction(ctx, a)
	require.ErrorIs(t, err, biddingerrors.ErrInvalidAuction)

	err = repo.CreateAuction(ctx, newAuction("", time.Minute))
	require.ErrorIs(t, err, biddingerrors.ErrInvalidAuction)

	got, err := repo.GetAuction(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, a.ProductName, got.ProductName)
	require.True(t, got.Variations["2kg"].Equal(decimal.NewFromInt(950)))

	// snapshots are copies
	got.Variations["3kg"] = decimal.NewFromInt(1)
	again, err := repo.GetAuction(ctx, "a1")
	require.NoError(t, err)
	require.NotContains(t, again.Variations, "3kg")

	_, err = repo.GetAuction(ctx, "missing")
	require.ErrorIs(t, err, biddingerrors.ErrAuctionNotFound)
	require.ErrorIs(t, err, biddingerrors.ErrNotFound)
}

// Test ListAuctions
func TestMemoryRepo_ListAuctions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	repo.AddAuction(newAuction("late", 2*time.Hour))
	repo.AddAuction(newAuction("early", time.Hour))
	expired := newAuction("gone", time.Minute)
	expired.State = model.AuctionExpired
	repo.AddAuction(expired)

	all, err := repo.ListAuctions(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "gone", all[0].AuctionID)

	active, err := repo.ListAuctions(ctx, model.AuctionActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, "early", active[0].AuctionID)
	require.Equal(t, "late", active[1].AuctionID)
}

// Test TransitionAuction
func TestMemoryRepo_TransitionAuction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()
	repo.AddAuction(newAuction("a1", time.Minute))

	moved, err := repo.TransitionAuction(ctx, "a1", model.AuctionActive, model.AuctionExpired)
	require.NoError(t, err)
	require.True(t, moved)

	// second attempt observes the new state and no-ops
	moved, err = repo.TransitionAuction(ctx, "a1", model.AuctionActive, model.AuctionExpired)
	require.NoError(t, err)
	require.False(t, moved)

	// never backwards, never skipping
	_, err = repo.TransitionAuction(ctx, "a1", model.AuctionExpired, model.AuctionActive)
	require.ErrorIs(t, err, biddingerrors.ErrInvalidAuction)
	_, err = repo.TransitionAuction(ctx, "a1", model.AuctionActive, model.AuctionArchived)
	require.ErrorIs(t, err, biddingerrors.ErrInvalidAuction)

	_, err = repo.TransitionAuction(ctx, "missing", model.AuctionActive, model.AuctionExpired)
	require.ErrorIs(t, err, biddingerrors.ErrAuctionNotFound)

	concurrent := 20
	repo.AddAuction(newAuction("race", time.Minute))
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.TransitionAuction(ctx, "race", model.AuctionActive, model.AuctionExpired)
			require.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, wins)
}

// Test AppendBid
func TestMemoryRepo_AppendBid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := NewMemoryRepo()
	repo.AddAuction(newAuction("a1", time.Minute))
	closed := newAuction("closed", time.Minute)
	closed.State = model.AuctionExpired
	repo.AddAuction(closed)

	tests := []struct {
		name    string
		bid     model.Bid
		wantErr error
	}{
		{name: "valid_bid", bid: newBid("b1", "a1", "buyer1", 520, baseTime.Add(10*time.Second))},
		{name: "auction_not_found", bid: newBid("b2", "missing", "buyer1", 520, baseTime), wantErr: biddingerrors.ErrAuctionNotFound},
		{name: "at_end_time", bid: newBid("b3", "a1", "buyer1", 520, baseTime.Add(time.Minute)), wantErr: biddingerrors.ErrAuctionClosed},
		{name: "after_end_time", bid: newBid("b4", "a1", "buyer1", 520, baseTime.Add(time.Hour)), wantErr: biddingerrors.ErrAuctionClosed},
		{name: "expired_state", bid: newBid("b5", "closed", "buyer1", 520, baseTime), wantErr: biddingerrors.ErrAuctionClosed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stored, err := repo.AppendBid(ctx, tc.bid)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.bid.BidID, stored.BidID)

			got, err := repo.GetBid(ctx, tc.bid.AuctionID, tc.bid.BidID)
			require.NoError(t, err)
			require.Equal(t, stored, got)
		})
	}

	t.Run("closed_after_transition", func(t *testing.T) {
		t.Parallel()

		r := NewMemoryRepo()
		r.AddAuction(newAuction("a2", time.Minute))
		_, err := r.TransitionAuction(ctx, "a2", model.AuctionActive, model.AuctionExpired)
		require.NoError(t, err)

		_, err = r.AppendBid(ctx, newBid("late", "a2", "buyer1", 600, baseTime))
		require.ErrorIs(t, err, biddingerrors.ErrAuctionClosed)
	})

	t.Run("last_microsecond_before_end", func(t *testing.T) {
		t.Parallel()

		r := NewMemoryRepo()
		a := newAuction("a5", time.Minute)
		r.AddAuction(a)
		almost := a.EndTime.Add(-500 * time.Nanosecond)

		first, err := r.AppendBid(ctx, newBid("edge-1", "a5", "buyer1", 520, almost))
		require.NoError(t, err)
		require.True(t, first.CreatedAt.Before(a.EndTime))

		// the second bid would be stored at the end time itself
		_, err = r.AppendBid(ctx, newBid("edge-2", "a5", "buyer2", 530, almost))
		require.ErrorIs(t, err, biddingerrors.ErrAuctionClosed)

		bids, err := r.GetBidsByAuction(ctx, "a5")
		require.NoError(t, err)
		require.Len(t, bids, 1)
	})

	// concurrency test
	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		r := NewMemoryRepo()
		r.AddAuction(newAuction("a3", time.Minute))

		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				// all bids claim the same arrival instant
				b := newBid(fmt.Sprintf("bid-%d", i), "a3", fmt.Sprintf("buyer-%d", i), int64(100+i), baseTime)
				_, err := r.AppendBid(ctx, b)
				require.NoError(t, err)
			}()
		}
		wg.Wait()

		bids, err := r.GetBidsByAuction(ctx, "a3")
		require.NoError(t, err)
		require.Len(t, bids, concurrentCount)

		seen := make(map[string]bool, concurrentCount)
		for i, b := range bids {
			require.False(t, seen[b.BidID], "duplicate bid %s", b.BidID)
			seen[b.BidID] = true
			if i > 0 {
				require.True(t, b.CreatedAt.After(bids[i-1].CreatedAt), "ledger order must be strictly increasing")
			}
		}
	})

	t.Run("bid_racing_expiry", func(t *testing.T) {
		t.Parallel()

		r := NewMemoryRepo()
		r.AddAuction(newAuction("a4", time.Minute))

		var wg sync.WaitGroup
		results := make(chan error, 100)
		for i := 0; i < 100; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				_, err := r.AppendBid(ctx, newBid(fmt.Sprintf("race-%d", i), "a4", "buyer", 600, baseTime))
				results <- err
			}()
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.TransitionAuction(ctx, "a4", model.AuctionActive, model.AuctionExpired)
			require.NoError(t, err)
		}()
		wg.Wait()
		close(results)

		accepted := 0
		for err := range results {
			if err == nil {
				accepted++
				continue
			}
			require.True(t, errors.Is(err, biddingerrors.ErrAuctionClosed), "unexpected error %v", err)
		}

		bids, err := r.GetBidsByAuction(ctx, "a4")
		require.NoError(t, err)
		require.Len(t, bids, accepted, "every accepted bid is recorded, every rejected one is not")
	})
}

// Test GetBidsByAuction
func TestMemoryRepo_GetBidsByAuction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()
	repo.AddAuction(newAuction("a1", time.Minute))
	repo.AddAuction(newAuction("empty", time.Minute))

	for i, buyer := range []string{"x", "y", "z"} {
		_, err := repo.AppendBid(ctx, newBid("b"+buyer, "a1", buyer, int64(500+i), baseTime.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	bids, err := repo.GetBidsByAuction(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, bids, 3)
	require.Equal(t, "bx", bids[0].BidID)
	require.Equal(t, "bz", bids[2].BidID)

	bids, err = repo.GetBidsByAuction(ctx, "empty")
	require.NoError(t, err)
	require.Empty(t, bids)

	_, err = repo.GetBidsByAuction(ctx, "missing")
	require.ErrorIs(t, err, biddingerrors.ErrAuctionNotFound)

	_, err = repo.GetBid(ctx, "a1", "nope")
	require.ErrorIs(t, err, biddingerrors.ErrBidNotFound)
}
