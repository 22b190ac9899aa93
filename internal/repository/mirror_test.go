package repository

import (
	"context"
	"testing"
	"time"

	model "auction-engine/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_Mirror(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	entry := func(bidID string, total int64, at time.Time) model.BidMirrorEntry {
		return model.BidMirrorEntry{
			BuyerID:   "x",
			AuctionID: "a1",
			BidID:     bidID,
			Variation: "1kg",
			Total:     decimal.NewFromInt(total),
			CreatedAt: at,
		}
	}

	require.NoError(t, repo.UpsertMirrorEntry(ctx, entry("b1", 520, baseTime)))
	require.NoError(t, repo.UpsertMirrorEntry(ctx, entry("b2", 600, baseTime.Add(time.Second))))
	// replaying the same bid overwrites rather than duplicates
	require.NoError(t, repo.UpsertMirrorEntry(ctx, entry("b1", 520, baseTime)))

	got, err := repo.GetMirrorEntries(ctx, "x")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "b2", got[0].BidID)
	require.Equal(t, "b1", got[1].BidID)

	empty, err := repo.GetMirrorEntries(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, empty)

	require.Error(t, repo.UpsertMirrorEntry(ctx, model.BidMirrorEntry{BidID: "b3"}))
}
