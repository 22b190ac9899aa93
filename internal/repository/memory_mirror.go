package repository

import (
	"context"
	"fmt"
	"sort"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
)

// UpsertMirrorEntry writes or replaces a buyer's copy of one bid
func (r *MemoryRepo) UpsertMirrorEntry(_ context.Context, entry model.BidMirrorEntry) error {
	if entry.BuyerID == "" || entry.BidID == "" {
		return fmt.Errorf("upsert mirror entry: %w - missing buyer or bid id", biddingerrors.ErrBidNotFound)
	}

	r.mirrorMu.Lock()
	defer r.mirrorMu.Unlock()

	byBid, ok := r.mirror[entry.BuyerID]
	if !ok {
		byBid = make(map[string]model.BidMirrorEntry)
		r.mirror[entry.BuyerID] = byBid
	}
	byBid[entry.BidID] = entry
	return nil
}

// GetMirrorEntries returns a buyer's mirrored bids, newest first
func (r *MemoryRepo) GetMirrorEntries(_ context.Context, buyerID string) ([]model.BidMirrorEntry, error) {
	r.mirrorMu.RLock()
	defer r.mirrorMu.RUnlock()

	byBid := r.mirror[buyerID]
	out := make([]model.BidMirrorEntry, 0, len(byBid))
	for _, e := range byBid {
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].BidID < out[j].BidID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
