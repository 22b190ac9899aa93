package leaderboard

import (
	"sort"

	model "auction-engine/internal/models"
)

// Resolve ranks the bids of one auction by total descending, then by earliest
// createdAt. Bid ids break exact ties so the result never depends on input order.
// The bids slice is not modified.
func Resolve(auction model.Auction, bids []model.Bid) model.Leaderboard {
	sorted := make([]model.Bid, len(bids))
	copy(sorted, bids)

	sort.Slice(sorted, func(i, j int) bool {
		if c := sorted[i].Total.Cmp(sorted[j].Total); c != 0 {
			return c > 0
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].BidID < sorted[j].BidID
	})

	board := model.Leaderboard{
		AuctionID: auction.AuctionID,
		State:     auction.State,
		Version:   len(bids),
		Bidders:   make([]model.RankedBid, 0, len(sorted)),
	}
	for i, b := range sorted {
		board.Bidders = append(board.Bidders, model.RankedBid{
			Rank:             i + 1,
			BidID:            b.BidID,
			BuyerID:          b.BuyerID,
			BuyerDisplayName: b.BuyerDisplayName,
			Variation:        b.Variation,
			Total:            b.Total,
			CreatedAt:        b.CreatedAt,
		})
	}
	if len(board.Bidders) > 0 {
		top := board.Bidders[0]
		board.Highest = &top
	}
	return board
}

// Newer reports whether next supersedes prev for the same auction
func Newer(next, prev model.Leaderboard) bool {
	if next.Version != prev.Version {
		return next.Version > prev.Version
	}
	return prev.State.Before(next.State)
}
