package repository

import (
	"context"
	"fmt"

	model "auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// UpsertMirrorEntry writes or replaces a buyer's copy of one bid
func (r *PostgresRepo) UpsertMirrorEntry(ctx context.Context, e model.BidMirrorEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bid_mirror (buyer_id, auction_id, bid_id, product_name, variation, total, end_time, created_at, mirrored_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9)
		ON CONFLICT (buyer_id, auction_id, bid_id) DO UPDATE SET
			product_name = EXCLUDED.product_name,
			variation = EXCLUDED.variation,
			total = EXCLUDED.total,
			end_time = EXCLUDED.end_time,
			mirrored_at = EXCLUDED.mirrored_at`,
		e.BuyerID, e.AuctionID, e.BidID, e.ProductName, e.Variation, e.Total.String(), e.EndTime, e.CreatedAt, e.MirroredAt)
	if err != nil {
		return fmt.Errorf("upsert mirror entry %s/%s: %w", e.BuyerID, e.BidID, markTransient(err))
	}
	return nil
}

// GetMirrorEntries returns a buyer's mirrored bids, newest first
func (r *PostgresRepo) GetMirrorEntries(ctx context.Context, buyerID string) ([]model.BidMirrorEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT buyer_id, auction_id, bid_id, product_name, variation, total::text, end_time, created_at, mirrored_at
		FROM bid_mirror WHERE buyer_id = $1 ORDER BY created_at DESC, bid_id`, buyerID)
	if err != nil {
		return nil, fmt.Errorf("get mirror entries of %s: %w", buyerID, markTransient(err))
	}
	defer rows.Close()

	out := make([]model.BidMirrorEntry, 0)
	for rows.Next() {
		var (
			e     model.BidMirrorEntry
			total string
		)
		if err := rows.Scan(&e.BuyerID, &e.AuctionID, &e.BidID, &e.ProductName, &e.Variation, &total,
			&e.EndTime, &e.CreatedAt, &e.MirroredAt); err != nil {
			return nil, fmt.Errorf("scan mirror entry: %w", err)
		}
		if e.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("decode mirror total: %w", err)
		}
		e.EndTime, e.CreatedAt, e.MirroredAt = e.EndTime.UTC(), e.CreatedAt.UTC(), e.MirroredAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get mirror entries of %s: %w", buyerID, markTransient(err))
	}
	return out, nil
}
