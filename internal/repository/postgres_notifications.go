package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"

	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, auction_id, bid_id, seller_id, buyer_id, state, snapshot, created_at, updated_at`

// CreateNotification stores rec unless an open record exists for the same auction and bid.
// The auction row lock serializes concurrent notify calls of one auction.
func (r *PostgresRepo) CreateNotification(ctx context.Context, rec model.NotificationRecord) (model.NotificationRecord, bool, error) {
	snapshot, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return model.NotificationRecord{}, false, fmt.Errorf("encode snapshot: %w", err)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.NotificationRecord{}, false, fmt.Errorf("create notification: begin: %w", markTransient(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := lockAuction(ctx, tx, rec.AuctionID); err != nil {
		return model.NotificationRecord{}, false, fmt.Errorf("create notification: %w", err)
	}

	existing, err := scanNotification(tx.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications
		WHERE auction_id = $1 AND bid_id = $2 AND state IN ('sent', 'accepted')`, rec.AuctionID, rec.BidID))
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return model.NotificationRecord{}, false, fmt.Errorf("create notification: lookup: %w", markTransient(err))
	}

	_, err = tx.Exec(ctx, `INSERT INTO notifications (`+notificationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.NotificationID, rec.AuctionID, rec.BidID, rec.SellerID, rec.BuyerID, string(rec.State), snapshot,
		rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return model.NotificationRecord{}, false, fmt.Errorf("create notification: insert: %w", markTransient(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return model.NotificationRecord{}, false, fmt.Errorf("create notification: commit: %w", markTransient(err))
	}
	return rec, true, nil
}

// GetNotification returns one notification record
func (r *PostgresRepo) GetNotification(ctx context.Context, notificationID string) (model.NotificationRecord, error) {
	rec, err := scanNotification(r.pool.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, notificationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.NotificationRecord{}, fmt.Errorf("get notification %s: %w", notificationID, biddingerrors.ErrNotificationNotFound)
	}
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("get notification %s: %w", notificationID, markTransient(err))
	}
	return rec, nil
}

// ListNotificationsByBuyer returns a buyer's notifications, newest first
func (r *PostgresRepo) ListNotificationsByBuyer(ctx context.Context, buyerID string) ([]model.NotificationRecord, error) {
	return r.listNotifications(ctx, `buyer_id = $1`, buyerID)
}

// ListNotificationsByAuction returns an auction's notifications, newest first
func (r *PostgresRepo) ListNotificationsByAuction(ctx context.Context, auctionID string) ([]model.NotificationRecord, error) {
	return r.listNotifications(ctx, `auction_id = $1`, auctionID)
}

func (r *PostgresRepo) listNotifications(ctx context.Context, where string, arg string) ([]model.NotificationRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE `+where+`
		ORDER BY created_at DESC, id`, arg)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", markTransient(err))
	}
	defer rows.Close()

	out := make([]model.NotificationRecord, 0)
	for rows.Next() {
		rec, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications: %w", markTransient(err))
	}
	return out, nil
}

// RespondToNotification applies a buyer decision. The single-accepted check runs under the
// auction row lock; the partial unique index backs it up.
func (r *PostgresRepo) RespondToNotification(ctx context.Context, notificationID string, decision model.Decision, at time.Time) (model.NotificationRecord, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification: begin: %w", markTransient(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var auctionID string
	err = tx.QueryRow(ctx, `SELECT auction_id FROM notifications WHERE id = $1`, notificationID).Scan(&auctionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: %w", notificationID, biddingerrors.ErrNotificationNotFound)
	}
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: %w", notificationID, markTransient(err))
	}
	if err := lockAuction(ctx, tx, auctionID); err != nil {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: %w", notificationID, err)
	}

	rec, err := scanNotification(tx.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1 FOR UPDATE`, notificationID))
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: %w", notificationID, markTransient(err))
	}
	if rec.State != model.NotificationSent {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s in state %s: %w", notificationID, rec.State, biddingerrors.ErrInvalidTransition)
	}

	switch decision {
	case model.DecisionAccept:
		var accepted bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM notifications WHERE auction_id = $1 AND state = 'accepted')`,
			auctionID).Scan(&accepted); err != nil {
			return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: %w", notificationID, markTransient(err))
		}
		if accepted {
			return model.NotificationRecord{}, fmt.Errorf("accept notification %s: %w", notificationID, biddingerrors.ErrAlreadyAccepted)
		}
		rec.State = model.NotificationAccepted
	case model.DecisionDecline:
		rec.State = model.NotificationDeclined
	default:
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: %w - unknown decision %q", notificationID, biddingerrors.ErrInvalidTransition, decision)
	}
	rec.UpdatedAt = at

	_, err = tx.Exec(ctx, `UPDATE notifications SET state = $2, updated_at = $3 WHERE id = $1`,
		notificationID, string(rec.State), rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.NotificationRecord{}, fmt.Errorf("accept notification %s: %w", notificationID, biddingerrors.ErrAlreadyAccepted)
		}
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: %w", notificationID, markTransient(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: commit: %w", notificationID, markTransient(err))
	}
	return rec, nil
}

func lockAuction(ctx context.Context, tx pgx.Tx, auctionID string) error {
	var id string
	err := tx.QueryRow(ctx, `SELECT id FROM auctions WHERE id = $1 FOR UPDATE`, auctionID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return fmt.Errorf("lock auction %s: %w", auctionID, markTransient(err))
	}
	return nil
}

func scanNotification(row pgx.Row) (model.NotificationRecord, error) {
	var (
		rec      model.NotificationRecord
		state    string
		snapshot []byte
	)
	if err := row.Scan(&rec.NotificationID, &rec.AuctionID, &rec.BidID, &rec.SellerID, &rec.BuyerID, &state,
		&snapshot, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return model.NotificationRecord{}, err
	}
	rec.State = model.NotificationState(state)
	if err := json.Unmarshal(snapshot, &rec.Snapshot); err != nil {
		return model.NotificationRecord{}, fmt.Errorf("decode snapshot: %w", err)
	}
	rec.CreatedAt, rec.UpdatedAt = rec.CreatedAt.UTC(), rec.UpdatedAt.UTC()
	return rec, nil
}
