package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository/migrations"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
)

// PostgresRepo implements Store on a pgx connection pool. Per-auction serialization
// relies on row locks of the auctions table.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo connects to dsn and verifies the connection
func NewPostgresRepo(ctx context.Context, dsn string, maxConns int32) (*PostgresRepo, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database pool: %w", markTransient(err))
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", markTransient(err))
	}
	return &PostgresRepo{pool: pool}, nil
}

// RunMigrations applies the embedded goose migrations
func (r *PostgresRepo) RunMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close releases the pool
func (r *PostgresRepo) Close() {
	r.pool.Close()
}

const auctionColumns = `id, product_id, seller_id, product_name, category, image_ref, starting_price::text,
	variations, services, start_time, end_time, state, created_at`

// CreateAuction stores a new listing
func (r *PostgresRepo) CreateAuction(ctx context.Context, a model.Auction) error {
	variations, err := json.Marshal(a.Variations)
	if err != nil {
		return fmt.Errorf("encode variations: %w", err)
	}
	services, err := json.Marshal(a.Services)
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO auctions (id, product_id, seller_id, product_name, category, image_ref, starting_price,
			variations, services, start_time, end_time, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9, $10, $11, $12, $13)`,
		a.AuctionID, a.ProductID, a.SellerID, a.ProductName, a.Category, a.ImageRef, a.StartingPrice.String(),
		variations, services, a.StartTime, a.EndTime, string(a.State), a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create auction %s: %w - duplicate id", a.AuctionID, biddingerrors.ErrInvalidAuction)
		}
		return fmt.Errorf("create auction %s: %w", a.AuctionID, markTransient(err))
	}
	return nil
}

// GetAuction returns a point-in-time snapshot of a listing
func (r *PostgresRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+auctionColumns+` FROM auctions WHERE id = $1`, auctionID)
	a, err := scanAuction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, markTransient(err))
	}
	return a, nil
}

// ListAuctions returns every auction in the given state, or all auctions when state is empty
func (r *PostgresRepo) ListAuctions(ctx context.Context, state model.AuctionState) ([]model.Auction, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+auctionColumns+` FROM auctions
		WHERE $1 = '' OR state = $1 ORDER BY end_time, id`, string(state))
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", markTransient(err))
	}
	defer rows.Close()

	auctions := make([]model.Auction, 0)
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan auction: %w", err)
		}
		auctions = append(auctions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list auctions: %w", markTransient(err))
	}
	return auctions, nil
}

// TransitionAuction moves an auction from one state to the next if it is still in `from`
func (r *PostgresRepo) TransitionAuction(ctx context.Context, auctionID string, from, to model.AuctionState) (bool, error) {
	if !from.CanTransitionTo(to) {
		return false, fmt.Errorf("transition auction %s from %s to %s: %w", auctionID, from, to, biddingerrors.ErrInvalidAuction)
	}

	tag, err := r.pool.Exec(ctx, `UPDATE auctions SET state = $3 WHERE id = $1 AND state = $2`,
		auctionID, string(from), string(to))
	if err != nil {
		return false, fmt.Errorf("transition auction %s: %w", auctionID, markTransient(err))
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	// zero rows: either someone else moved it or it does not exist
	if _, err := r.GetAuction(ctx, auctionID); err != nil {
		return false, err
	}
	return false, nil
}

// AppendBid records a bid inside a transaction that holds the auction row lock,
// so the open check and the insert cannot interleave with a state transition.
func (r *PostgresRepo) AppendBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	services, err := json.Marshal(bid.Services)
	if err != nil {
		return model.Bid{}, fmt.Errorf("encode bid services: %w", err)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.Bid{}, fmt.Errorf("append bid: begin: %w", markTransient(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		state   string
		endTime time.Time
	)
	err = tx.QueryRow(ctx, `SELECT state, end_time FROM auctions WHERE id = $1 FOR UPDATE`, bid.AuctionID).Scan(&state, &endTime)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("append bid: auction %s: %w", bid.AuctionID, biddingerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("append bid: lock auction %s: %w", bid.AuctionID, markTransient(err))
	}

	var last *time.Time
	if err := tx.QueryRow(ctx, `SELECT max(created_at) FROM bids WHERE auction_id = $1`, bid.AuctionID).Scan(&last); err != nil {
		return model.Bid{}, fmt.Errorf("append bid: read ledger head: %w", markTransient(err))
	}
	var head time.Time
	if last != nil {
		head = last.UTC()
	}
	bid.CreatedAt = nextCreatedAt(head, bid.CreatedAt)

	locked := model.Auction{State: model.AuctionState(state), EndTime: endTime}
	if !locked.IsOpenAt(bid.CreatedAt) {
		return model.Bid{}, fmt.Errorf("append bid to auction %s (state %s): %w", bid.AuctionID, state, biddingerrors.ErrAuctionClosed)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bids (id, auction_id, buyer_id, buyer_display_name, variation, services, bid_amount, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8::numeric, $9)`,
		bid.BidID, bid.AuctionID, bid.BuyerID, bid.BuyerDisplayName, bid.Variation, services,
		bid.BidAmount.String(), bid.Total.String(), bid.CreatedAt)
	if err != nil {
		return model.Bid{}, fmt.Errorf("append bid: insert: %w", markTransient(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Bid{}, fmt.Errorf("append bid: commit: %w", markTransient(err))
	}
	return bid, nil
}

const bidColumns = `id, auction_id, buyer_id, buyer_display_name, variation, services, bid_amount::text, total::text, created_at`

// GetBidsByAuction returns all bids of an auction in ledger order
func (r *PostgresRepo) GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	if _, err := r.GetAuction(ctx, auctionID); err != nil {
		return nil, fmt.Errorf("get bids: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT `+bidColumns+` FROM bids WHERE auction_id = $1 ORDER BY created_at`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("get bids of auction %s: %w", auctionID, markTransient(err))
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get bids of auction %s: %w", auctionID, markTransient(err))
	}
	return bids, nil
}

// GetBid returns one bid of an auction
func (r *PostgresRepo) GetBid(ctx context.Context, auctionID, bidID string) (model.Bid, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE auction_id = $1 AND id = $2`, auctionID, bidID)
	b, err := scanBid(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s of auction %s: %w", bidID, auctionID, biddingerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, markTransient(err))
	}
	return b, nil
}

func scanAuction(row pgx.Row) (model.Auction, error) {
	var (
		a                    model.Auction
		startingPrice, state string
		variations, services []byte
	)
	if err := row.Scan(&a.AuctionID, &a.ProductID, &a.SellerID, &a.ProductName, &a.Category, &a.ImageRef,
		&startingPrice, &variations, &services, &a.StartTime, &a.EndTime, &state, &a.CreatedAt); err != nil {
		return model.Auction{}, err
	}

	price, err := decimal.NewFromString(startingPrice)
	if err != nil {
		return model.Auction{}, fmt.Errorf("decode starting price: %w", err)
	}
	a.StartingPrice = price
	a.State = model.AuctionState(state)

	if err := json.Unmarshal(variations, &a.Variations); err != nil {
		return model.Auction{}, fmt.Errorf("decode variations: %w", err)
	}
	if err := json.Unmarshal(services, &a.Services); err != nil {
		return model.Auction{}, fmt.Errorf("decode services: %w", err)
	}
	a.StartTime, a.EndTime, a.CreatedAt = a.StartTime.UTC(), a.EndTime.UTC(), a.CreatedAt.UTC()
	return a, nil
}

func scanBid(row pgx.Row) (model.Bid, error) {
	var (
		b             model.Bid
		services      []byte
		amount, total string
	)
	if err := row.Scan(&b.BidID, &b.AuctionID, &b.BuyerID, &b.BuyerDisplayName, &b.Variation, &services,
		&amount, &total, &b.CreatedAt); err != nil {
		return model.Bid{}, err
	}

	var err error
	if b.BidAmount, err = decimal.NewFromString(amount); err != nil {
		return model.Bid{}, fmt.Errorf("decode bid amount: %w", err)
	}
	if b.Total, err = decimal.NewFromString(total); err != nil {
		return model.Bid{}, fmt.Errorf("decode bid total: %w", err)
	}
	if err := json.Unmarshal(services, &b.Services); err != nil {
		return model.Bid{}, fmt.Errorf("decode bid services: %w", err)
	}
	b.CreatedAt = b.CreatedAt.UTC()
	return b, nil
}
