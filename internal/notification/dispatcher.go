package notification

import (
	"context"
	"fmt"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/config"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"code.cloudfoundry.org/clock"
	"github.com/sethvargo/go-retry"
)

// Dispatcher runs the candidate-winner handshake between a seller and one bidder
type Dispatcher struct {
	auctions      repository.AuctionDB
	notifications repository.NotificationStore
	orders        OrderCreator
	publisher     Publisher
	clock         clock.Clock

	handoffRetries uint64
	handoffBase    time.Duration
}

// NewDispatcher creates a dispatcher
func NewDispatcher(
	auctions repository.AuctionDB,
	notifications repository.NotificationStore,
	orders OrderCreator,
	publisher Publisher,
	clk clock.Clock,
	cfg config.HandoffConfig,
) *Dispatcher {
	return &Dispatcher{
		auctions:       auctions,
		notifications:  notifications,
		orders:         orders,
		publisher:      publisher,
		clock:          clk,
		handoffRetries: cfg.MaxRetries,
		handoffBase:    cfg.RetryBase,
	}
}

// NotifyWinner tells the author of bidID that the seller picked them. Calling it
// again while that bid has a Sent or Accepted record returns the existing record;
// after a decline it opens a new one.
func (d *Dispatcher) NotifyWinner(ctx context.Context, auctionID, bidID, sellerID string) (model.NotificationRecord, error) {
	auction, err := d.auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("notify winner: %w", err)
	}
	if auction.SellerID != sellerID {
		return model.NotificationRecord{}, fmt.Errorf("notify winner on auction %s: %w - caller is not the seller", auctionID, biddingerrors.ErrUnauthorized)
	}

	bid, err := d.auctions.GetBid(ctx, auctionID, bidID)
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("notify winner: %w", err)
	}

	now := d.clock.Now().UTC()
	rec := model.NotificationRecord{
		NotificationID: utils.GenerateID(),
		AuctionID:      auctionID,
		BidID:          bidID,
		SellerID:       sellerID,
		BuyerID:        bid.BuyerID,
		State:          model.NotificationSent,
		Snapshot:       snapshotOf(auction, bid),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	stored, created, err := d.notifications.CreateNotification(ctx, rec)
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("notify winner: %w", err)
	}
	if !created {
		utils.Debug("Winner already notified", map[string]any{
			"auction_id":      auctionID,
			"bid_id":          bidID,
			"notification_id": stored.NotificationID,
		})
		return stored, nil
	}

	utils.Info("Winner notified", map[string]any{
		"auction_id":      auctionID,
		"bid_id":          bidID,
		"buyer_id":        stored.BuyerID,
		"notification_id": stored.NotificationID,
	})
	d.publish(ctx, EventSent, stored)
	return stored, nil
}

// Respond applies the addressed buyer's decision. The first accept of an auction
// wins; later accepts fail with ErrAlreadyAccepted. An accepted snapshot is handed
// to the order creator, whose failures are logged and never undo the acceptance.
func (d *Dispatcher) Respond(ctx context.Context, notificationID, buyerID string, decision model.Decision) (model.NotificationRecord, error) {
	if !decision.Valid() {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification: %w - got %q", biddingerrors.ErrInvalidDecision, decision)
	}

	rec, err := d.notifications.GetNotification(ctx, notificationID)
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification: %w", err)
	}
	if rec.BuyerID != buyerID {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: %w - caller is not the addressed buyer", notificationID, biddingerrors.ErrUnauthorized)
	}

	updated, err := d.notifications.RespondToNotification(ctx, notificationID, decision, d.clock.Now().UTC())
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification: %w", err)
	}

	fields := map[string]any{
		"auction_id":      updated.AuctionID,
		"bid_id":          updated.BidID,
		"buyer_id":        updated.BuyerID,
		"notification_id": updated.NotificationID,
	}
	if decision == model.DecisionDecline {
		utils.Info("Notification declined", fields)
		d.publish(ctx, EventDeclined, updated)
		return updated, nil
	}

	utils.Info("Notification accepted", fields)
	d.publish(ctx, EventAccepted, updated)
	d.handoff(ctx, updated)
	return updated, nil
}

// ListForBuyer returns a buyer's inbox, newest first
func (d *Dispatcher) ListForBuyer(ctx context.Context, buyerID string) ([]model.NotificationRecord, error) {
	recs, err := d.notifications.ListNotificationsByBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list notifications for buyer %s: %w", buyerID, err)
	}
	return recs, nil
}

// ListForAuction returns every notification the seller sent for an auction
func (d *Dispatcher) ListForAuction(ctx context.Context, auctionID, sellerID string) ([]model.NotificationRecord, error) {
	auction, err := d.auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list auction notifications: %w", err)
	}
	if auction.SellerID != sellerID {
		return nil, fmt.Errorf("list notifications of auction %s: %w - caller is not the seller", auctionID, biddingerrors.ErrUnauthorized)
	}

	recs, err := d.notifications.ListNotificationsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list notifications of auction %s: %w", auctionID, err)
	}
	return recs, nil
}

func (d *Dispatcher) handoff(ctx context.Context, rec model.NotificationRecord) {
	handoff := model.OrderHandoff{
		NotificationID: rec.NotificationID,
		AuctionID:      rec.AuctionID,
		BidID:          rec.BidID,
		BuyerID:        rec.BuyerID,
		SellerID:       rec.SellerID,
		Snapshot:       rec.Snapshot,
	}

	backoff := retry.WithMaxRetries(d.handoffRetries, retry.NewExponential(d.handoffBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := d.orders.CreateOrder(ctx, handoff); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		utils.Error("Order handoff failed", map[string]any{
			"notification_id": rec.NotificationID,
			"auction_id":      rec.AuctionID,
			"error":           err.Error(),
		})
	}
}

func (d *Dispatcher) publish(ctx context.Context, kind EventKind, rec model.NotificationRecord) {
	if err := d.publisher.Publish(ctx, Event{Kind: kind, Record: rec}); err != nil {
		utils.Warn("Notification event delivery failed", map[string]any{
			"kind":            string(kind),
			"notification_id": rec.NotificationID,
			"error":           err.Error(),
		})
	}
}

func snapshotOf(auction model.Auction, bid model.Bid) model.BidSnapshot {
	return model.BidSnapshot{
		ProductID:   auction.ProductID,
		ProductName: auction.ProductName,
		Category:    auction.Category,
		ImageRef:    auction.ImageRef,
		Variation:   bid.Variation,
		Services:    append([]model.SelectedService(nil), bid.Services...),
		BidAmount:   bid.BidAmount,
		Total:       bid.Total,
	}
}
