package bidding

import (
	"context"
	"errors"
	"fmt"

	"auction-engine/internal/archive"
	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/leaderboard"
	"auction-engine/internal/mirror"
	model "auction-engine/internal/models"
	"auction-engine/internal/notification"
	"auction-engine/internal/repository"
	"auction-engine/internal/scheduler"
	"auction-engine/utils"

	"code.cloudfoundry.org/clock"
)

// Components are the collaborators the engine is assembled from
type Components struct {
	Store      repository.Store
	Archive    archive.Store
	Hub        *leaderboard.Hub
	Archiver   *scheduler.Archiver
	Scheduler  *scheduler.Scheduler
	Dispatcher *notification.Dispatcher
	Mirror     *mirror.Replicator
	Clock      clock.Clock
}

// BiddingService is the auction engine: ledger writes, leaderboards, expiry,
// winner notification and the buyer's bid mirror.
type BiddingService struct {
	store      repository.Store
	archive    archive.Store
	hub        *leaderboard.Hub
	archiver   *scheduler.Archiver
	scheduler  *scheduler.Scheduler
	dispatcher *notification.Dispatcher
	mirror     *mirror.Replicator
	clock      clock.Clock
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(c Components) *BiddingService {
	return &BiddingService{
		store:      c.Store,
		archive:    c.Archive,
		hub:        c.Hub,
		archiver:   c.Archiver,
		scheduler:  c.Scheduler,
		dispatcher: c.Dispatcher,
		mirror:     c.Mirror,
		clock:      c.Clock,
	}
}

// CreateAuction opens a listing for sellerID and arms its expiry timer
func (s *BiddingService) CreateAuction(ctx context.Context, sellerID string, draft model.AuctionDraft) (model.Auction, error) {
	if sellerID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing seller", biddingerrors.ErrUnauthorized)
	}

	now := s.clock.Now().UTC()
	if draft.StartTime.IsZero() {
		draft.StartTime = now
	}
	if err := validateDraft(draft); err != nil {
		return model.Auction{}, err
	}
	if !draft.EndTime.After(now) {
		return model.Auction{}, fmt.Errorf("service: %w - end time is in the past", biddingerrors.ErrInvalidAuction)
	}

	auction := model.Auction{
		AuctionID:     utils.GenerateID(),
		ProductID:     draft.ProductID,
		SellerID:      sellerID,
		ProductName:   draft.ProductName,
		Category:      draft.Category,
		ImageRef:      draft.ImageRef,
		StartingPrice: draft.StartingPrice,
		Variations:    draft.Variations,
		Services:      draft.Services,
		StartTime:     draft.StartTime.UTC(),
		EndTime:       draft.EndTime.UTC(),
		State:         model.AuctionActive,
		CreatedAt:     now,
	}
	if auction.Services == nil {
		auction.Services = map[string]model.ServiceOption{}
	}

	if err := s.store.CreateAuction(ctx, auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction for seller %s: %w", sellerID, err)
	}
	s.scheduler.Schedule(auction)

	utils.Info("Auction created", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  sellerID,
		"end_time":   auction.EndTime,
	})
	return auction, nil
}

// GetAuction returns a listing, closing it first if its deadline has passed
func (s *BiddingService) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", biddingerrors.ErrAuctionNotFound)
	}

	auction, err := s.store.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return s.noticeExpiry(ctx, auction), nil
}

// ListAuctions returns listings in the given state, or all of them when state is empty
func (s *BiddingService) ListAuctions(ctx context.Context, state model.AuctionState) ([]model.Auction, error) {
	if state != "" && !state.Valid() {
		return nil, fmt.Errorf("service: %w - unknown state %q", biddingerrors.ErrInvalidAuction, state)
	}

	auctions, err := s.store.ListAuctions(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// SubmitBid prices and records a buyer's bid. Any positive amount is accepted
// while the auction is open; ranking decides the winner. The open check is
// repeated by the ledger at write time, so a bid racing the deadline is either
// recorded or rejected with ErrAuctionClosed.
func (s *BiddingService) SubmitBid(ctx context.Context, req model.BidRequest) (model.Bid, error) {
	if req.BuyerID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing buyer", biddingerrors.ErrUnauthorized)
	}

	auction, err := s.GetAuction(ctx, req.AuctionID)
	if err != nil {
		return model.Bid{}, err
	}

	now := s.clock.Now().UTC()
	if !auction.IsOpenAt(now) {
		return model.Bid{}, fmt.Errorf("service: bid on auction %s (state %s): %w", auction.AuctionID, auction.State, biddingerrors.ErrAuctionClosed)
	}

	services, total, err := priceSelection(auction, req.Variation, req.Services, req.BidAmount)
	if err != nil {
		return model.Bid{}, err
	}
	if !req.BidAmount.IsPositive() {
		return model.Bid{}, fmt.Errorf("service: %w - got %s", biddingerrors.ErrInvalidAmount, req.BidAmount)
	}

	bid := model.Bid{
		BidID:            utils.GenerateOrderedID(),
		AuctionID:        auction.AuctionID,
		BuyerID:          req.BuyerID,
		BuyerDisplayName: req.BuyerDisplayName,
		Variation:        req.Variation,
		Services:         services,
		BidAmount:        req.BidAmount,
		Total:            total,
		CreatedAt:        now,
	}

	// a bid that reached the ledger is either fully recorded or failed, never abandoned
	stored, err := s.store.AppendBid(context.WithoutCancel(ctx), bid)
	if err != nil {
		if errors.Is(err, biddingerrors.ErrAuctionClosed) {
			s.noticeExpiry(ctx, auction)
		}
		return model.Bid{}, fmt.Errorf("service: failed to record bid on auction %s by buyer %s: %w", auction.AuctionID, req.BuyerID, err)
	}

	utils.Info("Bid recorded", map[string]any{
		"auction_id": stored.AuctionID,
		"bid_id":     stored.BidID,
		"buyer_id":   stored.BuyerID,
		"total":      stored.Total.String(),
	})

	s.publish(ctx, auction)
	s.mirror.Replicate(auction, stored)
	return stored, nil
}

// GetLeaderboard returns the ranked bids of an auction. Archived auctions are
// served from their archive record.
func (s *BiddingService) GetLeaderboard(ctx context.Context, auctionID string) (model.Leaderboard, error) {
	auction, err := s.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Leaderboard{}, err
	}

	if auction.State == model.AuctionArchived {
		rec, err := s.archive.Get(ctx, auctionID)
		if err != nil {
			return model.Leaderboard{}, fmt.Errorf("service: failed to read archived leaderboard of %s: %w", auctionID, err)
		}
		return rec.Leaderboard, nil
	}

	bids, err := s.store.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return model.Leaderboard{}, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return leaderboard.Resolve(auction, bids), nil
}

// Subscribe streams leaderboard updates of an auction until ctx is cancelled or
// the auction is archived. The first update is a full snapshot.
func (s *BiddingService) Subscribe(ctx context.Context, auctionID string) (*leaderboard.Watcher, error) {
	if _, err := s.GetAuction(ctx, auctionID); err != nil {
		return nil, err
	}

	w := s.hub.Subscribe(ctx, auctionID)
	board, err := s.GetLeaderboard(ctx, auctionID)
	if err != nil {
		s.hub.Release(w)
		return nil, err
	}

	s.hub.Offer(w, board)
	if board.State == model.AuctionArchived {
		s.hub.Release(w)
	}
	return w, nil
}

// NotifyWinner sends the candidate-winner notification for bidID
func (s *BiddingService) NotifyWinner(ctx context.Context, auctionID, bidID, sellerID string) (model.NotificationRecord, error) {
	rec, err := s.dispatcher.NotifyWinner(ctx, auctionID, bidID, sellerID)
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("service: %w", err)
	}
	return rec, nil
}

// RespondToNotification records the buyer's accept or decline
func (s *BiddingService) RespondToNotification(ctx context.Context, notificationID, buyerID string, decision model.Decision) (model.NotificationRecord, error) {
	rec, err := s.dispatcher.Respond(ctx, notificationID, buyerID, decision)
	if err != nil {
		return model.NotificationRecord{}, fmt.Errorf("service: %w", err)
	}
	return rec, nil
}

// ListNotifications returns a buyer's notification inbox
func (s *BiddingService) ListNotifications(ctx context.Context, buyerID string) ([]model.NotificationRecord, error) {
	recs, err := s.dispatcher.ListForBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return recs, nil
}

// ListAuctionNotifications returns the notifications a seller sent for an auction
func (s *BiddingService) ListAuctionNotifications(ctx context.Context, auctionID, sellerID string) ([]model.NotificationRecord, error) {
	recs, err := s.dispatcher.ListForAuction(ctx, auctionID, sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return recs, nil
}

// GetMyBids returns the buyer's mirrored bids. The mirror may trail the ledger briefly.
func (s *BiddingService) GetMyBids(ctx context.Context, buyerID string) ([]model.BidMirrorEntry, error) {
	if buyerID == "" {
		return nil, fmt.Errorf("service: %w - missing buyer", biddingerrors.ErrUnauthorized)
	}

	entries, err := s.mirror.GetMyBids(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return entries, nil
}

// noticeExpiry is the lazy half of expiry: a reader that sees an active auction
// past its deadline expires it and hands archival to the scheduler.
func (s *BiddingService) noticeExpiry(ctx context.Context, auction model.Auction) model.Auction {
	if !auction.HasExpiredAt(s.clock.Now()) {
		return auction
	}

	if _, err := s.archiver.Expire(ctx, auction.AuctionID); err != nil {
		utils.Warn("Lazy expiry failed", map[string]any{
			"auction_id": auction.AuctionID,
			"error":      err.Error(),
		})
		return auction
	}
	s.scheduler.FireNow(auction.AuctionID)

	fresh, err := s.store.GetAuction(ctx, auction.AuctionID)
	if err != nil {
		auction.State = model.AuctionExpired
		return auction
	}
	return fresh
}

// publish pushes a fresh recompute to the auction's watchers
func (s *BiddingService) publish(ctx context.Context, auction model.Auction) {
	bids, err := s.store.GetBidsByAuction(ctx, auction.AuctionID)
	if err != nil {
		utils.Warn("Failed to recompute leaderboard after bid", map[string]any{
			"auction_id": auction.AuctionID,
			"error":      err.Error(),
		})
		return
	}
	s.hub.Publish(leaderboard.Resolve(auction, bids))
}
