package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/leaderboard"
	model "auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

type BiddingServiceInterface interface {
	CreateAuction(ctx context.Context, sellerID string, draft model.AuctionDraft) (model.Auction, error)
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context, state model.AuctionState) ([]model.Auction, error)
	SubmitBid(ctx context.Context, req model.BidRequest) (model.Bid, error)
	GetLeaderboard(ctx context.Context, auctionID string) (model.Leaderboard, error)
	Subscribe(ctx context.Context, auctionID string) (*leaderboard.Watcher, error)
	NotifyWinner(ctx context.Context, auctionID, bidID, sellerID string) (model.NotificationRecord, error)
	RespondToNotification(ctx context.Context, notificationID, buyerID string, decision model.Decision) (model.NotificationRecord, error)
	ListNotifications(ctx context.Context, buyerID string) ([]model.NotificationRecord, error)
	ListAuctionNotifications(ctx context.Context, auctionID, sellerID string) ([]model.NotificationRecord, error)
	GetMyBids(ctx context.Context, buyerID string) ([]model.BidMirrorEntry, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *BiddingHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	sellerID, _ := helpers.Caller(c)
	auction, err := h.service.CreateAuction(c.Request.Context(), sellerID, req.Draft())
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{
			"seller_id":  sellerID,
			"product_id": req.ProductID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  sellerID,
	})
}

// ListAuctionsHandler handles GET /auctions?state=
func (h *BiddingHandler) ListAuctionsHandler(c *gin.Context) {
	state := model.AuctionState(c.Query("state"))
	auctions, err := h.service.ListAuctions(c.Request.Context(), state)
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, map[string]any{"state": string(state)})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponses(auctions), "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *BiddingHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(auction), "auction retrieved successfully")
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	buyerID, buyerName := helpers.Caller(c)
	bid, err := h.service.SubmitBid(c.Request.Context(), model.BidRequest{
		AuctionID:        auctionID,
		BuyerID:          buyerID,
		BuyerDisplayName: buyerName,
		Variation:        req.Variation,
		Services:         req.Services,
		BidAmount:        req.BidAmount,
	})
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"buyer_id":   buyerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"buyer_id":   buyerID,
		"total":      bid.Total.String(),
	})
}

// GetLeaderboardHandler handles GET /auctions/:auction_id/leaderboard
func (h *BiddingHandler) GetLeaderboardHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	board, err := h.service.GetLeaderboard(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetLeaderboardHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToLeaderboardResponse(board), "leaderboard retrieved successfully")
}

// StreamLeaderboardHandler handles GET /auctions/:auction_id/leaderboard/stream.
// It sends a "leaderboard" event per update and a final "closed" event once the
// auction is archived.
func (h *BiddingHandler) StreamLeaderboardHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	watcher, err := h.service.Subscribe(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "StreamLeaderboardHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	events := 0
	c.Stream(func(w io.Writer) bool {
		select {
		case board := <-watcher.Updates():
			c.SSEvent("leaderboard", helpers.ToLeaderboardResponse(board))
			events++
			return true
		case <-watcher.Done():
			select {
			case board := <-watcher.Updates():
				c.SSEvent("leaderboard", helpers.ToLeaderboardResponse(board))
				events++
			default:
			}
			c.SSEvent("closed", gin.H{"auction_id": auctionID})
			return false
		case <-c.Request.Context().Done():
			return false
		}
	})

	helpers.LogSuccess("StreamLeaderboardHandler", "leaderboard stream ended", map[string]any{
		"auction_id": auctionID,
		"events":     events,
	})
}

// NotifyWinnerHandler handles POST /auctions/:auction_id/notifications
func (h *BiddingHandler) NotifyWinnerHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.NotifyWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "NotifyWinnerHandler", err)
		return
	}

	sellerID, _ := helpers.Caller(c)
	rec, err := h.service.NotifyWinner(c.Request.Context(), auctionID, req.BidID, sellerID)
	if err != nil {
		helpers.RespondError(c, "NotifyWinnerHandler", err, map[string]any{
			"auction_id": auctionID,
			"bid_id":     req.BidID,
			"seller_id":  sellerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToNotificationResponse(rec), "winner notified successfully")
	helpers.LogSuccess("NotifyWinnerHandler", "winner notified successfully", map[string]any{
		"notification_id": rec.NotificationID,
		"auction_id":      auctionID,
		"buyer_id":        rec.BuyerID,
	})
}

// ListAuctionNotificationsHandler handles GET /auctions/:auction_id/notifications
func (h *BiddingHandler) ListAuctionNotificationsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	sellerID, _ := helpers.Caller(c)

	recs, err := h.service.ListAuctionNotifications(c.Request.Context(), auctionID, sellerID)
	if err != nil {
		helpers.RespondError(c, "ListAuctionNotificationsHandler", err, map[string]any{
			"auction_id": auctionID,
			"seller_id":  sellerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToNotificationResponses(recs), "notifications retrieved successfully")
}

// RespondToNotificationHandler handles POST /notifications/:notification_id/response
func (h *BiddingHandler) RespondToNotificationHandler(c *gin.Context) {
	notificationID := c.Param("notification_id")

	var req helpers.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RespondToNotificationHandler", err)
		return
	}

	buyerID, _ := helpers.Caller(c)
	rec, err := h.service.RespondToNotification(c.Request.Context(), notificationID, buyerID, model.Decision(req.Decision))
	if err != nil {
		helpers.RespondError(c, "RespondToNotificationHandler", err, map[string]any{
			"notification_id": notificationID,
			"buyer_id":        buyerID,
			"decision":        req.Decision,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToNotificationResponse(rec), "notification "+string(rec.State))
	helpers.LogSuccess("RespondToNotificationHandler", "notification answered", map[string]any{
		"notification_id": notificationID,
		"buyer_id":        buyerID,
		"state":           string(rec.State),
	})
}

// GetMyBidsHandler handles GET /users/:user_id/bids
func (h *BiddingHandler) GetMyBidsHandler(c *gin.Context) {
	userID, ok := h.ownUser(c, "GetMyBidsHandler")
	if !ok {
		return
	}

	entries, err := h.service.GetMyBids(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetMyBidsHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToMyBidResponses(entries), "bids retrieved successfully")
	helpers.LogSuccess("GetMyBidsHandler", "bids retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(entries),
	})
}

// ListNotificationsHandler handles GET /users/:user_id/notifications
func (h *BiddingHandler) ListNotificationsHandler(c *gin.Context) {
	userID, ok := h.ownUser(c, "ListNotificationsHandler")
	if !ok {
		return
	}

	recs, err := h.service.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "ListNotificationsHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToNotificationResponses(recs), "notifications retrieved successfully")
}

// ownUser rejects reads of another user's private views
func (h *BiddingHandler) ownUser(c *gin.Context, handlerName string) (string, bool) {
	userID := c.Param("user_id")
	callerID, _ := helpers.Caller(c)
	if userID != callerID {
		err := fmt.Errorf("caller %s reading user %s: %w", callerID, userID, biddingerrors.ErrUnauthorized)
		helpers.RespondError(c, handlerName, err, map[string]any{"user_id": userID})
		return "", false
	}
	return userID, true
}
