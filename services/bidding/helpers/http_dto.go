package helpers

import (
	"time"

	model "auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Request DTOs

type ServiceOptionRequest struct {
	Label   string          `json:"label" binding:"required"`
	Price   decimal.Decimal `json:"price"`
	Enabled bool            `json:"enabled"`
}

type CreateAuctionRequest struct {
	ProductID     string                          `json:"product_id" binding:"required"`
	ProductName   string                          `json:"product_name" binding:"required"`
	Category      string                          `json:"category"`
	ImageRef      string                          `json:"image_ref"`
	StartingPrice decimal.Decimal                 `json:"starting_price"`
	Variations    map[string]decimal.Decimal      `json:"variations" binding:"required,min=1"`
	Services      map[string]ServiceOptionRequest `json:"services"`
	StartTime     *time.Time                      `json:"start_time"`
	EndTime       time.Time                       `json:"end_time" binding:"required"`
}

type PlaceBidRequest struct {
	Variation string          `json:"variation" binding:"required"`
	Services  []string        `json:"services"`
	BidAmount decimal.Decimal `json:"bid_amount"`
}

type NotifyWinnerRequest struct {
	BidID string `json:"bid_id" binding:"required"`
}

type RespondRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// Draft converts the request into the engine's listing input
func (r CreateAuctionRequest) Draft() model.AuctionDraft {
	draft := model.AuctionDraft{
		ProductID:     r.ProductID,
		ProductName:   r.ProductName,
		Category:      r.Category,
		ImageRef:      r.ImageRef,
		StartingPrice: r.StartingPrice,
		Variations:    r.Variations,
		Services:      make(map[string]model.ServiceOption, len(r.Services)),
		EndTime:       r.EndTime,
	}
	if r.StartTime != nil {
		draft.StartTime = *r.StartTime
	}
	for key, s := range r.Services {
		draft.Services[key] = model.ServiceOption{Label: s.Label, Price: s.Price, Enabled: s.Enabled}
	}
	return draft
}

// Response DTOs

type AuctionResponse struct {
	AuctionID     string                          `json:"auction_id"`
	ProductID     string                          `json:"product_id"`
	SellerID      string                          `json:"seller_id"`
	ProductName   string                          `json:"product_name"`
	Category      string                          `json:"category"`
	ImageRef      string                          `json:"image_ref,omitempty"`
	StartingPrice string                          `json:"starting_price"`
	Variations    map[string]string               `json:"variations"`
	Services      map[string]ServiceOptionPayload `json:"services"`
	StartTime     string                          `json:"start_time"`
	EndTime       string                          `json:"end_time"`
	State         string                          `json:"state"`
}

type ServiceOptionPayload struct {
	Label   string `json:"label"`
	Price   string `json:"price"`
	Enabled bool   `json:"enabled"`
}

type SelectedServicePayload struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Price string `json:"price"`
}

type BidResponse struct {
	BidID            string                   `json:"bid_id"`
	AuctionID        string                   `json:"auction_id"`
	BuyerID          string                   `json:"buyer_id"`
	BuyerDisplayName string                   `json:"buyer_display_name"`
	Variation        string                   `json:"variation"`
	Services         []SelectedServicePayload `json:"services"`
	BidAmount        string                   `json:"bid_amount"`
	Total            string                   `json:"total"`
	CreatedAt        string                   `json:"created_at"`
}

type RankedBidResponse struct {
	Rank             int    `json:"rank"`
	BidID            string `json:"bid_id"`
	BuyerID          string `json:"buyer_id"`
	BuyerDisplayName string `json:"buyer_display_name"`
	Variation        string `json:"variation"`
	Total            string `json:"total"`
	CreatedAt        string `json:"created_at"`
}

type LeaderboardResponse struct {
	AuctionID string              `json:"auction_id"`
	State     string              `json:"state"`
	Version   int                 `json:"version"`
	Highest   *RankedBidResponse  `json:"highest"`
	Bidders   []RankedBidResponse `json:"bidders"`
}

type SnapshotPayload struct {
	ProductID   string                   `json:"product_id"`
	ProductName string                   `json:"product_name"`
	Category    string                   `json:"category"`
	ImageRef    string                   `json:"image_ref,omitempty"`
	Variation   string                   `json:"variation"`
	Services    []SelectedServicePayload `json:"services"`
	BidAmount   string                   `json:"bid_amount"`
	Total       string                   `json:"total"`
}

type NotificationResponse struct {
	NotificationID string          `json:"notification_id"`
	AuctionID      string          `json:"auction_id"`
	BidID          string          `json:"bid_id"`
	SellerID       string          `json:"seller_id"`
	BuyerID        string          `json:"buyer_id"`
	State          string          `json:"state"`
	Snapshot       SnapshotPayload `json:"snapshot"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

type MyBidResponse struct {
	AuctionID   string `json:"auction_id"`
	BidID       string `json:"bid_id"`
	ProductName string `json:"product_name"`
	Variation   string `json:"variation"`
	Total       string `json:"total"`
	EndTime     string `json:"end_time"`
	CreatedAt   string `json:"created_at"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func toServicePayloads(services []model.SelectedService) []SelectedServicePayload {
	out := make([]SelectedServicePayload, 0, len(services))
	for _, s := range services {
		out = append(out, SelectedServicePayload{Key: s.Key, Label: s.Label, Price: s.Price.StringFixed(2)})
	}
	return out
}

func ToAuctionResponse(a model.Auction) AuctionResponse {
	resp := AuctionResponse{
		AuctionID:     a.AuctionID,
		ProductID:     a.ProductID,
		SellerID:      a.SellerID,
		ProductName:   a.ProductName,
		Category:      a.Category,
		ImageRef:      a.ImageRef,
		StartingPrice: a.StartingPrice.StringFixed(2),
		Variations:    make(map[string]string, len(a.Variations)),
		Services:      make(map[string]ServiceOptionPayload, len(a.Services)),
		StartTime:     formatTime(a.StartTime),
		EndTime:       formatTime(a.EndTime),
		State:         string(a.State),
	}
	for label, price := range a.Variations {
		resp.Variations[label] = price.StringFixed(2)
	}
	for key, s := range a.Services {
		resp.Services[key] = ServiceOptionPayload{Label: s.Label, Price: s.Price.StringFixed(2), Enabled: s.Enabled}
	}
	return resp
}

func ToAuctionResponses(auctions []model.Auction) []AuctionResponse {
	out := make([]AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, ToAuctionResponse(a))
	}
	return out
}

func ToBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:            b.BidID,
		AuctionID:        b.AuctionID,
		BuyerID:          b.BuyerID,
		BuyerDisplayName: b.BuyerDisplayName,
		Variation:        b.Variation,
		Services:         toServicePayloads(b.Services),
		BidAmount:        b.BidAmount.StringFixed(2),
		Total:            b.Total.StringFixed(2),
		CreatedAt:        formatTime(b.CreatedAt),
	}
}

func toRankedBidResponse(rb model.RankedBid) RankedBidResponse {
	return RankedBidResponse{
		Rank:             rb.Rank,
		BidID:            rb.BidID,
		BuyerID:          rb.BuyerID,
		BuyerDisplayName: rb.BuyerDisplayName,
		Variation:        rb.Variation,
		Total:            rb.Total.StringFixed(2),
		CreatedAt:        formatTime(rb.CreatedAt),
	}
}

func ToLeaderboardResponse(board model.Leaderboard) LeaderboardResponse {
	resp := LeaderboardResponse{
		AuctionID: board.AuctionID,
		State:     string(board.State),
		Version:   board.Version,
		Bidders:   make([]RankedBidResponse, 0, len(board.Bidders)),
	}
	for _, rb := range board.Bidders {
		resp.Bidders = append(resp.Bidders, toRankedBidResponse(rb))
	}
	if board.Highest != nil {
		top := toRankedBidResponse(*board.Highest)
		resp.Highest = &top
	}
	return resp
}

func ToNotificationResponse(rec model.NotificationRecord) NotificationResponse {
	return NotificationResponse{
		NotificationID: rec.NotificationID,
		AuctionID:      rec.AuctionID,
		BidID:          rec.BidID,
		SellerID:       rec.SellerID,
		BuyerID:        rec.BuyerID,
		State:          string(rec.State),
		Snapshot: SnapshotPayload{
			ProductID:   rec.Snapshot.ProductID,
			ProductName: rec.Snapshot.ProductName,
			Category:    rec.Snapshot.Category,
			ImageRef:    rec.Snapshot.ImageRef,
			Variation:   rec.Snapshot.Variation,
			Services:    toServicePayloads(rec.Snapshot.Services),
			BidAmount:   rec.Snapshot.BidAmount.StringFixed(2),
			Total:       rec.Snapshot.Total.StringFixed(2),
		},
		CreatedAt: formatTime(rec.CreatedAt),
		UpdatedAt: formatTime(rec.UpdatedAt),
	}
}

func ToNotificationResponses(recs []model.NotificationRecord) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ToNotificationResponse(rec))
	}
	return out
}

func ToMyBidResponses(entries []model.BidMirrorEntry) []MyBidResponse {
	out := make([]MyBidResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, MyBidResponse{
			AuctionID:   e.AuctionID,
			BidID:       e.BidID,
			ProductName: e.ProductName,
			Variation:   e.Variation,
			Total:       e.Total.StringFixed(2),
			EndTime:     formatTime(e.EndTime),
			CreatedAt:   formatTime(e.CreatedAt),
		})
	}
	return out
}
