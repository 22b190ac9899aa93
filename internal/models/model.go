package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionState is the lifecycle state of an auction. It only ever moves forward.
type AuctionState string

const (
	AuctionActive   AuctionState = "active"
	AuctionExpired  AuctionState = "expired"
	AuctionArchived AuctionState = "archived"
)

var stateOrder = map[AuctionState]int{
	AuctionActive:   0,
	AuctionExpired:  1,
	AuctionArchived: 2,
}

// Valid reports whether s is a known state
func (s AuctionState) Valid() bool {
	_, ok := stateOrder[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a single forward step
func (s AuctionState) CanTransitionTo(next AuctionState) bool {
	from, ok := stateOrder[s]
	if !ok {
		return false
	}
	to, ok := stateOrder[next]
	if !ok {
		return false
	}
	return to == from+1
}

// Before reports whether s comes earlier in the lifecycle than other
func (s AuctionState) Before(other AuctionState) bool {
	return stateOrder[s] < stateOrder[other]
}

// ServiceOption is an add-on service a seller offers with an auction
type ServiceOption struct {
	Label   string          `json:"label"`
	Price   decimal.Decimal `json:"price"`
	Enabled bool            `json:"enabled"`
}

// Auction represents a time-boxed listing for one product
type Auction struct {
	AuctionID     string                     `json:"auction_id"`
	ProductID     string                     `json:"product_id"`
	SellerID      string                     `json:"seller_id"`
	ProductName   string                     `json:"product_name"`
	Category      string                     `json:"category"`
	ImageRef      string                     `json:"image_ref,omitempty"`
	StartingPrice decimal.Decimal            `json:"starting_price"`
	Variations    map[string]decimal.Decimal `json:"variations"`
	Services      map[string]ServiceOption   `json:"services"`
	StartTime     time.Time                  `json:"start_time"`
	EndTime       time.Time                  `json:"end_time"`
	State         AuctionState               `json:"state"`
	CreatedAt     time.Time                  `json:"created_at"`
}

// IsOpenAt reports whether the auction accepts bids at the given instant
func (a Auction) IsOpenAt(now time.Time) bool {
	return a.State == AuctionActive && now.Before(a.EndTime)
}

// HasExpiredAt reports whether the listing is still marked active past its end time
func (a Auction) HasExpiredAt(now time.Time) bool {
	return a.State == AuctionActive && !now.Before(a.EndTime)
}

// AuctionDraft is what a seller submits to open an auction
type AuctionDraft struct {
	ProductID     string
	ProductName   string
	Category      string
	ImageRef      string
	StartingPrice decimal.Decimal
	Variations    map[string]decimal.Decimal
	Services      map[string]ServiceOption
	StartTime     time.Time
	EndTime       time.Time
}

// BidRequest is a buyer's submission before pricing
type BidRequest struct {
	AuctionID        string
	BuyerID          string
	BuyerDisplayName string
	Variation        string
	Services         []string
	BidAmount        decimal.Decimal
}

// SelectedService is a service chosen by a buyer, priced at bid time
type SelectedService struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// Bid represents a buyer's priced offer against an auction. Bids are never mutated once recorded.
type Bid struct {
	BidID            string            `json:"bid_id"`
	AuctionID        string            `json:"auction_id"`
	BuyerID          string            `json:"buyer_id"`
	BuyerDisplayName string            `json:"buyer_display_name"`
	Variation        string            `json:"variation"`
	Services         []SelectedService `json:"services"`
	BidAmount        decimal.Decimal   `json:"bid_amount"`
	Total            decimal.Decimal   `json:"total"`
	CreatedAt        time.Time         `json:"created_at"`
}

// RankedBid is one row of a leaderboard
type RankedBid struct {
	Rank             int             `json:"rank"`
	BidID            string          `json:"bid_id"`
	BuyerID          string          `json:"buyer_id"`
	BuyerDisplayName string          `json:"buyer_display_name"`
	Variation        string          `json:"variation"`
	Total            decimal.Decimal `json:"total"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Leaderboard is the ranked view of an auction's bids, derived from the ledger
type Leaderboard struct {
	AuctionID string       `json:"auction_id"`
	State     AuctionState `json:"state"`
	Version   int          `json:"version"`
	Highest   *RankedBid   `json:"highest,omitempty"`
	Bidders   []RankedBid  `json:"bidders"`
}

// NotificationState tracks the candidate-winner handshake
type NotificationState string

const (
	NotificationSent     NotificationState = "sent"
	NotificationAccepted NotificationState = "accepted"
	NotificationDeclined NotificationState = "declined"
)

// Decision is a buyer's answer to a winner notification
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

// Valid reports whether d is accept or decline
func (d Decision) Valid() bool {
	return d == DecisionAccept || d == DecisionDecline
}

// BidSnapshot is the denormalized view a buyer needs to decide on a notification
type BidSnapshot struct {
	ProductID   string            `json:"product_id"`
	ProductName string            `json:"product_name"`
	Category    string            `json:"category"`
	ImageRef    string            `json:"image_ref,omitempty"`
	Variation   string            `json:"variation"`
	Services    []SelectedService `json:"services"`
	BidAmount   decimal.Decimal   `json:"bid_amount"`
	Total       decimal.Decimal   `json:"total"`
}

// NotificationRecord is a seller's "you are the candidate winner" message to one bidder
type NotificationRecord struct {
	NotificationID string            `json:"notification_id"`
	AuctionID      string            `json:"auction_id"`
	BidID          string            `json:"bid_id"`
	SellerID       string            `json:"seller_id"`
	BuyerID        string            `json:"buyer_id"`
	State          NotificationState `json:"state"`
	Snapshot       BidSnapshot       `json:"snapshot"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// OrderHandoff is what the order-creation collaborator receives after an acceptance
type OrderHandoff struct {
	NotificationID string      `json:"notification_id"`
	AuctionID      string      `json:"auction_id"`
	BidID          string      `json:"bid_id"`
	BuyerID        string      `json:"buyer_id"`
	SellerID       string      `json:"seller_id"`
	Snapshot       BidSnapshot `json:"snapshot"`
}

// BidMirrorEntry is the buyer-side read copy of a bid. It is never authoritative.
type BidMirrorEntry struct {
	BuyerID     string          `json:"buyer_id"`
	AuctionID   string          `json:"auction_id"`
	BidID       string          `json:"bid_id"`
	ProductName string          `json:"product_name"`
	Variation   string          `json:"variation"`
	Total       decimal.Decimal `json:"total"`
	EndTime     time.Time       `json:"end_time"`
	CreatedAt   time.Time       `json:"created_at"`
	MirroredAt  time.Time       `json:"mirrored_at"`
}

// ArchiveRecord is the terminal snapshot of a closed auction
type ArchiveRecord struct {
	Auction     Auction     `json:"auction" cbor:"auction"`
	Leaderboard Leaderboard `json:"leaderboard" cbor:"leaderboard"`
	Bids        []Bid       `json:"bids" cbor:"bids"`
	ArchivedAt  time.Time   `json:"archived_at" cbor:"archived_at"`
}
