package notification

import (
	"context"

	model "auction-engine/internal/models"
	"auction-engine/utils"
)

// OrderCreator turns an accepted bid into an order. Implementations must treat
// NotificationID as an idempotency key because handoffs are retried.
type OrderCreator interface {
	CreateOrder(ctx context.Context, handoff model.OrderHandoff) error
}

// EventKind names a notification lifecycle event
type EventKind string

const (
	EventSent     EventKind = "notification.sent"
	EventAccepted EventKind = "notification.accepted"
	EventDeclined EventKind = "notification.declined"
)

// Event is what the delivery collaborator receives for each record change
type Event struct {
	Kind   EventKind                `json:"kind"`
	Record model.NotificationRecord `json:"record"`
}

// Publisher alerts the addressed user. Delivery channels are owned by the collaborator.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogOrderCreator records handoffs in the log; the order service consumes them downstream
type LogOrderCreator struct{}

func (LogOrderCreator) CreateOrder(_ context.Context, handoff model.OrderHandoff) error {
	utils.Info("Order handoff", map[string]any{
		"notification_id": handoff.NotificationID,
		"auction_id":      handoff.AuctionID,
		"bid_id":          handoff.BidID,
		"buyer_id":        handoff.BuyerID,
		"seller_id":       handoff.SellerID,
		"total":           handoff.Snapshot.Total.String(),
	})
	return nil
}

// LogPublisher records delivery events in the log
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, event Event) error {
	utils.Info("Notification event", map[string]any{
		"kind":            string(event.Kind),
		"notification_id": event.Record.NotificationID,
		"auction_id":      event.Record.AuctionID,
		"buyer_id":        event.Record.BuyerID,
	})
	return nil
}
