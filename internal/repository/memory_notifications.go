package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
)

// CreateNotification stores rec unless a Sent or Accepted record already exists for
// the same auction and bid, in which case the existing record is returned with created=false.
func (r *MemoryRepo) CreateNotification(_ context.Context, rec model.NotificationRecord) (model.NotificationRecord, bool, error) {
	r.notifMu.Lock()
	defer r.notifMu.Unlock()

	for _, id := range r.notificationsByAucID[rec.AuctionID] {
		existing := r.notifications[id]
		if existing.BidID == rec.BidID && existing.State != model.NotificationDeclined {
			return existing, false, nil
		}
	}

	r.notifications[rec.NotificationID] = rec
	r.notificationsByAucID[rec.AuctionID] = append(r.notificationsByAucID[rec.AuctionID], rec.NotificationID)
	return rec, true, nil
}

// GetNotification returns one notification record
func (r *MemoryRepo) GetNotification(_ context.Context, notificationID string) (model.NotificationRecord, error) {
	r.notifMu.Lock()
	defer r.notifMu.Unlock()

	rec, ok := r.notifications[notificationID]
	if !ok {
		return model.NotificationRecord{}, fmt.Errorf("get notification %s: %w", notificationID, biddingerrors.ErrNotificationNotFound)
	}
	return rec, nil
}

// ListNotificationsByBuyer returns a buyer's notifications, newest first
func (r *MemoryRepo) ListNotificationsByBuyer(_ context.Context, buyerID string) ([]model.NotificationRecord, error) {
	r.notifMu.Lock()
	defer r.notifMu.Unlock()

	out := make([]model.NotificationRecord, 0)
	for _, rec := range r.notifications {
		if rec.BuyerID == buyerID {
			out = append(out, rec)
		}
	}
	sortNotifications(out)
	return out, nil
}

// ListNotificationsByAuction returns an auction's notifications, newest first
func (r *MemoryRepo) ListNotificationsByAuction(_ context.Context, auctionID string) ([]model.NotificationRecord, error) {
	r.notifMu.Lock()
	defer r.notifMu.Unlock()

	ids := r.notificationsByAucID[auctionID]
	out := make([]model.NotificationRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.notifications[id])
	}
	sortNotifications(out)
	return out, nil
}

// RespondToNotification applies a buyer decision to a Sent record. Accepting fails with
// ErrAlreadyAccepted if any record of the same auction is already Accepted.
func (r *MemoryRepo) RespondToNotification(_ context.Context, notificationID string, decision model.Decision, at time.Time) (model.NotificationRecord, error) {
	r.notifMu.Lock()
	defer r.notifMu.Unlock()

	rec, ok := r.notifications[notificationID]
	if !ok {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: %w", notificationID, biddingerrors.ErrNotificationNotFound)
	}
	if rec.State != model.NotificationSent {
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s in state %s: %w", notificationID, rec.State, biddingerrors.ErrInvalidTransition)
	}

	switch decision {
	case model.DecisionAccept:
		for _, id := range r.notificationsByAucID[rec.AuctionID] {
			if r.notifications[id].State == model.NotificationAccepted {
				return model.NotificationRecord{}, fmt.Errorf("accept notification %s: %w", notificationID, biddingerrors.ErrAlreadyAccepted)
			}
		}
		rec.State = model.NotificationAccepted
	case model.DecisionDecline:
		rec.State = model.NotificationDeclined
	default:
		return model.NotificationRecord{}, fmt.Errorf("respond to notification %s: %w - unknown decision %q", notificationID, biddingerrors.ErrInvalidTransition, decision)
	}

	rec.UpdatedAt = at
	r.notifications[notificationID] = rec
	return rec, nil
}

func sortNotifications(recs []model.NotificationRecord) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].NotificationID < recs[j].NotificationID
		}
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
}
