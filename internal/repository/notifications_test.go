package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"

	"github.com/stretchr/testify/require"
)

func newNotification(id, auctionID, bidID, buyerID string, createdAt time.Time) model.NotificationRecord {
	return model.NotificationRecord{
		NotificationID: id,
		AuctionID:      auctionID,
		BidID:          bidID,
		SellerID:       "seller1",
		BuyerID:        buyerID,
		State:          model.NotificationSent,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
}

func TestMemoryRepo_CreateNotification(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	rec, created, err := repo.CreateNotification(ctx, newNotification("n1", "a1", "b1", "y", baseTime))
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "n1", rec.NotificationID)

	// idempotent while the record is Sent
	rec, created, err = repo.CreateNotification(ctx, newNotification("n2", "a1", "b1", "y", baseTime.Add(time.Second)))
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "n1", rec.NotificationID)

	// a declined record can be superseded
	_, err = repo.RespondToNotification(ctx, "n1", model.DecisionDecline, baseTime.Add(2*time.Second))
	require.NoError(t, err)
	rec, created, err = repo.CreateNotification(ctx, newNotification("n3", "a1", "b1", "y", baseTime.Add(3*time.Second)))
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "n3", rec.NotificationID)

	list, err := repo.ListNotificationsByAuction(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "n3", list[0].NotificationID)

	byBuyer, err := repo.ListNotificationsByBuyer(ctx, "y")
	require.NoError(t, err)
	require.Len(t, byBuyer, 2)

	none, err := repo.ListNotificationsByBuyer(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemoryRepo_RespondToNotification(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(t *testing.T, r *MemoryRepo)
		id        string
		decision  model.Decision
		wantErr   error
		wantState model.NotificationState
	}{
		{
			name:      "accept_sent",
			setup:     func(t *testing.T, r *MemoryRepo) { mustCreate(t, r, newNotification("n1", "a1", "b1", "y", baseTime)) },
			id:        "n1",
			decision:  model.DecisionAccept,
			wantState: model.NotificationAccepted,
		},
		{
			name:      "decline_sent",
			setup:     func(t *testing.T, r *MemoryRepo) { mustCreate(t, r, newNotification("n1", "a1", "b1", "y", baseTime)) },
			id:        "n1",
			decision:  model.DecisionDecline,
			wantState: model.NotificationDeclined,
		},
		{
			name:     "not_found",
			setup:    func(t *testing.T, r *MemoryRepo) {},
			id:       "missing",
			decision: model.DecisionAccept,
			wantErr:  biddingerrors.ErrNotificationNotFound,
		},
		{
			name: "second_accept_loses",
			setup: func(t *testing.T, r *MemoryRepo) {
				mustCreate(t, r, newNotification("n1", "a1", "b1", "y", baseTime))
				mustCreate(t, r, newNotification("n2", "a1", "b2", "x", baseTime))
				_, err := r.RespondToNotification(ctx, "n1", model.DecisionAccept, baseTime)
				require.NoError(t, err)
			},
			id:       "n2",
			decision: model.DecisionAccept,
			wantErr:  biddingerrors.ErrAlreadyAccepted,
		},
		{
			name: "decline_after_other_accept",
			setup: func(t *testing.T, r *MemoryRepo) {
				mustCreate(t, r, newNotification("n1", "a1", "b1", "y", baseTime))
				mustCreate(t, r, newNotification("n2", "a1", "b2", "x", baseTime))
				_, err := r.RespondToNotification(ctx, "n1", model.DecisionAccept, baseTime)
				require.NoError(t, err)
			},
			id:        "n2",
			decision:  model.DecisionDecline,
			wantState: model.NotificationDeclined,
		},
		{
			name: "already_responded",
			setup: func(t *testing.T, r *MemoryRepo) {
				mustCreate(t, r, newNotification("n1", "a1", "b1", "y", baseTime))
				_, err := r.RespondToNotification(ctx, "n1", model.DecisionDecline, baseTime)
				require.NoError(t, err)
			},
			id:       "n1",
			decision: model.DecisionAccept,
			wantErr:  biddingerrors.ErrInvalidTransition,
		},
		{
			name:     "unknown_decision",
			setup:    func(t *testing.T, r *MemoryRepo) { mustCreate(t, r, newNotification("n1", "a1", "b1", "y", baseTime)) },
			id:       "n1",
			decision: model.Decision("maybe"),
			wantErr:  biddingerrors.ErrInvalidTransition,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := NewMemoryRepo()
			tc.setup(t, repo)

			rec, err := repo.RespondToNotification(ctx, tc.id, tc.decision, baseTime.Add(time.Minute))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantState, rec.State)
			require.Equal(t, baseTime.Add(time.Minute), rec.UpdatedAt)

			stored, err := repo.GetNotification(ctx, tc.id)
			require.NoError(t, err)
			require.Equal(t, rec, stored)
		})
	}
}

func TestMemoryRepo_ConcurrentAccepts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemoryRepo()

	const n = 25
	for i := 0; i < n; i++ {
		mustCreate(t, repo, newNotification(fmt.Sprintf("n%d", i), "a1", fmt.Sprintf("b%d", i), fmt.Sprintf("buyer%d", i), baseTime))
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		lost     int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			_, err := repo.RespondToNotification(ctx, fmt.Sprintf("n%d", i), model.DecisionAccept, baseTime)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
				return
			}
			require.ErrorIs(t, err, biddingerrors.ErrAlreadyAccepted)
			lost++
		}()
	}
	wg.Wait()

	require.Equal(t, 1, accepted)
	require.Equal(t, n-1, lost)
}

func mustCreate(t *testing.T, r *MemoryRepo, rec model.NotificationRecord) {
	t.Helper()
	_, created, err := r.CreateNotification(context.Background(), rec)
	require.NoError(t, err)
	require.True(t, created)
}
