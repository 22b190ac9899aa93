package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"auction-engine/internal/archive"
	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/config"
	"auction-engine/internal/leaderboard"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/stretchr/testify/require"
)

const retryEvery = 5 * time.Minute

// recordingCloser records the auctions it was asked to close
type recordingCloser struct {
	calls chan string
}

func newRecordingCloser() *recordingCloser {
	return &recordingCloser{calls: make(chan string, 16)}
}

func (c *recordingCloser) Close(_ context.Context, auctionID string) error {
	c.calls <- auctionID
	return nil
}

func (c *recordingCloser) expect(t *testing.T, auctionID string) {
	t.Helper()
	select {
	case got := <-c.calls:
		require.Equal(t, auctionID, got)
	case <-time.After(time.Second):
		t.Fatalf("auction %s was not closed", auctionID)
	}
}

func (c *recordingCloser) expectNone(t *testing.T) {
	t.Helper()
	select {
	case got := <-c.calls:
		t.Fatalf("unexpected close of auction %s", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestScheduler_FiresAtEndTime(t *testing.T) {
	clk := fakeclock.NewFakeClock(baseTime)
	closer := newRecordingCloser()
	s := NewScheduler(clk, closer, retryEvery)
	defer s.Stop()

	s.Schedule(newAuction("a1", time.Minute))
	require.Equal(t, 1, s.Pending())

	clk.Increment(59 * time.Second)
	closer.expectNone(t)

	clk.Increment(time.Second)
	closer.expect(t, "a1")
	require.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_PastEndFiresImmediately(t *testing.T) {
	clk := fakeclock.NewFakeClock(baseTime.Add(time.Hour))
	closer := newRecordingCloser()
	s := NewScheduler(clk, closer, retryEvery)
	defer s.Stop()

	s.Schedule(newAuction("a1", time.Minute))
	closer.expect(t, "a1")
}

func TestScheduler_ScheduleIsIdempotent(t *testing.T) {
	clk := fakeclock.NewFakeClock(baseTime)
	closer := newRecordingCloser()
	s := NewScheduler(clk, closer, retryEvery)
	defer s.Stop()

	a := newAuction("a1", time.Minute)
	s.Schedule(a)
	s.Schedule(a)
	require.Equal(t, 1, s.Pending())

	clk.Increment(time.Minute)
	closer.expect(t, "a1")
	closer.expectNone(t)
}

func TestScheduler_IgnoresClosedAuctions(t *testing.T) {
	s := NewScheduler(fakeclock.NewFakeClock(baseTime), newRecordingCloser(), retryEvery)
	defer s.Stop()

	for _, state := range []model.AuctionState{model.AuctionExpired, model.AuctionArchived} {
		a := newAuction("a-"+string(state), time.Minute)
		a.State = state
		s.Schedule(a)
	}
	require.Equal(t, 0, s.Pending())
}

// flakyCloser fails the first failures closes and records every attempt
type flakyCloser struct {
	recordingCloser
	failures int32
	err      error
}

func (c *flakyCloser) Close(ctx context.Context, auctionID string) error {
	_ = c.recordingCloser.Close(ctx, auctionID)
	if atomic.AddInt32(&c.failures, -1) >= 0 {
		return c.err
	}
	return nil
}

func TestScheduler_RetriesFailedClose(t *testing.T) {
	clk := fakeclock.NewFakeClock(baseTime)
	closer := &flakyCloser{recordingCloser: *newRecordingCloser(), failures: 2, err: errors.New("archive unavailable")}
	s := NewScheduler(clk, closer, retryEvery)
	defer s.Stop()

	s.Schedule(newAuction("a1", time.Minute))
	clk.Increment(time.Minute)
	closer.expect(t, "a1")

	for i := 0; i < 2; i++ {
		require.Eventually(t, func() bool { return s.Pending() == 1 }, time.Second, 5*time.Millisecond, "failed close is re-armed")
		clk.Increment(retryEvery - time.Second)
		closer.expectNone(t)
		clk.Increment(time.Second)
		closer.expect(t, "a1")
	}

	require.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
	clk.Increment(retryEvery)
	closer.expectNone(t)
}

func TestScheduler_RetriesFailedFireNow(t *testing.T) {
	clk := fakeclock.NewFakeClock(baseTime.Add(time.Hour))
	closer := &flakyCloser{recordingCloser: *newRecordingCloser(), failures: 1, err: errors.New("archive unavailable")}
	s := NewScheduler(clk, closer, retryEvery)
	defer s.Stop()

	s.FireNow("a1")
	closer.expect(t, "a1")
	require.Eventually(t, func() bool { return s.Pending() == 1 }, time.Second, 5*time.Millisecond)

	clk.Increment(retryEvery)
	closer.expect(t, "a1")
}

func TestScheduler_DoesNotRetryMissingAuction(t *testing.T) {
	clk := fakeclock.NewFakeClock(baseTime)
	closer := &flakyCloser{recordingCloser: *newRecordingCloser(), failures: 1, err: biddingerrors.ErrAuctionNotFound}
	s := NewScheduler(clk, closer, retryEvery)
	defer s.Stop()

	s.Schedule(newAuction("gone", time.Minute))
	clk.Increment(time.Minute)
	closer.expect(t, "gone")

	closer.expectNone(t)
	require.Equal(t, 0, s.Pending())
}

func TestScheduler_RecoverRetriesFailedArchive(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	expired := newAuction("expired", time.Minute)
	expired.State = model.AuctionExpired
	repo.AddAuction(expired)

	clk := fakeclock.NewFakeClock(baseTime.Add(time.Hour))
	closer := &flakyCloser{recordingCloser: *newRecordingCloser(), failures: 1, err: errors.New("archive unavailable")}
	s := NewScheduler(clk, closer, retryEvery)
	defer s.Stop()

	require.NoError(t, s.Recover(ctx, repo))
	closer.expect(t, "expired")
	require.Equal(t, 1, s.Pending())

	clk.Increment(retryEvery)
	closer.expect(t, "expired")
}

func TestScheduler_FireNowDisarmsTimer(t *testing.T) {
	clk := fakeclock.NewFakeClock(baseTime)
	closer := newRecordingCloser()
	s := NewScheduler(clk, closer, retryEvery)
	defer s.Stop()

	s.Schedule(newAuction("a1", time.Minute))
	s.FireNow("a1")
	closer.expect(t, "a1")
	require.Equal(t, 0, s.Pending())

	clk.Increment(2 * time.Minute)
	closer.expectNone(t)
}

func TestScheduler_StopDisarmsTimers(t *testing.T) {
	clk := fakeclock.NewFakeClock(baseTime)
	closer := newRecordingCloser()
	s := NewScheduler(clk, closer, retryEvery)

	s.Schedule(newAuction("a1", time.Minute))
	s.Stop()
	require.Equal(t, 0, s.Pending())

	clk.Increment(2 * time.Minute)
	closer.expectNone(t)

	s.Schedule(newAuction("a2", time.Minute))
	require.Equal(t, 0, s.Pending(), "a stopped scheduler accepts no new timers")
}

func TestScheduler_Recover(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	repo.AddAuction(newAuction("future", 2*time.Hour))
	repo.AddAuction(newAuction("overdue", time.Minute))
	expired := newAuction("expired", time.Minute)
	expired.State = model.AuctionExpired
	repo.AddAuction(expired)
	archived := newAuction("archived", time.Minute)
	archived.State = model.AuctionArchived
	repo.AddAuction(archived)

	clk := fakeclock.NewFakeClock(baseTime.Add(time.Hour))
	closer := newRecordingCloser()
	s := NewScheduler(clk, closer, retryEvery)
	defer s.Stop()

	require.NoError(t, s.Recover(ctx, repo))

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case id := <-closer.calls:
			got[id] = true
		case <-time.After(time.Second):
			t.Fatal("recovery did not close every overdue auction")
		}
	}
	require.Equal(t, map[string]bool{"overdue": true, "expired": true}, got)
	require.Equal(t, 1, s.Pending())
	closer.expectNone(t)
}

func TestScheduler_ArchivesThroughArchiver(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	store := archive.NewMemoryStore()
	clk := fakeclock.NewFakeClock(baseTime)

	a := newAuction("a1", time.Minute)
	repo.AddAuction(a)
	placeBid(t, repo, "a1", "buyer-x", 520, 10*time.Second)

	archiver := NewArchiver(repo, store, leaderboard.NewHub(), clk, config.NewTestConfig().Archive)
	s := NewScheduler(clk, archiver, retryEvery)
	defer s.Stop()

	s.Schedule(a)
	clk.Increment(time.Minute)

	require.Eventually(t, func() bool {
		got, err := repo.GetAuction(ctx, "a1")
		return err == nil && got.State == model.AuctionArchived
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, 1, store.PutCount("a1"))
}
