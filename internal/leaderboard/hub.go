package leaderboard

import (
	"context"
	"sync"

	model "auction-engine/internal/models"
	"auction-engine/utils"
)

// Watcher receives leaderboard pushes for one auction. Updates holds at most the
// newest undelivered board; a slow reader skips intermediate versions but never
// sees an older board after a newer one. Done is closed when the stream ends,
// after which Updates may still hold one final board.
type Watcher struct {
	id        uint64
	auctionID string

	updates chan model.Leaderboard
	done    chan struct{}
	once    sync.Once

	// guarded by Hub.mu
	last      model.Leaderboard
	delivered bool
}

// Updates returns the channel of leaderboard pushes
func (w *Watcher) Updates() <-chan model.Leaderboard { return w.updates }

// Done is closed when the auction is archived or the watcher is released
func (w *Watcher) Done() <-chan struct{} { return w.done }

// AuctionID returns the watched auction
func (w *Watcher) AuctionID() string { return w.auctionID }

func (w *Watcher) finish() {
	w.once.Do(func() { close(w.done) })
}

// Hub fans leaderboard recomputations out to the watchers of each auction
type Hub struct {
	mu       sync.Mutex
	nextID   uint64
	watchers map[string]map[uint64]*Watcher // key: auctionID -> watcher id
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{watchers: make(map[string]map[uint64]*Watcher)}
}

// Subscribe registers a watcher for auctionID. The registration is released when
// ctx is cancelled, when Release is called, or when the auction is closed.
// Callers offer the cold snapshot with Offer right after subscribing so no
// ledger change between the two steps is missed.
func (h *Hub) Subscribe(ctx context.Context, auctionID string) *Watcher {
	h.mu.Lock()
	h.nextID++
	w := &Watcher{
		id:        h.nextID,
		auctionID: auctionID,
		updates:   make(chan model.Leaderboard, 1),
		done:      make(chan struct{}),
	}
	byID, ok := h.watchers[auctionID]
	if !ok {
		byID = make(map[uint64]*Watcher)
		h.watchers[auctionID] = byID
	}
	byID[w.id] = w
	h.mu.Unlock()

	utils.Debug("Leaderboard watcher subscribed", map[string]any{
		"auction_id": auctionID,
		"watcher_id": w.id,
	})

	go func() {
		select {
		case <-ctx.Done():
			h.Release(w)
		case <-w.done:
		}
	}()
	return w
}

// Offer delivers board to a single watcher if it is newer than what the watcher has seen
func (h *Hub) Offer(w *Watcher, board model.Leaderboard) {
	h.mu.Lock()
	defer h.mu.Unlock()
	deliver(w, board)
}

// Publish delivers board to every watcher of its auction
func (h *Hub) Publish(board model.Leaderboard) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, w := range h.watchers[board.AuctionID] {
		deliver(w, board)
	}
}

// Release unregisters a watcher and closes its Done channel. Safe to call more than once.
func (h *Hub) Release(w *Watcher) {
	h.mu.Lock()
	if byID, ok := h.watchers[w.auctionID]; ok {
		delete(byID, w.id)
		if len(byID) == 0 {
			delete(h.watchers, w.auctionID)
		}
	}
	h.mu.Unlock()

	w.finish()
	utils.Debug("Leaderboard watcher released", map[string]any{
		"auction_id": w.auctionID,
		"watcher_id": w.id,
	})
}

// CloseAuction ends every stream of an auction. Pending final boards stay readable.
func (h *Hub) CloseAuction(auctionID string) {
	h.mu.Lock()
	byID := h.watchers[auctionID]
	delete(h.watchers, auctionID)
	h.mu.Unlock()

	for _, w := range byID {
		w.finish()
	}
	if len(byID) > 0 {
		utils.Info("Leaderboard streams closed", map[string]any{
			"auction_id": auctionID,
			"watchers":   len(byID),
		})
	}
}

// WatcherCount returns the number of live watchers of an auction
func (h *Hub) WatcherCount(auctionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers[auctionID])
}

// deliver must be called with Hub.mu held; producers are serialized so the
// drain-then-send below never blocks.
func deliver(w *Watcher, board model.Leaderboard) {
	if w.delivered && !Newer(board, w.last) {
		return
	}
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- board:
		w.last = board
		w.delivered = true
	default:
	}
}
