package archive

import (
	"context"
	"fmt"
	"sync"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"
)

//go:generate mockgen -source=archive.go -destination=mock_archive.go -package=archive

// Store is the read-only long-term home of closed auctions.
// Put must be idempotent: writing the same auction twice keeps one record.
type Store interface {
	Put(ctx context.Context, rec model.ArchiveRecord) error
	Get(ctx context.Context, auctionID string) (model.ArchiveRecord, error)
}

// MemoryStore keeps archive records in process memory
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]model.ArchiveRecord // key: auctionID
	puts    map[string]int
}

// NewMemoryStore creates an empty in-memory archive
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]model.ArchiveRecord),
		puts:    make(map[string]int),
	}
}

// Put stores or overwrites the record of an auction
func (m *MemoryStore) Put(_ context.Context, rec model.ArchiveRecord) error {
	if rec.Auction.AuctionID == "" {
		return fmt.Errorf("archive put: %w - empty auction id", biddingerrors.ErrInvalidAuction)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.Auction.AuctionID] = rec
	m.puts[rec.Auction.AuctionID]++
	return nil
}

// Get returns the archived record of an auction
func (m *MemoryStore) Get(_ context.Context, auctionID string) (model.ArchiveRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[auctionID]
	if !ok {
		return model.ArchiveRecord{}, fmt.Errorf("archive get %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}
	return rec, nil
}

// PutCount returns how many times an auction was written. Used by tests.
func (m *MemoryStore) PutCount(auctionID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.puts[auctionID]
}
