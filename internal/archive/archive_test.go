package archive

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/biddingerrors"
	model "auction-engine/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeObjects is an in-memory stand-in for the S3 object API
type fakeObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
	getErr  error
	lastCT  string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: make(map[string][]byte)}
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = body
	f.lastCT = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func sampleRecord() model.ArchiveRecord {
	end := time.Date(2026, 3, 1, 9, 1, 0, 0, time.UTC)
	bid := model.Bid{
		BidID:            "bid-y",
		AuctionID:        "auction-a",
		BuyerID:          "buyer-y",
		BuyerDisplayName: "Y",
		Variation:        "2kg",
		Services: []model.SelectedService{
			{Key: "clean", Label: "Cleaning", Price: decimal.RequireFromString("10.50")},
		},
		BidAmount: decimal.RequireFromString("949.50"),
		Total:     decimal.NewFromInt(960),
		CreatedAt: end.Add(-40*time.Second + 123456*time.Microsecond),
	}
	ranked := model.RankedBid{
		Rank:             1,
		BidID:            bid.BidID,
		BuyerID:          bid.BuyerID,
		BuyerDisplayName: bid.BuyerDisplayName,
		Variation:        bid.Variation,
		Total:            bid.Total,
		CreatedAt:        bid.CreatedAt,
	}
	return model.ArchiveRecord{
		Auction: model.Auction{
			AuctionID:     "auction-a",
			ProductID:     "prod-1",
			SellerID:      "seller-1",
			ProductName:   "King prawns",
			Category:      "shellfish",
			StartingPrice: decimal.NewFromInt(500),
			Variations: map[string]decimal.Decimal{
				"1kg": decimal.NewFromInt(500),
				"2kg": decimal.NewFromInt(950),
			},
			Services: map[string]model.ServiceOption{
				"clean": {Label: "Cleaning", Price: decimal.RequireFromString("10.50"), Enabled: true},
			},
			StartTime: end.Add(-time.Minute),
			EndTime:   end,
			State:     model.AuctionArchived,
			CreatedAt: end.Add(-2 * time.Minute),
		},
		Leaderboard: model.Leaderboard{
			AuctionID: "auction-a",
			State:     model.AuctionArchived,
			Version:   1,
			Highest:   &ranked,
			Bidders:   []model.RankedBid{ranked},
		},
		Bids:       []model.Bid{bid},
		ArchivedAt: end.Add(time.Second),
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "auction-a")
	require.ErrorIs(t, err, biddingerrors.ErrNotFound)

	rec := sampleRecord()
	require.NoError(t, store.Put(ctx, rec))
	require.NoError(t, store.Put(ctx, rec))
	require.Equal(t, 2, store.PutCount("auction-a"))

	got, err := store.Get(ctx, "auction-a")
	require.NoError(t, err)
	require.Equal(t, "King prawns", got.Auction.ProductName)

	err = store.Put(ctx, model.ArchiveRecord{})
	require.ErrorIs(t, err, biddingerrors.ErrInvalidAuction)
}

func TestS3Store_RoundTrip(t *testing.T) {
	ctx := context.Background()
	objects := newFakeObjects()
	store, err := NewS3Store(objects, "archive")
	require.NoError(t, err)

	rec := sampleRecord()
	require.NoError(t, store.Put(ctx, rec))
	require.Contains(t, objects.objects, "archive/"+ObjectKey("auction-a"))
	require.Equal(t, contentTypeCBOR, objects.lastCT)

	got, err := store.Get(ctx, "auction-a")
	require.NoError(t, err)
	if diff := cmp.Diff(rec, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("archive round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestS3Store_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_key", func(t *testing.T) {
		store, err := NewS3Store(newFakeObjects(), "archive")
		require.NoError(t, err)

		_, err = store.Get(ctx, "nope")
		require.ErrorIs(t, err, biddingerrors.ErrAuctionNotFound)
		require.False(t, biddingerrors.IsTransient(err))
	})

	t.Run("put_failure_is_transient", func(t *testing.T) {
		objects := newFakeObjects()
		objects.putErr = errors.New("connection reset by peer")
		store, err := NewS3Store(objects, "archive")
		require.NoError(t, err)

		err = store.Put(ctx, sampleRecord())
		require.Error(t, err)
		require.True(t, biddingerrors.IsTransient(err))
	})

	t.Run("get_failure_is_transient", func(t *testing.T) {
		objects := newFakeObjects()
		objects.getErr = errors.New("503 slow down")
		store, err := NewS3Store(objects, "archive")
		require.NoError(t, err)

		_, err = store.Get(ctx, "auction-a")
		require.True(t, biddingerrors.IsTransient(err))
	})

	t.Run("empty_auction_id", func(t *testing.T) {
		store, err := NewS3Store(newFakeObjects(), "archive")
		require.NoError(t, err)

		err = store.Put(ctx, model.ArchiveRecord{})
		require.ErrorIs(t, err, biddingerrors.ErrInvalidAuction)
	})
}
