package perftests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"auction-engine/internal/app"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/config"
	model "auction-engine/internal/models"

	"code.cloudfoundry.org/clock"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// setupService starts an in-memory engine for the duration of tb
func setupService(tb testing.TB) *bidding.BiddingService {
	tb.Helper()

	cfg := config.NewTestConfig()
	cfg.Mirror.Workers = 8

	var svc *bidding.BiddingService
	application := fxtest.New(tb,
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(clock.NewClock),
		app.Module,
		fx.Populate(&svc),
	)
	application.RequireStart()
	tb.Cleanup(application.RequireStop)
	return svc
}

// seedAuctions lists n auctions that stay open well past the benchmark
func seedAuctions(tb testing.TB, svc *bidding.BiddingService, n int) []string {
	tb.Helper()

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		auction, err := svc.CreateAuction(context.Background(), fmt.Sprintf("seller_%d", i%5), model.AuctionDraft{
			ProductID:     fmt.Sprintf("product_%d", i),
			ProductName:   fmt.Sprintf("Load test lot %d", i),
			Category:      "seafood",
			StartingPrice: decimal.NewFromInt(100),
			Variations: map[string]decimal.Decimal{
				"whole":  decimal.NewFromInt(100),
				"fillet": decimal.NewFromInt(140),
			},
			Services: map[string]model.ServiceOption{
				"clean":   {Label: "Cleaning", Price: decimal.RequireFromString("15.50"), Enabled: true},
				"deliver": {Label: "Delivery", Price: decimal.NewFromInt(30), Enabled: true},
			},
			EndTime: time.Now().Add(24 * time.Hour),
		})
		if err != nil {
			tb.Fatalf("failed to seed auction: %v", err)
		}
		ids = append(ids, auction.AuctionID)
	}
	return ids
}

func bidRequest(auctionID, buyerID string, amount int64) model.BidRequest {
	return model.BidRequest{
		AuctionID:        auctionID,
		BuyerID:          buyerID,
		BuyerDisplayName: buyerID,
		Variation:        "whole",
		Services:         []string{"clean"},
		BidAmount:        decimal.NewFromInt(amount),
	}
}
