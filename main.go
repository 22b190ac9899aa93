package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"auction-engine/internal/app"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/config"
	model "auction-engine/internal/models"
	"auction-engine/utils"

	"code.cloudfoundry.org/clock"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}
	if err := utils.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		utils.Warn("Invalid log settings, keeping defaults", map[string]any{"error": err.Error()})
	}

	application := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(clock.NewClock),
		app.Module,
		fx.Invoke(startServer, seedDemoAuctions),
	)

	if err := application.Start(context.Background()); err != nil {
		utils.Fatal("Failed to start auction engine", map[string]any{"error": err.Error()})
	}

	<-application.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := application.Stop(ctx); err != nil {
		utils.Error("Failed to stop auction engine cleanly", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	utils.Info("Auction engine stopped", nil)
}

// startServer serves the router for the lifetime of the fx app
func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, router *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			utils.Info("Starting auction server", map[string]any{"address": srv.Addr, "mode": gin.Mode()})
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					utils.Error("Auction server failed", map[string]any{"error": err.Error()})
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			utils.Info("Stopping auction server", nil)
			return srv.Shutdown(ctx)
		},
	})
}

// seedDemoAuctions lists a few sample auctions when SEED_DEMO_AUCTIONS is set
func seedDemoAuctions(lc fx.Lifecycle, svc *bidding.BiddingService, clk clock.Clock, cfg config.Config) {
	if !cfg.Seed {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			now := clk.Now()
			drafts := []model.AuctionDraft{
				{
					ProductID:     "demo-prawns",
					ProductName:   "Tiger prawns 1kg",
					Category:      "seafood",
					StartingPrice: decimal.NewFromInt(500),
					Variations: map[string]decimal.Decimal{
						"whole":  decimal.NewFromInt(500),
						"peeled": decimal.NewFromInt(650),
					},
					Services: map[string]model.ServiceOption{
						"clean":   {Label: "Cleaning", Price: decimal.RequireFromString("15.50"), Enabled: true},
						"deliver": {Label: "Delivery", Price: decimal.NewFromInt(30), Enabled: true},
					},
					EndTime: now.Add(30 * time.Minute),
				},
				{
					ProductID:     "demo-salmon",
					ProductName:   "Atlantic salmon fillet",
					Category:      "seafood",
					StartingPrice: decimal.NewFromInt(300),
					Variations: map[string]decimal.Decimal{
						"500g": decimal.NewFromInt(300),
						"1kg":  decimal.NewFromInt(560),
					},
					Services: map[string]model.ServiceOption{
						"deliver": {Label: "Delivery", Price: decimal.NewFromInt(30), Enabled: true},
						"freeze":  {Label: "Flash freezing", Price: decimal.NewFromInt(20), Enabled: false},
					},
					EndTime: now.Add(2 * time.Hour),
				},
			}

			for _, draft := range drafts {
				auction, err := svc.CreateAuction(ctx, "demo-seller", draft)
				if err != nil {
					return err
				}
				utils.Info("Seeded demo auction", map[string]any{
					"auction_id":   auction.AuctionID,
					"product_name": auction.ProductName,
				})
			}
			return nil
		},
	})
}
