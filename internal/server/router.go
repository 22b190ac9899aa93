package server

import (
	"net/http"

	"auction-engine/internal/config"
	handler "auction-engine/services/bidding/handler"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService handler.BiddingServiceInterface, cfg config.CORSConfig) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(NewCORSMiddleware(cfg))  // preflight requests carry no identity
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"healthy": true}, "ok")
	})

	biddingHandler := handler.NewBiddingHandler(biddingService)

	api := router.Group("", IdentityMiddleware)

	auctions := api.Group("/auctions")
	{
		auctions.POST("", biddingHandler.CreateAuctionHandler)
		auctions.GET("", biddingHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", biddingHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/bids", biddingHandler.PlaceBidHandler)
		auctions.GET("/:auction_id/leaderboard", biddingHandler.GetLeaderboardHandler)
		auctions.GET("/:auction_id/leaderboard/stream", biddingHandler.StreamLeaderboardHandler)
		auctions.POST("/:auction_id/notifications", biddingHandler.NotifyWinnerHandler)
		auctions.GET("/:auction_id/notifications", biddingHandler.ListAuctionNotificationsHandler)
	}

	notifications := api.Group("/notifications")
	{
		notifications.POST("/:notification_id/response", biddingHandler.RespondToNotificationHandler)
	}

	users := api.Group("/users")
	{
		users.GET("/:user_id/bids", biddingHandler.GetMyBidsHandler)
		users.GET("/:user_id/notifications", biddingHandler.ListNotificationsHandler)
	}

	return router
}
