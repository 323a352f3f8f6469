package server

import (
	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/userdata"
	auctionhandler "auction-house/services/auction/handler"
	userhandler "auction-house/services/user/handler"
	voicehandler "auction-house/services/voice/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application.
func SetupRouter(auctionSvc *auction.AuctionService, users *userdata.UserStore, cfg config.Config) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(auctionSvc, users, auctionhandler.StreamConfig{
		Interval:  cfg.StreamInterval,
		Heartbeat: cfg.HeartbeatInterval,
	})
	userHandler := userhandler.NewUserHandler(users)
	webhookHandler := voicehandler.NewWebhookHandler(auctionSvc)

	api := router.Group("/api")

	auctions := api.Group("/auction")
	{
		auctions.GET("/list", auctionHandler.ListHandler)
		auctions.POST("/bid", auctionHandler.PlaceBidHandler)
		auctions.GET("/stream", auctionHandler.StreamHandler)
	}

	user := api.Group("/user")
	{
		user.GET("/bids", userHandler.GetBidsHandler)
		user.GET("/watchlist", userHandler.GetWatchlistHandler)
		user.POST("/watchlist", userHandler.UpdateWatchlistHandler)
	}

	api.POST("/omnidimension/webhook", webhookHandler.WebhookHandler)

	return router
}
