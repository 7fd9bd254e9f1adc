package server

import (
	handler "auctionhouse/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(ledger handler.BidLedgerInterface, machine handler.AuctionMachineInterface, views handler.ViewBuilderInterface, feed *LiveFeedHandler) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(ledger, machine, views)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.GetOpenAuctionsHandler)
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.SubmitBidHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetBidsHandler)
		auctions.POST("/:auction_id/accept-bid", auctionHandler.AcceptBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/auctions", auctionHandler.GetMyAuctionsHandler)
		users.GET("/:user_id/bids", auctionHandler.GetMyBidsHandler)
	}

	if feed != nil {
		router.GET("/live", feed.Handle)
	}

	return router
}
