package handler

import (
	"fmt"
	"net/http"

	machine "auctionhouse/internal/auctionMachine"
	model "auctionhouse/internal/models"
	"auctionhouse/services/auction/helpers"
	"auctionhouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BidLedgerInterface interface {
	SubmitBid(auctionID, bidderID string, value decimal.Decimal, productionTime, deliveryTime int, comments string) (model.Bid, error)
	ListBids(auctionID string) ([]model.Bid, error)
}

type AuctionMachineInterface interface {
	CreateAuction(p machine.CreateAuctionParams) (model.Auction, error)
	AcceptBid(auctionID, requesterID, bidID string) (model.Auction, error)
}

type ViewBuilderInterface interface {
	OpenAuctions() ([]model.AuctionView, error)
	MyAuctions(ownerID string) ([]model.AuctionView, error)
	MyBids(bidderID string) ([]model.AuctionView, error)
}

type AuctionHandler struct {
	ledger  BidLedgerInterface
	machine AuctionMachineInterface
	views   ViewBuilderInterface
}

func NewAuctionHandler(ledger BidLedgerInterface, machine AuctionMachineInterface, views ViewBuilderInterface) *AuctionHandler {
	return &AuctionHandler{ledger: ledger, machine: machine, views: views}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	params := machine.CreateAuctionParams{
		OwnerID:          req.OwnerID,
		Title:            req.Title,
		Description:      req.Description,
		Specs:            req.Specs,
		Deadline:         req.Deadline,
		EndDate:          req.EndDate,
		ReferenceFileURL: req.ReferenceFileURL,
	}
	if req.Budget != nil {
		params.Budget = decimal.NullDecimal{Decimal: *req.Budget, Valid: true}
	}

	auction, err := h.machine.CreateAuction(params)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"owner_id": req.OwnerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(auction), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"owner_id":   auction.OwnerID,
		"end_date":   auction.EndDate,
	})
}

// SubmitBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) SubmitBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bid, err := h.ledger.SubmitBid(auctionID, req.BidderID, req.Value, req.ProductionTime, req.DeliveryTime, req.Comments)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitBidHandler: failed to record bid", map[string]any{
			"auction_id": auctionID,
			"bidder_id":  req.BidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"bidder_id":  bid.BidderID,
		"value":      bid.Value.String(),
	})
}

// GetBidsHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bids, err := h.ledger.ListBids(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// AcceptBidHandler handles POST /auctions/:auction_id/accept-bid
func (h *AuctionHandler) AcceptBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.AcceptBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcceptBidHandler", err)
		return
	}

	auction, err := h.machine.AcceptBid(auctionID, req.RequesterID, req.BidID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AcceptBidHandler: failed to accept bid", map[string]any{
			"auction_id":   auctionID,
			"requester_id": req.RequesterID,
			"bid_id":       req.BidID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(auction), "bid accepted successfully")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", map[string]any{
		"auction_id":     auction.AuctionID,
		"winning_bid_id": auction.WinningBidID,
	})
}

// GetOpenAuctionsHandler handles GET /auctions
func (h *AuctionHandler) GetOpenAuctionsHandler(c *gin.Context) {
	auctions, err := h.views.OpenAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetOpenAuctionsHandler: error retrieving auctions", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "open auctions retrieved successfully")
	helpers.LogSuccess("GetOpenAuctionsHandler", "open auctions retrieved successfully", map[string]any{
		"count": len(auctions),
	})
}

// GetMyAuctionsHandler handles GET /users/:user_id/auctions
func (h *AuctionHandler) GetMyAuctionsHandler(c *gin.Context) {
	userID := c.Param("user_id")

	auctions, err := h.views.MyAuctions(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMyAuctionsHandler: error retrieving auctions", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("GetMyAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(auctions),
	})
}

// GetMyBidsHandler handles GET /users/:user_id/bids
func (h *AuctionHandler) GetMyBidsHandler(c *gin.Context) {
	userID := c.Param("user_id")

	auctions, err := h.views.MyBids(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetMyBidsHandler: error retrieving bid auctions", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "bid auctions retrieved successfully")
	helpers.LogSuccess("GetMyBidsHandler", "bid auctions retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(auctions),
	})
}
