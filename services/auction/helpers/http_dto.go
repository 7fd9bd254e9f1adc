package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	OwnerID          string            `json:"owner_id" binding:"required"`
	Title            string            `json:"title" binding:"required"`
	Description      string            `json:"description"`
	Specs            map[string]string `json:"specs"`
	Budget           *decimal.Decimal  `json:"budget"`
	Deadline         time.Time         `json:"deadline"`
	EndDate          time.Time         `json:"end_date" binding:"required"`
	ReferenceFileURL string            `json:"reference_file_url"`
}

type SubmitBidRequest struct {
	BidderID       string          `json:"bidder_id" binding:"required"`
	Value          decimal.Decimal `json:"value" binding:"required"`
	ProductionTime int             `json:"production_time" binding:"min=0"`
	DeliveryTime   int             `json:"delivery_time" binding:"min=0"`
	Comments       string          `json:"comments"`
}

type AcceptBidRequest struct {
	RequesterID string `json:"requester_id" binding:"required"`
	BidID       string `json:"bid_id" binding:"required"`
}

type BidResponse struct {
	BidID          string          `json:"bid_id"`
	AuctionID      string          `json:"auction_id"`
	BidderID       string          `json:"bidder_id"`
	Value          decimal.Decimal `json:"value"`
	ProductionTime int             `json:"production_time"`
	DeliveryTime   int             `json:"delivery_time"`
	Comments       string          `json:"comments,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID    string `json:"auction_id"`
	OwnerID      string `json:"owner_id"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	WinningBidID string `json:"winning_bid_id,omitempty"`
	EndDate      string `json:"end_date"`
	CreatedAt    string `json:"created_at"`
}
