package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	StatusOpen    AuctionStatus = "open"
	StatusClosed  AuctionStatus = "closed"
	StatusExpired AuctionStatus = "expired"
)

// FallbackBidderLabel is shown when a bidder's profile cannot be resolved.
const FallbackBidderLabel = "Print Shop"

// User carries the display metadata joined onto bids in views.
type User struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// DisplayLabel returns the name shown next to a bid: personal name first,
// then company name, then the generic fallback.
func (u User) DisplayLabel() string {
	if u.Name != "" {
		return u.Name
	}
	if u.CompanyName != "" {
		return u.CompanyName
	}
	return FallbackBidderLabel
}

// Auction represents a print-job auction posted by a client.
type Auction struct {
	AuctionID        string              `json:"auction_id"`
	OwnerID          string              `json:"owner_id"`
	Title            string              `json:"title"`
	Description      string              `json:"description,omitempty"`
	Specs            map[string]string   `json:"specs,omitempty"`
	Budget           decimal.NullDecimal `json:"budget"`
	Deadline         time.Time           `json:"deadline"`
	EndDate          time.Time           `json:"end_date"`
	Status           AuctionStatus       `json:"status"`
	WinningBidID     string              `json:"winning_bid_id,omitempty"`
	ReferenceFileURL string              `json:"reference_file_url,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

// Bid represents a print shop's offer on an auction. Bids are immutable
// once recorded: no edits, no retraction.
type Bid struct {
	BidID          string          `json:"bid_id"`
	AuctionID      string          `json:"auction_id"`
	BidderID       string          `json:"bidder_id"`
	Value          decimal.Decimal `json:"value"`
	ProductionTime int             `json:"production_time"`
	DeliveryTime   int             `json:"delivery_time"`
	Comments       string          `json:"comments,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BidView is a bid joined with its bidder's display label.
type BidView struct {
	Bid
	Bidder string `json:"bidder"`
}

// AuctionView is an auction with its ordered, bidder-labelled bids.
type AuctionView struct {
	Auction
	Bids []BidView `json:"bids"`
}
