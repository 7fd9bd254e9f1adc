package ledger

import (
	"fmt"

	"auctionhouse/internal/auctionerrors"
	"auctionhouse/internal/clock"
	"auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/utils"

	"github.com/shopspring/decimal"
)

// Notifier receives a bid after it has been durably recorded.
type Notifier interface {
	BidPlaced(bid models.Bid)
}

// BidLedger holds the append-only bid log for auctions: it validates
// submissions, records them, and announces them to viewers.
type BidLedger struct {
	store    repository.AuctionStore
	clock    clock.Clock
	notifier Notifier
}

// NewBidLedger creates a new BidLedger instance.
func NewBidLedger(store repository.AuctionStore, clk clock.Clock, notifier Notifier) *BidLedger {
	return &BidLedger{
		store:    store,
		clock:    clk,
		notifier: notifier,
	}
}

// SubmitBid validates and records a print shop's bid on an auction. The
// bid is durably stored before the call returns; the live-feed publish
// happens after the write so no announced bid can be lost.
func (l *BidLedger) SubmitBid(auctionID, bidderID string, value decimal.Decimal, productionTime, deliveryTime int, comments string) (models.Bid, error) {
	if err := l.validateInput(auctionID, bidderID, value, productionTime, deliveryTime); err != nil {
		return models.Bid{}, err
	}

	auction, err := l.store.GetAuction(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to resolve auction %s: %w", auctionID, err)
	}

	if bidderID == auction.OwnerID {
		return models.Bid{}, fmt.Errorf("ledger: %w - owner cannot bid on own auction", auctionerrors.ErrInvalidInput)
	}
	if auction.Status != models.StatusOpen {
		return models.Bid{}, fmt.Errorf("ledger: auction %s is %s: %w", auctionID, auction.Status, auctionerrors.ErrNotOpen)
	}

	now := l.clock.Now().UTC()
	if !now.Before(auction.EndDate) {
		return models.Bid{}, fmt.Errorf("ledger: bidding on auction %s ended at %s: %w", auctionID, auction.EndDate, auctionerrors.ErrNotOpen)
	}

	bid := models.Bid{
		BidID:          utils.GenerateID(),
		AuctionID:      auctionID,
		BidderID:       bidderID,
		Value:          value,
		ProductionTime: productionTime,
		DeliveryTime:   deliveryTime,
		Comments:       comments,
		CreatedAt:      now,
	}

	if err := l.store.CreateBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to record bid on auction %s by %s: %w", auctionID, bidderID, err)
	}

	l.notifier.BidPlaced(bid)
	return bid, nil
}

// validateInput checks field-level validity before any store access.
func (l *BidLedger) validateInput(auctionID, bidderID string, value decimal.Decimal, productionTime, deliveryTime int) error {
	if auctionID == "" || bidderID == "" {
		return fmt.Errorf("ledger: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidInput)
	}
	if !value.IsPositive() {
		return fmt.Errorf("ledger: %w - bid value must be positive", auctionerrors.ErrInvalidInput)
	}
	if productionTime < 0 || deliveryTime < 0 {
		return fmt.Errorf("ledger: %w - negative production or delivery time", auctionerrors.ErrInvalidInput)
	}
	return nil
}

// ListBids returns the bids on an auction ordered by value ascending,
// earlier bid first on ties. Valid for auctions in any state.
func (l *BidLedger) ListBids(auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("ledger: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	if _, err := l.store.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("ledger: failed to resolve auction %s: %w", auctionID, err)
	}

	bids, err := l.store.BidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}
