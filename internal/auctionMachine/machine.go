package machine

import (
	"errors"
	"fmt"
	"time"

	"auctionhouse/internal/auctionerrors"
	"auctionhouse/internal/clock"
	"auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/utils"

	"github.com/shopspring/decimal"
)

// Notifier receives auction lifecycle transitions after they are recorded.
type Notifier interface {
	AuctionClosed(a models.Auction)
	AuctionExpired(a models.Auction)
}

// CreateAuctionParams are the caller-supplied fields of a new auction.
type CreateAuctionParams struct {
	OwnerID          string
	Title            string
	Description      string
	Specs            map[string]string
	Budget           decimal.NullDecimal
	Deadline         time.Time
	EndDate          time.Time
	ReferenceFileURL string
}

// AuctionMachine owns the auction lifecycle: open at creation, then
// exactly one terminal transition, either closed via AcceptBid or
// expired via the sweep. Nothing else writes status or the winner.
type AuctionMachine struct {
	store    repository.AuctionStore
	clock    clock.Clock
	notifier Notifier
}

// NewAuctionMachine creates a new AuctionMachine instance.
func NewAuctionMachine(store repository.AuctionStore, clk clock.Clock, notifier Notifier) *AuctionMachine {
	return &AuctionMachine{
		store:    store,
		clock:    clk,
		notifier: notifier,
	}
}

// CreateAuction validates and stores a new open auction.
func (m *AuctionMachine) CreateAuction(p CreateAuctionParams) (models.Auction, error) {
	if p.OwnerID == "" || p.Title == "" {
		return models.Auction{}, fmt.Errorf("machine: %w - missing ownerID or title", auctionerrors.ErrInvalidInput)
	}

	now := m.clock.Now().UTC()
	if !p.EndDate.After(now) {
		return models.Auction{}, fmt.Errorf("machine: %w - end date must be in the future", auctionerrors.ErrInvalidInput)
	}
	if p.Budget.Valid && !p.Budget.Decimal.IsPositive() {
		return models.Auction{}, fmt.Errorf("machine: %w - budget must be positive when set", auctionerrors.ErrInvalidInput)
	}

	auction := models.Auction{
		AuctionID:        utils.GenerateID(),
		OwnerID:          p.OwnerID,
		Title:            p.Title,
		Description:      p.Description,
		Specs:            p.Specs,
		Budget:           p.Budget,
		Deadline:         p.Deadline,
		EndDate:          p.EndDate.UTC(),
		Status:           models.StatusOpen,
		ReferenceFileURL: p.ReferenceFileURL,
		CreatedAt:        now,
	}

	if err := m.store.CreateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("machine: failed to create auction for owner %s: %w", p.OwnerID, err)
	}
	return auction, nil
}

// GetAuction returns one auction by id.
func (m *AuctionMachine) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("machine: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	a, err := m.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("machine: failed to get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// AcceptBid awards an auction to one bid: only the owner may award, the
// auction must still be open, and the bid must belong to the auction.
// The close is a compare-and-set, so of two concurrent accepts exactly
// one wins; the loser surfaces ErrAlreadyAwarded. Status and winner are
// written in one step - no reader ever sees one without the other.
func (m *AuctionMachine) AcceptBid(auctionID, requesterID, bidID string) (models.Auction, error) {
	if auctionID == "" || requesterID == "" || bidID == "" {
		return models.Auction{}, fmt.Errorf("machine: %w - missing auctionID, requesterID or bidID", auctionerrors.ErrInvalidInput)
	}

	auction, err := m.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("machine: failed to resolve auction %s: %w", auctionID, err)
	}
	if auction.OwnerID != requesterID {
		return models.Auction{}, fmt.Errorf("machine: %w - only the auction owner may accept a bid", auctionerrors.ErrForbidden)
	}

	bid, err := m.store.GetBid(bidID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("machine: failed to resolve bid %s: %w", bidID, err)
	}
	if bid.AuctionID != auctionID {
		return models.Auction{}, fmt.Errorf("machine: bid %s belongs to a different auction: %w", bidID, auctionerrors.ErrBidNotFound)
	}

	if auction.Status != models.StatusOpen {
		return models.Auction{}, fmt.Errorf("machine: auction %s is %s: %w", auctionID, auction.Status, auctionerrors.ErrNotOpen)
	}

	if err := m.store.CloseAuction(auctionID, bidID); err != nil {
		// The auction was open a moment ago, so a failed compare-and-set
		// means a concurrent transition won the race.
		if errors.Is(err, auctionerrors.ErrNotOpen) {
			return models.Auction{}, fmt.Errorf("machine: auction %s: %w", auctionID, auctionerrors.ErrAlreadyAwarded)
		}
		return models.Auction{}, fmt.Errorf("machine: failed to close auction %s: %w", auctionID, err)
	}

	auction.Status = models.StatusClosed
	auction.WinningBidID = bidID
	m.notifier.AuctionClosed(auction)
	return auction, nil
}

// ExpireDue transitions every open auction past its end date to expired
// and announces each transition. Idempotent: a second run finds nothing.
func (m *AuctionMachine) ExpireDue() (int, error) {
	expired, err := m.store.ExpireDue(m.clock.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("machine: expiry sweep failed: %w", err)
	}
	for _, a := range expired {
		m.notifier.AuctionExpired(a)
	}
	return len(expired), nil
}
