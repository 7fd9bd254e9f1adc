package views

import (
	"fmt"

	"auctionhouse/internal/auctionerrors"
	"auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/utils"
)

// Builder assembles the auction listing views: each auction with its
// ordered bids, every bid labelled with the bidder's display name.
type Builder struct {
	store repository.AuctionStore
}

// NewBuilder creates a new Builder instance.
func NewBuilder(store repository.AuctionStore) *Builder {
	return &Builder{store: store}
}

// OpenAuctions returns all open auctions ordered by end date ascending.
func (b *Builder) OpenAuctions() ([]models.AuctionView, error) {
	auctions, err := b.store.OpenAuctions()
	if err != nil {
		return nil, fmt.Errorf("views: failed to list open auctions: %w", err)
	}
	return b.assemble(auctions)
}

// MyAuctions returns every auction created by one owner, any status.
func (b *Builder) MyAuctions(ownerID string) ([]models.AuctionView, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("views: %w - empty owner ID", auctionerrors.ErrInvalidInput)
	}

	auctions, err := b.store.AuctionsByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("views: failed to list auctions for owner %s: %w", ownerID, err)
	}
	return b.assemble(auctions)
}

// MyBids returns the auctions a bidder has bid on. Bids are fetched
// first; with zero bids the result is empty without a second query.
func (b *Builder) MyBids(bidderID string) ([]models.AuctionView, error) {
	if bidderID == "" {
		return nil, fmt.Errorf("views: %w - empty bidder ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := b.store.BidsByBidder(bidderID)
	if err != nil {
		return nil, fmt.Errorf("views: failed to list bids for bidder %s: %w", bidderID, err)
	}

	ids := distinctAuctionIDs(bids)
	if len(ids) == 0 {
		return []models.AuctionView{}, nil
	}

	auctions, err := b.store.AuctionsByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("views: failed to resolve auctions for bidder %s: %w", bidderID, err)
	}
	return b.assemble(auctions)
}

// assemble attaches ordered bids to each auction and joins bidder labels
// with a single batched user lookup. The join is best-effort: if user
// resolution fails, every bid falls back to the generic label instead of
// failing the view.
func (b *Builder) assemble(auctions []models.Auction) ([]models.AuctionView, error) {
	out := make([]models.AuctionView, 0, len(auctions))
	bidsByAuction := make(map[string][]models.Bid, len(auctions))
	bidderIDs := make([]string, 0)
	seen := make(map[string]struct{})

	for _, a := range auctions {
		bids, err := b.store.BidsByAuction(a.AuctionID)
		if err != nil {
			return nil, fmt.Errorf("views: failed to load bids for auction %s: %w", a.AuctionID, err)
		}
		bidsByAuction[a.AuctionID] = bids
		for _, bid := range bids {
			if _, ok := seen[bid.BidderID]; !ok {
				seen[bid.BidderID] = struct{}{}
				bidderIDs = append(bidderIDs, bid.BidderID)
			}
		}
	}

	users := map[string]models.User{}
	if len(bidderIDs) > 0 {
		resolved, err := b.store.UsersByID(bidderIDs)
		if err != nil {
			utils.Warn("views: bidder metadata lookup failed, using fallback labels", map[string]any{
				"bidders": len(bidderIDs),
				"error":   err.Error(),
			})
		} else {
			users = resolved
		}
	}

	for _, a := range auctions {
		bids := bidsByAuction[a.AuctionID]
		views := make([]models.BidView, 0, len(bids))
		for _, bid := range bids {
			label := models.FallbackBidderLabel
			if u, ok := users[bid.BidderID]; ok {
				label = u.DisplayLabel()
			}
			views = append(views, models.BidView{Bid: bid, Bidder: label})
		}
		out = append(out, models.AuctionView{Auction: a, Bids: views})
	}
	return out, nil
}

func distinctAuctionIDs(bids []models.Bid) []string {
	ids := make([]string, 0, len(bids))
	seen := make(map[string]struct{}, len(bids))
	for _, b := range bids {
		if _, ok := seen[b.AuctionID]; !ok {
			seen[b.AuctionID] = struct{}{}
			ids = append(ids, b.AuctionID)
		}
	}
	return ids
}
