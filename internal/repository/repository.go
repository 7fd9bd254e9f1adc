package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_store.go -package=repository

// AuctionStore defines the persistence interface for the auction system.
// Auction status and winning_bid_id are written only through CloseAuction
// and ExpireDue; bids are append-only.
type AuctionStore interface {
	CreateAuction(a model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	OpenAuctions() ([]model.Auction, error)
	AuctionsByOwner(ownerID string) ([]model.Auction, error)
	AuctionsByIDs(ids []string) ([]model.Auction, error)

	CreateBid(bid model.Bid) error
	GetBid(bidID string) (model.Bid, error)
	BidsByAuction(auctionID string) ([]model.Bid, error)
	BidsByBidder(bidderID string) ([]model.Bid, error)

	// CloseAuction is a compare-and-set: it transitions the auction from
	// open to closed and records the winner in one step, failing with
	// ErrNotOpen if the auction is no longer open.
	CloseAuction(auctionID, winningBidID string) error

	// ExpireDue transitions every open auction whose end date has passed
	// to expired and returns the auctions it transitioned. Safe to run
	// redundantly or concurrently.
	ExpireDue(now time.Time) ([]model.Auction, error)

	// UsersByID resolves bidder display metadata in one batch; unknown
	// ids are simply absent from the result.
	UsersByID(ids []string) (map[string]model.User, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction
	bids     map[string][]model.Bid // key: auctionID -> bids in insertion order
	bidIndex map[string]model.Bid   // key: bidID
	users    map[string]model.User
}

// NewMemoryStore creates a new in-memory store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
		bidIndex: make(map[string]model.Bid),
		users:    make(map[string]model.User),
	}
}

// CreateAuction stores a new auction record.
func (s *MemoryStore) CreateAuction(a model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[a.AuctionID]; ok {
		return fmt.Errorf("create auction %s: %w - id already exists", a.AuctionID, auctionerrors.ErrInvalidInput)
	}
	s.auctions[a.AuctionID] = a
	return nil
}

// GetAuction returns one auction by id.
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// OpenAuctions returns all open auctions ordered by end date ascending.
func (s *MemoryStore) OpenAuctions() ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Auction, 0)
	for _, a := range s.auctions {
		if a.Status == model.StatusOpen {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EndDate.Before(out[j].EndDate)
	})
	return out, nil
}

// AuctionsByOwner returns all auctions created by one owner, any status,
// newest first.
func (s *MemoryStore) AuctionsByOwner(ownerID string) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Auction, 0)
	for _, a := range s.auctions {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// AuctionsByIDs resolves a set of auction ids; unknown ids are skipped.
func (s *MemoryStore) AuctionsByIDs(ids []string) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Auction, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.auctions[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// CreateBid appends an immutable bid record.
func (s *MemoryStore) CreateBid(bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("create bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	s.bids[bid.AuctionID] = append(s.bids[bid.AuctionID], bid)
	s.bidIndex[bid.BidID] = bid
	return nil
}

// GetBid returns one bid by id.
func (s *MemoryStore) GetBid(bidID string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bidIndex[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	return b, nil
}

// BidsByAuction returns the bids on an auction ordered by value ascending,
// ties broken by creation time ascending (the earlier bid wins ties).
func (s *MemoryStore) BidsByAuction(auctionID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := append([]model.Bid(nil), s.bids[auctionID]...)
	sort.Slice(bids, func(i, j int) bool {
		switch bids[i].Value.Cmp(bids[j].Value) {
		case -1:
			return true
		case 1:
			return false
		default:
			return bids[i].CreatedAt.Before(bids[j].CreatedAt)
		}
	})
	return bids, nil
}

// BidsByBidder returns every bid placed by one bidder, in insertion order
// per auction.
func (s *MemoryStore) BidsByBidder(bidderID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Bid, 0)
	for _, bids := range s.bids {
		for _, b := range bids {
			if b.BidderID == bidderID {
				out = append(out, b)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// CloseAuction transitions open -> closed and records the winner. The
// status check and the write happen under one lock so concurrent accepts
// cannot both succeed.
func (s *MemoryStore) CloseAuction(auctionID, winningBidID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("close auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != model.StatusOpen {
		return fmt.Errorf("close auction %s: status is %s: %w", auctionID, a.Status, auctionerrors.ErrNotOpen)
	}
	a.Status = model.StatusClosed
	a.WinningBidID = winningBidID
	s.auctions[auctionID] = a
	return nil
}

// ExpireDue transitions every open auction past its end date to expired.
func (s *MemoryStore) ExpireDue(now time.Time) ([]model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := make([]model.Auction, 0)
	for id, a := range s.auctions {
		if a.Status == model.StatusOpen && a.EndDate.Before(now) {
			a.Status = model.StatusExpired
			s.auctions[id] = a
			expired = append(expired, a)
		}
	}
	return expired, nil
}

// UsersByID resolves display metadata for a batch of user ids.
func (s *MemoryStore) UsersByID(ids []string) (map[string]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.User, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

// SaveUser stores a user profile. Used for seeding and tests; the
// identity provider owns user records in production.
func (s *MemoryStore) SaveUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.UserID] = u
}
