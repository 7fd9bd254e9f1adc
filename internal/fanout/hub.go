package fanout

import (
	"sync"

	model "auctionhouse/internal/models"
	"auctionhouse/utils"
)

// EventType identifies what a live-feed event carries.
type EventType string

const (
	EventBidPlaced      EventType = "bid_placed"
	EventAuctionClosed  EventType = "auction_closed"
	EventAuctionExpired EventType = "auction_expired"
)

// Event is one live-feed update. Events carry full snapshots so a viewer
// can merge by id: append unknown ids, overwrite known ones. Redelivery
// is therefore harmless.
type Event struct {
	Type      EventType      `json:"type"`
	AuctionID string         `json:"auction_id"`
	Bid       *model.Bid     `json:"bid,omitempty"`
	Auction   *model.Auction `json:"auction,omitempty"`
}

// subscriberBuffer is how many undelivered events a subscriber may lag
// behind before it is evicted.
const subscriberBuffer = 256

type subscription struct {
	watched map[string]struct{}
	ch      chan Event
}

// Hub routes bid and auction-status events to subscribers keyed by
// auction id, so a viewer only receives events for the auctions it
// watches. Delivery is at-least-once; a subscriber that cannot keep up
// is evicted (its channel closed) rather than blocking publishers.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]*subscription
	nextID int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]*subscription)}
}

// Subscribe registers interest in a set of auctions. It returns the event
// channel and a cancel func; cancel is idempotent. The channel is closed
// on cancel or eviction, and carries no events from before the call:
// a new viewer re-fetches current state through the views instead.
func (h *Hub) Subscribe(auctionIDs []string) (<-chan Event, func()) {
	watched := make(map[string]struct{}, len(auctionIDs))
	for _, id := range auctionIDs {
		if id != "" {
			watched[id] = struct{}{}
		}
	}

	sub := &subscription{
		watched: watched,
		ch:      make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = sub
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if s, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(s.ch)
		}
	}
	return sub.ch, cancel
}

// BidPlaced publishes a newly recorded bid to watchers of its auction.
func (h *Hub) BidPlaced(bid model.Bid) {
	b := bid
	h.publish(Event{Type: EventBidPlaced, AuctionID: bid.AuctionID, Bid: &b})
}

// AuctionClosed publishes an award to watchers of the auction.
func (h *Hub) AuctionClosed(a model.Auction) {
	snap := a
	h.publish(Event{Type: EventAuctionClosed, AuctionID: a.AuctionID, Auction: &snap})
}

// AuctionExpired publishes an expiry to watchers of the auction.
func (h *Hub) AuctionExpired(a model.Auction) {
	snap := a
	h.publish(Event{Type: EventAuctionExpired, AuctionID: a.AuctionID, Auction: &snap})
}

func (h *Hub) publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subs {
		if _, ok := sub.watched[ev.AuctionID]; !ok {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			// evict the slow subscriber so publishers never block;
			// it recovers by resubscribing and re-fetching
			close(sub.ch)
			delete(h.subs, id)
			utils.Warn("fanout: evicted slow subscriber", map[string]any{
				"subscriber_id": id,
				"auction_id":    ev.AuctionID,
			})
		}
	}
}
