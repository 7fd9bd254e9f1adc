package repository

import (
	"errors"
	"sync"
	"testing"
	"time"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func openAuction(id, ownerID string, endDate time.Time) model.Auction {
	return model.Auction{
		AuctionID: id,
		OwnerID:   ownerID,
		Title:     "business cards",
		Status:    model.StatusOpen,
		EndDate:   endDate,
		CreatedAt: time.Now().UTC(),
	}
}

func bidOn(auctionID, bidID, bidderID string, value int64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		BidderID:  bidderID,
		Value:     decimal.NewFromInt(value),
		CreatedAt: createdAt,
	}
}

func TestMemoryStore_CreateAndGetAuction(t *testing.T) {
	store := NewMemoryStore()
	end := time.Now().UTC().Add(time.Hour)

	a := openAuction("a1", "owner1", end)
	require.NoError(t, store.CreateAuction(a))

	got, err := store.GetAuction("a1")
	require.NoError(t, err)
	require.Equal(t, a, got)

	// duplicate id is rejected
	err = store.CreateAuction(a)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidInput))

	// unknown id resolves to the not-found sentinel
	_, err = store.GetAuction("missing")
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
}

func TestMemoryStore_BidOrdering(t *testing.T) {
	store := NewMemoryStore()
	end := time.Now().UTC().Add(time.Hour)
	require.NoError(t, store.CreateAuction(openAuction("a1", "owner1", end)))

	now := time.Now().UTC()

	// submitted in order: 50, then two equal 30s
	require.NoError(t, store.CreateBid(bidOn("a1", "bid1", "shop1", 50, now)))
	require.NoError(t, store.CreateBid(bidOn("a1", "bid2", "shop2", 30, now.Add(1*time.Second))))
	require.NoError(t, store.CreateBid(bidOn("a1", "bid3", "shop3", 30, now.Add(2*time.Second))))

	bids, err := store.BidsByAuction("a1")
	require.NoError(t, err)
	require.Len(t, bids, 3)

	// value ascending, earlier bid wins the tie
	require.Equal(t, "bid2", bids[0].BidID)
	require.Equal(t, "bid3", bids[1].BidID)
	require.Equal(t, "bid1", bids[2].BidID)
}

func TestMemoryStore_CreateBid_UnknownAuction(t *testing.T) {
	store := NewMemoryStore()

	err := store.CreateBid(bidOn("missing", "bid1", "shop1", 10, time.Now().UTC()))
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
}

func TestMemoryStore_CloseAuction(t *testing.T) {
	store := NewMemoryStore()
	end := time.Now().UTC().Add(time.Hour)
	require.NoError(t, store.CreateAuction(openAuction("a1", "owner1", end)))
	require.NoError(t, store.CreateBid(bidOn("a1", "bid1", "shop1", 40, time.Now().UTC())))

	require.NoError(t, store.CloseAuction("a1", "bid1"))

	got, err := store.GetAuction("a1")
	require.NoError(t, err)
	require.Equal(t, model.StatusClosed, got.Status)
	require.Equal(t, "bid1", got.WinningBidID)

	// second close loses the compare-and-set
	err = store.CloseAuction("a1", "bid1")
	require.True(t, errors.Is(err, auctionerrors.ErrNotOpen))

	err = store.CloseAuction("missing", "bid1")
	require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
}

func TestMemoryStore_CloseAuction_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	end := time.Now().UTC().Add(time.Hour)
	require.NoError(t, store.CreateAuction(openAuction("a1", "owner1", end)))

	const workers = 32
	var wg sync.WaitGroup
	successes := make(chan string, workers)

	for i := 0; i < workers; i++ {
		bidID := "bid" + string(rune('a'+i))
		wg.Add(1)
		go func(bidID string) {
			defer wg.Done()
			if err := store.CloseAuction("a1", bidID); err == nil {
				successes <- bidID
			}
		}(bidID)
	}
	wg.Wait()
	close(successes)

	winners := make([]string, 0)
	for id := range successes {
		winners = append(winners, id)
	}
	require.Len(t, winners, 1, "exactly one concurrent close must win")

	got, err := store.GetAuction("a1")
	require.NoError(t, err)
	require.Equal(t, model.StatusClosed, got.Status)
	require.Equal(t, winners[0], got.WinningBidID)
}

func TestMemoryStore_ExpireDue(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now().UTC()

	require.NoError(t, store.CreateAuction(openAuction("due1", "owner1", now.Add(-time.Hour))))
	require.NoError(t, store.CreateAuction(openAuction("due2", "owner1", now.Add(-time.Minute))))
	require.NoError(t, store.CreateAuction(openAuction("future", "owner1", now.Add(time.Hour))))

	closed := openAuction("closed", "owner1", now.Add(-time.Hour))
	closed.Status = model.StatusClosed
	closed.WinningBidID = "bidX"
	require.NoError(t, store.CreateAuction(closed))

	expired, err := store.ExpireDue(now)
	require.NoError(t, err)
	require.Len(t, expired, 2)
	for _, a := range expired {
		require.Equal(t, model.StatusExpired, a.Status)
	}

	// closed auction is untouched, future auction still open
	got, _ := store.GetAuction("closed")
	require.Equal(t, model.StatusClosed, got.Status)
	got, _ = store.GetAuction("future")
	require.Equal(t, model.StatusOpen, got.Status)

	// sweep is idempotent
	expired, err = store.ExpireDue(now)
	require.NoError(t, err)
	require.Empty(t, expired)
}

func TestMemoryStore_OpenAuctionsOrdering(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now().UTC()

	require.NoError(t, store.CreateAuction(openAuction("late", "owner1", now.Add(3*time.Hour))))
	require.NoError(t, store.CreateAuction(openAuction("soon", "owner2", now.Add(1*time.Hour))))
	require.NoError(t, store.CreateAuction(openAuction("mid", "owner3", now.Add(2*time.Hour))))

	closed := openAuction("done", "owner1", now.Add(4*time.Hour))
	closed.Status = model.StatusClosed
	require.NoError(t, store.CreateAuction(closed))

	open, err := store.OpenAuctions()
	require.NoError(t, err)
	require.Len(t, open, 3)
	require.Equal(t, "soon", open[0].AuctionID)
	require.Equal(t, "mid", open[1].AuctionID)
	require.Equal(t, "late", open[2].AuctionID)
}

func TestMemoryStore_BidsByBidderAndAuctionsByIDs(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now().UTC()
	end := now.Add(time.Hour)

	require.NoError(t, store.CreateAuction(openAuction("a1", "owner1", end)))
	require.NoError(t, store.CreateAuction(openAuction("a2", "owner2", end)))

	require.NoError(t, store.CreateBid(bidOn("a1", "bid1", "shop1", 10, now)))
	require.NoError(t, store.CreateBid(bidOn("a2", "bid2", "shop1", 20, now.Add(time.Second))))
	require.NoError(t, store.CreateBid(bidOn("a2", "bid3", "shop2", 15, now.Add(2*time.Second))))

	bids, err := store.BidsByBidder("shop1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
	require.Equal(t, "bid1", bids[0].BidID)
	require.Equal(t, "bid2", bids[1].BidID)

	auctions, err := store.AuctionsByIDs([]string{"a1", "a2", "missing"})
	require.NoError(t, err)
	require.Len(t, auctions, 2)

	none, err := store.BidsByBidder("nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemoryStore_UsersByID(t *testing.T) {
	store := NewMemoryStore()
	store.SaveUser(model.User{UserID: "u1", Name: "Ana"})
	store.SaveUser(model.User{UserID: "u2", CompanyName: "Offset House"})

	users, err := store.UsersByID([]string{"u1", "u2", "ghost"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "Ana", users["u1"].Name)
	require.Equal(t, "Offset House", users["u2"].CompanyName)
	_, ok := users["ghost"]
	require.False(t, ok)
}
