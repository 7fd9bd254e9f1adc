package ledger

import (
	"errors"
	"testing"
	"time"

	"auctionhouse/internal/auctionerrors"
	"auctionhouse/internal/clock"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures published bids for assertions.
type recordingNotifier struct {
	bids []model.Bid
}

func (n *recordingNotifier) BidPlaced(bid model.Bid) {
	n.bids = append(n.bids, bid)
}

func TestBidLedger_SubmitBid(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	openAuction := model.Auction{
		AuctionID: "a1",
		OwnerID:   "owner1",
		Status:    model.StatusOpen,
		EndDate:   now.Add(time.Hour),
	}

	tests := []struct {
		name          string
		auctionID     string
		bidderID      string
		value         decimal.Decimal
		production    int
		delivery      int
		mockSetup     func(store *repository.MockAuctionStore)
		expectedError error
		expectPublish bool
	}{
		{
			name:       "valid_bid",
			auctionID:  "a1",
			bidderID:   "shop1",
			value:      decimal.NewFromInt(120),
			production: 3,
			delivery:   2,
			mockSetup: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetAuction("a1").Return(openAuction, nil)
				store.EXPECT().CreateBid(gomock.Any()).Return(nil)
			},
			expectPublish: true,
		},
		{
			name:          "empty_auction_id",
			auctionID:     "",
			bidderID:      "shop1",
			value:         decimal.NewFromInt(100),
			mockSetup:     func(store *repository.MockAuctionStore) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "empty_bidder_id",
			auctionID:     "a1",
			bidderID:      "",
			value:         decimal.NewFromInt(100),
			mockSetup:     func(store *repository.MockAuctionStore) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_value",
			auctionID:     "a1",
			bidderID:      "shop1",
			value:         decimal.Zero,
			mockSetup:     func(store *repository.MockAuctionStore) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "negative_value",
			auctionID:     "a1",
			bidderID:      "shop1",
			value:         decimal.NewFromInt(-10),
			mockSetup:     func(store *repository.MockAuctionStore) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "negative_production_time",
			auctionID:     "a1",
			bidderID:      "shop1",
			value:         decimal.NewFromInt(100),
			production:    -1,
			mockSetup:     func(store *repository.MockAuctionStore) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:      "auction_not_found",
			auctionID: "ghost",
			bidderID:  "shop1",
			value:     decimal.NewFromInt(100),
			mockSetup: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetAuction("ghost").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
		{
			name:      "owner_bids_on_own_auction",
			auctionID: "a1",
			bidderID:  "owner1",
			value:     decimal.NewFromInt(100),
			mockSetup: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetAuction("a1").Return(openAuction, nil)
			},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:      "closed_auction",
			auctionID: "a1",
			bidderID:  "shop1",
			value:     decimal.NewFromInt(100),
			mockSetup: func(store *repository.MockAuctionStore) {
				closed := openAuction
				closed.Status = model.StatusClosed
				closed.WinningBidID = "bidX"
				store.EXPECT().GetAuction("a1").Return(closed, nil)
			},
			expectedError: auctionerrors.ErrNotOpen,
		},
		{
			name:      "expired_auction",
			auctionID: "a1",
			bidderID:  "shop1",
			value:     decimal.NewFromInt(100),
			mockSetup: func(store *repository.MockAuctionStore) {
				expired := openAuction
				expired.Status = model.StatusExpired
				store.EXPECT().GetAuction("a1").Return(expired, nil)
			},
			expectedError: auctionerrors.ErrNotOpen,
		},
		{
			name:      "past_end_date_still_marked_open",
			auctionID: "a1",
			bidderID:  "shop1",
			value:     decimal.NewFromInt(100),
			mockSetup: func(store *repository.MockAuctionStore) {
				stale := openAuction
				stale.EndDate = now.Add(-time.Minute)
				store.EXPECT().GetAuction("a1").Return(stale, nil)
			},
			expectedError: auctionerrors.ErrNotOpen,
		},
		{
			name:       "store_write_fails",
			auctionID:  "a1",
			bidderID:   "shop1",
			value:      decimal.NewFromInt(100),
			production: 1,
			delivery:   1,
			mockSetup: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetAuction("a1").Return(openAuction, nil)
				store.EXPECT().CreateBid(gomock.Any()).Return(errors.New("store write failed"))
			},
			expectedError: nil, // wrapped infrastructure error, no sentinel
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := repository.NewMockAuctionStore(ctrl)
			notifier := &recordingNotifier{}
			svc := NewBidLedger(mockStore, clock.NewFixed(now), notifier)

			tc.mockSetup(mockStore)

			bid, err := svc.SubmitBid(tc.auctionID, tc.bidderID, tc.value, tc.production, tc.delivery, "rush job")

			if tc.expectPublish {
				require.NoError(t, err)

				require.NotEmpty(t, bid.BidID)
				_, parseErr := uuid.Parse(bid.BidID)
				require.NoError(t, parseErr, "BidID should be a valid UUID")

				require.Equal(t, tc.auctionID, bid.AuctionID)
				require.Equal(t, tc.bidderID, bid.BidderID)
				require.True(t, bid.Value.Equal(tc.value))
				require.Equal(t, now, bid.CreatedAt)

				// published only after the durable write
				require.Len(t, notifier.bids, 1)
				require.Equal(t, bid, notifier.bids[0])
				return
			}

			require.Error(t, err)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
			}
			require.Empty(t, notifier.bids, "failed submissions must not be announced")
		})
	}
}

func TestBidLedger_ListBids(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	openAuction := model.Auction{AuctionID: "a1", OwnerID: "owner1", Status: model.StatusOpen, EndDate: now.Add(time.Hour)}

	ordered := []model.Bid{
		{BidID: "bid2", AuctionID: "a1", BidderID: "shop2", Value: decimal.NewFromInt(30), CreatedAt: now},
		{BidID: "bid1", AuctionID: "a1", BidderID: "shop1", Value: decimal.NewFromInt(50), CreatedAt: now.Add(-time.Minute)},
	}

	tests := []struct {
		name          string
		auctionID     string
		mockSetup     func(store *repository.MockAuctionStore)
		expectedBids  []model.Bid
		expectedError error
	}{
		{
			name:      "bids_in_store_order",
			auctionID: "a1",
			mockSetup: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetAuction("a1").Return(openAuction, nil)
				store.EXPECT().BidsByAuction("a1").Return(ordered, nil)
			},
			expectedBids: ordered,
		},
		{
			name:      "no_bids",
			auctionID: "a1",
			mockSetup: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetAuction("a1").Return(openAuction, nil)
				store.EXPECT().BidsByAuction("a1").Return([]model.Bid{}, nil)
			},
			expectedBids: []model.Bid{},
		},
		{
			name:          "empty_auction_id",
			auctionID:     "",
			mockSetup:     func(store *repository.MockAuctionStore) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:      "auction_not_found",
			auctionID: "ghost",
			mockSetup: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetAuction("ghost").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := repository.NewMockAuctionStore(ctrl)
			svc := NewBidLedger(mockStore, clock.NewFixed(now), &recordingNotifier{})

			tc.mockSetup(mockStore)

			bids, err := svc.ListBids(tc.auctionID)
			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedBids, bids)
		})
	}
}
