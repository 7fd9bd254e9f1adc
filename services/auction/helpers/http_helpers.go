package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auctionhouse/internal/auctionerrors"
	model "auctionhouse/internal/models"
	"auctionhouse/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "only the auction owner may do this"
	case errors.Is(err, auctionerrors.ErrAlreadyAwarded):
		return http.StatusConflict, "auction already awarded"
	case errors.Is(err, auctionerrors.ErrNotOpen):
		return http.StatusConflict, "auction is not open"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// NewBidResponse converts a bid to its wire form.
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:          bid.BidID,
		AuctionID:      bid.AuctionID,
		BidderID:       bid.BidderID,
		Value:          bid.Value,
		ProductionTime: bid.ProductionTime,
		DeliveryTime:   bid.DeliveryTime,
		Comments:       bid.Comments,
		CreatedAt:      bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewAuctionResponse converts an auction to its wire form.
func NewAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:    a.AuctionID,
		OwnerID:      a.OwnerID,
		Title:        a.Title,
		Status:       string(a.Status),
		WinningBidID: a.WinningBidID,
		EndDate:      a.EndDate.UTC().Format(time.RFC3339),
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
