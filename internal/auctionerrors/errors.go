package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found")
)

// business logic errors
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrForbidden      = errors.New("operation not permitted")
	ErrNotOpen        = errors.New("auction is not open")
	ErrAlreadyAwarded = errors.New("auction already awarded")
)
