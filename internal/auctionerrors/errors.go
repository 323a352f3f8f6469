package auctionerrors

import (
	"errors"
	"strconv"
)

// Store-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrAuctionEnded    = errors.New("auction has ended")
)

// Business logic errors
var (
	ErrInvalidBid = errors.New("invalid bid")
	ErrBidTooLow  = errors.New("bid amount too low")
)

// User store errors
var (
	ErrAlreadyWatched = errors.New("item already in watchlist")
	ErrNotWatched     = errors.New("item not found in watchlist")
)

// BidTooLowError reports a rejected bid together with the bid the caller
// must beat and the minimum acceptable next bid.
type BidTooLowError struct {
	CurrentBid float64
	MinimumBid float64
}

func (e *BidTooLowError) Error() string {
	return "bid must be higher than current bid of $" + strconv.FormatFloat(e.CurrentBid, 'f', -1, 64)
}

// Unwrap lets errors.Is(err, ErrBidTooLow) keep working on the typed error.
func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}
