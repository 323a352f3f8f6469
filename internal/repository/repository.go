package repository

import (
	"fmt"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// MinBidIncrement is the minimum amount a new bid must exceed the current
// bid by to be advertised as the next acceptable bid.
const MinBidIncrement = 50

// AuctionStore defines the auction state owned by the bidding engine. All
// mutations are serialized so that two racing bids can never both be
// accepted against the same stale current bid.
type AuctionStore interface {
	ListAuctions() []model.Auction
	GetAuction(id string) (model.Auction, error)
	ComputeStats() model.Stats
	RecordBid(auctionID string, bid model.Bid) (model.Auction, error)
	AdvanceClock(elapsedSeconds int)
	CloseAuction(id string) (model.Auction, error)
	UpdateAuctionFields(id string, fields map[string]any) (model.Auction, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]*model.Auction // key: auction ID
	order    []string                  // auction IDs in creation order, for stable listings
}

// NewMemoryStore creates a new in-memory auction store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]*model.Auction),
	}
}

// AddAuction seeds the store with an auction. Intended for startup seeding
// and tests; existing IDs are overwritten in place without changing order.
func (s *MemoryStore) AddAuction(a model.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.Status == "" {
		a.Status = model.StatusActive
	}
	if _, exists := s.auctions[a.ID]; !exists {
		s.order = append(s.order, a.ID)
	}
	copied := copyAuction(&a)
	s.auctions[a.ID] = &copied
}

// ListAuctions returns defensive copies of all auctions in creation order.
func (s *MemoryStore) ListAuctions() []model.Auction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(s.order))
	for _, id := range s.order {
		auctions = append(auctions, copyAuction(s.auctions[id]))
	}
	return auctions
}

// GetAuction returns a copy of the auction with the given ID.
func (s *MemoryStore) GetAuction(id string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return copyAuction(a), nil
}

// ComputeStats derives the dashboard summary from the current store contents.
// Active users counts distinct bidder names across all bid histories,
// including ended auctions.
func (s *MemoryStore) ComputeStats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := model.Stats{TotalItems: len(s.order)}
	bidders := make(map[string]struct{})
	for _, id := range s.order {
		a := s.auctions[id]
		if a.Status == model.StatusActive {
			stats.ActiveBids += a.TotalBids
		}
		stats.TotalRevenue += a.CurrentBid
		for _, b := range a.BidHistory {
			bidders[b.Bidder] = struct{}{}
		}
	}
	stats.ActiveUsers = len(bidders)
	return stats
}

// RecordBid validates and applies a bid in one critical section. Either all
// of the auction's bid state changes or none of it does. The returned
// auction copy carries the accepted bid as the last history entry.
func (s *MemoryStore) RecordBid(auctionID string, bid model.Bid) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("record bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != model.StatusActive || a.TimeRemaining <= 0 {
		return model.Auction{}, fmt.Errorf("record bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionEnded)
	}
	if bid.Amount <= a.CurrentBid {
		return model.Auction{}, &auctionerrors.BidTooLowError{
			CurrentBid: a.CurrentBid,
			MinimumBid: a.CurrentBid + MinBidIncrement,
		}
	}

	// Acceptance timestamps are strictly increasing within one auction even
	// if the wall clock has not advanced past the previous bid.
	ts := time.Now().UnixMilli()
	if n := len(a.BidHistory); n > 0 && ts <= a.BidHistory[n-1].Timestamp {
		ts = a.BidHistory[n-1].Timestamp + 1
	}
	bid.Timestamp = ts

	a.BidHistory = append(a.BidHistory, bid)
	a.CurrentBid = bid.Amount
	a.TotalBids++

	return copyAuction(a), nil
}

// AdvanceClock decrements remaining time on every active auction and flips
// auctions that reach zero to ended. Ended auctions are untouched.
func (s *MemoryStore) AdvanceClock(elapsedSeconds int) {
	if elapsedSeconds <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		a := s.auctions[id]
		if a.Status != model.StatusActive || a.TimeRemaining <= 0 {
			continue
		}
		a.TimeRemaining -= elapsedSeconds
		if a.TimeRemaining <= 0 {
			a.TimeRemaining = 0
			a.Status = model.StatusEnded
		}
	}
}

// CloseAuction ends an auction ahead of its countdown. Closing an already
// ended auction is a no-op.
func (s *MemoryStore) CloseAuction(id string) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("close auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	a.Status = model.StatusEnded
	return copyAuction(a), nil
}

// UpdateAuctionFields applies a partial descriptive update, typically fed by
// the voice agent. Identity, bid state and countdown fields can never be set
// through this path; unknown keys are ignored.
func (s *MemoryStore) UpdateAuctionFields(id string, fields map[string]any) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("update auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}

	for key, value := range fields {
		switch key {
		case "name":
			setString(&a.Name, value)
		case "description":
			setString(&a.Description, value)
		case "category":
			setString(&a.Category, value)
		case "condition":
			setString(&a.Condition, value)
		case "year":
			setString(&a.Year, value)
		case "seller":
			setString(&a.Seller, value)
		case "location":
			setString(&a.Location, value)
		case "shippingInfo":
			setString(&a.ShippingInfo, value)
		case "estimatedValue":
			setString(&a.EstimatedValue, value)
		case "image":
			setString(&a.Image, value)
		case "sellerRating":
			setFloat(&a.SellerRating, value)
		case "reservePrice":
			setFloat(&a.ReservePrice, value)
		case "viewCount":
			setInt(&a.ViewCount, value)
		case "watchCount":
			setInt(&a.WatchCount, value)
		}
	}

	return copyAuction(a), nil
}

// copyAuction returns a deep enough copy that callers cannot reach back into
// store-owned slices.
func copyAuction(a *model.Auction) model.Auction {
	copied := *a
	copied.BidHistory = append([]model.Bid(nil), a.BidHistory...)
	copied.Images = append([]string(nil), a.Images...)
	return copied
}

func setString(dst *string, value any) {
	if v, ok := value.(string); ok {
		*dst = v
	}
}

func setFloat(dst *float64, value any) {
	switch v := value.(type) {
	case float64:
		*dst = v
	case int:
		*dst = float64(v)
	}
}

func setInt(dst *int, value any) {
	switch v := value.(type) {
	case float64:
		*dst = int(v)
	case int:
		*dst = v
	}
}
