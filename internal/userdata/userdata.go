package userdata

import (
	"fmt"
	"math"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/utils"
)

// UserStore holds the per-user bid and watchlist lists. It is a collaborator
// of the auction engine, not part of it: entries here are a user-facing view
// and never feed back into bid acceptance.
type UserStore struct {
	mu        sync.RWMutex
	bids      []model.UserBid
	watchlist []model.WatchlistItem
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Bids returns a copy of the user's bid list.
func (s *UserStore) Bids() []model.UserBid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.UserBid(nil), s.bids...)
}

// Watchlist returns a copy of the user's watchlist.
func (s *UserStore) Watchlist() []model.WatchlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.WatchlistItem(nil), s.watchlist...)
}

// Stats derives the user's bidding summary.
func (s *UserStore) Stats() model.UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := model.UserStats{
		TotalBids:      len(s.bids),
		WatchlistItems: len(s.watchlist),
	}

	var spent, total float64
	for _, b := range s.bids {
		total += b.Amount
		if b.Status == "won" {
			stats.WonAuctions++
			spent += b.Amount
		}
	}
	stats.TotalSpent = spent
	if stats.TotalBids > 0 {
		stats.SuccessRate = int(math.Round(float64(stats.WonAuctions) / float64(stats.TotalBids) * 100))
		stats.AvgBid = math.Round(total / float64(stats.TotalBids))
	}
	return stats
}

// RecordBid appends a bid to the user's list, marking previous bids on the
// same auction as outbid. A missing ID or timestamp is filled in.
func (s *UserStore) RecordBid(bid model.UserBid) model.UserBid {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bid.ID == "" {
		bid.ID = utils.GeneratePrefixedID("user-bid")
	}
	if bid.Timestamp == 0 {
		bid.Timestamp = time.Now().UnixMilli()
	}
	if bid.Status == "" {
		bid.Status = "winning"
	}

	for i := range s.bids {
		if s.bids[i].AuctionID == bid.AuctionID && s.bids[i].Status == "winning" {
			s.bids[i].Status = "outbid"
		}
	}

	s.bids = append(s.bids, bid)
	return bid
}

// AddToWatchlist adds an auction to the watchlist. Adding a watched auction
// again fails rather than duplicating it.
func (s *UserStore) AddToWatchlist(auctionID string) ([]model.WatchlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.watchlist {
		if item.AuctionID == auctionID {
			return nil, fmt.Errorf("watchlist add %s: %w", auctionID, auctionerrors.ErrAlreadyWatched)
		}
	}

	s.watchlist = append(s.watchlist, model.WatchlistItem{
		ID:        utils.GeneratePrefixedID("watch"),
		AuctionID: auctionID,
		AddedAt:   time.Now().UnixMilli(),
	})
	return append([]model.WatchlistItem(nil), s.watchlist...), nil
}

// RemoveFromWatchlist removes an auction from the watchlist.
func (s *UserStore) RemoveFromWatchlist(auctionID string) ([]model.WatchlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.watchlist[:0]
	removed := false
	for _, item := range s.watchlist {
		if item.AuctionID == auctionID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil, fmt.Errorf("watchlist remove %s: %w", auctionID, auctionerrors.ErrNotWatched)
	}

	s.watchlist = kept
	return append([]model.WatchlistItem(nil), s.watchlist...), nil
}

// Seed replaces the store contents. Intended for startup seeding and tests.
func (s *UserStore) Seed(bids []model.UserBid, watchlist []model.WatchlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bids = append([]model.UserBid(nil), bids...)
	s.watchlist = append([]model.WatchlistItem(nil), watchlist...)
}
