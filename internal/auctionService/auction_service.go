package auction

import (
	"fmt"
	"math"
	"strings"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

const (
	// DefaultBidder is used when a bid request carries no bidder identity.
	DefaultBidder = "Anonymous User"

	// DefaultAvatar is the placeholder avatar attached to bids without one.
	DefaultAvatar = "/placeholder.svg?height=40&width=40"
)

// BidOptions carries the optional parts of a bid request.
type BidOptions struct {
	Bidder       string
	BidderAvatar string
	MaxBid       float64
	AutoBid      bool
}

// BidResult is the outcome of a successfully placed bid.
type BidResult struct {
	Auction   models.Auction
	Bid       models.Bid
	IsWinning bool
}

// AuctionService defines the business logic in front of the auction store.
type AuctionService struct {
	store repository.AuctionStore
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(store repository.AuctionStore) *AuctionService {
	return &AuctionService{
		store: store,
	}
}

// PlaceBid validates the request, builds the bid record and hands it to the
// store, which applies the acceptance rules atomically.
func (s *AuctionService) PlaceBid(auctionID string, amount float64, opts BidOptions) (BidResult, error) {
	if auctionID == "" {
		return BidResult{}, fmt.Errorf("service: %w - missing auction ID", auctionerrors.ErrInvalidBid)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return BidResult{}, fmt.Errorf("service: %w - bid amount must be a positive finite number", auctionerrors.ErrInvalidBid)
	}

	bidder := opts.Bidder
	if bidder == "" {
		bidder = DefaultBidder
	}
	avatar := opts.BidderAvatar
	if avatar == "" {
		avatar = DefaultAvatar
	}
	bidType := "manual"
	if opts.AutoBid {
		bidType = "auto"
	}

	bid := models.Bid{
		ID:           utils.GenerateID(),
		Amount:       amount,
		Bidder:       bidder,
		BidderAvatar: avatar,
		BidType:      bidType,
	}

	auction, err := s.store.RecordBid(auctionID, bid)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: failed to place bid on auction %s: %w", auctionID, err)
	}

	// The store stamps the acceptance timestamp; read the bid back from the
	// updated history so the caller sees it.
	accepted := auction.BidHistory[len(auction.BidHistory)-1]

	return BidResult{
		Auction:   auction,
		Bid:       accepted,
		IsWinning: amount >= auction.CurrentBid,
	}, nil
}

// ListAuctions returns a snapshot of all auctions in creation order.
func (s *AuctionService) ListAuctions() []models.Auction {
	return s.store.ListAuctions()
}

// GetAuction returns a snapshot of a single auction.
func (s *AuctionService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ComputeStats returns the derived dashboard summary.
func (s *AuctionService) ComputeStats() models.Stats {
	return s.store.ComputeStats()
}

// UpdateAuctionFields applies a descriptive partial update. Bid state and
// identity fields are filtered out by the store.
func (s *AuctionService) UpdateAuctionFields(auctionID string, fields map[string]any) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	auction, err := s.store.UpdateAuctionFields(auctionID, fields)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to update auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// FindAuctionByName resolves a spoken item name to an auction by
// case-insensitive substring match, optionally restricted to active
// auctions. Used by the voice webhook's best-effort item resolution.
func (s *AuctionService) FindAuctionByName(name string, activeOnly bool) (models.Auction, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction name", auctionerrors.ErrInvalidBid)
	}

	for _, a := range s.store.ListAuctions() {
		if activeOnly && a.Status != models.StatusActive {
			continue
		}
		if strings.Contains(strings.ToLower(a.Name), needle) {
			return a, nil
		}
	}
	return models.Auction{}, fmt.Errorf("service: no auction matching %q: %w", name, auctionerrors.ErrAuctionNotFound)
}
