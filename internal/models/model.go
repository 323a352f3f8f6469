package models

// AuctionStatus is the lifecycle state of an auction. The only transition
// is active -> ended; ended is terminal.
type AuctionStatus string

const (
	StatusActive AuctionStatus = "active"
	StatusEnded  AuctionStatus = "ended"
)

// Bid is a single accepted bid on an auction. Bids are immutable once recorded.
type Bid struct {
	ID           string  `json:"id"`
	Amount       float64 `json:"amount"`
	Timestamp    int64   `json:"timestamp"` // unix milliseconds
	Bidder       string  `json:"bidder"`
	BidderAvatar string  `json:"bidderAvatar,omitempty"`
	BidType      string  `json:"bidType,omitempty"` // "manual" or "auto"
}

// Auction represents one item for sale. CurrentBid, TotalBids, BidHistory,
// TimeRemaining and Status are owned by the store; the remaining fields are
// descriptive payload carried for the UI.
type Auction struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	CurrentBid     float64       `json:"currentBid"`
	TimeRemaining  int           `json:"timeRemaining"` // seconds
	TotalBids      int           `json:"totalBids"`
	StartingBid    float64       `json:"startingBid"`
	ReservePrice   float64       `json:"reservePrice,omitempty"`
	Category       string        `json:"category,omitempty"`
	Condition      string        `json:"condition,omitempty"`
	Year           string        `json:"year,omitempty"`
	Seller         string        `json:"seller,omitempty"`
	SellerRating   float64       `json:"sellerRating,omitempty"`
	Location       string        `json:"location,omitempty"`
	ShippingInfo   string        `json:"shippingInfo,omitempty"`
	EstimatedValue string        `json:"estimatedValue,omitempty"`
	Image          string        `json:"image,omitempty"`
	Images         []string      `json:"images,omitempty"`
	ViewCount      int           `json:"viewCount,omitempty"`
	WatchCount     int           `json:"watchCount,omitempty"`
	BidHistory     []Bid         `json:"bidHistory"`
	Status         AuctionStatus `json:"status"`
}

// Stats is the dashboard summary derived from the whole store.
type Stats struct {
	TotalItems   int     `json:"totalItems"`
	ActiveBids   int     `json:"activeBids"`
	TotalRevenue float64 `json:"totalRevenue"`
	ActiveUsers  int     `json:"activeUsers"`
}

// UserBid is an entry in the per-user bid list. It lives in the user store,
// separate from the auction engine's bid history.
type UserBid struct {
	ID          string  `json:"id"`
	AuctionID   string  `json:"auctionId"`
	AuctionName string  `json:"auctionName"`
	Amount      float64 `json:"amount"`
	Timestamp   int64   `json:"timestamp"`
	Status      string  `json:"status"` // winning, outbid, won, lost
	MaxBid      float64 `json:"maxBid,omitempty"`
	AutoBid     bool    `json:"autoBid"`
	Bidder      string  `json:"bidder"`
}

// WatchlistItem marks an auction a user is watching.
type WatchlistItem struct {
	ID        string `json:"id"`
	AuctionID string `json:"auctionId"`
	AddedAt   int64  `json:"addedAt"`
}

// UserStats summarizes a user's bidding activity.
type UserStats struct {
	TotalBids      int     `json:"totalBids"`
	WonAuctions    int     `json:"wonAuctions"`
	WatchlistItems int     `json:"watchlistItems"`
	SuccessRate    int     `json:"successRate"` // percent
	TotalSpent     float64 `json:"totalSpent"`
	AvgBid         float64 `json:"avgBid"`
}
