package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string  `json:"auctionId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Bidder    string  `json:"bidder"`
	MaxBid    float64 `json:"maxBid"`
	AutoBid   bool    `json:"autoBid"`
}

type WatchlistRequest struct {
	AuctionID string `json:"auctionId" binding:"required"`
	Action    string `json:"action" binding:"required,oneof=add remove"`
}

// WebhookRequest is the payload pushed by the OmniDimension voice service.
type WebhookRequest struct {
	Intent    string         `json:"intent"`
	Entities  map[string]any `json:"entities"`
	UserInput string         `json:"user_input"`
	SessionID string         `json:"session_id"`
}
