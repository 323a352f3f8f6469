package handler

import (
	"net/http"
	"time"

	auction "auction-house/internal/auctionService"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	ListAuctions() []model.Auction
	ComputeStats() model.Stats
	PlaceBid(auctionID string, amount float64, opts auction.BidOptions) (auction.BidResult, error)
}

// UserBidRecorder mirrors an accepted bid into the user store.
type UserBidRecorder interface {
	RecordBid(bid model.UserBid) model.UserBid
}

// StreamConfig controls the SSE re-broadcast cadence.
type StreamConfig struct {
	Interval  time.Duration
	Heartbeat time.Duration
}

type AuctionHandler struct {
	service AuctionServiceInterface
	users   UserBidRecorder
	stream  StreamConfig
}

func NewAuctionHandler(service AuctionServiceInterface, users UserBidRecorder, stream StreamConfig) *AuctionHandler {
	if stream.Interval <= 0 {
		stream.Interval = 2 * time.Second
	}
	if stream.Heartbeat <= 0 {
		stream.Heartbeat = 15 * time.Second
	}
	return &AuctionHandler{service: service, users: users, stream: stream}
}

// ListHandler handles GET /api/auction/list
func (h *AuctionHandler) ListHandler(c *gin.Context) {
	auctions := h.service.ListAuctions()
	stats := h.service.ComputeStats()

	c.JSON(http.StatusOK, gin.H{
		"auctions":  auctions,
		"stats":     stats,
		"timestamp": time.Now().UnixMilli(),
	})
}

// PlaceBidHandler handles POST /api/auction/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", "Missing required fields: auctionId and amount", err)
		return
	}

	result, err := h.service.PlaceBid(req.AuctionID, req.Amount, auction.BidOptions{
		Bidder:  req.Bidder,
		MaxBid:  req.MaxBid,
		AutoBid: req.AutoBid,
	})
	if err != nil {
		helpers.WriteBidError(c, err)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": req.AuctionID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	if h.users != nil {
		h.users.RecordBid(model.UserBid{
			AuctionID:   result.Auction.ID,
			AuctionName: result.Auction.Name,
			Amount:      result.Bid.Amount,
			Timestamp:   result.Bid.Timestamp,
			Status:      "winning",
			MaxBid:      req.MaxBid,
			AutoBid:     req.AutoBid,
			Bidder:      result.Bid.Bidder,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Bid of $" + helpers.FormatAmount(result.Bid.Amount) + " placed successfully",
		"auction":   result.Auction,
		"bid":       result.Bid,
		"isWinning": result.IsWinning,
	})
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     result.Bid.ID,
		"auction_id": result.Auction.ID,
		"bidder":     result.Bid.Bidder,
		"amount":     result.Bid.Amount,
	})
}

// StreamHandler handles GET /api/auction/stream. It pushes the full auction
// snapshot as an SSE event immediately, then on every stream tick, with
// heartbeats in between, until the client disconnects.
func (h *AuctionHandler) StreamHandler(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	if err := h.sendSnapshot(c); err != nil {
		return
	}

	updates := time.NewTicker(h.stream.Interval)
	defer updates.Stop()
	heartbeats := time.NewTicker(h.stream.Heartbeat)
	defer heartbeats.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			utils.Info("StreamHandler: client disconnected", map[string]any{"client": c.ClientIP()})
			return
		case <-updates.C:
			if err := h.sendSnapshot(c); err != nil {
				return
			}
		case <-heartbeats.C:
			event := sse.Event{Data: gin.H{"type": "heartbeat", "timestamp": time.Now().UnixMilli()}}
			if err := sse.Encode(c.Writer, event); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

func (h *AuctionHandler) sendSnapshot(c *gin.Context) error {
	event := sse.Event{
		Data: gin.H{
			"type":      "auction_update",
			"auctions":  h.service.ListAuctions(),
			"stats":     h.service.ComputeStats(),
			"timestamp": time.Now().UnixMilli(),
		},
	}
	if err := sse.Encode(c.Writer, event); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}
