package handler

import (
	"errors"
	"net/http"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type UserStoreInterface interface {
	Bids() []model.UserBid
	Watchlist() []model.WatchlistItem
	Stats() model.UserStats
	AddToWatchlist(auctionID string) ([]model.WatchlistItem, error)
	RemoveFromWatchlist(auctionID string) ([]model.WatchlistItem, error)
}

type UserHandler struct {
	store UserStoreInterface
}

func NewUserHandler(store UserStoreInterface) *UserHandler {
	return &UserHandler{store: store}
}

// GetBidsHandler handles GET /api/user/bids
func (h *UserHandler) GetBidsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"bids":      h.store.Bids(),
		"stats":     h.store.Stats(),
		"watchlist": h.store.Watchlist(),
		"timestamp": time.Now().UnixMilli(),
	})
}

// GetWatchlistHandler handles GET /api/user/watchlist
func (h *UserHandler) GetWatchlistHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"watchlist": h.store.Watchlist()})
}

// UpdateWatchlistHandler handles POST /api/user/watchlist
func (h *UserHandler) UpdateWatchlistHandler(c *gin.Context) {
	var req helpers.WatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateWatchlistHandler", "Missing required fields: auctionId and action", err)
		return
	}

	var (
		watchlist []model.WatchlistItem
		err       error
	)
	if req.Action == "add" {
		watchlist, err = h.store.AddToWatchlist(req.AuctionID)
	} else {
		watchlist, err = h.store.RemoveFromWatchlist(req.AuctionID)
	}
	if err != nil {
		switch {
		case errors.Is(err, auctionerrors.ErrAlreadyWatched):
			utils.JSONError(c, http.StatusBadRequest, "Item already in watchlist")
		case errors.Is(err, auctionerrors.ErrNotWatched):
			utils.JSONError(c, http.StatusBadRequest, "Item not found in watchlist")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update watchlist")
		}
		utils.Warn("UpdateWatchlistHandler: watchlist update failed", map[string]any{
			"auction_id": req.AuctionID,
			"action":     req.Action,
			"error":      err.Error(),
		})
		return
	}

	message := "Item added to watchlist"
	if req.Action == "remove" {
		message = "Item removed from watchlist"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"watchlist": watchlist,
		"message":   message,
	})
	helpers.LogSuccess("UpdateWatchlistHandler", message, map[string]any{
		"auction_id": req.AuctionID,
		"action":     req.Action,
	})
}
