package helpers

import (
	"errors"
	"net/http"
	"strconv"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends the flat error body for binding failures.
func HandleBindError(c *gin.Context, handlerName, message string, err error) {
	utils.JSONError(c, http.StatusBadRequest, message)
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// WriteBidError maps a bid failure onto the wire format the UI expects:
// 404 for unknown auctions, 400 with currentBid/minimumBid for low bids,
// plain 400 for everything else recoverable.
func WriteBidError(c *gin.Context, err error) {
	var tooLow *auctionerrors.BidTooLowError
	switch {
	case errors.As(err, &tooLow):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Bid must be higher than current bid of $" + FormatAmount(tooLow.CurrentBid),
			"currentBid": tooLow.CurrentBid,
			"minimumBid": tooLow.MinimumBid,
		})
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Auction not found")
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		utils.JSONError(c, http.StatusBadRequest, "Auction has ended")
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		utils.JSONError(c, http.StatusBadRequest, "Invalid bid amount")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to place bid")
	}
}

// FormatAmount renders a dollar amount without a trailing ".00" for whole
// numbers, matching the UI's display values.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// LogSuccess standardizes logging of successful operations.
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
