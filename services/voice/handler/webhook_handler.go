package handler

import (
	"fmt"
	"net/http"
	"strings"

	auction "auction-house/internal/auctionService"
	model "auction-house/internal/models"
	"auction-house/internal/voice"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// VoiceAuctionService is the slice of the auction service the webhook needs.
type VoiceAuctionService interface {
	ListAuctions() []model.Auction
	PlaceBid(auctionID string, amount float64, opts auction.BidOptions) (auction.BidResult, error)
	FindAuctionByName(name string, activeOnly bool) (model.Auction, error)
	UpdateAuctionFields(auctionID string, fields map[string]any) (model.Auction, error)
}

// WebhookHandler turns OmniDimension voice intents into engine calls and
// spoken-style replies. Entity extraction is best effort; every mutation
// still goes through the service's validation.
type WebhookHandler struct {
	service VoiceAuctionService
}

func NewWebhookHandler(service VoiceAuctionService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

const fallbackMessage = "I'm sorry, I didn't understand that. You can ask about available auctions or place a bid."

// WebhookHandler handles POST /api/omnidimension/webhook
func (h *WebhookHandler) WebhookHandler(c *gin.Context) {
	var req helpers.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "I'm experiencing technical difficulties. Please try again.",
			"error":   "Internal server error",
		})
		utils.Warn("WebhookHandler: malformed payload", map[string]any{"error": err.Error()})
		return
	}

	utils.Info("WebhookHandler: intent received", map[string]any{
		"intent":     req.Intent,
		"session_id": req.SessionID,
	})

	message := fallbackMessage
	var data any

	switch req.Intent {
	case "list_auctions", "get_auctions":
		message, data = h.listAuctions()
	case "place_bid":
		message, data = h.placeBid(req)
	case "get_auction_info":
		message, data = h.auctionInfo(req)
	case "get_current_bid":
		message, data = h.currentBid(req)
	case "update_auction_details":
		message, data = h.updateDetails(req)
	default:
		if strings.Contains(strings.ToLower(req.UserInput), "help") {
			message = "I can help you with auctions! You can ask me to 'list available auctions', 'tell me about an item', or 'place a bid'. What would you like to do?"
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "data": data})
}

func (h *WebhookHandler) listAuctions() (string, any) {
	var active []model.Auction
	for _, a := range h.service.ListAuctions() {
		if a.Status == model.StatusActive {
			active = append(active, a)
		}
	}

	if len(active) == 0 {
		return "There are currently no active auctions.", nil
	}

	lines := make([]string, 0, len(active))
	for _, a := range active {
		lines = append(lines, fmt.Sprintf("%s: Current bid is $%s, %d minutes remaining",
			a.Name, helpers.FormatAmount(a.CurrentBid), a.TimeRemaining/60))
	}
	message := fmt.Sprintf("Here are the active auctions: %s. Would you like to place a bid on any of these items?",
		strings.Join(lines, ". "))
	return message, active
}

func (h *WebhookHandler) placeBid(req helpers.WebhookRequest) (string, any) {
	amount, okAmount := entityFloat(req.Entities, "amount")
	if !okAmount {
		amount, okAmount = voice.ExtractAmount(req.UserInput)
	}
	item, okItem := entityString(req.Entities, "item")
	if !okItem {
		item, okItem = voice.ExtractItem(req.UserInput)
	}

	if !okAmount || !okItem {
		return "To place a bid, please specify both the amount and the item name. For example: 'I want to bid $500 on the vintage painting'", nil
	}

	target, err := h.service.FindAuctionByName(item, true)
	if err != nil {
		return fmt.Sprintf("I couldn't find an active auction for %q. Please check the available auctions first.", item), nil
	}

	result, err := h.service.PlaceBid(target.ID, amount, auction.BidOptions{
		Bidder: fmt.Sprintf("Voice User %s", req.SessionID),
	})
	if err != nil {
		return fmt.Sprintf("Sorry, I couldn't place your bid. The current highest bid for %s is $%s.",
			target.Name, helpers.FormatAmount(target.CurrentBid)), nil
	}

	return fmt.Sprintf("Great! Your bid of $%s on %s has been placed successfully. You are now the highest bidder!",
		helpers.FormatAmount(amount), target.Name), result.Auction
}

func (h *WebhookHandler) auctionInfo(req helpers.WebhookRequest) (string, any) {
	item, ok := entityString(req.Entities, "item")
	if !ok {
		item, ok = voice.ExtractItem(req.UserInput)
	}
	if !ok {
		return "Which auction item would you like to know about?", nil
	}

	target, err := h.service.FindAuctionByName(item, false)
	if err != nil {
		return fmt.Sprintf("I couldn't find an auction for %q. Please check the available auctions.", item), nil
	}

	timeLeft := "auction has ended"
	if target.Status == model.StatusActive {
		timeLeft = fmt.Sprintf("%d minutes remaining", target.TimeRemaining/60)
	}
	message := fmt.Sprintf("%s: %s. Current bid is $%s with %d total bids. %s.",
		target.Name, target.Description, helpers.FormatAmount(target.CurrentBid), target.TotalBids, timeLeft)
	return message, target
}

func (h *WebhookHandler) currentBid(req helpers.WebhookRequest) (string, any) {
	item, ok := entityString(req.Entities, "item")
	if !ok {
		item, ok = voice.ExtractItem(req.UserInput)
	}
	if !ok {
		return "Which item's current bid would you like to know?", nil
	}

	target, err := h.service.FindAuctionByName(item, false)
	if err != nil {
		return fmt.Sprintf("I couldn't find an auction for %q.", item), nil
	}

	message := fmt.Sprintf("The current bid for %s is $%s.", target.Name, helpers.FormatAmount(target.CurrentBid))
	return message, gin.H{"currentBid": target.CurrentBid, "auction": target}
}

func (h *WebhookHandler) updateDetails(req helpers.WebhookRequest) (string, any) {
	auctionID, ok := entityString(req.Entities, "auction_id")
	if !ok {
		return fallbackMessage, nil
	}
	updates, _ := req.Entities["updates"].(map[string]any)

	updated, err := h.service.UpdateAuctionFields(auctionID, updates)
	if err != nil {
		return fmt.Sprintf("Failed to update auction: %s", err.Error()), nil
	}
	return fmt.Sprintf("Auction details for %s have been updated successfully.", updated.Name), updated
}

func entityString(entities map[string]any, key string) (string, bool) {
	v, ok := entities[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func entityFloat(entities map[string]any, key string) (float64, bool) {
	switch v := entities[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
