package handler

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	auction "auction-house/internal/auctionService"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func sampleAuction(currentBid float64) model.Auction {
	return model.Auction{
		ID:            "auction-1",
		Name:          "Vintage Oil Painting",
		CurrentBid:    currentBid,
		TimeRemaining: 3600,
		TotalBids:     1,
		StartingBid:   100,
		Status:        model.StatusActive,
		BidHistory: []model.Bid{
			{ID: "bid-1", Amount: currentBid, Bidder: "alice", Timestamp: 1000, BidType: "manual"},
		},
	}
}

// Test ListHandler
func TestListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	h := NewAuctionHandler(mockService, nil, StreamConfig{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/auction/list", h.ListHandler)

	mockService.EXPECT().ListAuctions().Return([]model.Auction{sampleAuction(150)})
	mockService.EXPECT().ComputeStats().Return(model.Stats{TotalItems: 1, ActiveBids: 1, TotalRevenue: 150, ActiveUsers: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auction/list", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	auctions := resp["auctions"].([]any)
	require.Len(t, auctions, 1)
	first := auctions[0].(map[string]any)
	require.Equal(t, "auction-1", first["id"])
	require.Equal(t, 150.0, first["currentBid"])

	stats := resp["stats"].(map[string]any)
	require.Equal(t, 1.0, stats["totalItems"])
	require.NotZero(t, resp["timestamp"])
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	mockUsers := NewMockUserBidRecorder(ctrl)
	h := NewAuctionHandler(mockService, mockUsers, StreamConfig{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auction/bid", h.PlaceBidHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		validate       func(t *testing.T, resp map[string]any)
	}{
		{
			name: "success",
			requestBody: helpers.PlaceBidRequest{
				AuctionID: "auction-1",
				Amount:    200,
				Bidder:    "bob",
			},
			mockSetup: func() {
				updated := sampleAuction(200)
				updated.TotalBids = 2
				updated.BidHistory = append(updated.BidHistory,
					model.Bid{ID: "bid-2", Amount: 200, Bidder: "bob", Timestamp: 2000, BidType: "manual"})
				mockService.EXPECT().
					PlaceBid("auction-1", 200.0, auction.BidOptions{Bidder: "bob"}).
					Return(auction.BidResult{
						Auction:   updated,
						Bid:       updated.BidHistory[1],
						IsWinning: true,
					}, nil)
				mockUsers.EXPECT().RecordBid(gomock.Any()).DoAndReturn(func(b model.UserBid) model.UserBid {
					require.Equal(t, "auction-1", b.AuctionID)
					require.Equal(t, 200.0, b.Amount)
					require.Equal(t, "winning", b.Status)
					return b
				})
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, true, resp["success"])
				require.Equal(t, "Bid of $200 placed successfully", resp["message"])
				require.Equal(t, true, resp["isWinning"])
				bid := resp["bid"].(map[string]any)
				require.Equal(t, "bid-2", bid["id"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{not json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "Missing required fields: auctionId and amount", resp["error"])
			},
		},
		{
			name:           "missing_auction_id",
			requestBody:    map[string]any{"amount": 200},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, resp map[string]any) {
				require.Contains(t, resp, "error")
			},
		},
		{
			name:        "bid_too_low",
			requestBody: helpers.PlaceBidRequest{AuctionID: "auction-1", Amount: 100},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auction-1", 100.0, auction.BidOptions{}).
					Return(auction.BidResult{}, &auctionerrors.BidTooLowError{CurrentBid: 150, MinimumBid: 200})
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "Bid must be higher than current bid of $150", resp["error"])
				require.Equal(t, 150.0, resp["currentBid"])
				require.Equal(t, 200.0, resp["minimumBid"])
			},
		},
		{
			name:        "auction_ended",
			requestBody: helpers.PlaceBidRequest{AuctionID: "auction-1", Amount: 500},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auction-1", 500.0, auction.BidOptions{}).
					Return(auction.BidResult{}, auctionerrors.ErrAuctionEnded)
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "Auction has ended", resp["error"])
			},
		},
		{
			name:        "auction_not_found",
			requestBody: helpers.PlaceBidRequest{AuctionID: "auction-x", Amount: 500},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auction-x", 500.0, auction.BidOptions{}).
					Return(auction.BidResult{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "Auction not found", resp["error"])
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			var body []byte
			switch v := tc.requestBody.(type) {
			case string:
				body = []byte(v)
			default:
				var err error
				body, err = json.Marshal(v)
				require.NoError(t, err)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auction/bid", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			tc.validate(t, resp)
		})
	}
}

// Test StreamHandler
func TestStreamHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	h := NewAuctionHandler(mockService, nil, StreamConfig{Interval: 10 * time.Millisecond, Heartbeat: time.Hour})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/auction/stream", h.StreamHandler)

	mockService.EXPECT().ListAuctions().Return([]model.Auction{sampleAuction(150)}).MinTimes(1)
	mockService.EXPECT().ComputeStats().Return(model.Stats{TotalItems: 1}).MinTimes(1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auction/stream", nil).WithContext(ctx)
	router.ServeHTTP(w, req)

	require.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	require.Equal(t, "no-cache", w.Header().Get("Cache-Control"))

	// At least the initial snapshot plus one tick should have been written.
	scanner := bufio.NewScanner(w.Body)
	var events int
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data:")), &payload))
		require.Equal(t, "auction_update", payload["type"])
		require.Contains(t, payload, "auctions")
		require.Contains(t, payload, "stats")
		events++
	}
	require.GreaterOrEqual(t, events, 2)
}
