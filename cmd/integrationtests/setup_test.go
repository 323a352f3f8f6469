package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/userdata"

	"github.com/gin-gonic/gin"
)

// testEnv bundles the wired application pieces so tests can reach behind the
// HTTP surface when needed.
type testEnv struct {
	router *gin.Engine
	store  *repository.MemoryStore
	users  *userdata.UserStore
}

// SetupTestRouter initializes the full router over fresh in-memory stores,
// seeded with the given auctions.
func SetupTestRouter(auctions ...model.Auction) testEnv {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	for _, a := range auctions {
		store.AddAuction(a)
	}
	users := userdata.NewUserStore()
	svc := auction.NewAuctionService(store)

	cfg := config.Config{
		Addr:              ":0",
		TickInterval:      time.Second,
		StreamInterval:    20 * time.Millisecond,
		HeartbeatInterval: time.Hour,
	}
	return testEnv{
		router: server.SetupRouter(svc, users, cfg),
		store:  store,
		users:  users,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the router and parses
// the JSON response.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// activeAuction returns a minimal active auction for seeding.
func activeAuction(id, name string, currentBid float64, timeRemaining int) model.Auction {
	return model.Auction{
		ID:            id,
		Name:          name,
		Description:   name + " description",
		CurrentBid:    currentBid,
		StartingBid:   currentBid,
		TimeRemaining: timeRemaining,
		Status:        model.StatusActive,
	}
}
