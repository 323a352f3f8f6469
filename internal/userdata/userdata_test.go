package userdata

import (
	"testing"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"

	"github.com/stretchr/testify/require"
)

func TestUserStore_RecordBid(t *testing.T) {
	t.Parallel()

	store := NewUserStore()

	first := store.RecordBid(model.UserBid{
		AuctionID:   "auction-1",
		AuctionName: "Painting",
		Amount:      150,
		Bidder:      "Current User",
	})
	require.NotEmpty(t, first.ID)
	require.NotZero(t, first.Timestamp)
	require.Equal(t, "winning", first.Status)

	// A later bid on the same auction outbids the earlier one.
	second := store.RecordBid(model.UserBid{
		AuctionID: "auction-1",
		Amount:    200,
		Bidder:    "Current User",
	})
	require.Equal(t, "winning", second.Status)

	bids := store.Bids()
	require.Len(t, bids, 2)
	require.Equal(t, "outbid", bids[0].Status)
	require.Equal(t, "winning", bids[1].Status)
}

func TestUserStore_Watchlist(t *testing.T) {
	t.Parallel()

	store := NewUserStore()

	list, err := store.AddToWatchlist("auction-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "auction-1", list[0].AuctionID)

	_, err = store.AddToWatchlist("auction-1")
	require.ErrorIs(t, err, auctionerrors.ErrAlreadyWatched)

	_, err = store.AddToWatchlist("auction-2")
	require.NoError(t, err)

	list, err = store.RemoveFromWatchlist("auction-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "auction-2", list[0].AuctionID)

	_, err = store.RemoveFromWatchlist("auction-1")
	require.ErrorIs(t, err, auctionerrors.ErrNotWatched)
}

func TestUserStore_Stats(t *testing.T) {
	t.Parallel()

	store := NewUserStore()
	require.Equal(t, model.UserStats{}, store.Stats())

	store.Seed([]model.UserBid{
		{ID: "user-bid-1", AuctionID: "auction-1", Amount: 2800, Status: "outbid"},
		{ID: "user-bid-2", AuctionID: "auction-2", Amount: 4100, Status: "won"},
		{ID: "user-bid-3", AuctionID: "auction-3", Amount: 1100, Status: "won"},
	}, []model.WatchlistItem{
		{ID: "watch-1", AuctionID: "auction-3"},
	})

	stats := store.Stats()
	require.Equal(t, 3, stats.TotalBids)
	require.Equal(t, 2, stats.WonAuctions)
	require.Equal(t, 1, stats.WatchlistItems)
	require.Equal(t, 67, stats.SuccessRate)
	require.Equal(t, 5200.0, stats.TotalSpent)
	require.Equal(t, 2667.0, stats.AvgBid)
}

func TestUserStore_CopiesAreDefensive(t *testing.T) {
	t.Parallel()

	store := NewUserStore()
	store.Seed([]model.UserBid{{ID: "user-bid-1", AuctionID: "auction-1", Amount: 100, Status: "winning"}}, nil)

	bids := store.Bids()
	bids[0].Amount = 999999

	require.Equal(t, 100.0, store.Bids()[0].Amount)
}
