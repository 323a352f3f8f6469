package main

import (
	"fmt"
	"os"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/ticker"
	"auction-house/internal/userdata"
)

func main() {

	cfg := config.Load()

	store := repository.NewMemoryStore()
	seedAuctions(store)

	users := userdata.NewUserStore()
	seedUserData(users)

	auctionSvc := auction.NewAuctionService(store)

	countdown := ticker.New(store, cfg.TickInterval)
	countdown.Start()
	defer countdown.Stop()

	router := server.SetupRouter(auctionSvc, users, cfg)

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
