package main

import (
	"context"
	"fmt"
	"os"

	machine "auctionhouse/internal/auctionMachine"
	views "auctionhouse/internal/auctionViews"
	ledger "auctionhouse/internal/bidLedger"
	"auctionhouse/internal/clock"
	"auctionhouse/internal/config"
	"auctionhouse/internal/fanout"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/internal/repository/mysqlstore"
	"auctionhouse/internal/server"
	"auctionhouse/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	store, err := buildStore(cfg)
	if err != nil {
		utils.Fatal("failed to initialize store", map[string]any{"store": cfg.Store, "error": err.Error()})
	}

	clk := clock.NewSystem()
	hub := fanout.NewHub()

	bidLedger := ledger.NewBidLedger(store, clk, hub)
	auctionMachine := machine.NewAuctionMachine(store, clk, hub)
	viewBuilder := views.NewBuilder(store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := machine.NewSweeper(auctionMachine, cfg.SweepInterval)
	go sweeper.Run(ctx)

	router := server.SetupRouter(bidLedger, auctionMachine, viewBuilder, server.NewLiveFeedHandler(hub))

	addr := ":" + cfg.Port
	utils.Info("starting auction server", map[string]any{"addr": addr, "store": cfg.Store})
	if err := router.Run(addr); err != nil {
		utils.Fatal("server exited", map[string]any{"error": err.Error()})
	}
}

// buildStore selects the persistence backend from config. The in-memory
// store is seeded with sample users so the bidder-label join has data to
// resolve against in local runs.
func buildStore(cfg config.Config) (repository.AuctionStore, error) {
	if cfg.Store == "mysql" {
		return mysqlstore.New(cfg.MySQLDSN)
	}

	store := repository.NewMemoryStore()
	prepopulateUsers(store)
	return store, nil
}

// prepopulateUsers adds sample print shops to the in-memory store
func prepopulateUsers(store *repository.MemoryStore) {
	users := []model.User{
		{UserID: "shop1", Name: "", CompanyName: "Rapid Print Co"},
		{UserID: "shop2", Name: "Ana Ribeiro", CompanyName: ""},
		{UserID: "shop3", Name: "", CompanyName: "Offset House"},
	}
	for _, u := range users {
		store.SaveUser(u)
	}
}
