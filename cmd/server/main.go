package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"euchre-sim/internal/config"
	"euchre-sim/internal/database"
	"euchre-sim/internal/server"
)

// Studies over HTTP are capped so one request cannot pin the server.
const maxAPITrials = 1_000_000

func main() {
	configPath := flag.String("config", "", "optional YAML, TOML or JSON config file")
	flag.Parse()

	log.Println("Starting Euchre server...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	hub := server.NewHub()
	go hub.Run()

	table := server.TableConfig{
		TargetScore: cfg.WinningScore,
		Seed:        cfg.Seed,
		Delay:       time.Duration(cfg.HTTP.TableDelayMS) * time.Millisecond,
	}
	if cfg.Verbose {
		table.Logger = log.New(os.Stderr, "table ", log.LstdFlags)
	}
	go server.RunTable(context.Background(), hub, table)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		server.ServeWs(hub, w, r)
	})

	server.HandleRoutes(mux, &server.API{
		DB:            db,
		DefaultTrials: cfg.Trials,
		DefaultSeed:   cfg.Seed,
		Workers:       cfg.Workers,
		MaxTrials:     maxAPITrials,
	})

	log.Printf("Listening on %s", cfg.HTTP.Addr)
	log.Fatal(http.ListenAndServe(cfg.HTTP.Addr, mux))
}
