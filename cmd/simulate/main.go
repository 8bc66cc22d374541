package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"euchre-sim/internal/config"
	"euchre-sim/internal/database"
	"euchre-sim/internal/game"
	"euchre-sim/internal/shared"
	"euchre-sim/internal/simulation"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

func main() {
	configPath := flag.String("config", "", "optional YAML, TOML or JSON config file")
	hand := flag.String("hand", "JC JS AC KC QC", "pinned five-card hand")
	upcard := flag.String("upcard", "9C", "pinned upcard")
	seat := flag.Int("seat", 0, "pinned seat relative to the dealer (0 is the dealer)")
	forceSuit := flag.String("force-suit", "", "always call this suit when it is offered")
	forceAlone := flag.String("force-alone", "", "true or false to override going alone")
	trials := flag.Int("trials", 0, "number of trials (default from config)")
	seed := flag.String("seed", "", "top-level seed (default from config)")
	workers := flag.Int("workers", -1, "worker goroutines, 0 uses every CPU (default from config)")
	verbose := flag.Bool("verbose", false, "log every table event; runs sequentially")
	store := flag.Bool("store", false, "save the report to the database")
	play := flag.Bool("play", false, "play one full bot game to the winning score instead")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "\nEnvironment:")
		fmt.Fprintln(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *trials > 0 {
		cfg.Trials = *trials
	}
	if *seed != "" {
		if cfg.Seed, err = strconv.ParseUint(*seed, 10, 64); err != nil {
			log.Fatalf("Invalid seed %q: %v", *seed, err)
		}
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	cfg.Verbose = cfg.Verbose || *verbose

	if *play {
		playGame(cfg)
		return
	}

	sim, err := studyConfig(cfg, *hand, *upcard, *seat, *forceSuit, *forceAlone)
	if err != nil {
		log.Fatalf("Invalid study: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Simulating %s trials of %s with upcard %s at seat %d (seed %d)",
		humanize.Comma(int64(sim.Trials)), *hand, sim.Upcard, sim.Seat, sim.Seed)

	start := time.Now()
	var report simulation.Report
	if cfg.Verbose {
		sim.Observer = game.LogObserver(log.Default())
		report, err = simulation.Run(sim)
	} else {
		bar := progressbar.Default(int64(sim.Trials), "simulating")
		sim.Progress = func(n int) { bar.Add(n) }
		report, err = simulation.RunParallel(ctx, sim)
		bar.Finish()
	}
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("trials      %s\n", humanize.Comma(int64(report.Trials)))
	fmt.Printf("avg tricks  %s\n", humanize.FtoaWithDigits(report.AvgTricks, 4))
	fmt.Printf("avg points  %s\n", humanize.FtoaWithDigits(report.AvgPoints, 4))
	fmt.Printf("win rate    %s%%\n", humanize.FtoaWithDigits(report.WinRate*100, 2))
	fmt.Printf("maker rate  %s%%\n", humanize.FtoaWithDigits(report.MakerRate*100, 2))
	fmt.Printf("alone rate  %s%%\n", humanize.FtoaWithDigits(report.AloneRate*100, 2))
	fmt.Printf("elapsed     %s\n", elapsed.Round(time.Millisecond))

	if *store {
		db, err := database.New(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		result := database.NewSimulationResult(sim, report, elapsed)
		if err := db.Insert(result); err != nil {
			log.Fatalf("Failed to store report: %v", err)
		}
		log.Printf("Stored report %s in %s", result.ID, db.TableName())
	}
}

func studyConfig(cfg *config.Config, hand, upcard string, seat int, forceSuit, forceAlone string) (simulation.Config, error) {
	cards, err := shared.ParseCards(strings.FieldsFunc(hand, func(r rune) bool { return r == ' ' || r == ',' }))
	if err != nil {
		return simulation.Config{}, err
	}
	up, err := shared.ParseCard(upcard)
	if err != nil {
		return simulation.Config{}, err
	}
	sim := simulation.Config{
		Hand:    cards,
		Upcard:  up,
		Seat:    seat,
		Trials:  cfg.Trials,
		Seed:    cfg.Seed,
		Workers: cfg.Workers,
	}
	if forceSuit != "" {
		s, err := shared.ParseSuit(forceSuit)
		if err != nil {
			return simulation.Config{}, err
		}
		sim.ForceSuit = &s
	}
	if forceAlone != "" {
		alone, err := strconv.ParseBool(forceAlone)
		if err != nil {
			return simulation.Config{}, fmt.Errorf("force-alone: %w", err)
		}
		sim.ForceAlone = &alone
	}
	return sim, sim.Validate()
}

func playGame(cfg *config.Config) {
	gc := game.Config{TargetScore: cfg.WinningScore, Seed: cfg.Seed}
	if cfg.Verbose {
		gc.Observer = game.LogObserver(log.Default())
	}
	g := game.NewGame(gc)
	winner, err := g.PlayGame()
	if err != nil {
		log.Fatalf("Game %s: %v", g.ID, err)
	}
	scores := g.Scores()
	fmt.Printf("Team %d wins %d-%d after %d hands\n", winner, scores[0], scores[1], g.HandNumber)
}
