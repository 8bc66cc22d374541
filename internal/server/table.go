package server

import (
	"context"
	"log"
	"time"

	"euchre-sim/internal/game"
)

// TableConfig controls the exhibition table spectators watch.
type TableConfig struct {
	TargetScore int
	Seed        uint64
	Delay       time.Duration // pause after every trick
	Logger      *log.Logger   // when set, every event is also logged
}

// RunTable plays bot games back to back and publishes their events to the
// hub until ctx is cancelled. Each game is seeded from Seed plus its index.
func RunTable(ctx context.Context, hub *Hub, cfg TableConfig) {
	publish := hub.Observer()
	var logEvent game.Observer
	if cfg.Logger != nil {
		logEvent = game.LogObserver(cfg.Logger)
	}

	for n := uint64(0); ctx.Err() == nil; n++ {
		g := game.NewGame(game.Config{
			TargetScore: cfg.TargetScore,
			Seed:        cfg.Seed + n,
			Observer: func(e game.Event) {
				publish(e)
				if logEvent != nil {
					logEvent(e)
				}
				if e.Kind == game.EventTrickPlayed || e.Kind == game.EventGameOver {
					pause(ctx, cfg.Delay)
				}
			},
		})
		log.Printf("Game %s: exhibition game %d starting", g.ID, n+1)
		winner, err := g.PlayGame()
		if err != nil {
			log.Printf("Game %s: aborted: %v", g.ID, err)
			continue
		}
		log.Printf("Game %s: team %d wins %d-%d", g.ID, winner, g.Scores()[0], g.Scores()[1])
	}
}

func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
