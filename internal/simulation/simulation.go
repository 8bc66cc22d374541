package simulation

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"euchre-sim/internal/game"
	"euchre-sim/internal/shared"
	"euchre-sim/internal/strategy"
)

// ErrInvalidConfig is returned when a study cannot be run as configured.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Every trial is dealt by seat 0.
const trialDealer = 0

// Config describes a study: one pinned hand and upcard replayed over many
// random deals of the remaining cards.
type Config struct {
	Hand       []shared.Card
	Upcard     shared.Card
	Seat       int // relative to the dealer: 0 is the dealer, 1 leads
	Trials     int
	Seed       uint64
	Workers    int
	ForceSuit  *shared.Suit
	ForceAlone *bool
	Strategy   strategy.Factory // nil uses strategy.Simple at every seat

	// Progress is called with the number of trials just finished. RunParallel
	// calls it and Observer from several goroutines.
	Progress func(n int)
	Observer game.Observer
}

// PinnedSeat is the absolute seat holding Hand.
func (c Config) PinnedSeat() int {
	return (c.Seat + trialDealer) % shared.NumSeats
}

// Validate checks everything a trial would otherwise fail on.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	}
	if c.Seat < 0 || c.Seat >= shared.NumSeats {
		return fmt.Errorf("%w: seat %d out of range", ErrInvalidConfig, c.Seat)
	}
	if c.ForceSuit != nil && !c.ForceSuit.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, shared.ErrInvalidSuit)
	}
	// a throwaway deal validates the pinned cards
	if _, err := shared.FixedDeal(c.Hand, c.Upcard, c.PinnedSeat(), rand.New(rand.NewPCG(0, 0))); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Trial is one hand seen from the pinned seat's team.
type Trial struct {
	Tricks int  // tricks taken by the pinned team
	Points int  // signed, positive when the pinned team scored
	Won    bool // the pinned team scored
	Makers bool // the pinned team named trump
	Alone  bool // the pinned seat went alone
}

// Stats accumulates trials. Sums are order independent, so parallel and
// sequential runs agree exactly.
type Stats struct {
	Trials      int `json:"trials"`
	TotalTricks int `json:"total_tricks"`
	TotalPoints int `json:"total_points"`
	Wins        int `json:"wins"`
	MakerHands  int `json:"maker_hands"`
	AloneHands  int `json:"alone_hands"`
}

// Add folds one trial into s.
func (s *Stats) Add(t Trial) {
	s.Trials++
	s.TotalTricks += t.Tricks
	s.TotalPoints += t.Points
	if t.Won {
		s.Wins++
	}
	if t.Makers {
		s.MakerHands++
	}
	if t.Alone {
		s.AloneHands++
	}
}

// Merge adds the totals of o into s.
func (s *Stats) Merge(o Stats) {
	s.Trials += o.Trials
	s.TotalTricks += o.TotalTricks
	s.TotalPoints += o.TotalPoints
	s.Wins += o.Wins
	s.MakerHands += o.MakerHands
	s.AloneHands += o.AloneHands
}

// Report is the averaged result of a study.
type Report struct {
	Trials    int     `json:"trials"`
	AvgTricks float64 `json:"avg_tricks"`
	AvgPoints float64 `json:"avg_points"`
	WinRate   float64 `json:"win_rate"`
	MakerRate float64 `json:"maker_rate"`
	AloneRate float64 `json:"alone_rate"`
}

// Report averages the totals.
func (s Stats) Report() Report {
	if s.Trials == 0 {
		return Report{}
	}
	n := float64(s.Trials)
	return Report{
		Trials:    s.Trials,
		AvgTricks: float64(s.TotalTricks) / n,
		AvgPoints: float64(s.TotalPoints) / n,
		WinRate:   float64(s.Wins) / n,
		MakerRate: float64(s.MakerHands) / n,
		AloneRate: float64(s.AloneHands) / n,
	}
}

// Seeds draws one sub-seed per trial from the top-level seed.
func (c Config) Seeds() []uint64 {
	rng := rand.New(rand.NewPCG(c.Seed, c.Seed))
	seeds := make([]uint64, c.Trials)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}
	return seeds
}

// RunTrial plays one hand of the study from its own sub-seed.
func RunTrial(c Config, seed uint64) (Trial, error) {
	rng := rand.New(rand.NewPCG(seed, seed))
	pinned := c.PinnedSeat()

	deal, err := shared.FixedDeal(c.Hand, c.Upcard, pinned, rng)
	if err != nil {
		return Trial{}, err
	}

	factory := c.Strategy
	if factory == nil {
		factory = strategy.NewSimpleFactory()
	}
	var strategies [shared.NumSeats]strategy.Strategy
	for seat := range strategies {
		strategies[seat] = factory(seat)
	}
	if c.ForceSuit != nil || c.ForceAlone != nil {
		strategies[pinned] = &strategy.Forced{Base: strategies[pinned], Suit: c.ForceSuit, Alone: c.ForceAlone}
	}

	g := game.NewGame(game.Config{Strategies: strategies, Dealer: trialDealer, Rand: rng, Observer: c.Observer})
	out, err := g.PlayHand(deal)
	if err != nil {
		return Trial{}, err
	}

	team := shared.TeamOf(pinned)
	return Trial{
		Tricks: out.Tricks[team],
		Points: out.PointsFor(team),
		Won:    out.ScoringTeam == team,
		Makers: out.Makers == team,
		Alone:  out.Alone && out.Caller == pinned,
	}, nil
}

// Run plays every trial in order on the calling goroutine.
func Run(c Config) (Report, error) {
	if err := c.Validate(); err != nil {
		return Report{}, err
	}
	var stats Stats
	for i, seed := range c.Seeds() {
		t, err := RunTrial(c, seed)
		if err != nil {
			return Report{}, fmt.Errorf("trial %d: %w", i, err)
		}
		stats.Add(t)
		if c.Progress != nil {
			c.Progress(1)
		}
	}
	return stats.Report(), nil
}
