package database

import (
	"strconv"
	"strings"
	"time"

	"euchre-sim/internal/simulation"

	"github.com/google/uuid"
)

// SimulationResult is one stored study: its inputs and its report.
type SimulationResult struct {
	ID         string  `json:"id"`
	CreatedAt  string  `json:"created_at"`
	Hand       string  `json:"hand"` // space separated card notation
	Upcard     string  `json:"upcard"`
	Seat       int     `json:"seat"`
	Trials     int     `json:"trials"`
	Seed       string  `json:"seed"` // decimal, uint64 does not fit every driver
	ForceSuit  string  `json:"force_suit"`
	ForceAlone string  `json:"force_alone"` // "", "true" or "false"
	AvgTricks  float64 `json:"avg_tricks"`
	AvgPoints  float64 `json:"avg_points"`
	WinRate    float64 `json:"win_rate"`
	MakerRate  float64 `json:"maker_rate"`
	AloneRate  float64 `json:"alone_rate"`
	DurationMS int64   `json:"duration_ms"`
}

// NewSimulationResult records a finished study under a fresh ID.
func NewSimulationResult(c simulation.Config, r simulation.Report, elapsed time.Duration) SimulationResult {
	hand := make([]string, len(c.Hand))
	for i, card := range c.Hand {
		hand[i] = card.String()
	}
	res := SimulationResult{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Hand:       strings.Join(hand, " "),
		Upcard:     c.Upcard.String(),
		Seat:       c.Seat,
		Trials:     r.Trials,
		Seed:       strconv.FormatUint(c.Seed, 10),
		AvgTricks:  r.AvgTricks,
		AvgPoints:  r.AvgPoints,
		WinRate:    r.WinRate,
		MakerRate:  r.MakerRate,
		AloneRate:  r.AloneRate,
		DurationMS: elapsed.Milliseconds(),
	}
	if c.ForceSuit != nil {
		res.ForceSuit = c.ForceSuit.String()
	}
	if c.ForceAlone != nil {
		res.ForceAlone = strconv.FormatBool(*c.ForceAlone)
	}
	return res
}

// Report returns the stored averages.
func (r SimulationResult) Report() simulation.Report {
	return simulation.Report{
		Trials:    r.Trials,
		AvgTricks: r.AvgTricks,
		AvgPoints: r.AvgPoints,
		WinRate:   r.WinRate,
		MakerRate: r.MakerRate,
		AloneRate: r.AloneRate,
	}
}
