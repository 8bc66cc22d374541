package game

import "euchre-sim/internal/shared"

// Points awarded per hand.
const (
	pointsMarch     = 2 // makers take all five
	pointsMade      = 1 // makers take three or four
	pointsEuchre    = 2 // makers take fewer than three
	pointsLoneMarch = 4
	pointsLoneStop  = 4 // lone defender euchres a lone maker
)

// HandOutcome is the scored result of one hand.
type HandOutcome struct {
	Makers      int                  `json:"makers"`
	Defenders   int                  `json:"defenders"`
	Caller      int                  `json:"caller"`
	Trump       shared.Suit          `json:"trump"`
	Alone       bool                 `json:"alone"`
	DefendAlone bool                 `json:"defend_alone"`
	Tricks      [shared.NumTeams]int `json:"tricks"`
	MakerTricks int                  `json:"maker_tricks"`
	ScoringTeam int                  `json:"scoring_team"`
	Points      int                  `json:"points"` // awarded to ScoringTeam
	Delta       int                  `json:"delta"`  // signed from the makers' side
	MakersWon   bool                 `json:"makers_won"`
}

// PointsFor returns the signed points team gains from this hand.
func (h HandOutcome) PointsFor(team int) int {
	if team == h.ScoringTeam {
		return h.Points
	}
	return -h.Points
}

// ScoreHand applies the Euchre scoring table to the tricks each team took.
func ScoreHand(bid BidOutcome, tricks [shared.NumTeams]int) HandOutcome {
	m := tricks[bid.Makers]
	out := HandOutcome{
		Makers:      bid.Makers,
		Defenders:   bid.Defenders(),
		Caller:      bid.Caller,
		Trump:       bid.Trump,
		Alone:       bid.Alone,
		DefendAlone: bid.DefendAlone,
		Tricks:      tricks,
		MakerTricks: m,
	}

	switch {
	case m == TricksPerHand && bid.Alone:
		out.MakersWon, out.Points = true, pointsLoneMarch
	case m == TricksPerHand:
		out.MakersWon, out.Points = true, pointsMarch
	case m >= 3:
		out.MakersWon, out.Points = true, pointsMade
	case bid.Alone && bid.DefendAlone:
		out.Points = pointsLoneStop
	default:
		out.Points = pointsEuchre
	}

	if out.MakersWon {
		out.ScoringTeam = out.Makers
		out.Delta = out.Points
	} else {
		out.ScoringTeam = out.Defenders
		out.Delta = -out.Points
	}
	return out
}
