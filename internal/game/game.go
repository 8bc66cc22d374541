package game

import (
	"fmt"
	"math/rand/v2"

	"euchre-sim/internal/shared"
	"euchre-sim/internal/strategy"

	"github.com/google/uuid"
)

// GameState represents the current state of the game.
type GameState string

const (
	Dealing  GameState = "Dealing"  // cards are being dealt
	Bidding  GameState = "Bidding"  // trump is being called
	Playing  GameState = "Playing"  // tricks are being played
	HandOver GameState = "HandOver" // a hand is scored, next dealer pending
	GameOver GameState = "GameOver" // target score reached
)

// DefaultTargetScore is the score that wins a game.
const DefaultTargetScore = 10

// SeatNames are the conventional compass names of seats 0..3.
var SeatNames = [shared.NumSeats]string{"North", "East", "South", "West"}

// Config parameterizes a game. Zero values pick sensible defaults.
type Config struct {
	Names       [shared.NumSeats]string
	Strategies  [shared.NumSeats]strategy.Strategy // nil entries get strategy.Simple
	TargetScore int
	Dealer      int
	Seed        uint64
	Rand        *rand.Rand // overrides Seed when set
	Observer    Observer
}

// Game holds the table: seats, teams, scores and the dealer pointer.
type Game struct {
	ID          string                             `json:"id"`
	Players     [shared.NumSeats]*shared.Player    `json:"players"`
	Teams       [shared.NumTeams]*shared.Team      `json:"teams"`
	Strategies  [shared.NumSeats]strategy.Strategy `json:"-"`
	Dealer      int                                `json:"dealer"`
	TargetScore int                                `json:"target_score"`
	HandNumber  int                                `json:"hand_number"`
	GameState   GameState                          `json:"game_state"`
	rng         *rand.Rand
	observer    Observer
}

// NewGame initializes a new game instance.
func NewGame(cfg Config) *Game {
	g := &Game{
		ID:          uuid.New().String(),
		Dealer:      cfg.Dealer % shared.NumSeats,
		TargetScore: cfg.TargetScore,
		GameState:   Dealing,
		rng:         cfg.Rand,
		observer:    cfg.Observer,
	}
	if g.TargetScore <= 0 {
		g.TargetScore = DefaultTargetScore
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	for i := range g.Players {
		name := cfg.Names[i]
		if name == "" {
			name = SeatNames[i]
		}
		g.Players[i] = shared.NewPlayer(name, i)
		g.Strategies[i] = cfg.Strategies[i]
		if g.Strategies[i] == nil {
			g.Strategies[i] = strategy.NewSimple()
		}
	}
	g.Teams = [shared.NumTeams]*shared.Team{
		shared.NewTeam(0, g.Players[0], g.Players[2]),
		shared.NewTeam(1, g.Players[1], g.Players[3]),
	}
	return g
}

// Scores returns the cumulative points of both teams.
func (g *Game) Scores() [shared.NumTeams]int {
	return [shared.NumTeams]int{g.Teams[0].Score, g.Teams[1].Score}
}

// IsOver reports whether a team has reached the target score.
func (g *Game) IsOver() bool {
	return g.Winner() >= 0
}

// Winner returns the team at or above the target score, or -1.
func (g *Game) Winner() int {
	for i, t := range g.Teams {
		if t.Score >= g.TargetScore {
			return i
		}
	}
	return -1
}

// DealHand shuffles a fresh deck with the game's generator and deals it.
func (g *Game) DealHand() (shared.Deal, error) {
	g.GameState = Dealing
	deck := shared.NewDeck()
	deck.Shuffle(g.rng)
	return deck.Deal()
}

// PlayHand plays one complete hand on deal with the current dealer: bidding,
// the defend-alone offer, five tricks and scoring. The score is added to the
// winning team. The dealer does not move; PlayGame rotates it.
func (g *Game) PlayHand(deal shared.Deal) (HandOutcome, error) {
	for i, h := range deal.Hands {
		if len(h) != shared.HandSize {
			return HandOutcome{}, fmt.Errorf("%w: seat %d dealt %d cards", shared.ErrInvalidDeal, i, len(h))
		}
		g.Players[i].Hand = append([]shared.Card{}, h...)
	}
	g.HandNumber++
	g.emit(EventHandDealt, HandDealtPayload{Dealer: g.Dealer, Upcard: deal.Upcard, Hands: deal.Hands})

	g.GameState = Bidding
	bid, err := Bid(g.Players, g.Strategies, g.Dealer, deal.Upcard)
	if err != nil {
		return HandOutcome{}, fmt.Errorf("hand %d: bidding: %w", g.HandNumber, err)
	}
	g.emit(EventBidResolved, bid)

	bid = OfferDefendAlone(bid, g.Players, g.Strategies)
	if bid.DefendAlone {
		g.emit(EventDefendAlone, bid)
	}

	g.GameState = Playing
	tricks, err := PlayTricks(g.Players, g.Strategies, g.Dealer, bid, func(n int, t *shared.Trick, won [shared.NumTeams]int) {
		g.emit(EventTrickPlayed, TrickPlayedPayload{Number: n, Trump: bid.Trump, Trick: *t, Tricks: won})
	})
	if err != nil {
		return HandOutcome{}, fmt.Errorf("hand %d: play: %w", g.HandNumber, err)
	}

	outcome := ScoreHand(bid, tricks)
	g.Teams[outcome.ScoringTeam].AddScore(outcome.Points)
	g.emit(EventHandScored, outcome)

	g.GameState = HandOver
	if g.IsOver() {
		g.GameState = GameOver
	}
	return outcome, nil
}

// PlayGame deals and plays hands, rotating the dealer after each, until a
// team reaches the target score. It returns the winning team.
func (g *Game) PlayGame() (int, error) {
	for !g.IsOver() {
		deal, err := g.DealHand()
		if err != nil {
			return -1, err
		}
		if _, err := g.PlayHand(deal); err != nil {
			return -1, err
		}
		g.Dealer = (g.Dealer + 1) % shared.NumSeats
	}
	g.GameState = GameOver
	winner := g.Winner()
	g.emit(EventGameOver, GameOverPayload{WinningTeam: winner, Scores: g.Scores(), Hands: g.HandNumber})
	return winner, nil
}

func (g *Game) emit(kind EventKind, payload any) {
	if g.observer == nil {
		return
	}
	g.observer(Event{Kind: kind, GameID: g.ID, Hand: g.HandNumber, Payload: payload})
}
