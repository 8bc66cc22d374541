package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"euchre-sim/internal/game"
	"euchre-sim/internal/shared"
	"euchre-sim/internal/simulation"
)

// Message types. Table events are pushed to spectators with the same names
// as the game events they mirror.
const (
	TypeHandDealt   = string(game.EventHandDealt)
	TypeBidResolved = string(game.EventBidResolved)
	TypeDefendAlone = string(game.EventDefendAlone)
	TypeTrickPlayed = string(game.EventTrickPlayed)
	TypeHandScored  = string(game.EventHandScored)
	TypeGameOver    = string(game.EventGameOver)
	TypeError       = "error"
	TypePing        = "ping"
	TypePong        = "pong"
)

// ErrBadRequest marks a request that could not be turned into a study.
var ErrBadRequest = errors.New("bad request")

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "trick_played", "ping")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

// --- Client -> Server Payload Structs ---

// SimulationRequest asks the server to run and store a study.
type SimulationRequest struct {
	Hand       []string `json:"hand"`
	Upcard     string   `json:"upcard"`
	Seat       int      `json:"seat"`
	Trials     int      `json:"trials,omitempty"`
	Seed       *uint64  `json:"seed,omitempty"`
	ForceSuit  string   `json:"force_suit,omitempty"`
	ForceAlone *bool    `json:"force_alone,omitempty"`
}

// Config parses the request. Zero trials and a missing seed take the given defaults.
func (r SimulationRequest) Config(defaultTrials int, defaultSeed uint64) (simulation.Config, error) {
	hand, err := shared.ParseCards(r.Hand)
	if err != nil {
		return simulation.Config{}, fmt.Errorf("%w: hand: %w", ErrBadRequest, err)
	}
	upcard, err := shared.ParseCard(r.Upcard)
	if err != nil {
		return simulation.Config{}, fmt.Errorf("%w: upcard: %w", ErrBadRequest, err)
	}
	c := simulation.Config{
		Hand:       hand,
		Upcard:     upcard,
		Seat:       r.Seat,
		Trials:     r.Trials,
		Seed:       defaultSeed,
		ForceAlone: r.ForceAlone,
	}
	if c.Trials == 0 {
		c.Trials = defaultTrials
	}
	if r.Seed != nil {
		c.Seed = *r.Seed
	}
	if r.ForceSuit != "" {
		s, err := shared.ParseSuit(r.ForceSuit)
		if err != nil {
			return simulation.Config{}, fmt.Errorf("%w: force_suit: %w", ErrBadRequest, err)
		}
		c.ForceSuit = &s
	}
	if err := c.Validate(); err != nil {
		return simulation.Config{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return c, nil
}

// --- Server -> Client Payload Structs ---

type HandDealtPayload struct {
	GameID string                         `json:"game_id"`
	Hand   int                            `json:"hand"`
	Dealer int                            `json:"dealer"`
	Upcard shared.Card                    `json:"upcard"`
	Hands  [shared.NumSeats][]shared.Card `json:"hands"`
}

type BidResolvedPayload struct {
	GameID     string      `json:"game_id"`
	Hand       int         `json:"hand"`
	Trump      shared.Suit `json:"trump"`
	Caller     int         `json:"caller"`
	Makers     int         `json:"makers"`
	Round      string      `json:"round"`
	Alone      bool        `json:"alone"`
	SittingOut []int       `json:"sitting_out"`
}

type DefendAlonePayload struct {
	GameID     string `json:"game_id"`
	Hand       int    `json:"hand"`
	Defender   int    `json:"defender"`
	SittingOut []int  `json:"sitting_out"`
}

type PlayedCardInfo struct {
	Seat int         `json:"seat"`
	Card shared.Card `json:"card"`
}

type TrickPlayedPayload struct {
	GameID string               `json:"game_id"`
	Hand   int                  `json:"hand"`
	Number int                  `json:"number"`
	Trump  shared.Suit          `json:"trump"`
	Plays  []PlayedCardInfo     `json:"plays"`
	Winner int                  `json:"winner"`
	Tricks [shared.NumTeams]int `json:"tricks"`
}

type HandScoredPayload struct {
	GameID      string `json:"game_id"`
	Hand        int    `json:"hand"`
	Makers      int    `json:"makers"`
	MakerTricks int    `json:"maker_tricks"`
	MakersWon   bool   `json:"makers_won"`
	ScoringTeam int    `json:"scoring_team"`
	Points      int    `json:"points"`
}

type GameOverPayload struct {
	GameID      string               `json:"game_id"`
	WinningTeam int                  `json:"winning_team"`
	Scores      [shared.NumTeams]int `json:"scores"`
	Hands       int                  `json:"hands"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	// Handle nil payload specifically
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}

// Decode parses an envelope. The payload is left raw.
func Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, err
	}
	if strings.TrimSpace(msg.Type) == "" {
		return Message{}, fmt.Errorf("%w: message without type", ErrBadRequest)
	}
	return msg, nil
}

// FromEvent renders a game event as a spectator message.
func FromEvent(e game.Event) ([]byte, error) {
	switch p := e.Payload.(type) {
	case game.HandDealtPayload:
		return NewMessage(TypeHandDealt, HandDealtPayload{
			GameID: e.GameID, Hand: e.Hand, Dealer: p.Dealer, Upcard: p.Upcard, Hands: p.Hands,
		})
	case game.BidOutcome:
		if e.Kind == game.EventDefendAlone {
			return NewMessage(TypeDefendAlone, DefendAlonePayload{
				GameID: e.GameID, Hand: e.Hand, Defender: p.DefenderLoner, SittingOut: p.SittingOut,
			})
		}
		return NewMessage(TypeBidResolved, BidResolvedPayload{
			GameID:     e.GameID,
			Hand:       e.Hand,
			Trump:      p.Trump,
			Caller:     p.Caller,
			Makers:     p.Makers,
			Round:      p.Round.String(),
			Alone:      p.Alone,
			SittingOut: p.SittingOut,
		})
	case game.TrickPlayedPayload:
		plays := make([]PlayedCardInfo, len(p.Trick.Cards))
		for i, pc := range p.Trick.Cards {
			plays[i] = PlayedCardInfo{Seat: pc.Seat, Card: pc.Card}
		}
		return NewMessage(TypeTrickPlayed, TrickPlayedPayload{
			GameID: e.GameID, Hand: e.Hand, Number: p.Number, Trump: p.Trump,
			Plays: plays, Winner: p.Trick.WinnerSeat, Tricks: p.Tricks,
		})
	case game.HandOutcome:
		return NewMessage(TypeHandScored, HandScoredPayload{
			GameID:      e.GameID,
			Hand:        e.Hand,
			Makers:      p.Makers,
			MakerTricks: p.MakerTricks,
			MakersWon:   p.MakersWon,
			ScoringTeam: p.ScoringTeam,
			Points:      p.Points,
		})
	case game.GameOverPayload:
		return NewMessage(TypeGameOver, GameOverPayload{
			GameID: e.GameID, WinningTeam: p.WinningTeam, Scores: p.Scores, Hands: p.Hands,
		})
	default:
		return nil, fmt.Errorf("no message for event %s with payload %T", e.Kind, e.Payload)
	}
}

// NewError renders an error message.
func NewError(message string) []byte {
	b, _ := NewMessage(TypeError, ErrorPayload{Message: message})
	return b
}
