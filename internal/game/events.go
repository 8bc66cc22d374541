package game

import "euchre-sim/internal/shared"

// EventKind identifies what happened at the table.
type EventKind string

const (
	EventHandDealt   EventKind = "hand_dealt"
	EventBidResolved EventKind = "bid_resolved"
	EventDefendAlone EventKind = "defend_alone"
	EventTrickPlayed EventKind = "trick_played"
	EventHandScored  EventKind = "hand_scored"
	EventGameOver    EventKind = "game_over"
)

// Event is delivered to an Observer. Payload is one of the *Payload types below.
type Event struct {
	Kind    EventKind
	GameID  string
	Hand    int
	Payload any
}

// Observer receives table events synchronously. A nil Observer means silence.
type Observer func(Event)

type HandDealtPayload struct {
	Dealer int
	Upcard shared.Card
	Hands  [shared.NumSeats][]shared.Card
}

type TrickPlayedPayload struct {
	Number int
	Trump  shared.Suit
	Trick  shared.Trick
	Tricks [shared.NumTeams]int
}

type GameOverPayload struct {
	WinningTeam int
	Scores      [shared.NumTeams]int
	Hands       int
}

// Bid resolution and scoring use BidOutcome and HandOutcome as payloads.
