package strategy

import "euchre-sim/internal/shared"

// Offer describes one trump-calling decision.
type Offer struct {
	Hand       []shared.Card
	Upcard     *shared.Card // nil unless the deciding seat may see the upcard
	IsDealer   bool
	Candidates []shared.Suit
	Force      bool // passing is not allowed
}

// Call is an acceptance in bidding: the suit named and whether to go alone.
type Call struct {
	Suit  shared.Suit
	Alone bool
}

// Strategy is the decision-maker for one seat.
type Strategy interface {
	// ChooseTrump returns the call and true, or false to pass.
	ChooseTrump(offer Offer) (Call, bool)
	// Discard picks one card of the dealer's six after picking up the upcard.
	Discard(hand []shared.Card, trump shared.Suit) shared.Card
	// PlayCard picks one of legal. trick holds the cards already played, in order.
	PlayCard(hand []shared.Card, legal []shared.Card, trick []shared.Card, trump shared.Suit) shared.Card
	// DefendAlone is only asked when the makers went alone.
	DefendAlone(hand []shared.Card, trump shared.Suit) bool
}

// Factory builds a fresh strategy for a seat.
type Factory func(seat int) Strategy

// NewSimpleFactory returns a Factory producing baseline strategies.
func NewSimpleFactory() Factory {
	return func(int) Strategy { return NewSimple() }
}

func hasCandidate(candidates []shared.Suit, s shared.Suit) bool {
	for _, c := range candidates {
		if c == s {
			return true
		}
	}
	return false
}
