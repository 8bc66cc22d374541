package strategy

import "euchre-sim/internal/shared"

// FirstLegal always plays the first legal card and never calls unless forced.
type FirstLegal struct{}

func (FirstLegal) ChooseTrump(offer Offer) (Call, bool) {
	if offer.Force && len(offer.Candidates) > 0 {
		return Call{Suit: offer.Candidates[0]}, true
	}
	return Call{}, false
}

func (FirstLegal) Discard(hand []shared.Card, trump shared.Suit) shared.Card {
	return hand[len(hand)-1]
}

func (FirstLegal) PlayCard(hand []shared.Card, legal []shared.Card, trick []shared.Card, trump shared.Suit) shared.Card {
	return legal[0]
}

func (FirstLegal) DefendAlone(hand []shared.Card, trump shared.Suit) bool {
	return false
}
