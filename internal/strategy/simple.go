package strategy

import "euchre-sim/internal/shared"

// Bidding weights and thresholds of the baseline strategy.
const (
	rightBowerWeight = 4
	leftBowerWeight  = 3
	aceWeight        = 2
	courtWeight      = 1 // king or queen

	dealerUpcardBonus = 2
	seatUpcardBonus   = 1

	callThreshold       = 5
	dealerCallThreshold = 4
	aloneThreshold      = 7
	defendThreshold     = 7
)

// Simple is a fast baseline strategy. It counts high cards to bid, dumps its
// weakest card on discard, plays its weakest legal card and rarely defends alone.
type Simple struct{}

// NewSimple returns the baseline strategy.
func NewSimple() *Simple {
	return &Simple{}
}

// SuitScore rates hand for suit as trump and counts the bowers held.
func SuitScore(hand []shared.Card, suit shared.Suit) (score int, bowers int) {
	for _, c := range hand {
		switch {
		case c.IsRightBower(suit):
			score += rightBowerWeight
			bowers++
		case c.IsLeftBower(suit):
			score += leftBowerWeight
			bowers++
		case c.Suit() != suit:
		case c.Rank() == shared.Ace:
			score += aceWeight
		case c.Rank() == shared.King || c.Rank() == shared.Queen:
			score += courtWeight
		}
	}
	return score, bowers
}

func (s *Simple) ChooseTrump(offer Offer) (Call, bool) {
	if len(offer.Candidates) == 0 {
		return Call{}, false
	}

	bestSuit := offer.Candidates[0]
	bestScore, bestBowers := -1, 0
	for _, suit := range offer.Candidates {
		score, bowers := SuitScore(offer.Hand, suit)
		if offer.Upcard != nil && offer.Upcard.Suit() == suit {
			if offer.IsDealer {
				score += dealerUpcardBonus
			} else {
				score += seatUpcardBonus
			}
		}
		if score > bestScore {
			bestSuit, bestScore, bestBowers = suit, score, bowers
		}
	}

	threshold := callThreshold
	if offer.IsDealer {
		threshold = dealerCallThreshold
	}
	if !offer.Force && bestScore < threshold {
		return Call{}, false
	}
	alone := bestScore >= aloneThreshold && bestBowers >= 1
	return Call{Suit: bestSuit, Alone: alone}, true
}

// Discard drops the weakest non-trump card, or the weakest trump if the hand is all trump.
func (s *Simple) Discard(hand []shared.Card, trump shared.Suit) shared.Card {
	var pick shared.Card
	found := false
	for _, c := range hand {
		if c.IsTrump(trump) {
			continue
		}
		if !found || weaker(c, pick, trump) {
			pick, found = c, true
		}
	}
	if found {
		return pick
	}
	return lowest(hand, trump)
}

func (s *Simple) PlayCard(hand []shared.Card, legal []shared.Card, trick []shared.Card, trump shared.Suit) shared.Card {
	return lowest(legal, trump)
}

func (s *Simple) DefendAlone(hand []shared.Card, trump shared.Suit) bool {
	strength := 0
	for _, c := range hand {
		switch {
		case c.IsRightBower(trump):
			strength += rightBowerWeight
		case c.IsLeftBower(trump):
			strength += leftBowerWeight
		case c.Suit() == trump && c.Rank() >= shared.King:
			strength += aceWeight
		}
	}
	return strength >= defendThreshold
}

// weaker orders by effective rank, then by card id so the choice is stable.
func weaker(a, b shared.Card, trump shared.Suit) bool {
	ra, rb := a.EffectiveRank(trump), b.EffectiveRank(trump)
	if ra != rb {
		return ra < rb
	}
	return a < b
}

// lowest returns the first card of minimal effective rank.
func lowest(cards []shared.Card, trump shared.Suit) shared.Card {
	pick := cards[0]
	for _, c := range cards[1:] {
		if c.EffectiveRank(trump) < pick.EffectiveRank(trump) {
			pick = c
		}
	}
	return pick
}
