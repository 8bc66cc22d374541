package shared

import (
	"errors"
	"fmt"
)

var ErrTrickSize = errors.New("trick must hold 2 to 4 cards")

// PlayedCard stores a card along with the seat that played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat int  `json:"seat"`
}

// Trick represents a single trick in play order.
type Trick struct {
	Cards      []PlayedCard `json:"cards"`
	WinnerSeat int          `json:"winner_seat"` // -1 until resolved
}

// NewTrick creates a new trick instance.
func NewTrick() *Trick {
	return &Trick{
		Cards:      make([]PlayedCard, 0, NumSeats),
		WinnerSeat: -1,
	}
}

// AddCard appends a card played by seat.
func (t *Trick) AddCard(card Card, seat int) {
	t.Cards = append(t.Cards, PlayedCard{Card: card, Seat: seat})
}

// Led returns the first card of the trick, or nil if nothing has been played.
func (t *Trick) Led() *Card {
	if len(t.Cards) == 0 {
		return nil
	}
	c := t.Cards[0].Card
	return &c
}

// Played returns just the cards, in play order.
func (t *Trick) Played() []Card {
	out := make([]Card, len(t.Cards))
	for i, pc := range t.Cards {
		out[i] = pc.Card
	}
	return out
}

// DetermineWinner resolves the trick under trump and records the winning seat.
func (t *Trick) DetermineWinner(trump Suit) (int, error) {
	if len(t.Cards) == 0 {
		return -1, fmt.Errorf("%w: empty trick", ErrTrickSize)
	}
	ledSuit := t.Cards[0].Card.EffectiveSuit(trump)
	idx, err := WinnerOfTrick(t.Played(), trump, ledSuit)
	if err != nil {
		return -1, err
	}
	t.WinnerSeat = t.Cards[idx].Seat
	return t.WinnerSeat, nil
}

// LegalMoves returns the cards of hand that may be played to a trick whose
// first card is led (nil when leading). A left bower follows trump, not its
// printed suit. If nothing follows, any card may be played.
func LegalMoves(hand []Card, led *Card, trump Suit) []Card {
	if led == nil {
		return append([]Card{}, hand...)
	}

	ledSuit := led.EffectiveSuit(trump)
	following := make([]Card, 0, len(hand))
	for _, c := range hand {
		if c.EffectiveSuit(trump) == ledSuit {
			following = append(following, c)
		}
	}
	if len(following) > 0 {
		return following
	}
	return append([]Card{}, hand...)
}

// WinnerOfTrick returns the index of the winning card among cards, which are
// given in play order. ledSuit is the effective suit of the first card.
func WinnerOfTrick(cards []Card, trump Suit, ledSuit Suit) (int, error) {
	if len(cards) < 2 || len(cards) > NumSeats {
		return -1, fmt.Errorf("%w: got %d", ErrTrickSize, len(cards))
	}

	best := 0
	bestTrump := cards[0].IsTrump(trump)
	bestRank := cards[0].EffectiveRank(trump)
	bestLed := cards[0].Suit() == ledSuit

	for i := 1; i < len(cards); i++ {
		c := cards[i]
		isTrump := c.IsTrump(trump)
		rank := c.EffectiveRank(trump)

		switch {
		case isTrump && !bestTrump:
			best, bestTrump, bestRank, bestLed = i, true, rank, false
		case !isTrump && bestTrump:
			// trump already holds the trick
		case isTrump && bestTrump:
			if rank > bestRank {
				best, bestRank = i, rank
			}
		default:
			following := c.Suit() == ledSuit
			if following && !bestLed {
				best, bestRank, bestLed = i, rank, true
			} else if following && rank > bestRank {
				best, bestRank = i, rank
			}
		}
	}
	return best, nil
}
