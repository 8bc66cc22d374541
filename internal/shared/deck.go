package shared

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// NumSeats and HandSize are fixed for four-handed Euchre.
const (
	NumSeats = 4
	HandSize = 5
)

var ErrInvalidDeal = errors.New("invalid deal")

// Deck represents a collection of cards.
type Deck struct {
	Cards []Card
}

// Deal is the result of dealing one hand: a 5-card hand per seat,
// the upcard and the undealt kitty.
type Deal struct {
	Hands  [NumSeats][]Card
	Upcard Card
	Kitty  []Card
}

// NewDeck creates the 24-card Euchre deck in id order.
func NewDeck() *Deck {
	cards := make([]Card, DeckSize)
	for i := range cards {
		cards[i] = Card(i)
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck using rng.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal hands out five cards per seat, turns the next card up and leaves the
// remaining three as the kitty. The deck is empty afterwards.
func (d *Deck) Deal() (Deal, error) {
	need := NumSeats*HandSize + 1
	if len(d.Cards) < need {
		return Deal{}, fmt.Errorf("%w: deck has %d cards, need %d", ErrInvalidDeal, len(d.Cards), need)
	}

	var deal Deal
	start := 0
	for i := 0; i < NumSeats; i++ {
		end := start + HandSize
		// copy so hands never alias the deck's backing array
		hand := make([]Card, HandSize)
		copy(hand, d.Cards[start:end])
		deal.Hands[i] = hand
		start = end
	}
	deal.Upcard = d.Cards[start]
	deal.Kitty = append([]Card{}, d.Cards[start+1:]...)

	d.Cards = []Card{}
	return deal, nil
}

// FixedDeal pins hand to seat and upcard as the upcard, shuffles the other 18
// cards with rng and deals five to each remaining seat in ascending seat order.
// The last three cards form the kitty.
func FixedDeal(hand []Card, upcard Card, seat int, rng *rand.Rand) (Deal, error) {
	if seat < 0 || seat >= NumSeats {
		return Deal{}, fmt.Errorf("%w: seat %d out of range", ErrInvalidDeal, seat)
	}
	if len(hand) != HandSize {
		return Deal{}, fmt.Errorf("%w: pinned hand has %d cards, need %d", ErrInvalidDeal, len(hand), HandSize)
	}
	if !upcard.Valid() {
		return Deal{}, fmt.Errorf("%w: upcard %d", ErrInvalidCard, int(upcard))
	}

	var pinned [DeckSize]bool
	for _, c := range hand {
		if !c.Valid() {
			return Deal{}, fmt.Errorf("%w: %d", ErrInvalidCard, int(c))
		}
		if pinned[c] {
			return Deal{}, fmt.Errorf("%w: duplicate pinned card %s", ErrInvalidDeal, c)
		}
		pinned[c] = true
	}
	if pinned[upcard] {
		return Deal{}, fmt.Errorf("%w: upcard %s is also in the pinned hand", ErrInvalidDeal, upcard)
	}
	pinned[upcard] = true

	rest := &Deck{Cards: make([]Card, 0, DeckSize-HandSize-1)}
	for c := Card(0); c < DeckSize; c++ {
		if !pinned[c] {
			rest.Cards = append(rest.Cards, c)
		}
	}
	rest.Shuffle(rng)

	var deal Deal
	deal.Upcard = upcard
	deal.Hands[seat] = append([]Card{}, hand...)
	next := 0
	for i := 0; i < NumSeats; i++ {
		if i == seat {
			continue
		}
		deal.Hands[i] = append([]Card{}, rest.Cards[next:next+HandSize]...)
		next += HandSize
	}
	deal.Kitty = append([]Card{}, rest.Cards[next:]...)
	return deal, nil
}
