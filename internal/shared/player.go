package shared

import "github.com/google/uuid"

// Player represents one seat at the table and the cards it currently holds.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Seat int    `json:"seat"`
	Hand []Card `json:"-"`
}

// NewPlayer creates a player for the given seat with an empty hand.
func NewPlayer(name string, seat int) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Seat: seat,
		Hand: []Card{},
	}
}

// Team returns the player's team number.
func (p *Player) Team() int {
	return TeamOf(p.Seat)
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasCard reports whether the card is in the player's hand.
func (p *Player) HasCard(card Card) bool {
	return Contains(p.Hand, card)
}

// HasSuit reports whether the hand holds a card following suit under trump.
func (p *Player) HasSuit(suit Suit, trump Suit) bool {
	for _, c := range p.Hand {
		if c.EffectiveSuit(trump) == suit {
			return true
		}
	}
	return false
}

// Contains reports whether card is among cards.
func Contains(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
