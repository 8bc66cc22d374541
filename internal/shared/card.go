package shared

import (
	"errors"
	"fmt"
	"strings"
)

// Suit represents the suit of a card.
type Suit int

const (
	Clubs    Suit = iota // C
	Diamonds             // D
	Hearts               // H
	Spades               // S
)

// NumSuits, NumRanks and DeckSize describe the 24-card Euchre population.
const (
	NumSuits = 4
	NumRanks = 6
	DeckSize = NumSuits * NumRanks
)

var (
	ErrInvalidCard = errors.New("invalid card")
	ErrInvalidSuit = errors.New("invalid suit")
)

var suitNames = [NumSuits]string{"Clubs", "Diamonds", "Hearts", "Spades"}
var suitLetters = [NumSuits]byte{'C', 'D', 'H', 'S'}

// partnerSuit maps each suit to the other suit of its color.
// Clubs <-> Spades (black), Diamonds <-> Hearts (red)
var partnerSuit = [NumSuits]Suit{Spades, Hearts, Diamonds, Clubs}

// AllSuits returns the four suits in id order.
func AllSuits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Partner returns the same-color suit used for left bower computation.
func (s Suit) Partner() Suit {
	return partnerSuit[s]
}

// ParseSuit converts a full suit word (case-insensitive) to a Suit.
func ParseSuit(name string) (Suit, error) {
	n := strings.TrimSpace(name)
	for i, sn := range suitNames {
		if strings.EqualFold(n, sn) {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, name)
}

// Rank represents a card rank, 9 through Ace.
type Rank int

const (
	Nine  Rank = iota // 9
	Ten               // T
	Jack              // J
	Queen             // Q
	King              // K
	Ace               // A
)

var rankNames = [NumRanks]string{"9", "10", "J", "Q", "K", "A"}
var rankLetters = [NumRanks]byte{'9', 'T', 'J', 'Q', 'K', 'A'}

func (r Rank) String() string {
	if r < Nine || r > Ace {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Card is the integer identity of a card: suit*6 + rank.
type Card int

// NewCard composes a card from its suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card(int(suit)*NumRanks + int(rank))
}

// Valid reports whether c is inside the 24-card space.
func (c Card) Valid() bool {
	return c >= 0 && c < DeckSize
}

// Suit returns the natural (printed) suit of the card.
func (c Card) Suit() Suit {
	return Suit(int(c) / NumRanks)
}

// Rank returns the rank index of the card, 0 for the nine up to 5 for the ace.
func (c Card) Rank() Rank {
	return Rank(int(c) % NumRanks)
}

// IsRightBower reports whether c is the Jack of the trump suit.
func (c Card) IsRightBower(trump Suit) bool {
	return c.Rank() == Jack && c.Suit() == trump
}

// IsLeftBower reports whether c is the Jack of the suit sharing trump's color.
func (c Card) IsLeftBower(trump Suit) bool {
	return c.Rank() == Jack && c.Suit() == trump.Partner()
}

// IsTrump reports whether c belongs to the trump suit, left bower included.
func (c Card) IsTrump(trump Suit) bool {
	return c.Suit() == trump || c.IsLeftBower(trump)
}

// EffectiveSuit is the suit c counts as for follow-suit purposes.
func (c Card) EffectiveSuit(trump Suit) Suit {
	if c.IsTrump(trump) {
		return trump
	}
	return c.Suit()
}

// EffectiveRank returns the strength of c under the given trump.
//
// Right bower 8, left bower 7, other trump 1..6 (nine to ace), non-trump 0..5.
// The bower checks must run before the generic trump test.
func (c Card) EffectiveRank(trump Suit) int {
	if c.IsRightBower(trump) {
		return 8
	}
	if c.IsLeftBower(trump) {
		return 7
	}
	if c.IsTrump(trump) {
		return 1 + int(c.Rank())
	}
	return int(c.Rank())
}

// String renders the two-character notation, e.g. "JC" or "TD".
func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Card(%d)", int(c))
	}
	return string([]byte{rankLetters[c.Rank()], suitLetters[c.Suit()]})
}

// Name renders a long form such as "J of Clubs".
func (c Card) Name() string {
	return c.Rank().String() + " of " + c.Suit().String()
}

// ParseCard reads a card in rank+suit notation, case-insensitive.
// The ten may be written as "T" or "10".
func ParseCard(token string) (Card, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if strings.HasPrefix(t, "10") {
		t = "T" + t[2:]
	}
	if len(t) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}
	rank := -1
	for i, l := range rankLetters {
		if t[0] == l {
			rank = i
		}
	}
	suit := -1
	for i, l := range suitLetters {
		if t[1] == l {
			suit = i
		}
	}
	if rank < 0 || suit < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}
	return NewCard(Suit(suit), Rank(rank)), nil
}

// ParseCards parses each token with ParseCard, stopping at the first error.
func ParseCards(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MarshalText encodes the card in its notation so JSON payloads stay readable.
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCard, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card from its notation.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText encodes a suit by its full name.
func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSuit, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a suit from its full name.
func (s *Suit) UnmarshalText(text []byte) error {
	parsed, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
