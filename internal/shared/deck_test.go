package shared

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func mustCards(t *testing.T, tokens ...string) []Card {
	t.Helper()
	cards, err := ParseCards(tokens)
	if err != nil {
		t.Fatalf("parse %v: %v", tokens, err)
	}
	return cards
}

func countAll(deal Deal) map[Card]int {
	seen := map[Card]int{}
	for _, h := range deal.Hands {
		for _, c := range h {
			seen[c]++
		}
	}
	seen[deal.Upcard]++
	for _, c := range deal.Kitty {
		seen[c]++
	}
	return seen
}

func TestDeckDeal(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewPCG(1, 2)))
	deal, err := d.Deal()
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	for i, h := range deal.Hands {
		if len(h) != HandSize {
			t.Fatalf("seat %d has %d cards", i, len(h))
		}
	}
	if len(deal.Kitty) != 3 {
		t.Fatalf("kitty has %d cards", len(deal.Kitty))
	}
	seen := countAll(deal)
	if len(seen) != DeckSize {
		t.Fatalf("expected %d distinct cards, got %d", DeckSize, len(seen))
	}
	if len(d.Cards) != 0 {
		t.Fatalf("deck should be empty after dealing")
	}
	if _, err := d.Deal(); !errors.Is(err, ErrInvalidDeal) {
		t.Fatalf("dealing an empty deck should fail, got %v", err)
	}
}

func TestShuffleIsSeeded(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	a.Shuffle(rand.New(rand.NewPCG(7, 7)))
	b.Shuffle(rand.New(rand.NewPCG(7, 7)))
	for i := range a.Cards {
		if a.Cards[i] != b.Cards[i] {
			t.Fatalf("same seed produced different decks at %d", i)
		}
	}
}

func TestFixedDealIntegrity(t *testing.T) {
	hand := mustCards(t, "JC", "JS", "AC", "KC", "QC")
	upcard := mustCards(t, "9C")[0]
	rng := rand.New(rand.NewPCG(42, 0))

	for trial := 0; trial < 200; trial++ {
		seat := trial % NumSeats
		deal, err := FixedDeal(hand, upcard, seat, rng)
		if err != nil {
			t.Fatalf("fixed deal: %v", err)
		}
		for i, c := range deal.Hands[seat] {
			if c != hand[i] {
				t.Fatalf("pinned hand changed: %v", deal.Hands[seat])
			}
		}
		if deal.Upcard != upcard {
			t.Fatalf("upcard changed to %s", deal.Upcard)
		}
		for s, h := range deal.Hands {
			if len(h) != HandSize {
				t.Fatalf("seat %d has %d cards", s, len(h))
			}
			if s == seat {
				continue
			}
			for _, c := range h {
				if Contains(hand, c) || c == upcard {
					t.Fatalf("pinned card %s dealt to seat %d", c, s)
				}
			}
		}
		seen := countAll(deal)
		if len(seen) != DeckSize {
			t.Fatalf("expected %d distinct cards, got %d", DeckSize, len(seen))
		}
		for c, n := range seen {
			if n != 1 {
				t.Fatalf("card %s appears %d times", c, n)
			}
		}
	}
}

func TestFixedDealValidation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	hand := mustCards(t, "JC", "JS", "AC", "KC", "QC")
	cases := []struct {
		name   string
		hand   []Card
		upcard Card
		seat   int
	}{
		{"short hand", hand[:4], NewCard(Clubs, Nine), 0},
		{"duplicate card", append(append([]Card{}, hand[:4]...), hand[0]), NewCard(Clubs, Nine), 0},
		{"upcard in hand", hand, hand[2], 0},
		{"seat out of range", hand, NewCard(Clubs, Nine), 4},
		{"invalid upcard", hand, Card(24), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FixedDeal(tc.hand, tc.upcard, tc.seat, rng); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}
