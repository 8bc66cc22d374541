package shared

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCardBijection(t *testing.T) {
	for c := Card(0); c < DeckSize; c++ {
		if got := int(c.Suit())*NumRanks + int(c.Rank()); got != int(c) {
			t.Fatalf("card %d decomposes to %d", c, got)
		}
		if back := NewCard(c.Suit(), c.Rank()); back != c {
			t.Fatalf("card %d recomposes to %d", c, back)
		}
	}
}

func TestBowers(t *testing.T) {
	jackHearts := NewCard(Hearts, Jack)
	jackDiamonds := NewCard(Diamonds, Jack)
	aceHearts := NewCard(Hearts, Ace)

	if !jackHearts.IsRightBower(Hearts) {
		t.Fatalf("JH should be the right bower with hearts trump")
	}
	if !jackDiamonds.IsLeftBower(Hearts) {
		t.Fatalf("JD should be the left bower with hearts trump")
	}
	if !jackDiamonds.IsTrump(Hearts) {
		t.Fatalf("left bower must count as trump")
	}
	if jackDiamonds.EffectiveSuit(Hearts) != Hearts {
		t.Fatalf("left bower effective suit = %v", jackDiamonds.EffectiveSuit(Hearts))
	}
	if !(jackHearts.EffectiveRank(Hearts) > jackDiamonds.EffectiveRank(Hearts) &&
		jackDiamonds.EffectiveRank(Hearts) > aceHearts.EffectiveRank(Hearts)) {
		t.Fatalf("expected right > left > ace")
	}

	for _, trump := range AllSuits() {
		for c := Card(0); c < DeckSize; c++ {
			if c.IsRightBower(trump) && c.IsLeftBower(trump) {
				t.Fatalf("%s is both bowers under %v", c, trump)
			}
		}
	}
}

func TestEffectiveRank(t *testing.T) {
	cases := []struct {
		card  string
		trump Suit
		want  int
	}{
		{"JS", Spades, 8},
		{"JC", Spades, 7},
		{"AS", Spades, 6},
		{"KS", Spades, 5},
		{"9S", Spades, 1},
		{"AH", Spades, 5},
		{"9H", Spades, 0},
		{"JH", Spades, 2},
		{"JD", Clubs, 2},
	}
	for _, tc := range cases {
		t.Run(tc.card, func(t *testing.T) {
			c, err := ParseCard(tc.card)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := c.EffectiveRank(tc.trump); got != tc.want {
				t.Fatalf("EffectiveRank(%s, %v) = %d, want %d", tc.card, tc.trump, got, tc.want)
			}
		})
	}
}

func TestParseCard(t *testing.T) {
	cases := []struct {
		in   string
		want Card
	}{
		{"9c", NewCard(Clubs, Nine)},
		{"TD", NewCard(Diamonds, Ten)},
		{"10h", NewCard(Hearts, Ten)},
		{"js", NewCard(Spades, Jack)},
		{" Qh ", NewCard(Hearts, Queen)},
		{"aS", NewCard(Spades, Ace)},
	}
	for _, tc := range cases {
		got, err := ParseCard(tc.in)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCard(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "8c", "JX", "ACE", "1c", "10"} {
		if _, err := ParseCard(bad); !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("ParseCard(%q) error = %v, want ErrInvalidCard", bad, err)
		}
	}

	for c := Card(0); c < DeckSize; c++ {
		back, err := ParseCard(c.String())
		if err != nil || back != c {
			t.Fatalf("round trip of %s gave %v, %v", c, back, err)
		}
	}
}

func TestParseSuit(t *testing.T) {
	for _, s := range AllSuits() {
		got, err := ParseSuit(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseSuit(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, _ := ParseSuit("HEARTS"); got != Hearts {
		t.Fatalf("case-insensitive parse failed: %v", got)
	}
	if _, err := ParseSuit("stars"); !errors.Is(err, ErrInvalidSuit) {
		t.Fatalf("expected ErrInvalidSuit, got %v", err)
	}
}

func TestCardJSON(t *testing.T) {
	type payload struct {
		Card  Card   `json:"card"`
		Trump Suit   `json:"trump"`
		Hand  []Card `json:"hand"`
	}
	in := payload{Card: NewCard(Clubs, Jack), Trump: Spades, Hand: []Card{NewCard(Hearts, Ace), NewCard(Diamonds, Ten)}}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"card":"JC","trump":"Spades","hand":["AH","TD"]}` {
		t.Fatalf("unexpected json %s", b)
	}
	var out payload
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Card != in.Card || out.Trump != in.Trump || len(out.Hand) != 2 || out.Hand[1] != in.Hand[1] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
