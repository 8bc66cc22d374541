package shared

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestLegalMoves(t *testing.T) {
	cases := []struct {
		name  string
		hand  []string
		led   string
		trump Suit
		want  []string
	}{
		{"leader is free", []string{"9C", "AH", "JD"}, "", Hearts, []string{"9C", "AH", "JD"}},
		{"must follow natural suit", []string{"9C", "KC", "AH"}, "AC", Spades, []string{"9C", "KC"}},
		{"left bower follows trump", []string{"JD", "9D", "AC"}, "9H", Hearts, []string{"JD"}},
		{"left bower does not follow its printed suit", []string{"JD", "AC"}, "9D", Hearts, []string{"JD", "AC"}},
		{"left bower led calls for trump", []string{"9H", "AD", "KS"}, "JD", Hearts, []string{"9H"}},
		{"void may play anything", []string{"9C", "AH"}, "KS", Diamonds, []string{"9C", "AH"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hand := mustCards(t, tc.hand...)
			var led *Card
			if tc.led != "" {
				c := mustCards(t, tc.led)[0]
				led = &c
			}
			got := LegalMoves(hand, led, tc.trump)
			want := mustCards(t, tc.want...)
			if len(got) != len(want) {
				t.Fatalf("LegalMoves = %v, want %v", got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("LegalMoves = %v, want %v", got, want)
				}
			}
		})
	}
}

func TestLegalMovesProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	for trial := 0; trial < 500; trial++ {
		d := NewDeck()
		d.Shuffle(rng)
		deal, err := d.Deal()
		if err != nil {
			t.Fatalf("deal: %v", err)
		}
		trump := Suit(rng.IntN(NumSuits))
		led := deal.Upcard
		p := NewPlayer("P", 0)
		p.Hand = deal.Hands[0]

		legal := LegalMoves(p.Hand, &led, trump)
		if len(legal) == 0 {
			t.Fatalf("legal moves empty for %v led %s", p.Hand, led)
		}
		for _, c := range legal {
			if !p.HasCard(c) {
				t.Fatalf("legal card %s not in hand %v", c, p.Hand)
			}
		}
		ledSuit := led.EffectiveSuit(trump)
		if p.HasSuit(ledSuit, trump) {
			for _, c := range legal {
				if c.EffectiveSuit(trump) != ledSuit {
					t.Fatalf("non-following card %s leaked into %v", c, legal)
				}
			}
		}
	}
}

func TestWinnerOfTrick(t *testing.T) {
	cases := []struct {
		name  string
		cards []string
		trump Suit
		want  int
	}{
		{"trump beats higher off-suit", []string{"AC", "9D", "KC"}, Diamonds, 1},
		{"higher trump wins", []string{"9C", "TD", "JC", "QD"}, Diamonds, 3},
		{"right beats left", []string{"JD", "JH", "AH"}, Hearts, 1},
		{"left beats ace of trump", []string{"AH", "JD", "KH", "9C"}, Hearts, 1},
		{"off-suit never wins", []string{"9S", "AC", "AD", "KS"}, Hearts, 3},
		{"led suit holds without trump", []string{"TC", "AS", "9C"}, Hearts, 0},
		{"two card trick", []string{"QS", "KS"}, Clubs, 1},
		{"left bower led, trump follows", []string{"JS", "9C", "AS"}, Clubs, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cards := mustCards(t, tc.cards...)
			ledSuit := cards[0].EffectiveSuit(tc.trump)
			got, err := WinnerOfTrick(cards, tc.trump, ledSuit)
			if err != nil {
				t.Fatalf("winner: %v", err)
			}
			if got != tc.want {
				t.Fatalf("winner = %d, want %d", got, tc.want)
			}
			again, _ := WinnerOfTrick(cards, tc.trump, ledSuit)
			if again != got {
				t.Fatalf("winner not deterministic: %d then %d", got, again)
			}
		})
	}
}

func TestWinnerOfTrickSize(t *testing.T) {
	one := mustCards(t, "9C")
	if _, err := WinnerOfTrick(one, Clubs, Clubs); !errors.Is(err, ErrTrickSize) {
		t.Fatalf("expected ErrTrickSize, got %v", err)
	}
	five := mustCards(t, "9C", "TC", "JC", "QC", "KC")
	if _, err := WinnerOfTrick(five, Clubs, Clubs); !errors.Is(err, ErrTrickSize) {
		t.Fatalf("expected ErrTrickSize, got %v", err)
	}
}

func TestTrickDetermineWinner(t *testing.T) {
	trick := NewTrick()
	for seat, tok := range []string{"9C", "TD", "JC", "QD"} {
		trick.AddCard(mustCards(t, tok)[0], seat)
	}
	seat, err := trick.DetermineWinner(Diamonds)
	if err != nil {
		t.Fatalf("determine winner: %v", err)
	}
	if seat != 3 || trick.WinnerSeat != 3 {
		t.Fatalf("winner seat = %d, want 3", seat)
	}
	if led := trick.Led(); led == nil || *led != NewCard(Clubs, Nine) {
		t.Fatalf("led card = %v", led)
	}
}
