package protocol

import (
	"encoding/json"
	"errors"
	"testing"

	"euchre-sim/internal/game"
	"euchre-sim/internal/shared"
)

func TestNewMessageEnvelope(t *testing.T) {
	raw, err := NewMessage(TypePong, nil)
	if err != nil {
		t.Fatalf("new message: %v", err)
	}
	if string(raw) != `{"type":"pong"}` {
		t.Fatalf("got %s", raw)
	}

	raw = NewError("boom")
	msg, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var p ErrorPayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if msg.Type != TypeError || p.Message != "boom" {
		t.Fatalf("got %+v / %+v", msg, p)
	}
}

func TestDecodeRejectsUntyped(t *testing.T) {
	if _, err := Decode([]byte(`{"payload":{}}`)); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Fatalf("expected a syntax error")
	}
}

func TestFromEvent(t *testing.T) {
	jc := shared.NewCard(shared.Clubs, shared.Jack)
	td := shared.NewCard(shared.Diamonds, shared.Ten)
	trick := shared.NewTrick()
	trick.AddCard(td, 1)
	trick.AddCard(jc, 2)
	trick.WinnerSeat = 2

	cases := []struct {
		event game.Event
		typ   string
		check func(t *testing.T, payload json.RawMessage)
	}{
		{
			game.Event{Kind: game.EventHandDealt, GameID: "g", Hand: 1, Payload: game.HandDealtPayload{Dealer: 3, Upcard: jc}},
			TypeHandDealt,
			func(t *testing.T, raw json.RawMessage) {
				var p HandDealtPayload
				mustUnmarshal(t, raw, &p)
				if p.Dealer != 3 || p.Upcard != jc || p.GameID != "g" || p.Hand != 1 {
					t.Fatalf("got %+v", p)
				}
			},
		},
		{
			game.Event{Kind: game.EventBidResolved, Payload: game.BidOutcome{Trump: shared.Spades, Caller: 1, Makers: 1, Round: game.RoundCall, SittingOut: []int{}}},
			TypeBidResolved,
			func(t *testing.T, raw json.RawMessage) {
				var p BidResolvedPayload
				mustUnmarshal(t, raw, &p)
				if p.Trump != shared.Spades || p.Round != "call" || p.Caller != 1 {
					t.Fatalf("got %+v", p)
				}
			},
		},
		{
			game.Event{Kind: game.EventDefendAlone, Payload: game.BidOutcome{DefenderLoner: 2, SittingOut: []int{1, 0}}},
			TypeDefendAlone,
			func(t *testing.T, raw json.RawMessage) {
				var p DefendAlonePayload
				mustUnmarshal(t, raw, &p)
				if p.Defender != 2 || len(p.SittingOut) != 2 {
					t.Fatalf("got %+v", p)
				}
			},
		},
		{
			game.Event{Kind: game.EventTrickPlayed, Payload: game.TrickPlayedPayload{Number: 4, Trump: shared.Clubs, Trick: *trick, Tricks: [2]int{3, 1}}},
			TypeTrickPlayed,
			func(t *testing.T, raw json.RawMessage) {
				var p TrickPlayedPayload
				mustUnmarshal(t, raw, &p)
				if p.Number != 4 || p.Winner != 2 || len(p.Plays) != 2 || p.Plays[1].Card != jc || p.Tricks != [2]int{3, 1} {
					t.Fatalf("got %+v", p)
				}
			},
		},
		{
			game.Event{Kind: game.EventHandScored, Payload: game.HandOutcome{Makers: 0, MakerTricks: 5, MakersWon: true, Points: 2}},
			TypeHandScored,
			func(t *testing.T, raw json.RawMessage) {
				var p HandScoredPayload
				mustUnmarshal(t, raw, &p)
				if !p.MakersWon || p.Points != 2 || p.MakerTricks != 5 {
					t.Fatalf("got %+v", p)
				}
			},
		},
		{
			game.Event{Kind: game.EventGameOver, Payload: game.GameOverPayload{WinningTeam: 1, Scores: [2]int{7, 10}, Hands: 9}},
			TypeGameOver,
			func(t *testing.T, raw json.RawMessage) {
				var p GameOverPayload
				mustUnmarshal(t, raw, &p)
				if p.WinningTeam != 1 || p.Scores != [2]int{7, 10} || p.Hands != 9 {
					t.Fatalf("got %+v", p)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			raw, err := FromEvent(tc.event)
			if err != nil {
				t.Fatalf("from event: %v", err)
			}
			msg, err := Decode(raw)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if msg.Type != tc.typ {
				t.Fatalf("type = %s, want %s", msg.Type, tc.typ)
			}
			tc.check(t, msg.Payload)
		})
	}

	if _, err := FromEvent(game.Event{Kind: "odd", Payload: 3}); err == nil {
		t.Fatalf("expected an error for an unknown payload")
	}
}

func TestSimulationRequestConfig(t *testing.T) {
	seed := uint64(9)
	alone := true
	req := SimulationRequest{
		Hand:       []string{"js", "AS", "9d", "10H", "KC"},
		Upcard:     "TS",
		Seat:       2,
		Seed:       &seed,
		ForceSuit:  "spades",
		ForceAlone: &alone,
	}
	c, err := req.Config(500, 42)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if c.Trials != 500 || c.Seed != 9 || c.Seat != 2 || *c.ForceSuit != shared.Spades || !*c.ForceAlone {
		t.Fatalf("got %+v", c)
	}
	if c.Hand[3] != shared.NewCard(shared.Hearts, shared.Ten) {
		t.Fatalf("10H parsed as %s", c.Hand[3])
	}

	bad := []SimulationRequest{
		{Hand: []string{"JS", "AS", "9D", "TH", "ZZ"}, Upcard: "TS"},
		{Hand: []string{"JS", "AS", "9D", "TH", "KC"}, Upcard: "XX"},
		{Hand: []string{"JS", "AS", "9D", "TH", "KC"}, Upcard: "JS"},
		{Hand: []string{"JS", "AS", "9D", "TH", "KC"}, Upcard: "TS", ForceSuit: "stars"},
		{Hand: []string{"JS", "AS", "9D", "TH", "KC"}, Upcard: "TS", Seat: 5},
	}
	for i, r := range bad {
		if _, err := r.Config(10, 1); !errors.Is(err, ErrBadRequest) {
			t.Fatalf("case %d: expected ErrBadRequest, got %v", i, err)
		}
	}
}

func mustUnmarshal(t *testing.T, raw json.RawMessage, v any) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
}
