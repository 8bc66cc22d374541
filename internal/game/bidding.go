package game

import (
	"fmt"

	"euchre-sim/internal/shared"
	"euchre-sim/internal/strategy"
)

// BidRound records how trump was settled.
type BidRound int

const (
	RoundOrderUp BidRound = iota + 1 // upcard ordered up, dealer picked it up
	RoundCall                        // another suit named in the second round
	RoundForced                      // stuck dealer had to name a suit
)

func (r BidRound) String() string {
	switch r {
	case RoundOrderUp:
		return "order up"
	case RoundCall:
		return "call"
	case RoundForced:
		return "forced"
	default:
		return fmt.Sprintf("BidRound(%d)", int(r))
	}
}

// BidOutcome is the settled result of bidding for one hand.
type BidOutcome struct {
	Trump         shared.Suit `json:"trump"`
	Caller        int         `json:"caller"`
	Makers        int         `json:"makers"`
	Round         BidRound    `json:"round"`
	Alone         bool        `json:"alone"`
	Loner         int         `json:"loner"` // -1 unless Alone
	DefendAlone   bool        `json:"defend_alone"`
	DefenderLoner int         `json:"defender_loner"` // -1 unless DefendAlone
	SittingOut    []int       `json:"sitting_out"`
	PickedUp      bool        `json:"picked_up"`
	Discard       shared.Card `json:"-"` // meaningful only when PickedUp
}

// Defenders returns the team that did not name trump.
func (b BidOutcome) Defenders() int {
	return 1 - b.Makers
}

// IsSittingOut reports whether seat skips this hand.
func (b BidOutcome) IsSittingOut(seat int) bool {
	for _, s := range b.SittingOut {
		if s == seat {
			return true
		}
	}
	return false
}

// ActiveSeats is the number of seats playing each trick.
func (b BidOutcome) ActiveSeats() int {
	return shared.NumSeats - len(b.SittingOut)
}

// Bid runs both rounds of trump calling starting left of the dealer, then the
// stuck-dealer pick. When the upcard is ordered up the dealer takes it and
// discards, whichever seat made the call. Player hands are updated in place.
func Bid(players [shared.NumSeats]*shared.Player, strategies [shared.NumSeats]strategy.Strategy, dealer int, upcard shared.Card) (BidOutcome, error) {
	upSuit := upcard.Suit()

	// first round: only the upcard's suit may be ordered up
	for offset := 1; offset <= shared.NumSeats; offset++ {
		seat := (dealer + offset) % shared.NumSeats
		offer := strategy.Offer{
			Hand:       holding(players[seat]),
			IsDealer:   seat == dealer,
			Candidates: []shared.Suit{upSuit},
		}
		if seat == dealer {
			up := upcard
			offer.Upcard = &up
		}

		call, ok := strategies[seat].ChooseTrump(offer)
		if !ok {
			continue
		}
		if call.Suit != upSuit {
			return BidOutcome{}, fmt.Errorf("%w: seat %d ordered up %v, only %v may be called", ErrContractViolation, seat, call.Suit, upSuit)
		}

		bid := newOutcome(seat, call, RoundOrderUp)
		discard, err := pickUp(players[dealer], strategies[dealer], upcard, bid.Trump)
		if err != nil {
			return BidOutcome{}, err
		}
		bid.PickedUp = true
		bid.Discard = discard
		return bid, nil
	}

	// second round: any suit but the one turned down
	remaining := make([]shared.Suit, 0, shared.NumSuits-1)
	for _, s := range shared.AllSuits() {
		if s != upSuit {
			remaining = append(remaining, s)
		}
	}

	for offset := 1; offset <= shared.NumSeats; offset++ {
		seat := (dealer + offset) % shared.NumSeats
		call, ok := strategies[seat].ChooseTrump(strategy.Offer{
			Hand:       holding(players[seat]),
			IsDealer:   seat == dealer,
			Candidates: remaining,
		})
		if !ok {
			continue
		}
		if !validSuit(remaining, call.Suit) {
			return BidOutcome{}, fmt.Errorf("%w: seat %d called %v, which was turned down", ErrContractViolation, seat, call.Suit)
		}
		return newOutcome(seat, call, RoundCall), nil
	}

	// stuck dealer
	call, ok := strategies[dealer].ChooseTrump(strategy.Offer{
		Hand:       holding(players[dealer]),
		IsDealer:   true,
		Candidates: remaining,
		Force:      true,
	})
	if !ok {
		return BidOutcome{}, fmt.Errorf("%w: dealer %d passed a forced pick", ErrContractViolation, dealer)
	}
	if !validSuit(remaining, call.Suit) {
		return BidOutcome{}, fmt.Errorf("%w: dealer %d forced to %v, which was turned down", ErrContractViolation, dealer, call.Suit)
	}
	return newOutcome(dealer, call, RoundForced), nil
}

// OfferDefendAlone asks each defender, in ascending seat order, whether to
// defend alone against a lone maker. The first to accept sits its partner out.
func OfferDefendAlone(bid BidOutcome, players [shared.NumSeats]*shared.Player, strategies [shared.NumSeats]strategy.Strategy) BidOutcome {
	if !bid.Alone {
		return bid
	}
	for seat := 0; seat < shared.NumSeats; seat++ {
		if shared.TeamOf(seat) == bid.Makers {
			continue
		}
		if !strategies[seat].DefendAlone(holding(players[seat]), bid.Trump) {
			continue
		}
		out := bid
		out.DefendAlone = true
		out.DefenderLoner = seat
		out.SittingOut = append(append([]int{}, bid.SittingOut...), shared.PartnerOf(seat))
		return out
	}
	return bid
}

func newOutcome(caller int, call strategy.Call, round BidRound) BidOutcome {
	bid := BidOutcome{
		Trump:         call.Suit,
		Caller:        caller,
		Makers:        shared.TeamOf(caller),
		Round:         round,
		Alone:         call.Alone,
		Loner:         -1,
		DefenderLoner: -1,
		SittingOut:    []int{},
	}
	if call.Alone {
		bid.Loner = caller
		bid.SittingOut = append(bid.SittingOut, shared.PartnerOf(caller))
	}
	return bid
}

// pickUp gives the upcard to the dealer and lets the dealer's strategy discard.
func pickUp(dealer *shared.Player, s strategy.Strategy, upcard shared.Card, trump shared.Suit) (shared.Card, error) {
	dealer.AddCard(upcard)
	discard := s.Discard(holding(dealer), trump)
	if !dealer.RemoveCard(discard) {
		return 0, fmt.Errorf("%w: dealer %d discarded %s, not in hand", ErrContractViolation, dealer.Seat, discard)
	}
	if len(dealer.Hand) != shared.HandSize {
		return 0, fmt.Errorf("%w: dealer holds %d cards after discard", ErrInvariantViolation, len(dealer.Hand))
	}
	return discard, nil
}

// holding returns a copy of the player's hand for a strategy to inspect.
func holding(p *shared.Player) []shared.Card {
	return append([]shared.Card{}, p.Hand...)
}

func validSuit(candidates []shared.Suit, s shared.Suit) bool {
	for _, c := range candidates {
		if c == s {
			return true
		}
	}
	return false
}
