package game

import (
	"fmt"

	"euchre-sim/internal/shared"
	"euchre-sim/internal/strategy"
)

// TricksPerHand is the number of tricks in every hand.
const TricksPerHand = shared.HandSize

// TrickObserver is told about each completed trick and the running trick count.
type TrickObserver func(number int, trick *shared.Trick, tricks [shared.NumTeams]int)

// PlayTricks plays all five tricks of a hand under bid and returns the tricks
// won by each team. The first active seat after the dealer leads the first
// trick; each trick's winner leads the next. notify may be nil.
func PlayTricks(players [shared.NumSeats]*shared.Player, strategies [shared.NumSeats]strategy.Strategy, dealer int, bid BidOutcome, notify TrickObserver) ([shared.NumTeams]int, error) {
	var tricks [shared.NumTeams]int
	active := bid.ActiveSeats()
	if active < 2 {
		return tricks, fmt.Errorf("%w: only %d active seats", ErrInvariantViolation, active)
	}

	lead := firstActiveAfter(dealer, bid)
	for n := 1; n <= TricksPerHand; n++ {
		trick := shared.NewTrick()
		for offset := 0; offset < shared.NumSeats; offset++ {
			seat := (lead + offset) % shared.NumSeats
			if bid.IsSittingOut(seat) {
				continue
			}
			p := players[seat]
			legal := shared.LegalMoves(p.Hand, trick.Led(), bid.Trump)
			card := strategies[seat].PlayCard(holding(p), append([]shared.Card{}, legal...), trick.Played(), bid.Trump)
			if !shared.Contains(legal, card) {
				return tricks, fmt.Errorf("%w: seat %d played %s, legal cards are %v", ErrContractViolation, seat, card, legal)
			}
			p.RemoveCard(card)
			trick.AddCard(card, seat)
		}

		if len(trick.Cards) != active {
			return tricks, fmt.Errorf("%w: trick %d has %d cards for %d active seats", ErrInvariantViolation, n, len(trick.Cards), active)
		}
		winner, err := trick.DetermineWinner(bid.Trump)
		if err != nil {
			return tricks, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		tricks[shared.TeamOf(winner)]++
		lead = winner
		if notify != nil {
			notify(n, trick, tricks)
		}
	}

	for seat, p := range players {
		if !bid.IsSittingOut(seat) && len(p.Hand) != 0 {
			return tricks, fmt.Errorf("%w: seat %d still holds %d cards", ErrInvariantViolation, seat, len(p.Hand))
		}
	}
	return tricks, nil
}

// firstActiveAfter returns the first seat after start that is not sitting out.
func firstActiveAfter(start int, bid BidOutcome) int {
	for offset := 1; offset <= shared.NumSeats; offset++ {
		seat := (start + offset) % shared.NumSeats
		if !bid.IsSittingOut(seat) {
			return seat
		}
	}
	return start
}
