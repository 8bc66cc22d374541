package strategy

import "euchre-sim/internal/shared"

// Forced wraps a strategy and overrides its trump call. It is used to ask
// "what if this seat always calls Suit" or "always/never goes alone".
type Forced struct {
	Base  Strategy
	Suit  *shared.Suit // call this suit whenever it is a candidate, pass otherwise
	Alone *bool        // replaces the alone choice of any call this seat makes
}

func (f *Forced) ChooseTrump(offer Offer) (Call, bool) {
	var call Call
	var ok bool
	switch {
	case f.Suit != nil && hasCandidate(offer.Candidates, *f.Suit):
		call, ok = Call{Suit: *f.Suit}, true
		if base, called := f.Base.ChooseTrump(offer); called && base.Suit == *f.Suit {
			call.Alone = base.Alone
		}
	case f.Suit != nil && !offer.Force:
		return Call{}, false
	default:
		call, ok = f.Base.ChooseTrump(offer)
	}
	if ok && f.Alone != nil {
		call.Alone = *f.Alone
	}
	return call, ok
}

func (f *Forced) Discard(hand []shared.Card, trump shared.Suit) shared.Card {
	return f.Base.Discard(hand, trump)
}

func (f *Forced) PlayCard(hand []shared.Card, legal []shared.Card, trick []shared.Card, trump shared.Suit) shared.Card {
	return f.Base.PlayCard(hand, legal, trick, trump)
}

func (f *Forced) DefendAlone(hand []shared.Card, trump shared.Suit) bool {
	return f.Base.DefendAlone(hand, trump)
}
