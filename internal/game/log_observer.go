package game

import (
	"log"
	"strings"

	"euchre-sim/internal/shared"
)

// LogObserver renders table events as log lines, one or two per event.
func LogObserver(logger *log.Logger) Observer {
	return func(e Event) {
		switch p := e.Payload.(type) {
		case HandDealtPayload:
			logger.Printf("Game %s: Hand %d dealt by %s. Upcard is %s.", e.GameID, e.Hand, SeatNames[p.Dealer], p.Upcard.Name())
			for seat, h := range p.Hands {
				logger.Printf("Game %s: %s holds %s", e.GameID, SeatNames[seat], cardList(h))
			}
		case BidOutcome:
			if e.Kind == EventDefendAlone {
				logger.Printf("Game %s: %s DEFENDS ALONE against %s.", e.GameID, SeatNames[p.DefenderLoner], SeatNames[p.Loner])
				return
			}
			alone := ""
			if p.Alone {
				alone = " and goes alone"
			}
			logger.Printf("Game %s: %s calls %s (%s)%s. Team %d are makers.", e.GameID, SeatNames[p.Caller], p.Trump, p.Round, alone, p.Makers)
			if p.PickedUp {
				logger.Printf("Game %s: Dealer picks up the upcard and discards.", e.GameID)
			}
		case TrickPlayedPayload:
			plays := make([]string, len(p.Trick.Cards))
			for i, pc := range p.Trick.Cards {
				plays[i] = SeatNames[pc.Seat] + " " + pc.Card.String()
			}
			logger.Printf("Game %s: Trick %d: %s. %s wins. Tricks %d-%d.", e.GameID, p.Number, strings.Join(plays, ", "), SeatNames[p.Trick.WinnerSeat], p.Tricks[0], p.Tricks[1])
		case HandOutcome:
			verb := "makes it"
			if !p.MakersWon {
				verb = "is euchred"
			}
			logger.Printf("Game %s: Team %d %s with %d tricks. Team %d +%d.", e.GameID, p.Makers, verb, p.MakerTricks, p.ScoringTeam, p.Points)
		case GameOverPayload:
			logger.Printf("Game %s: Game over after %d hands. Team %d wins %d-%d.", e.GameID, p.Hands, p.WinningTeam, p.Scores[0], p.Scores[1])
		default:
			logger.Printf("Game %s: unhandled event %s", e.GameID, e.Kind)
		}
	}
}

func cardList(cards []shared.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}
