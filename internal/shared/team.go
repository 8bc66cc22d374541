package shared

import "github.com/google/uuid"

// NumTeams is the number of partnerships at the table.
const NumTeams = 2

// Team represents a partnership. Seats 0 and 2 form team 0, seats 1 and 3 team 1.
type Team struct {
	ID         string     `json:"id"`
	Players    [2]*Player `json:"players"`
	Score      int        `json:"score"`
	TeamNumber int        `json:"team_number"`
}

// NewTeam creates a new team with the given number and players.
// It generates a unique UUID for the team ID.
func NewTeam(teamNumber int, player1, player2 *Player) *Team {
	return &Team{
		ID:         uuid.NewString(),
		Players:    [2]*Player{player1, player2},
		Score:      0,
		TeamNumber: teamNumber,
	}
}

// TeamOf returns the team a seat belongs to.
func TeamOf(seat int) int {
	return seat % NumTeams
}

// PartnerOf returns the seat across the table.
func PartnerOf(seat int) int {
	return (seat + 2) % NumSeats
}

// AddScore adds points to the team's total score.
func (t *Team) AddScore(points int) {
	t.Score += points
}

// ResetScore resets the score to 0.
func (t *Team) ResetScore() {
	t.Score = 0
}
