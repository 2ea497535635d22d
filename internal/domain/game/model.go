package game

import (
	"fmt"
	"time"
)

// Game is one scheduled or completed match between two teams. Scores are
// nil until a result is logged. Friendly games carry no league reference.
type Game struct {
	ID         string
	Date       time.Time
	HomeTeamID string
	AwayTeamID string
	HomeScore  *int
	AwayScore  *int
	LeagueID   *string
	Friendly   bool
	CreatedAt  time.Time
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if g.HomeTeamID == "" || g.AwayTeamID == "" {
		return fmt.Errorf("game requires both home and away team ids")
	}
	if g.HomeTeamID == g.AwayTeamID {
		return fmt.Errorf("game home and away teams must differ")
	}
	if g.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}

	return nil
}
