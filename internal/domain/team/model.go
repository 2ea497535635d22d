package team

import (
	"fmt"
	"time"
)

// Team is a recreational squad owned by exactly one manager. The manager
// does not have to appear on the player roster.
type Team struct {
	ID          string
	Name        string
	Image       string
	Description string
	ManagerID   string
	LeagueID    *string
	CreatedAt   time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.ManagerID == "" {
		return fmt.Errorf("team manager id is required")
	}

	return nil
}
