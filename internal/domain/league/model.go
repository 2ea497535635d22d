package league

import (
	"fmt"
	"time"
)

// League groups teams for a season of organized play. A league may exist
// without teams and without a manager.
type League struct {
	ID          string
	Name        string
	Description string
	ManagerID   *string
	CreatedAt   time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}
