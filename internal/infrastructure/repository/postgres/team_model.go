package postgres

import "time"

type teamTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Image       string    `db:"image"`
	Description string    `db:"description"`
	ManagerID   string    `db:"manager_id"`
	LeagueID    *string   `db:"league_id"`
	CreatedAt   time.Time `db:"created_at"`
}
