package postgres

import "time"

type leagueTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ManagerID   *string   `db:"manager_id"`
	CreatedAt   time.Time `db:"created_at"`
}
