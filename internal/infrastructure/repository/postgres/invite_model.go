package postgres

import "time"

type inviteTableModel struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	PlayerID  string    `db:"player_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
