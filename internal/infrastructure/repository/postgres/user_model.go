package postgres

import "time"

type userTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Image     string    `db:"image"`
	CreatedAt time.Time `db:"created_at"`
}
