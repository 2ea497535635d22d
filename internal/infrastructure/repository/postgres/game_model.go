package postgres

import "time"

type gameTableModel struct {
	ID         string    `db:"id"`
	Date       time.Time `db:"date"`
	HomeTeamID string    `db:"home_team_id"`
	AwayTeamID string    `db:"away_team_id"`
	HomeScore  *int      `db:"home_score"`
	AwayScore  *int      `db:"away_score"`
	LeagueID   *string   `db:"league_id"`
	Friendly   bool      `db:"friendly"`
	CreatedAt  time.Time `db:"created_at"`
}
