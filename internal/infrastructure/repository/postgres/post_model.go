package postgres

import "time"

type postTableModel struct {
	ID         string    `db:"id"`
	Content    string    `db:"content"`
	Type       string    `db:"type"`
	UserID     string    `db:"user_id"`
	HomeTeamID *string   `db:"home_team_id"`
	AwayTeamID *string   `db:"away_team_id"`
	HomeScore  *int      `db:"home_score"`
	AwayScore  *int      `db:"away_score"`
	LeagueID   *string   `db:"league_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type feedRowModel struct {
	postTableModel
	AuthorName  string `db:"author_name"`
	AuthorImage string `db:"author_image"`
}
