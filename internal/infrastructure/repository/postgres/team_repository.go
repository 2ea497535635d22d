package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openpitch/pitchside/internal/domain/team"
	"github.com/openpitch/pitchside/internal/domain/user"
	qb "github.com/openpitch/pitchside/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	query, args, err := qb.InsertModel("teams", teamToRow(t), "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return rowToTeam(row), true, nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	query, args, err := qb.Update("teams").
		Set("name", t.Name).
		Set("image", t.Image).
		Set("description", t.Description).
		Set("manager_id", t.ManagerID).
		Set("league_id", t.LeagueID).
		Where(qb.Eq("id", t.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	query, args, err := qb.DeleteFrom("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) ListByPlayer(ctx context.Context, userID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Expr("id IN (SELECT team_id FROM team_players WHERE user_id = ?)", userID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams by player query: %w", err)
	}

	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) ListByManager(ctx context.Context, userID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("manager_id", userID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams by manager query: %w", err)
	}

	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams by league query: %w", err)
	}

	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) AddPlayer(ctx context.Context, teamID, userID string) error {
	query, args, err := qb.InsertInto("team_players").
		Columns("team_id", "user_id", "created_at").
		Values(teamID, userID, time.Now().UTC()).
		Suffix("ON CONFLICT (team_id, user_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team player: %w", err)
	}

	return nil
}

func (r *TeamRepository) RemovePlayer(ctx context.Context, teamID, userID string) error {
	query, args, err := qb.DeleteFrom("team_players").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("user_id", userID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team player: %w", err)
	}

	return nil
}

func (r *TeamRepository) ListPlayers(ctx context.Context, teamID string) ([]user.Summary, error) {
	const query = `
SELECT u.id, u.name, u.image
FROM users u
JOIN team_players tp ON tp.user_id = u.id
WHERE tp.team_id = $1
ORDER BY tp.created_at, u.id`

	var rows []struct {
		ID    string `db:"id"`
		Name  string `db:"name"`
		Image string `db:"image"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("list team players: %w", err)
	}

	out := make([]user.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, user.Summary{ID: row.ID, Name: row.Name, Image: row.Image})
	}

	return out, nil
}

func (r *TeamRepository) SetLeague(ctx context.Context, teamID string, leagueID *string) error {
	query, args, err := qb.Update("teams").
		Set("league_id", leagueID).
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set team league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set team league: %w", err)
	}

	return nil
}

func (r *TeamRepository) selectTeams(ctx context.Context, query string, args []any) ([]team.Team, error) {
	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToTeam(row))
	}

	return out, nil
}

func teamToRow(t team.Team) teamTableModel {
	return teamTableModel{
		ID:          t.ID,
		Name:        t.Name,
		Image:       t.Image,
		Description: t.Description,
		ManagerID:   t.ManagerID,
		LeagueID:    t.LeagueID,
		CreatedAt:   t.CreatedAt,
	}
}

func rowToTeam(row teamTableModel) team.Team {
	return team.Team{
		ID:          row.ID,
		Name:        row.Name,
		Image:       row.Image,
		Description: row.Description,
		ManagerID:   row.ManagerID,
		LeagueID:    row.LeagueID,
		CreatedAt:   row.CreatedAt,
	}
}
