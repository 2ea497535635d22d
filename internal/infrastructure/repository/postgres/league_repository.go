package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/openpitch/pitchside/internal/domain/league"
	qb "github.com/openpitch/pitchside/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Create(ctx context.Context, l league.League) error {
	query, args, err := qb.InsertModel("leagues", leagueToRow(l), "")
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert league: %w", err)
	}

	return nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return rowToLeague(row), true, nil
}

func (r *LeagueRepository) Update(ctx context.Context, l league.League) error {
	query, args, err := qb.Update("leagues").
		Set("name", l.Name).
		Set("description", l.Description).
		Set("manager_id", l.ManagerID).
		Where(qb.Eq("id", l.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update league: %w", err)
	}

	return nil
}

func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) error {
	query, args, err := qb.DeleteFrom("leagues").
		Where(qb.Eq("id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete league: %w", err)
	}

	return nil
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues query: %w", err)
	}

	return r.selectLeagues(ctx, query, args)
}

func (r *LeagueRepository) ListByManager(ctx context.Context, userID string) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("manager_id", userID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues by manager query: %w", err)
	}

	return r.selectLeagues(ctx, query, args)
}

func (r *LeagueRepository) ListByTeamIDs(ctx context.Context, teamIDs []string) ([]league.League, error) {
	if len(teamIDs) == 0 {
		return []league.League{}, nil
	}

	query, args, err := qb.Select("DISTINCT l.*").From("leagues l").
		Where(qb.Expr(
			"EXISTS (SELECT 1 FROM league_teams lt WHERE lt.league_id = l.id AND lt.team_id = ANY(?))",
			pq.Array(teamIDs),
		)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues by teams query: %w", err)
	}

	return r.selectLeagues(ctx, query, args)
}

func (r *LeagueRepository) AddTeams(ctx context.Context, leagueID string, teamIDs []string) error {
	if len(teamIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	builder := qb.InsertInto("league_teams").
		Columns("league_id", "team_id", "created_at").
		Suffix("ON CONFLICT (league_id, team_id) DO NOTHING")
	for _, teamID := range teamIDs {
		builder.Values(leagueID, teamID, now)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert league teams query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert league teams: %w", err)
	}

	return nil
}

func (r *LeagueRepository) RemoveTeams(ctx context.Context, leagueID string, teamIDs []string) error {
	if len(teamIDs) == 0 {
		return nil
	}

	query, args, err := qb.DeleteFrom("league_teams").
		Where(
			qb.Eq("league_id", leagueID),
			qb.InStrings("team_id", teamIDs),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete league teams query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete league teams: %w", err)
	}

	return nil
}

func (r *LeagueRepository) selectLeagues(ctx context.Context, query string, args []any) ([]league.League, error) {
	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToLeague(row))
	}

	return out, nil
}

func leagueToRow(l league.League) leagueTableModel {
	return leagueTableModel{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		ManagerID:   l.ManagerID,
		CreatedAt:   l.CreatedAt,
	}
}

func rowToLeague(row leagueTableModel) league.League {
	return league.League{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		ManagerID:   row.ManagerID,
		CreatedAt:   row.CreatedAt,
	}
}
