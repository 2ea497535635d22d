package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openpitch/pitchside/internal/domain/game"
	qb "github.com/openpitch/pitchside/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Create(ctx context.Context, g game.Game) error {
	row := gameTableModel{
		ID:         g.ID,
		Date:       g.Date,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		HomeScore:  g.HomeScore,
		AwayScore:  g.AwayScore,
		LeagueID:   g.LeagueID,
		Friendly:   g.Friendly,
		CreatedAt:  g.CreatedAt,
	}
	query, args, err := qb.InsertModel("games", row, "")
	if err != nil {
		return fmt.Errorf("build insert game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	return nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game by id: %w", err)
	}

	return rowToGame(row), true, nil
}

func (r *GameRepository) ListByLeague(ctx context.Context, leagueID string) ([]game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list games by league query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToGame(row))
	}

	return out, nil
}

func rowToGame(row gameTableModel) game.Game {
	return game.Game{
		ID:         row.ID,
		Date:       row.Date,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		HomeScore:  row.HomeScore,
		AwayScore:  row.AwayScore,
		LeagueID:   row.LeagueID,
		Friendly:   row.Friendly,
		CreatedAt:  row.CreatedAt,
	}
}
