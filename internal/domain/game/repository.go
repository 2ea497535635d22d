package game

import "context"

// Repository describes game persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, g Game) error
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Game, error)
}
