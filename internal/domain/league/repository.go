package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, l League) error
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	Update(ctx context.Context, l League) error
	Delete(ctx context.Context, leagueID string) error
	List(ctx context.Context) ([]League, error)
	ListByManager(ctx context.Context, userID string) ([]League, error)

	// ListByTeamIDs returns every league containing at least one of the
	// given teams.
	ListByTeamIDs(ctx context.Context, teamIDs []string) ([]League, error)

	// AddTeams and RemoveTeams are batched idempotent set operations on
	// the league membership edge.
	AddTeams(ctx context.Context, leagueID string, teamIDs []string) error
	RemoveTeams(ctx context.Context, leagueID string, teamIDs []string) error
}
