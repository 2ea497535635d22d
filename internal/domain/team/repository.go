package team

import (
	"context"

	"github.com/openpitch/pitchside/internal/domain/user"
)

// Repository describes team and roster persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, t Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, teamID string) error
	List(ctx context.Context) ([]Team, error)
	ListByPlayer(ctx context.Context, userID string) ([]Team, error)
	ListByManager(ctx context.Context, userID string) ([]Team, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Team, error)

	// AddPlayer and RemovePlayer are idempotent set operations on the
	// team roster edge; they never create duplicate rows and never fail
	// on an edge that is already in the requested state.
	AddPlayer(ctx context.Context, teamID, userID string) error
	RemovePlayer(ctx context.Context, teamID, userID string) error
	ListPlayers(ctx context.Context, teamID string) ([]user.Summary, error)

	// SetLeague records the team's current league affiliation. A nil
	// leagueID clears it.
	SetLeague(ctx context.Context, teamID string, leagueID *string) error
}
