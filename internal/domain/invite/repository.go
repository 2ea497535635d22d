package invite

import "context"

// Repository describes invite persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, inv Invite) error
	GetByID(ctx context.Context, inviteID string) (Invite, bool, error)

	// TransitionFromPending atomically moves a PENDING invite to the
	// given status. It reports false when the row exists but is no
	// longer PENDING; callers distinguish that from a missing row via
	// GetByID.
	TransitionFromPending(ctx context.Context, inviteID string, to Status) (bool, error)

	ListByPlayer(ctx context.Context, playerID string) ([]Invite, error)
	ListByTeam(ctx context.Context, teamID string) ([]Invite, error)
}
