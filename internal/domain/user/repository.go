package user

import "context"

// Repository describes user and follow-graph persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, userID string) (User, bool, error)

	// Follow and Unfollow are idempotent set operations on the
	// self-referential follow edge.
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	CountFollowers(ctx context.Context, userID string) (int, error)
	CountFollowing(ctx context.Context, userID string) (int, error)
}
