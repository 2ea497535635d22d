package post

import "context"

// Repository describes post and like persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Post) error
	GetByID(ctx context.Context, postID string) (Post, bool, error)

	// ListFeed returns up to limit+1 feed items matching the selector in
	// strict (created_at DESC, id DESC) order, starting inclusively at
	// the cursor when one is given. viewerID annotates LikedByMe and may
	// be empty for unauthenticated reads.
	ListFeed(ctx context.Context, sel Selector, viewerID string, limit int, cursor *Cursor) ([]FeedItem, error)

	HasLike(ctx context.Context, postID, userID string) (bool, error)
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
}
