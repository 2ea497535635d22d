package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/openpitch/pitchside/internal/domain/post"
)

// PostRepository keeps posts and likes in memory. Selector evaluation
// leans on the user and team repositories for the follow and roster
// edges, mirroring the joins the SQL repository performs.
type PostRepository struct {
	mu    sync.RWMutex
	items map[string]post.Post
	likes map[string]map[string]struct{}
	users *UserRepository
	teams *TeamRepository
}

func NewPostRepository(users *UserRepository, teams *TeamRepository, posts []post.Post) *PostRepository {
	items := make(map[string]post.Post, len(posts))
	for _, p := range posts {
		items[p.ID] = p
	}

	return &PostRepository{
		items: items,
		likes: make(map[string]map[string]struct{}),
		users: users,
		teams: teams,
	}
}

func (r *PostRepository) Create(_ context.Context, p post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = p

	return nil
}

func (r *PostRepository) GetByID(_ context.Context, postID string) (post.Post, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[postID]
	if !ok {
		return post.Post{}, false, nil
	}

	return p, true, nil
}

func (r *PostRepository) ListFeed(_ context.Context, sel post.Selector, viewerID string, limit int, cursor *post.Cursor) ([]post.FeedItem, error) {
	r.mu.RLock()
	matched := make([]post.Post, 0, len(r.items))
	for _, p := range r.items {
		if r.matches(sel, p) {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	out := make([]post.FeedItem, 0, limit+1)
	for _, p := range matched {
		if cursor != nil && afterCursor(p, *cursor) {
			continue
		}
		out = append(out, r.annotate(p, viewerID))
		if len(out) == limit+1 {
			break
		}
	}

	return out, nil
}

func (r *PostRepository) HasLike(_ context.Context, postID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.likes[postID][userID]

	return ok, nil
}

func (r *PostRepository) AddLike(_ context.Context, postID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	edges, ok := r.likes[postID]
	if !ok {
		edges = make(map[string]struct{})
		r.likes[postID] = edges
	}
	edges[userID] = struct{}{}

	return nil
}

func (r *PostRepository) RemoveLike(_ context.Context, postID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.likes[postID], userID)

	return nil
}

// afterCursor reports whether the row sorts before the cursor row, i.e.
// it already appeared on an earlier page. The cursor row itself starts
// the new page.
func afterCursor(p post.Post, c post.Cursor) bool {
	if p.CreatedAt.After(c.CreatedAt) {
		return true
	}
	if p.CreatedAt.Equal(c.CreatedAt) && p.ID > c.ID {
		return true
	}

	return false
}

func (r *PostRepository) annotate(p post.Post, viewerID string) post.FeedItem {
	r.mu.RLock()
	likeCount := len(r.likes[p.ID])
	likedByMe := false
	if viewerID != "" {
		_, likedByMe = r.likes[p.ID][viewerID]
	}
	r.mu.RUnlock()

	return post.FeedItem{
		Post:      p,
		Author:    r.users.summary(p.UserID),
		LikeCount: likeCount,
		LikedByMe: likedByMe,
	}
}

func (r *PostRepository) matches(sel post.Selector, p post.Post) bool {
	switch s := sel.(type) {
	case post.All:
		return true
	case post.ByAuthor:
		return p.UserID == s.UserID
	case post.ByTeam:
		if p.HomeTeamID != nil && *p.HomeTeamID == s.TeamID {
			return true
		}
		if p.AwayTeamID != nil && *p.AwayTeamID == s.TeamID {
			return true
		}
		return r.teams.belongsTo(s.TeamID, p.UserID)
	case post.ByLeague:
		return p.LeagueID != nil && *p.LeagueID == s.LeagueID
	case post.ByFollowed:
		return r.users.following(s.ViewerID, p.UserID)
	case post.Union:
		for _, member := range s.Selectors {
			if r.matches(member, p) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
