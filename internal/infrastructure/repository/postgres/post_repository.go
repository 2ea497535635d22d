package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/openpitch/pitchside/internal/domain/post"
	"github.com/openpitch/pitchside/internal/domain/user"
	qb "github.com/openpitch/pitchside/internal/platform/querybuilder"
)

type PostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p post.Post) error {
	row := postTableModel{
		ID:         p.ID,
		Content:    p.Content,
		Type:       string(p.Type),
		UserID:     p.UserID,
		HomeTeamID: p.HomeTeamID,
		AwayTeamID: p.AwayTeamID,
		HomeScore:  p.HomeScore,
		AwayScore:  p.AwayScore,
		LeagueID:   p.LeagueID,
		CreatedAt:  p.CreatedAt,
	}
	query, args, err := qb.InsertModel("posts", row, "")
	if err != nil {
		return fmt.Errorf("build insert post query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, postID string) (post.Post, bool, error) {
	query, args, err := qb.Select("*").From("posts").
		Where(qb.Eq("id", postID)).
		ToSQL()
	if err != nil {
		return post.Post{}, false, fmt.Errorf("build get post query: %w", err)
	}

	var row postTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return post.Post{}, false, nil
		}
		return post.Post{}, false, fmt.Errorf("get post by id: %w", err)
	}

	return rowToPost(row), true, nil
}

// ListFeed compiles the selector into one WHERE condition so every
// variant shares the ordering, cursor and limit clauses. The cursor is
// an inclusive row comparison: the cursor row opens the new page.
func (r *PostRepository) ListFeed(ctx context.Context, sel post.Selector, viewerID string, limit int, cursor *post.Cursor) ([]post.FeedItem, error) {
	conditions := []qb.Condition{compileSelector(sel)}
	if cursor != nil {
		conditions = append(conditions, qb.Expr("(p.created_at, p.id) <= (?, ?)", cursor.CreatedAt, cursor.ID))
	}

	query, args, err := qb.Select(
		"p.*",
		"u.name AS author_name",
		"u.image AS author_image",
	).
		From("posts p JOIN users u ON u.id = p.user_id").
		Where(conditions...).
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(limit + 1).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build feed query: %w", err)
	}

	var rows []feedRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select feed: %w", err)
	}
	if len(rows) == 0 {
		return []post.FeedItem{}, nil
	}

	postIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		postIDs = append(postIDs, row.ID)
	}

	likeCounts, err := r.likeCounts(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	viewerLikes, err := r.viewerLikes(ctx, viewerID, postIDs)
	if err != nil {
		return nil, err
	}

	out := make([]post.FeedItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, post.FeedItem{
			Post: rowToPost(row.postTableModel),
			Author: user.Summary{
				ID:    row.UserID,
				Name:  row.AuthorName,
				Image: row.AuthorImage,
			},
			LikeCount: likeCounts[row.ID],
			LikedByMe: viewerLikes[row.ID],
		})
	}

	return out, nil
}

func (r *PostRepository) HasLike(ctx context.Context, postID, userID string) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("likes").
		Where(
			qb.Eq("post_id", postID),
			qb.Eq("user_id", userID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build has like query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}

	return count > 0, nil
}

func (r *PostRepository) AddLike(ctx context.Context, postID, userID string) error {
	query, args, err := qb.InsertInto("likes").
		Columns("user_id", "post_id", "created_at").
		Values(userID, postID, time.Now().UTC()).
		Suffix("ON CONFLICT (user_id, post_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert like query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert like: %w", err)
	}

	return nil
}

func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	query, args, err := qb.DeleteFrom("likes").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("post_id", postID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete like query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}

	return nil
}

func (r *PostRepository) likeCounts(ctx context.Context, postIDs []string) (map[string]int, error) {
	const query = `
SELECT post_id, COUNT(1) AS like_count
FROM likes
WHERE post_id = ANY($1)
GROUP BY post_id`

	var rows []struct {
		PostID    string `db:"post_id"`
		LikeCount int    `db:"like_count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(postIDs)); err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.PostID] = row.LikeCount
	}

	return out, nil
}

func (r *PostRepository) viewerLikes(ctx context.Context, viewerID string, postIDs []string) (map[string]bool, error) {
	if viewerID == "" {
		return nil, nil
	}

	const query = `
SELECT post_id
FROM likes
WHERE user_id = $1 AND post_id = ANY($2)`

	var likedIDs []string
	if err := r.db.SelectContext(ctx, &likedIDs, query, viewerID, pq.Array(postIDs)); err != nil {
		return nil, fmt.Errorf("list viewer likes: %w", err)
	}

	out := make(map[string]bool, len(likedIDs))
	for _, id := range likedIDs {
		out[id] = true
	}

	return out, nil
}

// compileSelector turns a feed selector into a posts predicate. Union
// members become OR branches; an empty union matches nothing.
func compileSelector(sel post.Selector) qb.Condition {
	switch s := sel.(type) {
	case post.All:
		return qb.And()
	case post.ByAuthor:
		return qb.Eq("p.user_id", s.UserID)
	case post.ByTeam:
		return qb.Or(
			qb.Eq("p.home_team_id", s.TeamID),
			qb.Eq("p.away_team_id", s.TeamID),
			qb.Expr("p.user_id IN (SELECT user_id FROM team_players WHERE team_id = ?)", s.TeamID),
			qb.Expr("p.user_id IN (SELECT manager_id FROM teams WHERE id = ?)", s.TeamID),
		)
	case post.ByLeague:
		return qb.Eq("p.league_id", s.LeagueID)
	case post.ByFollowed:
		return qb.Expr("p.user_id IN (SELECT followee_id FROM user_follows WHERE follower_id = ?)", s.ViewerID)
	case post.Union:
		members := make([]qb.Condition, 0, len(s.Selectors))
		for _, member := range s.Selectors {
			members = append(members, compileSelector(member))
		}
		return qb.Or(members...)
	default:
		return qb.Or()
	}
}

func rowToPost(row postTableModel) post.Post {
	return post.Post{
		ID:         row.ID,
		Content:    row.Content,
		Type:       post.Type(row.Type),
		UserID:     row.UserID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		HomeScore:  row.HomeScore,
		AwayScore:  row.AwayScore,
		LeagueID:   row.LeagueID,
		CreatedAt:  row.CreatedAt,
	}
}
