package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openpitch/pitchside/internal/domain/user"
	qb "github.com/openpitch/pitchside/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	row := userTableModel{
		ID:        u.ID,
		Name:      u.Name,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
	query, args, err := qb.InsertModel("users", row, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by id: %w", err)
	}

	return user.User{
		ID:        row.ID,
		Name:      row.Name,
		Image:     row.Image,
		CreatedAt: row.CreatedAt,
	}, true, nil
}

func (r *UserRepository) Follow(ctx context.Context, followerID, followeeID string) error {
	query, args, err := qb.InsertInto("user_follows").
		Columns("follower_id", "followee_id", "created_at").
		Values(followerID, followeeID, time.Now().UTC()).
		Suffix("ON CONFLICT (follower_id, followee_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert follow query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert follow: %w", err)
	}

	return nil
}

func (r *UserRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	query, args, err := qb.DeleteFrom("user_follows").
		Where(
			qb.Eq("follower_id", followerID),
			qb.Eq("followee_id", followeeID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete follow query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}

	return nil
}

func (r *UserRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("user_follows").
		Where(
			qb.Eq("follower_id", followerID),
			qb.Eq("followee_id", followeeID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build is following query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check following: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("user_follows").
		Where(qb.Eq("followee_id", userID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count followers query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count followers: %w", err)
	}

	return count, nil
}

func (r *UserRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("user_follows").
		Where(qb.Eq("follower_id", userID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count following query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count following: %w", err)
	}

	return count, nil
}
