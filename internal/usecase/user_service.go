package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openpitch/pitchside/internal/domain/user"
)

type RegisterUserInput struct {
	ID    string
	Name  string
	Image string
}

type UserService struct {
	userRepo user.Repository
	now      func() time.Time
}

func NewUserService(userRepo user.Repository) *UserService {
	return &UserService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Register stores the social projection of an account the identity
// provider already verified. Registering an existing id is a no-op.
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (user.User, error) {
	input.ID = strings.TrimSpace(input.ID)
	input.Name = strings.TrimSpace(input.Name)
	if input.ID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return user.User{}, fmt.Errorf("%w: user name is required", ErrInvalidInput)
	}

	existing, exists, err := s.userRepo.GetByID(ctx, input.ID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if exists {
		return existing, nil
	}

	item := user.User{
		ID:        input.ID,
		Name:      input.Name,
		Image:     strings.TrimSpace(input.Image),
		CreatedAt: s.now().UTC(),
	}
	if err := s.userRepo.Create(ctx, item); err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return item, nil
}

// GetProfile returns a user with their follow-graph counters. The
// FollowedByMe flag is false for unauthenticated viewers.
func (s *UserService) GetProfile(ctx context.Context, viewerID, userID string) (user.Profile, error) {
	viewerID = strings.TrimSpace(viewerID)
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.Profile{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.Profile{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	followers, err := s.userRepo.CountFollowers(ctx, userID)
	if err != nil {
		return user.Profile{}, fmt.Errorf("count followers: %w", err)
	}
	following, err := s.userRepo.CountFollowing(ctx, userID)
	if err != nil {
		return user.Profile{}, fmt.Errorf("count following: %w", err)
	}

	profile := user.Profile{
		User:           item,
		FollowerCount:  followers,
		FollowingCount: following,
	}
	if viewerID != "" && viewerID != userID {
		followed, err := s.userRepo.IsFollowing(ctx, viewerID, userID)
		if err != nil {
			return user.Profile{}, fmt.Errorf("check following: %w", err)
		}
		profile.FollowedByMe = followed
	}

	return profile, nil
}

// ToggleFollow flips the viewer's follow edge to the user and reports
// whether the call added one.
func (s *UserService) ToggleFollow(ctx context.Context, viewerID, userID string) (bool, error) {
	viewerID = strings.TrimSpace(viewerID)
	userID = strings.TrimSpace(userID)
	if viewerID == "" {
		return false, fmt.Errorf("%w: following requires an authenticated viewer", ErrUnauthorized)
	}
	if userID == "" {
		return false, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if viewerID == userID {
		return false, fmt.Errorf("%w: cannot follow yourself", ErrInvalidInput)
	}

	_, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	followed, err := s.userRepo.IsFollowing(ctx, viewerID, userID)
	if err != nil {
		return false, fmt.Errorf("check following: %w", err)
	}
	if followed {
		if err := s.userRepo.Unfollow(ctx, viewerID, userID); err != nil {
			return false, fmt.Errorf("unfollow user: %w", err)
		}
		return false, nil
	}

	if err := s.userRepo.Follow(ctx, viewerID, userID); err != nil {
		return false, fmt.Errorf("follow user: %w", err)
	}

	return true, nil
}
