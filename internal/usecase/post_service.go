package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openpitch/pitchside/internal/domain/game"
	"github.com/openpitch/pitchside/internal/domain/post"
	"github.com/openpitch/pitchside/internal/domain/team"
	idgen "github.com/openpitch/pitchside/internal/platform/id"
)

type CreatePostInput struct {
	ViewerID string
	Content  string
}

type CreateGameRecapInput struct {
	ViewerID   string
	Content    string
	HomeTeamID string
	AwayTeamID string
	HomeScore  int
	AwayScore  int
}

type PostService struct {
	postRepo post.Repository
	teamRepo team.Repository
	gameRepo game.Repository
	idGen    idgen.Generator
	now      func() time.Time
}

func NewPostService(
	postRepo post.Repository,
	teamRepo team.Repository,
	gameRepo game.Repository,
	idGen idgen.Generator,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *PostService) Create(ctx context.Context, input CreatePostInput) (post.Post, error) {
	input.ViewerID = strings.TrimSpace(input.ViewerID)
	input.Content = strings.TrimSpace(input.Content)
	if input.ViewerID == "" {
		return post.Post{}, fmt.Errorf("%w: creating a post requires an authenticated viewer", ErrUnauthorized)
	}
	if input.Content == "" {
		return post.Post{}, fmt.Errorf("%w: post content is required", ErrInvalidInput)
	}

	postID, err := s.idGen.NewID()
	if err != nil {
		return post.Post{}, fmt.Errorf("generate post id: %w", err)
	}

	item := post.Post{
		ID:        postID,
		Content:   input.Content,
		Type:      post.TypeSocial,
		UserID:    input.ViewerID,
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return post.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.postRepo.Create(ctx, item); err != nil {
		return post.Post{}, fmt.Errorf("create post: %w", err)
	}

	return item, nil
}

// CreateGameRecap records the result as a Game row and publishes the
// recap post carrying the denormalized score fields. The league is
// resolved from the home team's current affiliation; a team without one
// yields a friendly game.
func (s *PostService) CreateGameRecap(ctx context.Context, input CreateGameRecapInput) (post.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PostService.CreateGameRecap")
	defer span.End()

	input.ViewerID = strings.TrimSpace(input.ViewerID)
	input.Content = strings.TrimSpace(input.Content)
	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)
	if input.ViewerID == "" {
		return post.Post{}, fmt.Errorf("%w: creating a recap requires an authenticated viewer", ErrUnauthorized)
	}
	if input.HomeTeamID == "" || input.AwayTeamID == "" {
		return post.Post{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if input.HomeTeamID == input.AwayTeamID {
		return post.Post{}, fmt.Errorf("%w: home and away teams must differ", ErrInvalidInput)
	}
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return post.Post{}, fmt.Errorf("%w: scores must not be negative", ErrInvalidInput)
	}

	home, exists, err := s.teamRepo.GetByID(ctx, input.HomeTeamID)
	if err != nil {
		return post.Post{}, fmt.Errorf("get home team: %w", err)
	}
	if !exists {
		return post.Post{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.HomeTeamID)
	}
	_, exists, err = s.teamRepo.GetByID(ctx, input.AwayTeamID)
	if err != nil {
		return post.Post{}, fmt.Errorf("get away team: %w", err)
	}
	if !exists {
		return post.Post{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.AwayTeamID)
	}

	now := s.now().UTC()
	homeScore := input.HomeScore
	awayScore := input.AwayScore

	gameID, err := s.idGen.NewID()
	if err != nil {
		return post.Post{}, fmt.Errorf("generate game id: %w", err)
	}
	match := game.Game{
		ID:         gameID,
		Date:       now,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		HomeScore:  &homeScore,
		AwayScore:  &awayScore,
		LeagueID:   home.LeagueID,
		Friendly:   home.LeagueID == nil,
		CreatedAt:  now,
	}
	if err := s.gameRepo.Create(ctx, match); err != nil {
		return post.Post{}, fmt.Errorf("create game: %w", err)
	}

	postID, err := s.idGen.NewID()
	if err != nil {
		return post.Post{}, fmt.Errorf("generate post id: %w", err)
	}
	item := post.Post{
		ID:         postID,
		Content:    input.Content,
		Type:       post.TypeGameRecap,
		UserID:     input.ViewerID,
		HomeTeamID: &match.HomeTeamID,
		AwayTeamID: &match.AwayTeamID,
		HomeScore:  &homeScore,
		AwayScore:  &awayScore,
		LeagueID:   home.LeagueID,
		CreatedAt:  now,
	}
	if err := item.Validate(); err != nil {
		return post.Post{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.postRepo.Create(ctx, item); err != nil {
		return post.Post{}, fmt.Errorf("create recap post: %w", err)
	}

	return item, nil
}

// ToggleLike flips the viewer's like on a post and reports whether the
// call added one.
func (s *PostService) ToggleLike(ctx context.Context, viewerID, postID string) (bool, error) {
	viewerID = strings.TrimSpace(viewerID)
	postID = strings.TrimSpace(postID)
	if viewerID == "" {
		return false, fmt.Errorf("%w: liking requires an authenticated viewer", ErrUnauthorized)
	}
	if postID == "" {
		return false, fmt.Errorf("%w: post id is required", ErrInvalidInput)
	}

	_, exists, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return false, fmt.Errorf("get post: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("%w: post=%s", ErrNotFound, postID)
	}

	liked, err := s.postRepo.HasLike(ctx, postID, viewerID)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	if liked {
		if err := s.postRepo.RemoveLike(ctx, postID, viewerID); err != nil {
			return false, fmt.Errorf("remove like: %w", err)
		}
		return false, nil
	}

	if err := s.postRepo.AddLike(ctx, postID, viewerID); err != nil {
		return false, fmt.Errorf("add like: %w", err)
	}

	return true, nil
}
