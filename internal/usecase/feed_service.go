package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/openpitch/pitchside/internal/domain/league"
	"github.com/openpitch/pitchside/internal/domain/post"
	"github.com/openpitch/pitchside/internal/domain/team"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 50
)

// FeedService answers every feed read. All selector variants funnel into
// one pagination path so cursor semantics never depend on the filter.
type FeedService struct {
	postRepo   post.Repository
	teamRepo   team.Repository
	leagueRepo league.Repository
}

func NewFeedService(postRepo post.Repository, teamRepo team.Repository, leagueRepo league.Repository) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		teamRepo:   teamRepo,
		leagueRepo: leagueRepo,
	}
}

// GetFeed returns the global feed, or the follow-graph feed when
// onlyFollowing is set. The follow-graph variant requires a viewer.
func (s *FeedService) GetFeed(ctx context.Context, viewerID string, onlyFollowing bool, limit int, cursor *post.Cursor) (post.Page, error) {
	viewerID = strings.TrimSpace(viewerID)

	var sel post.Selector = post.All{}
	if onlyFollowing {
		if viewerID == "" {
			return post.Page{}, fmt.Errorf("%w: following feed requires an authenticated viewer", ErrUnauthorized)
		}
		sel = post.ByFollowed{ViewerID: viewerID}
	}

	return s.paginate(ctx, sel, viewerID, limit, cursor)
}

func (s *FeedService) GetAuthorFeed(ctx context.Context, viewerID, authorID string, limit int, cursor *post.Cursor) (post.Page, error) {
	authorID = strings.TrimSpace(authorID)
	if authorID == "" {
		return post.Page{}, fmt.Errorf("%w: author id is required", ErrInvalidInput)
	}

	return s.paginate(ctx, post.ByAuthor{UserID: authorID}, strings.TrimSpace(viewerID), limit, cursor)
}

func (s *FeedService) GetTeamFeed(ctx context.Context, viewerID, teamID string, limit int, cursor *post.Cursor) (post.Page, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return post.Page{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return post.Page{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return post.Page{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return s.paginate(ctx, post.ByTeam{TeamID: teamID}, strings.TrimSpace(viewerID), limit, cursor)
}

func (s *FeedService) GetLeagueFeed(ctx context.Context, viewerID, leagueID string, limit int, cursor *post.Cursor) (post.Page, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return post.Page{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return post.Page{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return post.Page{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return s.paginate(ctx, post.ByLeague{LeagueID: leagueID}, strings.TrimSpace(viewerID), limit, cursor)
}

// GetMyTeamsFeed unions the team selectors of every team the viewer
// manages or plays for. A viewer with no teams gets an empty page.
func (s *FeedService) GetMyTeamsFeed(ctx context.Context, viewerID string, limit int, cursor *post.Cursor) (post.Page, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.GetMyTeamsFeed")
	defer span.End()

	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" {
		return post.Page{}, fmt.Errorf("%w: my-teams feed requires an authenticated viewer", ErrUnauthorized)
	}

	teams, err := s.resolveViewerTeams(ctx, viewerID)
	if err != nil {
		return post.Page{}, err
	}
	if len(teams) == 0 {
		return post.Page{Items: []post.FeedItem{}}, nil
	}

	members := make([]post.Selector, 0, len(teams))
	for _, item := range teams {
		members = append(members, post.ByTeam{TeamID: item.ID})
	}

	return s.paginate(ctx, post.Union{Selectors: members}, viewerID, limit, cursor)
}

// GetMyLeaguesFeed unions the league selectors of every league the
// viewer manages or has a team in.
func (s *FeedService) GetMyLeaguesFeed(ctx context.Context, viewerID string, limit int, cursor *post.Cursor) (post.Page, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedService.GetMyLeaguesFeed")
	defer span.End()

	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" {
		return post.Page{}, fmt.Errorf("%w: my-leagues feed requires an authenticated viewer", ErrUnauthorized)
	}

	leagues, err := s.resolveViewerLeagues(ctx, viewerID)
	if err != nil {
		return post.Page{}, err
	}
	if len(leagues) == 0 {
		return post.Page{Items: []post.FeedItem{}}, nil
	}

	members := make([]post.Selector, 0, len(leagues))
	for _, item := range leagues {
		members = append(members, post.ByLeague{LeagueID: item.ID})
	}

	return s.paginate(ctx, post.Union{Selectors: members}, viewerID, limit, cursor)
}

func (s *FeedService) resolveViewerTeams(ctx context.Context, viewerID string) ([]team.Team, error) {
	managed, err := s.teamRepo.ListByManager(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list managed teams: %w", err)
	}
	playing, err := s.teamRepo.ListByPlayer(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list player teams: %w", err)
	}

	seen := make(map[string]struct{}, len(managed)+len(playing))
	merged := make([]team.Team, 0, len(managed)+len(playing))
	for _, item := range append(managed, playing...) {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		merged = append(merged, item)
	}

	return merged, nil
}

func (s *FeedService) resolveViewerLeagues(ctx context.Context, viewerID string) ([]league.League, error) {
	managed, err := s.leagueRepo.ListByManager(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list managed leagues: %w", err)
	}

	teams, err := s.resolveViewerTeams(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	teamIDs := make([]string, 0, len(teams))
	for _, item := range teams {
		teamIDs = append(teamIDs, item.ID)
	}

	var joined []league.League
	if len(teamIDs) > 0 {
		joined, err = s.leagueRepo.ListByTeamIDs(ctx, teamIDs)
		if err != nil {
			return nil, fmt.Errorf("list leagues by teams: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(managed)+len(joined))
	merged := make([]league.League, 0, len(managed)+len(joined))
	for _, item := range append(managed, joined...) {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		merged = append(merged, item)
	}

	return merged, nil
}

// paginate fetches one extra row past the limit; when it is present the
// extra row becomes the inclusive cursor of the next page.
func (s *FeedService) paginate(ctx context.Context, sel post.Selector, viewerID string, limit int, cursor *post.Cursor) (post.Page, error) {
	limit = normalizeFeedLimit(limit)

	items, err := s.postRepo.ListFeed(ctx, sel, viewerID, limit, cursor)
	if err != nil {
		return post.Page{}, fmt.Errorf("list feed: %w", err)
	}

	page := post.Page{Items: items}
	if len(items) > limit {
		next := items[limit].Post
		page.Items = items[:limit]
		page.NextCursor = &post.Cursor{CreatedAt: next.CreatedAt, ID: next.ID}
	}
	if page.Items == nil {
		page.Items = []post.FeedItem{}
	}

	return page, nil
}

func normalizeFeedLimit(limit int) int {
	if limit <= 0 {
		return defaultFeedLimit
	}
	if limit > maxFeedLimit {
		return maxFeedLimit
	}
	return limit
}
