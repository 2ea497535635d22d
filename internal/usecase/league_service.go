package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openpitch/pitchside/internal/domain/league"
	"github.com/openpitch/pitchside/internal/domain/team"
	idgen "github.com/openpitch/pitchside/internal/platform/id"
)

type CreateLeagueInput struct {
	ViewerID    string
	Name        string
	Description string
}

type UpdateLeagueInput struct {
	ViewerID    string
	LeagueID    string
	Name        string
	Description string
	ManagerID   string
}

// LeagueDetails is a league with its member teams resolved.
type LeagueDetails struct {
	League    league.League
	Teams     []team.Team
	TeamCount int
}

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewLeagueService(leagueRepo league.Repository, teamRepo team.Repository, idGen idgen.Generator) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *LeagueService) Create(ctx context.Context, input CreateLeagueInput) (league.League, error) {
	input.ViewerID = strings.TrimSpace(input.ViewerID)
	input.Name = strings.TrimSpace(input.Name)
	if input.ViewerID == "" {
		return league.League{}, fmt.Errorf("%w: creating a league requires an authenticated viewer", ErrUnauthorized)
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}

	managerID := input.ViewerID
	item := league.League{
		ID:          leagueID,
		Name:        input.Name,
		Description: strings.TrimSpace(input.Description),
		ManagerID:   &managerID,
		CreatedAt:   s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.leagueRepo.Create(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	return item, nil
}

func (s *LeagueService) List(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetDetails(ctx context.Context, leagueID string) (LeagueDetails, error) {
	item, err := s.getLeague(ctx, leagueID)
	if err != nil {
		return LeagueDetails{}, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return LeagueDetails{}, fmt.Errorf("list league teams: %w", err)
	}

	return LeagueDetails{
		League:    item,
		Teams:     teams,
		TeamCount: len(teams),
	}, nil
}

func (s *LeagueService) Update(ctx context.Context, input UpdateLeagueInput) (league.League, error) {
	item, err := s.requireManagedLeague(ctx, input.ViewerID, input.LeagueID)
	if err != nil {
		return league.League{}, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		item.Description = desc
	}
	if managerID := strings.TrimSpace(input.ManagerID); managerID != "" {
		item.ManagerID = &managerID
	}

	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.leagueRepo.Update(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("update league: %w", err)
	}

	return item, nil
}

func (s *LeagueService) Delete(ctx context.Context, viewerID, leagueID string) error {
	item, err := s.requireManagedLeague(ctx, viewerID, leagueID)
	if err != nil {
		return err
	}

	if err := s.leagueRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete league: %w", err)
	}

	return nil
}

// AddTeams enrolls the teams into the league and records it as each
// team's current league. Adding an already-member team is a no-op.
func (s *LeagueService) AddTeams(ctx context.Context, viewerID, leagueID string, teamIDs []string) (LeagueDetails, error) {
	item, err := s.requireManagedLeague(ctx, viewerID, leagueID)
	if err != nil {
		return LeagueDetails{}, err
	}

	teamIDs, err = s.validateTeamIDs(ctx, teamIDs)
	if err != nil {
		return LeagueDetails{}, err
	}

	if err := s.leagueRepo.AddTeams(ctx, item.ID, teamIDs); err != nil {
		return LeagueDetails{}, fmt.Errorf("add teams to league: %w", err)
	}
	for _, teamID := range teamIDs {
		if err := s.teamRepo.SetLeague(ctx, teamID, &item.ID); err != nil {
			return LeagueDetails{}, fmt.Errorf("set team league: %w", err)
		}
	}

	return s.GetDetails(ctx, item.ID)
}

// RemoveTeams withdraws the teams and clears their current league.
func (s *LeagueService) RemoveTeams(ctx context.Context, viewerID, leagueID string, teamIDs []string) (LeagueDetails, error) {
	item, err := s.requireManagedLeague(ctx, viewerID, leagueID)
	if err != nil {
		return LeagueDetails{}, err
	}

	teamIDs, err = s.validateTeamIDs(ctx, teamIDs)
	if err != nil {
		return LeagueDetails{}, err
	}

	if err := s.leagueRepo.RemoveTeams(ctx, item.ID, teamIDs); err != nil {
		return LeagueDetails{}, fmt.Errorf("remove teams from league: %w", err)
	}
	for _, teamID := range teamIDs {
		if err := s.teamRepo.SetLeague(ctx, teamID, nil); err != nil {
			return LeagueDetails{}, fmt.Errorf("clear team league: %w", err)
		}
	}

	return s.GetDetails(ctx, item.ID)
}

func (s *LeagueService) ListByManager(ctx context.Context, userID string) ([]league.League, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.ListByManager(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list leagues by manager: %w", err)
	}

	return leagues, nil
}

// ListForUser returns every league the user manages or has a team in,
// via teams they manage or play for.
func (s *LeagueService) ListForUser(ctx context.Context, userID string) ([]league.League, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	managed, err := s.leagueRepo.ListByManager(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list leagues by manager: %w", err)
	}

	managedTeams, err := s.teamRepo.ListByManager(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list managed teams: %w", err)
	}
	playerTeams, err := s.teamRepo.ListByPlayer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list player teams: %w", err)
	}

	teamIDs := make([]string, 0, len(managedTeams)+len(playerTeams))
	seenTeams := make(map[string]struct{}, cap(teamIDs))
	for _, item := range append(managedTeams, playerTeams...) {
		if _, ok := seenTeams[item.ID]; ok {
			continue
		}
		seenTeams[item.ID] = struct{}{}
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

// ListAvailableTeams returns teams without a current league, the
// candidates a manager may still enroll.
func (s *LeagueService) ListAvailableTeams(ctx context.Context, leagueID string) ([]team.Team, error) {
	if _, err := s.getLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	available := make([]team.Team, 0, len(teams))
	for _, item := range teams {
		if item.LeagueID == nil {
			available = append(available, item)
		}
	}

	return available, nil
}

func (s *LeagueService) validateTeamIDs(ctx context.Context, teamIDs []string) ([]string, error) {
	cleaned := make([]string, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		teamID = strings.TrimSpace(teamID)
		if teamID == "" {
			continue
		}
		cleaned = append(cleaned, teamID)
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: at least one team id is required", ErrInvalidInput)
	}

	for _, teamID := range cleaned {
		_, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
	}

	return cleaned, nil
}

func (s *LeagueService) getLeague(ctx context.Context, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

func (s *LeagueService) requireManagedLeague(ctx context.Context, viewerID, leagueID string) (league.League, error) {
	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" {
		return league.League{}, fmt.Errorf("%w: authentication required", ErrUnauthorized)
	}

	item, err := s.getLeague(ctx, leagueID)
	if err != nil {
		return league.League{}, err
	}
	if item.ManagerID == nil || *item.ManagerID != viewerID {
		return league.League{}, fmt.Errorf("%w: only the league manager may do this", ErrForbidden)
	}

	return item, nil
}
