package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openpitch/pitchside/internal/domain/team"
	"github.com/openpitch/pitchside/internal/domain/user"
	idgen "github.com/openpitch/pitchside/internal/platform/id"
)

type CreateTeamInput struct {
	ViewerID    string
	Name        string
	Image       string
	Description string
}

type UpdateTeamInput struct {
	ViewerID    string
	TeamID      string
	Name        string
	Image       string
	Description string
	ManagerID   string
}

// TeamDetails is a team with its roster resolved.
type TeamDetails struct {
	Team        team.Team
	Players     []user.Summary
	PlayerCount int
}

type TeamService struct {
	teamRepo team.Repository
	userRepo user.Repository
	idGen    idgen.Generator
	now      func() time.Time
}

func NewTeamService(teamRepo team.Repository, userRepo user.Repository, idGen idgen.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	input.ViewerID = strings.TrimSpace(input.ViewerID)
	input.Name = strings.TrimSpace(input.Name)
	if input.ViewerID == "" {
		return team.Team{}, fmt.Errorf("%w: creating a team requires an authenticated viewer", ErrUnauthorized)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:          teamID,
		Name:        input.Name,
		Image:       strings.TrimSpace(input.Image),
		Description: strings.TrimSpace(input.Description),
		ManagerID:   input.ViewerID,
		CreatedAt:   s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return item, nil
}

func (s *TeamService) GetDetails(ctx context.Context, teamID string) (TeamDetails, error) {
	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return TeamDetails{}, err
	}

	players, err := s.teamRepo.ListPlayers(ctx, item.ID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("list team players: %w", err)
	}

	return TeamDetails{
		Team:        item,
		Players:     players,
		PlayerCount: len(players),
	}, nil
}

func (s *TeamService) Update(ctx context.Context, input UpdateTeamInput) (team.Team, error) {
	item, err := s.requireManagedTeam(ctx, input.ViewerID, input.TeamID)
	if err != nil {
		return team.Team{}, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if image := strings.TrimSpace(input.Image); image != "" {
		item.Image = image
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		item.Description = desc
	}
	if managerID := strings.TrimSpace(input.ManagerID); managerID != "" {
		_, exists, err := s.userRepo.GetByID(ctx, managerID)
		if err != nil {
			return team.Team{}, fmt.Errorf("get new manager: %w", err)
		}
		if !exists {
			return team.Team{}, fmt.Errorf("%w: user=%s", ErrNotFound, managerID)
		}
		item.ManagerID = managerID
	}

	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return item, nil
}

func (s *TeamService) Delete(ctx context.Context, viewerID, teamID string) error {
	item, err := s.requireManagedTeam(ctx, viewerID, teamID)
	if err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

// AddPlayer idempotently puts the player on the roster. Only the team
// manager may call it.
func (s *TeamService) AddPlayer(ctx context.Context, viewerID, teamID, playerID string) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, err := s.requireManagedTeam(ctx, viewerID, teamID)
	if err != nil {
		return err
	}

	_, exists, err := s.userRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: user=%s", ErrNotFound, playerID)
	}

	if err := s.teamRepo.AddPlayer(ctx, item.ID, playerID); err != nil {
		return fmt.Errorf("add player to team: %w", err)
	}

	return nil
}

// RemovePlayer idempotently takes the player off the roster. The team
// manager or the player themselves may call it.
func (s *TeamService) RemovePlayer(ctx context.Context, viewerID, teamID, playerID string) error {
	viewerID = strings.TrimSpace(viewerID)
	playerID = strings.TrimSpace(playerID)
	if viewerID == "" {
		return fmt.Errorf("%w: authentication required", ErrUnauthorized)
	}
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if viewerID != item.ManagerID && viewerID != playerID {
		return fmt.Errorf("%w: only the manager or the player may remove a roster entry", ErrForbidden)
	}

	if err := s.teamRepo.RemovePlayer(ctx, item.ID, playerID); err != nil {
		return fmt.Errorf("remove player from team: %w", err)
	}

	return nil
}

func (s *TeamService) ListByPlayer(ctx context.Context, userID string) ([]team.Team, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByPlayer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams by player: %w", err)
	}

	return teams, nil
}

func (s *TeamService) ListByManager(ctx context.Context, userID string) ([]team.Team, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByManager(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list teams by manager: %w", err)
	}

	return teams, nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) requireManagedTeam(ctx context.Context, viewerID, teamID string) (team.Team, error) {
	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" {
		return team.Team{}, fmt.Errorf("%w: authentication required", ErrUnauthorized)
	}

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if item.ManagerID != viewerID {
		return team.Team{}, fmt.Errorf("%w: only the team manager may do this", ErrForbidden)
	}

	return item, nil
}
