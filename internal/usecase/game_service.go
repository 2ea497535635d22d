package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openpitch/pitchside/internal/domain/game"
	"github.com/openpitch/pitchside/internal/domain/league"
	"github.com/openpitch/pitchside/internal/domain/team"
	idgen "github.com/openpitch/pitchside/internal/platform/id"
)

type CreateGameInput struct {
	ViewerID   string
	Date       time.Time
	HomeTeamID string
	AwayTeamID string
	HomeScore  *int
	AwayScore  *int
	LeagueID   string
	Friendly   bool
}

type GameService struct {
	gameRepo   game.Repository
	teamRepo   team.Repository
	leagueRepo league.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewGameService(
	gameRepo game.Repository,
	teamRepo team.Repository,
	leagueRepo league.Repository,
	idGen idgen.Generator,
) *GameService {
	return &GameService{
		gameRepo:   gameRepo,
		teamRepo:   teamRepo,
		leagueRepo: leagueRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *GameService) Create(ctx context.Context, input CreateGameInput) (game.Game, error) {
	input.ViewerID = strings.TrimSpace(input.ViewerID)
	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	if input.ViewerID == "" {
		return game.Game{}, fmt.Errorf("%w: creating a game requires an authenticated viewer", ErrUnauthorized)
	}

	for _, teamID := range []string{input.HomeTeamID, input.AwayTeamID} {
		if teamID == "" {
			continue
		}
		_, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return game.Game{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return game.Game{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
	}

	var leagueID *string
	if input.LeagueID != "" {
		item, exists, err := s.leagueRepo.GetByID(ctx, input.LeagueID)
		if err != nil {
			return game.Game{}, fmt.Errorf("get league: %w", err)
		}
		if !exists {
			return game.Game{}, fmt.Errorf("%w: league=%s", ErrNotFound, input.LeagueID)
		}
		leagueID = &item.ID
	}

	gameID, err := s.idGen.NewID()
	if err != nil {
		return game.Game{}, fmt.Errorf("generate game id: %w", err)
	}

	item := game.Game{
		ID:         gameID,
		Date:       input.Date.UTC(),
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		HomeScore:  input.HomeScore,
		AwayScore:  input.AwayScore,
		LeagueID:   leagueID,
		Friendly:   input.Friendly || leagueID == nil,
		CreatedAt:  s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.gameRepo.Create(ctx, item); err != nil {
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}

	return item, nil
}

func (s *GameService) GetByID(ctx context.Context, gameID string) (game.Game, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	return item, nil
}

func (s *GameService) ListByLeague(ctx context.Context, leagueID string) ([]game.Game, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	games, err := s.gameRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list games by league: %w", err)
	}

	return games, nil
}
