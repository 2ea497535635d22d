package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/openpitch/pitchside/internal/infrastructure/repository/memory"
)

func newGameService() (*GameService, *memory.GameRepository) {
	users := memory.NewUserRepository(memory.SeedUsers())
	teams := memory.NewTeamRepository(users, memory.SeedTeams())
	leagues := memory.NewLeagueRepository(memory.SeedLeagues())
	games := memory.NewGameRepository(nil)

	return NewGameService(games, teams, leagues, &sequenceIDGenerator{prefix: "game"}), games
}

func TestGameService_Create_FriendlyWithoutLeague(t *testing.T) {
	service, _ := newGameService()

	created, err := service.Create(t.Context(), CreateGameInput{
		ViewerID:   memory.UserIDAlex,
		Date:       time.Date(2025, time.May, 3, 14, 0, 0, 0, time.UTC),
		HomeTeamID: memory.TeamIDRovers,
		AwayTeamID: memory.TeamIDWanderers,
	})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	if !created.Friendly {
		t.Fatalf("game without league should be friendly")
	}
	if created.HomeScore != nil || created.AwayScore != nil {
		t.Fatalf("scheduled game should have nil scores: %+v", created)
	}
}

func TestGameService_Create_Checks(t *testing.T) {
	service, _ := newGameService()
	date := time.Date(2025, time.May, 3, 14, 0, 0, 0, time.UTC)

	if _, err := service.Create(t.Context(), CreateGameInput{
		ViewerID:   memory.UserIDAlex,
		Date:       date,
		HomeTeamID: memory.TeamIDRovers,
		AwayTeamID: memory.TeamIDRovers,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("same team twice: got %v, want ErrInvalidInput", err)
	}

	if _, err := service.Create(t.Context(), CreateGameInput{
		ViewerID:   memory.UserIDAlex,
		Date:       date,
		HomeTeamID: memory.TeamIDRovers,
		AwayTeamID: "missing-team",
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown team: got %v, want ErrNotFound", err)
	}

	if _, err := service.Create(t.Context(), CreateGameInput{
		ViewerID:   memory.UserIDAlex,
		Date:       date,
		HomeTeamID: memory.TeamIDRovers,
		AwayTeamID: memory.TeamIDWanderers,
		LeagueID:   "missing-league",
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown league: got %v, want ErrNotFound", err)
	}
}

func TestGameService_ListByLeague(t *testing.T) {
	service, games := newGameService()
	date := time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC)

	inLeague, err := service.Create(t.Context(), CreateGameInput{
		ViewerID:   memory.UserIDAlex,
		Date:       date,
		HomeTeamID: memory.TeamIDRovers,
		AwayTeamID: memory.TeamIDWanderers,
		LeagueID:   memory.LeagueIDSunday,
	})
	if err != nil {
		t.Fatalf("create league game: %v", err)
	}
	if _, err := service.Create(t.Context(), CreateGameInput{
		ViewerID:   memory.UserIDAlex,
		Date:       date.Add(time.Hour),
		HomeTeamID: memory.TeamIDWanderers,
		AwayTeamID: memory.TeamIDRovers,
	}); err != nil {
		t.Fatalf("create friendly: %v", err)
	}

	listed, err := service.ListByLeague(t.Context(), memory.LeagueIDSunday)
	if err != nil {
		t.Fatalf("list by league: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != inLeague.ID {
		t.Fatalf("expected only the league game, got %+v", listed)
	}

	stored, exists, err := games.GetByID(t.Context(), inLeague.ID)
	if err != nil || !exists {
		t.Fatalf("game lookup failed: exists=%v err=%v", exists, err)
	}
	if stored.Friendly {
		t.Fatalf("league game stored as friendly")
	}
}
