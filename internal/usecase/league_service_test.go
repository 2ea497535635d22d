package usecase

import (
	"errors"
	"testing"

	"github.com/openpitch/pitchside/internal/infrastructure/repository/memory"
)

type leagueFixture struct {
	users   *memory.UserRepository
	teams   *memory.TeamRepository
	leagues *memory.LeagueRepository
	service *LeagueService
}

func newLeagueFixture() leagueFixture {
	users := memory.NewUserRepository(memory.SeedUsers())
	teams := memory.NewTeamRepository(users, memory.SeedTeams())
	leagues := memory.NewLeagueRepository(memory.SeedLeagues())

	return leagueFixture{
		users:   users,
		teams:   teams,
		leagues: leagues,
		service: NewLeagueService(leagues, teams, &sequenceIDGenerator{prefix: "league"}),
	}
}

func TestLeagueService_AddTeams_SetsCurrentLeague(t *testing.T) {
	fx := newLeagueFixture()

	details, err := fx.service.AddTeams(t.Context(), memory.UserIDAlex, memory.LeagueIDSunday, []string{memory.TeamIDWanderers})
	if err != nil {
		t.Fatalf("add teams: %v", err)
	}

	found := false
	for _, item := range details.Teams {
		if item.ID == memory.TeamIDWanderers {
			found = true
		}
	}
	if !found {
		t.Fatalf("wanderers not in league details: %+v", details.Teams)
	}

	updated, exists, err := fx.teams.GetByID(t.Context(), memory.TeamIDWanderers)
	if err != nil || !exists {
		t.Fatalf("team lookup failed: exists=%v err=%v", exists, err)
	}
	if updated.LeagueID == nil || *updated.LeagueID != memory.LeagueIDSunday {
		t.Fatalf("current league not set: %+v", updated.LeagueID)
	}

	// Re-adding is a no-op, not an error.
	if _, err := fx.service.AddTeams(t.Context(), memory.UserIDAlex, memory.LeagueIDSunday, []string{memory.TeamIDWanderers}); err != nil {
		t.Fatalf("repeated add: %v", err)
	}
}

func TestLeagueService_RemoveTeams_ClearsCurrentLeague(t *testing.T) {
	fx := newLeagueFixture()

	if _, err := fx.service.AddTeams(t.Context(), memory.UserIDAlex, memory.LeagueIDSunday, []string{memory.TeamIDWanderers}); err != nil {
		t.Fatalf("add teams: %v", err)
	}
	if _, err := fx.service.RemoveTeams(t.Context(), memory.UserIDAlex, memory.LeagueIDSunday, []string{memory.TeamIDWanderers}); err != nil {
		t.Fatalf("remove teams: %v", err)
	}

	updated, _, err := fx.teams.GetByID(t.Context(), memory.TeamIDWanderers)
	if err != nil {
		t.Fatalf("team lookup: %v", err)
	}
	if updated.LeagueID != nil {
		t.Fatalf("current league not cleared: %s", *updated.LeagueID)
	}

	// Removing again is still a no-op.
	if _, err := fx.service.RemoveTeams(t.Context(), memory.UserIDAlex, memory.LeagueIDSunday, []string{memory.TeamIDWanderers}); err != nil {
		t.Fatalf("repeated remove: %v", err)
	}
}

func TestLeagueService_MembershipMutations_ManagerOnly(t *testing.T) {
	fx := newLeagueFixture()

	if _, err := fx.service.AddTeams(t.Context(), memory.UserIDBillie, memory.LeagueIDSunday, []string{memory.TeamIDWanderers}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := fx.service.AddTeams(t.Context(), memory.UserIDAlex, memory.LeagueIDSunday, []string{"missing-team"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}
}

func TestLeagueService_ListForUser(t *testing.T) {
	fx := newLeagueFixture()

	// Billie manages the Wanderers; enrolling them links billie to the league.
	if _, err := fx.service.AddTeams(t.Context(), memory.UserIDAlex, memory.LeagueIDSunday, []string{memory.TeamIDWanderers}); err != nil {
		t.Fatalf("add teams: %v", err)
	}

	leagues, err := fx.service.ListForUser(t.Context(), memory.UserIDBillie)
	if err != nil {
		t.Fatalf("list for user: %v", err)
	}
	if len(leagues) != 1 || leagues[0].ID != memory.LeagueIDSunday {
		t.Fatalf("expected sunday league, got %+v", leagues)
	}

	// Casey has no teams at all.
	leagues, err = fx.service.ListForUser(t.Context(), memory.UserIDCasey)
	if err != nil {
		t.Fatalf("list for user without teams: %v", err)
	}
	if len(leagues) != 0 {
		t.Fatalf("expected no leagues, got %+v", leagues)
	}
}

func TestLeagueService_ListAvailableTeams(t *testing.T) {
	fx := newLeagueFixture()

	available, err := fx.service.ListAvailableTeams(t.Context(), memory.LeagueIDSunday)
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	// Seed data has the Rovers already affiliated, the Wanderers not.
	if len(available) != 1 || available[0].ID != memory.TeamIDWanderers {
		t.Fatalf("expected only the wanderers, got %+v", available)
	}
}
