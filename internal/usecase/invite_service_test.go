package usecase

import (
	"errors"
	"testing"

	"github.com/openpitch/pitchside/internal/domain/invite"
	"github.com/openpitch/pitchside/internal/infrastructure/repository/memory"
)

type inviteFixture struct {
	users   *memory.UserRepository
	teams   *memory.TeamRepository
	invites *memory.InviteRepository
	service *InviteService
}

func newInviteFixture() inviteFixture {
	users := memory.NewUserRepository(memory.SeedUsers())
	teams := memory.NewTeamRepository(users, memory.SeedTeams())
	invites := memory.NewInviteRepository()

	return inviteFixture{
		users:   users,
		teams:   teams,
		invites: invites,
		service: NewInviteService(invites, teams, users, &sequenceIDGenerator{prefix: "inv"}),
	}
}

func TestInviteService_Create_OnePendingInvitePerPlayer(t *testing.T) {
	fx := newInviteFixture()

	created, err := fx.service.Create(t.Context(), memory.UserIDAlex, memory.TeamIDRovers, []string{memory.UserIDBillie, memory.UserIDCasey})
	if err != nil {
		t.Fatalf("create invites: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 invites, got %d", len(created))
	}

	byPlayer := map[string]invite.Invite{}
	for _, inv := range created {
		if inv.Status != invite.StatusPending {
			t.Fatalf("invite %s not pending: %s", inv.ID, inv.Status)
		}
		if inv.TeamID != memory.TeamIDRovers {
			t.Fatalf("invite %s wrong team: %s", inv.ID, inv.TeamID)
		}
		byPlayer[inv.PlayerID] = inv
	}
	if _, ok := byPlayer[memory.UserIDBillie]; !ok {
		t.Fatalf("no invite for billie: %+v", created)
	}
	if _, ok := byPlayer[memory.UserIDCasey]; !ok {
		t.Fatalf("no invite for casey: %+v", created)
	}
}

func TestInviteService_Create_ManagerOnly(t *testing.T) {
	fx := newInviteFixture()

	if _, err := fx.service.Create(t.Context(), memory.UserIDCasey, memory.TeamIDRovers, []string{memory.UserIDBillie}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestInviteService_Respond_TerminalStateImmutable(t *testing.T) {
	fx := newInviteFixture()

	created, err := fx.service.Create(t.Context(), memory.UserIDAlex, memory.TeamIDRovers, []string{memory.UserIDBillie})
	if err != nil {
		t.Fatalf("create invite: %v", err)
	}
	inviteID := created[0].ID

	accepted, err := fx.service.Respond(t.Context(), memory.UserIDBillie, inviteID, invite.StatusAccepted)
	if err != nil {
		t.Fatalf("accept invite: %v", err)
	}
	if accepted.Status != invite.StatusAccepted {
		t.Fatalf("expected ACCEPTED, got %s", accepted.Status)
	}

	// Any further transition attempt must fail, whatever the target.
	if _, err := fx.service.Respond(t.Context(), memory.UserIDBillie, inviteID, invite.StatusDeclined); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if _, err := fx.service.Respond(t.Context(), memory.UserIDBillie, inviteID, invite.StatusAccepted); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on repeated accept, got %v", err)
	}

	stored, exists, err := fx.invites.GetByID(t.Context(), inviteID)
	if err != nil || !exists {
		t.Fatalf("invite lookup failed: exists=%v err=%v", exists, err)
	}
	if stored.Status != invite.StatusAccepted {
		t.Fatalf("terminal state mutated to %s", stored.Status)
	}
}

func TestInviteService_Respond_InvitedPlayerOnly(t *testing.T) {
	fx := newInviteFixture()

	created, err := fx.service.Create(t.Context(), memory.UserIDAlex, memory.TeamIDRovers, []string{memory.UserIDBillie})
	if err != nil {
		t.Fatalf("create invite: %v", err)
	}

	if _, err := fx.service.Respond(t.Context(), memory.UserIDCasey, created[0].ID, invite.StatusAccepted); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestInviteService_Respond_UnknownInvite(t *testing.T) {
	fx := newInviteFixture()

	if _, err := fx.service.Respond(t.Context(), memory.UserIDBillie, "missing", invite.StatusAccepted); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInviteService_DeclineLeavesMembershipIndependent(t *testing.T) {
	fx := newInviteFixture()
	teamService := NewTeamService(fx.teams, fx.users, staticIDGenerator{id: "team-x"})

	created, err := fx.service.Create(t.Context(), memory.UserIDAlex, memory.TeamIDRovers, []string{memory.UserIDCasey})
	if err != nil {
		t.Fatalf("create invite: %v", err)
	}
	inviteID := created[0].ID

	if _, err := fx.service.Respond(t.Context(), memory.UserIDCasey, inviteID, invite.StatusDeclined); err != nil {
		t.Fatalf("decline invite: %v", err)
	}

	// The declined invite does not block a direct roster add.
	if err := teamService.AddPlayer(t.Context(), memory.UserIDAlex, memory.TeamIDRovers, memory.UserIDCasey); err != nil {
		t.Fatalf("add player after decline: %v", err)
	}
	players, err := fx.teams.ListPlayers(t.Context(), memory.TeamIDRovers)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 1 || players[0].ID != memory.UserIDCasey {
		t.Fatalf("expected casey on roster, got %+v", players)
	}

	// But the invite itself stays terminal.
	if _, err := fx.service.Respond(t.Context(), memory.UserIDCasey, inviteID, invite.StatusAccepted); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestInviteService_Cancel_ManagerOnly(t *testing.T) {
	fx := newInviteFixture()

	created, err := fx.service.Create(t.Context(), memory.UserIDAlex, memory.TeamIDRovers, []string{memory.UserIDBillie})
	if err != nil {
		t.Fatalf("create invite: %v", err)
	}
	inviteID := created[0].ID

	if _, err := fx.service.Cancel(t.Context(), memory.UserIDBillie, inviteID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-manager, got %v", err)
	}

	canceled, err := fx.service.Cancel(t.Context(), memory.UserIDAlex, inviteID)
	if err != nil {
		t.Fatalf("cancel invite: %v", err)
	}
	if canceled.Status != invite.StatusCanceled {
		t.Fatalf("expected CANCELED, got %s", canceled.Status)
	}
	if canceled.UpdatedAt.Before(canceled.CreatedAt) || canceled.UpdatedAt.IsZero() {
		t.Fatalf("updated at not advanced: %+v", canceled)
	}
}

func TestInviteService_DuplicatePendingInvitesAllowed(t *testing.T) {
	fx := newInviteFixture()

	for i := 0; i < 2; i++ {
		if _, err := fx.service.Create(t.Context(), memory.UserIDAlex, memory.TeamIDRovers, []string{memory.UserIDBillie}); err != nil {
			t.Fatalf("create invite round %d: %v", i, err)
		}
	}

	invites, err := fx.service.ListByPlayer(t.Context(), memory.UserIDBillie)
	if err != nil {
		t.Fatalf("list invites: %v", err)
	}
	if len(invites) != 2 {
		t.Fatalf("expected 2 stacked invites, got %d", len(invites))
	}
}
