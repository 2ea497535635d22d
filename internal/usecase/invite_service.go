package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/openpitch/pitchside/internal/domain/invite"
	"github.com/openpitch/pitchside/internal/domain/team"
	"github.com/openpitch/pitchside/internal/domain/user"
	idgen "github.com/openpitch/pitchside/internal/platform/id"
)

const inviteCreateConcurrency = 4

type InviteService struct {
	inviteRepo invite.Repository
	teamRepo   team.Repository
	userRepo   user.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewInviteService(
	inviteRepo invite.Repository,
	teamRepo team.Repository,
	userRepo user.Repository,
	idGen idgen.Generator,
) *InviteService {
	return &InviteService{
		inviteRepo: inviteRepo,
		teamRepo:   teamRepo,
		userRepo:   userRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// Create issues one PENDING invite per player, inserted concurrently.
// It does not check for an existing PENDING invite to the same pair, so
// repeated calls stack duplicates.
func (s *InviteService) Create(ctx context.Context, viewerID, teamID string, playerIDs []string) ([]invite.Invite, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InviteService.Create")
	defer span.End()

	managed, err := s.requireManagedTeam(ctx, viewerID, teamID)
	if err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		playerID = strings.TrimSpace(playerID)
		if playerID == "" {
			continue
		}
		cleaned = append(cleaned, playerID)
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: at least one player id is required", ErrInvalidInput)
	}

	for _, playerID := range cleaned {
		_, exists, err := s.userRepo.GetByID(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("get player: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: user=%s", ErrNotFound, playerID)
		}
	}

	now := s.now().UTC()
	invites := make([]invite.Invite, len(cleaned))
	workers := pool.New().WithErrors().WithMaxGoroutines(inviteCreateConcurrency)
	for i, playerID := range cleaned {
		workers.Go(func() error {
			inviteID, err := s.idGen.NewID()
			if err != nil {
				return fmt.Errorf("generate invite id: %w", err)
			}
			item := invite.Invite{
				ID:        inviteID,
				TeamID:    managed.ID,
				PlayerID:  playerID,
				Status:    invite.StatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.inviteRepo.Create(ctx, item); err != nil {
				return fmt.Errorf("create invite: %w", err)
			}
			invites[i] = item
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return nil, err
	}

	return invites, nil
}

// Respond moves a PENDING invite to ACCEPTED or DECLINED. Only the
// invited player may respond. Acceptance does not add the player to the
// team; the client drives that as a separate call.
func (s *InviteService) Respond(ctx context.Context, viewerID, inviteID string, to invite.Status) (invite.Invite, error) {
	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" {
		return invite.Invite{}, fmt.Errorf("%w: authentication required", ErrUnauthorized)
	}
	if to != invite.StatusAccepted && to != invite.StatusDeclined {
		return invite.Invite{}, fmt.Errorf("%w: response status must be %s or %s", ErrInvalidInput, invite.StatusAccepted, invite.StatusDeclined)
	}

	item, err := s.getInvite(ctx, inviteID)
	if err != nil {
		return invite.Invite{}, err
	}
	if item.PlayerID != viewerID {
		return invite.Invite{}, fmt.Errorf("%w: only the invited player may respond", ErrForbidden)
	}

	return s.transition(ctx, item, to)
}

// Cancel withdraws a PENDING invite. Only the team manager may cancel.
func (s *InviteService) Cancel(ctx context.Context, viewerID, inviteID string) (invite.Invite, error) {
	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" {
		return invite.Invite{}, fmt.Errorf("%w: authentication required", ErrUnauthorized)
	}

	item, err := s.getInvite(ctx, inviteID)
	if err != nil {
		return invite.Invite{}, err
	}

	if _, err := s.requireManagedTeam(ctx, viewerID, item.TeamID); err != nil {
		return invite.Invite{}, err
	}

	return s.transition(ctx, item, invite.StatusCanceled)
}

func (s *InviteService) ListByPlayer(ctx context.Context, viewerID string) ([]invite.Invite, error) {
	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" {
		return nil, fmt.Errorf("%w: authentication required", ErrUnauthorized)
	}

	invites, err := s.inviteRepo.ListByPlayer(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list invites by player: %w", err)
	}

	return invites, nil
}

func (s *InviteService) ListByTeam(ctx context.Context, viewerID, teamID string) ([]invite.Invite, error) {
	managed, err := s.requireManagedTeam(ctx, viewerID, teamID)
	if err != nil {
		return nil, err
	}

	invites, err := s.inviteRepo.ListByTeam(ctx, managed.ID)
	if err != nil {
		return nil, fmt.Errorf("list invites by team: %w", err)
	}

	return invites, nil
}

// transition runs the guarded PENDING-only update. A refused update on
// a row that still exists means the invite already reached a terminal
// state.
func (s *InviteService) transition(ctx context.Context, item invite.Invite, to invite.Status) (invite.Invite, error) {
	ok, err := s.inviteRepo.TransitionFromPending(ctx, item.ID, to)
	if err != nil {
		return invite.Invite{}, fmt.Errorf("transition invite: %w", err)
	}
	if !ok {
		current, exists, err := s.inviteRepo.GetByID(ctx, item.ID)
		if err != nil {
			return invite.Invite{}, fmt.Errorf("get invite: %w", err)
		}
		if !exists {
			return invite.Invite{}, fmt.Errorf("%w: invite=%s", ErrNotFound, item.ID)
		}
		return invite.Invite{}, fmt.Errorf("%w: invite is %s", ErrInvalidState, current.Status)
	}

	item.Status = to
	item.UpdatedAt = s.now().UTC()

	return item, nil
}

func (s *InviteService) getInvite(ctx context.Context, inviteID string) (invite.Invite, error) {
	inviteID = strings.TrimSpace(inviteID)
	if inviteID == "" {
		return invite.Invite{}, fmt.Errorf("%w: invite id is required", ErrInvalidInput)
	}

	item, exists, err := s.inviteRepo.GetByID(ctx, inviteID)
	if err != nil {
		return invite.Invite{}, fmt.Errorf("get invite: %w", err)
	}
	if !exists {
		return invite.Invite{}, fmt.Errorf("%w: invite=%s", ErrNotFound, inviteID)
	}

	return item, nil
}

func (s *InviteService) requireManagedTeam(ctx context.Context, viewerID, teamID string) (team.Team, error) {
	viewerID = strings.TrimSpace(viewerID)
	teamID = strings.TrimSpace(teamID)
	if viewerID == "" {
		return team.Team{}, fmt.Errorf("%w: authentication required", ErrUnauthorized)
	}
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
	if item.ManagerID != viewerID {
		return team.Team{}, fmt.Errorf("%w: only the team manager may do this", ErrForbidden)
	}

	return item, nil
}
