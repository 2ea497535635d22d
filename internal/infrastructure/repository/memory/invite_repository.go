package memory

import (
	"context"
	"sync"
	"time"

	"github.com/openpitch/pitchside/internal/domain/invite"
)

type InviteRepository struct {
	mu     sync.Mutex
	items  map[string]invite.Invite
	orders []string
}

func NewInviteRepository() *InviteRepository {
	return &InviteRepository{
		items: make(map[string]invite.Invite),
	}
}

func (r *InviteRepository) Create(_ context.Context, inv invite.Invite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[inv.ID]; !ok {
		r.orders = append(r.orders, inv.ID)
	}
	r.items[inv.ID] = inv

	return nil
}

func (r *InviteRepository) GetByID(_ context.Context, inviteID string) (invite.Invite, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.items[inviteID]
	if !ok {
		return invite.Invite{}, false, nil
	}

	return inv, true, nil
}

func (r *InviteRepository) TransitionFromPending(_ context.Context, inviteID string, to invite.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.items[inviteID]
	if !ok || inv.Status != invite.StatusPending {
		return false, nil
	}

	inv.Status = to
	inv.UpdatedAt = time.Now().UTC()
	r.items[inviteID] = inv

	return true, nil
}

func (r *InviteRepository) ListByPlayer(_ context.Context, playerID string) ([]invite.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]invite.Invite, 0)
	for _, id := range r.orders {
		if r.items[id].PlayerID == playerID {
			out = append(out, r.items[id])
		}
	}

	return out, nil
}

func (r *InviteRepository) ListByTeam(_ context.Context, teamID string) ([]invite.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]invite.Invite, 0)
	for _, id := range r.orders {
		if r.items[id].TeamID == teamID {
			out = append(out, r.items[id])
		}
	}

	return out, nil
}
