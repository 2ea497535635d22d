package memory

import (
	"context"
	"sync"

	"github.com/openpitch/pitchside/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	items   map[string]league.League
	orders  []string
	members map[string]map[string]struct{}
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.ID] = l
		orders = append(orders, l.ID)
	}

	return &LeagueRepository{
		items:   items,
		orders:  orders,
		members: make(map[string]map[string]struct{}),
	}
}

func (r *LeagueRepository) Create(_ context.Context, l league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[l.ID]; !ok {
		r.orders = append(r.orders, l.ID)
	}
	r.items[l.ID] = l

	return nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) Update(_ context.Context, l league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[l.ID]; !ok {
		return nil
	}
	r.items[l.ID] = l

	return nil
}

func (r *LeagueRepository) Delete(_ context.Context, leagueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, leagueID)
	delete(r.members, leagueID)
	for i, id := range r.orders {
		if id == leagueID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *LeagueRepository) ListByManager(_ context.Context, userID string) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0)
	for _, id := range r.orders {
		l := r.items[id]
		if l.ManagerID != nil && *l.ManagerID == userID {
			out = append(out, l)
		}
	}

	return out, nil
}

func (r *LeagueRepository) ListByTeamIDs(_ context.Context, teamIDs []string) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(teamIDs))
	for _, teamID := range teamIDs {
		wanted[teamID] = struct{}{}
	}

	out := make([]league.League, 0)
	for _, id := range r.orders {
		for teamID := range r.members[id] {
			if _, ok := wanted[teamID]; ok {
				out = append(out, r.items[id])
				break
			}
		}
	}

	return out, nil
}

func (r *LeagueRepository) AddTeams(_ context.Context, leagueID string, teamIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	edges, ok := r.members[leagueID]
	if !ok {
		edges = make(map[string]struct{})
		r.members[leagueID] = edges
	}
	for _, teamID := range teamIDs {
		edges[teamID] = struct{}{}
	}

	return nil
}

func (r *LeagueRepository) RemoveTeams(_ context.Context, leagueID string, teamIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, teamID := range teamIDs {
		delete(r.members[leagueID], teamID)
	}

	return nil
}
