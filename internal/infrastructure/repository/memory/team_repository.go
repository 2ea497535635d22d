package memory

import (
	"context"
	"sync"

	"github.com/openpitch/pitchside/internal/domain/team"
	"github.com/openpitch/pitchside/internal/domain/user"
)

type TeamRepository struct {
	mu      sync.RWMutex
	items   map[string]team.Team
	orders  []string
	rosters map[string][]string
	users   *UserRepository
}

func NewTeamRepository(users *UserRepository, teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	orders := make([]string, 0, len(teams))

	for _, t := range teams {
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TeamRepository{
		items:   items,
		orders:  orders,
		rosters: make(map[string][]string),
		users:   users,
	}
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[t.ID]; !ok {
		r.orders = append(r.orders, t.ID)
	}
	r.items[t.ID] = t

	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[t.ID]; !ok {
		return nil
	}
	r.items[t.ID] = t

	return nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, teamID)
	delete(r.rosters, teamID)
	for i, id := range r.orders {
		if id == teamID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *TeamRepository) ListByPlayer(_ context.Context, userID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, id := range r.orders {
		for _, playerID := range r.rosters[id] {
			if playerID == userID {
				out = append(out, r.items[id])
				break
			}
		}
	}

	return out, nil
}

func (r *TeamRepository) ListByManager(_ context.Context, userID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, id := range r.orders {
		if r.items[id].ManagerID == userID {
			out = append(out, r.items[id])
		}
	}

	return out, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, id := range r.orders {
		t := r.items[id]
		if t.LeagueID != nil && *t.LeagueID == leagueID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *TeamRepository) AddPlayer(_ context.Context, teamID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, playerID := range r.rosters[teamID] {
		if playerID == userID {
			return nil
		}
	}
	r.rosters[teamID] = append(r.rosters[teamID], userID)

	return nil
}

func (r *TeamRepository) RemovePlayer(_ context.Context, teamID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	roster := r.rosters[teamID]
	for i, playerID := range roster {
		if playerID == userID {
			r.rosters[teamID] = append(roster[:i], roster[i+1:]...)
			break
		}
	}

	return nil
}

func (r *TeamRepository) ListPlayers(_ context.Context, teamID string) ([]user.Summary, error) {
	r.mu.RLock()
	roster := append([]string(nil), r.rosters[teamID]...)
	r.mu.RUnlock()

	out := make([]user.Summary, 0, len(roster))
	for _, playerID := range roster {
		out = append(out, r.users.summary(playerID))
	}

	return out, nil
}

func (r *TeamRepository) SetLeague(_ context.Context, teamID string, leagueID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[teamID]
	if !ok {
		return nil
	}
	t.LeagueID = leagueID
	r.items[teamID] = t

	return nil
}

// belongsTo reports whether the user plays for or manages the team.
func (r *TeamRepository) belongsTo(teamID, userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.items[teamID]; ok && t.ManagerID == userID {
		return true
	}
	for _, playerID := range r.rosters[teamID] {
		if playerID == userID {
			return true
		}
	}

	return false
}
