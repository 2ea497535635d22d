package memory

import (
	"context"
	"sync"

	"github.com/openpitch/pitchside/internal/domain/game"
)

type GameRepository struct {
	mu     sync.RWMutex
	items  map[string]game.Game
	orders []string
}

func NewGameRepository(games []game.Game) *GameRepository {
	items := make(map[string]game.Game, len(games))
	orders := make([]string, 0, len(games))

	for _, g := range games {
		items[g.ID] = g
		orders = append(orders, g.ID)
	}

	return &GameRepository{
		items:  items,
		orders: orders,
	}
}

func (r *GameRepository) Create(_ context.Context, g game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[g.ID]; !ok {
		r.orders = append(r.orders, g.ID)
	}
	r.items[g.ID] = g

	return nil
}

func (r *GameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[gameID]
	if !ok {
		return game.Game{}, false, nil
	}

	return g, true, nil
}

func (r *GameRepository) ListByLeague(_ context.Context, leagueID string) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0)
	for _, id := range r.orders {
		g := r.items[id]
		if g.LeagueID != nil && *g.LeagueID == leagueID {
			out = append(out, g)
		}
	}

	return out, nil
}
