package memory

import (
	"context"
	"sync"

	"github.com/openpitch/pitchside/internal/domain/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	items   map[string]user.User
	orders  []string
	follows map[string]map[string]struct{}
}

func NewUserRepository(users []user.User) *UserRepository {
	items := make(map[string]user.User, len(users))
	orders := make([]string, 0, len(users))

	for _, u := range users {
		items[u.ID] = u
		orders = append(orders, u.ID)
	}

	return &UserRepository{
		items:   items,
		orders:  orders,
		follows: make(map[string]map[string]struct{}),
	}
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[u.ID]; !ok {
		r.orders = append(r.orders, u.ID)
	}
	r.items[u.ID] = u

	return nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[userID]
	if !ok {
		return user.User{}, false, nil
	}

	return u, true, nil
}

func (r *UserRepository) Follow(_ context.Context, followerID, followeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	edges, ok := r.follows[followerID]
	if !ok {
		edges = make(map[string]struct{})
		r.follows[followerID] = edges
	}
	edges[followeeID] = struct{}{}

	return nil
}

func (r *UserRepository) Unfollow(_ context.Context, followerID, followeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.follows[followerID], followeeID)

	return nil
}

func (r *UserRepository) IsFollowing(_ context.Context, followerID, followeeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.follows[followerID][followeeID]

	return ok, nil
}

func (r *UserRepository) CountFollowers(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, edges := range r.follows {
		if _, ok := edges[userID]; ok {
			count++
		}
	}

	return count, nil
}

func (r *UserRepository) CountFollowing(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.follows[userID]), nil
}

func (r *UserRepository) summary(userID string) user.Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[userID]
	if !ok {
		return user.Summary{ID: userID}
	}

	return u.Summary()
}

func (r *UserRepository) following(followerID, followeeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.follows[followerID][followeeID]

	return ok
}
