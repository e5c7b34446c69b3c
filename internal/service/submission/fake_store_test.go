package submission

import (
	"context"
	"sync"
	"time"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

// memStore is an in-memory user and history store. Its transaction runs fn
// directly and keeps a journal so tests can assert write order.
type memStore struct {
	mu      sync.Mutex
	users   map[string]*domain.User
	history map[string][]domain.HistoryItem
	nextID  int64
	journal []string
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[string]*domain.User{},
		history: map[string][]domain.HistoryItem{},
	}
}

func (m *memStore) EnsureUser(_ context.Context, id domain.Identity) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.journal = append(m.journal, "ensure")

	u, ok := m.users[id.UID]
	if !ok {
		now := time.Now()
		u = &domain.User{UID: id.UID, CreatedAt: now, UpdatedAt: now}
		m.users[id.UID] = u
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) AddPoints(_ context.Context, uid string, delta int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.journal = append(m.journal, "add_points")

	u, ok := m.users[uid]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	u.Points += int64(delta)
	return u.Points, nil
}

func (m *memStore) Append(_ context.Context, uid string, f domain.HistoryItemFields) (*domain.HistoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.journal = append(m.journal, "append")

	m.nextID++
	item := domain.HistoryItem{ID: m.nextID, UID: uid, HistoryItemFields: f, CreatedAt: time.Now()}
	m.history[uid] = append(m.history[uid], item)
	return &item, nil
}

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *memStore) points(uid string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[uid]; ok {
		return u.Points
	}
	return 0
}

func (m *memStore) awarded(uid string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sum int64
	for _, h := range m.history[uid] {
		sum += int64(h.PointsAwarded)
	}
	return sum
}
