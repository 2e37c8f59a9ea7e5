package cart

import (
	"context"
	"sync"

	"github.com/eonerhime/easy-shoppers-hub/models"
)

// MemoryRepository is an in-memory Repository used in tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID uint
	lines  map[string][]models.CartItem // userID -> lines, insertion order preserved
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1, lines: make(map[string][]models.CartItem)}
}

func (m *MemoryRepository) Items(_ context.Context, userID string) ([]models.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]models.CartItem, len(m.lines[userID]))
	copy(items, m.lines[userID])
	return items, nil
}

func (m *MemoryRepository) Get(_ context.Context, userID string, productID uint) (models.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.lines[userID] {
		if item.ProductID == productID {
			return item, nil
		}
	}
	return models.CartItem{}, ErrLineNotFound
}

func (m *MemoryRepository) Save(_ context.Context, userID string, item models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.lines[userID] {
		if existing.ProductID == item.ProductID {
			item.ID = existing.ID
			m.lines[userID][i] = item
			return nil
		}
	}
	item.ID = m.nextID
	m.nextID++
	m.lines[userID] = append(m.lines[userID], item)
	return nil
}

func (m *MemoryRepository) Remove(_ context.Context, userID string, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.lines[userID]
	for i, item := range items {
		if item.ProductID == productID {
			m.lines[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (m *MemoryRepository) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines[userID] = nil
	return nil
}
