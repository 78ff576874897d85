package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemStore keeps every row in memory. It backs the pipeline's tests and the
// "memory" provider for dry runs against nothing at all.
type MemStore struct {
	mu   sync.Mutex
	rows map[EntityKind][]map[string]any
}

func NewMemStore() *MemStore {
	return &MemStore{rows: make(map[EntityKind][]map[string]any)}
}

func (m *MemStore) Connect(ctx context.Context) error { return nil }
func (m *MemStore) Close() error                      { return nil }
func (m *MemStore) Ping(ctx context.Context) error    { return nil }

func (m *MemStore) Create(ctx context.Context, kind EntityKind, attrs map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := make(map[string]any, len(attrs)+1)
	for k, v := range attrs {
		row[k] = v
	}
	id := uuid.NewString()
	row["id"] = id
	m.rows[kind] = append(m.rows[kind], row)
	return id, nil
}

func (m *MemStore) DeleteAll(ctx context.Context, kind EntityKind) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := int64(len(m.rows[kind]))
	delete(m.rows, kind)
	return n, nil
}

// Rows returns the stored rows of a kind, for inspection in tests.
func (m *MemStore) Rows(kind EntityKind) []map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]map[string]any(nil), m.rows[kind]...)
}

// Count returns the number of stored rows of a kind.
func (m *MemStore) Count(kind EntityKind) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows[kind])
}
