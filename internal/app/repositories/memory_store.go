package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore implements Store on an in-process map. It enforces unique
// columns. Once registered with a memoryRegistry it also rejects links to
// missing rows and clears links to deleted rows, like ON DELETE SET NULL.
type MemoryStore[T any] struct {
	mu       sync.RWMutex
	table    Table[T]
	rows     map[int64]T
	nextID   int64
	registry *memoryRegistry
}

// memoryTable is the untyped view a registry has of a MemoryStore.
type memoryTable interface {
	has(id int64) bool
	clearReferences(resource string, id int64)
}

// memoryRegistry resolves references between memory stores by resource name.
type memoryRegistry struct {
	tables map[string]memoryTable
}

func newMemoryRegistry() *memoryRegistry {
	return &memoryRegistry{tables: make(map[string]memoryTable)}
}

// register attaches store to reg under its resource name.
func register[T any](reg *memoryRegistry, store *MemoryStore[T]) *MemoryStore[T] {
	store.registry = reg
	reg.tables[store.table.Resource] = store
	return store
}

// NewMemoryStore creates an empty store for table.
func NewMemoryStore[T any](table Table[T]) *MemoryStore[T] {
	return &MemoryStore[T]{
		table:  table,
		rows:   make(map[int64]T),
		nextID: 1,
	}
}

// List implements Store.
func (s *MemoryStore[T]) List(ctx context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]*T, 0, len(ids))
	for _, id := range ids {
		row := s.rows[id]
		items = append(items, &row)
	}
	return items, nil
}

// Get implements Store.
func (s *MemoryStore[T]) Get(ctx context.Context, id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, s.table.notFound(id)
	}
	return &row, nil
}

// FindBy implements Store.
func (s *MemoryStore[T]) FindBy(ctx context.Context, column string, value interface{}) (*T, error) {
	idx := s.table.columnIndex(column)
	if idx < 0 && column != "id" {
		return nil, fmt.Errorf("unknown %s column %q", s.table.Resource, column)
	}

	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	want := deref(value)
	for _, item := range items {
		var got interface{}
		if idx < 0 {
			got = *s.table.ID(item)
		} else {
			got = deref(s.table.Values(item)[idx])
		}
		if got == want {
			return item, nil
		}
	}
	return nil, s.table.notFoundBy(column)
}

// Create implements Store.
func (s *MemoryStore[T]) Create(ctx context.Context, entity *T) error {
	if err := s.checkReferences(entity); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnique(entity, 0); err != nil {
		return err
	}
	id := s.nextID
	s.nextID++
	*s.table.ID(entity) = id
	s.rows[id] = *entity
	return nil
}

// Update implements Store.
func (s *MemoryStore[T]) Update(ctx context.Context, entity *T) error {
	if err := s.checkReferences(entity); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := *s.table.ID(entity)
	if _, ok := s.rows[id]; !ok {
		return s.table.notFound(id)
	}
	if err := s.checkUnique(entity, id); err != nil {
		return err
	}
	s.rows[id] = *entity
	return nil
}

// Delete implements Store.
func (s *MemoryStore[T]) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()

	if _, ok := s.rows[id]; !ok {
		s.mu.Unlock()
		return s.table.notFound(id)
	}
	delete(s.rows, id)
	s.mu.Unlock()

	if s.registry != nil {
		for _, t := range s.registry.tables {
			t.clearReferences(s.table.Resource, id)
		}
	}
	return nil
}

// checkReferences must be called without mu held, since referenced
// stores take their own locks.
func (s *MemoryStore[T]) checkReferences(entity *T) error {
	if s.registry == nil {
		return nil
	}
	values := s.table.Values(entity)
	for _, r := range s.table.References {
		id, ok := deref(values[s.table.columnIndex(r.Column)]).(int64)
		if !ok {
			continue
		}
		target, found := s.registry.tables[r.Resource]
		if !found || !target.has(id) {
			return s.table.brokenReference(r)
		}
	}
	return nil
}

func (s *MemoryStore[T]) has(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rows[id]
	return ok
}

// clearReferences nulls every column of s that links to resource id.
func (s *MemoryStore[T]) clearReferences(resource string, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.table.References {
		if r.Resource != resource {
			continue
		}
		idx := s.table.columnIndex(r.Column)
		for rowID, row := range s.rows {
			link, ok := s.table.Targets(&row)[idx].(**int64)
			if !ok || *link == nil || **link != id {
				continue
			}
			*link = nil
			s.rows[rowID] = row
		}
	}
}

// checkUnique must be called with mu held. Row self is ignored.
func (s *MemoryStore[T]) checkUnique(entity *T, self int64) error {
	if len(s.table.Uniques) == 0 {
		return nil
	}
	values := s.table.Values(entity)
	for _, u := range s.table.Uniques {
		idx := s.table.columnIndex(u.Column)
		want := deref(values[idx])
		for id, row := range s.rows {
			if id == self {
				continue
			}
			if deref(s.table.Values(&row)[idx]) == want {
				return s.table.conflict(u)
			}
		}
	}
	return nil
}

func deref(v interface{}) interface{} {
	switch p := v.(type) {
	case *int64:
		if p == nil {
			return nil
		}
		return *p
	case *string:
		if p == nil {
			return nil
		}
		return *p
	case int:
		return int64(p)
	default:
		return v
	}
}

type memoryTxKey struct{}

// MemoryTxManager serialises transactions with a mutex. There is no
// rollback: writes made before a failure stay applied.
type MemoryTxManager struct {
	mu sync.Mutex
}

// NewMemoryTxManager creates a transaction manager for memory stores.
func NewMemoryTxManager() *MemoryTxManager {
	return &MemoryTxManager{}
}

// WithinTx implements TxManager.
func (m *MemoryTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memoryTxKey{}) != nil {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(context.WithValue(ctx, memoryTxKey{}, true))
}
