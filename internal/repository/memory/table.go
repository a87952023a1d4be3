package memory

import (
	"context"
	"sync"

	"github.com/megareality/estate/internal/repository"
	appErr "github.com/megareality/estate/pkg/errors"
)

// table is an id-keyed, insertion-ordered set of rows guarded by its own lock.
// Rows are copied in and out so callers never share memory with the table.
type table[T any, PT repository.EntityPtr[T]] struct {
	mu    sync.RWMutex
	rows  map[uint]T
	order []uint
	label string
	clone func(T) T
}

func newTable[T any, PT repository.EntityPtr[T]](label string, clone func(T) T) *table[T, PT] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T, PT]{rows: map[uint]T{}, label: label, clone: clone}
}

func (t *table[T, PT]) notFound() error {
	return appErr.New(appErr.CodeNotFound, t.label+" not found")
}

func (t *table[T, PT]) Create(_ context.Context, obj *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	var maxID uint
	for id := range t.rows {
		if id > maxID {
			maxID = id
		}
	}
	PT(obj).SetID(maxID + 1)
	t.rows[maxID+1] = t.clone(*obj)
	t.order = append(t.order, maxID+1)
	return nil
}

func (t *table[T, PT]) GetByID(_ context.Context, id uint, dest *T) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return t.notFound()
	}
	*dest = t.clone(row)
	return nil
}

func (t *table[T, PT]) Update(_ context.Context, obj *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := PT(obj).GetID()
	if _, ok := t.rows[id]; !ok {
		return t.notFound()
	}
	t.rows[id] = t.clone(*obj)
	return nil
}

func (t *table[T, PT]) Delete(_ context.Context, id uint) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return t.notFound()
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (t *table[T, PT]) All(ctx context.Context) ([]T, error) {
	return t.filter(func(*T) bool { return true }), nil
}

// filter returns copies of the rows matching keep, in insertion order.
func (t *table[T, PT]) filter(keep func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.clone(t.rows[id])
		if keep(&row) {
			out = append(out, row)
		}
	}
	return out
}

// mutate applies fn to every row in place.
func (t *table[T, PT]) mutate(fn func(*T)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, row := range t.rows {
		fn(&row)
		t.rows[id] = row
	}
}
