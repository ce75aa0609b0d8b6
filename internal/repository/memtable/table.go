// Package memtable содержит in-memory таблицы датасетов с атомарной заменой.
// Таблица заменяется целиком под эксклюзивной блокировкой; читатели берут
// снапшот-ссылку и работают с ней весь запрос, не видя частичных обновлений.
package memtable

import (
	"sync"
	"time"
)

// Table - заменяемая целиком таблица записей типа T
type Table[T any] struct {
	mu        sync.RWMutex
	records   []T
	updatedAt time.Time
}

func New[T any]() *Table[T] {
	return &Table[T]{}
}

// Replace атомарно заменяет все записи таблицы
func (t *Table[T]) Replace(records []T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = records
	t.updatedAt = time.Now()
}

// Snapshot возвращает текущий срез записей. Срез после Replace больше не
// модифицируется, поэтому читатели могут итерировать его без блокировки.
func (t *Table[T]) Snapshot() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.records
}

// Count возвращает количество записей
func (t *Table[T]) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.records)
}

// UpdatedAt возвращает время последней замены
func (t *Table[T]) UpdatedAt() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.updatedAt
}
