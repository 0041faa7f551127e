// SPDX-License-Identifier: MIT

// Package ipq implements an indexed min-priority queue over dense integer ids.
//
// Each id in [0, capacity) has at most one live entry. A position index maps
// id → heap slot, so Contains is O(1) and Insert, DecreaseKey and ExtractMin
// are O(log n). Entries are ordered by key, then by id, which makes the
// extraction order fully deterministic.
//
// Complexity:
//
//   - Time:  Insert/DecreaseKey/ExtractMin O(log n), Contains/Key/Peek O(1).
//   - Space: O(capacity).
//
// Errors:
//
//	ErrIndexOutOfRange  - id outside [0, capacity).
//	ErrDuplicateEntry   - Insert of an id that is already queued.
//	ErrQueueUnderflow   - ExtractMin/Peek on an empty queue, or DecreaseKey of an absent id.
//	ErrKeyNotDecreased  - DecreaseKey with a key that is not strictly smaller.
//
// An IndexMinPQ is not safe for concurrent use.
package ipq

import (
	"container/heap"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by IndexMinPQ.
var (
	// ErrIndexOutOfRange indicates an id outside [0, capacity).
	ErrIndexOutOfRange = errors.New("ipq: index out of range")

	// ErrDuplicateEntry indicates an Insert for an id that is already queued.
	ErrDuplicateEntry = errors.New("ipq: id already in queue")

	// ErrQueueUnderflow indicates an extract from an empty queue or a
	// decrease-key on an id that is not queued.
	ErrQueueUnderflow = errors.New("ipq: queue underflow")

	// ErrKeyNotDecreased indicates DecreaseKey was called with a key that is
	// not strictly smaller than the current one.
	ErrKeyNotDecreased = errors.New("ipq: key not decreased")
)

// IndexMinPQ is a binary min-heap of ids keyed by K.
type IndexMinPQ[K constraints.Ordered] struct {
	h idHeap[K]
}

// New returns an empty queue accepting ids in [0, capacity).
// Complexity: O(capacity).
func New[K constraints.Ordered](capacity int) *IndexMinPQ[K] {
	if capacity < 0 {
		capacity = 0
	}
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = -1
	}

	return &IndexMinPQ[K]{h: idHeap[K]{
		ids:  make([]int, 0, capacity),
		pos:  pos,
		keys: make([]K, capacity),
	}}
}

// Len returns the number of queued ids.
func (pq *IndexMinPQ[K]) Len() int { return len(pq.h.ids) }

// IsEmpty reports whether the queue has no entries.
func (pq *IndexMinPQ[K]) IsEmpty() bool { return len(pq.h.ids) == 0 }

// Cap returns the id capacity the queue was created with.
func (pq *IndexMinPQ[K]) Cap() int { return len(pq.h.pos) }

// Contains reports whether id is currently queued. Out-of-range ids yield false.
func (pq *IndexMinPQ[K]) Contains(id int) bool {
	return id >= 0 && id < len(pq.h.pos) && pq.h.pos[id] >= 0
}

// Key returns the current key of a queued id.
func (pq *IndexMinPQ[K]) Key(id int) (K, bool) {
	if !pq.Contains(id) {
		var zero K
		return zero, false
	}

	return pq.h.keys[id], true
}

// Insert queues id with the given key.
func (pq *IndexMinPQ[K]) Insert(id int, key K) error {
	if err := pq.checkRange(id); err != nil {
		return err
	}
	if pq.h.pos[id] >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateEntry, id)
	}
	pq.h.keys[id] = key
	heap.Push(&pq.h, id)

	return nil
}

// DecreaseKey lowers the key of a queued id and restores heap order.
func (pq *IndexMinPQ[K]) DecreaseKey(id int, key K) error {
	if err := pq.checkRange(id); err != nil {
		return err
	}
	slot := pq.h.pos[id]
	if slot < 0 {
		return fmt.Errorf("%w: decrease-key on absent id %d", ErrQueueUnderflow, id)
	}
	if !(key < pq.h.keys[id]) {
		return fmt.Errorf("%w: id %d key %v → %v", ErrKeyNotDecreased, id, pq.h.keys[id], key)
	}
	pq.h.keys[id] = key
	// A smaller key can only move the entry towards the root.
	heap.Fix(&pq.h, slot)

	return nil
}

// ExtractMin removes and returns the id with the smallest key, breaking ties
// by the smaller id.
func (pq *IndexMinPQ[K]) ExtractMin() (int, K, error) {
	if len(pq.h.ids) == 0 {
		var zero K
		return -1, zero, fmt.Errorf("%w: extract from empty queue", ErrQueueUnderflow)
	}
	id := heap.Pop(&pq.h).(int)

	return id, pq.h.keys[id], nil
}

// Peek returns the minimum entry without removing it.
func (pq *IndexMinPQ[K]) Peek() (int, K, error) {
	if len(pq.h.ids) == 0 {
		var zero K
		return -1, zero, fmt.Errorf("%w: peek on empty queue", ErrQueueUnderflow)
	}
	id := pq.h.ids[0]

	return id, pq.h.keys[id], nil
}

func (pq *IndexMinPQ[K]) checkRange(id int) error {
	if id < 0 || id >= len(pq.h.pos) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, id, len(pq.h.pos))
	}

	return nil
}

// idHeap implements heap.Interface over ids; keys and positions live in
// id-indexed arrays so an entry never needs its own allocation.
type idHeap[K constraints.Ordered] struct {
	ids  []int // heap order
	pos  []int // id → slot in ids, -1 if absent
	keys []K   // id → key
}

func (h idHeap[K]) Len() int { return len(h.ids) }

// Less orders by key, then by id.
func (h idHeap[K]) Less(i, j int) bool {
	a, b := h.ids[i], h.ids[j]
	if h.keys[a] != h.keys[b] {
		return h.keys[a] < h.keys[b]
	}

	return a < b
}

func (h idHeap[K]) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.pos[h.ids[i]] = i
	h.pos[h.ids[j]] = j
}

// Push is called by heap.Push; x must be an int id.
func (h *idHeap[K]) Push(x any) {
	id := x.(int)
	h.pos[id] = len(h.ids)
	h.ids = append(h.ids, id)
}

// Pop is called by heap.Pop and clears the popped id's position.
func (h *idHeap[K]) Pop() any {
	n := len(h.ids) - 1
	id := h.ids[n]
	h.ids = h.ids[:n]
	h.pos[id] = -1

	return id
}
