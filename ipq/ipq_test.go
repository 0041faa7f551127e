// SPDX-License-Identifier: MIT
package ipq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/msdijkstra/ipq"
)

// drain extracts every entry and returns ids in extraction order.
func drain[K constraints.Ordered](t *testing.T, pq *ipq.IndexMinPQ[K]) []int {
	t.Helper()
	var out []int
	for !pq.IsEmpty() {
		id, _, err := pq.ExtractMin()
		require.NoError(t, err)
		out = append(out, id)
	}

	return out
}

func TestNew_Empty(t *testing.T) {
	pq := ipq.New[float32](4)
	assert.True(t, pq.IsEmpty())
	assert.Equal(t, 0, pq.Len())
	assert.Equal(t, 4, pq.Cap())
	for id := 0; id < 4; id++ {
		assert.False(t, pq.Contains(id))
	}
}

func TestInsertExtract_KeyOrder(t *testing.T) {
	pq := ipq.New[float32](5)
	require.NoError(t, pq.Insert(0, 3))
	require.NoError(t, pq.Insert(1, 1))
	require.NoError(t, pq.Insert(2, 4))
	require.NoError(t, pq.Insert(3, 0.5))
	require.NoError(t, pq.Insert(4, 2))
	assert.Equal(t, 5, pq.Len())

	assert.Equal(t, []int{3, 1, 4, 0, 2}, drain(t, pq))
}

func TestExtractMin_TiesBrokenBySmallerID(t *testing.T) {
	pq := ipq.New[float32](6)
	for _, id := range []int{5, 2, 4, 0, 3, 1} {
		require.NoError(t, pq.Insert(id, 7))
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, drain(t, pq))
}

func TestExtractMin_ReturnsKey(t *testing.T) {
	pq := ipq.New[int](3)
	require.NoError(t, pq.Insert(2, 9))
	id, key, err := pq.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, 9, key)
	assert.False(t, pq.Contains(2))
}

func TestDecreaseKey_Repositions(t *testing.T) {
	pq := ipq.New[float32](4)
	require.NoError(t, pq.Insert(0, 10))
	require.NoError(t, pq.Insert(1, 20))
	require.NoError(t, pq.Insert(2, 30))
	require.NoError(t, pq.Insert(3, 40))

	require.NoError(t, pq.DecreaseKey(3, 5))
	k, ok := pq.Key(3)
	require.True(t, ok)
	assert.Equal(t, float32(5), k)

	id, _, err := pq.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	// Decrease to a tie with id 0: id 0 must win.
	require.NoError(t, pq.DecreaseKey(2, 10))
	assert.Equal(t, []int{3, 0, 2, 1}, drain(t, pq))
}

func TestErrors(t *testing.T) {
	pq := ipq.New[float32](2)

	_, _, err := pq.ExtractMin()
	assert.ErrorIs(t, err, ipq.ErrQueueUnderflow)
	_, _, err = pq.Peek()
	assert.ErrorIs(t, err, ipq.ErrQueueUnderflow)

	assert.ErrorIs(t, pq.DecreaseKey(0, 1), ipq.ErrQueueUnderflow)
	assert.ErrorIs(t, pq.Insert(2, 1), ipq.ErrIndexOutOfRange)
	assert.ErrorIs(t, pq.Insert(-1, 1), ipq.ErrIndexOutOfRange)
	assert.ErrorIs(t, pq.DecreaseKey(5, 1), ipq.ErrIndexOutOfRange)

	require.NoError(t, pq.Insert(0, 3))
	assert.ErrorIs(t, pq.Insert(0, 1), ipq.ErrDuplicateEntry)
	assert.ErrorIs(t, pq.DecreaseKey(0, 3), ipq.ErrKeyNotDecreased)
	assert.ErrorIs(t, pq.DecreaseKey(0, 4), ipq.ErrKeyNotDecreased)

	_, ok := pq.Key(1)
	assert.False(t, ok)
	assert.False(t, pq.Contains(7))
}

func TestReinsertAfterExtract(t *testing.T) {
	pq := ipq.New[float32](1)
	require.NoError(t, pq.Insert(0, 1))
	_, _, err := pq.ExtractMin()
	require.NoError(t, err)
	require.NoError(t, pq.Insert(0, 2))
	assert.True(t, pq.Contains(0))
}

// TestRandomized compares the queue against a sorted reference under a mix
// of inserts and decrease-keys.
func TestRandomized(t *testing.T) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	pq := ipq.New[float64](n)
	keys := make(map[int]float64, n)

	for id := 0; id < n; id++ {
		k := float64(rng.Intn(1000))
		require.NoError(t, pq.Insert(id, k))
		keys[id] = k
	}
	for i := 0; i < n; i++ {
		id := rng.Intn(n)
		k := keys[id] - float64(1+rng.Intn(50))
		require.NoError(t, pq.DecreaseKey(id, k))
		keys[id] = k
	}

	want := make([]int, 0, n)
	for id := range keys {
		want = append(want, id)
	}
	sort.Slice(want, func(i, j int) bool {
		a, b := want[i], want[j]
		if keys[a] != keys[b] {
			return keys[a] < keys[b]
		}
		return a < b
	})

	assert.Equal(t, want, drain(t, pq))
}
