package get_available_rooms

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestGuard_SingleRequest(t *testing.T) {
	guard := NewLatestGuard()

	ticket := guard.Begin("session-1")

	assert.True(t, guard.IsLatest("session-1", ticket))
}

// Более новый запрос той же сессии устаревает все предыдущие билеты
func TestLatestGuard_NewerRequestSupersedesOlder(t *testing.T) {
	guard := NewLatestGuard()

	first := guard.Begin("session-1")
	second := guard.Begin("session-1")

	assert.False(t, guard.IsLatest("session-1", first))
	assert.True(t, guard.IsLatest("session-1", second))
}

// Билеты разных сессий друг друга не устаревают
func TestLatestGuard_KeysAreIndependent(t *testing.T) {
	guard := NewLatestGuard()

	a := guard.Begin("session-a")
	b := guard.Begin("session-b")

	assert.True(t, guard.IsLatest("session-a", a))
	assert.True(t, guard.IsLatest("session-b", b))
}

func TestLatestGuard_Forget(t *testing.T) {
	guard := NewLatestGuard()

	ticket := guard.Begin("session-1")
	guard.Forget("session-1")

	assert.False(t, guard.IsLatest("session-1", ticket))
}

func TestLatestGuard_ConcurrentBegin(t *testing.T) {
	guard := NewLatestGuard()

	const goroutines = 50

	var wg sync.WaitGroup
	tickets := make([]uint64, goroutines)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			tickets[i] = guard.Begin("session-1")
		}(i)
	}
	wg.Wait()

	// Билеты монотонны и уникальны, самым новым остается ровно один
	seen := make(map[uint64]bool, goroutines)
	latest := 0
	for _, ticket := range tickets {
		assert.False(t, seen[ticket])
		seen[ticket] = true
		if guard.IsLatest("session-1", ticket) {
			latest++
		}
	}
	assert.Equal(t, 1, latest)
}
