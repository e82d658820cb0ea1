package id

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAt_SortsByTime(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	older := NewAt(base)
	newer := NewAt(base.Add(time.Second))
	assert.Less(t, older, newer)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(New()))
	assert.False(t, Valid("not-a-ulid"))
	assert.False(t, Valid(""))
}

func TestNewAt_SameMillisecondStillIncreases(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	prev := NewAt(at)
	for i := 0; i < 1000; i++ {
		next := NewAt(at)
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestNew_ConcurrentIDsAreUnique(t *testing.T) {
	const workers, perWorker = 8, 200
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				v := New()
				mu.Lock()
				seen[v] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}
