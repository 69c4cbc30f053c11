package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HabitInventory_Go/internal/testing/leaktest"
)

func TestLockManager_SerializesSameKey(t *testing.T) {
	leaktest.Run(t, func() {
		lm := NewLockManager()

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			active  int
			maxSeen int
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := lm.Lock("user-1")
				defer unlock()

				mu.Lock()
				active++
				if active > maxSeen {
					maxSeen = active
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxSeen)
		assert.Zero(t, lm.Len(), "released keys are dropped")
	})
}

func TestLockManager_IndependentKeys(t *testing.T) {
	lm := NewLockManager()

	unlockA := lm.Lock("a")
	done := make(chan struct{})
	go func() {
		unlockB := lm.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked behind a")
	}
	assert.Equal(t, 1, lm.Len())
	unlockA()
	assert.Zero(t, lm.Len())
}

func TestLockManager_UnlockIsIdempotent(t *testing.T) {
	lm := NewLockManager()

	unlock := lm.Lock("k")
	unlock()
	unlock()

	relock := lm.Lock("k")
	relock()
	assert.Zero(t, lm.Len())
}
