package semaphore_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notorious-go/compare/internal/semaphore"
)

func TestNilSemaphoreNeverBlocks(t *testing.T) {
	sem := semaphore.New(-1)
	assert.Nil(t, sem)
	for i := 0; i < 100; i++ {
		sem.Acquire()
	}
	for i := 0; i < 100; i++ {
		sem.Release()
	}
}

func TestSemaphoreBoundsConcurrency(t *testing.T) {
	const limit = 3
	sem := semaphore.New(limit)

	var (
		wg      sync.WaitGroup
		active  atomic.Int32
		highest atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		sem.Acquire()
		go func() {
			defer wg.Done()
			defer sem.Release()
			n := active.Add(1)
			defer active.Add(-1)
			for {
				prev := highest.Load()
				if n <= prev || highest.CompareAndSwap(prev, n) {
					break
				}
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, highest.Load(), int32(limit))
	assert.Zero(t, len(sem), "all tokens should be released")
}
