package arbiter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSameKeyExcludes(t *testing.T) {
	km := newKeyedMutex()
	release := km.lock("tenant-a/+15550001111")

	acquired := make(chan struct{})
	go func() {
		r := km.lock("tenant-a/+15550001111")
		close(acquired)
		r()
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired while the key was held")
	case <-time.After(50 * time.Millisecond):
	}

	release()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second holder never acquired after release")
	}
}

func TestKeyedMutexDistinctKeysIndependent(t *testing.T) {
	km := newKeyedMutex()
	releaseA := km.lock("tenant-a/+15550001111")
	// A different key must not block; a hang here fails via test timeout.
	releaseB := km.lock("tenant-b/+15550001111")
	releaseB()
	releaseA()
}

func TestKeyedMutexSerializesHolders(t *testing.T) {
	km := newKeyedMutex()

	// The counter is deliberately unsynchronized; the race detector
	// flags any overlap the lock fails to prevent.
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := km.lock("same-key")
			counter++
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestKeyedMutexDropsIdleEntries(t *testing.T) {
	km := newKeyedMutex()

	r1 := km.lock("a")
	r2 := km.lock("b")
	r1()
	r3 := km.lock("a")
	r3()
	r2()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.entries)
}
