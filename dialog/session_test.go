package dialog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreAbsent(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("user-1")

	assert.False(t, ok)
}

func TestMemoryStoreSetOverwrites(t *testing.T) {
	store := NewMemoryStore()

	store.Set("user-1", Session{UserID: "user-1", Step: StepAwaitingLocation, ReportID: 1})
	store.Set("user-1", Session{UserID: "user-1", Step: StepAwaitingPhotos, ReportID: 2})

	session, ok := store.Get("user-1")
	assert.True(t, ok)
	assert.Equal(t, StepAwaitingPhotos, session.Step)
	assert.Equal(t, uint(2), session.ReportID)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	store.Set("user-1", Session{UserID: "user-1"})

	store.Delete("user-1")

	_, ok := store.Get("user-1")
	assert.False(t, ok)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i%5)
			store.Set(userID, Session{UserID: userID, Step: StepAwaitingPhotos})
			store.Get(userID)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		_, ok := store.Get(fmt.Sprintf("user-%d", i))
		assert.True(t, ok)
	}
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "idle", StepIdle.String())
	assert.Equal(t, "awaiting_photos", StepAwaitingPhotos.String())
	assert.Equal(t, "unknown", Step(99).String())
}
