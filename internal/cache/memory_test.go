package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(5, time.Minute)

	payload := []byte(`{"main":{"temp":21.5}}`)
	c.Set(ctx, "London", payload)

	got, ok := c.Get(ctx, "London")
	assert.True(t, ok)
	assert.Equal(t, payload, got)

	_, ok = c.Get(ctx, "Paris")
	assert.False(t, ok)
}

func TestMemory_CapacityEviction(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(5, time.Minute)

	cities := []string{"London", "Paris", "Berlin", "Madrid", "Rome"}
	for _, city := range cities {
		c.Set(ctx, city, []byte(city))
	}
	assert.Equal(t, 5, c.Len(ctx))

	// A sixth city evicts exactly one entry: the oldest inserted.
	c.Set(ctx, "Oslo", []byte("Oslo"))
	assert.Equal(t, 5, c.Len(ctx))

	_, ok := c.Get(ctx, "London")
	assert.False(t, ok, "oldest entry should be evicted")
	for _, city := range []string{"Paris", "Berlin", "Madrid", "Rome", "Oslo"} {
		_, ok := c.Get(ctx, city)
		assert.True(t, ok, "expected %s to survive", city)
	}
}

func TestMemory_UpdateKeepsSlot(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(2, time.Minute)

	c.Set(ctx, "London", []byte("v1"))
	c.Set(ctx, "Paris", []byte("p1"))
	c.Set(ctx, "London", []byte("v2"))
	assert.Equal(t, 2, c.Len(ctx))

	got, ok := c.Get(ctx, "London")
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), got)

	// London is still the oldest slot, so the next new city evicts it.
	c.Set(ctx, "Berlin", []byte("b1"))
	_, ok = c.Get(ctx, "London")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "Paris")
	assert.True(t, ok)
}

func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(5, 20*time.Millisecond)

	c.Set(ctx, "London", []byte("v1"))
	_, ok := c.Get(ctx, "London")
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = c.Get(ctx, "London")
	assert.False(t, ok, "expired entry should be a miss")
	assert.Equal(t, 0, c.Len(ctx))

	// An expired slot frees capacity for re-insertion.
	c.Set(ctx, "London", []byte("v2"))
	got, ok := c.Get(ctx, "London")
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), got)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(5, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			city := fmt.Sprintf("city-%d", n%7)
			c.Set(ctx, city, []byte(city))
			c.Get(ctx, city)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(ctx), 5)
}
