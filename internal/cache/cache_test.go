package cache

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{"Zero", 0},
		{"Negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New[string, int](tt.capacity)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCapacity))
			assert.Nil(t, c)
		})
	}
}

func TestGetMissReturnsAbsent(t *testing.T) {
	c, err := New[string, string](2)
	require.NoError(t, err)

	v, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestSetAndGet(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, c.Len())
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Set("d", 4)

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry should have been evicted")

	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = c.Get("d")
	require.True(t, ok)
	assert.Equal(t, 4, v)

	assert.Equal(t, 3, c.Len())
}

func TestGetRefreshesRecency(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)

	// Touch a so that b becomes the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", 3)

	_, ok = c.Get("a")
	assert.True(t, ok, "refreshed entry must survive the next eviction")

	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestSetExistingKeyUpdatesInPlace(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10)

	assert.Equal(t, 2, c.Len())

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	// The overwrite refreshed a, so b goes first.
	c.Set("c", 3)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestLenNeverExceedsCapacity(t *testing.T) {
	const capacity = 4
	c, err := New[int, int](capacity)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		c.Set(i%7, i)
		assert.LessOrEqual(t, c.Len(), capacity)
	}
}

func TestClear(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)

	// Cache stays usable after a clear.
	c.Set("c", 3)
	v, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestCapacityOne(t *testing.T) {
	c, err := New[string, int](1)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)

	_, ok := c.Get("a")
	assert.False(t, ok)

	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestConcurrentAccess(t *testing.T) {
	c, err := New[string, int](16)
	require.NoError(t, err)

	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func(w int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (w*7+i)%32)
				c.Set(key, i)
				c.Get(key)
			}
		}(w)
	}
	for w := 0; w < 4; w++ {
		<-done
	}

	assert.LessOrEqual(t, c.Len(), 16)
}
