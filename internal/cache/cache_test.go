package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGet(t *testing.T) {
	s := New[string](4, time.Minute)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("a", "one")
	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "one", v)

	s.Set("a", "two")
	v, _ = s.Get("a")
	assert.Equal(t, "two", v)
	assert.Equal(t, 1, s.Len())
}

func TestStoreTTLExpiry(t *testing.T) {
	s := New[int](4, 10*time.Millisecond)

	s.Set("a", 1)
	_, ok := s.Get("a")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = s.Get("a")
	assert.False(t, ok, "expired entries read as absent")
}

func TestStoreEvictsLeastRecentlyUsed(t *testing.T) {
	s := New[int](2, time.Minute)

	s.Set("a", 1)
	s.Set("b", 2)
	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := s.Get("a")
	require.True(t, ok)

	s.Set("c", 3)
	_, ok = s.Get("b")
	assert.False(t, ok)
	_, ok = s.Get("a")
	assert.True(t, ok)
	_, ok = s.Get("c")
	assert.True(t, ok)
}

func TestStorePurge(t *testing.T) {
	s := New[int](4, time.Minute)
	s.Set("a", 1)
	s.Set("b", 2)

	s.Purge()
	assert.Zero(t, s.Len())
	_, ok := s.Get("a")
	assert.False(t, ok)

	s.Set("c", 3)
	v, ok := s.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}
