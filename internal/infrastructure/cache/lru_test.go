package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUEvictsOldest(t *testing.T) {
	c := NewLRU[string, bool](2)

	c.Set("a", true)
	c.Set("b", false)
	c.Set("c", true)

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry must be evicted")
	assert.Equal(t, 2, c.Len())

	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.False(t, v)
}

func TestLRUGetRefreshesRecency(t *testing.T) {
	c := NewLRU[string, int](2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "recently read entry must survive over the untouched one")
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestLRUUpdateExisting(t *testing.T) {
	c := NewLRU[string, int](2)

	c.Set("a", 1)
	c.Set("a", 2)

	assert.Equal(t, 1, c.Len())
	v, _ := c.Get("a")
	assert.Equal(t, 2, v)
}

func TestLRURemove(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Set("a", 1)

	c.Remove("a")
	c.Remove("missing")

	assert.Equal(t, 0, c.Len())
}

func TestLRUMinimumCapacity(t *testing.T) {
	c := NewLRU[string, int](0)

	c.Set("a", 1)
	c.Set("b", 2)

	assert.Equal(t, 1, c.Len())
}
