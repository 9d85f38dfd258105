package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/contree/pkg/contree"
)

func TestMemory(t *testing.T) {
	c := NewMemory[[]contree.File]()

	assert.False(t, c.Has("k"))
	_, ok := c.Get("k")
	assert.False(t, ok)

	files := []contree.File{{Pathname: "/a.png", Type: contree.TypeImage}}
	c.Set("k", files)
	assert.True(t, c.Has("k"))
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, files, got)

	c.Set("empty", []contree.File{})
	assert.True(t, c.Has("empty"), "empty results are cached too")
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestMemory_Concurrent(t *testing.T) {
	c := NewMemory[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set("shared", i)
			c.Get("shared")
			c.Has("shared")
		}(i)
	}
	wg.Wait()

	assert.True(t, c.Has("shared"))
}
