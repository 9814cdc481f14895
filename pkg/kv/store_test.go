package kv

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int](0)

	s.Set("foo", 42)
	val, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestStore_ClearsWhenFull(t *testing.T) {
	s := New[int, int](2)
	s.Set(1, 1)
	s.Set(2, 2)

	// overwriting an existing key does not count as an insert
	s.Set(2, 20)
	assert.Equal(t, 2, s.Len())

	s.Set(3, 3)
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(1)
	assert.False(t, ok)
	v, ok := s.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestStore_GetOrCompute(t *testing.T) {
	s := New[string, string](0)
	calls := 0
	compute := func() string {
		calls++
		return "value"
	}

	assert.Equal(t, "value", s.GetOrCompute("k", compute))
	assert.Equal(t, "value", s.GetOrCompute("k", compute))
	assert.Equal(t, 1, calls)
}

func TestStore_Clear(t *testing.T) {
	s := New[string, int](0)
	s.Set("a", 1)
	s.Set("b", 2)

	s.Clear()

	assert.Equal(t, 0, s.Len())
}

func TestStore_Concurrent(t *testing.T) {
	s := New[int, int](0)
	var computed atomic.Int32

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.GetOrCompute(i%10, func() int {
				computed.Add(1)
				return i % 10
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
	assert.GreaterOrEqual(t, int(computed.Load()), 10)
	for k := range 10 {
		v, ok := s.Get(k)
		assert.True(t, ok)
		assert.Equal(t, k, v)
	}
}
