package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebounce_CollapsesBurst(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []int
		done  = make(chan struct{}, 1)
	)

	d := Debounce(func(v int) {
		mu.Lock()
		calls = append(calls, v)
		mu.Unlock()
		done <- struct{}{}
	}, 20*time.Millisecond)

	for i := range 5 {
		d.Call(i)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced function was not called")
	}

	// Give a stray second call a chance to show up.
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{4}, calls)
}

func TestDebounce_Stop(t *testing.T) {
	called := make(chan struct{}, 1)
	d := Debounce(func(struct{}) { called <- struct{}{} }, 10*time.Millisecond)

	d.Call(struct{}{})
	d.Stop()

	select {
	case <-called:
		t.Fatal("stopped debouncer should not fire")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebounce_DefaultInterval(t *testing.T) {
	d := Debounce(func(int) {}, 0)
	assert.Equal(t, DefaultDebounceDelay, d.interval)
}
