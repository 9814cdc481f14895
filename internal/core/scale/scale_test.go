package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestController_DecrementClampsAtMin(t *testing.T) {
	var seen []int
	c := New(DefaultLimits(), func(v int) { seen = append(seen, v) })
	assert.Equal(t, 100, c.Value())

	for range 4 {
		c.Decrement()
	}

	assert.Equal(t, []int{75, 50, 25, 25}, seen)
	assert.Equal(t, 25, c.Value())
}

func TestController_IncrementClampsAtMax(t *testing.T) {
	var seen []int
	c := New(DefaultLimits(), func(v int) { seen = append(seen, v) })

	c.Increment()
	assert.Equal(t, 100, c.Value())

	c.Decrement()
	c.Decrement()
	c.Increment()

	assert.Equal(t, []int{100, 75, 50, 75}, seen)
}

func TestController_Reset(t *testing.T) {
	calls := 0
	c := New(Limits{Min: 10, Max: 50, Step: 20}, func(int) { calls++ })

	c.Decrement()
	c.Decrement()
	assert.Equal(t, 10, c.Value())

	c.Reset()
	assert.Equal(t, 50, c.Value())
	assert.Equal(t, 3, calls, "reset also reports the value")
}

func TestController_NilCallback(t *testing.T) {
	c := New(DefaultLimits(), nil)
	assert.NotPanics(t, func() {
		c.Decrement()
		c.Increment()
		c.Reset()
	})
}

func TestLabelAndTransform(t *testing.T) {
	tests := []struct {
		value     int
		label     string
		transform string
	}{
		{100, "100%", "scale(1)"},
		{75, "75%", "scale(0.75)"},
		{50, "50%", "scale(0.5)"},
		{25, "25%", "scale(0.25)"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, Label(tt.value))
			assert.Equal(t, tt.transform, Transform(tt.value))
		})
	}
}
