// Package scale implements the zoom control of the upload preview.
package scale

import (
	"fmt"
	"strconv"
)

// Limits bounds the zoom percentage.
type Limits struct {
	Min  int
	Max  int
	Step int
}

// DefaultLimits returns 25..100 in steps of 25.
func DefaultLimits() Limits {
	return Limits{Min: 25, Max: 100, Step: 25}
}

// Controller holds the current zoom percentage. Every mutation reports the
// new value through onChange.
type Controller struct {
	limits   Limits
	value    int
	onChange func(int)
}

// New creates a controller at limits.Max. onChange may be nil.
func New(limits Limits, onChange func(int)) *Controller {
	return &Controller{
		limits:   limits,
		value:    limits.Max,
		onChange: onChange,
	}
}

// Value returns the current percentage.
func (c *Controller) Value() int { return c.value }

// Limits returns the configured bounds.
func (c *Controller) Limits() Limits { return c.limits }

// Decrement lowers the value by one step, clamped at Min.
func (c *Controller) Decrement() {
	c.set(max(c.limits.Min, c.value-c.limits.Step))
}

// Increment raises the value by one step, clamped at Max.
func (c *Controller) Increment() {
	c.set(min(c.limits.Max, c.value+c.limits.Step))
}

// Reset restores Max.
func (c *Controller) Reset() {
	c.set(c.limits.Max)
}

func (c *Controller) set(v int) {
	c.value = v
	if c.onChange != nil {
		c.onChange(v)
	}
}

// Label renders a percentage as shown next to the controls, e.g. "75%".
func Label(v int) string {
	return strconv.Itoa(v) + "%"
}

// Transform renders a percentage as a CSS transform, e.g. "scale(0.75)".
func Transform(v int) string {
	return fmt.Sprintf("scale(%s)", strconv.FormatFloat(float64(v)/100, 'f', -1, 64))
}
