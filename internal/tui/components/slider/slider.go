// Package slider provides a horizontal range control rendered with a color
// gradient track.
package slider

import (
	"math"
	"strconv"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/pixpost/internal/core/styles"
)

const (
	defaultWidth = 24
	thumbGlyph   = "●"
	trackGlyph   = "━"
)

// Model is a range slider. It satisfies effect.Slider so the effect controller
// can reconfigure it when the active effect changes.
type Model struct {
	min, max, step float64
	value          float64
	width          int
	focused        bool

	// Format renders the value label. Defaults to at most two decimals.
	Format func(float64) string
}

// New creates a slider over [0,1] with a step of 0.1.
func New() *Model {
	return &Model{min: 0, max: 1, step: 0.1, width: defaultWidth}
}

// Configure sets the range and step, clamping the current value into the new
// range.
func (m *Model) Configure(lo, hi, step float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	m.min, m.max = lo, hi
	if step <= 0 {
		step = (hi - lo) / 10
	}
	m.step = step
	m.value = m.clamp(m.value)
}

// Set moves the thumb to v, clamped to the range.
func (m *Model) Set(v float64) { m.value = m.clamp(v) }

// Value returns the current value.
func (m *Model) Value() float64 { return m.value }

// Min returns the lower bound.
func (m *Model) Min() float64 { return m.min }

// Max returns the upper bound.
func (m *Model) Max() float64 { return m.max }

// Increase moves one step up and returns the new value.
func (m *Model) Increase() float64 {
	m.value = m.snap(m.value + m.step)
	return m.value
}

// Decrease moves one step down and returns the new value.
func (m *Model) Decrease() float64 {
	m.value = m.snap(m.value - m.step)
	return m.value
}

func (m *Model) Focus()        { m.focused = true }
func (m *Model) Blur()         { m.focused = false }
func (m *Model) Focused() bool { return m.focused }

// SetWidth sets the track width in cells.
func (m *Model) SetWidth(w int) {
	if w > 2 {
		m.width = w
	}
}

func (m *Model) clamp(v float64) float64 {
	return math.Min(m.max, math.Max(m.min, v))
}

// snap rounds to the nearest step from min so repeated float additions do
// not drift.
func (m *Model) snap(v float64) float64 {
	v = m.clamp(v)
	if m.step <= 0 {
		return v
	}
	steps := math.Round((v - m.min) / m.step)
	return m.clamp(m.min + steps*m.step)
}

// position returns the thumb cell index on the track.
func (m *Model) position() int {
	span := m.max - m.min
	if span <= 0 {
		return 0
	}
	return int(math.Round((m.value - m.min) / span * float64(m.width-1)))
}

func (m *Model) label() string {
	if m.Format != nil {
		return m.Format(m.value)
	}
	return strconv.FormatFloat(math.Round(m.value*100)/100, 'f', -1, 64)
}

// View renders the track, thumb and value label.
func (m *Model) View() string {
	pos := m.position()
	colors := styles.Gradient(styles.ColorSecondary, styles.ColorPrimary, m.width)

	var b strings.Builder
	for i := range m.width {
		if i == pos {
			thumb := styles.SliderThumbStyle
			if m.focused {
				thumb = thumb.Foreground(styles.ColorPrimary)
			}
			b.WriteString(thumb.Render(thumbGlyph))
			continue
		}
		if i < pos {
			b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render(trackGlyph))
			continue
		}
		b.WriteString(styles.SliderTrackStyle.Render(trackGlyph))
	}

	return b.String() + " " + styles.SliderValueStyle.Render(m.label())
}
