// Package effect defines the closed set of preview effects and the controller
// that tracks the selected effect and its intensity.
package effect

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownEffect is returned by Parse for names outside the effect table.
var ErrUnknownEffect = errors.New("unknown effect")

// Effect is one of the preview effects. None applies no filter.
type Effect int

const (
	None Effect = iota
	Chrome
	Sepia
	Marvin
	Phobos
	Heat
)

// Spec describes the CSS filter function behind an effect and the range of
// its intensity.
type Spec struct {
	Name        string
	CSSFunction string
	Min         float64
	Max         float64
	Step        float64
	Unit        string
}

var specs = [...]Spec{
	None:   {Name: "none"},
	Chrome: {Name: "chrome", CSSFunction: "grayscale", Min: 0, Max: 1, Step: 0.1},
	Sepia:  {Name: "sepia", CSSFunction: "sepia", Min: 0, Max: 100, Step: 1, Unit: "%"},
	Marvin: {Name: "marvin", CSSFunction: "invert", Min: 0, Max: 100, Step: 1, Unit: "%"},
	Phobos: {Name: "phobos", CSSFunction: "blur", Min: 0, Max: 3, Step: 0.1, Unit: "px"},
	Heat:   {Name: "heat", CSSFunction: "brightness", Min: 1, Max: 3, Step: 0.1},
}

// All returns every effect in display order, None first.
func All() []Effect {
	out := make([]Effect, len(specs))
	for i := range specs {
		out[i] = Effect(i)
	}
	return out
}

// Names returns the names of all effects in display order.
func Names() []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}

// Parse returns the effect with the given name (case-insensitive).
func Parse(name string) (Effect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, s := range specs {
		if s.Name == name {
			return Effect(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// Valid reports whether e is a member of the effect table.
func (e Effect) Valid() bool {
	return e >= 0 && int(e) < len(specs)
}

// Spec returns the table entry of e. Invalid values yield the None entry.
func (e Effect) Spec() Spec {
	if !e.Valid() {
		return specs[None]
	}
	return specs[e]
}

func (e Effect) String() string {
	return e.Spec().Name
}

// Clamp limits v to the spec's range.
func (s Spec) Clamp(v float64) float64 {
	return math.Min(s.Max, math.Max(s.Min, v))
}

// Decimals returns the number of fractional digits implied by Step.
func (s Spec) Decimals() int {
	str := strconv.FormatFloat(s.Step, 'f', -1, 64)
	if i := strings.IndexByte(str, '.'); i >= 0 {
		return len(str) - i - 1
	}
	return 0
}

// FormatValue renders v rounded to the step precision, e.g. "0.3" or "30".
func (s Spec) FormatValue(v float64) string {
	pow := math.Pow10(s.Decimals())
	return strconv.FormatFloat(math.Round(v*pow)/pow, 'f', -1, 64)
}

// Filter renders the CSS filter for intensity v, e.g. "sepia(30%)". The None
// spec renders an empty string.
func (s Spec) Filter(v float64) string {
	if s.CSSFunction == "" {
		return ""
	}
	return s.CSSFunction + "(" + s.FormatValue(v) + s.Unit + ")"
}
