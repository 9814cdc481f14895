package tui

import (
	"image/color"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/pkg/kv"
)

// previewPalette stands in for image pixels. The terminal cannot show the
// picture itself, so the preview applies the effect to these swatches.
var previewPalette = []colorful.Color{
	{R: 0.88, G: 0.42, B: 0.46},
	{R: 0.90, G: 0.75, B: 0.48},
	{R: 0.60, G: 0.76, B: 0.47},
	{R: 0.34, G: 0.71, B: 0.76},
	{R: 0.38, G: 0.69, B: 0.94},
	{R: 0.78, G: 0.47, B: 0.87},
}

// applyEffect approximates the CSS filter of st on c.
func applyEffect(c colorful.Color, st effect.State, avg colorful.Color) colorful.Color {
	spec := st.Effect.Spec()
	v := spec.Clamp(st.Intensity)

	switch st.Effect {
	case effect.Chrome:
		l := 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
		return c.BlendRgb(colorful.Color{R: l, G: l, B: l}, v).Clamped()
	case effect.Sepia:
		sepia := colorful.Color{
			R: 0.393*c.R + 0.769*c.G + 0.189*c.B,
			G: 0.349*c.R + 0.686*c.G + 0.168*c.B,
			B: 0.272*c.R + 0.534*c.G + 0.131*c.B,
		}
		return c.BlendRgb(sepia.Clamped(), v/100).Clamped()
	case effect.Marvin:
		inv := colorful.Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B}
		return c.BlendRgb(inv, v/100).Clamped()
	case effect.Phobos:
		// Blur has no per-pixel equivalent; wash the swatch toward the mean.
		return c.BlendRgb(avg, v/spec.Max*0.8).Clamped()
	case effect.Heat:
		return colorful.Color{R: c.R * v, G: c.G * v, B: c.B * v}.Clamped()
	default:
		return c
	}
}

func paletteMean() colorful.Color {
	var r, g, b float64
	for _, c := range previewPalette {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(previewPalette))
	return colorful.Color{R: r / n, G: g / n, B: b / n}
}

// previewColors returns the swatch colors with st applied.
func previewColors(st effect.State) []color.Color {
	avg := paletteMean()
	out := make([]color.Color, len(previewPalette))
	for i, c := range previewPalette {
		out[i] = lipgloss.Color(applyEffect(c, st, avg).Hex())
	}
	return out
}

type swatchKey struct {
	effect    effect.Effect
	intensity float64
	width     int
	height    int
}

// swatches memoizes rendered swatches; the effect row redraws six of them
// on every frame.
var swatches = kv.New[swatchKey, string](256)

// renderSwatch draws a width x height block cycling through the preview
// colors column by column.
func renderSwatch(st effect.State, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	key := swatchKey{effect: st.Effect, intensity: st.Intensity, width: width, height: height}
	return swatches.GetOrCompute(key, func() string { return drawSwatch(st, width, height) })
}

func drawSwatch(st effect.State, width, height int) string {
	colors := previewColors(st)

	var row strings.Builder
	for x := range width {
		c := colors[x*len(colors)/width]
		row.WriteString(lipgloss.NewStyle().Foreground(c).Render("█"))
	}

	line := row.String()
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
