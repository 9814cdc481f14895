package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// FormTheme returns a huh theme using the active palette. huh still renders
// with lipgloss v1, so palette colors are converted by hex value.
func FormTheme() *huh.Theme {
	t := huh.ThemeCharm()

	primary := v1Color(ColorPrimary)
	secondary := v1Color(ColorSecondary)
	muted := v1Color(ColorMuted)
	failure := v1Color(ColorError)

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(failure)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(failure)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(secondary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(secondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)

	t.Blurred.Title = t.Blurred.Title.Foreground(muted)
	t.Blurred.Description = t.Blurred.Description.Foreground(muted)

	return t
}

func v1Color(c color.Color) lipglossv1.Color {
	if hex := colorHexPtr(c); hex != nil {
		return lipglossv1.Color(*hex)
	}
	return lipglossv1.Color("")
}
