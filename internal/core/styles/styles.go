// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"

	"github.com/colonyops/pixpost/internal/core/notify"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style
	OKStyle            lipgloss.Style
	FailStyle          lipgloss.Style

	// Dialog.
	DialogStyle      lipgloss.Style
	DialogTitleStyle lipgloss.Style
	DialogHelpStyle  lipgloss.Style
	PreviewStyle     lipgloss.Style
	PreviewFileStyle lipgloss.Style

	ButtonStyle         lipgloss.Style
	ButtonFocusedStyle  lipgloss.Style
	ButtonDisabledStyle lipgloss.Style

	// Effect picker chips.
	EffectChipStyle        lipgloss.Style
	EffectChipActiveStyle  lipgloss.Style
	EffectChipFocusedStyle lipgloss.Style

	// Slider.
	SliderTrackStyle lipgloss.Style
	SliderThumbStyle lipgloss.Style
	SliderValueStyle lipgloss.Style

	// Form fields.
	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormFieldErrorStyle   lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style

	// Toasts.
	ToastStyle lipgloss.Style

	// Picker.
	PickerTitleStyle lipgloss.Style
	PickerHintStyle  lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	OKStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	FailStyle = lipgloss.NewStyle().Foreground(ColorError)

	DialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	DialogTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	DialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	PreviewStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorSurface).
		Foreground(ColorForeground).
		Align(lipgloss.Center, lipgloss.Center)
	PreviewFileStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorForeground)
	ButtonFocusedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	ButtonDisabledStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted).
		Strikethrough(true)

	EffectChipStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorMuted)
	EffectChipActiveStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorSecondary).
		Bold(true)
	EffectChipFocusedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorPrimary).
		Bold(true)

	SliderTrackStyle = lipgloss.NewStyle().Foreground(ColorSurface)
	SliderThumbStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	SliderValueStyle = lipgloss.NewStyle().Foreground(ColorSecondary)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = FormFieldStyle.
		BorderForeground(ColorPrimary)
	FormFieldErrorStyle = FormFieldStyle.
		BorderForeground(ColorError)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(ColorForeground)

	PickerTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	PickerHintStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}

// LevelColor returns the accent color for a notification level.
func LevelColor(level notify.Level) color.Color {
	switch level {
	case notify.LevelSuccess:
		return ColorSuccess
	case notify.LevelWarning:
		return ColorWarning
	case notify.LevelError:
		return ColorError
	default:
		return ColorPrimary
	}
}

// LevelIcon returns the glyph shown in front of a notification.
func LevelIcon(level notify.Level) string {
	switch level {
	case notify.LevelSuccess:
		return IconCheck
	case notify.LevelWarning:
		return IconWarning
	case notify.LevelError:
		return IconCross
	default:
		return IconInfo
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)
	surface := colorHexPtr(ColorSurface)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	return cfg
}
