// Package components provides reusable TUI components.
package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/pixpost/internal/core/styles"
)

const helpKeyWidth = 14

// HelpSection groups key bindings under a title.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpDialog lists the active key bindings.
type HelpDialog struct {
	title    string
	sections []HelpSection
}

// NewHelpDialog creates a help dialog from the given sections. Disabled
// bindings are skipped when rendering.
func NewHelpDialog(title string, sections ...HelpSection) *HelpDialog {
	return &HelpDialog{title: title, sections: sections}
}

// View renders the dialog.
func (h *HelpDialog) View() string {
	keyStyle := lipgloss.NewStyle().Width(helpKeyWidth).Bold(true).Foreground(styles.ColorPrimary)
	descStyle := lipgloss.NewStyle().Foreground(styles.ColorForeground)

	var lines []string
	for i, section := range h.sections {
		if section.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, styles.FormTitleStyle.Render(section.Title))
		}
		for _, b := range section.Bindings {
			if !b.Enabled() {
				continue
			}
			hk := b.Help()
			lines = append(lines, keyStyle.Render(hk.Key)+descStyle.Render(hk.Desc))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.DialogTitleStyle.Render(h.title),
		"",
		strings.Join(lines, "\n"),
		styles.DialogHelpStyle.Render("esc/? close"),
	)

	return styles.DialogStyle.Render(content)
}

// Overlay renders the dialog centered over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return Center(background, h.View(), width, height)
}

// Center composites fg centered over bg.
func Center(bg, fg string, width, height int) string {
	bgLayer := lipgloss.NewLayer(bg)
	fgLayer := lipgloss.NewLayer(fg)

	x := max((width-lipgloss.Width(fg))/2, 0)
	y := max((height-lipgloss.Height(fg))/2, 0)
	fgLayer.X(x).Y(y).Z(1)

	return lipgloss.NewCompositor(bgLayer, fgLayer).Render()
}
