// Package form provides the text fields of the upload dialog.
package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/pixpost/internal/core/styles"
)

// Field is the interface implemented by the dialog's text fields.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	SetValue(v string)
	Label() string

	// SetError shows msg under the field. An empty msg clears it.
	SetError(msg string)
	Error() string
}

// frame renders a labelled field body with the shared border and an optional
// error line. counter is shown next to the label when non-empty.
func frame(label, body, errMsg, counter string, focused bool) string {
	titleStyle := styles.FormTitleBlurredStyle
	if focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(label)
	if counter != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", styles.FormHelpStyle.Render(counter))
	}

	parts := []string{title, body}
	if errMsg != "" {
		parts = append(parts, styles.FormErrorStyle.Render(errMsg))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	switch {
	case errMsg != "":
		borderStyle = styles.FormFieldErrorStyle
	case focused:
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}
