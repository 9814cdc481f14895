package form

import (
	"fmt"
	"unicode/utf8"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextAreaField is a multi-line text input form field. When limit is positive
// a "n/limit" counter is shown next to the label.
type TextAreaField struct {
	input   textarea.Model
	label   string
	limit   int
	err     string
	focused bool
}

// NewTextAreaField creates a new multi-line text input field.
func NewTextAreaField(label, placeholder string, width, limit int) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(width)

	return &TextAreaField{
		input: ta,
		label: label,
		limit: limit,
	}
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextAreaField) View() string {
	return frame(f.label, f.input.View(), f.err, f.counter(), f.focused)
}

func (f *TextAreaField) counter() string {
	if f.limit <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", utf8.RuneCountInString(f.input.Value()), f.limit)
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

// SetLimit changes the length shown in the counter. Zero hides it.
func (f *TextAreaField) SetLimit(limit int) { f.limit = limit }

// SetWidth resizes the input.
func (f *TextAreaField) SetWidth(w int) { f.input.SetWidth(w) }

func (f *TextAreaField) SetPlaceholder(p string) { f.input.Placeholder = p }

func (f *TextAreaField) Focused() bool       { return f.focused }
func (f *TextAreaField) Value() string       { return f.input.Value() }
func (f *TextAreaField) SetValue(v string)   { f.input.SetValue(v) }
func (f *TextAreaField) Label() string       { return f.label }
func (f *TextAreaField) SetError(msg string) { f.err = msg }
func (f *TextAreaField) Error() string       { return f.err }
