package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/internal/core/scale"
	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/internal/core/upload"
	"github.com/colonyops/pixpost/internal/tui/components"
)

const (
	previewMaxWidth  = 32
	previewMaxHeight = 8
	chipSwatchWidth  = 2
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	var content string
	if m.state == stateEditing && m.session != nil {
		content = m.renderDialog()
	} else {
		content = m.renderPicker()
	}
	content = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)

	if m.showHelp {
		content = m.helpDialog().Overlay(content, w, h)
	}
	content = m.toastView.Overlay(content, w, h)

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) renderPicker() string {
	exts := strings.Join(m.dialog.Options().AllowedExtensions, " ")
	title := styles.PickerTitleStyle.Render(styles.IconImage + " Choose an image")
	hint := styles.PickerHintStyle.Render(fmt.Sprintf("%s  ·  %s  ·  enter select · q quit · ? help", m.picker.CurrentDirectory, exts))

	return lipgloss.JoinVertical(lipgloss.Left, title, m.picker.View(), hint)
}

func (m Model) renderDialog() string {
	s := m.session

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderPreview(s),
		"",
		m.renderScale(s),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.hashtags.View(),
		"",
		m.description.View(),
		"",
		m.renderEffects(s),
		m.renderIntensity(s),
		"",
		m.renderButtons(s),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
	title := styles.DialogTitleStyle.Render(styles.IconImage + " New post")
	help := styles.DialogHelpStyle.Render("tab next · ←/→ adjust · ctrl+s publish · esc close · ? help")

	return styles.DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, help))
}

// renderPreview draws the image stand-in sized by the zoom scale and tinted
// by the active effect.
func (m Model) renderPreview(s *upload.Session) string {
	pct := s.Scale()
	w := max(previewMaxWidth*pct/100, 1)
	h := max(previewMaxHeight*pct/100, 1)

	fx := s.Effect()
	swatch := lipgloss.Place(previewMaxWidth, previewMaxHeight, lipgloss.Center, lipgloss.Center, renderSwatch(fx, w, h))

	file := s.File()
	name := styles.PreviewFileStyle.Render(file.Name)
	meta := []string{scale.Transform(pct)}
	if file.Size > 0 {
		meta = append([]string{humanize.Bytes(uint64(file.Size))}, meta...)
	}
	if fx.Filter != "" {
		meta = append(meta, "filter: "+fx.Filter)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.PreviewStyle.Render(swatch),
		name,
		styles.FormHelpStyle.Render(strings.Join(meta, " · ")),
	)
}

func (m Model) renderScale(s *upload.Session) string {
	label := styles.FormTitleBlurredStyle
	if m.focus == focusScale {
		label = styles.FormTitleStyle
	}
	lim := s.ScaleLimits()
	value := s.Scale()

	smaller := styles.ButtonStyle.Render("−")
	bigger := styles.ButtonStyle.Render("+")
	if value <= lim.Min {
		smaller = styles.ButtonDisabledStyle.Render("−")
	}
	if value >= lim.Max {
		bigger = styles.ButtonDisabledStyle.Render("+")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		label.Render(styles.IconScale+" Scale "),
		smaller,
		styles.SliderValueStyle.Render(" "+scale.Label(value)+" "),
		bigger,
	)
}

// renderEffects draws one chip per effect, each with a small swatch showing
// that effect at full intensity.
func (m Model) renderEffects(s *upload.Session) string {
	active := s.Effect().Effect
	label := styles.FormTitleBlurredStyle
	if m.focus == focusEffect {
		label = styles.FormTitleStyle
	}

	chips := make([]string, 0, len(effect.All()))
	for i, e := range effect.All() {
		style := styles.EffectChipStyle
		switch {
		case m.focus == focusEffect && i == m.effectCursor:
			style = styles.EffectChipFocusedStyle
		case e == active:
			style = styles.EffectChipActiveStyle
		}

		spec := e.Spec()
		swatch := renderSwatch(effect.State{Effect: e, Intensity: spec.Max}, chipSwatchWidth, 1)
		chips = append(chips, style.Render(swatch+" "+spec.Name))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		label.Render(styles.IconEffect+" Effect"),
		lipgloss.JoinHorizontal(lipgloss.Top, chips...),
	)
}

func (m Model) renderIntensity(s *upload.Session) string {
	if !s.Effect().IntensityVisible() {
		return ""
	}
	label := styles.FormTitleBlurredStyle
	if m.focus == focusIntensity {
		label = styles.FormTitleStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, label.Render("Intensity "), m.slider.View())
}

func (m Model) renderButtons(s *upload.Session) string {
	submitLabel := "Publish"
	if m.submitting {
		submitLabel = m.spinner.View() + " Publishing"
	}

	submit := styles.ButtonStyle
	switch {
	case s.SubmitBlocked() || s.State() != upload.StateOpen:
		submit = styles.ButtonDisabledStyle
	case m.focus == focusSubmit:
		submit = styles.ButtonFocusedStyle
	}

	cancel := styles.ButtonStyle
	if m.focus == focusCancel {
		cancel = styles.ButtonFocusedStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, submit.Render(submitLabel), "  ", cancel.Render("Cancel"))
}

func (m Model) helpDialog() *components.HelpDialog {
	k := m.keys
	return components.NewHelpDialog("Keys",
		components.HelpSection{Title: "Picker", Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open image")),
			key.NewBinding(key.WithKeys("h"), key.WithHelp("h/←", "parent directory")),
			k.Quit,
		}},
		components.HelpSection{Title: "Upload dialog", Bindings: []key.Binding{
			k.Next, k.Prev, k.Left, k.Right, k.Confirm, k.Submit, k.Escape,
		}},
		components.HelpSection{Bindings: []key.Binding{k.Help, k.ForceQuit}},
	)
}
