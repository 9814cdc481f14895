package tui

import (
	"errors"
	"os"
	"path/filepath"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/pixpost/internal/core/config"
	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/internal/core/notify"
	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/internal/core/upload"
)

// submitResultMsg carries the outcome of a submission started by a session.
type submitResultMsg struct {
	sessionID string
	err       error
}

// configReloadedMsg carries a config delivered by the watcher.
type configReloadedMsg struct {
	cfg *config.Config
}

func waitForSubmit(sessionID string, pending <-chan error) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{sessionID: sessionID, err: <-pending}
	}
}

func waitForConfig(updates <-chan *config.Config) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.picker.SetHeight(max(msg.Height-pickerChrome, 3))

	w := min(fieldWidth, max(msg.Width-12, 20))
	m.hashtags.SetWidth(w)
	m.description.SetWidth(w)
	m.slider.SetWidth(w - 8)
	return m, nil
}

func (m Model) handleToastTick() (Model, tea.Cmd) {
	m.toastController.SetTicking(false)
	m.toastController.Expire()
	return m, nil
}

func (m Model) handleSubmitResult(msg submitResultMsg) (Model, tea.Cmd) {
	m.submitting = false
	if m.session == nil || m.session.ID() != msg.sessionID {
		m.log.Debug().Str("upload_id", msg.sessionID).Msg("submission result for closed dialog")
		return m, nil
	}
	m.session.Complete(msg.err)
	return m, nil
}

func (m Model) handleConfigReloaded(msg configReloadedMsg) (Model, tea.Cmd) {
	cfg := msg.cfg
	m.cfg = cfg
	m.dialog.SetOptions(UploadOptions(cfg))
	m.toastController.SetTTL(cfg.TUI.ToastTTL)
	if p, ok := styles.GetPalette(cfg.TUI.Theme); ok {
		styles.SetTheme(p)
	}
	if m.session == nil {
		m.description.SetLimit(cfg.Upload.MaxDescriptionLength)
	}

	m.log.Info().Msg("config reloaded")
	m.toastController.Notify(notify.LevelInfo, "configuration reloaded", nil)
	return m, waitForConfig(m.configUpdates)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.state == stateEditing {
		return m.handleDialogKey(msg)
	}
	return m.handlePickerKey(msg)
}

func (m Model) quit() (Model, tea.Cmd) {
	if m.session != nil {
		m.session.Close()
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) handlePickerKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape) && m.toastController.HasToasts():
		m.toastController.Dismiss()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		var openCmd tea.Cmd
		m, openCmd = m.openFile(path)
		return m, tea.Batch(cmd, openCmd)
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.toastController.Notify(notify.LevelWarning, filepath.Base(path)+" cannot be selected", nil)
	}
	return m, cmd
}

// openFile opens an upload session for path. Rejected files leave the picker
// in place and show an error toast.
func (m Model) openFile(path string) (Model, tea.Cmd) {
	file := upload.File{Name: filepath.Base(path), Path: path}
	if info, err := os.Stat(path); err == nil {
		file.Size = info.Size()
	}

	sess, err := m.dialog.Open([]upload.File{file})
	if err != nil {
		m.log.Warn().Err(err).Str("file", file.Name).Msg("cannot open upload dialog")
		m.toastController.Notify(notify.LevelError, openErrorMessage(err, file.Name), nil)
		return m, nil
	}

	m.session = sess
	m.state = stateEditing
	m.resetControls()
	m.description.SetLimit(m.dialog.Options().Limits.MaxDescriptionLength)
	return m, m.hashtags.Focus()
}

func openErrorMessage(err error, name string) string {
	switch {
	case errors.Is(err, upload.ErrUnsupportedExtension):
		return "unsupported file type: " + name
	case errors.Is(err, upload.ErrSessionOpen):
		return "an upload is already in progress"
	default:
		return err.Error()
	}
}

func (m Model) handleDialogKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	// The outcome toast is still up; the session waits for it to close.
	if m.session.State() == upload.StateSubmitting {
		if key.Matches(msg, m.keys.Confirm, m.keys.Escape) {
			m.toastController.Dismiss()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Escape):
		r := m.session.Dispatch(upload.EventKeyEscape, upload.Input{InTextField: m.inTextField()})
		if r.Closed {
			m.log.Debug().Msg("dialog closed with escape")
		}
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	}

	if m.inTextField() {
		return m.handleTextKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Left):
		return m.adjust(-1)
	case key.Matches(msg, m.keys.Right):
		return m.adjust(1)
	case key.Matches(msg, m.keys.Confirm):
		return m.press()
	}
	return m, nil
}

// handleTextKey edits the focused text field and reports the new value to
// the session.
func (m Model) handleTextKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	if m.focus == focusHashtags && key.Matches(msg, m.keys.Confirm) {
		return m, m.moveFocus(1)
	}

	var (
		cmd    tea.Cmd
		before string
		after  string
		event  upload.Event
	)
	if m.focus == focusHashtags {
		before = m.hashtags.Value()
		_, cmd = m.hashtags.Update(msg)
		after = m.hashtags.Value()
		event = upload.EventHashtagsInput
	} else {
		before = m.description.Value()
		_, cmd = m.description.Update(msg)
		after = m.description.Value()
		event = upload.EventDescriptionInput
	}

	if after != before {
		m.session.Dispatch(event, upload.Input{Text: after, InTextField: true})
		m.fieldErrors()
	}
	return m, cmd
}

// adjust handles left/right on the non-text controls.
func (m Model) adjust(dir int) (Model, tea.Cmd) {
	switch m.focus {
	case focusScale:
		if dir < 0 {
			m.session.Dispatch(upload.EventScaleSmaller, upload.Input{})
		} else {
			m.session.Dispatch(upload.EventScaleBigger, upload.Input{})
		}
	case focusEffect:
		effects := effect.All()
		m.effectCursor = (m.effectCursor + dir + len(effects)) % len(effects)
		m.session.Dispatch(upload.EventEffectChoice, upload.Input{Effect: effects[m.effectCursor]})
	case focusIntensity:
		var v float64
		if dir < 0 {
			v = m.slider.Decrease()
		} else {
			v = m.slider.Increase()
		}
		m.session.Dispatch(upload.EventIntensityUpdate, upload.Input{Value: v})
	case focusSubmit, focusCancel:
		if m.focus == focusSubmit {
			m.focus = focusCancel
		} else {
			m.focus = focusSubmit
		}
	}
	return m, nil
}

// press handles enter on the buttons and the effect chips.
func (m Model) press() (Model, tea.Cmd) {
	switch m.focus {
	case focusSubmit:
		return m.submit()
	case focusCancel:
		m.session.Dispatch(upload.EventCancel, upload.Input{})
	case focusEffect:
		return m, m.moveFocus(1)
	}
	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	r := m.session.Dispatch(upload.EventSubmit, upload.Input{})
	switch {
	case errors.Is(r.Err, upload.ErrInvalidFields):
		m.fieldErrors()
		return m, nil
	case r.Err != nil:
		m.log.Debug().Err(r.Err).Msg("submit rejected")
		return m, nil
	case r.Pending == nil:
		return m, nil
	}

	m.submitting = true
	m.refocus = true
	m.hashtags.Blur()
	m.description.Blur()
	return m, tea.Batch(waitForSubmit(m.session.ID(), r.Pending), m.spinner.Tick)
}

// moveFocus advances keyboard focus by dir, skipping the intensity slider
// while no effect is active.
func (m *Model) moveFocus(dir int) tea.Cmd {
	next := m.focus
	for {
		next = (next + focusTarget(dir) + focusCount) % focusCount
		if next != focusIntensity || m.session.Effect().IntensityVisible() {
			break
		}
	}
	return m.setFocus(next)
}

func (m *Model) setFocus(f focusTarget) tea.Cmd {
	m.focus = f
	m.hashtags.Blur()
	m.description.Blur()
	m.slider.Blur()

	switch f {
	case focusHashtags:
		return m.hashtags.Focus()
	case focusDescription:
		return m.description.Focus()
	case focusIntensity:
		m.slider.Focus()
	}
	return nil
}
