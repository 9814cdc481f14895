// Package tui implements the interactive image upload program.
package tui

import (
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/filepicker"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/pixpost/internal/core/config"
	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/internal/core/logging"
	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/internal/core/upload"
	"github.com/colonyops/pixpost/internal/core/validate"
	"github.com/colonyops/pixpost/internal/tui/components/form"
	"github.com/colonyops/pixpost/internal/tui/components/slider"
	"github.com/colonyops/pixpost/pkg/utils"
)

// UIState represents the current screen of the TUI.
type UIState int

const (
	statePicking UIState = iota
	stateEditing
)

// focusTarget is a control of the upload dialog, in tab order.
type focusTarget int

const (
	focusHashtags focusTarget = iota
	focusDescription
	focusScale
	focusEffect
	focusIntensity
	focusSubmit
	focusCancel
	focusCount
)

const (
	fieldWidth    = 48
	pickerChrome  = 6
	defaultWidth  = 100
	defaultHeight = 30
)

// Options configures the TUI.
type Options struct {
	Submitter upload.Submitter
	// ConfigUpdates delivers reloaded configs. Optional.
	ConfigUpdates <-chan *config.Config
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg   *config.Config
	keys  keyMap
	state UIState
	log   zerolog.Logger

	width    int
	height   int
	showHelp bool
	quitting bool

	picker filepicker.Model

	dialog  *upload.Dialog
	session *upload.Session

	hashtags     *form.TextField
	description  *form.TextAreaField
	slider       *slider.Model
	effectCursor int
	focus        focusTarget

	spinner    spinner.Model
	submitting bool
	// refocus is set while a submission holds the text fields blurred.
	refocus bool

	toastController *ToastController
	toastView       *ToastView
	configUpdates   <-chan *config.Config
}

// UploadOptions derives the session limits from cfg.
func UploadOptions(cfg *config.Config) upload.Options {
	return upload.Options{
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		Limits:            cfg.FieldLimits(),
		Scale:             cfg.ScaleLimits(),
		Messages:          cfg.Messages(),
	}
}

var (
	exampleHashtags = []string{"#travel", "#sea", "#sunset", "#city", "#food", "#mountains", "#cat", "#дача"}

	exampleDescriptions = []string{
		"Say something about the image",
		"Where was this taken?",
		"What makes this shot special?",
	}
)

// hashtagPlaceholder suggests two example hashtags.
func hashtagPlaceholder() string {
	return strings.Join(utils.Shuffle(exampleHashtags)[:2], " ")
}

func descriptionPlaceholder() string {
	d, _ := utils.RandomElement(exampleDescriptions)
	return d
}

// New creates the TUI model.
func New(cfg *config.Config, opts Options) Model {
	return newModel(cfg, opts, NewToastController(cfg.TUI.ToastTTL))
}

// newModel builds the model around toasts, which also receives every
// session notification.
func newModel(cfg *config.Config, opts Options, toasts *ToastController) Model {
	log := logging.Component("tui")

	sl := slider.New()
	sl.SetWidth(fieldWidth - 8)

	m := Model{
		cfg:             cfg,
		keys:            defaultKeyMap(),
		state:           statePicking,
		log:             log,
		picker:          newPicker(cfg),
		hashtags:        form.NewTextField("Hashtags", hashtagPlaceholder(), fieldWidth),
		description:     form.NewTextAreaField("Description", descriptionPlaceholder(), fieldWidth, cfg.Upload.MaxDescriptionLength),
		slider:          sl,
		spinner:         spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.ColorPrimary))),
		toastController: toasts,
		toastView:       NewToastView(toasts),
		configUpdates:   opts.ConfigUpdates,
	}

	m.dialog = upload.NewDialog(UploadOptions(cfg), upload.Deps{
		Submitter: opts.Submitter,
		Notifier:  toasts,
		Slider:    sl,
		Logger:    log,
		OnEffect: func(st effect.State) {
			spec := st.Effect.Spec()
			sl.Format = func(v float64) string { return spec.FormatValue(v) + spec.Unit }
		},
	})

	return m
}

func newPicker(cfg *config.Config) filepicker.Model {
	fp := filepicker.New()
	fp.CurrentDirectory = cfg.TUI.StartDir
	if abs, err := filepath.Abs(fp.CurrentDirectory); err == nil {
		fp.CurrentDirectory = abs
	}
	fp.ShowSize = true
	fp.ShowPermissions = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	fp.SetHeight(defaultHeight - pickerChrome)

	st := filepicker.DefaultStyles()
	st.Cursor = st.Cursor.Foreground(styles.ColorPrimary)
	st.Selected = st.Selected.Foreground(styles.ColorPrimary)
	st.Directory = st.Directory.Foreground(styles.ColorSecondary)
	st.File = st.File.Foreground(styles.ColorForeground)
	fp.Styles = st
	return fp
}

// Init starts reading the picker directory and listening for config reloads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), waitForConfig(m.configUpdates))
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m, cmd = m.handleWindowSize(msg)
	case toastTickMsg:
		m, cmd = m.handleToastTick()
	case submitResultMsg:
		m, cmd = m.handleSubmitResult(msg)
	case configReloadedMsg:
		m, cmd = m.handleConfigReloaded(msg)
	case spinner.TickMsg:
		if m.submitting {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	case tea.KeyPressMsg:
		m, cmd = m.handleKey(msg)
	default:
		m, cmd = m.forward(msg)
	}

	var syncCmd tea.Cmd
	m, syncCmd = m.syncSession()
	return m, tea.Batch(cmd, syncCmd, m.ensureToastTick())
}

// forward passes messages the model does not handle itself, like directory
// listings and cursor blinks, to the active widgets.
func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)

	if m.state == stateEditing {
		_, cmd = m.hashtags.Update(msg)
		cmds = append(cmds, cmd)
		_, cmd = m.description.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// syncSession returns to the picker once the live session has closed, which
// happens on cancel or when the success toast closes. A session that went back
// to Open after a failed submission gets its focused control back.
func (m Model) syncSession() (Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}

	if m.dialog.Current() != nil {
		if m.refocus && m.session.State() == upload.StateOpen {
			m.refocus = false
			return m, m.setFocus(m.focus)
		}
		return m, nil
	}

	m.log.Debug().Str("upload_id", m.session.ID()).Msg("dialog closed")
	m.session = nil
	m.submitting = false
	m.refocus = false
	m.state = statePicking
	m.resetControls()
	return m, nil
}

// resetControls clears the widgets of the dialog.
func (m *Model) resetControls() {
	m.hashtags.SetValue("")
	m.hashtags.SetError("")
	m.hashtags.SetPlaceholder(hashtagPlaceholder())
	m.hashtags.Blur()
	m.description.SetValue("")
	m.description.SetError("")
	m.description.SetPlaceholder(descriptionPlaceholder())
	m.description.Blur()
	m.slider.Blur()
	m.effectCursor = 0
	m.focus = focusHashtags
}

// ensureToastTick starts the expiry timer when toasts are visible and no
// tick is pending.
func (m Model) ensureToastTick() tea.Cmd {
	if !m.toastController.HasToasts() || m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

// inTextField reports whether keyboard focus is in one of the text fields.
func (m Model) inTextField() bool {
	return m.focus == focusHashtags || m.focus == focusDescription
}

// fieldErrors copies the session's per-field messages onto the widgets.
func (m *Model) fieldErrors() {
	if m.session == nil {
		return
	}
	m.hashtags.SetError(m.session.FieldError(validate.FieldHashtags))
	m.description.SetError(m.session.FieldError(validate.FieldDescription))
}
