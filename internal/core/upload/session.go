// Package upload implements the lifecycle of the upload dialog: opening a
// session for a picked file, binding the dialog controls, validating the
// fields, submitting and tearing everything down again.
package upload

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/internal/core/logging"
	"github.com/colonyops/pixpost/internal/core/notify"
	"github.com/colonyops/pixpost/internal/core/scale"
	"github.com/colonyops/pixpost/internal/core/validate"
)

// State is the lifecycle state of a session.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Options are the limits a session is opened with.
type Options struct {
	AllowedExtensions []string
	Limits            validate.Limits
	Scale             scale.Limits
	Messages          validate.Messages
}

// DefaultOptions returns the stock limits with English messages.
func DefaultOptions() Options {
	limits := validate.DefaultLimits()
	return Options{
		AllowedExtensions: []string{".jpg", ".jpeg", ".png"},
		Limits:            limits,
		Scale:             scale.DefaultLimits(),
		Messages:          validate.MessagesFor(validate.LocaleEN, limits),
	}
}

// Deps are the collaborators of a session. Submitter and Notifier are
// required; the rest may be left zero.
type Deps struct {
	Submitter Submitter
	Notifier  notify.Notifier
	Slider    effect.Slider
	Logger    zerolog.Logger

	// OnScale and OnEffect render the preview after every change.
	OnScale  func(value int)
	OnEffect func(state effect.State)

	Now func() time.Time
}

// Session is one open-to-close cycle of the upload dialog.
type Session struct {
	id    string
	file  File
	state State

	opts Options
	deps Deps
	log  zerolog.Logger

	form     *validate.Form
	scale    *scale.Controller
	effect   *effect.Controller
	bindings *Bindings

	blocked      bool
	cancelSubmit context.CancelFunc
}

// Open starts a session for the first of files. The file extension is checked
// against the allow-list before any listener is bound, so a rejected file
// leaves nothing behind.
func Open(opts Options, deps Deps, files []File) (*Session, error) {
	if len(files) == 0 {
		return nil, ErrNoFile
	}
	if deps.Submitter == nil {
		return nil, errors.New("upload: submitter is required")
	}
	if deps.Notifier == nil {
		return nil, errors.New("upload: notifier is required")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	file := files[0]
	if !HasAllowedExtension(file.Name, opts.AllowedExtensions) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, file.Name)
	}

	id := uuid.NewString()
	s := &Session{
		id:   id,
		file: file,
		opts: opts,
		deps: deps,
		log:  logging.Upload(deps.Logger, id).With().Str("file", file.Name).Logger(),
		form: validate.NewUploadForm(opts.Limits, opts.Messages),
	}
	s.scale = scale.New(opts.Scale, deps.OnScale)
	s.effect = effect.NewController(deps.Slider, deps.OnEffect)
	s.bindings = NewBindings(func(e Event, attached bool) {
		s.log.Debug().Stringer("event", e).Bool("attached", attached).Msg("listener changed")
	})

	s.form.SetValue(validate.FieldHashtags, "")
	s.form.SetValue(validate.FieldDescription, "")

	for _, e := range Events() {
		s.bindings.Attach(e, s.handler(e))
	}

	s.scale.Reset()
	s.effect.Reset()
	s.blocked = !s.form.Validate()
	s.state = StateOpen

	s.log.Info().Msg("upload session opened")
	return s, nil
}

// HasAllowedExtension reports whether name ends with one of exts, ignoring
// case.
func HasAllowedExtension(name string, exts []string) bool {
	lower := strings.ToLower(filepath.Base(name))
	for _, ext := range exts {
		if ext != "" && strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func (s *Session) handler(e Event) Handler {
	switch e {
	case EventCancel:
		return func(Input) Reaction { return s.cancel() }
	case EventKeyEscape:
		return s.onEscape
	case EventHashtagsInput:
		return func(in Input) Reaction { return s.onTextInput(validate.FieldHashtags, in.Text) }
	case EventDescriptionInput:
		return func(in Input) Reaction { return s.onTextInput(validate.FieldDescription, in.Text) }
	case EventSubmit:
		return func(Input) Reaction { return s.submit() }
	case EventScaleSmaller:
		return func(Input) Reaction {
			s.scale.Decrement()
			return Reaction{Handled: true}
		}
	case EventScaleBigger:
		return func(Input) Reaction {
			s.scale.Increment()
			return Reaction{Handled: true}
		}
	case EventEffectChoice:
		return func(in Input) Reaction {
			s.effect.Select(in.Effect)
			return Reaction{Handled: true}
		}
	case EventIntensityUpdate:
		return func(in Input) Reaction {
			s.effect.SetIntensity(in.Value)
			return Reaction{Handled: true}
		}
	default:
		return func(Input) Reaction { return Reaction{} }
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// File returns the file the session was opened for.
func (s *Session) File() File { return s.file }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Scale returns the current zoom value.
func (s *Session) Scale() int { return s.scale.Value() }

// ScaleLimits returns the bounds of the zoom control.
func (s *Session) ScaleLimits() scale.Limits { return s.scale.Limits() }

// Effect returns the current effect selection.
func (s *Session) Effect() effect.State { return s.effect.State() }

// Value returns the current text of a form field.
func (s *Session) Value(field string) string { return s.form.Value(field) }

// FieldError returns the message of the first failing rule of field.
func (s *Session) FieldError(field string) string { return s.form.Error(field) }

// Err returns the current field errors.
func (s *Session) Err() error { return s.form.Err() }

// SubmitBlocked reports whether the submit control is disabled.
func (s *Session) SubmitBlocked() bool { return s.blocked }

// Attached returns the events that currently have a listener.
func (s *Session) Attached() []Event { return s.bindings.Attached() }

// Dispatch delivers an event to its listener.
func (s *Session) Dispatch(e Event, in Input) Reaction {
	return s.bindings.Dispatch(e, in)
}

func (s *Session) onEscape(in Input) Reaction {
	if in.InTextField {
		return Reaction{Handled: true}
	}
	return s.cancel()
}

func (s *Session) onTextInput(field, text string) Reaction {
	s.form.SetValue(field, text)
	s.form.ValidateField(field)

	if s.state == StateOpen {
		s.blocked = !s.form.Validate()
	}
	return Reaction{Handled: true}
}

func (s *Session) submit() Reaction {
	if s.state != StateOpen || s.blocked {
		return Reaction{Handled: true, Err: ErrSubmitBlocked}
	}

	if !s.form.Validate() {
		s.blocked = true
		return Reaction{Handled: true, Err: fmt.Errorf("%w: %w", ErrInvalidFields, s.form.Err())}
	}

	s.blocked = true
	s.state = StateSubmitting
	s.bindings.Detach(EventKeyEscape)

	post := s.post()
	ctx := logging.WithFileName(logging.WithUploadID(context.Background(), s.id), s.file.Name)
	ctx, cancel := context.WithCancel(ctx)
	s.cancelSubmit = cancel

	s.log.Info().Str("post_id", post.ID).Msg("submitting post")

	pending := make(chan error, 1)
	submitter := s.deps.Submitter
	go func() {
		pending <- submitter.Submit(ctx, post)
	}()

	return Reaction{Handled: true, Pending: pending}
}

func (s *Session) post() Post {
	fx := s.effect.State()
	return Post{
		ID:          uuid.NewString(),
		SessionID:   s.id,
		FileName:    s.file.Name,
		FilePath:    s.file.Path,
		Scale:       s.scale.Value(),
		Effect:      fx.Effect,
		Intensity:   fx.Intensity,
		Hashtags:    validate.ParseHashtags(s.form.Value(validate.FieldHashtags)),
		Description: s.form.Value(validate.FieldDescription),
		CreatedAt:   s.deps.Now(),
	}
}

// Complete reports the result of the in-flight submission. A toast is shown
// for either outcome; when it closes, success tears the session down and an
// error returns it to Open with Escape re-armed and submit re-enabled.
// Results arriving after the session left Submitting are dropped.
func (s *Session) Complete(err error) {
	if s.state != StateSubmitting {
		s.log.Debug().Err(err).Stringer("state", s.state).Msg("dropping submission result")
		return
	}

	if s.cancelSubmit != nil {
		s.cancelSubmit()
		s.cancelSubmit = nil
	}

	if err == nil {
		s.log.Info().Msg("post submitted")
		s.deps.Notifier.Notify(notify.LevelSuccess, s.opts.Messages.Submitted, s.Close)
		return
	}

	s.log.Error().Err(err).Msg("post submission failed")
	s.deps.Notifier.Notify(notify.LevelError, s.opts.Messages.SubmitFailed, func() {
		if s.state != StateSubmitting {
			return
		}
		s.bindings.Attach(EventKeyEscape, s.onEscape)
		s.blocked = false
		s.state = StateOpen
	})
}

func (s *Session) cancel() Reaction {
	s.state = StateCancelled
	s.log.Info().Msg("upload session cancelled")
	s.Close()
	return Reaction{Handled: true, Closed: true}
}

// Close detaches every listener and restores the defaults of all controls
// and fields. Calling it on a closed session is a no-op.
func (s *Session) Close() {
	if s.state == StateClosed {
		return
	}

	if s.cancelSubmit != nil {
		s.cancelSubmit()
		s.cancelSubmit = nil
	}

	s.bindings.DetachAll()
	s.form.Reset()
	s.form.Clear()
	s.scale.Reset()
	s.effect.Reset()
	s.blocked = false
	s.state = StateClosed

	s.log.Info().Msg("upload session closed")
}
