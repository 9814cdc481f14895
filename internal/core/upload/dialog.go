package upload

// Dialog owns the single live session of the upload dialog.
type Dialog struct {
	opts    Options
	deps    Deps
	current *Session
}

// NewDialog creates a dialog that opens sessions with opts and deps.
func NewDialog(opts Options, deps Deps) *Dialog {
	return &Dialog{opts: opts, deps: deps}
}

// Open starts a session for files. It fails with ErrSessionOpen while the
// previous session has not closed.
func (d *Dialog) Open(files []File) (*Session, error) {
	if d.Current() != nil {
		return nil, ErrSessionOpen
	}

	s, err := Open(d.opts, d.deps, files)
	if err != nil {
		return nil, err
	}
	d.current = s
	return s, nil
}

// Current returns the live session, or nil once it has closed.
func (d *Dialog) Current() *Session {
	if d.current != nil && d.current.State() == StateClosed {
		d.current = nil
	}
	return d.current
}

// SetOptions replaces the limits used by the next session. A live session
// keeps the options it was opened with.
func (d *Dialog) SetOptions(opts Options) {
	d.opts = opts
}

// Options returns the limits used for new sessions.
func (d *Dialog) Options() Options {
	return d.opts
}
