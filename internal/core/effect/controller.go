package effect

// Slider is the range control bound to the intensity of the active effect.
type Slider interface {
	Configure(min, max, step float64)
	Set(v float64)
}

// State is a snapshot of the controller reported after every change.
type State struct {
	Effect    Effect
	Intensity float64
	Filter    string // empty when Effect is None
}

// IntensityVisible reports whether the intensity control should be shown.
func (s State) IntensityVisible() bool {
	return s.Effect != None
}

// Controller tracks the selected effect and its intensity. Exactly one effect
// is active at a time.
type Controller struct {
	active    Effect
	intensity float64
	slider    Slider
	onChange  func(State)
}

// NewController creates a controller with None selected. slider and onChange
// may be nil.
func NewController(slider Slider, onChange func(State)) *Controller {
	return &Controller{
		active:   None,
		slider:   slider,
		onChange: onChange,
	}
}

// Select activates e. Selecting None disables the intensity; any other effect
// reconfigures the slider to its range and starts at the maximum.
func (c *Controller) Select(e Effect) {
	if !e.Valid() {
		e = None
	}
	c.active = e

	if e == None {
		c.intensity = 0
		c.emit()
		return
	}

	spec := e.Spec()
	c.intensity = spec.Max
	if c.slider != nil {
		c.slider.Configure(spec.Min, spec.Max, spec.Step)
		c.slider.Set(spec.Max)
	}
	c.emit()
}

// SetIntensity records a new slider value for the active effect. It is
// ignored while None is selected.
func (c *Controller) SetIntensity(v float64) {
	if c.active == None {
		return
	}
	c.intensity = c.active.Spec().Clamp(v)
	c.emit()
}

// Reset selects None.
func (c *Controller) Reset() {
	c.Select(None)
}

// Active returns the selected effect.
func (c *Controller) Active() Effect { return c.active }

// Intensity returns the current intensity; meaningless while None is active.
func (c *Controller) Intensity() float64 { return c.intensity }

// State returns the current snapshot.
func (c *Controller) State() State {
	return State{
		Effect:    c.active,
		Intensity: c.intensity,
		Filter:    c.active.Spec().Filter(c.intensity),
	}
}

func (c *Controller) emit() {
	if c.onChange != nil {
		c.onChange(c.State())
	}
}
