package upload

import "github.com/colonyops/pixpost/internal/core/effect"

// Event identifies a control of the upload dialog that a listener can be
// attached to.
type Event int

const (
	EventCancel Event = iota
	EventKeyEscape
	EventHashtagsInput
	EventDescriptionInput
	EventSubmit
	EventScaleSmaller
	EventScaleBigger
	EventEffectChoice
	EventIntensityUpdate
)

var eventNames = [...]string{
	EventCancel:           "cancel",
	EventKeyEscape:        "key-escape",
	EventHashtagsInput:    "hashtags-input",
	EventDescriptionInput: "description-input",
	EventSubmit:           "submit",
	EventScaleSmaller:     "scale-smaller",
	EventScaleBigger:      "scale-bigger",
	EventEffectChoice:     "effect-choice",
	EventIntensityUpdate:  "intensity-update",
}

// Events returns every event a session binds on open.
func Events() []Event {
	out := make([]Event, len(eventNames))
	for i := range eventNames {
		out[i] = Event(i)
	}
	return out
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Input carries the payload of an event. Only the fields relevant to the
// event are read.
type Input struct {
	Text   string        // hashtags or description input
	Effect effect.Effect // effect choice
	Value  float64       // intensity update

	// InTextField is set when the event was raised while a text field had
	// focus. Escape is ignored in that case.
	InTextField bool
}

// Reaction describes what a dispatched event did.
type Reaction struct {
	// Handled is false when no listener is attached for the event.
	Handled bool
	// Pending receives exactly one submission result. Only set by a submit
	// that started a submission.
	Pending <-chan error
	// Closed reports that the event ended the session.
	Closed bool
	// Err is set when the event was rejected, e.g. submit with invalid fields.
	Err error
}
