package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindings_AttachIsExclusive(t *testing.T) {
	b := NewBindings(nil)

	first := func(Input) Reaction { return Reaction{Handled: true} }
	second := func(Input) Reaction { return Reaction{Handled: true, Closed: true} }

	assert.True(t, b.Attach(EventSubmit, first))
	assert.False(t, b.Attach(EventSubmit, second))
	assert.Equal(t, 1, b.Len())

	r := b.Dispatch(EventSubmit, Input{})
	assert.False(t, r.Closed, "first listener stays attached")
}

func TestBindings_DetachIsIdempotent(t *testing.T) {
	var changes []bool
	b := NewBindings(func(_ Event, attached bool) { changes = append(changes, attached) })

	b.Attach(EventCancel, func(Input) Reaction { return Reaction{} })

	assert.True(t, b.Detach(EventCancel))
	assert.False(t, b.Detach(EventCancel))
	assert.False(t, b.Detach(EventScaleBigger))
	assert.Equal(t, []bool{true, false}, changes)

	b.DetachAll()
	b.DetachAll()
	assert.Empty(t, b.Attached())
}

func TestBindings_DispatchUnbound(t *testing.T) {
	b := NewBindings(nil)
	assert.Equal(t, Reaction{}, b.Dispatch(EventKeyEscape, Input{}))
	assert.False(t, b.Has(EventKeyEscape))
}

func TestBindings_AttachedSorted(t *testing.T) {
	b := NewBindings(nil)
	noop := func(Input) Reaction { return Reaction{} }

	b.Attach(EventIntensityUpdate, noop)
	b.Attach(EventCancel, noop)
	b.Attach(EventSubmit, noop)

	assert.Equal(t, []Event{EventCancel, EventSubmit, EventIntensityUpdate}, b.Attached())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "key-escape", EventKeyEscape.String())
	assert.Equal(t, "unknown", Event(99).String())
	assert.Len(t, Events(), 9)
}
