package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pixpost/internal/core/notify"
	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/pkg/tuitest"
)

func TestToastView_View_empty(t *testing.T) {
	c, _ := newTestController()
	assert.Empty(t, NewToastView(c).View())
}

func TestToastView_View_renders_each_level(t *testing.T) {
	tests := []struct {
		level notify.Level
		icon  string
	}{
		{notify.LevelError, styles.IconCross},
		{notify.LevelWarning, styles.IconWarning},
		{notify.LevelSuccess, styles.IconCheck},
		{notify.LevelInfo, styles.IconInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			c, _ := newTestController()
			v := NewToastView(c)

			c.Notify(tt.level, "test msg", nil)

			out := tuitest.StripANSI(v.View())
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestToastView_View_stacks_oldest_first(t *testing.T) {
	c, _ := newTestController()
	v := NewToastView(c)

	c.Notify(notify.LevelInfo, "first", nil)
	c.Notify(notify.LevelError, "second", nil)

	out := tuitest.StripANSI(v.View())
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestToastView_Overlay(t *testing.T) {
	c, _ := newTestController()
	v := NewToastView(c)

	bg := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)
	assert.Equal(t, bg, v.Overlay(bg, 80, 24), "no toasts returns background untouched")

	c.Notify(notify.LevelSuccess, "image uploaded", nil)
	out := tuitest.StripANSI(v.Overlay(bg, 80, 24))
	assert.Contains(t, out, "image uploaded")
}
