package submit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/internal/core/upload"
)

type recordedRun struct {
	cmd string
	env []string
}

func recordingRunner(runs *[]recordedRun, err error) func(context.Context, string, string, ...string) error {
	return func(_ context.Context, _ string, cmd string, env ...string) error {
		*runs = append(*runs, recordedRun{cmd: cmd, env: env})
		return err
	}
}

func TestHook_RunsAfterDelivery(t *testing.T) {
	var runs []recordedRun
	h := &Hook{
		Next:    upload.SubmitterFunc(func(context.Context, upload.Post) error { return nil }),
		Command: `notify-send {{ .File | shq }} {{ join .Hashtags "," }}`,
		Run:     recordingRunner(&runs, nil),
	}

	post := upload.Post{
		ID:        "p1",
		FileName:  "it's.png",
		Scale:     75,
		Effect:    effect.Sepia,
		Intensity: 30,
		Hashtags:  []string{"#sea", "#sun"},
	}
	require.NoError(t, h.Submit(context.Background(), post))

	require.Len(t, runs, 1)
	assert.Equal(t, `notify-send 'it'\''s.png' #sea,#sun`, runs[0].cmd)
	assert.Contains(t, runs[0].env, "PIXPOST_POST_ID=p1")
	assert.Contains(t, runs[0].env, "PIXPOST_SCALE=75")
	assert.Contains(t, runs[0].env, "PIXPOST_EFFECT=sepia")
	assert.Contains(t, runs[0].env, "PIXPOST_EFFECT_LEVEL=30")
	assert.Contains(t, runs[0].env, "PIXPOST_HASHTAGS=#sea #sun")
}

func TestHook_SkippedWhenDeliveryFails(t *testing.T) {
	var runs []recordedRun
	h := &Hook{
		Next:    upload.SubmitterFunc(func(context.Context, upload.Post) error { return errors.New("boom") }),
		Command: "true",
		Run:     recordingRunner(&runs, nil),
	}

	assert.EqualError(t, h.Submit(context.Background(), upload.Post{}), "boom")
	assert.Empty(t, runs)
}

func TestHook_FailureDoesNotFailSubmission(t *testing.T) {
	tests := []struct {
		name    string
		command string
		runErr  error
	}{
		{name: "command fails", command: "false", runErr: errors.New("exit status 1")},
		{name: "template references unknown field", command: "echo {{ .Missing }}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var runs []recordedRun
			h := &Hook{
				Next:    upload.SubmitterFunc(func(context.Context, upload.Post) error { return nil }),
				Command: tt.command,
				Run:     recordingRunner(&runs, tt.runErr),
			}
			assert.NoError(t, h.Submit(context.Background(), upload.Post{ID: "p"}))
		})
	}
}
