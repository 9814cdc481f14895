package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/pixpost/internal/core/validate"
)

func TestCheck(t *testing.T) {
	limits := validate.DefaultLimits()
	msgs := validate.MessagesFor(validate.LocaleEN, limits)
	exts := []string{".jpg", ".png"}

	tests := []struct {
		name       string
		input      checkInput
		wantValid  bool
		wantFields []string
	}{
		{
			name:      "empty input is valid",
			input:     checkInput{},
			wantValid: true,
		},
		{
			name:      "valid hashtags and description",
			input:     checkInput{Hashtags: "#sea #sun", Description: "holiday", File: "a.PNG"},
			wantValid: true,
		},
		{
			name:       "duplicate hashtags",
			input:      checkInput{Hashtags: "#sea #SEA"},
			wantFields: []string{validate.FieldHashtags},
		},
		{
			name:       "too many hashtags",
			input:      checkInput{Hashtags: "#a1 #b2 #c3 #d4 #e5 #f6"},
			wantFields: []string{validate.FieldHashtags},
		},
		{
			name:       "description too long",
			input:      checkInput{Description: strings.Repeat("a", 141)},
			wantFields: []string{validate.FieldDescription},
		},
		{
			name:       "unsupported file",
			input:      checkInput{File: "/tmp/clip.gif"},
			wantFields: []string{fieldFile},
		},
		{
			name:       "every field fails",
			input:      checkInput{Hashtags: "sea", Description: strings.Repeat("я", 200), File: "x.bmp"},
			wantFields: []string{validate.FieldHashtags, validate.FieldDescription, fieldFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := check(exts, limits, msgs, tt.input)
			assert.Equal(t, tt.wantValid, res.Valid)

			fields := make([]string, 0, len(res.Errors))
			for _, e := range res.Errors {
				fields = append(fields, e.Field)
				assert.NotEmpty(t, e.Message)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestCheckCmd_JSON(t *testing.T) {
	flags := testFlags(t)

	out, err := runCmd(t, NewCheckCmd(flags), "check", "--hashtags", "#sea #sea", "--json")
	require.Error(t, err)

	var res checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, validate.FieldHashtags, res.Errors[0].Field)
	assert.Equal(t, flags.Config.Messages().DuplicateHashtags, res.Errors[0].Message)
}

func TestCheckCmd_Text(t *testing.T) {
	flags := testFlags(t)

	out, err := runCmd(t, NewCheckCmd(flags), "check", "--hashtags", "#sea", "--description", "ok")
	require.NoError(t, err)
	assert.Contains(t, out, "all rules pass")
}

func TestCheckCmd_InputFile(t *testing.T) {
	flags := testFlags(t)
	path := filepath.Join(t.TempDir(), "post.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hashtags": "#ok", "file": "shot.gif"}`), 0o644))

	out, err := runCmd(t, NewCheckCmd(flags), "check", "--input", path, "--json")
	require.Error(t, err)

	var res checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, fieldFile, res.Errors[0].Field)
}
