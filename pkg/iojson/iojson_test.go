package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var out, errOut bytes.Buffer

	err := Write(&out, &errOut, map[string]any{"valid": true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid": true}`, out.String())
	assert.Empty(t, errOut.String())
}

func TestWrite_marshal_failure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := Write(&out, &errOut, map[string]any{"bad": make(chan int)})
	require.NoError(t, err)
	assert.Empty(t, out.String())

	var e Error
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &e))
	assert.Equal(t, "marshal output", e.Message)
	assert.Contains(t, e.Data, "json_error")
}

func TestWriteError(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteError(&out, "invalid", map[string]any{"field": "hashtags"}))

	var e Error
	require.NoError(t, json.Unmarshal(out.Bytes(), &e))
	assert.Equal(t, "invalid", e.Message)
	assert.Equal(t, "hashtags", e.Data["field"])
}

type payload struct {
	Hashtags string `json:"hashtags"`
}

func TestReader_from_file(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"hashtags":"#a"}`), 0o644))

	r := &Reader[payload]{path: p}
	assert.True(t, r.Provided())

	got, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "#a", got.Hashtags)
}

func TestReader_from_pipe(t *testing.T) {
	p := filepath.Join(t.TempDir(), "stdin.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"hashtags":"#b"}`), 0o644))
	f, err := os.Open(p)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	r := &Reader[payload]{stdin: f}
	got, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "#b", got.Hashtags)
}

func TestReader_bad_json(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(p, []byte(`{`), 0o644))

	_, err := (&Reader[payload]{path: p}).Read()
	assert.ErrorContains(t, err, "decode JSON")
}
