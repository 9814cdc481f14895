// Package executil runs user-configured shell commands.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const maxStderrLen = 500

// limitedWriter caps writes to a bytes.Buffer at a maximum byte count.
// Bytes beyond the limit are silently discarded.
type limitedWriter struct {
	buf *bytes.Buffer
	n   int64
	max int64
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.n >= w.max {
		return len(p), nil
	}
	remaining := w.max - w.n
	origLen := len(p)
	if int64(origLen) > remaining {
		p = p[:remaining]
	}
	n, err := w.buf.Write(p)
	w.n += int64(n)
	if err != nil {
		return n, err
	}
	return origLen, nil
}

// RunSh executes cmd with sh -c in dir (empty means inherit cwd). env entries
// of the form KEY=value are appended to the current environment.
//
// On failure, stderr is returned as the error message, capped at 500 bytes so
// noisy hooks cannot flood logs or toasts. The *exec.ExitError is wrapped and
// can be inspected with errors.As.
func RunSh(ctx context.Context, dir, cmd string, env ...string) error {
	c := exec.CommandContext(ctx, "sh", "-c", cmd)
	if dir != "" {
		c.Dir = dir
	}
	if len(env) > 0 {
		c.Env = append(os.Environ(), env...)
	}

	var buf bytes.Buffer
	c.Stdout = io.Discard
	c.Stderr = &limitedWriter{buf: &buf, max: maxStderrLen}
	if err := c.Run(); err != nil {
		msg := strings.TrimSpace(buf.String())
		if msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return nil
}

// Runner matches RunSh so callers can substitute it in tests.
type Runner func(ctx context.Context, dir, cmd string, env ...string) error
