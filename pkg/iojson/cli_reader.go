package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrNoInput is returned by Reader.Read when neither a file nor piped stdin
// is available.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); use --input or pipe JSON")

// Reader decodes a T from the file named by its flag, or from stdin.
type Reader[T any] struct {
	path  string
	stdin *os.File
}

// Flag returns the --input flag bound to the reader.
func (r *Reader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "input",
		Aliases:     []string{"i"},
		Usage:       "path to a JSON file (reads piped stdin if not provided)",
		Destination: &r.path,
	}
}

// Provided reports whether input is available without blocking on a
// terminal.
func (r *Reader[T]) Provided() bool {
	if r.path != "" {
		return true
	}
	in := r.input()
	return !term.IsTerminal(int(in.Fd()))
}

func (r *Reader[T]) input() *os.File {
	if r.stdin != nil {
		return r.stdin
	}
	return os.Stdin
}

// Read decodes the input.
func (r *Reader[T]) Read() (T, error) {
	var (
		out    T
		reader io.Reader
	)

	switch {
	case r.path != "":
		f, err := os.Open(r.path)
		if err != nil {
			return out, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	case r.Provided():
		reader = r.input()
	default:
		return out, ErrNoInput
	}

	if err := json.NewDecoder(reader).Decode(&out); err != nil {
		return out, fmt.Errorf("decode JSON: %w", err)
	}
	return out, nil
}
