// Package submit delivers posts assembled by an upload session.
package submit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/pixpost/internal/core/logging"
	"github.com/colonyops/pixpost/internal/core/scale"
	"github.com/colonyops/pixpost/internal/core/upload"
)

// Multipart field names of the upload form.
const (
	FieldFile        = "filename"
	FieldScale       = "scale"
	FieldEffect      = "effect"
	FieldEffectLevel = "effect-level"
	FieldHashtags    = "hashtags"
	FieldDescription = "description"
)

// maxErrorBody bounds how much of a failed response is kept for the error.
const maxErrorBody = 512

// HTTP posts the image and its fields as a multipart form to Endpoint.
type HTTP struct {
	Endpoint string
	Client   *http.Client
	log      zerolog.Logger
}

var _ upload.Submitter = (*HTTP)(nil)

// NewHTTP creates an HTTP submitter with a client bounded by timeout.
func NewHTTP(endpoint string, timeout time.Duration) *HTTP {
	return &HTTP{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
		log:      logging.Component("submit.http"),
	}
}

// Submit uploads post. Any non-2xx response is an error.
func (h *HTTP) Submit(ctx context.Context, post upload.Post) error {
	body, contentType, err := encodeForm(post)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", "pixpost")

	h.log.Debug().Ctx(ctx).Str("endpoint", h.Endpoint).Str("post_id", post.ID).Msg("sending post")

	resp, err := h.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send post: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			h.log.Debug().Err(err).Msg("close response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upload rejected: status %d", e.Code)
	}
	return fmt.Sprintf("upload rejected: status %d: %s", e.Code, e.Body)
}

func encodeForm(post upload.Post) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if post.FilePath != "" {
		f, err := os.Open(post.FilePath)
		if err != nil {
			return nil, "", fmt.Errorf("open image: %w", err)
		}
		defer func() { _ = f.Close() }()

		part, err := w.CreateFormFile(FieldFile, post.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("copy image: %w", err)
		}
	}

	fields := []struct{ name, value string }{
		{FieldScale, scale.Label(post.Scale)},
		{FieldEffect, post.Effect.String()},
		{FieldEffectLevel, post.EffectLevel()},
		{FieldHashtags, strings.Join(post.Hashtags, " ")},
		{FieldDescription, post.Description},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
