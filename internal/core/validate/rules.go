package validate

import (
	"errors"

	"github.com/hay-kot/criterio"
)

// Field names of the upload form.
const (
	FieldHashtags    = "hashtags"
	FieldDescription = "description"
)

// Limits bounds the upload form fields.
type Limits struct {
	MaxHashtags          int
	MaxDescriptionLength int
}

// DefaultLimits returns the stock limits: 5 hashtags, 140 characters.
func DefaultLimits() Limits {
	return Limits{
		MaxHashtags:          5,
		MaxDescriptionLength: 140,
	}
}

// NewUploadForm registers the hashtag and description rules on a new form.
func NewUploadForm(limits Limits, msgs Messages) *Form {
	f := NewForm()

	f.AddValidator(FieldHashtags, func(v string) bool {
		return HasNoDuplicates(ParseHashtags(v))
	}, msgs.DuplicateHashtags)

	f.AddValidator(FieldHashtags, func(v string) bool {
		return WithinCountLimit(ParseHashtags(v), limits.MaxHashtags)
	}, msgs.TooManyHashtags)

	f.AddValidator(FieldHashtags, func(v string) bool {
		return AllMatchPattern(ParseHashtags(v))
	}, msgs.InvalidHashtag)

	f.AddValidator(FieldDescription, func(v string) bool {
		return WithinLength(v, limits.MaxDescriptionLength)
	}, msgs.DescriptionLength)

	return f
}

// Hashtags checks a raw hashtags value and returns the first failing rule's
// message as an error.
func Hashtags(raw string, limits Limits, msgs Messages) error {
	tokens := ParseHashtags(raw)
	switch {
	case !HasNoDuplicates(tokens):
		return errors.New(msgs.DuplicateHashtags)
	case !WithinCountLimit(tokens, limits.MaxHashtags):
		return errors.New(msgs.TooManyHashtags)
	case !AllMatchPattern(tokens):
		return errors.New(msgs.InvalidHashtag)
	}
	return nil
}

// Description checks a description value.
func Description(text string, limits Limits, msgs Messages) error {
	if !WithinLength(text, limits.MaxDescriptionLength) {
		return errors.New(msgs.DescriptionLength)
	}
	return nil
}

// HashtagsField returns a criterio validator for a hashtags value.
func HashtagsField(field, raw string, limits Limits, msgs Messages) error {
	return criterio.Run(field, raw, func(v string) error {
		return Hashtags(v, limits, msgs)
	})
}

// DescriptionField returns a criterio validator for a description value.
func DescriptionField(field, text string, limits Limits, msgs Messages) error {
	return criterio.Run(field, text, func(v string) error {
		return Description(v, limits, msgs)
	})
}
