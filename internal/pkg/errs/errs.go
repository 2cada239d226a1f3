package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// NewMarked creates a sentinel that also matches the given category marker.
func NewMarked(msg string, category error) error {
	return cr.Mark(cr.New(msg), category)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// IsCategory reports whether err carries one of the category markers. Every
// sentinel marked with the same category matches, so use errors.Is when the
// exact sentinel matters.
func IsCategory(err, category error) bool {
	return cr.Is(err, category)
}

// WithCause returns sentinel with cause attached as a secondary error.
// errors.Is still matches the sentinel and %+v prints the cause.
func WithCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return cr.WithSecondaryError(cr.WithStack(sentinel), cause)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
