package cfs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncompleteInput means a required field of a visible group is
	// unanswered, so no level can be computed yet.
	ErrIncompleteInput = errors.New("cfs: answers are incomplete")

	// ErrUnmatchedLeaf means the self-care answers reach a combination the
	// decision tree does not cover.
	ErrUnmatchedLeaf = errors.New("cfs: self-care answers do not determine a level")

	ErrUnknownField = errors.New("cfs: unknown field")
	ErrInvalidValue = errors.New("cfs: invalid value")

	// ErrChecklistNotOffered is returned when post-score checklist answers
	// are supplied for a level that does not offer the checklist.
	ErrChecklistNotOffered = errors.New("cfs: chronic checklist is not offered for this level")
)

// FieldError attaches the offending fields to one of the package errors.
type FieldError struct {
	Err    error
	Fields []Field
	Detail string
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if len(e.Fields) > 0 {
		names := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			names[i] = string(f)
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(names, ", "))
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ErrorFields returns the fields carried by err, if any.
func ErrorFields(err error) []Field {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Fields
	}
	return nil
}
