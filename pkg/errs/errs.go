package errs

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an expected error so transport layers can map it
// to a status code without inspecting the message.
type Kind int

const (
	// KindInvalid marks a client-side validation failure.
	KindInvalid Kind = iota
	// KindNotFound marks a lookup for a record that does not exist.
	KindNotFound
	// KindConflict marks a write rejected by a uniqueness constraint.
	KindConflict
)

// Err represents a custom error type with a message.
type Err struct { //nolint:errname
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
}

var _ error = (*Err)(nil)

// New creates a new custom error with the given message.
func New(message string) *Err {
	return &Err{Message: message}
}

// NewNotFound creates a new custom error marked as not found.
func NewNotFound(message string) *Err {
	return &Err{Message: message, Kind: KindNotFound}
}

// NewConflict creates a new custom error marked as a conflict.
func NewConflict(message string) *Err {
	return &Err{Message: message, Kind: KindConflict}
}

func (e *Err) Error() string {
	return e.Message
}

// IsExpected checks if the given error is of custom Err type.
func IsExpected(err error) bool {
	_, ok := err.(*Err) //nolint:errorlint
	return ok
}

// KindOf returns the kind of an expected error. Unexpected errors
// are reported as KindInvalid.
func KindOf(err error) Kind {
	e, ok := err.(*Err) //nolint:errorlint
	if !ok {
		return KindInvalid
	}

	return e.Kind
}

// FieldErrors collects validation messages per request field.
type FieldErrors map[string][]string

var _ error = (FieldErrors)(nil)

// Add appends a validation message for the given field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(f[field], "; ")))
	}

	return strings.Join(parts, ", ")
}
