// Package apperror defines the error taxonomy shared by all use cases and the
// envelope returned to HTTP clients. Every failure crossing a service
// boundary is one of the four kinds below; nothing else reaches a handler.
package apperror

import "errors"

// Kind discriminates the outcome classes the UI layer has to render
// differently. Only Remote wraps an underlying cause.
type Kind int

const (
	// KindValidation — locally detected, pre-submission, always recoverable.
	KindValidation Kind = iota
	// KindEmptyDirectory — no categories exist yet; an expected first-run
	// state that blocks product entry, not a fault.
	KindEmptyDirectory
	// KindRemote — any gateway failure (network, constraint, bad payload),
	// surfaced verbatim and safe to retry manually.
	KindRemote
	// KindEmptyResult — zero rows where rows were expected; informational.
	KindEmptyResult
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindEmptyDirectory:
		return "empty_directory"
	case KindRemote:
		return "remote"
	case KindEmptyResult:
		return "empty_result"
	}
	return "unknown"
}

// Error is the discriminated result carried out of every use case.
type Error struct {
	Kind   Kind
	Detail string
	Err    error // underlying cause, set only for KindRemote
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(detail string) *Error {
	return &Error{Kind: KindValidation, Detail: detail}
}

func EmptyDirectory(detail string) *Error {
	return &Error{Kind: KindEmptyDirectory, Detail: detail}
}

func Remote(detail string, err error) *Error {
	return &Error{Kind: KindRemote, Detail: detail, Err: err}
}

func EmptyResult(detail string) *Error {
	return &Error{Kind: KindEmptyResult, Detail: detail}
}

// KindOf reports the kind of err, or (0, false) when err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is lets errors.Is match on kind alone: errors.Is(err, &Error{Kind: k}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && (t.Detail == "" || t.Detail == e.Detail)
}

// ── HTTP envelope ─────────────────────────────────────────────────────────────

// APIError is the canonical envelope for all 4xx/5xx responses. Internal
// details (stack traces, SQL) never ride in here.
type APIError struct {
	Kind   string `json:"kind,omitempty"`
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FromError converts a use-case error into the wire envelope.
func FromError(err error) *APIError {
	var e *Error
	if errors.As(err, &e) {
		return &APIError{Kind: e.Kind.String(), Detail: e.Error()}
	}
	return &APIError{Detail: err.Error()}
}

// FieldErrors wraps per-field validation failures from request binding.
type FieldErrors struct {
	Kind   string            `json:"kind"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewFieldErrors(fields map[string]string) *FieldErrors {
	return &FieldErrors{Kind: KindValidation.String(), Detail: "validation failed", Fields: fields}
}
