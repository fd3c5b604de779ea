package report

import (
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind classifies report failures.
type ErrorKind string

const (
	// KindValidation marks malformed requests rejected before rendering.
	KindValidation ErrorKind = "validation"
	// KindRender marks grids that cannot be laid out or painted.
	KindRender ErrorKind = "render"
	// KindArtifactIO marks failures creating the scratch directory or writing the artifact.
	KindArtifactIO ErrorKind = "artifact_io"
	// KindCleanup marks failures deleting a transmitted artifact. Never surfaced to callers.
	KindCleanup ErrorKind = "cleanup"
	// KindInternal is the fallback for unclassified errors.
	KindInternal ErrorKind = "internal"
)

// Error wraps errors with a kind.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new report error.
func NewError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindFromError maps an error to its report error kind.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var reportErr *Error
	if errors.As(err, &reportErr) {
		return reportErr.Kind
	}
	return KindInternal
}

// AsGoError maps an error into a go-errors error.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	kind := KindInternal
	msg := err.Error()

	var reportErr *Error
	if errors.As(err, &reportErr) {
		kind = reportErr.Kind
		msg = reportErr.Error()
	}

	switch kind {
	case KindValidation:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("validation")
	case KindRender:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode("render")
	case KindArtifactIO:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("artifact_io")
	case KindCleanup:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("cleanup")
	default:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("internal")
	}
}
