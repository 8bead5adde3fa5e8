package domain

import (
	"errors"
	"fmt"
)

// ============================================================================
// Artifact Errors
// ============================================================================

// Not found errors
var (
	ErrProjectNotFound            = errors.New("project not found")
	ErrArtifactTypeNotFound       = errors.New("artifact type not found")
	ErrArtifactCollectionNotFound = errors.New("artifact collection not found")
	ErrArtifactNotFound           = errors.New("artifact not found")
	ErrRunNotFound                = errors.New("run not found")
)

// Validation errors
var (
	ErrInvalidArtifactName     = errors.New("invalid artifact name")
	ErrInvalidArtifactType     = errors.New("invalid artifact type")
	ErrReservedArtifactType    = errors.New("artifact type is reserved for internal use")
	ErrInvalidTag              = errors.New("invalid tag")
	ErrInvalidAlias            = errors.New("invalid alias")
	ErrInvalidProjectName      = errors.New("invalid project name")
	ErrInvalidArtifactPath     = errors.New("invalid artifact path")
	ErrInvalidMetadata         = errors.New("invalid artifact metadata")
	ErrNotRegistryProject      = errors.New("not a registry project")
	ErrInvalidRunArtifactsMode = errors.New("run artifacts mode must be one of: logged, used")
)

// Business rule errors
var (
	ErrTypeChangeNotSequence = errors.New("type can only be changed on a source artifact collection")
	ErrCollectionNotLoaded   = errors.New("artifact collection has no id; load it before saving")
	ErrArtifactNotLoaded     = errors.New("artifact has no id; load it before saving")
)

// ============================================================================
// Pagination Errors
// ============================================================================

var (
	ErrIterationDone    = errors.New("no more items in iterator")
	ErrLengthUnknown    = errors.New("object doesn't provide length")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnexpectedResult = errors.New("unexpected response data")
)

// ============================================================================
// Communication Errors
// ============================================================================

// CommError is returned when the tracking server could not be reached or
// rejected a request.
type CommError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *CommError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func (e *CommError) Unwrap() error { return e.Err }

// ValidationError wraps an input rejected by a validator with the sentinel
// describing its kind.
type ValidationError struct {
	Kind   error
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v %q: %s", e.Kind, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func invalid(kind error, value, format string, args ...any) error {
	return &ValidationError{Kind: kind, Value: value, Reason: fmt.Sprintf(format, args...)}
}
