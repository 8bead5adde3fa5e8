package services

import (
	"context"
	"errors"
	"strings"

	"github.com/verigle/wandb/internal/core/domain"
	ports "github.com/verigle/wandb/internal/core/ports/output"
	"github.com/verigle/wandb/internal/gqlbase"
)

// notFoundMessages maps server "not found" messages to sentinels. More
// specific subjects come first.
var notFoundMessages = []struct {
	subject string
	err     error
}{
	{"artifact type", domain.ErrArtifactTypeNotFound},
	{"artifact collection", domain.ErrArtifactCollectionNotFound},
	{"artifact sequence", domain.ErrArtifactCollectionNotFound},
	{"artifact portfolio", domain.ErrArtifactCollectionNotFound},
	{"project", domain.ErrProjectNotFound},
	{"run", domain.ErrRunNotFound},
	{"artifact", domain.ErrArtifactNotFound},
}

// normalize maps transport and response errors into *domain.CommError.
// Context, validation and domain errors pass through unchanged.
func normalize(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var (
		commErr  *domain.CommError
		inputErr *domain.ValidationError
		respErr  *gqlbase.ValidationError
	)
	if errors.As(err, &commErr) || errors.As(err, &inputErr) || errors.As(err, &respErr) {
		return err
	}
	if isDomainSentinel(err) {
		return err
	}

	var gqlErr ports.ResponseError
	if errors.As(err, &gqlErr) {
		msg := err.Error()
		if msgs := gqlErr.Messages(); len(msgs) > 0 {
			msg = msgs[0]
		}
		ce := &domain.CommError{Message: msg, Err: err}
		if nf := notFound(msg); nf != nil {
			ce.Err = nf
		}
		var status ports.StatusError
		if errors.As(err, &status) {
			ce.StatusCode = status.HTTPStatus()
		}
		return ce
	}

	var status ports.StatusError
	if errors.As(err, &status) {
		return &domain.CommError{Message: err.Error(), StatusCode: status.HTTPStatus(), Err: err}
	}
	return &domain.CommError{Message: err.Error(), Err: err}
}

func notFound(msg string) error {
	lower := strings.ToLower(msg)
	if !strings.Contains(lower, "not found") && !strings.Contains(lower, "does not exist") {
		return nil
	}
	for _, nf := range notFoundMessages {
		if strings.Contains(lower, nf.subject) {
			return nf.err
		}
	}
	return nil
}

func isDomainSentinel(err error) bool {
	for _, target := range []error{
		domain.ErrProjectNotFound,
		domain.ErrArtifactTypeNotFound,
		domain.ErrArtifactCollectionNotFound,
		domain.ErrArtifactNotFound,
		domain.ErrRunNotFound,
		domain.ErrTypeChangeNotSequence,
		domain.ErrCollectionNotLoaded,
		domain.ErrArtifactNotLoaded,
		domain.ErrIterationDone,
		domain.ErrLengthUnknown,
		domain.ErrIndexOutOfRange,
		domain.ErrUnexpectedResult,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
