package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verigle/wandb/internal/core/domain"
	"github.com/verigle/wandb/internal/gqlbase"
)

type statusErr struct{ code int }

func (e statusErr) Error() string   { return fmt.Sprintf("status %d", e.code) }
func (e statusErr) HTTPStatus() int { return e.code }

type responseErr struct {
	msgs []string
	code int
}

func (e responseErr) Error() string      { return "graphql: " + e.msgs[0] }
func (e responseErr) Messages() []string { return e.msgs }
func (e responseErr) HTTPStatus() int    { return e.code }

func TestNormalize_PassThrough(t *testing.T) {
	commErr := &domain.CommError{Message: "boom"}
	inputErr := &domain.ValidationError{Kind: domain.ErrInvalidTag, Value: "a/b"}
	respErr := &gqlbase.ValidationError{Type: "ArtifactFragment"}
	wrapped := fmt.Errorf("load: %w", domain.ErrArtifactNotFound)

	tests := []struct {
		name string
		err  error
	}{
		{"nil", nil},
		{"canceled", context.Canceled},
		{"deadline", fmt.Errorf("wait: %w", context.DeadlineExceeded)},
		{"comm error", commErr},
		{"input validation", inputErr},
		{"response validation", respErr},
		{"domain sentinel", wrapped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.err, normalize(tt.err))
		})
	}
}

func TestNormalize_StatusError(t *testing.T) {
	err := normalize(statusErr{code: 502})

	var commErr *domain.CommError
	require.ErrorAs(t, err, &commErr)
	assert.Equal(t, 502, commErr.StatusCode)
	assert.Equal(t, "status 502", commErr.Message)
}

func TestNormalize_ResponseErrorUsesFirstMessage(t *testing.T) {
	err := normalize(responseErr{msgs: []string{"permission denied", "second"}, code: 200})

	var commErr *domain.CommError
	require.ErrorAs(t, err, &commErr)
	assert.Equal(t, "permission denied", commErr.Message)
	assert.Equal(t, 200, commErr.StatusCode)
}

func TestNormalize_NotFoundMessages(t *testing.T) {
	tests := []struct {
		msg  string
		want error
	}{
		{"artifact type not found: dataset", domain.ErrArtifactTypeNotFound},
		{"Artifact collection does not exist", domain.ErrArtifactCollectionNotFound},
		{"artifact sequence not found", domain.ErrArtifactCollectionNotFound},
		{"project not found", domain.ErrProjectNotFound},
		{"run abc123 not found", domain.ErrRunNotFound},
		{"artifact not found", domain.ErrArtifactNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			err := normalize(responseErr{msgs: []string{tt.msg}})
			var commErr *domain.CommError
			require.ErrorAs(t, err, &commErr)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNormalize_PlainError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := normalize(cause)

	var commErr *domain.CommError
	require.ErrorAs(t, err, &commErr)
	assert.Zero(t, commErr.StatusCode)
	assert.ErrorIs(t, err, cause)
}
