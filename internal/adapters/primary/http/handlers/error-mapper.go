package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verigle/wandb/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var commErr *domain.CommError

	switch {
	// Not found errors
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrArtifactTypeNotFound),
		errors.Is(err, domain.ErrArtifactCollectionNotFound),
		errors.Is(err, domain.ErrArtifactNotFound),
		errors.Is(err, domain.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrInvalidArtifactName),
		errors.Is(err, domain.ErrInvalidArtifactType),
		errors.Is(err, domain.ErrReservedArtifactType),
		errors.Is(err, domain.ErrInvalidTag),
		errors.Is(err, domain.ErrInvalidAlias),
		errors.Is(err, domain.ErrInvalidProjectName),
		errors.Is(err, domain.ErrInvalidArtifactPath),
		errors.Is(err, domain.ErrInvalidMetadata),
		errors.Is(err, domain.ErrInvalidRunArtifactsMode),
		errors.Is(err, domain.ErrTypeChangeNotSequence):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Upstream errors
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "tracking server timed out"})
	case errors.As(err, &commErr):
		status := http.StatusBadGateway
		if commErr.StatusCode == http.StatusUnauthorized || commErr.StatusCode == http.StatusForbidden {
			status = commErr.StatusCode
		}
		c.JSON(status, gin.H{"error": commErr.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
