package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/verigle/wandb/internal/core/services"
)

type Handler struct {
	artifactSvc *services.ArtifactService
}

func New(artifactSvc *services.ArtifactService) *Handler {
	return &Handler{artifactSvc: artifactSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	project := r.Group("/:entity/:project")

	// Artifact Types
	project.GET("/types", h.ListArtifactTypes)
	project.GET("/types/:type", h.GetArtifactType)

	// Artifact Collections (nested under type)
	project.GET("/types/:type/collections", h.ListCollections)
	project.GET("/types/:type/collections/:collection", h.GetCollection)
	project.PATCH("/types/:type/collections/:collection", h.UpdateCollection)
	project.DELETE("/types/:type/collections/:collection", h.DeleteCollection)

	// Artifact Versions (nested under collection)
	project.GET("/types/:type/collections/:collection/versions", h.ListVersions)
	project.GET("/types/:type/collections/:collection/versions/:version", h.GetVersion)
	project.PATCH("/types/:type/collections/:collection/versions/:version", h.UpdateVersion)
	project.DELETE("/types/:type/collections/:collection/versions/:version", h.DeleteVersion)
	project.GET("/types/:type/collections/:collection/versions/:version/files", h.ListFiles)

	// Run lineage
	project.GET("/runs/:run/artifacts", h.ListRunArtifacts)
}
