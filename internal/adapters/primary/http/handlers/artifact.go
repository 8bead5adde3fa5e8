package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/verigle/wandb/internal/adapters/primary/http/dto"
	"github.com/verigle/wandb/internal/core/domain"
	"github.com/verigle/wandb/internal/core/services"
)

func listLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return services.ClampLimit(limit)
}

// queryList reads a repeated or comma-separated query parameter.
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (h *Handler) ListArtifactTypes(c *gin.Context) {
	limit := listLimit(c)

	types, err := h.artifactSvc.ListTypes(c.Request.Context(), c.Param("entity"), c.Param("project"), limit)
	if err != nil {
		log.WithError(err).Error("list artifact types failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ArtifactTypeResponse, 0, len(types))
	for _, t := range types {
		items = append(items, dto.ToArtifactTypeResponse(t))
	}
	c.JSON(http.StatusOK, dto.ListTypesResponse{Items: items, PageSize: limit})
}

func (h *Handler) GetArtifactType(c *gin.Context) {
	t, err := h.artifactSvc.GetType(c.Request.Context(), c.Param("entity"), c.Param("project"), c.Param("type"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToArtifactTypeResponse(t))
}

func (h *Handler) ListCollections(c *gin.Context) {
	limit := listLimit(c)

	colls, total, err := h.artifactSvc.ListCollections(c.Request.Context(), c.Param("entity"), c.Param("project"), c.Param("type"), limit)
	if err != nil {
		log.WithError(err).Error("list artifact collections failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.CollectionResponse, 0, len(colls))
	for _, coll := range colls {
		items = append(items, dto.ToCollectionResponse(coll))
	}
	c.JSON(http.StatusOK, dto.ListCollectionsResponse{Items: items, Total: total, PageSize: limit})
}

func (h *Handler) GetCollection(c *gin.Context) {
	coll, err := h.artifactSvc.GetCollection(c.Request.Context(), c.Param("entity"), c.Param("project"), c.Param("type"), c.Param("collection"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCollectionResponse(coll))
}

func (h *Handler) UpdateCollection(c *gin.Context) {
	var req dto.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coll, err := h.artifactSvc.UpdateCollection(c.Request.Context(), c.Param("entity"), c.Param("project"), c.Param("type"), c.Param("collection"), dto.ToCollectionUpdate(&req))
	if err != nil {
		log.WithError(err).Error("update artifact collection failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCollectionResponse(coll))
}

func (h *Handler) DeleteCollection(c *gin.Context) {
	if err := h.artifactSvc.DeleteCollection(c.Request.Context(), c.Param("entity"), c.Param("project"), c.Param("type"), c.Param("collection")); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListVersions(c *gin.Context) {
	limit := listLimit(c)

	versions, total, err := h.artifactSvc.ListVersions(c.Request.Context(), c.Param("entity"), c.Param("project"), c.Param("type"), c.Param("collection"), queryList(c, "tags"), limit)
	if err != nil {
		log.WithError(err).Error("list artifact versions failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.VersionResponse, 0, len(versions))
	for _, a := range versions {
		items = append(items, dto.ToVersionResponse(a))
	}
	c.JSON(http.StatusOK, dto.ListVersionsResponse{Items: items, Total: total, PageSize: limit})
}

func (h *Handler) GetVersion(c *gin.Context) {
	a, err := h.artifactSvc.GetVersion(c.Request.Context(), c.Param("entity"), c.Param("project"), c.Param("collection"), c.Param("version"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVersionResponse(a))
}

func (h *Handler) UpdateVersion(c *gin.Context) {
	var req dto.UpdateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.artifactSvc.UpdateVersion(c.Request.Context(), c.Param("entity"), c.Param("project"), c.Param("collection"), c.Param("version"), dto.ToArtifactUpdate(&req))
	if err != nil {
		log.WithError(err).Error("update artifact version failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToVersionResponse(a))
}

func (h *Handler) DeleteVersion(c *gin.Context) {
	deleteAliases, _ := strconv.ParseBool(c.DefaultQuery("delete_aliases", "false"))
	if err := h.artifactSvc.DeleteVersion(c.Request.Context(), c.Param("entity"), c.Param("project"), c.Param("collection"), c.Param("version"), deleteAliases); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListFiles(c *gin.Context) {
	limit := listLimit(c)

	files, total, err := h.artifactSvc.ListFiles(c.Request.Context(), c.Param("entity"), c.Param("project"), c.Param("collection"), c.Param("version"), queryList(c, "names"), limit)
	if err != nil {
		log.WithError(err).Error("list artifact files failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.FileResponse, 0, len(files))
	for _, f := range files {
		items = append(items, dto.ToFileResponse(f))
	}
	c.JSON(http.StatusOK, dto.ListFilesResponse{Items: items, Total: total, PageSize: limit})
}

func (h *Handler) ListRunArtifacts(c *gin.Context) {
	limit := listLimit(c)
	run := domain.RunRef{Entity: c.Param("entity"), Project: c.Param("project"), ID: c.Param("run")}
	mode := domain.RunArtifactsMode(c.DefaultQuery("mode", string(domain.RunArtifactsLogged)))

	arts, total, err := h.artifactSvc.ListRunArtifacts(c.Request.Context(), run, mode, limit)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	items := make([]dto.VersionResponse, 0, len(arts))
	for _, a := range arts {
		items = append(items, dto.ToVersionResponse(a))
	}
	c.JSON(http.StatusOK, dto.ListVersionsResponse{Items: items, Total: total, PageSize: limit})
}
