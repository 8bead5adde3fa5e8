package dto

import (
	"time"

	"github.com/verigle/wandb/internal/core/domain"
	"github.com/verigle/wandb/internal/core/services"
)

// ============================================================================
// Requests
// ============================================================================

type UpdateCollectionRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=128"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Type        *string   `json:"type" binding:"omitempty,min=1"`
}

type UpdateVersionRequest struct {
	Description *string        `json:"description"`
	Tags        *[]string      `json:"tags"`
	Aliases     *[]string      `json:"aliases"`
	Metadata    map[string]any `json:"metadata"`
	TTLSeconds  *int64         `json:"ttl_seconds" binding:"omitempty,min=-1"`
}

func ToCollectionUpdate(req *UpdateCollectionRequest) services.CollectionUpdate {
	return services.CollectionUpdate{
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Type:        req.Type,
	}
}

// ToArtifactUpdate maps a version patch. A ttl_seconds of -1 clears the TTL.
func ToArtifactUpdate(req *UpdateVersionRequest) services.ArtifactUpdate {
	upd := services.ArtifactUpdate{
		Description: req.Description,
		Tags:        req.Tags,
		Aliases:     req.Aliases,
		Metadata:    req.Metadata,
	}
	if req.TTLSeconds != nil {
		if *req.TTLSeconds < 0 {
			upd.ClearTTL = true
		} else {
			upd.TTL = req.TTLSeconds
		}
	}
	return upd
}

// ============================================================================
// Responses
// ============================================================================

type ArtifactTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Entity      string `json:"entity"`
	Project     string `json:"project"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type CollectionResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Entity      string   `json:"entity"`
	Project     string   `json:"project"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Aliases     []string `json:"aliases"`
	IsSequence  bool     `json:"is_sequence"`
	CreatedAt   string   `json:"created_at"`
}

type VersionResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	QualifiedName string         `json:"qualified_name"`
	Version       string         `json:"version"`
	Type          string         `json:"type"`
	State         string         `json:"state"`
	Digest        string         `json:"digest"`
	Size          int64          `json:"size"`
	FileCount     int64          `json:"file_count"`
	Description   string         `json:"description"`
	Metadata      map[string]any `json:"metadata"`
	TTLSeconds    *int64         `json:"ttl_seconds"`
	Tags          []string       `json:"tags"`
	Aliases       []string       `json:"aliases"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at,omitempty"`
}

type FileResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	DirectURL   string `json:"direct_url"`
	SizeBytes   int64  `json:"size_bytes"`
	Mimetype    string `json:"mimetype,omitempty"`
	Digest      string `json:"digest"`
	MD5         string `json:"md5"`
	StoragePath string `json:"storage_path,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type ListTypesResponse struct {
	Items    []ArtifactTypeResponse `json:"items"`
	PageSize int                    `json:"page_size"`
}

type ListCollectionsResponse struct {
	Items    []CollectionResponse `json:"items"`
	Total    int                  `json:"total"`
	PageSize int                  `json:"page_size"`
}

type ListVersionsResponse struct {
	Items    []VersionResponse `json:"items"`
	Total    int               `json:"total"`
	PageSize int               `json:"page_size"`
}

type ListFilesResponse struct {
	Items    []FileResponse `json:"items"`
	Total    int            `json:"total"`
	PageSize int            `json:"page_size"`
}

func ToArtifactTypeResponse(t *services.ArtifactType) ArtifactTypeResponse {
	return ArtifactTypeResponse{
		ID:          t.ID(),
		Name:        t.Name(),
		Entity:      t.Entity(),
		Project:     t.Project(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
	}
}

func ToCollectionResponse(c *services.ArtifactCollection) CollectionResponse {
	return CollectionResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Type:        c.Type(),
		Entity:      c.Entity(),
		Project:     c.Project(),
		Description: c.Description(),
		Tags:        nonNil(c.Tags()),
		Aliases:     nonNil(c.Aliases()),
		IsSequence:  c.IsSequence(),
		CreatedAt:   c.CreatedAt(),
	}
}

func ToVersionResponse(a *services.Artifact) VersionResponse {
	return VersionResponse{
		ID:            a.ID(),
		Name:          a.Name(),
		QualifiedName: a.QualifiedName(),
		Version:       a.Version(),
		Type:          a.Type(),
		State:         string(a.State()),
		Digest:        a.Digest(),
		Size:          a.Size(),
		FileCount:     a.FileCount(),
		Description:   a.Description(),
		Metadata:      a.Metadata(),
		TTLSeconds:    a.TTL(),
		Tags:          nonNil(a.Tags()),
		Aliases:       nonNil(a.Aliases()),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func ToFileResponse(f domain.File) FileResponse {
	resp := FileResponse{
		ID:          f.ID,
		Name:        f.Name,
		URL:         f.URL,
		DirectURL:   f.DirectURL,
		SizeBytes:   f.SizeBytes,
		Mimetype:    f.Mimetype,
		Digest:      f.Digest,
		MD5:         f.MD5,
		StoragePath: f.StoragePath,
	}
	if !f.UpdatedAt.IsZero() {
		resp.UpdatedAt = f.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
