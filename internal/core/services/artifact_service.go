package services

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/verigle/wandb/internal/core/domain"
	ports "github.com/verigle/wandb/internal/core/ports/output"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CollectionUpdate holds the collection fields to change. Nil fields are left
// untouched.
type CollectionUpdate struct {
	Name        *string
	Description *string
	Tags        *[]string
	Type        *string
}

// ArtifactUpdate holds the artifact version fields to change. Nil fields are
// left untouched.
type ArtifactUpdate struct {
	Description *string
	Tags        *[]string
	Aliases     *[]string
	Metadata    map[string]any
	TTL         *int64
	ClearTTL    bool
}

// ArtifactService serves bounded listings and edits of artifact types,
// collections and versions for one tracking server.
type ArtifactService struct {
	client ports.GraphQLClient
}

func NewArtifactService(client ports.GraphQLClient) *ArtifactService {
	return &ArtifactService{client: client}
}

// ClampLimit applies the listing defaults: 20 when unset, at most 100.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// take returns up to limit objects from p.
func take[T any](ctx context.Context, p *Paginator[T], limit int) ([]T, error) {
	out := make([]T, 0, limit)
	for len(out) < limit {
		obj, err := p.Next(ctx)
		if errors.Is(err, domain.ErrIterationDone) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

// takeSized is take plus the server-reported total, or len(items) when the
// server reports none.
func takeSized[T any](ctx context.Context, p *SizedPaginator[T], limit int) ([]T, int, error) {
	items, err := take(ctx, p.Paginator, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := p.Len(ctx)
	if errors.Is(err, domain.ErrLengthUnknown) {
		return items, len(items), nil
	}
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ArtifactService) ListTypes(ctx context.Context, entity, project string, limit int) ([]*ArtifactType, error) {
	limit = ClampLimit(limit)
	return take(ctx, NewArtifactTypes(s.client, entity, project, limit).Paginator, limit)
}

func (s *ArtifactService) GetType(ctx context.Context, entity, project, name string) (*ArtifactType, error) {
	t := NewArtifactType(s.client, entity, project, name, nil)
	if err := t.Load(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ArtifactService) ListCollections(ctx context.Context, entity, project, typeName string, limit int) ([]*ArtifactCollection, int, error) {
	limit = ClampLimit(limit)
	colls, err := NewArtifactCollections(ctx, s.client, entity, project, typeName, limit)
	if err != nil {
		return nil, 0, err
	}
	return takeSized(ctx, colls.SizedPaginator, limit)
}

func (s *ArtifactService) GetCollection(ctx context.Context, entity, project, typeName, name string) (*ArtifactCollection, error) {
	return LoadArtifactCollection(ctx, s.client, entity, project, name, typeName)
}

// UpdateCollection stages the given changes and saves them in one Save.
func (s *ArtifactService) UpdateCollection(ctx context.Context, entity, project, typeName, name string, upd CollectionUpdate) (*ArtifactCollection, error) {
	coll, err := s.GetCollection(ctx, entity, project, typeName, name)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		if err := coll.SetName(*upd.Name); err != nil {
			return nil, err
		}
	}
	if upd.Description != nil {
		coll.SetDescription(*upd.Description)
	}
	if upd.Tags != nil {
		if err := coll.SetTags(*upd.Tags); err != nil {
			return nil, err
		}
	}
	if upd.Type != nil {
		if err := coll.SetType(*upd.Type); err != nil {
			return nil, err
		}
	}
	if err := coll.Save(ctx); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"entity":     entity,
		"project":    project,
		"collection": coll.Name(),
	}).Info("artifact collection updated")
	return coll, nil
}

func (s *ArtifactService) DeleteCollection(ctx context.Context, entity, project, typeName, name string) error {
	coll, err := s.GetCollection(ctx, entity, project, typeName, name)
	if err != nil {
		return err
	}
	if err := coll.Delete(ctx); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"entity":     entity,
		"project":    project,
		"collection": name,
	}).Info("artifact collection deleted")
	return nil
}

func (s *ArtifactService) ListVersions(ctx context.Context, entity, project, typeName, collection string, tags []string, limit int) ([]*Artifact, int, error) {
	limit = ClampLimit(limit)
	arts, err := NewArtifacts(ctx, s.client, entity, project, collection, typeName, ArtifactsOptions{
		PerPage: limit,
		Tags:    tags,
	})
	if err != nil {
		return nil, 0, err
	}
	return takeSized(ctx, arts.SizedPaginator, limit)
}

// GetVersion loads "collection:version", where version is "vN" or an alias.
func (s *ArtifactService) GetVersion(ctx context.Context, entity, project, collection, version string) (*Artifact, error) {
	return LoadArtifact(ctx, s.client, entity, project, collection+":"+version)
}

func (s *ArtifactService) UpdateVersion(ctx context.Context, entity, project, collection, version string, upd ArtifactUpdate) (*Artifact, error) {
	a, err := s.GetVersion(ctx, entity, project, collection, version)
	if err != nil {
		return nil, err
	}
	if upd.Description != nil {
		a.SetDescription(*upd.Description)
	}
	if upd.Tags != nil {
		if err := a.SetTags(*upd.Tags); err != nil {
			return nil, err
		}
	}
	if upd.Aliases != nil {
		if err := a.SetAliases(*upd.Aliases); err != nil {
			return nil, err
		}
	}
	if upd.Metadata != nil {
		if err := a.SetMetadata(upd.Metadata); err != nil {
			return nil, err
		}
	}
	switch {
	case upd.ClearTTL:
		a.SetTTL(nil)
	case upd.TTL != nil:
		a.SetTTL(upd.TTL)
	}
	if err := a.Save(ctx); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"artifact": a.QualifiedName(),
	}).Info("artifact updated")
	return a, nil
}

func (s *ArtifactService) DeleteVersion(ctx context.Context, entity, project, collection, version string, deleteAliases bool) error {
	a, err := s.GetVersion(ctx, entity, project, collection, version)
	if err != nil {
		return err
	}
	return a.Delete(ctx, deleteAliases)
}

func (s *ArtifactService) ListFiles(ctx context.Context, entity, project, collection, version string, names []string, limit int) ([]domain.File, int, error) {
	limit = ClampLimit(limit)
	a, err := s.GetVersion(ctx, entity, project, collection, version)
	if err != nil {
		return nil, 0, err
	}
	files, err := a.Files(ctx, names, limit)
	if err != nil {
		return nil, 0, err
	}
	return takeSized(ctx, files.SizedPaginator, limit)
}

func (s *ArtifactService) ListRunArtifacts(ctx context.Context, run domain.RunRef, mode domain.RunArtifactsMode, limit int) ([]*Artifact, int, error) {
	limit = ClampLimit(limit)
	arts, err := NewRunArtifacts(ctx, s.client, run, mode, limit)
	if err != nil {
		return nil, 0, err
	}
	return takeSized(ctx, arts.SizedPaginator, limit)
}
