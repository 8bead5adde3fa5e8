package services

import (
	"context"
	"fmt"

	"github.com/verigle/wandb/internal/core/domain"
	ports "github.com/verigle/wandb/internal/core/ports/output"
	"github.com/verigle/wandb/internal/gen/fragments"
	"github.com/verigle/wandb/internal/gen/operations"
)

// ArtifactType is an artifact type of a project, such as "dataset" or
// "model".
type ArtifactType struct {
	client  ports.GraphQLClient
	entity  string
	project string
	name    string
	attrs   *fragments.ArtifactTypeFragment
}

// NewArtifactType wraps already fetched attributes. Pass nil attrs and call
// Load to fetch them.
func NewArtifactType(client ports.GraphQLClient, entity, project, name string, attrs *fragments.ArtifactTypeFragment) *ArtifactType {
	return &ArtifactType{client: client, entity: entity, project: project, name: name, attrs: attrs}
}

// Load fetches the type's attributes.
func (t *ArtifactType) Load(ctx context.Context) error {
	var res operations.ProjectArtifactType
	err := t.client.Execute(ctx, projectArtifactTypeDoc, map[string]any{
		"entityName":       t.entity,
		"projectName":      t.project,
		"artifactTypeName": t.name,
	}, &res)
	if err != nil {
		return normalize(err)
	}
	if res.Project == nil {
		return fmt.Errorf("%s/%s: %w", t.entity, t.project, domain.ErrProjectNotFound)
	}
	if res.Project.ArtifactType == nil {
		return fmt.Errorf("could not find artifact type %q: %w", t.name, domain.ErrArtifactTypeNotFound)
	}
	t.attrs = res.Project.ArtifactType
	return nil
}

func (t *ArtifactType) ID() string {
	if t.attrs == nil {
		return ""
	}
	return t.attrs.ID
}

func (t *ArtifactType) Name() string    { return t.name }
func (t *ArtifactType) Entity() string  { return t.entity }
func (t *ArtifactType) Project() string { return t.project }

func (t *ArtifactType) Description() string {
	if t.attrs == nil || t.attrs.Description == nil {
		return ""
	}
	return *t.attrs.Description
}

func (t *ArtifactType) CreatedAt() string {
	if t.attrs == nil {
		return ""
	}
	return t.attrs.CreatedAt
}

// Collections lists the type's artifact collections.
func (t *ArtifactType) Collections(ctx context.Context, perPage int) (*ArtifactCollections, error) {
	return NewArtifactCollections(ctx, t.client, t.entity, t.project, t.name, perPage)
}

// Collection loads one artifact collection of this type.
func (t *ArtifactType) Collection(ctx context.Context, name string) (*ArtifactCollection, error) {
	return LoadArtifactCollection(ctx, t.client, t.entity, t.project, name, t.name)
}

func (t *ArtifactType) String() string {
	return fmt.Sprintf("<ArtifactType %s>", t.name)
}

// ArtifactTypes lists the artifact types of a project.
type ArtifactTypes struct {
	*Paginator[*ArtifactType]
	Entity  string
	Project string
}

func NewArtifactTypes(client ports.GraphQLClient, entity, project string, perPage int) *ArtifactTypes {
	fetch := func(ctx context.Context, vars map[string]any) (*page[*ArtifactType], error) {
		var res operations.ProjectArtifactTypes
		if err := client.Execute(ctx, projectArtifactTypesDoc, vars, &res); err != nil {
			return nil, err
		}
		if res.Project == nil {
			return nil, fmt.Errorf("%s/%s: %w", entity, project, domain.ErrProjectNotFound)
		}
		conn := res.Project.ArtifactTypes
		pg := &page[*ArtifactType]{
			endCursor: conn.PageInfo.EndCursor,
			hasNext:   conn.PageInfo.HasNextPage,
		}
		for _, edge := range conn.Edges {
			if edge.Node == nil {
				continue
			}
			pg.items = append(pg.items, NewArtifactType(client, entity, project, edge.Node.Name, edge.Node))
		}
		return pg, nil
	}

	return &ArtifactTypes{
		Paginator: newPaginator(fetch, map[string]any{
			"entityName":  entity,
			"projectName": project,
		}, perPage),
		Entity:  entity,
		Project: project,
	}
}
