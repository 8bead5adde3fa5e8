package services

import (
	"context"
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/verigle/wandb/internal/core/domain"
	ports "github.com/verigle/wandb/internal/core/ports/output"
	"github.com/verigle/wandb/internal/gen/fragments"
	"github.com/verigle/wandb/internal/gen/inputs"
	"github.com/verigle/wandb/internal/gen/operations"
	"github.com/verigle/wandb/internal/gql"
	"github.com/verigle/wandb/internal/gqlbase"
)

// ArtifactCollection is a named group of artifact versions: either a
// sequence of logged versions or a portfolio of linked ones.
//
// Name, description, tags and type are staged locally and written by Save.
type ArtifactCollection struct {
	client  ports.GraphQLClient
	entity  string
	project string

	Organization string

	attrs      *fragments.ArtifactCollectionFragment
	isSequence bool

	name        string
	savedName   string
	typ         string
	savedType   string
	description *string
	tags        []string
	savedTags   []string
}

// NewArtifactCollection wraps already fetched attributes. With nil attrs the
// collection is unloaded until Load succeeds.
func NewArtifactCollection(client ports.GraphQLClient, entity, project, name, typ string, attrs *fragments.ArtifactCollectionFragment) (*ArtifactCollection, error) {
	name, err := domain.ValidateArtifactName(name)
	if err != nil {
		return nil, err
	}
	c := &ArtifactCollection{
		client:    client,
		entity:    entity,
		project:   project,
		name:      name,
		savedName: name,
		typ:       typ,
		savedType: typ,
	}
	if attrs != nil {
		c.apply(attrs)
	}
	return c, nil
}

// LoadArtifactCollection fetches a collection by name and type.
func LoadArtifactCollection(ctx context.Context, client ports.GraphQLClient, entity, project, name, typ string) (*ArtifactCollection, error) {
	c, err := NewArtifactCollection(client, entity, project, name, typ, nil)
	if err != nil {
		return nil, err
	}
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ArtifactCollection) apply(attrs *fragments.ArtifactCollectionFragment) {
	c.attrs = attrs
	c.isSequence = string(attrs.Typename) == domain.SourceArtifactCollectionType
	c.description = attrs.Description
	c.tags = make([]string, 0, len(attrs.Tags.Edges))
	for _, edge := range attrs.Tags.Edges {
		c.tags = append(c.tags, edge.Node.Name)
	}
	c.savedTags = slices.Clone(c.tags)
}

// Load fetches the collection's attributes, replacing any staged changes to
// description and tags.
func (c *ArtifactCollection) Load(ctx context.Context) error {
	rename, err := collectionRenames(ctx, c.client, "artifactCollection")
	if err != nil {
		return err
	}
	doc, err := compat(projectArtifactCollectionDoc, nil, rename)
	if err != nil {
		return err
	}

	var res operations.ProjectArtifactCollection
	err = c.client.Execute(ctx, doc, map[string]any{
		"entityName":             c.entity,
		"projectName":            c.project,
		"artifactTypeName":       c.savedType,
		"artifactCollectionName": c.savedName,
	}, &res)
	if err != nil {
		return normalize(err)
	}
	switch {
	case res.Project == nil:
		return fmt.Errorf("%s/%s: %w", c.entity, c.project, domain.ErrProjectNotFound)
	case res.Project.ArtifactType == nil:
		return fmt.Errorf("could not find artifact type %q: %w", c.savedType, domain.ErrArtifactTypeNotFound)
	case res.Project.ArtifactType.ArtifactCollection == nil:
		return fmt.Errorf("could not find artifact collection %q: %w", c.savedName, domain.ErrArtifactCollectionNotFound)
	}
	c.apply(res.Project.ArtifactType.ArtifactCollection)
	return nil
}

func (c *ArtifactCollection) ID() string {
	if c.attrs == nil {
		return ""
	}
	return c.attrs.ID
}

func (c *ArtifactCollection) Entity() string  { return c.entity }
func (c *ArtifactCollection) Project() string { return c.project }
func (c *ArtifactCollection) Name() string    { return c.name }
func (c *ArtifactCollection) Type() string    { return c.typ }
func (c *ArtifactCollection) IsSequence() bool {
	return c.isSequence
}

func (c *ArtifactCollection) Description() string {
	if c.description == nil {
		return ""
	}
	return *c.description
}

// Tags returns the staged tags.
func (c *ArtifactCollection) Tags() []string { return slices.Clone(c.tags) }

func (c *ArtifactCollection) Aliases() []string {
	if c.attrs == nil {
		return nil
	}
	out := make([]string, 0, len(c.attrs.Aliases.Edges))
	for _, edge := range c.attrs.Aliases.Edges {
		if edge.Node != nil {
			out = append(out, edge.Node.Alias)
		}
	}
	return out
}

func (c *ArtifactCollection) CreatedAt() string {
	if c.attrs == nil {
		return ""
	}
	return c.attrs.CreatedAt
}

func (c *ArtifactCollection) SetName(name string) error {
	name, err := domain.ValidateArtifactName(name)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *ArtifactCollection) SetDescription(description string) {
	c.description = &description
}

func (c *ArtifactCollection) SetTags(tags []string) error {
	tags, err := domain.ValidateTags(tags)
	if err != nil {
		return err
	}
	c.tags = tags
	return nil
}

// SetType stages a move to another artifact type. Only sequences can move.
func (c *ArtifactCollection) SetType(typ string) error {
	if !c.isSequence {
		return domain.ErrTypeChangeNotSequence
	}
	c.typ = typ
	return nil
}

// Artifacts lists the versions in the collection as last saved.
func (c *ArtifactCollection) Artifacts(ctx context.Context, opts ArtifactsOptions) (*Artifacts, error) {
	return NewArtifacts(ctx, c.client, c.entity, c.project, c.savedName, c.savedType, opts)
}

// Delete deletes the whole collection.
func (c *ArtifactCollection) Delete(ctx context.Context) error {
	if c.ID() == "" {
		return domain.ErrCollectionNotLoaded
	}
	var res operations.DeleteArtifactCollection
	err := c.client.Execute(ctx, deleteArtifactCollectionDoc, map[string]any{
		"artifactCollectionID": c.ID(),
		"isSequence":           c.isSequence,
	}, &res)
	return normalize(err)
}

// Save writes the staged changes: name and description first, then a type
// move for sequences, then tag additions and deletions.
func (c *ArtifactCollection) Save(ctx context.Context) error {
	if c.ID() == "" {
		return domain.ErrCollectionNotLoaded
	}

	if c.savedType != c.typ {
		if _, err := domain.ValidateArtifactType(c.typ, c.name); err != nil {
			return fmt.Errorf("failed to save artifact collection %q: %w", c.name, err)
		}
		if _, err := domain.ValidateArtifactType(c.savedType, c.name); err != nil {
			return fmt.Errorf("failed to save artifact collection %q: the current type %q is an internal type and cannot be changed: %w",
				c.name, c.savedType, err)
		}
	}

	if err := c.updateCollection(ctx); err != nil {
		return err
	}

	if c.isSequence && c.savedType != c.typ {
		if err := c.moveCollection(ctx, c.typ); err != nil {
			return err
		}
	}

	add, del := domain.DiffTags(c.savedTags, c.tags)
	if len(add) > 0 {
		if err := c.assignTags(ctx, createCollectionTagsDoc, add, &operations.CreateArtifactCollectionTagAssignments{}); err != nil {
			return err
		}
	}
	if len(del) > 0 {
		if err := c.assignTags(ctx, deleteCollectionTagsDoc, del, &operations.DeleteArtifactCollectionTagAssignments{}); err != nil {
			return err
		}
	}
	c.savedTags = slices.Clone(c.tags)
	return nil
}

// ChangeType moves a sequence to newType immediately.
//
// Deprecated: use SetType and Save.
func (c *ArtifactCollection) ChangeType(ctx context.Context, newType string) error {
	log.Warn("ArtifactCollection.ChangeType is deprecated, use SetType and Save instead")

	if c.savedType != newType {
		if _, err := domain.ValidateArtifactType(c.savedType, c.name); err != nil {
			return fmt.Errorf("the current type %q is an internal type and cannot be changed: %w", c.savedType, err)
		}
	}
	if _, err := domain.ValidateArtifactType(newType, c.name); err != nil {
		return err
	}
	if !c.isSequence {
		return domain.ErrTypeChangeNotSequence
	}
	if c.ID() == "" {
		return domain.ErrCollectionNotLoaded
	}

	log.Infof("changing artifact collection type of %q to %q", c.savedType, newType)
	return c.moveCollection(ctx, newType)
}

func (c *ArtifactCollection) updateCollection(ctx context.Context) error {
	var res operations.UpdateArtifactCollection
	err := c.client.Execute(ctx, updateArtifactCollectionDoc, map[string]any{
		"artifactCollectionID": c.ID(),
		"name":                 c.name,
		"description":          c.description,
		"isSequence":           c.isSequence,
	}, &res)
	if err != nil {
		return normalize(err)
	}
	c.savedName = c.name
	return nil
}

func (c *ArtifactCollection) moveCollection(ctx context.Context, typ string) error {
	var res operations.MoveArtifactCollection
	err := c.client.Execute(ctx, moveArtifactCollectionDoc, map[string]any{
		"artifactSequenceID":          c.ID(),
		"destinationArtifactTypeName": typ,
	}, &res)
	if err != nil {
		return normalize(err)
	}
	c.savedType = typ
	c.typ = typ
	return nil
}

func (c *ArtifactCollection) assignTags(ctx context.Context, doc *gql.Document, names []string, out any) error {
	tags := make([]inputs.TagInput, 0, len(names))
	for _, name := range names {
		tags = append(tags, inputs.TagInput{TagName: name})
	}
	err := c.client.Execute(ctx, doc, map[string]any{
		"entityName":             c.entity,
		"projectName":            c.project,
		"artifactCollectionName": c.savedName,
		"tags":                   tags,
	}, out)
	return normalize(err)
}

func (c *ArtifactCollection) String() string {
	return fmt.Sprintf("<ArtifactCollection %s (%s)>", c.name, c.typ)
}

// Repr renders the loaded attributes, omitting ids.
func (c *ArtifactCollection) Repr() string {
	return gqlbase.Repr(c.attrs)
}

// ArtifactCollections lists the collections of one artifact type.
type ArtifactCollections struct {
	*SizedPaginator[*ArtifactCollection]
	Entity   string
	Project  string
	TypeName string
}

func NewArtifactCollections(ctx context.Context, client ports.GraphQLClient, entity, project, typeName string, perPage int) (*ArtifactCollections, error) {
	rename, err := collectionRenames(ctx, client, "artifactCollections")
	if err != nil {
		return nil, err
	}
	doc, err := compat(projectArtifactCollectionsDoc, nil, rename)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, vars map[string]any) (*page[*ArtifactCollection], error) {
		var res operations.ProjectArtifactCollections
		if err := client.Execute(ctx, doc, vars, &res); err != nil {
			return nil, err
		}
		switch {
		case res.Project == nil:
			return nil, fmt.Errorf("%s/%s: %w", entity, project, domain.ErrProjectNotFound)
		case res.Project.ArtifactType == nil:
			return nil, fmt.Errorf("could not find artifact type %q: %w", typeName, domain.ErrArtifactTypeNotFound)
		case res.Project.ArtifactType.ArtifactCollections == nil:
			return nil, fmt.Errorf("artifact collections of %q: %w", typeName, domain.ErrUnexpectedResult)
		}
		conn := res.Project.ArtifactType.ArtifactCollections
		total := conn.TotalCount
		pg := &page[*ArtifactCollection]{
			endCursor:  conn.PageInfo.EndCursor,
			hasNext:    conn.PageInfo.HasNextPage,
			totalCount: &total,
		}
		for _, edge := range conn.Edges {
			if edge.Node == nil {
				continue
			}
			coll, err := NewArtifactCollection(client, entity, project, edge.Node.Name, typeName, edge.Node)
			if err != nil {
				return nil, err
			}
			pg.items = append(pg.items, coll)
		}
		return pg, nil
	}

	return &ArtifactCollections{
		SizedPaginator: newSizedPaginator(fetch, map[string]any{
			"entityName":       entity,
			"projectName":      project,
			"artifactTypeName": typeName,
		}, perPage),
		Entity:   entity,
		Project:  project,
		TypeName: typeName,
	}, nil
}
