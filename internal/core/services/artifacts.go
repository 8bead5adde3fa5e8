package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/verigle/wandb/internal/core/domain"
	ports "github.com/verigle/wandb/internal/core/ports/output"
	"github.com/verigle/wandb/internal/gen/fragments"
	"github.com/verigle/wandb/internal/gen/operations"
	"github.com/verigle/wandb/internal/gql"
)

const defaultArtifactsOrder = "-createdAt"

// ArtifactsOptions narrows the versions listed by NewArtifacts.
type ArtifactsOptions struct {
	// Filters is a server-side filter object. Defaults to committed
	// versions only.
	Filters map[string]any
	// Order is a field name, optionally prefixed with "-" for descending.
	Order   string
	PerPage int
	// Tags keeps only versions carrying every listed tag.
	Tags []string
}

// Artifacts lists the versions of one artifact collection.
type Artifacts struct {
	*SizedPaginator[*Artifact]
	Entity         string
	Project        string
	CollectionName string
	Type           string
}

func NewArtifacts(ctx context.Context, client ports.GraphQLClient, entity, project, collectionName, typ string, opts ArtifactsOptions) (*Artifacts, error) {
	tags, err := domain.ValidateTags(opts.Tags)
	if err != nil {
		return nil, err
	}
	filters := opts.Filters
	if filters == nil {
		filters = map[string]any{"state": "COMMITTED"}
	}
	rawFilters, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("encode artifact filters: %w", err)
	}
	order := opts.Order
	if order == "" {
		order = defaultArtifactsOrder
	}

	omit, err := artifactOmitFields(ctx, client)
	if err != nil {
		return nil, err
	}
	rename, err := collectionRenames(ctx, client, "artifactCollection")
	if err != nil {
		return nil, err
	}
	doc, err := compat(projectArtifactsDoc, omit, rename)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, vars map[string]any) (*page[*Artifact], error) {
		var res operations.ProjectArtifacts
		if err := client.Execute(ctx, doc, vars, &res); err != nil {
			return nil, err
		}
		switch {
		case res.Project == nil:
			return nil, fmt.Errorf("%s/%s: %w", entity, project, domain.ErrProjectNotFound)
		case res.Project.ArtifactType == nil:
			return nil, fmt.Errorf("could not find artifact type %q: %w", typ, domain.ErrArtifactTypeNotFound)
		case res.Project.ArtifactType.ArtifactCollection == nil:
			return nil, fmt.Errorf("could not find artifact collection %q: %w", collectionName, domain.ErrArtifactCollectionNotFound)
		case res.Project.ArtifactType.ArtifactCollection.Artifacts == nil:
			return nil, fmt.Errorf("artifacts of %q: %w", collectionName, domain.ErrUnexpectedResult)
		}
		conn := res.Project.ArtifactType.ArtifactCollection.Artifacts
		total := conn.TotalCount
		pg := &page[*Artifact]{
			endCursor:  conn.PageInfo.EndCursor,
			hasNext:    conn.PageInfo.HasNextPage,
			totalCount: &total,
		}
		for _, edge := range conn.Edges {
			node := edge.Node
			if !hasAllTags(&node, tags) {
				continue
			}
			a, err := NewArtifact(client, entity, project, collectionName+":"+edge.Version, &node)
			if err != nil {
				return nil, err
			}
			pg.items = append(pg.items, a)
		}
		return pg, nil
	}

	return &Artifacts{
		SizedPaginator: newSizedPaginator(fetch, map[string]any{
			"entityName":             entity,
			"projectName":            project,
			"artifactTypeName":       typ,
			"artifactCollectionName": collectionName,
			"order":                  order,
			"filters":                string(rawFilters),
		}, opts.PerPage),
		Entity:         entity,
		Project:        project,
		CollectionName: collectionName,
		Type:           typ,
	}, nil
}

func hasAllTags(attrs *fragments.ArtifactFragment, want []string) bool {
	if len(want) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(attrs.Tags))
	for _, t := range attrs.Tags {
		have[t.Name] = struct{}{}
	}
	for _, name := range want {
		if _, ok := have[name]; !ok {
			return false
		}
	}
	return true
}

// RunArtifacts lists the artifacts a run logged or used.
type RunArtifacts struct {
	*SizedPaginator[*Artifact]
	Run  domain.RunRef
	Mode domain.RunArtifactsMode
}

func NewRunArtifacts(ctx context.Context, client ports.GraphQLClient, run domain.RunRef, mode domain.RunArtifactsMode, perPage int) (*RunArtifacts, error) {
	doc := runOutputArtifactsDoc
	switch mode {
	case domain.RunArtifactsLogged:
	case domain.RunArtifactsUsed:
		doc = runInputArtifactsDoc
	default:
		return nil, fmt.Errorf("%q: %w", mode, domain.ErrInvalidRunArtifactsMode)
	}

	omit, err := artifactOmitFields(ctx, client)
	if err != nil {
		return nil, err
	}
	doc, err = compat(doc, omit, nil)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, vars map[string]any) (*page[*Artifact], error) {
		conn, err := fetchRunArtifacts(ctx, client, doc, mode, vars)
		if err != nil {
			return nil, err
		}
		if conn == nil {
			return nil, fmt.Errorf("run %s: %w", run.Path(), domain.ErrRunNotFound)
		}
		total := conn.totalCount
		pg := &page[*Artifact]{
			endCursor:  conn.pageInfo.EndCursor,
			hasNext:    conn.pageInfo.HasNextPage,
			totalCount: &total,
		}
		for _, node := range conn.nodes {
			a, err := runArtifact(client, run, node)
			if err != nil {
				return nil, err
			}
			pg.items = append(pg.items, a)
		}
		return pg, nil
	}

	return &RunArtifacts{
		SizedPaginator: newSizedPaginator(fetch, map[string]any{
			"entity":  run.Entity,
			"project": run.Project,
			"runName": run.ID,
		}, perPage),
		Run:  run,
		Mode: mode,
	}, nil
}

// runConnection is the part of the output and input connections the
// paginator needs.
type runConnection struct {
	totalCount int
	pageInfo   fragments.PageInfoFragment
	nodes      []*fragments.ArtifactFragment
}

func fetchRunArtifacts(ctx context.Context, client ports.GraphQLClient, doc *gql.Document, mode domain.RunArtifactsMode, vars map[string]any) (*runConnection, error) {
	if mode == domain.RunArtifactsUsed {
		var res operations.RunInputArtifacts
		if err := client.Execute(ctx, doc, vars, &res); err != nil {
			return nil, err
		}
		if res.Project == nil || res.Project.Run == nil || res.Project.Run.InputArtifacts == nil {
			return nil, nil
		}
		conn := res.Project.Run.InputArtifacts
		out := &runConnection{totalCount: conn.TotalCount, pageInfo: conn.PageInfo}
		for _, edge := range conn.Edges {
			if edge.Node != nil {
				out.nodes = append(out.nodes, edge.Node)
			}
		}
		return out, nil
	}

	var res operations.RunOutputArtifacts
	if err := client.Execute(ctx, doc, vars, &res); err != nil {
		return nil, err
	}
	if res.Project == nil || res.Project.Run == nil || res.Project.Run.OutputArtifacts == nil {
		return nil, nil
	}
	conn := res.Project.Run.OutputArtifacts
	out := &runConnection{totalCount: conn.TotalCount, pageInfo: conn.PageInfo}
	for _, edge := range conn.Edges {
		if edge.Node != nil {
			out.nodes = append(out.nodes, edge.Node)
		}
	}
	return out, nil
}

// runArtifact names an artifact after the sequence it was logged to, since a
// run's artifacts may live in other projects.
func runArtifact(client ports.GraphQLClient, run domain.RunRef, node *fragments.ArtifactFragment) (*Artifact, error) {
	entity, project := run.Entity, run.Project
	if p := node.ArtifactSequence.Project; p != nil {
		entity, project = p.EntityName, p.Name
	}
	return NewArtifact(client, entity, project, versionedName(node.ArtifactSequence.Name, node.VersionIndex), node)
}
