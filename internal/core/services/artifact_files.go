package services

import (
	"context"
	"fmt"
	"time"

	"github.com/verigle/wandb/internal/core/domain"
	ports "github.com/verigle/wandb/internal/core/ports/output"
	"github.com/verigle/wandb/internal/gen/fragments"
	"github.com/verigle/wandb/internal/gen/operations"
	"github.com/verigle/wandb/internal/gql"
)

// ArtifactFiles lists the files of one artifact version.
type ArtifactFiles struct {
	*SizedPaginator[domain.File]
	Artifact *Artifact
}

func NewArtifactFiles(ctx context.Context, client ports.GraphQLClient, a *Artifact, names []string, perPage int) (*ArtifactFiles, error) {
	if a.ID() == "" {
		return nil, domain.ErrArtifactNotLoaded
	}

	membership, err := client.ServerSupports(ctx, domain.FeatureArtifactCollectionMembershipFiles)
	if err != nil {
		return nil, normalize(err)
	}
	storagePath, err := client.VersionSupported(ctx, domain.MinVersionFileStoragePath)
	if err != nil {
		return nil, normalize(err)
	}

	var omit []string
	if !storagePath {
		omit = append(omit, "storagePath")
	}

	vars := map[string]any{
		"entityName":  a.Entity(),
		"projectName": a.Project(),
		"fileNames":   names,
	}
	base := artifactVersionFilesDoc
	if membership {
		base = artifactMembershipFilesDoc
		vars["artifactName"] = a.CollectionName()
		vars["artifactVersionIndex"] = a.Version()
	} else {
		vars["artifactTypeName"] = a.Type()
		vars["artifactName"] = a.Name()
	}
	doc, err := compat(base, omit, nil)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, vars map[string]any) (*page[domain.File], error) {
		conn, err := fetchFiles(ctx, client, doc, membership, vars)
		if err != nil {
			return nil, err
		}
		if conn == nil {
			return nil, fmt.Errorf("files of %s: %w", a.QualifiedName(), domain.ErrArtifactNotFound)
		}
		pg := &page[domain.File]{
			endCursor: conn.PageInfo.EndCursor,
			hasNext:   conn.PageInfo.HasNextPage,
		}
		for _, edge := range conn.Edges {
			if edge.Node == nil {
				continue
			}
			pg.items = append(pg.items, toFile(edge.Node))
		}
		return pg, nil
	}

	files := &ArtifactFiles{
		SizedPaginator: newSizedPaginator(fetch, vars, perPage),
		Artifact:       a,
	}
	files.perPageVar = "fileLimit"
	files.cursorVar = "fileCursor"
	files.length = func() (int, bool) { return int(a.FileCount()), true }
	return files, nil
}

func fetchFiles(ctx context.Context, client ports.GraphQLClient, doc *gql.Document, membership bool, vars map[string]any) (*fragments.FilesFragment, error) {
	if membership {
		var res operations.ArtifactCollectionMembershipFiles
		if err := client.Execute(ctx, doc, vars, &res); err != nil {
			return nil, err
		}
		p := res.Project
		if p == nil || p.ArtifactCollection == nil || p.ArtifactCollection.ArtifactMembership == nil {
			return nil, nil
		}
		return p.ArtifactCollection.ArtifactMembership.Files, nil
	}

	var res operations.ArtifactVersionFiles
	if err := client.Execute(ctx, doc, vars, &res); err != nil {
		return nil, err
	}
	p := res.Project
	if p == nil || p.ArtifactType == nil || p.ArtifactType.Artifact == nil {
		return nil, nil
	}
	return p.ArtifactType.Artifact.Files, nil
}

func toFile(f *fragments.FileFragment) domain.File {
	out := domain.File{
		ID:          f.ID,
		Name:        f.Name,
		URL:         deref(f.URL),
		DirectURL:   f.DirectURL,
		SizeBytes:   f.SizeBytes,
		Mimetype:    deref(f.Mimetype),
		Digest:      deref(f.Digest),
		MD5:         f.MD5,
		StoragePath: deref(f.StoragePath),
	}
	if f.UpdatedAt != nil {
		if t, err := time.Parse(time.RFC3339, *f.UpdatedAt); err == nil {
			out.UpdatedAt = t
		} else if t, err := time.Parse("2006-01-02T15:04:05", *f.UpdatedAt); err == nil {
			out.UpdatedAt = t
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
