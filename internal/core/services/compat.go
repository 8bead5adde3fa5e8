package services

import (
	"context"
	"fmt"

	"github.com/verigle/wandb/internal/core/domain"
	ports "github.com/verigle/wandb/internal/core/ports/output"
	"github.com/verigle/wandb/internal/gql"
)

// artifactOmitFields lists artifact fragment fields the server cannot
// resolve.
func artifactOmitFields(ctx context.Context, client ports.GraphQLClient) ([]string, error) {
	var omit []string
	ttl, err := client.ServerSupports(ctx, domain.FeatureArtifactTTL)
	if err != nil {
		return nil, normalize(err)
	}
	if !ttl {
		omit = append(omit, "ttlDurationSeconds", "ttlIsInherited")
	}
	tags, err := client.ServerSupports(ctx, domain.FeatureArtifactTags)
	if err != nil {
		return nil, normalize(err)
	}
	if !tags {
		omit = append(omit, "tags")
	}
	return omit, nil
}

// collectionRenames maps artifactCollection fields to their legacy
// artifactSequence names on servers that predate collection edges.
func collectionRenames(ctx context.Context, client ports.GraphQLClient, fields ...string) (map[string]string, error) {
	ok, err := client.VersionSupported(ctx, domain.MinVersionArtifactCollections)
	if err != nil {
		return nil, normalize(err)
	}
	if ok {
		return nil, nil
	}
	rename := make(map[string]string, len(fields))
	for _, f := range fields {
		switch f {
		case "artifactCollections":
			rename[f] = "artifactSequences"
		case "artifactCollection":
			rename[f] = "artifactSequence"
		}
	}
	return rename, nil
}

func compat(doc *gql.Document, omit []string, rename map[string]string) (*gql.Document, error) {
	out, err := gql.Compat(doc, omit, rename)
	if err != nil {
		return nil, fmt.Errorf("prepare %s: %w", doc.Name, err)
	}
	return out, nil
}
