package gql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collectionsQuery = `query ProjectArtifactCollections($entityName: String!, $projectName: String!, $cursor: String) {
  project(name: $projectName, entityName: $entityName) {
    artifactType(name: "model") {
      artifactCollections(after: $cursor) {
        totalCount
        edges { node { ...CollectionFields } }
      }
    }
  }
}

fragment CollectionFields on ArtifactCollection {
  id
  name
  ttlDurationSeconds
  ... on ArtifactSequence { storagePath: name ttlIsInherited }
}`

func TestParse(t *testing.T) {
	doc, err := Parse(collectionsQuery)
	require.NoError(t, err)
	assert.Equal(t, "ProjectArtifactCollections", doc.Name)

	_, err = Parse("fragment F on T { id }")
	assert.Error(t, err)

	_, err = Parse("query {")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParse("{{") })
}

func TestCompat_NoOptionsReturnsSameDocument(t *testing.T) {
	doc := MustParse(collectionsQuery)
	out, err := Compat(doc, nil, nil)
	require.NoError(t, err)
	assert.Same(t, doc, out)
}

func TestCompat_RenameKeepsResponseKey(t *testing.T) {
	doc := MustParse(collectionsQuery)
	out, err := Compat(doc, nil, map[string]string{"artifactCollections": "artifactSequences"})
	require.NoError(t, err)

	assert.Equal(t, doc.Name, out.Name)
	assert.Contains(t, out.Source, "artifactCollections: artifactSequences")

	reparsed, err := Parse(out.Source)
	require.NoError(t, err)
	assert.Equal(t, "ProjectArtifactCollections", reparsed.Name)
}

func TestCompat_OmitFieldsEverywhere(t *testing.T) {
	doc := MustParse(collectionsQuery)
	out, err := Compat(doc, []string{"ttlDurationSeconds", "ttlIsInherited"}, nil)
	require.NoError(t, err)

	assert.NotContains(t, out.Source, "ttlDurationSeconds")
	assert.NotContains(t, out.Source, "ttlIsInherited")
	assert.Contains(t, out.Source, "totalCount")
}

func TestCompat_Cached(t *testing.T) {
	doc := MustParse(collectionsQuery)
	first, err := Compat(doc, []string{"totalCount", "id"}, nil)
	require.NoError(t, err)
	second, err := Compat(doc, []string{"id", "totalCount"}, nil)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCompat_DropsUnreachableFragments(t *testing.T) {
	const src = `query ArtifactByName($name: String!) {
  project(name: "p") {
    artifact(name: $name) { id tags { ...TagFields } }
  }
}

fragment TagFields on Tag { id name ...TagExtra }

fragment TagExtra on Tag { createdAt }`

	out, err := Compat(MustParse(src), []string{"tags"}, nil)
	require.NoError(t, err)
	assert.NotContains(t, out.Source, "fragment TagFields")
	assert.NotContains(t, out.Source, "fragment TagExtra")

	kept, err := Compat(MustParse(src), []string{"createdAt"}, nil)
	require.NoError(t, err)
	assert.Contains(t, kept.Source, "fragment TagFields")
	assert.Contains(t, kept.Source, "fragment TagExtra")
}
