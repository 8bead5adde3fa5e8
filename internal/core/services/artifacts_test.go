package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/verigle/wandb/internal/core/domain"
	"github.com/verigle/wandb/internal/testutil"
)

const untaggedNodeJSON = `{
	"__typename":"Artifact","id":"QXJ0aWZhY3Q6NA==",
	"artifactSequence":{"__typename":"ArtifactSequence","name":"mnist"},
	"versionIndex":4,"artifactType":{"name":"dataset"},
	"aliases":[],"tags":[],"state":"COMMITTED","digest":"def",
	"fileCount":1,"size":10,"createdAt":"2024-01-02T00:00:00"
}`

func TestNewArtifacts_DefaultsAndTagFilter(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	supportAll(client, true)
	client.On("Execute", mock.Anything, "ProjectArtifacts", map[string]any{
		"entityName":             "e",
		"projectName":            "p",
		"artifactTypeName":       "dataset",
		"artifactCollectionName": "mnist",
		"order":                  "-createdAt",
		"filters":                `{"state":"COMMITTED"}`,
		"perPage":                50,
		"cursor":                 (*string)(nil),
	}).Return(`{"project":{"artifactType":{"artifactCollection":{"artifacts":{
		"totalCount":2,
		"pageInfo":{"endCursor":"c1","hasNextPage":false},
		"edges":[
			{"version":"v4","cursor":"c0","node":`+untaggedNodeJSON+`},
			{"version":"v3","cursor":"c1","node":`+artifactNodeJSON+`}
		]}}}}}`, nil).Once()

	arts, err := NewArtifacts(context.Background(), client, "e", "p", "mnist", "dataset", ArtifactsOptions{Tags: []string{"a"}})
	require.NoError(t, err)

	all, err := arts.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "mnist:v3", all[0].Name())
	client.AssertExpectations(t)
}

func TestNewArtifacts_InvalidTag(t *testing.T) {
	_, err := NewArtifacts(context.Background(), new(testutil.MockGraphQLClient), "e", "p", "mnist", "dataset",
		ArtifactsOptions{Tags: []string{"bad/tag"}})
	assert.ErrorIs(t, err, domain.ErrInvalidTag)
}

func TestNewArtifacts_MissingCollection(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	supportAll(client, true)
	client.On("Execute", mock.Anything, "ProjectArtifacts", mock.Anything).
		Return(`{"project":{"artifactType":{"artifactCollection":null}}}`, nil)

	arts, err := NewArtifacts(context.Background(), client, "e", "p", "mnist", "dataset", ArtifactsOptions{})
	require.NoError(t, err)

	_, err = arts.Next(context.Background())
	assert.ErrorIs(t, err, domain.ErrArtifactCollectionNotFound)
}

func TestNewRunArtifacts_InvalidMode(t *testing.T) {
	_, err := NewRunArtifacts(context.Background(), new(testutil.MockGraphQLClient),
		domain.RunRef{Entity: "e", Project: "p", ID: "r1"}, "produced", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidRunArtifactsMode)
}

func TestNewRunArtifacts(t *testing.T) {
	tests := []struct {
		mode      domain.RunArtifactsMode
		operation string
		field     string
	}{
		{domain.RunArtifactsLogged, "RunOutputArtifacts", "outputArtifacts"},
		{domain.RunArtifactsUsed, "RunInputArtifacts", "inputArtifacts"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			client := new(testutil.MockGraphQLClient)
			supportAll(client, true)
			client.On("Execute", mock.Anything, tt.operation, mock.MatchedBy(func(vars map[string]any) bool {
				return vars["entity"] == "e" && vars["project"] == "p" && vars["runName"] == "r1"
			})).Return(`{"project":{"run":{"`+tt.field+`":{
				"totalCount":1,
				"pageInfo":{"endCursor":null,"hasNextPage":false},
				"edges":[{"node":`+artifactNodeJSON+`}]
			}}}}`, nil).Once()

			run := domain.RunRef{Entity: "e", Project: "p", ID: "r1"}
			arts, err := NewRunArtifacts(context.Background(), client, run, tt.mode, 10)
			require.NoError(t, err)

			n, err := arts.Len(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			a, err := arts.Next(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "src-e/src-p/mnist:v3", a.QualifiedName())
			client.AssertExpectations(t)
		})
	}
}

func TestNewRunArtifacts_RunNotFound(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	supportAll(client, true)
	client.On("Execute", mock.Anything, "RunOutputArtifacts", mock.Anything).Return(`{"project":{"run":null}}`, nil)

	arts, err := NewRunArtifacts(context.Background(), client, domain.RunRef{Entity: "e", Project: "p", ID: "r1"}, domain.RunArtifactsLogged, 10)
	require.NoError(t, err)

	_, err = arts.Next(context.Background())
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

const filesJSON = `{
	"pageInfo":{"endCursor":"f1","hasNextPage":false},
	"edges":[{"node":{"__typename":"File","id":"RmlsZTox","name":"data.csv","url":"https://x/data.csv",
		"directUrl":"https://d/data.csv","sizeBytes":42,"mimetype":"text/csv","updatedAt":"2024-03-01T10:00:00",
		"digest":"dg","md5":"m5"}}]
}`

func TestArtifactFiles_Membership(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	client.On("ServerSupports", mock.Anything, domain.FeatureArtifactTTL).Return(true, nil)
	client.On("ServerSupports", mock.Anything, domain.FeatureArtifactTags).Return(true, nil)
	client.On("ServerSupports", mock.Anything, domain.FeatureArtifactCollectionMembershipFiles).Return(true, nil)
	client.On("VersionSupported", mock.Anything, domain.MinVersionFileStoragePath).Return(false, nil)
	a := loadArtifact(t, client)

	client.On("Execute", mock.Anything, "ArtifactCollectionMembershipFiles", map[string]any{
		"entityName":           "e",
		"projectName":          "p",
		"artifactName":         "mnist",
		"artifactVersionIndex": "v3",
		"fileNames":            []string{"data.csv"},
		"fileLimit":            25,
		"fileCursor":           (*string)(nil),
	}).Return(`{"project":{"artifactCollection":{"artifactMembership":{"files":`+filesJSON+`}}}}`, nil).Once()

	files, err := a.Files(context.Background(), []string{"data.csv"}, 25)
	require.NoError(t, err)

	n, err := files.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f, err := files.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.File{
		ID:        "RmlsZTox",
		Name:      "data.csv",
		URL:       "https://x/data.csv",
		DirectURL: "https://d/data.csv",
		SizeBytes: 42,
		Mimetype:  "text/csv",
		Digest:    "dg",
		MD5:       "m5",
		UpdatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}, f)

	sources := client.Sources()
	assert.NotContains(t, sources[len(sources)-1], "storagePath")
	client.AssertExpectations(t)
}

func TestArtifactFiles_VersionQuery(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	client.On("ServerSupports", mock.Anything, domain.FeatureArtifactTTL).Return(true, nil)
	client.On("ServerSupports", mock.Anything, domain.FeatureArtifactTags).Return(true, nil)
	client.On("ServerSupports", mock.Anything, domain.FeatureArtifactCollectionMembershipFiles).Return(false, nil)
	client.On("VersionSupported", mock.Anything, domain.MinVersionFileStoragePath).Return(true, nil)
	a := loadArtifact(t, client)

	client.On("Execute", mock.Anything, "ArtifactVersionFiles", mock.MatchedBy(func(vars map[string]any) bool {
		return vars["artifactTypeName"] == "dataset" && vars["artifactName"] == "mnist:v3"
	})).Return(`{"project":{"artifactType":{"artifact":{"files":`+filesJSON+`}}}}`, nil).Once()

	files, err := a.Files(context.Background(), nil, 0)
	require.NoError(t, err)
	all, err := files.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "data.csv", all[0].Name)

	sources := client.Sources()
	assert.Contains(t, sources[len(sources)-1], "storagePath")
	client.AssertExpectations(t)
}
