package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/verigle/wandb/internal/core/domain"
	"github.com/verigle/wandb/internal/testutil"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, ClampLimit(0))
	assert.Equal(t, 20, ClampLimit(-5))
	assert.Equal(t, 7, ClampLimit(7))
	assert.Equal(t, 100, ClampLimit(1000))
}

func TestArtifactService_ListTypes(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	svc := NewArtifactService(client)

	client.On("Execute", mock.Anything, "ProjectArtifactTypes", mock.MatchedBy(func(vars map[string]any) bool {
		return vars["perPage"] == 2
	})).Return(`{"project":{"artifactTypes":{
		"pageInfo":{"endCursor":"c1","hasNextPage":true},
		"edges":[
			{"node":{"id":"1","name":"dataset","createdAt":"t"}},
			{"node":{"id":"2","name":"model","createdAt":"t"}}
		]}}}`, nil).Once()

	types, err := svc.ListTypes(context.Background(), "e", "p", 2)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "dataset", types[0].Name())
	assert.Equal(t, "<ArtifactType model>", types[1].String())
	client.AssertExpectations(t)
}

func TestArtifactService_GetTypeNotFound(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	svc := NewArtifactService(client)
	client.On("Execute", mock.Anything, "ProjectArtifactType", mock.Anything).Return(`{"project":{"artifactType":null}}`, nil)

	_, err := svc.GetType(context.Background(), "e", "p", "dataset")
	assert.ErrorIs(t, err, domain.ErrArtifactTypeNotFound)
}

func TestArtifactService_ListCollectionsReportsTotal(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	svc := NewArtifactService(client)
	client.On("VersionSupported", mock.Anything, domain.MinVersionArtifactCollections).Return(true, nil)
	client.On("Execute", mock.Anything, "ProjectArtifactCollections", mock.MatchedBy(func(vars map[string]any) bool {
		return vars["perPage"] == 1
	})).Return(`{"project":{"artifactType":{"artifactCollections":{
		"totalCount":5,
		"pageInfo":{"endCursor":"c1","hasNextPage":true},
		"edges":[{"node":{"__typename":"ArtifactSequence","id":"1","name":"mnist","createdAt":"t","defaultArtifactType":{"name":"dataset"},"aliases":{"edges":[]},"tags":{"edges":[]}}}]
	}}}}`, nil).Once()

	colls, total, err := svc.ListCollections(context.Background(), "e", "p", "dataset", 1)
	require.NoError(t, err)
	assert.Len(t, colls, 1)
	assert.Equal(t, 5, total)
	client.AssertExpectations(t)
}

func TestArtifactService_UpdateCollection(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	svc := NewArtifactService(client)
	client.On("VersionSupported", mock.Anything, domain.MinVersionArtifactCollections).Return(true, nil)
	client.On("Execute", mock.Anything, "ProjectArtifactCollection", mock.Anything).Return(sequenceJSON, nil).Once()
	client.On("Execute", mock.Anything, "UpdateArtifactCollection", mock.MatchedBy(func(vars map[string]any) bool {
		return vars["name"] == "mnist-clean"
	})).Return(`{}`, nil).Once()
	client.On("Execute", mock.Anything, "DeleteArtifactCollectionTagAssignments", mock.Anything).Return(`{}`, nil).Once()

	name := "mnist-clean"
	tags := []string{"a"}
	coll, err := svc.UpdateCollection(context.Background(), "e", "p", "dataset", "mnist", CollectionUpdate{
		Name: &name,
		Tags: &tags,
	})
	require.NoError(t, err)
	assert.Equal(t, "mnist-clean", coll.Name())
	assert.Equal(t, []string{"a"}, coll.Tags())
	client.AssertExpectations(t)
}

func TestArtifactService_UpdateCollectionInvalidName(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	svc := NewArtifactService(client)
	client.On("VersionSupported", mock.Anything, domain.MinVersionArtifactCollections).Return(true, nil)
	client.On("Execute", mock.Anything, "ProjectArtifactCollection", mock.Anything).Return(sequenceJSON, nil).Once()

	name := "bad:name"
	_, err := svc.UpdateCollection(context.Background(), "e", "p", "dataset", "mnist", CollectionUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrInvalidArtifactName)
	client.AssertNotCalled(t, "Execute", mock.Anything, "UpdateArtifactCollection", mock.Anything)
}

func TestArtifactService_UpdateVersion(t *testing.T) {
	client := new(testutil.MockGraphQLClient)
	supportAll(client, true)
	svc := NewArtifactService(client)

	client.On("Execute", mock.Anything, "ArtifactByName", mock.MatchedBy(func(vars map[string]any) bool {
		return vars["name"] == "mnist:latest"
	})).Return(artifactByNameJSON, nil).Once()
	client.On("Execute", mock.Anything, "UpdateArtifact", mock.Anything).Return(`{}`, nil).Once()

	desc := "cleaned"
	a, err := svc.UpdateVersion(context.Background(), "e", "p", "mnist", "latest", ArtifactUpdate{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "cleaned", a.Description())
	client.AssertExpectations(t)
}

func TestArtifactService_ListRunArtifactsInvalidMode(t *testing.T) {
	svc := NewArtifactService(new(testutil.MockGraphQLClient))
	_, _, err := svc.ListRunArtifacts(context.Background(), domain.RunRef{Entity: "e", Project: "p", ID: "r"}, "bogus", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidRunArtifactsMode)
}
