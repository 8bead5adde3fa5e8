package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/verigle/wandb/internal/core/domain"
	"github.com/verigle/wandb/internal/core/services"
	"github.com/verigle/wandb/internal/testutil"
)

const basePath = "/api/v1/artifacts/e/p"

const collectionJSON = `{"project":{"artifactType":{"artifactCollection":{
	"__typename":"ArtifactSequence","id":"QXJ0aWZhY3RTZXF1ZW5jZTox","name":"mnist",
	"description":"digits","createdAt":"2024-01-01T00:00:00",
	"project":{"name":"p","entityName":"e"},
	"defaultArtifactType":{"name":"dataset"},
	"aliases":{"edges":[{"node":{"alias":"latest"}}]},
	"tags":{"edges":[{"node":{"id":"t1","name":"a"}}]}
}}}}`

const artifactJSON = `{"project":{"artifact":{
	"__typename":"Artifact","id":"QXJ0aWZhY3Q6Mw==",
	"artifactSequence":{"__typename":"ArtifactSequence","name":"mnist","project":{"name":"p","entityName":"e"}},
	"versionIndex":3,
	"artifactType":{"name":"dataset"},
	"description":"digits",
	"metadata":"{}",
	"ttlDurationSeconds":-1,"ttlIsInherited":true,
	"aliases":[{"alias":"latest","artifactCollection":{"__typename":"ArtifactSequence","name":"mnist"}}],
	"tags":[{"id":"t1","name":"a"}],
	"state":"COMMITTED","digest":"abc","commitHash":"h1",
	"fileCount":1,"size":100,"createdAt":"2024-01-01T00:00:00","updatedAt":null
}}}`

func setupRouter() (*testutil.MockGraphQLClient, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	client := new(testutil.MockGraphQLClient)
	client.On("VersionSupported", mock.Anything, mock.Anything).Return(true, nil).Maybe()
	client.On("ServerSupports", mock.Anything, mock.Anything).Return(true, nil).Maybe()

	h := New(services.NewArtifactService(client))
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1/artifacts"))
	return client, r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// ============================================================================
// Artifact Types
// ============================================================================

func TestListArtifactTypes_DefaultLimit(t *testing.T) {
	client, r := setupRouter()
	client.On("Execute", mock.Anything, "ProjectArtifactTypes", mock.MatchedBy(func(vars map[string]any) bool {
		return vars["perPage"] == 20 && vars["entityName"] == "e" && vars["projectName"] == "p"
	})).Return(`{"project":{"artifactTypes":{
		"pageInfo":{"endCursor":"c1","hasNextPage":false},
		"edges":[{"node":{"id":"1","name":"dataset","createdAt":"t"}}]}}}`, nil).Once()

	w := do(r, http.MethodGet, basePath+"/types", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, float64(20), resp["page_size"])
	items := resp["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "dataset", items[0].(map[string]any)["name"])
	client.AssertExpectations(t)
}

func TestListArtifactTypes_LimitCapped(t *testing.T) {
	client, r := setupRouter()
	client.On("Execute", mock.Anything, "ProjectArtifactTypes", mock.MatchedBy(func(vars map[string]any) bool {
		return vars["perPage"] == 100
	})).Return(`{"project":{"artifactTypes":{"pageInfo":{"endCursor":null,"hasNextPage":false},"edges":[]}}}`, nil).Once()

	w := do(r, http.MethodGet, basePath+"/types?limit=5000", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(100), decode(t, w)["page_size"])
	client.AssertExpectations(t)
}

func TestGetArtifactType_NotFound(t *testing.T) {
	client, r := setupRouter()
	client.On("Execute", mock.Anything, "ProjectArtifactType", mock.Anything).Return(`{"project":{"artifactType":null}}`, nil)

	w := do(r, http.MethodGet, basePath+"/types/dataset", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode(t, w)["error"], "artifact type not found")
}

// ============================================================================
// Artifact Collections
// ============================================================================

func TestGetCollection(t *testing.T) {
	client, r := setupRouter()
	client.On("Execute", mock.Anything, "ProjectArtifactCollection", mock.Anything).Return(collectionJSON, nil).Once()

	w := do(r, http.MethodGet, basePath+"/types/dataset/collections/mnist", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "mnist", resp["name"])
	assert.Equal(t, true, resp["is_sequence"])
	assert.Equal(t, []any{"a"}, resp["tags"])
	assert.Equal(t, []any{"latest"}, resp["aliases"])
}

func TestUpdateCollection_TagDiff(t *testing.T) {
	client, r := setupRouter()
	client.On("Execute", mock.Anything, "ProjectArtifactCollection", mock.Anything).Return(collectionJSON, nil).Once()
	client.On("Execute", mock.Anything, "UpdateArtifactCollection", mock.MatchedBy(func(vars map[string]any) bool {
		return vars["name"] == "mnist"
	})).Return(`{}`, nil).Once()
	client.On("Execute", mock.Anything, "CreateArtifactCollectionTagAssignments", mock.Anything).Return(`{}`, nil).Once()
	client.On("Execute", mock.Anything, "DeleteArtifactCollectionTagAssignments", mock.Anything).Return(`{}`, nil).Once()

	w := do(r, http.MethodPatch, basePath+"/types/dataset/collections/mnist", map[string]any{
		"tags": []string{"b"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"b"}, decode(t, w)["tags"])
	client.AssertExpectations(t)
}

func TestUpdateCollection_InvalidTag(t *testing.T) {
	client, r := setupRouter()
	client.On("Execute", mock.Anything, "ProjectArtifactCollection", mock.Anything).Return(collectionJSON, nil).Once()

	w := do(r, http.MethodPatch, basePath+"/types/dataset/collections/mnist", map[string]any{
		"tags": []string{"bad/tag"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	client.AssertNotCalled(t, "Execute", mock.Anything, "CreateArtifactCollectionTagAssignments", mock.Anything)
}

func TestUpdateCollection_BadBody(t *testing.T) {
	_, r := setupRouter()

	w := do(r, http.MethodPatch, basePath+"/types/dataset/collections/mnist", map[string]any{
		"name": "",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCollection(t *testing.T) {
	client, r := setupRouter()
	client.On("Execute", mock.Anything, "ProjectArtifactCollection", mock.Anything).Return(collectionJSON, nil).Once()
	client.On("Execute", mock.Anything, "DeleteArtifactCollection", mock.Anything).Return(`{}`, nil).Once()

	w := do(r, http.MethodDelete, basePath+"/types/dataset/collections/mnist", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	client.AssertExpectations(t)
}

// ============================================================================
// Artifact Versions
// ============================================================================

func TestGetVersion(t *testing.T) {
	client, r := setupRouter()
	client.On("Execute", mock.Anything, "ArtifactByName", mock.MatchedBy(func(vars map[string]any) bool {
		return vars["name"] == "mnist:latest"
	})).Return(artifactJSON, nil).Once()

	w := do(r, http.MethodGet, basePath+"/types/dataset/collections/mnist/versions/latest", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "mnist:v3", resp["name"])
	assert.Equal(t, "v3", resp["version"])
	assert.Equal(t, "COMMITTED", resp["state"])
	assert.Nil(t, resp["ttl_seconds"])
}

func TestGetVersion_NotFound(t *testing.T) {
	client, r := setupRouter()
	client.On("Execute", mock.Anything, "ArtifactByName", mock.Anything).Return(`{"project":{"artifact":null}}`, nil)

	w := do(r, http.MethodGet, basePath+"/types/dataset/collections/mnist/versions/v9", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRunArtifacts_InvalidMode(t *testing.T) {
	_, r := setupRouter()

	w := do(r, http.MethodGet, basePath+"/runs/r1/artifacts?mode=both", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], domain.ErrInvalidRunArtifactsMode.Error())
}

// ============================================================================
// Error Mapping
// ============================================================================

func TestMapDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrArtifactCollectionNotFound, http.StatusNotFound},
		{"validation", &domain.ValidationError{Kind: domain.ErrInvalidTag, Value: "x/y", Reason: "bad"}, http.StatusBadRequest},
		{"business rule", domain.ErrTypeChangeNotSequence, http.StatusBadRequest},
		{"unauthorized", &domain.CommError{Message: "denied", StatusCode: http.StatusUnauthorized}, http.StatusUnauthorized},
		{"upstream", &domain.CommError{Message: "boom", StatusCode: http.StatusInternalServerError}, http.StatusBadGateway},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			mapDomainError(c, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
