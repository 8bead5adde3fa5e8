package wandb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verigle/wandb/internal/adapters/secondary/graphql"
)

type gqlRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

const serverInfoData = `{"serverInfo":{
	"cliVersionInfo":{"max_cli_version":"0.19.0"},
	"features":[{"name":"ARTIFACT_TAGS","isEnabled":true},{"name":"ARTIFACT_TTL","isEnabled":false}]
}}`

const artifactData = `{"project":{"artifact":{
	"__typename":"Artifact","id":"QXJ0aWZhY3Q6MQ==",
	"artifactSequence":{"__typename":"ArtifactSequence","name":"digits","project":{"name":"mnist","entityName":"team"}},
	"versionIndex":1,"artifactType":{"name":"dataset"},
	"aliases":[{"alias":"latest","artifactCollection":{"__typename":"ArtifactSequence","name":"digits"}}],
	"tags":[],"state":"COMMITTED","digest":"d","fileCount":0,"size":0,"createdAt":"2024-01-01T00:00:00"
}}}`

func newTestAPI(t *testing.T, handle func(req gqlRequest) string) *API {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		data := serverInfoData
		if req.OperationName != "ServerInfo" {
			data = handle(req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":` + data + `}`))
	}))
	t.Cleanup(srv.Close)

	api := New(&Config{
		API:   APIConfig{URL: srv.URL, Key: "k", Entity: "team", Timeout: 5 * time.Second, PerPage: 10},
		Retry: RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxElapsed: time.Second},
	}, graphql.WithHTTPClient(srv.Client()))
	t.Cleanup(func() { _ = api.Close() })
	return api
}

func TestAPI_ArtifactDefaultsToLatest(t *testing.T) {
	var got gqlRequest
	api := newTestAPI(t, func(req gqlRequest) string {
		got = req
		return artifactData
	})

	art, err := api.Artifact(context.Background(), "mnist/digits")
	require.NoError(t, err)

	assert.Equal(t, "ArtifactByName", got.OperationName)
	assert.Equal(t, "team", got.Variables["entityName"])
	assert.Equal(t, "mnist", got.Variables["projectName"])
	assert.Equal(t, "digits:latest", got.Variables["name"])
	assert.NotContains(t, got.Query, "ttlDurationSeconds")
	assert.Contains(t, got.Query, "TagFragment")
	assert.Equal(t, "team/mnist/digits:v1", art.QualifiedName())
}

func TestAPI_InvalidPaths(t *testing.T) {
	api := New(&Config{API: APIConfig{URL: "http://127.0.0.1:1"}})
	t.Cleanup(func() { _ = api.Close() })

	_, err := api.ArtifactTypes("team/mnist/extra")
	assert.Error(t, err)

	_, err = api.Artifact(context.Background(), "digits")
	assert.ErrorIs(t, err, ErrInvalidArtifactPath)

	_, err = api.Artifact(context.Background(), "a/b/c/d")
	assert.ErrorIs(t, err, ErrInvalidArtifactPath)
}

func TestAPI_ArtifactTypes(t *testing.T) {
	api := newTestAPI(t, func(req gqlRequest) string {
		assert.Equal(t, "ProjectArtifactTypes", req.OperationName)
		assert.EqualValues(t, 10, req.Variables["perPage"])
		return `{"project":{"artifactTypes":{
			"pageInfo":{"endCursor":null,"hasNextPage":false},
			"edges":[{"node":{"__typename":"ArtifactType","id":"1","name":"dataset","createdAt":"t"}}]
		}}}`
	})

	types, err := api.ArtifactTypes("mnist")
	require.NoError(t, err)

	all, err := types.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "dataset", all[0].Name())
	assert.Equal(t, "team", all[0].Entity())
}
