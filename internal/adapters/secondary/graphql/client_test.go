package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	circuit "github.com/rubyist/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verigle/wandb/internal/config"
	ports "github.com/verigle/wandb/internal/core/ports/output"
	"github.com/verigle/wandb/internal/gen/documents"
	"github.com/verigle/wandb/internal/gen/operations"
	"github.com/verigle/wandb/internal/gql"
	"github.com/verigle/wandb/internal/gqlbase"
)

var artifactTypeDoc = gql.MustParse(documents.ProjectArtifactTypeGQL)

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{
		WithHTTPClient(srv.Client()),
		WithInitialInterval(time.Millisecond),
	}, opts...)
	c := NewGraphQLClient(
		&config.APIConfig{URL: srv.URL, Key: "secret", Timeout: 5 * time.Second},
		&config.RetryConfig{MaxAttempts: 3, MaxElapsed: 5 * time.Second, BreakerThreshold: 10},
		opts...,
	)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func decodeRequest(t *testing.T, r *http.Request) request {
	t.Helper()
	var req request
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req
}

func TestExecute_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/graphql", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "api", user)
		assert.Equal(t, "secret", pass)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		req := decodeRequest(t, r)
		assert.Equal(t, "ProjectArtifactType", req.OperationName)
		assert.Equal(t, "dataset", req.Variables["artifactTypeName"])

		_, _ = w.Write([]byte(`{"data":{"project":{"artifactType":{"__typename":"ArtifactType","id":"QXJ0aWZhY3RUeXBlOjE=","name":"dataset","createdAt":"2024-01-01T00:00:00"}}}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	var out operations.ProjectArtifactType
	err := c.Execute(context.Background(), artifactTypeDoc, map[string]any{
		"entityName": "e", "projectName": "p", "artifactTypeName": "dataset",
	}, &out)
	require.NoError(t, err)
	require.NotNil(t, out.Project)
	require.NotNil(t, out.Project.ArtifactType)
	assert.Equal(t, "dataset", out.Project.ArtifactType.Name)
	assert.Equal(t, "QXJ0aWZhY3RUeXBlOjE=", out.Project.ArtifactType.ID)
}

func TestExecute_PropagatesRequestID(t *testing.T) {
	var seen atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.Store(r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"data":{"project":null}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := ports.WithRequestID(context.Background(), "req-123")
	var out operations.ProjectArtifactType
	require.NoError(t, c.Execute(ctx, artifactTypeDoc, nil, &out))
	assert.Equal(t, "req-123", seen.Load())
}

func TestExecute_GraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"project not found","path":["project"]}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	err := c.Execute(context.Background(), artifactTypeDoc, nil, &operations.ProjectArtifactType{})

	var gqlErrs *GraphQLErrors
	require.ErrorAs(t, err, &gqlErrs)
	assert.Equal(t, "ProjectArtifactType", gqlErrs.Operation)
	assert.Contains(t, err.Error(), "project not found")
}

func TestExecute_ValidationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"project":{"artifactType":{"__typename":"Project","id":"","name":"dataset"}}}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	err := c.Execute(context.Background(), artifactTypeDoc, nil, &operations.ProjectArtifactType{})

	var ve *gqlbase.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Fields)
}

func TestExecute_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"project":null}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	var out operations.ProjectArtifactType
	err := c.Execute(context.Background(), artifactTypeDoc, nil, &out)
	require.NoError(t, err)
	assert.Nil(t, out.Project)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestExecute_RetriesRateLimit(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"project":null}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	require.NoError(t, c.Execute(context.Background(), artifactTypeDoc, nil, &operations.ProjectArtifactType{}))
	assert.Equal(t, int32(2), attempts.Load())
}

func TestExecute_GivesUpAfterMaxRetries(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, WithMaxRetries(2))
	err := c.Execute(context.Background(), artifactTypeDoc, nil, &operations.ProjectArtifactType{})
	assert.ErrorIs(t, err, ErrUpstreamDown)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestExecute_ZeroRetriesMakesOneAttempt(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewGraphQLClient(
		&config.APIConfig{URL: srv.URL, Key: "secret", Timeout: 5 * time.Second},
		&config.RetryConfig{MaxAttempts: 0, MaxElapsed: 300 * time.Millisecond, BreakerThreshold: 10},
		WithHTTPClient(srv.Client()),
		WithInitialInterval(time.Millisecond),
	)
	t.Cleanup(func() { _ = c.Close() })

	err := c.Execute(context.Background(), artifactTypeDoc, nil, &operations.ProjectArtifactType{})
	assert.ErrorIs(t, err, ErrUpstreamDown)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestExecute_UnauthorizedIsNotRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	err := c.Execute(context.Background(), artifactTypeDoc, nil, &operations.ProjectArtifactType{})
	assert.ErrorIs(t, err, ErrUnauthorized)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
	assert.False(t, c.Tripped())
}

func TestExecute_BreakerOpens(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	breaker := circuit.NewBreakerWithOptions(&circuit.Options{ShouldTrip: circuit.ThresholdTripFunc(1)})
	c := newTestClient(t, srv, WithMaxRetries(0), WithBreaker(breaker))

	err := c.Execute(context.Background(), artifactTypeDoc, nil, &operations.ProjectArtifactType{})
	require.Error(t, err)
	assert.True(t, c.Tripped())

	err = c.Execute(context.Background(), artifactTypeDoc, nil, &operations.ProjectArtifactType{})
	assert.ErrorIs(t, err, ErrUpstreamDown)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestExecute_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Execute(ctx, artifactTypeDoc, nil, &operations.ProjectArtifactType{})
	require.Error(t, err)
	assert.False(t, c.Tripped())
}

func serverInfoHandler(calls *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"data":{"serverInfo":{
			"cliVersionInfo":{"max_cli_version":"0.16.1"},
			"features":[{"name":"ARTIFACT_TAGS","isEnabled":true},{"name":"ARTIFACT_TTL","isEnabled":false}]
		}}}`))
	}
}

func TestVersionSupported(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(serverInfoHandler(&calls))
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := context.Background()

	tests := []struct {
		min  string
		want bool
	}{
		{"0.12.11", true},
		{"0.16.1", true},
		{"0.16.2", false},
		{"1.0.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.min, func(t *testing.T) {
			got, err := c.VersionSupported(ctx, tt.min)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, int32(1), calls.Load(), "server info is fetched once")

	_, err := c.VersionSupported(ctx, "not-a-version")
	assert.Error(t, err)
}

func TestVersionSupported_NoVersionReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"serverInfo":{"cliVersionInfo":null,"features":[]}}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	ok, err := c.VersionSupported(context.Background(), "0.1.0")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServerSupports(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(serverInfoHandler(&calls))
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := context.Background()

	ok, err := c.ServerSupports(ctx, "ARTIFACT_TAGS")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.ServerSupports(ctx, "ARTIFACT_TTL")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.ServerSupports(ctx, "UNKNOWN")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int32(1), calls.Load())
}
