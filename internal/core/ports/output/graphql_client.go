package ports

import (
	"context"

	"github.com/verigle/wandb/internal/gql"
)

// ============================================================================
// GraphQL Client
// ============================================================================

// GraphQLClient defines the contract for talking to the tracking server's
// GraphQL API.
type GraphQLClient interface {
	// Execute runs doc with vars and decodes the response data into out
	Execute(ctx context.Context, doc *gql.Document, vars map[string]any, out any) error

	// VersionSupported reports whether the server is at least version min
	VersionSupported(ctx context.Context, min string) (bool, error)

	// ServerSupports reports whether the server enables the named feature
	ServerSupports(ctx context.Context, feature string) (bool, error)
}

// StatusError is implemented by transport errors that carry an HTTP status.
type StatusError interface {
	error
	HTTPStatus() int
}

// ResponseError is implemented by errors reported in a GraphQL response body.
type ResponseError interface {
	error
	Messages() []string
}

type requestIDKey struct{}

// WithRequestID returns a context whose GraphQL requests carry id as their
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id set by WithRequestID, if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
