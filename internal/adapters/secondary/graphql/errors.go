package graphql

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthorized = errors.New("unauthorized: check the API key")
	ErrRateLimited  = errors.New("rate limited by tracking server")
	ErrUpstreamDown = errors.New("tracking server unavailable")
)

// HTTPError is a non-2xx response from the GraphQL endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	if body == "" {
		return fmt.Sprintf("graphql: HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("graphql: HTTP %d: %v: %s", e.StatusCode, e.Err, body)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// GraphQLError is one entry of the "errors" array of a response.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// GraphQLErrors is returned when the server answered with a non-empty
// "errors" array.
type GraphQLErrors struct {
	Operation string
	Errors    []GraphQLError
}

func (e *GraphQLErrors) Error() string {
	return fmt.Sprintf("graphql %s: %s", e.Operation, strings.Join(e.Messages(), "; "))
}

func (e *HTTPError) HTTPStatus() int { return e.StatusCode }

func (e *GraphQLErrors) Messages() []string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return msgs
}
