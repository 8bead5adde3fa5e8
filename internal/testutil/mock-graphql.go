package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/verigle/wandb/internal/gql"
)

// MockGraphQLClient is a mock of ports.GraphQLClient. Execute is matched on
// the operation name and variables and returns a JSON data payload that is
// decoded into out.
type MockGraphQLClient struct {
	mock.Mock

	mu      sync.Mutex
	sources []string
}

func (m *MockGraphQLClient) Execute(ctx context.Context, doc *gql.Document, vars map[string]any, out any) error {
	m.mu.Lock()
	m.sources = append(m.sources, doc.Source)
	m.mu.Unlock()

	args := m.Called(ctx, doc.Name, vars)
	if err := args.Error(1); err != nil {
		return err
	}
	data := args.String(0)
	if data == "" || out == nil {
		return nil
	}
	return json.Unmarshal([]byte(data), out)
}

func (m *MockGraphQLClient) VersionSupported(ctx context.Context, min string) (bool, error) {
	args := m.Called(ctx, min)
	return args.Bool(0), args.Error(1)
}

func (m *MockGraphQLClient) ServerSupports(ctx context.Context, feature string) (bool, error) {
	args := m.Called(ctx, feature)
	return args.Bool(0), args.Error(1)
}

// Sources returns the source of every document passed to Execute, in call
// order.
func (m *MockGraphQLClient) Sources() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sources...)
}
