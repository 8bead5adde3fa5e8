package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unorderedFragmentsSrc = `package fragments

import "github.com/verigle/wandb/internal/gqlbase"

type FilesFragmentEdges struct {
	gqlbase.GQLResult
	Node *FileFragment ` + "`json:\"node\"`" + `
}

type ArtifactFragment struct {
	ArtifactFragmentBase
	Digest string ` + "`json:\"digest\"`" + `
}

type FileFragment struct {
	gqlbase.GQLResult
	Name string ` + "`json:\"name\"`" + `
}

type ArtifactFragmentBase struct {
	gqlbase.GQLResult
	ID string ` + "`json:\"id\"`" + `
}

func init() {
	gqlbase.Rebuild[FileFragment]()
}
`

func TestFragmentOrderPlugin(t *testing.T) {
	file := parseSrc(t, unorderedFragmentsSrc)

	file, err := FragmentOrderPlugin{}.GenerateFragmentsModule(file, nil)
	require.NoError(t, err)

	want := []string{"ArtifactFragmentBase", "ArtifactFragment", "FileFragment", "FilesFragmentEdges"}
	assert.Equal(t, want, typeNames(file))
	assert.Equal(t, want, rebuildNames(t, file))

	_, isInit := isInitFunc(file.Decls[len(file.Decls)-1])
	assert.True(t, isInit, "init must be the last declaration")
}

func TestFragmentOrderPlugin_Deterministic(t *testing.T) {
	first, err := FragmentOrderPlugin{}.GenerateFragmentsModule(parseSrc(t, unorderedFragmentsSrc), nil)
	require.NoError(t, err)
	once := printFile(t, first)

	second, err := FragmentOrderPlugin{}.GenerateFragmentsModule(parseSrc(t, once), nil)
	require.NoError(t, err)
	assert.Equal(t, once, printFile(t, second))
}

func TestFragmentOrderPlugin_UnexpectedStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "extra var and function",
			src: `package fragments

import "github.com/verigle/wandb/internal/gqlbase"

var registry = map[string]bool{}

type A struct{ gqlbase.GQLResult }

func helper() {}

func init() {}
`,
			want: []string{"extra: func helper, var", ErrUnexpectedStatements.Error()},
		},
		{
			name: "missing init and imports",
			src: `package fragments

type A struct{}
`,
			want: []string{"missing: import, init"},
		},
		{
			name: "grouped type declaration",
			src: `package fragments

import "github.com/verigle/wandb/internal/gqlbase"

type (
	A struct{ gqlbase.GQLResult }
	B struct{ gqlbase.GQLResult }
)

func init() {}
`,
			want: []string{"extra: grouped type", "missing: type"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FragmentOrderPlugin{}.GenerateFragmentsModule(parseSrc(t, tt.src), nil)
			require.ErrorIs(t, err, ErrUnexpectedStatements)
			for _, part := range tt.want {
				assert.Contains(t, err.Error(), part)
			}
		})
	}
}

func TestFragmentOrderPlugin_Cycle(t *testing.T) {
	src := `package fragments

import "github.com/verigle/wandb/internal/gqlbase"

type A struct{ B }

type B struct{ A }

func init() { gqlbase.Rebuild[A]() }
`
	_, err := FragmentOrderPlugin{}.GenerateFragmentsModule(parseSrc(t, src), nil)
	assert.ErrorIs(t, err, ErrCyclicHierarchy)
}

func TestFragmentOrderPlugin_RebuildsOnePerLine(t *testing.T) {
	src := `package fragments

import "github.com/verigle/wandb/internal/gqlbase"

type B struct{ gqlbase.GQLResult }

type A struct{ gqlbase.GQLResult }

func init() {}
`
	file, err := FragmentOrderPlugin{}.GenerateFragmentsModule(parseSrc(t, src), nil)
	require.NoError(t, err)

	assert.Contains(t, printFile(t, file), "func init() {\n\tgqlbase.Rebuild[A]()\n\tgqlbase.Rebuild[B]()\n}")
}
