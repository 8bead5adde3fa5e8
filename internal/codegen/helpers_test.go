package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/stretchr/testify/require"

	"github.com/verigle/wandb/internal/config"
)

const basePath = "github.com/verigle/wandb/internal/gqlbase"

func testConfig(dir string) *config.CodegenConfig {
	return &config.CodegenConfig{
		TargetPackagePath: dir,
		TargetPackageName: "gen",
		QueriesPath:       dir,
		BaseImportPath:    basePath,
		Scalars:           map[string]string{"id": "GQLId"},
		Plugins:           []string{"sdk", "fragment-order"},
	}
}

func parseSrc(t *testing.T, src string) *dst.File {
	t.Helper()
	file, err := decorator.Parse(src)
	require.NoError(t, err)
	return file
}

func printFile(t *testing.T, file *dst.File) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, decorator.Fprint(&buf, file))
	return buf.String()
}

// squash collapses runs of whitespace so assertions do not depend on gofmt
// alignment.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func typeNames(file *dst.File) []string {
	var names []string
	for _, decl := range file.Decls {
		if c, ok := asClassDef(decl); ok {
			names = append(names, c.name())
		}
	}
	return names
}

func findSpec(t *testing.T, file *dst.File, name string) *dst.TypeSpec {
	t.Helper()
	for _, decl := range file.Decls {
		if c, ok := asClassDef(decl); ok && c.name() == name {
			return c.spec
		}
	}
	t.Fatalf("type %s not found", name)
	return nil
}

func rebuildNames(t *testing.T, file *dst.File) []string {
	t.Helper()
	var names []string
	for _, decl := range file.Decls {
		fn, ok := isInitFunc(decl)
		if !ok {
			continue
		}
		for _, stmt := range fn.Body.List {
			idx, ok := rebuildIndex(stmt)
			require.True(t, ok)
			names = append(names, exprName(idx.Index))
		}
	}
	return names
}
