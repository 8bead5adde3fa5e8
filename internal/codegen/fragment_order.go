package codegen

import (
	"fmt"
	"go/token"
	"sort"
	"strings"

	"github.com/dave/dst"
	"github.com/vektah/gqlparser/v2/ast"
)

// Statement kinds expected in the fragments module.
const (
	kindImport = "import"
	kindType   = "type"
	kindInit   = "init"
)

// FragmentOrderPlugin makes the order of the fragments module deterministic:
// type declarations are sorted so that embedded types come first and the
// init function is regenerated with one rebuild call per type, in the same
// order.
type FragmentOrderPlugin struct {
	BasePlugin
}

func (FragmentOrderPlugin) GenerateFragmentsModule(file *dst.File, _ map[string]*ast.FragmentDefinition) (*dst.File, error) {
	var (
		imports []dst.Decl
		defs    []classDef
		rebuild string
		found   = map[string]bool{}
		extra   = map[string]bool{}
	)

	for _, decl := range file.Decls {
		if fn, ok := isInitFunc(decl); ok {
			found[kindInit] = true
			if pkg := rebuildPackage(fn); pkg != "" {
				rebuild = pkg
			}
			continue
		}
		if c, ok := asClassDef(decl); ok {
			found[kindType] = true
			defs = append(defs, c)
			continue
		}
		if gen, ok := decl.(*dst.GenDecl); ok && gen.Tok == token.IMPORT {
			found[kindImport] = true
			imports = append(imports, decl)
			continue
		}
		extra[declKind(decl)] = true
	}

	var missing []string
	for _, kind := range []string{kindImport, kindType, kindInit} {
		if !found[kind] {
			missing = append(missing, kind)
		}
	}
	if len(extra) > 0 || len(missing) > 0 {
		return nil, unexpectedStatements(keys(extra), missing)
	}

	sorted, err := sortClassDefs(defs)
	if err != nil {
		return nil, fmt.Errorf("sort fragments: %w", err)
	}
	if rebuild == "" {
		rebuild = "gqlbase"
	}

	decls := make([]dst.Decl, 0, len(imports)+len(sorted)+1)
	decls = append(decls, imports...)
	stmts := make([]dst.Stmt, 0, len(sorted))
	for _, c := range sorted {
		c.decl.Decs.Before = dst.EmptyLine
		decls = append(decls, c.decl)
		stmts = append(stmts, rebuildCall(rebuild, dst.NewIdent(c.name())))
	}
	file.Decls = append(decls, initFunc(stmts))
	return file, nil
}

// rebuildPackage returns the package qualifier used by the rebuild calls of
// an existing init function.
func rebuildPackage(fn *dst.FuncDecl) string {
	for _, stmt := range fn.Body.List {
		idx, ok := rebuildIndex(stmt)
		if !ok {
			continue
		}
		if sel, ok := idx.X.(*dst.SelectorExpr); ok {
			if x, ok := sel.X.(*dst.Ident); ok {
				return x.Name
			}
		}
	}
	return ""
}

func declKind(decl dst.Decl) string {
	switch d := decl.(type) {
	case *dst.FuncDecl:
		if d.Recv != nil {
			return "method " + d.Name.Name
		}
		return "func " + d.Name.Name
	case *dst.GenDecl:
		if d.Tok == token.TYPE {
			return "grouped type"
		}
		return d.Tok.String()
	}
	return fmt.Sprintf("%T", decl)
}

func unexpectedStatements(extra, missing []string) error {
	var parts []string
	if len(extra) > 0 {
		parts = append(parts, "extra: "+strings.Join(extra, ", "))
	}
	if len(missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(missing, ", "))
	}
	return fmt.Errorf("%w: %s", ErrUnexpectedStatements, strings.Join(parts, "; "))
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
