package codegen

import (
	"fmt"

	"github.com/dave/dst"
	"github.com/dave/dst/dstutil"
)

// resultRoot is the base of every generated result type. A __typename
// override directly on it declares a new type and is kept.
const resultRoot = "GQLResult"

// isRedundantClass reports whether a struct only re-declares its single
// embedded type. That is the case when the body holds nothing but the
// embedded field, or the embedded field plus a __typename override of a
// parent other than GQLResult.
func isRedundantClass(spec *dst.TypeSpec) bool {
	bases, fields := splitFields(spec)
	if len(bases) != 1 || len(fields) > 1 {
		return false
	}
	if _, ptr := bases[0].Type.(*dst.StarExpr); ptr {
		return false
	}
	if len(fields) == 0 {
		return true
	}
	if localName(bases[0].Type) == resultRoot {
		return false
	}
	return len(fields[0].Names) == 1 && jsonName(fields[0]) == typenameKey
}

// redundantClasses maps each redundant class of the file to the expression
// of the type that replaces it. Chains of redundant classes are resolved to
// the first non-redundant ancestor.
func redundantClasses(file *dst.File) (map[string]dst.Expr, error) {
	parents := map[string]dst.Expr{}
	for _, decl := range file.Decls {
		c, ok := asClassDef(decl)
		if ok && isRedundantClass(c.spec) {
			bases, _ := splitFields(c.spec)
			parents[c.name()] = bases[0].Type
		}
	}

	resolved := make(map[string]dst.Expr, len(parents))
	for name := range parents {
		expr := parents[name]
		seen := map[string]bool{name: true}
		for {
			id, ok := expr.(*dst.Ident)
			if !ok {
				break
			}
			next, ok := parents[id.Name]
			if !ok {
				break
			}
			if seen[id.Name] {
				return nil, fmt.Errorf("%w: %s embeds itself", ErrCyclicHierarchy, name)
			}
			seen[id.Name] = true
			expr = next
		}
		resolved[name] = expr
	}
	return resolved, nil
}

// replaceClasses deletes the declarations of the replaced classes and their
// rebuild calls, then substitutes every type reference to them.
func replaceClasses(file *dst.File, replacements map[string]dst.Expr) {
	if len(replacements) == 0 {
		return
	}

	decls := file.Decls[:0]
	for _, decl := range file.Decls {
		if c, ok := asClassDef(decl); ok {
			if _, drop := replacements[c.name()]; drop {
				continue
			}
		}
		if fn, ok := isInitFunc(decl); ok {
			fn.Body.List = dropRebuilds(fn.Body.List, replacements)
		}
		decls = append(decls, decl)
	}
	file.Decls = decls

	dstutil.Apply(file, func(c *dstutil.Cursor) bool {
		id, ok := c.Node().(*dst.Ident)
		if !ok || !isTypeReference(c) {
			return true
		}
		if repl, ok := replacements[id.Name]; ok {
			c.Replace(dst.Clone(repl))
			return false
		}
		return true
	}, nil)
}

func dropRebuilds(stmts []dst.Stmt, replacements map[string]dst.Expr) []dst.Stmt {
	kept := stmts[:0]
	for _, stmt := range stmts {
		if idx, ok := rebuildIndex(stmt); ok {
			if id, ok := idx.Index.(*dst.Ident); ok {
				if _, drop := replacements[id.Name]; drop {
					continue
				}
			}
		}
		kept = append(kept, stmt)
	}
	return kept
}

// isTypeReference reports whether the identifier under the cursor may name
// a type of the current package, as opposed to a declared name, a field name
// or the selected part of a qualified identifier.
func isTypeReference(c *dstutil.Cursor) bool {
	switch c.Parent().(type) {
	case *dst.SelectorExpr:
		return c.Name() != "Sel"
	case *dst.Field:
		return c.Name() == "Type"
	case *dst.TypeSpec:
		return c.Name() == "Type"
	case *dst.ValueSpec:
		return c.Name() == "Type"
	case *dst.KeyValueExpr:
		return c.Name() == "Value"
	case *dst.File, *dst.FuncDecl, *dst.ImportSpec, *dst.LabeledStmt, *dst.BranchStmt:
		return false
	}
	return true
}
