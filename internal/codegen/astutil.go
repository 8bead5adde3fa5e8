package codegen

import (
	"go/token"
	"path"
	"strconv"

	"github.com/dave/dst"
	"github.com/fatih/structtag"
)

// classDef is a generated type declaration holding exactly one type spec.
type classDef struct {
	decl *dst.GenDecl
	spec *dst.TypeSpec
}

func (c classDef) name() string { return c.spec.Name.Name }

// asClassDef reports whether decl is a single-spec type declaration.
func asClassDef(decl dst.Decl) (classDef, bool) {
	gen, ok := decl.(*dst.GenDecl)
	if !ok || gen.Tok != token.TYPE || len(gen.Specs) != 1 {
		return classDef{}, false
	}
	spec, ok := gen.Specs[0].(*dst.TypeSpec)
	if !ok {
		return classDef{}, false
	}
	return classDef{decl: gen, spec: spec}, true
}

func structOf(spec *dst.TypeSpec) (*dst.StructType, bool) {
	st, ok := spec.Type.(*dst.StructType)
	return st, ok && st.Fields != nil
}

// exprName renders an identifier or selector expression as "X" or "pkg.X".
// Pointers are looked through. Anything else yields "".
func exprName(expr dst.Expr) string {
	switch e := expr.(type) {
	case *dst.Ident:
		return e.Name
	case *dst.SelectorExpr:
		if x, ok := e.X.(*dst.Ident); ok {
			return x.Name + "." + e.Sel.Name
		}
	case *dst.StarExpr:
		return exprName(e.X)
	}
	return ""
}

// localName is the unqualified part of an identifier or selector.
func localName(expr dst.Expr) string {
	switch e := expr.(type) {
	case *dst.Ident:
		return e.Name
	case *dst.SelectorExpr:
		return e.Sel.Name
	case *dst.StarExpr:
		return localName(e.X)
	}
	return ""
}

// baseNames returns the names of the embedded fields of a struct type spec.
func baseNames(spec *dst.TypeSpec) []string {
	st, ok := structOf(spec)
	if !ok {
		return nil
	}
	var names []string
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			names = append(names, exprName(f.Type))
		}
	}
	return names
}

// splitFields separates embedded fields from named ones.
func splitFields(spec *dst.TypeSpec) (bases, fields []*dst.Field) {
	st, ok := structOf(spec)
	if !ok {
		return nil, nil
	}
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			bases = append(bases, f)
		} else {
			fields = append(fields, f)
		}
	}
	return bases, fields
}

func selector(pkg, name string) *dst.SelectorExpr {
	return &dst.SelectorExpr{X: dst.NewIdent(pkg), Sel: dst.NewIdent(name)}
}

func embedded(expr dst.Expr) *dst.Field {
	return &dst.Field{Type: expr}
}

// parseTags reads a field's struct tag. A field without a tag yields an
// empty set.
func parseTags(f *dst.Field) (*structtag.Tags, error) {
	if f.Tag == nil {
		return &structtag.Tags{}, nil
	}
	raw, err := strconv.Unquote(f.Tag.Value)
	if err != nil {
		return nil, err
	}
	return structtag.Parse(raw)
}

func setTags(f *dst.Field, tags *structtag.Tags) {
	if tags.Len() == 0 {
		f.Tag = nil
		return
	}
	f.Tag = &dst.BasicLit{Kind: token.STRING, Value: "`" + tags.String() + "`"}
}

func jsonName(f *dst.Field) string {
	tags, err := parseTags(f)
	if err != nil {
		return ""
	}
	tag, err := tags.Get("json")
	if err != nil {
		return ""
	}
	return tag.Name
}

// rebuildCall builds the statement gqlbase.Rebuild[T]().
func rebuildCall(basePkg string, typ dst.Expr) dst.Stmt {
	stmt := &dst.ExprStmt{X: &dst.CallExpr{
		Fun: &dst.IndexExpr{X: selector(basePkg, "Rebuild"), Index: typ},
	}}
	stmt.Decs.Before = dst.NewLine
	stmt.Decs.After = dst.NewLine
	return stmt
}

// rebuildIndex returns the Rebuild[T] expression of a gqlbase.Rebuild[T]()
// statement.
func rebuildIndex(stmt dst.Stmt) (*dst.IndexExpr, bool) {
	es, ok := stmt.(*dst.ExprStmt)
	if !ok {
		return nil, false
	}
	call, ok := es.X.(*dst.CallExpr)
	if !ok || len(call.Args) != 0 {
		return nil, false
	}
	idx, ok := call.Fun.(*dst.IndexExpr)
	if !ok || localName(idx.X) != "Rebuild" {
		return nil, false
	}
	return idx, true
}

func isInitFunc(decl dst.Decl) (*dst.FuncDecl, bool) {
	fn, ok := decl.(*dst.FuncDecl)
	return fn, ok && fn.Recv == nil && fn.Name.Name == "init"
}

func initFunc(stmts []dst.Stmt) *dst.FuncDecl {
	fn := &dst.FuncDecl{
		Name: dst.NewIdent("init"),
		Type: &dst.FuncType{Params: &dst.FieldList{}},
		Body: &dst.BlockStmt{List: stmts},
	}
	fn.Decs.Before = dst.EmptyLine
	return fn
}

// addImport adds pkgPath to the file's first import declaration, creating one
// when the file has none. Existing imports of pkgPath are left alone.
func addImport(file *dst.File, pkgPath string) {
	if _, ok := findImport(file, pkgPath); ok {
		return
	}
	spec := &dst.ImportSpec{Path: &dst.BasicLit{Kind: token.STRING, Value: strconv.Quote(pkgPath)}}
	file.Imports = append(file.Imports, spec)

	for _, decl := range file.Decls {
		if gen, ok := decl.(*dst.GenDecl); ok && gen.Tok == token.IMPORT {
			gen.Specs = append([]dst.Spec{spec}, gen.Specs...)
			gen.Lparen, gen.Rparen = true, true
			return
		}
	}
	decl := &dst.GenDecl{Tok: token.IMPORT, Specs: []dst.Spec{spec}}
	decl.Decs.Before = dst.EmptyLine
	file.Decls = append([]dst.Decl{decl}, file.Decls...)
}

// importSpecs returns every import spec of the file in declaration order.
func importSpecs(file *dst.File) []*dst.ImportSpec {
	var specs []*dst.ImportSpec
	for _, decl := range file.Decls {
		gen, ok := decl.(*dst.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}
		for _, s := range gen.Specs {
			if imp, ok := s.(*dst.ImportSpec); ok {
				specs = append(specs, imp)
			}
		}
	}
	return specs
}

func findImport(file *dst.File, importPathValue string) (*dst.ImportSpec, bool) {
	for _, imp := range importSpecs(file) {
		if importPath(imp) == importPathValue {
			return imp, true
		}
	}
	return nil, false
}

// importPath returns the unquoted path of an import spec.
func importPath(spec *dst.ImportSpec) string {
	p, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return spec.Path.Value
	}
	return p
}

// importName is the package name an import is referred to by in the file.
func importName(spec *dst.ImportSpec) string {
	if spec.Name != nil {
		return spec.Name.Name
	}
	return path.Base(importPath(spec))
}
