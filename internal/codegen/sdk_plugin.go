package codegen

import (
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dave/dst"
	"github.com/fatih/structtag"
	log "github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/ast"
	"golang.org/x/tools/imports"

	"github.com/verigle/wandb/internal/config"
	"github.com/verigle/wandb/internal/gqlbase"
)

const (
	typenameKey   = "__typename"
	defaultIDType = "GQLId"
)

// modulesToDrop are generated packages replaced by the hand-written GraphQL
// transport and gqlbase.
var modulesToDrop = []string{
	"asyncbaseclient",
	"baseclient",
	"basemodel",
	"client",
	"exceptions",
}

// SDKPlugin rewrites the generated packages to build on gqlbase: generated
// structs embed gqlbase.GQLInput or gqlbase.GQLResult, ID fields become plain
// strings, __typename fields use gqlbase.Typename and redundant subclasses
// are folded into their parent.
type SDKPlugin struct {
	BasePlugin

	packageDir  string
	packageName string
	basePath    string
	basePkg     string
	idType      string
	schema      *ast.Schema

	// classesToDrop holds the "pkg.Name" of every class removed so far.
	classesToDrop map[string]bool
}

// NewSDKPlugin builds the plugin from the codegen configuration. schema may
// be nil, in which case every fragment's type condition is pinned.
func NewSDKPlugin(cfg *config.CodegenConfig, schema *ast.Schema) *SDKPlugin {
	idType := defaultIDType
	for scalar, goType := range cfg.Scalars {
		if strings.EqualFold(scalar, "ID") && goType != "" {
			idType = goType
		}
	}
	return &SDKPlugin{
		packageDir:    filepath.Join(cfg.TargetPackagePath, cfg.TargetPackageName),
		packageName:   cfg.TargetPackageName,
		basePath:      cfg.BaseImportPath,
		basePkg:       path.Base(cfg.BaseImportPath),
		idType:        idType,
		schema:        schema,
		classesToDrop: map[string]bool{},
	}
}

// DroppedClasses returns the qualified names of the removed classes.
func (p *SDKPlugin) DroppedClasses() []string {
	return keys(p.classesToDrop)
}

func (p *SDKPlugin) GenerateEnumsModule(file *dst.File) (*dst.File, error) {
	return p.rewriteModule(file)
}

func (p *SDKPlugin) GenerateInputClass(spec *dst.TypeSpec) (*dst.TypeSpec, error) {
	st, ok := structOf(spec)
	if !ok {
		return spec, nil
	}
	_, fields := splitFields(spec)
	st.Fields.List = append([]*dst.Field{embedded(selector(p.basePkg, "GQLInput"))}, fields...)
	return p.rewriteClass(spec, "")
}

func (p *SDKPlugin) GenerateInputsModule(file *dst.File) (*dst.File, error) {
	return p.rewriteModule(file)
}

func (p *SDKPlugin) GenerateResultClass(spec *dst.TypeSpec) (*dst.TypeSpec, error) {
	bases, _ := splitFields(spec)
	for _, f := range bases {
		if localName(f.Type) == "BaseModel" {
			f.Type = selector(p.basePkg, "GQLResult")
		}
	}
	return p.rewriteClass(spec, "")
}

func (p *SDKPlugin) GenerateResultTypesModule(file *dst.File) (*dst.File, error) {
	return p.rewriteModule(file)
}

func (p *SDKPlugin) GenerateFragmentsModule(file *dst.File, fragments map[string]*ast.FragmentDefinition) (*dst.File, error) {
	typenames := make(map[string]string, len(fragments))
	for name, frag := range fragments {
		if p.schema != nil {
			def := p.schema.Types[frag.TypeCondition]
			if def == nil || def.Kind != ast.Object {
				continue
			}
		}
		typenames[name] = frag.TypeCondition
	}

	for _, decl := range file.Decls {
		c, ok := asClassDef(decl)
		if !ok {
			continue
		}
		if typename, ok := typenames[c.name()]; ok {
			if _, err := p.rewriteClass(c.spec, typename); err != nil {
				return nil, err
			}
		}
	}
	return p.rewriteModule(file)
}

// GenerateInitModule drops the exports of dropped modules and classes and
// regroups the remaining aliases, one block per imported package.
func (p *SDKPlugin) GenerateInitModule(file *dst.File) (*dst.File, error) {
	var kept []*dst.ImportSpec
	pkgs := map[string]bool{}
	for _, imp := range importSpecs(file) {
		if isDroppedModule(importPath(imp)) {
			continue
		}
		kept = append(kept, imp)
		pkgs[importName(imp)] = true
	}

	aliases := map[string][]*dst.TypeSpec{}
	consts := map[string][]*dst.ValueSpec{}
	var rest []dst.Decl
	for _, decl := range file.Decls {
		gen, ok := decl.(*dst.GenDecl)
		if !ok {
			rest = append(rest, decl)
			continue
		}
		switch gen.Tok {
		case token.TYPE:
			for _, s := range gen.Specs {
				spec := s.(*dst.TypeSpec)
				if pkg, ok := p.exportedFrom(spec.Type, pkgs); ok {
					aliases[pkg] = append(aliases[pkg], spec)
				}
			}
		case token.CONST:
			for _, s := range gen.Specs {
				spec := s.(*dst.ValueSpec)
				if len(spec.Values) != 1 {
					continue
				}
				if pkg, ok := p.exportedFrom(spec.Values[0], pkgs); ok {
					consts[pkg] = append(consts[pkg], spec)
				}
			}
		case token.VAR:
			rest = append(rest, decl)
		}
	}

	decls := []dst.Decl{importDecl(kept)}
	for _, imp := range kept {
		pkg := importName(imp)
		if specs := aliases[pkg]; len(specs) > 0 {
			sortSpecs(specs)
			decls = append(decls, blockDecl(token.TYPE, specs))
		}
		if specs := consts[pkg]; len(specs) > 0 {
			decls = append(decls, blockDecl(token.CONST, specs))
		}
	}
	file.Decls = append(decls, rest...)
	return file, nil
}

// GenerateInitCode runs after every module has been written: it removes the
// dropped module directories and formats every generated file.
func (p *SDKPlugin) GenerateInitCode(code []byte) ([]byte, error) {
	for _, name := range modulesToDrop {
		dir := filepath.Join(p.packageDir, name)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		log.WithField("path", dir).Info("removing dropped module")
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("remove %s: %w", dir, err)
		}
	}

	initPath := filepath.Join(p.packageDir, p.packageName+".go")
	err := filepath.WalkDir(p.packageDir, func(file string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(file) != ".go" || file == initPath {
			return err
		}
		return formatFile(file)
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", p.packageDir, err)
	}

	out, err := imports.Process(initPath, code, nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", initPath, err)
	}
	return out, nil
}

// rewriteModule applies the transformations shared by every generated
// module except the init module.
func (p *SDKPlugin) rewriteModule(file *dst.File) (*dst.File, error) {
	addImport(file, p.basePath)

	replacements, err := redundantClasses(file)
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", file.Name.Name, err)
	}
	replaceClasses(file, replacements)
	for name := range replacements {
		p.classesToDrop[file.Name.Name+"."+name] = true
	}
	if len(replacements) > 0 {
		log.WithFields(log.Fields{
			"module":  file.Name.Name,
			"classes": len(replacements),
		}).Debug("dropped redundant classes")
	}

	for _, decl := range file.Decls {
		if c, ok := asClassDef(decl); ok {
			if _, err := p.rewriteClass(c.spec, ""); err != nil {
				return nil, fmt.Errorf("module %s: %w", file.Name.Name, err)
			}
		}
	}
	return file, nil
}

func (p *SDKPlugin) rewriteClass(spec *dst.TypeSpec, typename string) (*dst.TypeSpec, error) {
	_, fields := splitFields(spec)
	for _, f := range fields {
		if err := p.rewriteField(f, typename); err != nil {
			return nil, fmt.Errorf("class %s: %w", spec.Name.Name, err)
		}
	}
	return spec, nil
}

// rewriteField simplifies fields of a few known shapes:
//
//	ID     GQLId  `json:"id"`                     ->  ID string `json:"id" gql:"id,frozen,norepr"`
//	Type   string `json:"__typename"`             ->  Type gqlbase.Typename `json:"__typename" validate:"omitempty,eq=T"`
//	Node   Union[T] `json:"node" discriminator:...`  ->  Node T `json:"node"`
func (p *SDKPlugin) rewriteField(f *dst.Field, typename string) error {
	tags, err := parseTags(f)
	if err != nil {
		return fmt.Errorf("field %s: %w", f.Names[0].Name, err)
	}
	key := ""
	if tag, err := tags.Get("json"); err == nil {
		key = tag.Name
	}
	inner, ptr := unwrapStar(f.Type)

	switch {
	case f.Tag != nil && localName(inner) == p.idType:
		f.Type = wrapStar(dst.NewIdent("string"), ptr)
		mergeIDTag(tags)

	case key == typenameKey && typename != "":
		f.Type = selector(p.basePkg, "Typename")
		_ = tags.Set(&structtag.Tag{Key: "validate", Name: "omitempty", Options: []string{"eq=" + typename}})

	case key == typenameKey && exprName(f.Type) == p.basePkg+".Typename":
		return nil

	case key == typenameKey:
		f.Type = selector(p.basePkg, "Typename")

	case isSingleUnion(inner) && hasTag(tags, "discriminator"):
		f.Type = wrapStar(inner.(*dst.IndexExpr).Index, ptr)
		tags.Delete("discriminator")

	default:
		return nil
	}
	setTags(f, tags)
	return nil
}

// exportedFrom reports the package an init-module alias or constant points
// into, provided that package and the referenced name are both kept.
func (p *SDKPlugin) exportedFrom(expr dst.Expr, pkgs map[string]bool) (string, bool) {
	sel, ok := expr.(*dst.SelectorExpr)
	if !ok {
		return "", false
	}
	x, ok := sel.X.(*dst.Ident)
	if !ok || !pkgs[x.Name] {
		return "", false
	}
	if p.classesToDrop[x.Name+"."+sel.Sel.Name] {
		return "", false
	}
	return x.Name, true
}

func isDroppedModule(importPath string) bool {
	base := path.Base(importPath)
	for _, name := range modulesToDrop {
		if base == name {
			return true
		}
	}
	return false
}

// mergeIDTag makes the gql tag start with id,frozen,norepr and keeps any
// other options it already had.
func mergeIDTag(tags *structtag.Tags) {
	opts := []string{gqlbase.OptID, gqlbase.OptFrozen, gqlbase.OptNoRepr}
	if tag, err := tags.Get("gql"); err == nil {
		for _, opt := range append([]string{tag.Name}, tag.Options...) {
			if opt != "" && !slices.Contains(opts, opt) {
				opts = append(opts, opt)
			}
		}
	}
	_ = tags.Set(&structtag.Tag{Key: "gql", Name: opts[0], Options: opts[1:]})
}

func hasTag(tags *structtag.Tags, key string) bool {
	_, err := tags.Get(key)
	return err == nil
}

// isSingleUnion matches Union[T] and pkg.Union[T]. Multi-member unions are
// IndexListExprs and never match.
func isSingleUnion(expr dst.Expr) bool {
	idx, ok := expr.(*dst.IndexExpr)
	return ok && localName(idx.X) == "Union"
}

func unwrapStar(expr dst.Expr) (dst.Expr, bool) {
	if star, ok := expr.(*dst.StarExpr); ok {
		return star.X, true
	}
	return expr, false
}

func wrapStar(expr dst.Expr, ptr bool) dst.Expr {
	if ptr {
		return &dst.StarExpr{X: expr}
	}
	return expr
}

func importDecl(specs []*dst.ImportSpec) *dst.GenDecl {
	decl := &dst.GenDecl{Tok: token.IMPORT, Lparen: true, Rparen: true}
	for _, s := range specs {
		decl.Specs = append(decl.Specs, s)
	}
	decl.Decs.Before = dst.EmptyLine
	return decl
}

func blockDecl[S dst.Spec](tok token.Token, specs []S) *dst.GenDecl {
	decl := &dst.GenDecl{Tok: tok, Lparen: true, Rparen: true}
	for _, s := range specs {
		decl.Specs = append(decl.Specs, s)
	}
	decl.Decs.Before = dst.EmptyLine
	return decl
}

func sortSpecs(specs []*dst.TypeSpec) {
	slices.SortFunc(specs, func(a, b *dst.TypeSpec) int {
		return strings.Compare(a.Name.Name, b.Name.Name)
	})
}

func formatFile(file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	out, err := imports.Process(file, src, nil)
	if err != nil {
		return err
	}
	return os.WriteFile(file, out, 0o644)
}

var _ Plugin = (*SDKPlugin)(nil)
