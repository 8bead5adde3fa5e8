package codegen

import (
	"bytes"
	"context"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	log "github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/verigle/wandb/internal/config"
)

// Module directories emitted by the generator, relative to the target
// package directory.
const (
	EnumsModule      = "enums"
	InputsModule     = "inputs"
	FragmentsModule  = "fragments"
	OperationsModule = "operations"
)

// FileStatus is the outcome of a run for one generated file.
type FileStatus string

const (
	StatusChanged   FileStatus = "changed"
	StatusUnchanged FileStatus = "unchanged"
	StatusRemoved   FileStatus = "removed"
)

// FileResult reports what a run did to one file.
type FileResult struct {
	Path   string     `yaml:"path"`
	Status FileStatus `yaml:"status"`
}

// Report lists the files a run touched, sorted by path.
type Report struct {
	PackageDir     string       `yaml:"package_dir"`
	Plugins        []string     `yaml:"plugins"`
	DroppedClasses []string     `yaml:"dropped_classes,omitempty"`
	Files          []FileResult `yaml:"files"`
}

// Changed reports whether the run modified or removed any file.
func (r *Report) Changed() bool {
	for _, f := range r.Files {
		if f.Status != StatusUnchanged {
			return true
		}
	}
	return false
}

// Runner drives the plugins over the generated packages.
type Runner struct {
	cfg       *config.CodegenConfig
	manager   *Manager
	fragments map[string]*ast.FragmentDefinition
	fset      *token.FileSet
}

// NewRunner loads the schema (when configured) and the fragment definitions
// of the queries, and instantiates the configured plugins.
func NewRunner(cfg *config.CodegenConfig) (*Runner, error) {
	schema, err := LoadSchema(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}
	fragments, err := LoadFragments(cfg.QueriesPath, schema)
	if err != nil {
		return nil, err
	}
	manager, err := NewManager(cfg, schema)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:       cfg,
		manager:   manager,
		fragments: fragments,
		fset:      token.NewFileSet(),
	}, nil
}

func (r *Runner) packageDir() string {
	return filepath.Join(r.cfg.TargetPackagePath, r.cfg.TargetPackageName)
}

// Run rewrites every generated module in place, then the init module.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	dir := r.packageDir()
	before, err := snapshot(dir)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"package": dir,
		"plugins": r.manager.Names(),
	}).Info("post-processing generated code")

	for _, module := range []string{EnumsModule, InputsModule, FragmentsModule, OperationsModule} {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.processModule(module); err != nil {
			return nil, err
		}
	}
	if err := r.processInit(); err != nil {
		return nil, err
	}

	after, err := snapshot(dir)
	if err != nil {
		return nil, err
	}
	return r.report(before, after), nil
}

func (r *Runner) processModule(module string) error {
	dir := filepath.Join(r.packageDir(), module)
	files, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, path := range files {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		file, err := r.parse(path)
		if err != nil {
			return err
		}
		out, err := r.processFile(module, file)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := r.write(path, out); err != nil {
			return err
		}
		log.WithFields(log.Fields{"module": module, "path": path}).Info("module written")
	}
	return nil
}

func (r *Runner) processFile(module string, file *dst.File) (*dst.File, error) {
	switch module {
	case EnumsModule:
		return r.manager.GenerateEnumsModule(file)
	case InputsModule:
		if err := r.eachClass(file, r.manager.GenerateInputClass); err != nil {
			return nil, err
		}
		return r.manager.GenerateInputsModule(file)
	case FragmentsModule:
		if err := r.eachClass(file, r.manager.GenerateResultClass); err != nil {
			return nil, err
		}
		return r.manager.GenerateFragmentsModule(file, r.fragments)
	case OperationsModule:
		if err := r.eachClass(file, r.manager.GenerateResultClass); err != nil {
			return nil, err
		}
		return r.manager.GenerateResultTypesModule(file)
	}
	return file, nil
}

// eachClass runs a class hook over every struct declared in the file.
func (r *Runner) eachClass(file *dst.File, hook func(*dst.TypeSpec) (*dst.TypeSpec, error)) error {
	for _, decl := range file.Decls {
		c, ok := asClassDef(decl)
		if !ok {
			continue
		}
		if _, ok := structOf(c.spec); !ok {
			continue
		}
		spec, err := hook(c.spec)
		if err != nil {
			return err
		}
		c.decl.Specs[0] = spec
	}
	return nil
}

func (r *Runner) processInit() error {
	path := filepath.Join(r.packageDir(), r.cfg.TargetPackageName+".go")
	file, err := r.parse(path)
	if err != nil {
		return err
	}
	file, err = r.manager.GenerateInitModule(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := decorator.Fprint(&buf, file); err != nil {
		return fmt.Errorf("print %s: %w", path, err)
	}
	code, err := r.manager.GenerateInitCode(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, code, 0o644)
}

func (r *Runner) parse(path string) (*dst.File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := decorator.NewDecorator(r.fset).ParseFile(path, src, 0)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file, nil
}

func (r *Runner) write(path string, file *dst.File) error {
	var buf bytes.Buffer
	if err := decorator.Fprint(&buf, file); err != nil {
		return fmt.Errorf("print %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (r *Runner) report(before, after map[string][]byte) *Report {
	rep := &Report{PackageDir: r.packageDir(), Plugins: r.manager.Names()}
	for _, p := range r.manager.plugins {
		if sdk, ok := p.Plugin.(*SDKPlugin); ok {
			rep.DroppedClasses = append(rep.DroppedClasses, sdk.DroppedClasses()...)
		}
	}

	for path, old := range before {
		rel, _ := filepath.Rel(r.packageDir(), path)
		status := StatusUnchanged
		switch cur, ok := after[path]; {
		case !ok:
			status = StatusRemoved
		case !bytes.Equal(old, cur):
			status = StatusChanged
		}
		rep.Files = append(rep.Files, FileResult{Path: filepath.ToSlash(rel), Status: status})
	}
	sort.Slice(rep.Files, func(i, j int) bool { return rep.Files[i].Path < rep.Files[j].Path })
	return rep
}

// snapshot reads every Go file under dir.
func snapshot(dir string) (map[string][]byte, error) {
	files := map[string][]byte{}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".go" {
			return err
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[path] = src
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	return files, nil
}

// Check runs the plugins over a temporary copy of the target package and
// reports what Run would change. The target package is left untouched.
func Check(ctx context.Context, cfg *config.CodegenConfig) (*Report, error) {
	tmp, err := os.MkdirTemp("", "gqlcodegen-check-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)

	src := filepath.Join(cfg.TargetPackagePath, cfg.TargetPackageName)
	if err := os.CopyFS(filepath.Join(tmp, cfg.TargetPackageName), os.DirFS(src)); err != nil {
		return nil, fmt.Errorf("copy %s: %w", src, err)
	}

	copied := *cfg
	copied.TargetPackagePath = tmp
	runner, err := NewRunner(&copied)
	if err != nil {
		return nil, err
	}
	rep, err := runner.Run(ctx)
	if err != nil {
		return nil, err
	}
	rep.PackageDir = src
	return rep, nil
}

// LoadSchema parses the schema at path. An empty path yields a nil schema.
func LoadSchema(path string) (*ast.Schema, error) {
	if path == "" {
		return nil, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: path, Input: string(src)})
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", path, err)
	}
	return schema, nil
}

// LoadFragments collects the fragment definitions of every .graphql file
// under dir. When schema is set, the documents are validated against it.
func LoadFragments(dir string, schema *ast.Schema) (map[string]*ast.FragmentDefinition, error) {
	var sources []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".graphql" {
			return err
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sources = append(sources, string(src))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}

	input := strings.Join(sources, "\n")
	var doc *ast.QueryDocument
	if schema != nil {
		var errs gqlerror.List
		doc, errs = gqlparser.LoadQuery(schema, input)
		if len(errs) > 0 {
			return nil, fmt.Errorf("validate queries: %w", errs)
		}
	} else {
		doc, err = parser.ParseQuery(&ast.Source{Name: dir, Input: input})
		if err != nil {
			return nil, fmt.Errorf("parse queries: %w", err)
		}
	}

	fragments := make(map[string]*ast.FragmentDefinition, len(doc.Fragments))
	for _, frag := range doc.Fragments {
		fragments[frag.Name] = frag
	}
	return fragments, nil
}
