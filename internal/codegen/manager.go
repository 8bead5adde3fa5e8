package codegen

import (
	"fmt"

	"github.com/dave/dst"
	log "github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/verigle/wandb/internal/config"
)

// Factory builds a plugin from the codegen configuration.
type Factory func(cfg *config.CodegenConfig, schema *ast.Schema) (Plugin, error)

var factories = map[string]Factory{
	"sdk": func(cfg *config.CodegenConfig, schema *ast.Schema) (Plugin, error) {
		return NewSDKPlugin(cfg, schema), nil
	},
	"fragment-order": func(*config.CodegenConfig, *ast.Schema) (Plugin, error) {
		return FragmentOrderPlugin{}, nil
	},
}

type namedPlugin struct {
	name string
	Plugin
}

// Manager chains plugins in configured order. The output of one plugin's
// hook is the input of the next.
type Manager struct {
	plugins []namedPlugin
}

// NewManager instantiates the plugins listed in cfg.Plugins.
func NewManager(cfg *config.CodegenConfig, schema *ast.Schema) (*Manager, error) {
	m := &Manager{}
	for _, name := range cfg.Plugins {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, name)
		}
		p, err := factory(cfg, schema)
		if err != nil {
			return nil, fmt.Errorf("init plugin %s: %w", name, err)
		}
		m.Add(name, p)
	}
	return m, nil
}

// Add appends a plugin to the chain.
func (m *Manager) Add(name string, p Plugin) {
	log.WithField("plugin", name).Debug("plugin registered")
	m.plugins = append(m.plugins, namedPlugin{name: name, Plugin: p})
}

// Names returns the registered plugin names in chain order.
func (m *Manager) Names() []string {
	names := make([]string, len(m.plugins))
	for i, p := range m.plugins {
		names[i] = p.name
	}
	return names
}

func chain[T any](m *Manager, hook string, v T, call func(Plugin, T) (T, error)) (T, error) {
	for _, p := range m.plugins {
		out, err := call(p.Plugin, v)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("%s.%s: %w", p.name, hook, err)
		}
		v = out
	}
	return v, nil
}

func (m *Manager) GenerateInitModule(file *dst.File) (*dst.File, error) {
	return chain(m, "GenerateInitModule", file, Plugin.GenerateInitModule)
}

func (m *Manager) GenerateInitCode(code []byte) ([]byte, error) {
	return chain(m, "GenerateInitCode", code, Plugin.GenerateInitCode)
}

func (m *Manager) GenerateEnumsModule(file *dst.File) (*dst.File, error) {
	return chain(m, "GenerateEnumsModule", file, Plugin.GenerateEnumsModule)
}

func (m *Manager) GenerateInputsModule(file *dst.File) (*dst.File, error) {
	return chain(m, "GenerateInputsModule", file, Plugin.GenerateInputsModule)
}

func (m *Manager) GenerateInputClass(spec *dst.TypeSpec) (*dst.TypeSpec, error) {
	return chain(m, "GenerateInputClass", spec, Plugin.GenerateInputClass)
}

func (m *Manager) GenerateResultTypesModule(file *dst.File) (*dst.File, error) {
	return chain(m, "GenerateResultTypesModule", file, Plugin.GenerateResultTypesModule)
}

func (m *Manager) GenerateResultClass(spec *dst.TypeSpec) (*dst.TypeSpec, error) {
	return chain(m, "GenerateResultClass", spec, Plugin.GenerateResultClass)
}

func (m *Manager) GenerateFragmentsModule(file *dst.File, fragments map[string]*ast.FragmentDefinition) (*dst.File, error) {
	return chain(m, "GenerateFragmentsModule", file, func(p Plugin, f *dst.File) (*dst.File, error) {
		return p.GenerateFragmentsModule(f, fragments)
	})
}

var _ Plugin = (*Manager)(nil)
