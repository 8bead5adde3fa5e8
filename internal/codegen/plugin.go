// Package codegen post-processes the Go packages emitted by the GraphQL
// client generator.
//
// The generator writes one package per module kind (enums, inputs,
// fragments, operations) plus an init file in the parent package that
// re-exports every generated name. Plugins rewrite the syntax trees at fixed
// lifecycle points before the files are printed back to disk.
package codegen

import (
	"errors"

	"github.com/dave/dst"
	"github.com/vektah/gqlparser/v2/ast"
)

// ============================================================================
// Errors
// ============================================================================

var (
	ErrUnexpectedStatements = errors.New("unexpected statements in module")
	ErrCyclicHierarchy      = errors.New("cyclic type hierarchy")
	ErrUnknownPlugin        = errors.New("unknown plugin")
)

// Plugin is the set of hooks invoked by the Runner.
//
// Module hooks receive the parsed file of a generated package. Class hooks
// receive one struct type spec at a time and run before the module hook of
// the same file. GenerateInitCode runs last, after every module has been
// written to disk.
type Plugin interface {
	GenerateInitModule(file *dst.File) (*dst.File, error)
	GenerateInitCode(code []byte) ([]byte, error)
	GenerateEnumsModule(file *dst.File) (*dst.File, error)
	GenerateInputsModule(file *dst.File) (*dst.File, error)
	GenerateInputClass(spec *dst.TypeSpec) (*dst.TypeSpec, error)
	GenerateResultTypesModule(file *dst.File) (*dst.File, error)
	GenerateResultClass(spec *dst.TypeSpec) (*dst.TypeSpec, error)
	GenerateFragmentsModule(file *dst.File, fragments map[string]*ast.FragmentDefinition) (*dst.File, error)
}

// BasePlugin returns every input unchanged. Plugins embed it and override
// the hooks they need.
type BasePlugin struct{}

func (BasePlugin) GenerateInitModule(file *dst.File) (*dst.File, error)   { return file, nil }
func (BasePlugin) GenerateInitCode(code []byte) ([]byte, error)           { return code, nil }
func (BasePlugin) GenerateEnumsModule(file *dst.File) (*dst.File, error)  { return file, nil }
func (BasePlugin) GenerateInputsModule(file *dst.File) (*dst.File, error) { return file, nil }
func (BasePlugin) GenerateInputClass(spec *dst.TypeSpec) (*dst.TypeSpec, error) {
	return spec, nil
}
func (BasePlugin) GenerateResultTypesModule(file *dst.File) (*dst.File, error) { return file, nil }
func (BasePlugin) GenerateResultClass(spec *dst.TypeSpec) (*dst.TypeSpec, error) {
	return spec, nil
}
func (BasePlugin) GenerateFragmentsModule(file *dst.File, _ map[string]*ast.FragmentDefinition) (*dst.File, error) {
	return file, nil
}

var _ Plugin = BasePlugin{}
