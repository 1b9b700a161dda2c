// Package enhancedenum generates C++ boilerplate for the Enhanced Enum
// library from enum descriptions.
//
// A description names the enum and lists its members and their values:
//
//	out, err := enhancedenum.Generate(enhancedenum.Description{
//	    TypeName: "Status",
//	    Members: []enhancedenum.Member{
//	        {Name: "INITIALIZING", Value: "initializing"},
//	        {Name: "BUSY", Value: "busy"},
//	    },
//	}, enhancedenum.Options{})
//
// The output contains the label enum StatusLabel, the enhanced enum
// EnhancedStatus, the enhance() conversion and the Statuses namespace with
// one value constant per member. The value type is deduced from the member
// values, or set explicitly with DefinitionOptions.ValueType.
package enhancedenum

import (
	"github.com/jasujm/enhanced-enum/cxx"
)

// Generator renders enum definitions with a fixed set of GeneratorOptions.
// A Generator is safe for concurrent use.
type Generator struct {
	renderer *cxx.Renderer
}

// NewGenerator validates opts and creates a Generator.
func NewGenerator(opts GeneratorOptions) (*Generator, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	renderer, err := cxx.NewRenderer(opts.Documentation)
	if err != nil {
		return nil, WrapError(CodeInvalidOption, err, "documentation style %q", opts.Documentation)
	}
	return &Generator{renderer: renderer}, nil
}

// Options returns the options the generator was created with.
func (g *Generator) Options() GeneratorOptions {
	return GeneratorOptions{Documentation: g.renderer.Style()}
}

// GenerateDefinitions converts input with MakeDefinition and renders the
// result. The returned code has no trailing newline.
func (g *Generator) GenerateDefinitions(input any, opts DefinitionOptions) (string, error) {
	def, err := MakeDefinition(input, opts)
	if err != nil {
		return "", err
	}
	out, err := g.renderer.Render(def)
	if err != nil {
		return "", WrapError(CodeRender, err, "rendering %q", def.EnhancedTypeName)
	}
	return out, nil
}

// Generate is a shorthand for NewGenerator followed by GenerateDefinitions.
func Generate(input any, opts Options) (string, error) {
	g, err := NewGenerator(opts.GeneratorOptions)
	if err != nil {
		return "", err
	}
	return g.GenerateDefinitions(input, opts.DefinitionOptions)
}
