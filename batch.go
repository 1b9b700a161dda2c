package enhancedenum

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/jasujm/enhanced-enum/cxx"
	"github.com/jasujm/enhanced-enum/ir"
	"github.com/jasujm/enhanced-enum/sink"
)

// Batch generates one header per enum description. Create it with
// FromDescriptions and configure it with method chaining:
//
//	files, err := enhancedenum.FromDescriptions(status, color).
//	    WithDocumentation(cxx.Doxygen).
//	    WithPrimaryType(ir.PrimaryEnhanced).
//	    ToDir(ctx, "./include/enums")
type Batch struct {
	inputs []any
	opts   Options
}

// FromDescriptions creates a Batch over inputs. Each input is anything
// MakeDefinition accepts.
func FromDescriptions(inputs ...any) *Batch {
	return &Batch{inputs: inputs}
}

// WithOptions replaces all options at once.
func (b *Batch) WithOptions(opts Options) *Batch {
	b.opts = opts
	return b
}

// WithDocumentation sets the documentation comment style.
func (b *Batch) WithDocumentation(style cxx.DocumentationStyle) *Batch {
	b.opts.Documentation = style
	return b
}

// WithPrimaryType sets which generated type keeps the input typename.
func (b *Batch) WithPrimaryType(p ir.PrimaryType) *Batch {
	b.opts.PrimaryType = p
	return b
}

// WithValueType overrides value type deduction for every enum in the batch.
func (b *Batch) WithValueType(typeName string) *Batch {
	b.opts.ValueType = typeName
	return b
}

// Generate renders every input in memory. Each file is named after its
// enum typename (see FileName) and ends with a newline.
//
// Inputs that fail do not stop the others; their errors are collected into
// a *multierror.Error and returned together with the files that succeeded.
func (b *Batch) Generate() ([]sink.File, error) {
	g, err := NewGenerator(b.opts.GeneratorOptions)
	if err != nil {
		return nil, err
	}

	var (
		files  []sink.File
		result *multierror.Error
		seen   = make(map[string]string)
	)
	for i, input := range b.inputs {
		typename, err := typeNameOf(input)
		if err != nil {
			result = multierror.Append(result, WrapError(CodeInvalidInput, err, "input %d", i))
			continue
		}
		path, err := FileName(typename)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if prev, ok := seen[path]; ok {
			result = multierror.Append(result, Errorf(CodeInvalidDefinition, "enums %q and %q both map to %s", prev, typename, path))
			continue
		}
		seen[path] = typename

		out, err := g.GenerateDefinitions(input, b.opts.DefinitionOptions)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		files = append(files, sink.File{Path: path, Content: []byte(out + "\n")})
	}
	return files, result.ErrorOrNil()
}

// ToDir generates every input and writes the headers to dir. Nothing is
// written unless every input generates successfully.
func (b *Batch) ToDir(ctx context.Context, dir string) ([]sink.File, error) {
	return b.ToSink(ctx, sink.NewFilesystemSink(dir))
}

// ToSink is like ToDir, but writes to an arbitrary sink.
func (b *Batch) ToSink(ctx context.Context, out sink.OutputSink) ([]sink.File, error) {
	files, err := b.Generate()
	if err != nil {
		return nil, err
	}
	if err := sink.WriteAll(ctx, out, files); err != nil {
		return nil, err
	}
	return files, nil
}

// Check generates every input and compares the result with the headers in
// src. It returns nil if all of them are up to date; otherwise the error
// holds a *sink.DriftError per stale or missing header.
func (b *Batch) Check(ctx context.Context, src sink.Source) error {
	files, err := b.Generate()
	if err != nil {
		return err
	}
	return sink.Verify(ctx, src, files)
}
