// Package provider reads enum descriptions from sources outside the
// generator: YAML documents and typed constant groups in Go packages.
package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	enhancedenum "github.com/jasujm/enhanced-enum"
)

// GoEnum is an enum found in Go source: a defined type with a basic
// underlying type and the package level constants of that type. It
// implements enhancedenum.Enumeration and enhancedenum.Documented.
type GoEnum struct {
	// Name is the Go type name, e.g. "Status".
	Name string

	// PkgPath is the import path of the declaring package.
	PkgPath string

	// Doc is the doc comment of the type declaration.
	Doc string

	// Members are the constants in declaration order.
	Members []enhancedenum.Member

	pos token.Pos
}

func (e *GoEnum) EnumTypeName() string                { return e.Name }
func (e *GoEnum) EnumMembers() []enhancedenum.Member { return e.Members }
func (e *GoEnum) EnumDocstring() string              { return e.Doc }

// GoSourceOptions configures LoadGoEnums.
type GoSourceOptions struct {
	// Packages are the package patterns to load, as accepted by go list.
	Packages []string

	// Types selects enum types by name. If empty, every exported defined
	// type with at least one constant is returned.
	Types []string

	// Dir is the directory the go command runs in. Empty means the
	// current directory.
	Dir string
}

// LoadGoEnums loads the packages and returns their enums, ordered by
// package and then by declaration.
func LoadGoEnums(ctx context.Context, opts GoSourceOptions) ([]*GoEnum, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}

	var enums []*GoEnum
	for _, pkg := range pkgs {
		enums = append(enums, scanPackage(pkg)...)
	}

	if len(opts.Types) == 0 {
		return enums, nil
	}
	selected := make([]*GoEnum, 0, len(opts.Types))
	for _, name := range opts.Types {
		i := slices.IndexFunc(enums, func(e *GoEnum) bool { return e.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("no enum type %q with constants in %s", name, strings.Join(opts.Packages, ", "))
		}
		selected = append(selected, enums[i])
	}
	return selected, nil
}

// scanPackage collects the enums of one package.
func scanPackage(pkg *packages.Package) []*GoEnum {
	docs := typeDocs(pkg.Syntax)
	scope := pkg.Types.Scope()

	byType := make(map[*types.Named]*GoEnum)
	var enums []*GoEnum
	var consts []*types.Const
	for _, name := range scope.Names() {
		switch obj := scope.Lookup(name).(type) {
		case *types.TypeName:
			named, ok := obj.Type().(*types.Named)
			if !ok || obj.IsAlias() || !obj.Exported() {
				continue
			}
			if _, ok := named.Underlying().(*types.Basic); !ok {
				continue
			}
			e := &GoEnum{
				Name:    obj.Name(),
				PkgPath: pkg.PkgPath,
				Doc:     docs[obj.Pos()],
				pos:     obj.Pos(),
			}
			byType[named] = e
			enums = append(enums, e)
		case *types.Const:
			consts = append(consts, obj)
		}
	}

	// Scope names are sorted alphabetically; members follow the source.
	slices.SortFunc(consts, func(a, b *types.Const) int { return int(a.Pos() - b.Pos()) })
	for _, c := range consts {
		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}
		if e, ok := byType[named]; ok {
			e.Members = append(e.Members, enhancedenum.Member{Name: c.Name(), Value: constantValue(c.Val())})
		}
	}

	enums = slices.DeleteFunc(enums, func(e *GoEnum) bool { return len(e.Members) == 0 })
	slices.SortFunc(enums, func(a, b *GoEnum) int { return int(a.pos - b.pos) })
	return enums
}

// typeDocs maps the position of each type name to its doc comment.
func typeDocs(files []*ast.File) map[token.Pos]string {
	docs := make(map[token.Pos]string)
	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}
				if doc != nil {
					docs[ts.Name.Pos()] = doc.Text()
				}
			}
		}
	}
	return docs
}

// constantValue converts a constant to a value accepted by
// valuetype.FromAny. Complex and unknown constants are returned as is, so
// building the definition rejects them.
func constantValue(v constant.Value) any {
	switch v.Kind() {
	case constant.String:
		return constant.StringVal(v)
	case constant.Bool:
		return constant.BoolVal(v)
	case constant.Int:
		if i, ok := constant.Int64Val(v); ok {
			return i
		}
		return constant.Val(v)
	case constant.Float:
		f, _ := constant.Float64Val(v)
		return f
	default:
		return v
	}
}
