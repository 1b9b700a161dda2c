// Package cxx renders enum definitions into C++ source for the Enhanced Enum
// library.
//
// The output for one definition contains the label enum class, the enhanced
// enum struct deriving from ::enhanced_enum::enum_base, the enhance()
// conversion, and the associate namespace holding the value constants. The
// emitted text is not checked for well-formedness; that is up to the C++
// compiler.
package cxx

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/jasujm/enhanced-enum/ir"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const enumDefinitionsTemplate = "enum_definitions.hh.tmpl"

// DocumentationStyle selects how documentation comments are emitted.
type DocumentationStyle string

const (
	// NoDocumentation omits all documentation comments.
	NoDocumentation DocumentationStyle = ""

	// Doxygen emits Doxygen style /** ... */ blocks.
	Doxygen DocumentationStyle = "doxygen"
)

// String returns the style name.
func (s DocumentationStyle) String() string {
	return string(s)
}

// ParseDocumentationStyle returns the style named s. The empty string means
// NoDocumentation.
func ParseDocumentationStyle(s string) (DocumentationStyle, error) {
	switch style := DocumentationStyle(s); style {
	case NoDocumentation, Doxygen:
		return style, nil
	default:
		return "", fmt.Errorf("unsupported documentation style: %q (expected %q)", s, Doxygen)
	}
}

// loadTemplate compiles the embedded template once per process. The
// compiled template is only read afterwards, so concurrent renders share it.
var loadTemplate = sync.OnceValues(func() (*pongo2.Template, error) {
	set := pongo2.NewSet("cxx", pongo2.NewFSLoader(templateFS))
	set.Options.TrimBlocks = true
	set.Options.LStripBlocks = true
	return set.FromFile("templates/" + enumDefinitionsTemplate)
})

// Renderer renders enum definitions with a fixed documentation style.
// It is safe for concurrent use.
type Renderer struct {
	style DocumentationStyle
}

// NewRenderer returns a Renderer emitting documentation in style.
func NewRenderer(style DocumentationStyle) (*Renderer, error) {
	if _, err := ParseDocumentationStyle(string(style)); err != nil {
		return nil, err
	}
	if _, err := loadTemplate(); err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", enumDefinitionsTemplate, err)
	}
	return &Renderer{style: style}, nil
}

// Style returns the documentation style of the renderer.
func (r *Renderer) Style() DocumentationStyle {
	return r.style
}

// Render returns the C++ definitions for def, without a trailing newline.
func (r *Renderer) Render(def *ir.EnumDefinition) (string, error) {
	if def == nil {
		return "", fmt.Errorf("nil enum definition")
	}
	tpl, err := loadTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to compile %s: %w", enumDefinitionsTemplate, err)
	}

	documented := r.style != NoDocumentation
	ctx := pongo2.Context{
		"d":             def,
		"documentation": documented,
		"label_doc":     nil,
		"enhanced_doc":  nil,
	}
	if documented && def.HasDocumentation() {
		if v := newDocView(def.LabelDocumentation); v != nil {
			ctx["label_doc"] = v
		}
		if v := newDocView(def.EnhancedDocumentation); v != nil {
			ctx["enhanced_doc"] = v
		}
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", def.EnhancedTypeName, err)
	}
	return strings.TrimSpace(out), nil
}

// docView is the template facing form of ir.Documentation.
type docView struct {
	Short string
	Long  []string
}

func newDocView(doc *ir.Documentation) *docView {
	if doc == nil || doc.IsZero() {
		return nil
	}
	v := &docView{Short: commentSafe(doc.Short)}
	if doc.Long != "" {
		v.Long = strings.Split(commentSafe(doc.Long), "\n")
	}
	return v
}

// commentSafe keeps text from closing the enclosing block comment. Doxygen
// renders the entity as a slash.
func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "*&#47;")
}
