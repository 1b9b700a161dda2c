// Package ir defines the canonical representation of an enhanced enum
// definition. The definition builder normalizes every accepted input shape
// into an EnumDefinition, and code generators render it into target language
// source code.
package ir

// Documentation holds the descriptions parsed out of a docstring.
type Documentation struct {
	// Short is the first paragraph of the docstring, joined into one line.
	// Example: "An example enumeration for testing"
	Short string

	// Long is everything after the first paragraph. Paragraph breaks are
	// preserved as blank lines.
	Long string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Short == "" && d.Long == ""
}

// PrimaryType selects which of the two generated types keeps the type name
// given by the caller.
type PrimaryType string

const (
	// PrimaryNone derives both type names from the typename.
	PrimaryNone PrimaryType = ""

	// PrimaryLabel keeps the typename for the label enum.
	PrimaryLabel PrimaryType = "label"

	// PrimaryEnhanced keeps the typename for the enhanced enum.
	PrimaryEnhanced PrimaryType = "enhanced"
)

// String returns the primary type name.
func (p PrimaryType) String() string {
	return string(p)
}
