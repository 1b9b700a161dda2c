package enhancedenum

import (
	"github.com/go-playground/validator/v10"

	"github.com/jasujm/enhanced-enum/cxx"
	"github.com/jasujm/enhanced-enum/ir"
)

var validate = validator.New()

// GeneratorOptions configure a Generator. They apply to every definition
// the generator renders.
type GeneratorOptions struct {
	// Documentation selects the documentation comment style.
	// Supported values: "" (no documentation), "doxygen".
	Documentation cxx.DocumentationStyle `validate:"omitempty,oneof=doxygen"`
}

// DefinitionOptions configure how an input is turned into an enum
// definition.
type DefinitionOptions struct {
	// PrimaryType selects which generated type keeps the input typename.
	// Supported values: "" (neither), "label", "enhanced".
	PrimaryType ir.PrimaryType `validate:"omitempty,oneof=label enhanced"`

	// ValueType overrides value type deduction with an explicit C++ type
	// name, e.g. "std::string". Member values are still rendered as
	// initializers.
	ValueType string `validate:"omitempty,printascii,max=256"`
}

// Options combine generator and definition options for one-shot generation.
type Options struct {
	GeneratorOptions
	DefinitionOptions
}

func (o GeneratorOptions) validate() error {
	if err := validate.Struct(o); err != nil {
		return optionError(err)
	}
	return nil
}

func (o DefinitionOptions) validate() error {
	if err := validate.Struct(o); err != nil {
		return optionError(err)
	}
	return nil
}
