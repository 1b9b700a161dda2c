// Package testfixtures provides enum descriptions and definitions shared by
// the package tests.
package testfixtures

import "github.com/jasujm/enhanced-enum/ir"

// StatusDocstring documents the Status enum.
const StatusDocstring = `An example enumeration for testing

    This is a long description of the test enum.`

// StatusDocumentation is the documentation parsed from StatusDocstring.
func StatusDocumentation() ir.Documentation {
	return ir.Documentation{
		Short: "An example enumeration for testing",
		Long:  "This is a long description of the test enum.",
	}
}

// StatusDefinition returns the definition expected to be built from
// StatusMap. Each call returns a fresh copy that tests may modify.
func StatusDefinition() *ir.EnumDefinition {
	return &ir.EnumDefinition{
		LabelTypeName:    "StatusLabel",
		EnhancedTypeName: "EnhancedStatus",
		ValueTypeName:    "std::string_view",
		Members: []ir.EnumMember{
			{
				Name:              "INITIALIZING",
				ValueConstantName: "INITIALIZING_VALUE",
				ValueInitializers: ir.Scalar(`"initializing"`),
			},
			{
				Name:              "WAITING_FOR_INPUT",
				ValueConstantName: "WAITING_FOR_INPUT_VALUE",
				ValueInitializers: ir.Scalar(`"waitingForInput"`),
			},
			{
				Name:              "BUSY",
				ValueConstantName: "BUSY_VALUE",
				ValueInitializers: ir.Scalar(`"busy"`),
			},
		},
		AssociateNamespaceName: "Statuses",
	}
}

// StatusMap returns the generic mapping form of the Status enum, as decoded
// from YAML.
func StatusMap() map[string]any {
	return map[string]any{
		"typename":  "Status",
		"docstring": StatusDocstring,
		"members": []any{
			map[string]any{"name": "INITIALIZING", "value": "initializing"},
			map[string]any{"name": "WAITING_FOR_INPUT", "value": "waitingForInput"},
			map[string]any{"name": "BUSY", "value": "busy"},
		},
	}
}

// StatusYAML is StatusMap serialized as YAML.
const StatusYAML = `typename: Status
docstring: |-
  An example enumeration for testing

      This is a long description of the test enum.
members:
  - name: INITIALIZING
    value: initializing
  - name: WAITING_FOR_INPUT
    value: waitingForInput
  - name: BUSY
    value: busy
`

// NestedMap returns an enum whose only member has a nested tuple value.
func NestedMap() map[string]any {
	return map[string]any{
		"typename": "NestedEnum",
		"members": []any{
			map[string]any{"name": "enumerator", "value": []any{0, []any{"string", true}}},
		},
	}
}
