package ir

// EnumDefinition is the canonical description of one enhanced enum.
// It is built fresh for every generation call and treated as immutable
// afterwards.
type EnumDefinition struct {
	// LabelTypeName names the plain enum class, e.g. "StatusLabel".
	LabelTypeName string

	// EnhancedTypeName names the enhanced enum struct, e.g. "EnhancedStatus".
	EnhancedTypeName string

	// ValueTypeName is the target language spelling of the value type
	// shared by all members, e.g. "std::string_view".
	ValueTypeName string

	// Members in declaration order. Order is significant: the generated
	// values array is indexed by enumerator position.
	Members []EnumMember

	// AssociateNamespaceName names the namespace holding the value
	// constants, e.g. "Statuses".
	AssociateNamespaceName string

	// LabelDocumentation is emitted before the label enum when non-nil.
	LabelDocumentation *Documentation

	// EnhancedDocumentation is emitted before the enhanced enum when non-nil.
	EnhancedDocumentation *Documentation
}

// EnumMember describes a single enumerator.
type EnumMember struct {
	// Name is the enumerator name, unmodified from the input.
	Name string

	// ValueConstantName is the name of the constant holding the value,
	// e.g. "BUSY_VALUE".
	ValueConstantName string

	// ValueInitializers mirrors the shape of the original value.
	ValueInitializers Initializer
}

// HasDocumentation reports whether either generated type carries
// documentation.
func (d *EnumDefinition) HasDocumentation() bool {
	return (d.LabelDocumentation != nil && !d.LabelDocumentation.IsZero()) ||
		(d.EnhancedDocumentation != nil && !d.EnhancedDocumentation.IsZero())
}
