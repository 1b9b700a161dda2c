package enhancedenum

import (
	"fmt"

	"github.com/jasujm/enhanced-enum/ir"
	"github.com/jasujm/enhanced-enum/naming"
	"github.com/jasujm/enhanced-enum/valuetype"
)

// Member is one enumerator of an enum description: its identifier and its
// value. Value may be any value accepted by valuetype.FromAny.
type Member struct {
	Name  string `yaml:"name" toml:"name"`
	Value any    `yaml:"value" toml:"value"`
}

// Enumeration is implemented by anything that can describe an enum: a type
// name and its members in declaration order.
type Enumeration interface {
	EnumTypeName() string
	EnumMembers() []Member
}

// Documented is implemented by enumerations that carry a docstring.
type Documented interface {
	EnumDocstring() string
}

// Description is the plain description of an enum, as written in YAML
// definition files.
//
//	typename: Status
//	docstring: Status of a long running task
//	members:
//	  - name: INITIALIZING
//	    value: initializing
//	  - name: BUSY
//	    value: busy
type Description struct {
	TypeName  string   `yaml:"typename" toml:"typename"`
	Docstring string   `yaml:"docstring,omitempty" toml:"docstring"`
	Members   []Member `yaml:"members" toml:"members"`
}

func (d Description) EnumTypeName() string  { return d.TypeName }
func (d Description) EnumMembers() []Member { return d.Members }
func (d Description) EnumDocstring() string { return d.Docstring }

// MakeDefinition converts an enum description into an ir.EnumDefinition.
//
// input may be:
//   - an ir.EnumDefinition or *ir.EnumDefinition, returned unchanged
//   - a Description or *Description
//   - a map[string]any with "typename", "members" and an optional
//     "docstring" key, as decoded from YAML
//   - any other Enumeration
//
// All failures are returned as *Error.
func MakeDefinition(input any, opts DefinitionOptions) (*ir.EnumDefinition, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	def, enum, err := normalize(input)
	if err != nil {
		return nil, err
	}
	if def != nil {
		return def, nil
	}
	return buildDefinition(enum, opts)
}

// normalize returns either a ready definition or an Enumeration to build
// one from.
func normalize(input any) (*ir.EnumDefinition, Enumeration, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil, NewError(CodeInvalidInput, "no enum description given")
	case *ir.EnumDefinition:
		if v == nil {
			return nil, nil, NewError(CodeInvalidInput, "nil enum definition")
		}
		return v, nil, nil
	case ir.EnumDefinition:
		return &v, nil, nil
	case *Description:
		if v == nil {
			return nil, nil, NewError(CodeInvalidInput, "nil enum description")
		}
		return nil, *v, nil
	case map[string]any:
		desc, err := descriptionFromMap(v)
		if err != nil {
			return nil, nil, err
		}
		return nil, desc, nil
	case Enumeration:
		return nil, v, nil
	default:
		return nil, nil, Errorf(CodeInvalidInput, "cannot make an enum definition from %T", input)
	}
}

func descriptionFromMap(m map[string]any) (Description, error) {
	var desc Description

	typename, ok := m["typename"]
	if !ok {
		return desc, NewError(CodeInvalidDefinition, `missing key "typename"`)
	}
	if desc.TypeName, ok = typename.(string); !ok {
		return desc, Errorf(CodeInvalidDefinition, `"typename" must be a string, got %T`, typename)
	}

	if doc, ok := m["docstring"]; ok && doc != nil {
		if desc.Docstring, ok = doc.(string); !ok {
			return desc, Errorf(CodeInvalidDefinition, `"docstring" must be a string, got %T`, doc)
		}
	}

	members, ok := m["members"]
	if !ok {
		return desc, NewError(CodeInvalidDefinition, `missing key "members"`)
	}
	var items []any
	switch ms := members.(type) {
	case []any:
		items = ms
	case []map[string]any:
		items = make([]any, len(ms))
		for i, item := range ms {
			items[i] = item
		}
	case []Member:
		desc.Members = append([]Member(nil), ms...)
		return desc, nil
	case map[string]any:
		return desc, NewError(CodeInvalidDefinition, `"members" must be a sequence of {name, value} entries; a mapping does not keep member order`)
	default:
		return desc, Errorf(CodeInvalidDefinition, `"members" must be a sequence, got %T`, members)
	}

	desc.Members = make([]Member, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return desc, Errorf(CodeInvalidDefinition, "member %d: expected a {name, value} mapping, got %T", i, item)
		}
		name, ok := entry["name"].(string)
		if !ok {
			return desc, Errorf(CodeInvalidDefinition, `member %d: missing or non-string "name"`, i)
		}
		value, ok := entry["value"]
		if !ok {
			return desc, Errorf(CodeInvalidDefinition, `member %q: missing key "value"`, name)
		}
		desc.Members = append(desc.Members, Member{Name: name, Value: value})
	}
	return desc, nil
}

func buildDefinition(enum Enumeration, opts DefinitionOptions) (*ir.EnumDefinition, error) {
	typename := enum.EnumTypeName()
	if typename == "" {
		return nil, NewError(CodeInvalidDefinition, "enum typename is empty")
	}
	typeFormatter, err := naming.NewFormatter(typename)
	if err != nil {
		return nil, WrapError(CodeInvalidDefinition, err, "typename %q", typename)
	}
	typeParts := typeFormatter.Parts()[0]

	def := &ir.EnumDefinition{
		LabelTypeName:          typeFormatter.Join(withSuffix(typeParts, "label")),
		EnhancedTypeName:       typeFormatter.Join(withPrefix("enhanced", typeParts)),
		AssociateNamespaceName: typeFormatter.JoinPlural(typeParts),
	}
	switch opts.PrimaryType {
	case ir.PrimaryLabel:
		def.LabelTypeName = typename
	case ir.PrimaryEnhanced:
		def.EnhancedTypeName = typename
	}

	members := enum.EnumMembers()
	if len(members) == 0 {
		return nil, WrapError(CodeInvalidDefinition, valuetype.ErrEmptySample, "enum %q has no members", typename)
	}

	names := make([]string, len(members))
	seen := make(map[string]bool, len(members))
	for i, m := range members {
		if seen[m.Name] {
			return nil, Errorf(CodeInvalidDefinition, "enum %q: duplicate member %q", typename, m.Name)
		}
		seen[m.Name] = true
		names[i] = m.Name
	}
	memberFormatter, err := naming.NewFormatter(names...)
	if err != nil {
		return nil, WrapError(CodeInvalidDefinition, err, "member names of %q", typename)
	}

	values := make([]valuetype.Value, len(members))
	for i, m := range members {
		v, err := valuetype.FromAny(m.Value)
		if err != nil {
			return nil, WrapError(CodeInvalidDefinition, err, "member %q", m.Name)
		}
		values[i] = v
	}
	deducer, err := valuetype.NewDeducer(values, opts.ValueType)
	if err != nil {
		return nil, WrapError(CodeInvalidDefinition, err, "values of %q", typename)
	}
	def.ValueTypeName = deducer.TypeName()

	memberParts := memberFormatter.Parts()
	def.Members = make([]ir.EnumMember, len(members))
	for i, m := range members {
		initializer, err := valuetype.Initializer(values[i])
		if err != nil {
			return nil, WrapError(CodeInvalidDefinition, err, "member %q", m.Name)
		}
		def.Members[i] = ir.EnumMember{
			Name:              m.Name,
			ValueConstantName: memberFormatter.Join(withSuffix(memberParts[i], "value")),
			ValueInitializers: initializer,
		}
	}

	if documented, ok := enum.(Documented); ok {
		doc := ParseDocstring(documented.EnumDocstring())
		switch {
		case doc == nil:
		case opts.PrimaryType == ir.PrimaryLabel:
			def.LabelDocumentation = doc
		case opts.PrimaryType == ir.PrimaryEnhanced:
			def.EnhancedDocumentation = doc
		}
	}
	return def, nil
}

func withSuffix(parts []string, word string) []string {
	out := make([]string, 0, len(parts)+1)
	return append(append(out, parts...), word)
}

func withPrefix(word string, parts []string) []string {
	out := make([]string, 0, len(parts)+1)
	return append(append(out, word), parts...)
}

// typeNameOf returns the name an input would be generated under, for
// naming output files.
func typeNameOf(input any) (string, error) {
	def, enum, err := normalize(input)
	if err != nil {
		return "", err
	}
	if def != nil {
		return def.EnhancedTypeName, nil
	}
	return enum.EnumTypeName(), nil
}

// FileName returns the header file name for an enum with the given
// typename: the typename in lower_snake_case with an ".hh" extension.
func FileName(typename string) (string, error) {
	f, err := naming.NewFormatter(typename)
	if err != nil {
		return "", WrapError(CodeInvalidDefinition, err, "typename %q", typename)
	}
	return fmt.Sprintf("%s.hh", naming.LowerSnake.Join(f.Parts()[0])), nil
}
