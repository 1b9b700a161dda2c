package valuetype

import "strings"

// Type is a deduced value type: TextType, BoolType, IntType, RealType or
// TupleType.
type Type interface {
	// Kind returns the type kind. Tuples report KindSeq.
	Kind() Kind

	// String returns the language neutral name, e.g. "tuple<integer, text>".
	String() string

	// CxxName returns the C++ spelling, e.g. "std::tuple<long, std::string_view>".
	CxxName() string

	sealed()
}

// TextType is the type of Text values.
type TextType struct{}

// BoolType is the type of Bool values.
type BoolType struct{}

// IntType is the type of Int values.
type IntType struct{}

// RealType is the type of Real values.
type RealType struct{}

// TupleType is a fixed-arity compound of positional element types.
type TupleType struct {
	Elems []Type
}

func (TextType) Kind() Kind  { return KindText }
func (BoolType) Kind() Kind  { return KindBool }
func (IntType) Kind() Kind   { return KindInt }
func (RealType) Kind() Kind  { return KindReal }
func (TupleType) Kind() Kind { return KindSeq }

func (TextType) String() string { return "text" }
func (BoolType) String() string { return "boolean" }
func (IntType) String() string  { return "integer" }
func (RealType) String() string { return "real" }

func (t TupleType) String() string {
	return "tuple<" + joinTypes(t.Elems, Type.String) + ">"
}

func (TextType) CxxName() string { return "std::string_view" }
func (BoolType) CxxName() string { return "bool" }
func (IntType) CxxName() string  { return "long" }
func (RealType) CxxName() string { return "double" }

func (t TupleType) CxxName() string {
	return "std::tuple<" + joinTypes(t.Elems, Type.CxxName) + ">"
}

func (TextType) sealed()  {}
func (BoolType) sealed()  {}
func (IntType) sealed()   {}
func (RealType) sealed()  {}
func (TupleType) sealed() {}

func joinTypes(types []Type, name func(Type) string) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = name(t)
	}
	return strings.Join(names, ", ")
}
