package ir

import "strings"

// Initializer is either a single initializer expression or an ordered list
// of nested initializers. Lists mirror the shape of tuple values and may be
// nested to any depth.
type Initializer struct {
	// Expr is the expression text. Empty for lists.
	Expr string

	// Elems are the nested initializers of a list.
	Elems []Initializer

	// IsList distinguishes an empty list from an empty expression.
	IsList bool
}

// Scalar returns an Initializer holding a single expression.
func Scalar(expr string) Initializer {
	return Initializer{Expr: expr}
}

// List returns an Initializer holding the given elements in order.
func List(elems ...Initializer) Initializer {
	if len(elems) == 0 {
		elems = nil
	}
	return Initializer{Elems: elems, IsList: true}
}

// String renders the initializer as a brace-enclosed list. Scalars render
// as their bare expression.
//
//	Scalar("1").String()                           == "1"
//	List(Scalar("1"), List(Scalar("true"))).String() == "{ 1, { true } }"
func (i Initializer) String() string {
	if !i.IsList {
		return i.Expr
	}
	if len(i.Elems) == 0 {
		return "{}"
	}
	parts := make([]string, len(i.Elems))
	for n, e := range i.Elems {
		parts[n] = e.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Braced renders the initializer like String, but always with outer braces.
// This is the form used after a type name in a braced initialization.
func (i Initializer) Braced() string {
	if !i.IsList {
		return "{ " + i.Expr + " }"
	}
	return i.String()
}
