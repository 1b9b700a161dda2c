package valuetype

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySample is returned when there are no values to deduce from.
	ErrEmptySample = errors.New("no values to deduce a type from")

	// ErrIncompatibleTypes is returned when no single type fits all values.
	ErrIncompatibleTypes = errors.New("cannot deduce a compatible type")
)

// Deduce infers the narrowest type that every value in the sample fits.
//
// The candidates are tried in order against the whole sample: text,
// boolean, integer (booleans count), real (integers and booleans count),
// and finally tuple when every value is a sequence. Tuple element types
// are deduced per position from the sequences long enough to have that
// position, and the tuple is as long as the longest sequence.
func Deduce(values ...Value) (Type, error) {
	if len(values) == 0 {
		return nil, ErrEmptySample
	}
	switch {
	case all(values, func(v Value) bool { return v.Kind() == KindText }):
		return TextType{}, nil
	case all(values, func(v Value) bool { return v.Kind() == KindBool }):
		return BoolType{}, nil
	case all(values, isIntegral):
		return IntType{}, nil
	case all(values, isReal):
		return RealType{}, nil
	case all(values, func(v Value) bool { return v.Kind() == KindSeq }):
		seqs := make([]Seq, len(values))
		for i, v := range values {
			seqs[i] = v.(Seq)
		}
		return deduceTuple(seqs)
	}
	return nil, fmt.Errorf("%w: sample mixes %s", ErrIncompatibleTypes, kindsOf(values))
}

func deduceTuple(seqs []Seq) (Type, error) {
	arity := 0
	for _, s := range seqs {
		arity = max(arity, len(s))
	}

	elems := make([]Type, arity)
	for pos := range elems {
		var column []Value
		for _, s := range seqs {
			if pos < len(s) {
				column = append(column, s[pos])
			}
		}
		t, err := Deduce(column...)
		if err != nil {
			return nil, fmt.Errorf("tuple element %d: %w", pos, err)
		}
		elems[pos] = t
	}
	return TupleType{Elems: elems}, nil
}

func all(values []Value, pred func(Value) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}
	return true
}

// kindsOf lists the distinct kinds in values, in order of appearance.
func kindsOf(values []Value) string {
	seen := make(map[Kind]bool)
	var names []string
	for _, v := range values {
		if k := v.Kind(); !seen[k] {
			seen[k] = true
			names = append(names, k.String())
		}
	}
	return strings.Join(names, ", ")
}

// Deducer holds the value type chosen for one enum, either deduced from the
// member values or given explicitly.
type Deducer struct {
	typ      Type
	typeName string
}

// NewDeducer deduces the type of values. A non-empty typeName skips
// deduction and is used verbatim as the type name; values may then be empty.
func NewDeducer(values []Value, typeName string) (*Deducer, error) {
	if typeName != "" {
		return &Deducer{typeName: typeName}, nil
	}
	t, err := Deduce(values...)
	if err != nil {
		return nil, err
	}
	return &Deducer{typ: t, typeName: t.CxxName()}, nil
}

// Type returns the deduced type, or nil if the type name was given
// explicitly.
func (d *Deducer) Type() Type {
	return d.typ
}

// TypeName returns the C++ type name of the values.
func (d *Deducer) TypeName() string {
	return d.typeName
}
