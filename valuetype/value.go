// Package valuetype infers the value type shared by the members of an enum
// and renders member values as initializer expressions.
//
// Raw values are first converted into the closed Value sum (Text, Bool,
// Int, Real, Seq). Deduction walks the sample in a fixed priority order and
// recurses positionally into sequences to build tuple types.
package valuetype

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
)

// ErrUnsupportedValue is returned for values outside the Value sum.
var ErrUnsupportedValue = errors.New("unsupported value")

// Value is one of Text, Bool, Int, Real or Seq.
type Value interface {
	// Kind returns the value kind for type switching.
	Kind() Kind

	sealed()
}

// Kind identifies the category of a Value or Type.
type Kind int

const (
	// KindText is a string.
	KindText Kind = iota
	// KindBool is true or false.
	KindBool
	// KindInt is an integer of any size.
	KindInt
	// KindReal is a floating point number.
	KindReal
	// KindSeq is a sequence of values, possibly of different kinds.
	KindSeq
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindReal:
		return "real"
	case KindSeq:
		return "sequence"
	default:
		return "unknown"
	}
}

// Text is a string or byte string value.
type Text string

// Bool is a boolean value.
type Bool bool

// Int is an integral value of arbitrary size.
type Int struct {
	V *big.Int
}

// Real is a floating point value.
type Real float64

// Seq is an ordered sequence of values. Elements need not share a kind.
type Seq []Value

func (Text) Kind() Kind { return KindText }
func (Bool) Kind() Kind { return KindBool }
func (Int) Kind() Kind  { return KindInt }
func (Real) Kind() Kind { return KindReal }
func (Seq) Kind() Kind  { return KindSeq }

func (Text) sealed() {}
func (Bool) sealed() {}
func (Int) sealed()  {}
func (Real) sealed() {}
func (Seq) sealed()  {}

// IntOf returns an Int holding n.
func IntOf(n int64) Int {
	return Int{V: big.NewInt(n)}
}

// String returns the decimal representation of the integer.
func (i Int) String() string {
	if i.V == nil {
		return "0"
	}
	return i.V.String()
}

// FromAny converts a raw Go value into a Value.
//
// Strings and byte slices become Text, booleans Bool, every integer kind
// Int, floats Real, and any other slice or array a Seq of its converted
// elements. Values already in the Value sum are returned unchanged.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return Text(x), nil
	case []byte:
		return Text(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return IntOf(int64(x)), nil
	case int8:
		return IntOf(int64(x)), nil
	case int16:
		return IntOf(int64(x)), nil
	case int32:
		return IntOf(int64(x)), nil
	case int64:
		return IntOf(x), nil
	case uint:
		return Int{V: new(big.Int).SetUint64(uint64(x))}, nil
	case uint8:
		return IntOf(int64(x)), nil
	case uint16:
		return IntOf(int64(x)), nil
	case uint32:
		return IntOf(int64(x)), nil
	case uint64:
		return Int{V: new(big.Int).SetUint64(x)}, nil
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("%w: nil integer", ErrUnsupportedValue)
		}
		return Int{V: new(big.Int).Set(x)}, nil
	case float32:
		return Real(x), nil
	case float64:
		return Real(x), nil
	case []any:
		return seqFromAny(len(x), func(i int) any { return x[i] })
	case nil:
		return nil, fmt.Errorf("%w: null", ErrUnsupportedValue)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return seqFromAny(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	}
	return nil, fmt.Errorf("%w: %v of type %T", ErrUnsupportedValue, v, v)
}

func seqFromAny(n int, at func(int) any) (Value, error) {
	seq := make(Seq, n)
	for i := range seq {
		elem, err := FromAny(at(i))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		seq[i] = elem
	}
	return seq, nil
}

// isIntegral reports whether v counts as an integer. Booleans do.
func isIntegral(v Value) bool {
	switch v.(type) {
	case Int, Bool:
		return true
	default:
		return false
	}
}

// isReal reports whether v counts as a real number. Integers and booleans do.
func isReal(v Value) bool {
	switch v.(type) {
	case Real, Int, Bool:
		return true
	default:
		return false
	}
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
