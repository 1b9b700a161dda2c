package valuetype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jasujm/enhanced-enum/ir"
)

// Initializer renders v as an initializer. It does not depend on the type
// deduced for the sample v belongs to.
//
// Text becomes a double quoted string literal, Bool true or false, numbers
// their literal, and a Seq a list with one nested initializer per element.
func Initializer(v Value) (ir.Initializer, error) {
	switch x := v.(type) {
	case Text:
		return ir.Scalar(quote(string(x))), nil
	case Bool:
		return ir.Scalar(strconv.FormatBool(bool(x))), nil
	case Int:
		return ir.Scalar(x.String()), nil
	case Real:
		f := float64(x)
		if !isFinite(f) {
			return ir.Initializer{}, fmt.Errorf("%w: %v has no literal", ErrUnsupportedValue, f)
		}
		return ir.Scalar(formatReal(f)), nil
	case Seq:
		elems := make([]ir.Initializer, len(x))
		for i, e := range x {
			elem, err := Initializer(e)
			if err != nil {
				return ir.Initializer{}, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = elem
		}
		return ir.List(elems...), nil
	}
	return ir.Initializer{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

// formatReal returns the shortest representation of f that still reads as
// a floating point literal.
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// quote returns s as a C string literal. Bytes outside printable ASCII are
// written as three digit octal escapes, except for UTF-8 sequences which are
// passed through.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '?':
			// Avoid forming trigraphs.
			if i+1 < len(s) && s[i+1] == '?' {
				b.WriteString(`\?`)
			} else {
				b.WriteByte(c)
			}
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\%03o`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
