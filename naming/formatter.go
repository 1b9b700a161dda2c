// Package naming detects the case style shared by a set of identifiers and
// builds new identifiers in that style.
//
//	f, _ := naming.NewFormatter("snake_case")
//	f.Parts()[0]                                  // ["snake", "case"]
//	f.Join([]string{"name", "in", "snake", "case"}) // "name_in_snake_case"
//
// Only ASCII letters and digits are recognized. Digits may appear anywhere
// except at the start of the first subword.
package naming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"
)

// ErrNoCommonCase is returned when the sample names do not share one of the
// recognized case styles.
var ErrNoCommonCase = errors.New("no common case style")

// Formatter splits identifiers into subwords and joins word lists using the
// case style shared by all of its sample identifiers.
type Formatter struct {
	style CaseStyle
	parts [][]string
}

// NewFormatter determines the first case style that every name matches.
// It fails with ErrNoCommonCase if there is none or names is empty.
func NewFormatter(names ...string) (*Formatter, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no names given", ErrNoCommonCase)
	}
	for _, style := range caseStyles {
		if !matchesAll(style, names) {
			continue
		}
		parts := make([][]string, len(names))
		for i, name := range names {
			parts[i] = style.Split(name)
		}
		return &Formatter{style: style, parts: parts}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoCommonCase, quoteAll(names))
}

func matchesAll(style CaseStyle, names []string) bool {
	for _, name := range names {
		if !style.Matches(name) {
			return false
		}
	}
	return true
}

func quoteAll(names []string) string {
	const limit = 5
	quoted := make([]string, 0, limit+1)
	for i, name := range names {
		if i == limit {
			quoted = append(quoted, fmt.Sprintf("and %d more", len(names)-limit))
			break
		}
		quoted = append(quoted, fmt.Sprintf("%q", name))
	}
	return strings.Join(quoted, ", ")
}

// Style returns the detected case style.
func (f *Formatter) Style() CaseStyle {
	return f.style
}

// Parts returns the lowercase subwords of each sample name, in the order
// the names were given.
func (f *Formatter) Parts() [][]string {
	out := make([][]string, len(f.parts))
	for i, p := range f.parts {
		out[i] = append([]string(nil), p...)
	}
	return out
}

// Join builds an identifier from words in the detected style.
func (f *Formatter) Join(words []string) string {
	return f.style.Join(words)
}

// JoinPlural is like Join, but replaces the last word with its English
// plural first.
func (f *Formatter) JoinPlural(words []string) string {
	if len(words) == 0 {
		return ""
	}
	plural := append([]string(nil), words...)
	last := len(plural) - 1
	plural[last] = inflection.Plural(strings.ToLower(plural[last]))
	return f.style.Join(plural)
}
