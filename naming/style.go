package naming

import (
	"regexp"
	"strings"
)

// CaseStyle identifies a lexical case convention for identifiers.
type CaseStyle int

const (
	// LowerSnake is lower_snake_case. A single lowercase word is LowerSnake.
	LowerSnake CaseStyle = iota + 1

	// UpperSnake is UPPER_SNAKE_CASE. A single uppercase word is UpperSnake.
	UpperSnake

	// UpperCamel is UpperCamelCase. A single capitalized word is UpperCamel.
	UpperCamel

	// LowerCamel is lowerCamelCase, with at least two subwords.
	LowerCamel
)

// caseStyles lists the recognized styles in the order they are tried.
var caseStyles = []CaseStyle{LowerSnake, UpperSnake, UpperCamel, LowerCamel}

var (
	lowerSnakePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
	upperSnakePattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)
	upperCamelPattern = regexp.MustCompile(`^([A-Z][a-z0-9]*)+$`)
	lowerCamelPattern = regexp.MustCompile(`^[a-z][a-z0-9]*([A-Z][a-z0-9]*)+$`)

	// camelWord matches one subword of either camel case style.
	camelWord = regexp.MustCompile(`[A-Za-z][a-z0-9]*`)
)

// String returns the name of the case style.
func (s CaseStyle) String() string {
	switch s {
	case LowerSnake:
		return "lower_snake_case"
	case UpperSnake:
		return "UPPER_SNAKE_CASE"
	case UpperCamel:
		return "UpperCamelCase"
	case LowerCamel:
		return "lowerCamelCase"
	default:
		return "unknown"
	}
}

// Matches reports whether name is written entirely in this style.
func (s CaseStyle) Matches(name string) bool {
	switch s {
	case LowerSnake:
		return lowerSnakePattern.MatchString(name)
	case UpperSnake:
		return upperSnakePattern.MatchString(name)
	case UpperCamel:
		return upperCamelPattern.MatchString(name)
	case LowerCamel:
		return lowerCamelPattern.MatchString(name)
	default:
		return false
	}
}

// Split breaks name into lowercase subwords. name must match s.
func (s CaseStyle) Split(name string) []string {
	var parts []string
	switch s {
	case LowerSnake, UpperSnake:
		parts = strings.Split(name, "_")
	case UpperCamel, LowerCamel:
		parts = camelWord.FindAllString(name, -1)
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return parts
}

// Join assembles words into a single identifier written in this style.
// Joining no words yields the empty string.
func (s CaseStyle) Join(words []string) string {
	if len(words) == 0 {
		return ""
	}
	switch s {
	case LowerSnake:
		return joinMapped(words, "_", strings.ToLower)
	case UpperSnake:
		return joinMapped(words, "_", strings.ToUpper)
	case UpperCamel:
		return joinMapped(words, "", capitalize)
	case LowerCamel:
		return strings.ToLower(words[0]) + joinMapped(words[1:], "", capitalize)
	default:
		return strings.Join(words, "")
	}
}

func joinMapped(words []string, sep string, fn func(string) string) string {
	mapped := make([]string, len(words))
	for i, w := range words {
		mapped[i] = fn(w)
	}
	return strings.Join(mapped, sep)
}

// capitalize uppercases the first byte and lowercases the rest. Identifiers
// are ASCII only.
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
