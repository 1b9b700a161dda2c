package enhancedenum

import (
	"strings"

	"github.com/jasujm/enhanced-enum/ir"
)

// ParseDocstring splits a docstring into a short description (its first
// paragraph, joined into one line) and a long description (the remaining
// paragraphs). Lines after the first are dedented by their common
// indentation. It returns nil for a blank docstring.
func ParseDocstring(docstring string) *ir.Documentation {
	lines := cleanLines(docstring)
	if len(lines) == 0 {
		return nil
	}

	end := 0
	for end < len(lines) && lines[end] != "" {
		end++
	}
	short := make([]string, end)
	for i, line := range lines[:end] {
		short[i] = strings.TrimSpace(line)
	}

	rest := lines[end:]
	for len(rest) > 0 && rest[0] == "" {
		rest = rest[1:]
	}
	return &ir.Documentation{
		Short: strings.Join(short, " "),
		Long:  strings.Join(rest, "\n"),
	}
}

// cleanLines dedents the docstring and strips leading and trailing blank
// lines. Blank lines inside are normalized to "".
func cleanLines(docstring string) []string {
	docstring = strings.ReplaceAll(docstring, "\r\n", "\n")
	docstring = strings.ReplaceAll(docstring, "\t", "    ")
	lines := strings.Split(docstring, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	lines[0] = strings.TrimLeft(lines[0], " ")

	indent := -1
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " "))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent > 0 {
		for i := 1; i < len(lines); i++ {
			if lines[i] != "" {
				lines[i] = lines[i][indent:]
			}
		}
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
