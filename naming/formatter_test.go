package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_LowerSnakeCase(t *testing.T) {
	f, err := NewFormatter("snake_case", "sn4ke_cas3", "test_123")
	require.NoError(t, err)

	assert.Equal(t, LowerSnake, f.Style())
	assert.Equal(t, [][]string{
		{"snake", "case"},
		{"sn4ke", "cas3"},
		{"test", "123"},
	}, f.Parts())
	assert.Equal(t, "snake_case_rules_123", f.Join([]string{"snake", "case", "rules", "123"}))
	assert.Equal(t, "", f.Join(nil))
}

func TestFormatter_UpperSnakeCase(t *testing.T) {
	f, err := NewFormatter("SNAKE_CASE", "SN4KE_CAS3", "TEST_123")
	require.NoError(t, err)

	assert.Equal(t, UpperSnake, f.Style())
	assert.Equal(t, [][]string{
		{"snake", "case"},
		{"sn4ke", "cas3"},
		{"test", "123"},
	}, f.Parts())
	assert.Equal(t, "SNAKE_CASE_RULES_123", f.Join([]string{"snake", "case", "rules", "123"}))
	assert.Equal(t, "", f.Join([]string{}))
}

func TestFormatter_UpperCamelCase(t *testing.T) {
	f, err := NewFormatter("CamelCase", "C4melCas3")
	require.NoError(t, err)

	assert.Equal(t, UpperCamel, f.Style())
	assert.Equal(t, [][]string{{"camel", "case"}, {"c4mel", "cas3"}}, f.Parts())
	assert.Equal(t, "CamelCaseRules", f.Join([]string{"camel", "case", "rules"}))
	assert.Equal(t, "", f.Join(nil))
}

func TestFormatter_LowerCamelCase(t *testing.T) {
	f, err := NewFormatter("camelCase", "c4melCas3")
	require.NoError(t, err)

	assert.Equal(t, LowerCamel, f.Style())
	assert.Equal(t, [][]string{{"camel", "case"}, {"c4mel", "cas3"}}, f.Parts())
	assert.Equal(t, "camelCaseRules", f.Join([]string{"camel", "case", "rules"}))
	assert.Equal(t, "", f.Join(nil))
}

func TestFormatter_SingleWord(t *testing.T) {
	tests := []struct {
		name  string
		word  string
		style CaseStyle
		join  string
	}{
		{"lowercase word is snake case", "word", LowerSnake, "snake_case"},
		{"uppercase word is snake case", "WORD", UpperSnake, "SNAKE_CASE"},
		{"capitalized word is camel case", "Word", UpperCamel, "SnakeCase"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFormatter(tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.style, f.Style())
			assert.Equal(t, tt.join, f.Join([]string{"snake", "case"}))
		})
	}
}

func TestFormatter_UnrecognizedCase(t *testing.T) {
	for _, name := range []string{"odd word", "", "_leading", "trailing_", "double__underscore", "1abc", "mixed_Case"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewFormatter(name)
			assert.ErrorIs(t, err, ErrNoCommonCase)
		})
	}
}

func TestFormatter_DifferentCases(t *testing.T) {
	_, err := NewFormatter("snake_case", "UPPER_CASE")
	assert.ErrorIs(t, err, ErrNoCommonCase)

	_, err = NewFormatter("lower", "UPPER")
	assert.ErrorIs(t, err, ErrNoCommonCase)
}

func TestFormatter_NoNames(t *testing.T) {
	_, err := NewFormatter()
	assert.ErrorIs(t, err, ErrNoCommonCase)
}

func TestFormatter_FirstCommonStyleWins(t *testing.T) {
	// "BUSY" is upper snake case on its own, but it also reads as UpperCamel
	// with one-letter subwords, which is the only style "Word" fits.
	f, err := NewFormatter("Word", "BUSY")
	require.NoError(t, err)
	assert.Equal(t, UpperCamel, f.Style())
	assert.Equal(t, []string{"b", "u", "s", "y"}, f.Parts()[1])
}

func TestFormatter_JoinPlural(t *testing.T) {
	f, err := NewFormatter("word")
	require.NoError(t, err)

	assert.Equal(t, "joinable_things", f.JoinPlural([]string{"joinable", "thing"}))
	assert.Equal(t, "", f.JoinPlural(nil))

	camel, err := NewFormatter("Status")
	require.NoError(t, err)
	assert.Equal(t, "Statuses", camel.JoinPlural(camel.Parts()[0]))
}

func TestFormatter_JoinPluralDoesNotModifyInput(t *testing.T) {
	f, err := NewFormatter("word")
	require.NoError(t, err)

	words := []string{"joinable", "thing"}
	f.JoinPlural(words)
	assert.Equal(t, []string{"joinable", "thing"}, words)
}

func TestFormatter_RoundTrip(t *testing.T) {
	samples := [][]string{
		{"snake_case", "sn4ke_cas3", "test_123"},
		{"SNAKE_CASE", "WAITING_FOR_INPUT", "BUSY"},
		{"CamelCase", "C4melCas3", "HTTPServer"},
		{"camelCase", "c4melCas3", "waitingForInput"},
	}
	for _, names := range samples {
		f, err := NewFormatter(names...)
		require.NoError(t, err)
		for i, parts := range f.Parts() {
			assert.Equal(t, names[i], f.Join(parts), "round trip of %q (%s)", names[i], f.Style())
		}
	}
}

func TestFormatter_PartsIsACopy(t *testing.T) {
	f, err := NewFormatter("snake_case")
	require.NoError(t, err)

	parts := f.Parts()
	parts[0][0] = "changed"
	assert.Equal(t, "snake", f.Parts()[0][0])
}

func TestCaseStyle_String(t *testing.T) {
	tests := []struct {
		style CaseStyle
		want  string
	}{
		{LowerSnake, "lower_snake_case"},
		{UpperSnake, "UPPER_SNAKE_CASE"},
		{UpperCamel, "UpperCamelCase"},
		{LowerCamel, "lowerCamelCase"},
		{CaseStyle(0), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.String())
		})
	}
}
