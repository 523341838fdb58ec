package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/uuid4/service/generator"
)

var fixtures = []struct {
	description string
	input       string
	expected    bool
}{
	{description: "known good literal", input: "123e4567-e89b-42d3-a456-426614174000", expected: true},
	{description: "variant 8", input: "00000000-0000-4000-8000-000000000000", expected: true},
	{description: "variant 9", input: "ffffffff-ffff-4fff-9fff-ffffffffffff", expected: true},
	{description: "variant b", input: "abcdefab-cdef-4abc-bdef-abcdefabcdef", expected: true},
	{description: "empty string", input: "", expected: false},
	{description: "one digit short", input: "123e4567-e89b-42d3-a456-42661417400", expected: false},
	{description: "one digit long", input: "123e4567-e89b-42d3-a456-4266141740000", expected: false},
	{description: "wrong version", input: "123e4567-e89b-12d3-a456-426614174000", expected: false},
	{description: "wrong variant", input: "123e4567-e89b-42d3-c456-426614174000", expected: false},
	{description: "variant 7", input: "123e4567-e89b-42d3-7456-426614174000", expected: false},
	{description: "missing hyphens", input: "123e4567e89b42d3a456426614174000", expected: false},
	{description: "uppercase", input: "123E4567-E89B-42D3-A456-426614174000", expected: false},
	{description: "single uppercase digit", input: "123e4567-e89b-42d3-a456-42661417400A", expected: false},
	{description: "non hex letter", input: "123e4567-e89b-42d3-a456-42661417400g", expected: false},
	{description: "braced", input: "{123e4567-e89b-42d3-a456-426614174000}", expected: false},
	{description: "urn prefix", input: "urn:uuid:123e4567-e89b-42d3-a456-426614174000", expected: false},
	{description: "leading space", input: " 123e4567-e89b-42d3-a456-42661417400", expected: false},
	{description: "trailing newline", input: "123e4567-e89b-42d3-a456-426614174000\n", expected: false},
	{description: "shifted hyphen", input: "123e456-7e89b-42d3-a456-426614174000", expected: false},
	{description: "hyphen in place of digit", input: "123e4567-e89b-42d3-a456-4266141740-0", expected: false},
	{description: "embedded in longer text", input: "id=123e4567-e89b-42d3-a456-426614174000", expected: false},
	{description: "multibyte rune", input: "123e4567-e89b-42d3-a456-42661417400é", expected: false},
}

func TestIsValid(t *testing.T) {
	for _, testCase := range fixtures {
		assert.Equal(t, testCase.expected, IsValid(testCase.input), testCase.description)
	}
}

func TestMatchers_Agree(t *testing.T) {
	matchers := map[string]Matcher{
		StrategyPositional: Positional,
		StrategyPattern:    Pattern,
		StrategyParser:     Parser,
	}
	for name, matcher := range matchers {
		for _, testCase := range fixtures {
			assert.Equal(t, testCase.expected, matcher.Match(testCase.input), "%s: %s", name, testCase.description)
		}
		for i := 0; i < 200; i++ {
			id := generator.Generate()
			assert.True(t, matcher.Match(id), "%s: %s", name, id)
			assert.False(t, matcher.Match(strings.ToUpper(id)), "%s: %s", name, id)
		}
	}
}

func TestNewMatcher(t *testing.T) {
	testCases := []struct {
		description string
		strategy    string
		expectError bool
	}{
		{description: "default", strategy: ""},
		{description: "positional", strategy: StrategyPositional},
		{description: "pattern", strategy: StrategyPattern},
		{description: "parser", strategy: StrategyParser},
		{description: "unknown", strategy: "fuzzy", expectError: true},
	}
	for _, testCase := range testCases {
		matcher, err := NewMatcher(testCase.strategy)
		if testCase.expectError {
			assert.ErrorIs(t, err, ErrUnknownStrategy, testCase.description)
			assert.Nil(t, matcher, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.True(t, matcher.Match("123e4567-e89b-42d3-a456-426614174000"), testCase.description)
	}
}

func BenchmarkIsValid(b *testing.B) {
	id := generator.Generate()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		IsValid(id)
	}
}

func BenchmarkPattern(b *testing.B) {
	id := generator.Generate()
	for i := 0; i < b.N; i++ {
		Pattern.Match(id)
	}
}
