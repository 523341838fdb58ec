package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/uuid4/service/generator"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    string
		errorPart   string
	}{
		{
			description: "valid identifier",
			input:       "123e4567-e89b-42d3-a456-426614174000",
			expected:    "123e4567-e89b-42d3-a456-426614174000",
		},
		{
			description: "empty input",
			input:       "",
			errorPart:   "time_low",
		},
		{
			description: "wrong version",
			input:       "123e4567-e89b-12d3-a456-426614174000",
			errorPart:   "time_hi_and_version",
		},
		{
			description: "wrong variant",
			input:       "123e4567-e89b-42d3-c456-426614174000",
			errorPart:   "clock_seq",
		},
		{
			description: "missing hyphens",
			input:       "123e4567e89b42d3a456426614174000",
			errorPart:   "-",
		},
		{
			description: "short node",
			input:       "123e4567-e89b-42d3-a456-42661417400",
			errorPart:   "node",
		},
		{
			description: "trailing input",
			input:       "123e4567-e89b-42d3-a456-426614174000ff",
			errorPart:   "offset 36",
		},
		{
			description: "uppercase",
			input:       "123E4567-E89B-42D3-A456-426614174000",
			errorPart:   "time_low",
		},
	}
	for _, testCase := range testCases {
		id, err := Parse(testCase.input)
		if testCase.errorPart != "" {
			require.Error(t, err, testCase.description)
			assert.ErrorIs(t, err, ErrInvalidFormat, testCase.description)
			assert.Contains(t, err.Error(), testCase.errorPart, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expected, id.String(), testCase.description)
		assert.True(t, id.IsV4(), testCase.description)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := generator.NewIdentifier()
		require.NoError(t, err)
		parsed, err := Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}
