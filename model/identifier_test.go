package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier_String(t *testing.T) {
	id := Identifier{0x12, 0x3e, 0x45, 0x67, 0xe8, 0x9b, 0x42, 0xd3, 0xa4, 0x56, 0x42, 0x66, 0x14, 0x17, 0x40, 0x00}
	assert.Equal(t, "123e4567-e89b-42d3-a456-426614174000", id.String())
	assert.Equal(t, 4, id.Version())
	assert.Equal(t, 0b10, id.Variant())
	assert.True(t, id.IsV4())
	assert.False(t, Nil.IsV4())
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", Nil.String())
}

func TestIdentifier_UnmarshalText(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expectError bool
	}{
		{description: "valid", input: "123e4567-e89b-42d3-a456-426614174000"},
		{description: "uppercase", input: "123E4567-E89B-42D3-A456-426614174000", expectError: true},
		{description: "version 1", input: "123e4567-e89b-12d3-a456-426614174000", expectError: true},
		{description: "nil", input: "00000000-0000-0000-0000-000000000000", expectError: true},
		{description: "empty", input: "", expectError: true},
	}
	for _, testCase := range testCases {
		var id Identifier
		err := id.UnmarshalText([]byte(testCase.input))
		if testCase.expectError {
			assert.ErrorIs(t, err, ErrInvalidFormat, testCase.description)
			assert.Equal(t, Nil, id, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.input, id.String(), testCase.description)
	}
}

func TestIdentifier_JSON(t *testing.T) {
	type session struct {
		ID Identifier `json:"id"`
	}
	encoded := []byte(`{"id":"123e4567-e89b-42d3-a456-426614174000"}`)
	var s session
	require.NoError(t, json.Unmarshal(encoded, &s))
	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, string(encoded), string(out))

	err = json.Unmarshal([]byte(`{"id":"123e4567-e89b-42d3-c456-426614174000"}`), &s)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFromUUID(t *testing.T) {
	random := uuid.New()
	id, err := FromUUID(random)
	require.NoError(t, err)
	assert.Equal(t, random.String(), id.String())
	assert.Equal(t, random, id.UUID())

	_, err = FromUUID(uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://example.com")))
	assert.ErrorIs(t, err, ErrNotV4)

	_, err = FromUUID(uuid.Nil)
	assert.ErrorIs(t, err, ErrNotV4)

	legacy := uuid.MustParse("123e4567-e89b-42d3-c456-426614174000")
	_, err = FromUUID(legacy)
	assert.ErrorIs(t, err, ErrNotV4)
}
