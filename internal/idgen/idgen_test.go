package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/uuid4/service/validator"
)

func TestNew(t *testing.T) {
	assert.True(t, validator.IsValid(New()))
}

func TestSequence(t *testing.T) {
	restore := Sequence("a", "b")
	assert.Equal(t, "a", New())
	assert.Equal(t, "b", New())
	assert.Equal(t, "a", New())
	restore()
	assert.True(t, validator.IsValid(New()))
}
