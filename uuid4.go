package uuid4

import (
	"github.com/viant/uuid4/internal/idgen"
	"github.com/viant/uuid4/service/validator"
)

// Generate returns a new random identifier in its canonical 36-character
// rendering. It panics only if the operating system entropy source fails.
func Generate() string {
	return idgen.New()
}

// IsValid reports whether s is a canonical lowercase version 4 identifier.
func IsValid(s string) bool {
	return validator.IsValid(s)
}
