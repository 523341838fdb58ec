package validator

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/viant/uuid4/format"
	"github.com/viant/uuid4/model"
)

// Matcher strategies.
const (
	StrategyPositional = "positional"
	StrategyPattern    = "pattern"
	StrategyParser     = "parser"
)

var (
	// ErrInvalidFormat is returned by Parse for any malformed input.
	ErrInvalidFormat = model.ErrInvalidFormat
	// ErrUnknownStrategy is returned by NewMatcher.
	ErrUnknownStrategy = errors.New("unknown validation strategy")
)

// Matcher reports whether s is a valid identifier.
type Matcher interface {
	Match(s string) bool
}

// MatcherFunc adapts a predicate to Matcher.
type MatcherFunc func(s string) bool

// Match calls f(s).
func (f MatcherFunc) Match(s string) bool { return f(s) }

var pattern = regexp.MustCompile(format.Pattern)

var (
	Positional Matcher = MatcherFunc(IsValid)
	Pattern    Matcher = MatcherFunc(pattern.MatchString)
	Parser     Matcher = MatcherFunc(func(s string) bool {
		_, err := Parse(s)
		return err == nil
	})
)

// IsValid reports whether s is a canonical lowercase version 4 identifier.
func IsValid(s string) bool {
	if len(s) != format.Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case format.IsHyphenOffset(i):
			if c != format.Separator {
				return false
			}
		case i == format.VersionOffset:
			if !format.IsVersionDigit(c) {
				return false
			}
		case i == format.VariantOffset:
			if !format.IsVariantDigit(c) {
				return false
			}
		case !format.IsHexDigit(c):
			return false
		}
	}
	return true
}

// NewMatcher returns the Matcher registered under strategy; empty selects Positional.
func NewMatcher(strategy string) (Matcher, error) {
	switch strategy {
	case "", StrategyPositional:
		return Positional, nil
	case StrategyPattern:
		return Pattern, nil
	case StrategyParser:
		return Parser, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}
