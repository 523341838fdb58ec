package validator

import (
	"fmt"

	"github.com/viant/parsly"
	"github.com/viant/uuid4/format"
	"github.com/viant/uuid4/model"
)

// Parse decodes s, returning an error wrapping ErrInvalidFormat that names the
// first group or separator that failed to match.
func Parse(s string) (model.Identifier, error) {
	cursor := parsly.NewCursor("", []byte(s), 0)
	var id model.Identifier
	d := 0
	for i, token := range groupTokens {
		if i > 0 {
			matched := cursor.MatchOne(hyphenToken)
			if matched.Code != hyphenToken.Code {
				return model.Nil, fmt.Errorf("%w: expected %q at offset %d: %v", ErrInvalidFormat, format.Separator, cursor.Pos, cursor.NewError(hyphenToken))
			}
		}
		matched := cursor.MatchOne(token)
		if matched.Code != token.Code {
			return model.Nil, fmt.Errorf("%w: expected %s at offset %d: %v", ErrInvalidFormat, format.Groups[i].Name, cursor.Pos, cursor.NewError(token))
		}
		text := matched.Text(cursor)
		for j := 0; j < len(text); j += 2 {
			hi, _ := format.HexValue(text[j])
			lo, _ := format.HexValue(text[j+1])
			id[d] = hi<<4 | lo
			d++
		}
	}
	if cursor.Pos < cursor.InputSize {
		return model.Nil, fmt.Errorf("%w: unexpected input at offset %d", ErrInvalidFormat, cursor.Pos)
	}
	return id, nil
}
