package validator

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
	"github.com/viant/uuid4/format"
)

// Token codes
const (
	hyphenCode = iota + 1
	timeLowCode
	timeMidCode
	timeHiAndVersionCode
	clockSeqCode
	nodeCode
)

// Token definitions
var (
	hyphenToken = parsly.NewToken(hyphenCode, "-", matcher.NewByte(format.Separator))
	groupTokens = [len(format.Groups)]*parsly.Token{
		newGroupToken(timeLowCode, format.Groups[0]),
		newGroupToken(timeMidCode, format.Groups[1]),
		newGroupToken(timeHiAndVersionCode, format.Groups[2]),
		newGroupToken(clockSeqCode, format.Groups[3]),
		newGroupToken(nodeCode, format.Groups[4]),
	}
)

func newGroupToken(code int, group format.Group) *parsly.Token {
	return parsly.NewToken(code, group.Name, &groupMatcher{width: group.Width, lead: group.Lead})
}

// groupMatcher matches exactly width lowercase hex digits; lead, when set,
// constrains the first one.
type groupMatcher struct {
	width int
	lead  func(c byte) bool
}

func (m *groupMatcher) Match(cursor *parsly.Cursor) int {
	pos := cursor.Pos
	if pos+m.width > cursor.InputSize {
		return 0
	}
	input := cursor.Input[pos : pos+m.width]
	for i, c := range input {
		if i == 0 && m.lead != nil {
			if !m.lead(c) {
				return 0
			}
			continue
		}
		if !format.IsHexDigit(c) {
			return 0
		}
	}
	return m.width
}
