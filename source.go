package pathtoregexp

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const fullWildcardRegexpValue = `[\s\S]+`

// toRegexpSource turns a flat token sequence into one alternative of the
// final expression. Keys are appended in capture order.
//
// A parameter that directly follows another key can't tell where the
// previous value ends unless some text sits between them. Once a segment
// contains the delimiter, the parameter only has to stop at the delimiter;
// otherwise it must also refuse to start over the text that precedes it,
// which keeps the engine from backtracking into it.
func toRegexpSource(tokens []Token, delimiter string, keys *[]Key, originalPath string) (string, error) {
	var result strings.Builder
	backtrack := ""
	isSafeSegmentParam := true

	for _, t := range tokens {
		switch t := t.(type) {
		case Text:
			result.WriteString(escapeRegexpString(t.Value))
			backtrack += t.Value
			isSafeSegmentParam = isSafeSegmentParam || strings.Contains(t.Value, delimiter)

		case Key:
			if !isSafeSegmentParam && backtrack == "" {
				return "", &CompileError{Err: ErrMissingText, Name: t.KeyName(), Path: originalPath}
			}

			result.WriteByte('(')
			if _, ok := t.(Wildcard); ok {
				result.WriteString(fullWildcardRegexpValue)
			} else {
				exclude := backtrack
				if isSafeSegmentParam {
					exclude = ""
				}
				result.WriteString(negate(delimiter, exclude))
				result.WriteByte('+')
			}
			result.WriteByte(')')

			*keys = append(*keys, t)
			backtrack = ""
			isSafeSegmentParam = false

		default:
			return "", fmt.Errorf("%w: %s in a flattened sequence", ErrUnexpectedToken, t)
		}
	}

	return result.String(), nil
}

// negate returns a fragment matching one character that does not start
// the delimiter nor the backtrack text. Single characters fit in a negated
// class; longer strings need a negative lookahead.
func negate(delimiter, backtrack string) string {
	del := escapeRegexpString(delimiter)
	bt := escapeRegexpString(backtrack)

	if utf8.RuneCountInString(backtrack) < 2 {
		if utf8.RuneCountInString(delimiter) < 2 {
			return "[^" + del + bt + "]"
		}
		if bt == "" {
			return "(?:(?!" + del + `)[\s\S])`
		}

		return "(?:(?!" + del + ")[^" + bt + "])"
	}

	if utf8.RuneCountInString(delimiter) < 2 {
		return "(?:(?!" + bt + ")[^" + del + "])"
	}

	return "(?:(?!" + del + "|" + bt + `)[\s\S])`
}
