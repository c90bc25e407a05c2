package pathtoregexp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/utf8string"
)

// tokenizer splits a path pattern into lexical tokens. Indexes are code
// point offsets into the input.
type tokenizer struct {
	input     *utf8string.String
	length    int
	tokenList []lexToken
	index     int
}

func tokenize(input string) ([]lexToken, error) {
	if i := invalidRuneIndex(input); i >= 0 {
		return nil, &ParseError{Err: ErrInvalidUTF8, Index: i, Path: input}
	}

	t := tokenizer{
		input: utf8string.NewString(input),
	}
	t.length = t.input.RuneCount()
	t.tokenList = make([]lexToken, 0, t.length+1)

	for t.index < t.length {
		codePoint := t.input.At(t.index)

		if tType, ok := simpleTokens[codePoint]; ok {
			t.addToken(tType, t.index+1, string(codePoint))

			continue
		}

		switch codePoint {
		case '\\':
			if t.index == t.length-1 {
				return nil, &ParseError{Err: ErrUnexpectedEnd, Index: t.index, Path: input, detail: "after escape"}
			}

			t.addToken(tokenEscapedChar, t.index+2, string(t.input.At(t.index+1)))

		case ':', '*':
			name, namePosition, err := t.consumeName(t.index + 1)
			if err != nil {
				return nil, err
			}

			tType := tokenParam
			if codePoint == '*' {
				tType = tokenWildcard
			}

			t.addToken(tType, namePosition, name)

		default:
			t.addToken(tokenChar, t.index+1, string(codePoint))
		}
	}

	t.tokenList = append(t.tokenList, lexToken{tType: tokenEnd, index: t.index})

	return t.tokenList, nil
}

// invalidRuneIndex returns the code point index of the first invalid UTF-8
// sequence in s, or -1.
func invalidRuneIndex(s string) int {
	for i, n := 0, 0; i < len(s); n++ {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return n
		}
		i += size
	}

	return -1
}

func (t *tokenizer) addToken(tType tokenType, nextPosition int, value string) {
	t.tokenList = append(t.tokenList, lexToken{
		tType: tType,
		index: t.index,
		value: value,
	})
	t.index = nextPosition
}

// consumeName reads a parameter name starting at position and returns it
// along with the position right after it.
func (t *tokenizer) consumeName(position int) (string, int, error) {
	if position < t.length && isIdentifierStart(t.input.At(position)) {
		nameStart := position
		position++
		for position < t.length && isIdentifierPart(t.input.At(position)) {
			position++
		}

		return t.input.Slice(nameStart, position), position, nil
	}

	if position < t.length && t.input.At(position) == '"' {
		quoteStart := position
		closed := false

		var name strings.Builder
		for position++; position < t.length; position++ {
			codePoint := t.input.At(position)
			if codePoint == '"' {
				closed = true
				position++

				break
			}

			if codePoint == '\\' {
				position++
				if position == t.length {
					break
				}
				codePoint = t.input.At(position)
			}

			name.WriteRune(codePoint)
		}

		if !closed {
			return "", position, &ParseError{Err: ErrUnterminatedQuote, Index: quoteStart, Path: t.input.String()}
		}

		if name.Len() > 0 {
			return name.String(), position, nil
		}
	}

	return "", position, &ParseError{Err: ErrMissingParameterName, Index: position, Path: t.input.String()}
}

func isIdentifierStart(codePoint rune) bool {
	return codePoint == '$' ||
		codePoint == '_' ||
		unicode.In(codePoint, unicode.L, unicode.Nl)
}

func isIdentifierPart(codePoint rune) bool {
	return codePoint == '$' ||
		codePoint == '\u200c' ||
		codePoint == '\u200d' ||
		unicode.In(
			codePoint,
			unicode.L,
			unicode.Nl,
			unicode.Mn,
			unicode.Mc,
			unicode.Nd,
			unicode.Pc,
		)
}
