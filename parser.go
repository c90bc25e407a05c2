package pathtoregexp

import (
	"fmt"
	"strings"
)

// Parse parses a path pattern into a token tree. The pattern must be valid
// UTF-8, otherwise a *ParseError wrapping ErrInvalidUTF8 is returned.
func Parse(path string, opts ...Option) (*TokenData, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	return parse(path, o)
}

func parse(path string, o *options) (*TokenData, error) {
	tl, err := tokenize(path)
	if err != nil {
		return nil, err
	}

	p := patternParser{
		tokenList:        tl,
		encodingCallback: o.encodePath,
		path:             path,
	}

	tokens, err := p.consumeUntil(tokenEnd)
	if err != nil {
		return nil, err
	}

	return &TokenData{Tokens: tokens, OriginalPath: path}, nil
}

type patternParser struct {
	tokenList        []lexToken
	encodingCallback EncodeFunc
	path             string
	index            int
}

// consumeUntil consumes tokens up to and including the first token of type
// endType. The token list always ends with tokenEnd, so the loop cannot run
// past it: reaching tokenEnd while waiting for another type is an error.
func (p *patternParser) consumeUntil(endType tokenType) ([]Token, error) {
	var output []Token

	for {
		token := p.tokenList[p.index]
		p.index++

		if token.tType == endType {
			return output, nil
		}

		switch token.tType {
		case tokenChar, tokenEscapedChar:
			var value strings.Builder
			value.WriteString(token.value)

			for isTextToken(p.tokenList[p.index]) {
				value.WriteString(p.tokenList[p.index].value)
				p.index++
			}

			output = append(output, Text{Value: p.encodingCallback(value.String())})

		case tokenParam:
			output = append(output, Parameter{Name: token.value})

		case tokenWildcard:
			output = append(output, Wildcard{Name: token.value})

		case tokenOpen:
			children, err := p.consumeUntil(tokenClose)
			if err != nil {
				return nil, err
			}

			output = append(output, Group{Tokens: children})

		default:
			return nil, &ParseError{
				Err:    ErrUnexpectedToken,
				Index:  token.index,
				Path:   p.path,
				detail: fmt.Sprintf("%q (expected %q)", token.tType, endType),
			}
		}
	}
}

func isTextToken(t lexToken) bool {
	return t.tType == tokenChar || t.tType == tokenEscapedChar
}
