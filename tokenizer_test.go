package pathtoregexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := tokenize(`/u:id{*rest\}}`)
	require.NoError(t, err)

	assert.Equal(t, []lexToken{
		{tType: tokenChar, index: 0, value: "/"},
		{tType: tokenChar, index: 1, value: "u"},
		{tType: tokenParam, index: 2, value: "id"},
		{tType: tokenOpen, index: 5, value: "{"},
		{tType: tokenWildcard, index: 6, value: "rest"},
		{tType: tokenEscapedChar, index: 11, value: "}"},
		{tType: tokenClose, index: 13, value: "}"},
		{tType: tokenEnd, index: 14},
	}, tokens)
}

func TestTokenizeCodePointIndexes(t *testing.T) {
	tokens, err := tokenize("/é/:ñame")
	require.NoError(t, err)

	assert.Equal(t, []lexToken{
		{tType: tokenChar, index: 0, value: "/"},
		{tType: tokenChar, index: 1, value: "é"},
		{tType: tokenChar, index: 2, value: "/"},
		{tType: tokenParam, index: 3, value: "ñame"},
		{tType: tokenEnd, index: 8},
	}, tokens)
}

func TestTokenizeReserved(t *testing.T) {
	tokens, err := tokenize("()[]+?!")
	require.NoError(t, err)

	types := make([]tokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.tType
	}

	assert.Equal(t, []tokenType{
		tokenLParen,
		tokenRParen,
		tokenLBracket,
		tokenRBracket,
		tokenPlus,
		tokenQuestion,
		tokenExclamation,
		tokenEnd,
	}, types)
}

func TestTokenizeQuotedName(t *testing.T) {
	tokens, err := tokenize(`:"a\\b\"c"x`)
	require.NoError(t, err)

	require.Len(t, tokens, 3)
	assert.Equal(t, lexToken{tType: tokenParam, index: 0, value: `a\b"c`}, tokens[0])
	assert.Equal(t, lexToken{tType: tokenChar, index: 10, value: "x"}, tokens[1])
}

func TestTokenizeInvalidUTF8(t *testing.T) {
	assert.Equal(t, -1, invalidRuneIndex("/caf\u00e9/\ufffd"))
	assert.Equal(t, 0, invalidRuneIndex("\x80"))
	assert.Equal(t, 3, invalidRuneIndex("/\u00e9/\xc3"))

	_, err := tokenize("/a/\xff")
	require.ErrorIs(t, err, ErrInvalidUTF8)

	tokens, err := tokenize("/\ufffd")
	require.NoError(t, err)
	assert.Equal(t, lexToken{tType: tokenChar, index: 1, value: "\ufffd"}, tokens[1])
}

func TestIdentifierCodePoints(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '$', '_', 'é', 'Ⅳ', '中'} {
		assert.True(t, isIdentifierStart(r), "%q", r)
	}
	for _, r := range []rune{'0', '-', '.', '/', ' ', '\u200d', '"'} {
		assert.False(t, isIdentifierStart(r), "%q", r)
	}

	for _, r := range []rune{'a', '0', '$', '_', '\u0301', '\u200c', '\u200d', '\u203f'} {
		assert.True(t, isIdentifierPart(r), "%q", r)
	}
	for _, r := range []rune{'-', '.', '/', ' ', ':', '{'} {
		assert.False(t, isIdentifierPart(r), "%q", r)
	}
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "{", tokenOpen.String())
	assert.Equal(t, "param", tokenParam.String())
	assert.Equal(t, "end", tokenEnd.String())
	assert.Equal(t, "!", tokenExclamation.String())
	assert.Equal(t, "unknown", tokenType(255).String())
}
