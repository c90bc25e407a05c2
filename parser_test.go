package pathtoregexp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dunglas/go-pathtoregexp"
)

type (
	text      = pathtoregexp.Text
	parameter = pathtoregexp.Parameter
	wildcard  = pathtoregexp.Wildcard
	group     = pathtoregexp.Group
)

func TestParse(t *testing.T) {
	tests := []struct {
		path   string
		tokens []pathtoregexp.Token
	}{
		{
			path:   "/users/list",
			tokens: []pathtoregexp.Token{text{Value: "/users/list"}},
		},
		{
			path:   "/users/:id",
			tokens: []pathtoregexp.Token{text{Value: "/users/"}, parameter{Name: "id"}},
		},
		{
			path:   "/files/*filepath",
			tokens: []pathtoregexp.Token{text{Value: "/files/"}, wildcard{Name: "filepath"}},
		},
		{
			path: "/posts{/:year{/:month}}",
			tokens: []pathtoregexp.Token{
				text{Value: "/posts"},
				group{Tokens: []pathtoregexp.Token{
					text{Value: "/"},
					parameter{Name: "year"},
					group{Tokens: []pathtoregexp.Token{
						text{Value: "/"},
						parameter{Name: "month"},
					}},
				}},
			},
		},
		{
			path:   `/users\:id\{x\}`,
			tokens: []pathtoregexp.Token{text{Value: "/users:id{x}"}},
		},
		{
			path:   `/:"user id"/:"a\"b"`,
			tokens: []pathtoregexp.Token{text{Value: "/"}, parameter{Name: "user id"}, text{Value: "/"}, parameter{Name: `a"b`}},
		},
		{
			path:   "/:café/:$x_1.json",
			tokens: []pathtoregexp.Token{text{Value: "/"}, parameter{Name: "café"}, text{Value: "/"}, parameter{Name: "$x_1"}, text{Value: ".json"}},
		},
		{
			path:   "/:a\u200db-c",
			tokens: []pathtoregexp.Token{text{Value: "/"}, parameter{Name: "a\u200db"}, text{Value: "-c"}},
		},
		{
			path:   "{}",
			tokens: []pathtoregexp.Token{group{}},
		},
		{
			path:   "",
			tokens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			data, err := pathtoregexp.Parse(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.path, data.OriginalPath)
			assert.Equal(t, tt.tokens, data.Tokens)
		})
	}
}

func TestParseEncodePath(t *testing.T) {
	data, err := pathtoregexp.Parse("/Hello/:id/World", pathtoregexp.WithEncodePath(strings.ToLower))
	require.NoError(t, err)

	assert.Equal(t, []pathtoregexp.Token{
		text{Value: "/hello/"},
		parameter{Name: "id"},
		text{Value: "/world"},
	}, data.Tokens)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		path  string
		err   error
		index int
	}{
		{"/:", pathtoregexp.ErrMissingParameterName, 2},
		{"/:/", pathtoregexp.ErrMissingParameterName, 2},
		{"/*", pathtoregexp.ErrMissingParameterName, 2},
		{"/:1", pathtoregexp.ErrMissingParameterName, 2},
		{`/:""`, pathtoregexp.ErrMissingParameterName, 4},
		{`/:"abc`, pathtoregexp.ErrUnterminatedQuote, 2},
		{`/:"abc\"`, pathtoregexp.ErrUnterminatedQuote, 2},
		{"/a}", pathtoregexp.ErrUnexpectedToken, 2},
		{"/a{b", pathtoregexp.ErrUnexpectedToken, 4},
		{"/a(b)", pathtoregexp.ErrUnexpectedToken, 2},
		{"/a+", pathtoregexp.ErrUnexpectedToken, 2},
		{"/a?", pathtoregexp.ErrUnexpectedToken, 2},
		{"/a!", pathtoregexp.ErrUnexpectedToken, 2},
		{"/[a]", pathtoregexp.ErrUnexpectedToken, 1},
		{"/é}", pathtoregexp.ErrUnexpectedToken, 2},
		{`/a\`, pathtoregexp.ErrUnexpectedEnd, 2},
		{"/a\xff", pathtoregexp.ErrInvalidUTF8, 2},
		{"/é\xe2\x82/b", pathtoregexp.ErrInvalidUTF8, 2},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := pathtoregexp.Parse(tt.path)
			require.ErrorIs(t, err, tt.err)

			var parseErr *pathtoregexp.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.index, parseErr.Index)
			assert.Equal(t, tt.path, parseErr.Path)
			assert.True(t, strings.HasSuffix(err.Error(), ": "+tt.path), err.Error())
		})
	}
}

func TestParseUnexpectedTokenMessage(t *testing.T) {
	_, err := pathtoregexp.Parse("/a{b")
	require.Error(t, err)
	assert.Equal(t, `unexpected token "end" (expected "}") at index 4: /a{b`, err.Error())

	_, err = pathtoregexp.Parse("/a}")
	require.Error(t, err)
	assert.Equal(t, `unexpected token "}" (expected "end") at index 2: /a}`, err.Error())
}
