package pathtoregexp

import (
	"strconv"
	"strings"
)

// Token is a node of a parsed path: one of Text, Parameter, Wildcard or
// Group.
type Token interface {
	String() string
	token()
}

// Key is a token that captures a value when matching: Parameter or
// Wildcard.
type Key interface {
	Token
	KeyName() string
	key()
}

var (
	_ Token = Text{}
	_ Token = Group{}
	_ Key   = Parameter{}
	_ Key   = Wildcard{}
)

// Text is literal text.
type Text struct {
	Value string
}

func (Text) token() {}

// String returns a debug form such as Text("/users").
func (t Text) String() string {
	return "Text(" + strconv.Quote(t.Value) + ")"
}

// Parameter matches a run of characters up to the next delimiter.
type Parameter struct {
	Name string
}

func (Parameter) token() {}
func (Parameter) key()   {}

// KeyName returns the parameter name.
func (p Parameter) KeyName() string {
	return p.Name
}

// String returns a debug form such as Parameter(id).
func (p Parameter) String() string {
	return "Parameter(" + p.Name + ")"
}

// Wildcard matches one or more characters, delimiters included.
type Wildcard struct {
	Name string
}

func (Wildcard) token() {}
func (Wildcard) key()   {}

// KeyName returns the wildcard name.
func (w Wildcard) KeyName() string {
	return w.Name
}

// String returns a debug form such as Wildcard(path).
func (w Wildcard) String() string {
	return "Wildcard(" + w.Name + ")"
}

// Group is an optional section of a path. Groups nest.
type Group struct {
	Tokens []Token
}

func (Group) token() {}

// String returns the group and its tokens, e.g. Group[Text("/"), Parameter(id)].
func (g Group) String() string {
	return "Group" + tokensString(g.Tokens)
}

// TokenData is the result of parsing a path.
type TokenData struct {
	Tokens []Token
	// OriginalPath is the parsed input, kept for error messages.
	OriginalPath string
}

func tokensString(tokens []Token) string {
	s := new(strings.Builder)
	s.WriteByte('[')
	for i, t := range tokens {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(t.String())
	}
	s.WriteByte(']')

	return s.String()
}
