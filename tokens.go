package pathtoregexp

// lexToken is a single lexical token produced by tokenize.
type lexToken struct {
	tType tokenType
	index int
	value string
}

type tokenType uint8

const (
	// tokenOpen represents a U+007B ({) code point opening an optional group.
	tokenOpen tokenType = iota
	// tokenClose represents a U+007D (}) code point closing an optional group.
	tokenClose
	// tokenWildcard represents a string of the form "*<name>". The value is the name.
	tokenWildcard
	// tokenParam represents a string of the form ":<name>". The value is the name.
	tokenParam
	// tokenChar represents a code point without any special syntactical meaning.
	tokenChar
	// tokenEscapedChar represents a code point escaped using a backslash like "\<char>".
	tokenEscapedChar
	// tokenEnd represents the end of the pattern string.
	tokenEnd

	// The following code points are reserved for future syntax.
	tokenLParen
	tokenRParen
	tokenLBracket
	tokenRBracket
	tokenPlus
	tokenQuestion
	tokenExclamation
)

var simpleTokens = map[rune]tokenType{
	'{': tokenOpen,
	'}': tokenClose,
	'(': tokenLParen,
	')': tokenRParen,
	'[': tokenLBracket,
	']': tokenRBracket,
	'+': tokenPlus,
	'?': tokenQuestion,
	'!': tokenExclamation,
}

func (t tokenType) String() string {
	switch t {
	case tokenOpen:
		return "{"
	case tokenClose:
		return "}"
	case tokenWildcard:
		return "wildcard"
	case tokenParam:
		return "param"
	case tokenChar:
		return "char"
	case tokenEscapedChar:
		return "escape"
	case tokenEnd:
		return "end"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	case tokenLBracket:
		return "["
	case tokenRBracket:
		return "]"
	case tokenPlus:
		return "+"
	case tokenQuestion:
		return "?"
	case tokenExclamation:
		return "!"
	default:
		return "unknown"
	}
}
