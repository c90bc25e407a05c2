package pathtoregexp

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Regexp is a compiled path expression. It is safe for concurrent use.
type Regexp struct {
	source string
	flags  string
	re     *regexp2.Regexp
}

const regexpDelimiter = "#"

var regexpFlags = map[rune]regexp2.RegexOptions{
	'i': regexp2.IgnoreCase,
	'm': regexp2.Multiline,
	's': regexp2.Singleline,
	'x': regexp2.IgnorePatternWhitespace,
	'u': regexp2.Unicode,
}

func newRegexp(source, flags string, timeout time.Duration) (*Regexp, error) {
	opt := regexp2.None
	for _, f := range flags {
		o, ok := regexpFlags[f]
		if !ok {
			return nil, fmt.Errorf("%w: unknown flag %q", ErrInvalidRegexp, f)
		}
		opt |= o
	}

	re, err := regexp2.Compile(source, opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRegexp, source, err)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}

	return &Regexp{source: source, flags: flags, re: re}, nil
}

// Source returns the expression without delimiters and flags.
func (r *Regexp) Source() string {
	return r.source
}

// Flags returns the flags the expression was compiled with, such as "i".
func (r *Regexp) Flags() string {
	return r.flags
}

// String returns the expression in delimited form, e.g. "#^(?:/a)\z#i".
func (r *Regexp) String() string {
	var s strings.Builder
	s.WriteString(regexpDelimiter)
	s.WriteString(r.source)
	s.WriteString(regexpDelimiter)
	s.WriteString(r.flags)

	return s.String()
}

// MatchString reports whether s matches the expression. An error is
// returned only when the match times out.
func (r *Regexp) MatchString(s string) (bool, error) {
	return r.re.MatchString(s)
}
