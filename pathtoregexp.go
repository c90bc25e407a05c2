// Package pathtoregexp turns route paths such as "/users/:id" or
// "/posts{/:year{/:month}}" into regular expressions and extracts named
// parameters from matching paths.
//
// The path syntax is:
//
//	:name      a parameter, matching up to the next delimiter
//	:"name"    a parameter with a quoted name
//	*name      a wildcard, matching one or more characters including delimiters
//	{...}      an optional group; groups nest
//	\x         the literal character x
//
// Every other character is literal. Two keys must be separated by some
// text, otherwise compiling fails with ErrMissingText.
package pathtoregexp

import (
	"fmt"
	"log/slog"
	"strings"
)

// PathToRegexp compiles path into a regular expression and returns the
// keys in capture order. path is a string, a *TokenData, a TokenData, or
// a slice ([]string, []*TokenData, []any) of them, nested at will; all
// alternatives of all paths are joined into a single expression.
func PathToRegexp(path any, opts ...Option) (*Regexp, []Key, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	return pathToRegexp(path, o)
}

// MustPathToRegexp is like PathToRegexp but panics on error.
func MustPathToRegexp(path any, opts ...Option) (*Regexp, []Key) {
	re, keys, err := PathToRegexp(path, opts...)
	if err != nil {
		panic("pathtoregexp: " + err.Error())
	}

	return re, keys
}

func pathToRegexp(path any, o *options) (*Regexp, []Key, error) {
	data, err := collectTokenData(path, o, nil)
	if err != nil {
		return nil, nil, err
	}

	var keys []Key
	var sources []string
	for _, d := range data {
		for tokens := range Flatten(d.Tokens) {
			source, err := toRegexpSource(tokens, o.delimiter, &keys, d.OriginalPath)
			if err != nil {
				return nil, nil, err
			}

			sources = append(sources, source)
		}
	}

	delimiter := escapeRegexpString(o.delimiter)

	var pattern strings.Builder
	pattern.WriteString("^(?:")
	pattern.WriteString(strings.Join(sources, "|"))
	pattern.WriteByte(')')
	if o.trailing {
		pattern.WriteString("(?:" + delimiter + `\z)?`)
	}
	if o.end {
		pattern.WriteString(`\z`)
	} else {
		pattern.WriteString("(?=" + delimiter + `|\z)`)
	}

	flags := "i"
	if o.sensitive {
		flags = ""
	}

	re, err := newRegexp(pattern.String(), flags, o.matchTimeout)
	if err != nil {
		return nil, nil, err
	}

	o.logger.Debug("path compiled",
		slog.Int("paths", len(data)),
		slog.Int("alternatives", len(sources)),
		slog.Int("keys", len(keys)),
		slog.String("regexp", re.String()),
	)

	return re, keys, nil
}

// collectTokenData flattens nested path lists in order, parsing strings.
func collectTokenData(path any, o *options, init []*TokenData) ([]*TokenData, error) {
	switch p := path.(type) {
	case string:
		data, err := parse(p, o)
		if err != nil {
			return nil, err
		}

		return append(init, data), nil

	case *TokenData:
		if p == nil {
			return nil, fmt.Errorf("%w: nil *TokenData", ErrInvalidPath)
		}

		return append(init, p), nil

	case TokenData:
		return append(init, &p), nil

	case []string:
		for _, s := range p {
			var err error
			if init, err = collectTokenData(s, o, init); err != nil {
				return nil, err
			}
		}

		return init, nil

	case []*TokenData:
		for _, d := range p {
			var err error
			if init, err = collectTokenData(d, o, init); err != nil {
				return nil, err
			}
		}

		return init, nil

	case []any:
		for _, v := range p {
			var err error
			if init, err = collectTokenData(v, o, init); err != nil {
				return nil, err
			}
		}

		return init, nil

	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidPath, path)
	}
}
