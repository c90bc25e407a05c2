package pathtoregexp

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// MatchResult is a successful match.
type MatchResult struct {
	// Path is the matched part of the input.
	Path   string `json:"path"`
	Params Params `json:"params"`
}

// Params maps key names to decoded values: a string for a Parameter and a
// []string, one element per segment, for a Wildcard. With decoding
// disabled every value is the raw captured string. Keys that did not take
// part in the match are absent.
type Params map[string]any

// Param returns the value of a parameter.
func (p Params) Param(name string) (string, bool) {
	v, ok := p[name].(string)

	return v, ok
}

// Wildcard returns the segments captured by a wildcard.
func (p Params) Wildcard(name string) ([]string, bool) {
	v, ok := p[name].([]string)

	return v, ok
}

// MatchFunc matches a path. It returns nil and no error when the path does
// not match.
type MatchFunc func(path string) (*MatchResult, error)

type decoder func(string) (any, error)

// Match compiles path (see PathToRegexp) and returns a function matching
// candidate paths against it. The returned function is safe for
// concurrent use.
func Match(path any, opts ...Option) (MatchFunc, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	re, keys, err := pathToRegexp(path, o)
	if err != nil {
		return nil, err
	}

	return newMatchFunc(re, keys, o), nil
}

// MatchRegexp returns a function matching candidate paths against an
// expression already compiled by PathToRegexp. keys must be the keys
// returned with re, and opts should carry the same delimiter.
func MatchRegexp(re *Regexp, keys []Key, opts ...Option) (MatchFunc, error) {
	if re == nil {
		return nil, fmt.Errorf("%w: nil *Regexp", ErrInvalidRegexp)
	}

	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	return newMatchFunc(re, keys, o), nil
}

func newMatchFunc(re *Regexp, keys []Key, o *options) MatchFunc {
	decoders := make([]decoder, len(keys))
	for i, key := range keys {
		decoders[i] = newDecoder(key, o.delimiter, o.decode)
	}

	return func(input string) (*MatchResult, error) {
		m, err := re.re.FindStringMatch(input)
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", input, err)
		}
		if m == nil {
			return nil, nil
		}

		params := make(Params, len(keys))
		for i, key := range keys {
			g := m.GroupByNumber(i + 1)
			// The group belongs to an alternative that did not match.
			if g == nil || len(g.Captures) == 0 {
				continue
			}

			value, err := decoders[i](g.String())
			if err != nil {
				return nil, err
			}

			params[key.KeyName()] = value
		}

		return &MatchResult{Path: m.String(), Params: params}, nil
	}
}

// MustMatch is like Match but panics on error.
func MustMatch(path any, opts ...Option) MatchFunc {
	fn, err := Match(path, opts...)
	if err != nil {
		panic("pathtoregexp: " + err.Error())
	}

	return fn
}

func newDecoder(key Key, delimiter string, decode DecodeFunc) decoder {
	if decode == nil {
		return func(value string) (any, error) {
			return value, nil
		}
	}

	if _, ok := key.(Wildcard); ok {
		return func(value string) (any, error) {
			segments := strings.Split(value, delimiter)
			for i, s := range segments {
				decoded, err := decode(s)
				if err != nil {
					return nil, err
				}
				segments[i] = decoded
			}

			return segments, nil
		}
	}

	return func(value string) (any, error) {
		return decode(value)
	}
}

// DecodeURIComponent percent-decodes value and rejects results that are
// not valid UTF-8. It is the default DecodeFunc. Unlike query decoding,
// "+" is kept as is.
func DecodeURIComponent(value string) (string, error) {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return "", &DecodeError{Err: err, Value: value}
	}

	if !utf8.ValidString(decoded) {
		return "", &DecodeError{Value: value}
	}

	return decoded, nil
}
