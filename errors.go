package pathtoregexp

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors, matched with errors.Is through the typed errors below.
var (
	ErrInvalidUTF8          = errors.New("invalid UTF-8")
	ErrUnterminatedQuote    = errors.New("unterminated quote")
	ErrMissingParameterName = errors.New("missing parameter name")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEnd        = errors.New("unexpected end of input")
	ErrMissingText          = errors.New("missing text before parameter")
	ErrInvalidPath          = errors.New("invalid path")
	ErrInvalidDelimiter     = errors.New("delimiter must not be empty")
	ErrInvalidRegexp        = errors.New("invalid regexp")
	ErrDecode               = errors.New("failed to decode param")
)

// ParseError reports a lexical or structural problem in a path pattern.
type ParseError struct {
	Err   error
	Index int
	// Path is the pattern being parsed.
	Path string

	detail string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.detail != "" {
		msg += " " + e.detail
	}
	msg += " at index " + strconv.Itoa(e.Index)
	if e.Path != "" {
		msg += ": " + e.Path
	}

	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CompileError reports a pattern that parses but cannot be matched
// unambiguously, such as two adjacent parameters.
type CompileError struct {
	Err error
	// Name is the offending parameter or wildcard name.
	Name string
	Path string
}

func (e *CompileError) Error() string {
	msg := fmt.Sprintf("%s %q", e.Err, e.Name)
	if e.Path != "" {
		msg += ": " + e.Path
	}

	return msg
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// DecodeError is returned by the default decoder when a matched value is
// not valid percent-encoded UTF-8.
type DecodeError struct {
	Err   error
	Value string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %q", ErrDecode, e.Value)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDecode}
	}

	return []error{ErrDecode, e.Err}
}
