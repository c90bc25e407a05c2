package pathtoregexp

import (
	"io"
	"log/slog"
	"time"
)

// DefaultDelimiter separates path segments unless WithDelimiter says otherwise.
const DefaultDelimiter = "/"

// DecodeFunc decodes a single matched value.
type DecodeFunc func(string) (string, error)

// EncodeFunc transforms literal text at parse time, before escaping.
type EncodeFunc func(string) string

type options struct {
	delimiter    string
	end          bool
	sensitive    bool
	trailing     bool
	decode       DecodeFunc
	encodePath   EncodeFunc
	matchTimeout time.Duration
	logger       *slog.Logger
}

// Option configures Parse, PathToRegexp and Match.
type Option func(*options)

func newOptions(opts []Option) (*options, error) {
	o := &options{
		delimiter:  DefaultDelimiter,
		end:        true,
		trailing:   true,
		decode:     DecodeURIComponent,
		encodePath: noopEncode,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.delimiter == "" {
		return nil, ErrInvalidDelimiter
	}

	return o, nil
}

// WithDelimiter sets the segment separator. It defaults to "/".
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		o.delimiter = delimiter
	}
}

// WithEnd controls whether the match must reach the end of the input.
// When false, the match must stop at a delimiter or at the end.
func WithEnd(end bool) Option {
	return func(o *options) {
		o.end = end
	}
}

// WithSensitive enables case-sensitive matching.
func WithSensitive(sensitive bool) Option {
	return func(o *options) {
		o.sensitive = sensitive
	}
}

// WithTrailing controls whether a single trailing delimiter is accepted.
func WithTrailing(trailing bool) Option {
	return func(o *options) {
		o.trailing = trailing
	}
}

// WithDecode sets the function used to decode matched values. A nil
// function disables decoding.
func WithDecode(decode DecodeFunc) Option {
	return func(o *options) {
		o.decode = decode
	}
}

// WithEncodePath sets the function applied to literal text while parsing.
func WithEncodePath(encode EncodeFunc) Option {
	return func(o *options) {
		if encode == nil {
			encode = noopEncode
		}
		o.encodePath = encode
	}
}

// WithMatchTimeout bounds the time spent on a single match. Zero keeps the
// engine default (no timeout).
func WithMatchTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.matchTimeout = timeout
	}
}

// WithLogger sets the logger used to report compiled patterns at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func noopEncode(s string) string {
	return s
}
