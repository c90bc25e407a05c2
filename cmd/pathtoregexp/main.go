// Command pathtoregexp prints the regular expression compiled from a route
// path and matches candidate paths against it.
//
// Usage:
//
//	pathtoregexp [flags] <pattern> [path...]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dunglas/go-pathtoregexp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pathtoregexp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: pathtoregexp [flags] <pattern> [path...]")
		fs.PrintDefaults()
	}

	configFile := fs.String("config", "", "YAML `file` with matching options")
	delimiter := fs.String("delimiter", pathtoregexp.DefaultDelimiter, "segment delimiter")
	sensitive := fs.Bool("sensitive", false, "case-sensitive matching")
	end := fs.Bool("end", true, "require the match to reach the end of the path")
	trailing := fs.Bool("trailing", true, "accept one trailing delimiter")
	noDecode := fs.Bool("no-decode", false, "do not percent-decode matched values")
	verbose := fs.Bool("v", false, "log debug information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()

		return 2
	}

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := slog.New(log.NewWithOptions(stderr, log.Options{
		Level:  level,
		Prefix: "pathtoregexp",
	}))

	opts := []pathtoregexp.Option{pathtoregexp.WithLogger(logger)}
	if *configFile != "" {
		c, err := loadConfig(*configFile)
		if err != nil {
			logger.Error("cannot load config", slog.Any("error", err))

			return 2
		}

		fileOpts, err := c.options()
		if err != nil {
			logger.Error("invalid config", slog.String("file", *configFile), slog.Any("error", err))

			return 2
		}
		opts = append(opts, fileOpts...)
	}

	// Flags given explicitly take precedence over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "delimiter":
			opts = append(opts, pathtoregexp.WithDelimiter(*delimiter))
		case "sensitive":
			opts = append(opts, pathtoregexp.WithSensitive(*sensitive))
		case "end":
			opts = append(opts, pathtoregexp.WithEnd(*end))
		case "trailing":
			opts = append(opts, pathtoregexp.WithTrailing(*trailing))
		case "no-decode":
			if *noDecode {
				opts = append(opts, pathtoregexp.WithDecode(nil))
			}
		}
	})

	pattern := fs.Arg(0)

	re, keys, err := pathtoregexp.PathToRegexp(pattern, opts...)
	if err != nil {
		logger.Error("cannot compile pattern", slog.String("pattern", pattern), slog.Any("error", err))

		return 1
	}

	fmt.Fprintf(stdout, "regexp: %s\n", re)
	fmt.Fprintf(stdout, "keys: %s\n", formatKeys(keys))

	if fs.NArg() == 1 {
		return 0
	}

	match, err := pathtoregexp.MatchRegexp(re, keys, opts...)
	if err != nil {
		logger.Error("cannot build matcher", slog.String("pattern", pattern), slog.Any("error", err))

		return 1
	}

	status := 0
	for _, path := range fs.Args()[1:] {
		result, err := match(path)
		if err != nil {
			logger.Error("cannot match", slog.String("path", path), slog.Any("error", err))
			status = 1

			continue
		}

		if result == nil {
			fmt.Fprintf(stdout, "%s: no match\n", path)

			continue
		}

		out, err := json.Marshal(result)
		if err != nil {
			logger.Error("cannot encode result", slog.String("path", path), slog.Any("error", err))
			status = 1

			continue
		}
		fmt.Fprintf(stdout, "%s: %s\n", path, out)
	}

	return status
}

func formatKeys(keys []pathtoregexp.Key) string {
	if len(keys) == 0 {
		return "(none)"
	}

	names := make([]string, len(keys))
	for i, k := range keys {
		kind := "parameter"
		if _, ok := k.(pathtoregexp.Wildcard); ok {
			kind = "wildcard"
		}
		names[i] = k.KeyName() + " (" + kind + ")"
	}

	return strings.Join(names, ", ")
}
