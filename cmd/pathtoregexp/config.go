package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/dunglas/go-pathtoregexp"
)

// config holds matching options read from a YAML file. Unset fields keep
// the library defaults.
type config struct {
	Delimiter    string `yaml:"delimiter"`
	Sensitive    *bool  `yaml:"sensitive"`
	End          *bool  `yaml:"end"`
	Trailing     *bool  `yaml:"trailing"`
	Decode       *bool  `yaml:"decode"`
	MatchTimeout string `yaml:"match_timeout"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c config
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &c, nil
}

func (c *config) options() ([]pathtoregexp.Option, error) {
	var opts []pathtoregexp.Option

	if c.Delimiter != "" {
		opts = append(opts, pathtoregexp.WithDelimiter(c.Delimiter))
	}
	if c.Sensitive != nil {
		opts = append(opts, pathtoregexp.WithSensitive(*c.Sensitive))
	}
	if c.End != nil {
		opts = append(opts, pathtoregexp.WithEnd(*c.End))
	}
	if c.Trailing != nil {
		opts = append(opts, pathtoregexp.WithTrailing(*c.Trailing))
	}
	if c.Decode != nil && !*c.Decode {
		opts = append(opts, pathtoregexp.WithDecode(nil))
	}
	if c.MatchTimeout != "" {
		d, err := time.ParseDuration(c.MatchTimeout)
		if err != nil {
			return nil, fmt.Errorf("match_timeout: %w", err)
		}
		opts = append(opts, pathtoregexp.WithMatchTimeout(d))
	}

	return opts, nil
}
