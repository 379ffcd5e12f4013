// Package config loads hillclimb run settings from an HCL file.
//
//	alphabet {
//	  start = "S"
//	  goal  = "E"
//	}
//
//	search {
//	  variant   = "both"   # single | multi | both
//	  max_steps = 0        # 0 = unlimited
//	}
//
// Every block and attribute is optional; omitted values keep Default().
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/frontier"
)

// ErrInvalidConfig wraps every parse, decode and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is a validated run configuration.
type Config struct {
	Alphabet elevation.Alphabet
	Variants []frontier.Variant
	// MaxSteps of 0 means no limit.
	MaxSteps int
}

// Default runs both variants with the standard alphabet and no step limit.
func Default() *Config {
	return &Config{
		Alphabet: elevation.DefaultAlphabet(),
		Variants: []frontier.Variant{frontier.SingleSource, frontier.MultiSource},
	}
}

// SearchOptions returns the frontier options implied by c.
func (c *Config) SearchOptions() []frontier.Option {
	return []frontier.Option{frontier.WithMaxSteps(c.MaxSteps)}
}

// hclFile is the top-level structure of a config file for decoding.
type hclFile struct {
	Alphabet *hclAlphabet `hcl:"alphabet,block"`
	Search   *hclSearch   `hcl:"search,block"`
}

type hclAlphabet struct {
	Start *string `hcl:"start,optional"`
	Goal  *string `hcl:"goal,optional"`
}

type hclSearch struct {
	Variant  *string `hcl:"variant,optional"`
	MaxSteps *int    `hcl:"max_steps,optional"`
}

// Load parses and validates the HCL file at path.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, path, diags)
	}
	return decode(path, file.Body)
}

// Parse parses and validates HCL source; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, filename, diags)
	}
	return decode(filename, file.Body)
}

func decode(filename string, body hcl.Body) (*Config, error) {
	var raw hclFile
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrInvalidConfig, filename, diags)
	}

	cfg := Default()
	if a := raw.Alphabet; a != nil {
		if a.Start != nil {
			r, err := symbol("start", *a.Start)
			if err != nil {
				return nil, err
			}
			cfg.Alphabet.Start = r
		}
		if a.Goal != nil {
			r, err := symbol("goal", *a.Goal)
			if err != nil {
				return nil, err
			}
			cfg.Alphabet.Goal = r
		}
	}
	if err := cfg.Alphabet.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if s := raw.Search; s != nil {
		if s.Variant != nil {
			vs, err := ParseVariants(*s.Variant)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
			}
			cfg.Variants = vs
		}
		if s.MaxSteps != nil {
			if *s.MaxSteps < 0 {
				return nil, fmt.Errorf("%w: max_steps cannot be negative (%d)", ErrInvalidConfig, *s.MaxSteps)
			}
			cfg.MaxSteps = *s.MaxSteps
		}
	}

	return cfg, nil
}

// ParseVariants accepts "both" or any name frontier.ParseVariant accepts.
func ParseVariants(s string) ([]frontier.Variant, error) {
	if strings.EqualFold(strings.TrimSpace(s), "both") {
		return []frontier.Variant{frontier.SingleSource, frontier.MultiSource}, nil
	}
	v, err := frontier.ParseVariant(s)
	if err != nil {
		return nil, err
	}
	return []frontier.Variant{v}, nil
}

func symbol(attr, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: alphabet.%s must be a single character, got %q", ErrInvalidConfig, attr, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
