package gopaginator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWindow      = 4
	DefaultOuterWindow = 0
	DefaultLeft        = 0
	DefaultRight       = 0
)

// Config holds application-wide window sizes. Per-call Options override it.
type Config struct {
	// Window is the default inner window.
	Window int `json:"window" yaml:"window"`
	// OuterWindow is used for Left and Right when those resolve to zero.
	OuterWindow int `json:"outerWindow" yaml:"outer_window"`
	Left        int `json:"left" yaml:"left"`
	Right       int `json:"right" yaml:"right"`
}

func DefaultConfig() Config {
	return Config{
		Window:      DefaultWindow,
		OuterWindow: DefaultOuterWindow,
		Left:        DefaultLeft,
		Right:       DefaultRight,
	}
}

// ParseConfig decodes a YAML document on top of DefaultConfig. Unknown keys
// and negative sizes are rejected.
//
// Example:
//
//	window: 2
//	outer_window: 1
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	fields := []lo.Tuple2[string, int]{
		lo.T2("window", c.Window),
		lo.T2("outer_window", c.OuterWindow),
		lo.T2("left", c.Left),
		lo.T2("right", c.Right),
	}
	for _, f := range fields {
		if f.B < 0 {
			return fmt.Errorf("%w: negative %s %d", ErrInvalidConfig, f.A, f.B)
		}
	}

	return nil
}

// Resolve merges opts over the config and produces Parameters for the given
// page position.
//
// The inner window is taken from Options.Window, then Options.InnerWindow,
// then Config.Window. An explicitly set Options.Left/Right is used as is, so
// zero really means no outer window on that side. An unset side takes the
// config value and falls back to the outer window when that value is zero.
func (c Config) Resolve(currentPage, totalPages int, opts Options) (Parameters, error) {
	outer := lo.FromPtrOr(opts.OuterWindow, c.OuterWindow)

	resolveSide := func(explicit *int, configured int) int {
		if explicit != nil {
			return *explicit
		}

		return lo.Ternary(configured == 0, outer, configured)
	}

	params := Parameters{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Window:      lo.FromPtrOr(opts.Window, lo.FromPtrOr(opts.InnerWindow, c.Window)),
		Left:        resolveSide(opts.Left, c.Left),
		Right:       resolveSide(opts.Right, c.Right),
	}

	if err := params.Validate(); err != nil {
		return Parameters{}, fmt.Errorf("cannot resolve paginator parameters: %w", err)
	}

	return params, nil
}

// Options are per-call overrides. A nil field means "not set".
type Options struct {
	Window      *int `json:"window,omitempty"`
	InnerWindow *int `json:"innerWindow,omitempty"`
	OuterWindow *int `json:"outerWindow,omitempty"`
	Left        *int `json:"left,omitempty"`
	Right       *int `json:"right,omitempty"`
}

type OptionKey = string

var _optionSetters = map[OptionKey]func(*Options, int){
	"window":       func(o *Options, v int) { o.Window = lo.ToPtr(v) },
	"inner_window": func(o *Options, v int) { o.InnerWindow = lo.ToPtr(v) },
	"outer_window": func(o *Options, v int) { o.OuterWindow = lo.ToPtr(v) },
	"left":         func(o *Options, v int) { o.Left = lo.ToPtr(v) },
	"right":        func(o *Options, v int) { o.Right = lo.ToPtr(v) },
}

// ParseOptions builds Options from a loosely typed option bag, e.g. one taken
// from a template call or a query string. Unknown keys are rejected with the
// closest known key in the error message.
func ParseOptions(bag map[OptionKey]int) (Options, error) {
	var opts Options

	keys := lo.Keys(bag)
	slices.Sort(keys)

	for _, key := range keys {
		set, ok := _optionSetters[key]
		if !ok {
			known := lo.Keys(_optionSetters)
			slices.Sort(known)

			return Options{}, fmt.Errorf("%w '%s'. closest: '%s'", ErrUnknownOption, key, closestKey(key, known))
		}

		set(&opts, bag[key])
	}

	return opts, nil
}

func closestKey(input OptionKey, dataSet []OptionKey) OptionKey {
	minDist := math.MaxInt
	closest := ""

	for _, key := range dataSet {
		dist := levenshtein([]rune(key), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = key
		}
	}

	return closest
}
