// SPDX-License-Identifier: MIT
// Package: lvloan/cmd/loanfinder
//
// config.go — layered driver configuration.
//
// Precedence (last wins): defaults → YAML file → LOANFINDER_* environment →
// command-line flags. The merged value is validated once with struct tags.

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// envPrefix prefixes every environment override.
const envPrefix = "LOANFINDER_"

// ErrInvalidConfig wraps every configuration failure.
var ErrInvalidConfig = errors.New("loanfinder: invalid configuration")

// Config is the complete driver configuration.
type Config struct {
	Graph   GraphConfig   `yaml:"graph"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
	Queue   string        `yaml:"queue" validate:"oneof=binary bin fibonacci fib"`
	Metrics bool          `yaml:"metrics"`
	Top     int           `yaml:"top" validate:"gte=0"`
}

// GraphConfig shapes the random actor graph.
type GraphConfig struct {
	Actors          int     `yaml:"actors" validate:"gte=1"`
	Arcs            int     `yaml:"arcs" validate:"gte=0"`
	MaxPotential    float64 `yaml:"max_potential" validate:"gt=0"`
	MaxInterestRate float64 `yaml:"max_interest_rate" validate:"gt=0"`
	Seed            int64   `yaml:"seed"` // 0 means current time
	IDScheme        string  `yaml:"id_scheme" validate:"oneof=int uuid"`
}

// QueryConfig is the lender query run against the graph.
type QueryConfig struct {
	Sink            int     `yaml:"sink" validate:"gte=0"`
	Requested       float64 `yaml:"requested" validate:"gte=0"`
	MaxInterestRate float64 `yaml:"max_interest_rate" validate:"gte=0"`
}

// LoggingConfig mirrors zerolog's knobs.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	Pretty bool   `yaml:"pretty"`
}

func defaultConfig() Config {
	var c Config
	c.Graph.Actors = 1000
	c.Graph.Arcs = 10000
	c.Graph.MaxPotential = 100
	c.Graph.MaxInterestRate = 0.1
	c.Graph.IDScheme = "int"
	c.Query.Sink = 0
	c.Query.Requested = 1000
	c.Query.MaxInterestRate = 2.0
	c.Logging.Level = "info"
	c.Queue = "fibonacci"
	c.Top = 10
	return c
}

// loadConfig merges defaults, the YAML file at path (if any) and the
// environment read through getenv. An empty path falls back to
// LOANFINDER_CONFIG.
func loadConfig(path string, getenv func(string) string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		path = getenv(envPrefix + "CONFIG")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := applyEnv(&c, getenv); err != nil {
		return c, err
	}

	return c, nil
}

// applyEnv overlays LOANFINDER_* variables. Unparsable values are errors.
func applyEnv(c *Config, getenv func(string) string) error {
	ints := map[string]*int{
		"ACTORS": &c.Graph.Actors,
		"ARCS":   &c.Graph.Arcs,
		"SINK":   &c.Query.Sink,
		"TOP":    &c.Top,
	}
	floats := map[string]*float64{
		"MAX_POTENTIAL": &c.Graph.MaxPotential,
		"MAX_ARC_RATE":  &c.Graph.MaxInterestRate,
		"REQUESTED":     &c.Query.Requested,
		"MAX_RATE":      &c.Query.MaxInterestRate,
	}
	strs := map[string]*string{
		"ID_SCHEME": &c.Graph.IDScheme,
		"QUEUE":     &c.Queue,
		"LOG_LEVEL": &c.Logging.Level,
	}
	bools := map[string]*bool{
		"LOG_PRETTY": &c.Logging.Pretty,
		"METRICS":    &c.Metrics,
	}

	for name, dst := range ints {
		if v := getenv(envPrefix + name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, envPrefix, name, v)
			}
			*dst = n
		}
	}
	for name, dst := range floats {
		if v := getenv(envPrefix + name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, envPrefix, name, v)
			}
			*dst = f
		}
	}
	for name, dst := range strs {
		if v := getenv(envPrefix + name); v != "" {
			*dst = v
		}
	}
	for name, dst := range bools {
		if v := getenv(envPrefix + name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, envPrefix, name, v)
			}
			*dst = b
		}
	}
	if v := getenv(envPrefix + "SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrInvalidConfig, envPrefix, v)
		}
		c.Graph.Seed = n
	}

	return nil
}

// applyFlags overlays every flag the user set explicitly.
func applyFlags(c *Config, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "actors":
			c.Graph.Actors, err = fs.GetInt(f.Name)
		case "arcs":
			c.Graph.Arcs, err = fs.GetInt(f.Name)
		case "seed":
			c.Graph.Seed, err = fs.GetInt64(f.Name)
		case "max-potential":
			c.Graph.MaxPotential, err = fs.GetFloat64(f.Name)
		case "max-arc-rate":
			c.Graph.MaxInterestRate, err = fs.GetFloat64(f.Name)
		case "id-scheme":
			c.Graph.IDScheme, err = fs.GetString(f.Name)
		case "sink":
			c.Query.Sink, err = fs.GetInt(f.Name)
		case "requested":
			c.Query.Requested, err = fs.GetFloat64(f.Name)
		case "max-rate":
			c.Query.MaxInterestRate, err = fs.GetFloat64(f.Name)
		case "queue":
			c.Queue, err = fs.GetString(f.Name)
		case "log-level":
			c.Logging.Level, err = fs.GetString(f.Name)
		case "log-pretty":
			c.Logging.Pretty, err = fs.GetBool(f.Name)
		case "metrics":
			c.Metrics, err = fs.GetBool(f.Name)
		case "top":
			c.Top, err = fs.GetInt(f.Name)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

var validate = validator.New()

// Validate checks field tags, finiteness of float settings and the arc bound
// n·(n−1).
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for name, v := range map[string]float64{
		"graph.max_potential":     c.Graph.MaxPotential,
		"graph.max_interest_rate": c.Graph.MaxInterestRate,
		"query.requested":         c.Query.Requested,
		"query.max_interest_rate": c.Query.MaxInterestRate,
	} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidConfig, name, v)
		}
	}
	if limit := c.Graph.Actors * (c.Graph.Actors - 1); c.Graph.Arcs > limit {
		return fmt.Errorf("%w: %d arcs exceed %d possible between %d actors",
			ErrInvalidConfig, c.Graph.Arcs, limit, c.Graph.Actors)
	}
	if c.Query.Sink >= c.Graph.Actors {
		return fmt.Errorf("%w: sink %d outside [0,%d)", ErrInvalidConfig, c.Query.Sink, c.Graph.Actors)
	}

	return nil
}
