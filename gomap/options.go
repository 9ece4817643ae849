package gomap

import (
	"github.com/signadot/vdf-format/encode"
	"github.com/signadot/vdf-format/parse"
)

const DefaultMaxDepth = 512

// MapOption controls conversion in both directions.
type MapOption func(*mapConfig)

type mapConfig struct {
	name       string
	expectName string
	maxDepth   int

	EncodeOptions []encode.EncodeOption
	ParseOptions  []parse.ParseOption
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithName sets the outer name of documents written by ToVDF.
func WithName(name string) MapOption {
	return func(c *mapConfig) { c.name = name }
}

// ExpectName makes FromVDF fail unless the outer name of the document is
// name.
func ExpectName(name string) MapOption {
	return func(c *mapConfig) { c.expectName = name }
}

// MaxDepth bounds the nesting of records, maps and newtypes. Values below 1
// restore the default.
func MaxDepth(n int) MapOption {
	return func(c *mapConfig) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		c.maxDepth = n
	}
}

func EncodeOptions(opts ...encode.EncodeOption) MapOption {
	return func(c *mapConfig) {
		c.EncodeOptions = append(c.EncodeOptions, opts...)
	}
}

func ParseOptions(opts ...parse.ParseOption) MapOption {
	return func(c *mapConfig) {
		c.ParseOptions = append(c.ParseOptions, opts...)
	}
}

// ToEncodeOptions extracts EncodeOptions from a slice of MapOptions.
func ToEncodeOptions(opts ...MapOption) []encode.EncodeOption {
	return newMapConfig(opts...).EncodeOptions
}

// ToParseOptions extracts ParseOptions from a slice of MapOptions.
func ToParseOptions(opts ...MapOption) []parse.ParseOption {
	return newMapConfig(opts...).ParseOptions
}
