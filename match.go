package vdf

import (
	"github.com/signadot/vdf-format/debug"
	"github.com/signadot/vdf-format/ir"
)

type MatchConfig struct {
	Wildcard string
}

type MatchOpt func(*MatchConfig)

// MatchWildcard sets the leaf text that matches any value, "*" by default.
// An empty wildcard disables wildcard matching.
func MatchWildcard(w string) MatchOpt {
	return func(c *MatchConfig) { c.Wildcard = w }
}

// Match reports whether doc has every entry of pattern. A pattern leaf
// matches an equal leaf, or anything when it is the wildcard. A pattern
// node matches a node in which each of its entries matches some entry with
// the same key; other entries of doc are ignored.
func Match(doc, pattern *ir.Node, opts ...MatchOpt) bool {
	cfg := &MatchConfig{Wildcard: "*"}
	for _, opt := range opts {
		opt(cfg)
	}
	return match(doc, pattern, cfg)
}

func match(doc, pattern *ir.Node, cfg *MatchConfig) bool {
	if debug.Match() {
		debug.Logf("match %s at %s\n", pattern.Type, pattern.Path())
	}
	if pattern.Type == ir.LeafType {
		if cfg.Wildcard != "" && pattern.String == cfg.Wildcard {
			return true
		}
		return doc.Type == ir.LeafType && doc.String == pattern.String
	}
	if doc.Type != ir.NodeType {
		return false
	}
	for i, field := range pattern.Fields {
		found := false
		for _, dv := range doc.GetAll(field) {
			if match(dv, pattern.Values[i], cfg) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc restricted to the keys present in pattern,
// recursively.
func Trim(pattern, doc *ir.Node) *ir.Node {
	if pattern.Type != ir.NodeType || doc.Type != ir.NodeType {
		return doc.Clone()
	}
	res := ir.NewNode()
	for i, field := range doc.Fields {
		pv := ir.Get(pattern, field)
		if pv == nil {
			continue
		}
		res.Append(field, Trim(pv, doc.Values[i]))
	}
	return res
}
