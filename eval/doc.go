// Package eval evaluates expr-lang expressions against a VDF tree.
//
// The tree is available to expressions as doc, with nodes as maps and
// leaves as strings; repeated keys become lists. The following functions
// are available:
//
//   - getpath(path) returns the first node at path, or nil
//   - listpath(path) returns every node at path
//   - has(path) reports whether path exists
//   - num(s) parses a leaf as a number
//   - getenv(name) reads an environment variable
//
// For example
//
//	num(doc.Example.more_stuff.coolness) > 400 && has("$.Example.thing")
package eval
