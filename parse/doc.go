// Package parse provides VDF parsing support.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    // err is a *token.ParseError
//	}
//	name, value, err := node.Unwrap()
//
// Parse returns a Node holding the top level entries of the document: a
// well formed document has exactly one, its outer name. Keys and values may
// be quoted or bare; values may be blocks delimited by braces, nested to at
// most [MaxDepth] levels.
//
// # Options
//
//   - [ParsePositions] records the position of the key of each node
//   - [MaxDepth] bounds nesting
//   - [MultiRoot] accepts several top level entries
//
// # Related Packages
//
//   - github.com/signadot/vdf-format/token - Tokenization
//   - github.com/signadot/vdf-format/ir - Tree representation
//   - github.com/signadot/vdf-format/encode - Rendering trees back to text
package parse
