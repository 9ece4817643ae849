// Package encode renders trees as canonical VDF text.
//
// # Usage
//
//	doc := ir.Doc("Example", ir.NewNode().Append("thing", ir.FromString("hello")))
//	err := encode.Encode(doc, os.Stdout)
//
// produces
//
//	"Example"
//	{
//		"thing"	"hello"
//	}
//
// Keys and leaf values are always quoted, with backslash and double quote
// escaped. A leaf entry separates key and value with one tab. A node entry
// puts its key, its opening brace and its closing brace on lines of their
// own, indented by one tab per level, with its entries one level deeper.
// Top level entries are separated by a newline and the output does not end
// with one unless [TrailingNewline] is given.
//
// # Options
//
//   - [EncodeColors] colors keys, values and braces for terminals
//   - [EncodeFormat] writes YAML or JSON instead, see package convert
//   - [TrailingNewline] terminates the output with a newline
//
// # Related Packages
//
//   - github.com/signadot/vdf-format/ir - Tree representation
//   - github.com/signadot/vdf-format/parse - Parse text to trees
package encode
