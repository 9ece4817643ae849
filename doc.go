// Package vdf reads and writes Valve KeyValues (VDF) text.
//
// A document is a quoted name followed by a brace delimited block of
// quoted key / value pairs, nested blocks indented by tabs:
//
//	"Example"
//	{
//		"thing"	"hello"
//		"more_stuff"
//		{
//			"coolness"	"420.1337"
//		}
//	}
//
// [Parse] and [Render] convert between text and trees ([ir.Node]);
// [ToText] and [FromText] convert between text and Go values, see package
// gomap for the mapping rules. [Diff], [Patch] and [Match] operate on
// trees.
//
// # Related Packages
//
//   - github.com/signadot/vdf-format/parse - Parsing with options
//   - github.com/signadot/vdf-format/encode - Rendering with options
//   - github.com/signadot/vdf-format/gomap - Go value conversion
//   - github.com/signadot/vdf-format/convert - YAML and JSON interchange
package vdf
