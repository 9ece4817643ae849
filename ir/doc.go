// Package ir provides the intermediate tree for VDF documents.
//
// # Overview
//
// Every VDF document, whether parsed from text or produced from a Go value,
// is represented as an ir.Node tree. The tree carries no position
// information; positions are recorded on demand by the parser.
//
// # Node Types
//
//   - LeafType: a terminal string, held in String
//   - NodeType: an ordered list of key/value entries
//
// # Entries
//
// For NodeType nodes, Fields[i] is the key of Values[i]. Keys need not be
// unique and their order is significant: a document with repeated keys is
// represented with one entry per occurrence, in input order.
//
//	n := ir.NewNode()
//	n.Append("name", ir.FromString("x"))
//	n.Append("item", ir.FromString("a"))
//	n.Append("item", ir.FromString("b"))
//	ir.Get(n, "item").String // "a"
//	len(n.GetAll("item"))    // 2
//
// # Documents
//
// A complete document is a Node with a single entry, the outer name.
// [Doc] builds one and [Node.Unwrap] takes one apart.
//
// # Paths
//
// Path returns a "$.a.b" style path for a node; fields containing special
// characters are single quoted. GetPath returns the first node matching a
// path and ListPath every node, so repeated keys are all reachable.
// An index "[i]" selects the i-th entry of a Node regardless of key.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Clone a tree to hand it to
// another goroutine.
//
// # Related Packages
//
//   - github.com/signadot/vdf-format/parse - Parses text into trees
//   - github.com/signadot/vdf-format/encode - Renders trees as text
//   - github.com/signadot/vdf-format/gomap - Converts trees to and from Go values
package ir
