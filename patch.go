package vdf

import (
	"cmp"
	"slices"

	"github.com/signadot/vdf-format/convert"
	"github.com/signadot/vdf-format/debug"
	"github.com/signadot/vdf-format/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to doc, addressed against the JSON
// form of doc (see package convert). Entries that survive the patch keep
// their order; new keys follow them.
func Patch(doc *ir.Node, jsonPatch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(jsonPatch)
	if err != nil {
		return nil, err
	}
	d, err := convert.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	jOut, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	res, err := convert.FromJSON(jOut)
	if err != nil {
		return nil, err
	}
	reorder(res, doc)
	if debug.Patch() {
		debug.Logf("patched:\n%v\n", res)
	}
	return res, nil
}

// reorder sorts the entries of res to follow the order of the same
// entries in orig, the n-th occurrence of a key in res standing for the
// n-th occurrence of that key in orig.
func reorder(res, orig *ir.Node) {
	if res.Type != ir.NodeType || orig == nil || orig.Type != ir.NodeType {
		return
	}
	type entry struct {
		field string
		val   *ir.Node
		rank  int
		match *ir.Node
	}
	seen := map[string]int{}
	entries := make([]entry, len(res.Fields))
	for i, field := range res.Fields {
		e := entry{field: field, val: res.Values[i], rank: len(orig.Fields)}
		if j := nthIndex(orig.Fields, field, seen[field]); j >= 0 {
			e.rank, e.match = j, orig.Values[j]
		}
		seen[field]++
		entries[i] = e
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.rank, b.rank)
	})
	res.Fields, res.Values = res.Fields[:0], res.Values[:0]
	for _, e := range entries {
		res.Append(e.field, e.val)
		reorder(e.val, e.match)
	}
}

// nthIndex returns the index of the n-th occurrence of field in fields, or
// -1.
func nthIndex(fields []string, field string, n int) int {
	for i, f := range fields {
		if f != field {
			continue
		}
		if n == 0 {
			return i
		}
		n--
	}
	return -1
}
