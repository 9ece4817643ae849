package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []string
	Values []*Node

	String string
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = LeafType
	p.String = v
	return p
}

// NewNode returns an empty Node.
func NewNode() *Node {
	return &Node{Type: NodeType}
}

// Append adds an entry at the end of y and links v to y.
func (y *Node) Append(field string, v *Node) *Node {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = field
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
	return y
}

// Len returns the number of entries of y, 0 for a Leaf.
func (y *Node) Len() int {
	return len(y.Values)
}

// FromMap builds a Node from m with its keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := NewNode()
	res.Fields = make([]string, 0, len(m))
	res.Values = make([]*Node, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Append(key, m[key])
	}
	return res
}

// ToMap returns the entries of a Node as a map. When a key repeats, the
// last value wins.
func ToMap(node *Node) map[string]*Node {
	if node.Type != NodeType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := NewNode()
	for i := range kvs {
		res.Append(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// Get returns the value of the first entry of y with key field, or nil.
func Get(y *Node, field string) *Node {
	if y == nil {
		return nil
	}
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

// GetAll returns the values of every entry of y with key field, in order.
func (y *Node) GetAll(field string) []*Node {
	var res []*Node
	for i, f := range y.Fields {
		if f == field {
			res = append(res, y.Values[i])
		}
	}
	return res
}

// Doc wraps value as the single entry of a document named name.
func Doc(name string, value *Node) *Node {
	return NewNode().Append(name, value)
}

// Unwrap returns the name and value of the single outer entry of a
// document.
func (y *Node) Unwrap() (string, *Node, error) {
	if y == nil || y.Type != NodeType || len(y.Values) != 1 {
		return "", nil, ErrNotDoc
	}
	return y.Fields[0], y.Values[0], nil
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	if y.Type != NodeType {
		dst.Fields, dst.Values = nil, nil
		return dst
	}
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = y.Fields[i]
		dst.Values[i] = dstI
	}
	return dst
}

// Visit walks y depth first, calling f before (isPost false) and after
// (isPost true) the children. Children are visited only when the pre call
// returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) UnmarshalVDF(o *Node) error {
	o.CloneTo(y)
	y.Parent = nil
	y.ParentIndex = 0
	y.ParentField = ""
	return nil
}

func (y *Node) MarshalVDF() (*Node, error) {
	return y.Clone(), nil
}
