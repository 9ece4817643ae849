package convert

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/signadot/vdf-format/ir"
)

var (
	ErrNull        = errors.New("null has no VDF representation")
	ErrNestedSeq   = errors.New("sequence of sequences has no VDF representation")
	ErrUnkeyedSeq  = errors.New("sequence outside of a mapping has no VDF representation")
	ErrUnsupported = errors.New("unsupported value")
)

// ToOrdered returns n as a yaml.MapSlice tree, or a string for a leaf.
func ToOrdered(n *ir.Node) any {
	if n.Type == ir.LeafType {
		return n.String
	}
	res := make(yaml.MapSlice, 0, len(n.Fields))
	at := make(map[string]int, len(n.Fields))
	for i, f := range n.Fields {
		v := ToOrdered(n.Values[i])
		j, ok := at[f]
		if !ok {
			at[f] = len(res)
			res = append(res, yaml.MapItem{Key: f, Value: v})
			continue
		}
		if seq, ok := res[j].Value.(group); ok {
			res[j].Value = append(seq, v)
			continue
		}
		res[j].Value = group{res[j].Value, v}
	}
	for i := range res {
		if g, ok := res[i].Value.(group); ok {
			res[i].Value = []any(g)
		}
	}
	return res
}

// group collects the values of a repeated key while building.
type group []any

// ToAny returns n as plain Go values: a string for a leaf, a
// map[string]any for a node. Repeated keys map to a []any.
func ToAny(n *ir.Node) any {
	if n.Type == ir.LeafType {
		return n.String
	}
	res := make(map[string]any, len(n.Fields))
	for i, f := range n.Fields {
		v := ToAny(n.Values[i])
		prev, ok := res[f]
		if !ok {
			res[f] = v
			continue
		}
		if seq, ok := prev.(group); ok {
			res[f] = append(seq, v)
			continue
		}
		res[f] = group{prev, v}
	}
	for k, v := range res {
		if g, ok := v.(group); ok {
			res[k] = []any(g)
		}
	}
	return res
}

// FromAny builds a tree from values as produced by a YAML or JSON decoder.
// map[string]any keys are taken in sorted order.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.NewNode()
		for _, item := range x {
			if err := appendItem(res, fmt.Sprint(item.Key), item.Value); err != nil {
				return nil, err
			}
		}
		return res, nil
	case map[string]any:
		res := ir.NewNode()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if err := appendItem(res, k, x[k]); err != nil {
				return nil, err
			}
		}
		return res, nil
	case []any:
		return nil, ErrUnkeyedSeq
	}
	s, err := scalar(v)
	if err != nil {
		return nil, err
	}
	return ir.FromString(s), nil
}

func appendItem(dst *ir.Node, key string, v any) error {
	seq, ok := v.([]any)
	if !ok {
		val, err := FromAny(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		dst.Append(key, val)
		return nil
	}
	for i, elt := range seq {
		if _, ok := elt.([]any); ok {
			return fmt.Errorf("%s[%d]: %w", key, i, ErrNestedSeq)
		}
		val, err := FromAny(elt)
		if err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		dst.Append(key, val)
	}
	return nil
}

func scalar(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", ErrNull
	case string:
		return x, nil
	case bool:
		if x {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w %T", ErrUnsupported, v)
	}
}

func ToYAML(n *ir.Node) ([]byte, error) {
	return yaml.Marshal(ToOrdered(n))
}

func ToJSON(n *ir.Node) ([]byte, error) {
	return yaml.MarshalWithOptions(ToOrdered(n), yaml.JSON())
}

func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// FromJSON reads JSON, which goccy/go-yaml accepts as a YAML subset.
func FromJSON(d []byte) (*ir.Node, error) {
	return FromYAML(d)
}
