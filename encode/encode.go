package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/vdf-format/convert"
	"github.com/signadot/vdf-format/format"
	"github.com/signadot/vdf-format/ir"
	"github.com/signadot/vdf-format/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth      int
	trailingNL bool

	format format.Format

	Color func(ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch es.format {
	case format.YAMLFormat, format.JSONFormat:
		return encodeInterchange(node, w, es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.trailingNL {
		return writeString(w, "\n")
	}
	return nil
}

func encodeInterchange(node *ir.Node, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.format.IsJSON() {
		d, err = convert.ToJSON(node)
	} else {
		d, err = convert.ToYAML(node)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.trailingNL && (len(d) == 0 || d[len(d)-1] != '\n') {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type == ir.LeafType {
		return writeString(w, leaf(node.String, es))
	}
	return encodeEntries(node, w, es)
}

// encodeEntries writes the entries of node at the current depth, one per
// line, without a newline after the last.
func encodeEntries(node *ir.Node, w io.Writer, es *EncState) error {
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := encodeEntry(f, node.Values[i], w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeEntry(field string, val *ir.Node, w io.Writer, es *EncState) error {
	indent := strings.Repeat("\t", es.depth)
	key := colored(es, FieldColor, token.Quote(field))
	if val.Type == ir.LeafType {
		return writeString(w, indent+key+"\t"+leaf(val.String, es))
	}
	if err := writeString(w, indent+key+"\n"+indent+colored(es, SepColor, "{")); err != nil {
		return err
	}
	if len(val.Fields) != 0 {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.depth++
		err := encodeEntries(val, w, es)
		es.depth--
		if err != nil {
			return err
		}
	}
	return writeString(w, "\n"+indent+colored(es, SepColor, "}"))
}

func leaf(v string, es *EncState) string {
	return colored(es, valueAttr(v), token.Quote(v))
}

func colored(es *EncState, a ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(a, v)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
