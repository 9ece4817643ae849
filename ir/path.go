package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the path of y from the root of its tree, "$" for the root.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	return y.Parent.Path() + "." + pathString(y.ParentField)
}

// FieldPath returns the path of y without the leading "$.", or "" at the
// root.
func (y *Node) FieldPath() string {
	p := y.Path()
	if p == "$" {
		return ""
	}
	return p[2:]
}

type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		switch {
		case x.Subtree:
			buf.WriteByte('.')
			if x.Next == nil || x.Next.Field == nil {
				buf.WriteByte('.')
			}
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			buf.WriteString("." + pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrBadPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if rest != "" && rest[0] != '.' && rest[0] != '[' {
				rest = "." + rest
			}
			next := &Path{}
			if err := parseFrag(rest, next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns a clone of the first node matching yPath, or nil when
// there is none.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrBadPath)
		}
		if yp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrBadPath)
		}
		if yp.Index != nil {
			if res.Type != NodeType {
				return nil, fmt.Errorf("expected node at %s, got %s", res.Path(), res.Type)
			}
			index := *yp.Index
			if index >= len(res.Values) {
				return nil, nil
			}
			res = res.Values[index]
			yp = yp.Next
			continue
		}
		if yp.Field != nil {
			if res.Type != NodeType {
				return nil, fmt.Errorf("expected node at %s, got %s", res.Path(), res.Type)
			}
			res = Get(res, *yp.Field)
			if res == nil {
				return nil, nil
			}
		}
		yp = yp.Next
	}
	return res.Clone(), nil
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// ListPath appends to dst a clone of every node matching yPath. Repeated
// keys all match.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp)
}

func (y *Node) listPath(dst []*Node, yp *Path) ([]*Node, error) {
	if yp == nil {
		return append(dst, y.Clone()), nil
	}
	var err error
	if yp.Subtree {
		if err := y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst, err = node.listPath(dst, yp.Next)
			if err != nil {
				return false, err
			}
			return node.Type == NodeType, nil
		}); err != nil {
			return nil, err
		}
		return dst, nil
	}
	if yp.Field == nil && yp.Index == nil && !yp.IndexAll {
		if yp.Next == nil {
			return append(dst, y.Clone()), nil
		}
		return y.listPath(dst, yp.Next)
	}
	if y.Type != NodeType {
		return dst, nil
	}
	for i := range y.Values {
		switch {
		case yp.Field != nil && y.Fields[i] != *yp.Field:
			continue
		case yp.Index != nil && i != *yp.Index:
			continue
		}
		dst, err = y.Values[i].listPath(dst, yp.Next)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}
