package gomap

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
)

type fieldInfo struct {
	name    string
	index   []int
	newtype bool
}

// structFields lists the serializable fields of struct type t in
// declaration order, with embedded untagged structs flattened.
func structFields(t reflect.Type) ([]fieldInfo, error) {
	var res []fieldInfo
	for i := range t.NumField() {
		f := t.Field(i)
		name, opts := parseTag(f.Tag.Get("vdf"))
		if name == "-" && opts == "" {
			continue
		}
		if f.Anonymous && name == "" && f.IsExported() {
			ft := f.Type
			if ft.Kind() == reflect.Struct && !implements(ft, marshalerType) {
				sub, err := structFields(ft)
				if err != nil {
					return nil, err
				}
				for _, sf := range sub {
					sf.index = append([]int{i}, sf.index...)
					res = append(res, sf)
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = toSnakeCase(f.Name)
		}
		res = append(res, fieldInfo{
			name:    name,
			index:   []int{i},
			newtype: hasOpt(opts, "newtype"),
		})
	}
	for _, f := range res {
		if f.newtype && len(res) != 1 {
			return nil, errors.New("newtype with more than one field")
		}
	}
	return res, nil
}

func parseTag(tag string) (string, string) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, opts
}

func hasOpt(opts, opt string) bool {
	for o := range strings.SplitSeq(opts, ",") {
		if strings.TrimSpace(o) == opt {
			return true
		}
	}
	return false
}

// toSnakeCase turns a Go field name into a lower case key: MoreStuff
// becomes more_stuff and HTTPPort http_port.
func toSnakeCase(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
