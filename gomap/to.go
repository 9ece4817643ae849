package gomap

import (
	"bytes"
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/vdf-format/debug"
	"github.com/signadot/vdf-format/encode"
	"github.com/signadot/vdf-format/ir"
)

// ToVDF converts v to a VDF document named after the type of v, or the
// name given with WithName.
func ToVDF(v any, opts ...MapOption) ([]byte, error) {
	cfg := newMapConfig(opts...)
	name, err := docName(v, cfg)
	if err != nil {
		return nil, err
	}
	node, err := ToIR(v, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(ir.Doc(name, node), &buf, cfg.EncodeOptions...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func docName(v any, cfg *mapConfig) (string, error) {
	if cfg.name != "" {
		return cfg.name, nil
	}
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "", fmt.Errorf("%w: %v has no type name, use WithName", ErrNoName, t)
	}
	return t.Name(), nil
}

// ToIR converts v to a tree. A pointer v is dereferenced unless its type
// implements Marshaler.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	cfg := newMapConfig(opts...)
	val := reflect.ValueOf(v)
	if !val.IsValid() {
		return nil, &UnsupportedShapeError{Shape: "unit", Type: reflect.TypeOf(v)}
	}
	if val.Kind() == reflect.Pointer && !val.IsNil() && !hooked(val.Type(), false) {
		val = val.Elem()
	}
	m := &mapper{cfg: cfg}
	node, err := m.toIR(val, "", 0)
	if err != nil {
		if debug.Bridge() {
			debug.Logf("to ir %T: %v\n", v, err)
		}
		return nil, err
	}
	if debug.Bridge() {
		debug.Logf("to ir %T:\n%v\n", v, node)
	}
	return node, nil
}

type mapper struct {
	cfg *mapConfig
}

func joinPath(fieldPath, name string) string {
	if fieldPath == "" {
		return name
	}
	return fieldPath + "." + name
}

func (m *mapper) toIR(val reflect.Value, fieldPath string, depth int) (*ir.Node, error) {
	if depth > m.cfg.maxDepth {
		return nil, depthErr(fieldPath)
	}
	if val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil, &UnsupportedShapeError{FieldPath: fieldPath, Shape: "unit", Type: val.Type()}
		}
		val = val.Elem()
	}
	typ := val.Type()
	if hooked(typ, false) {
		return m.callMarshalVDF(val, fieldPath)
	}
	kind, shape := classify(typ)
	switch kind {
	case ScalarKind, UnitVariantKind:
		s, err := scalarText(val, fieldPath)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case RecordKind:
		return m.toRecord(val, fieldPath, depth)
	case MapKind:
		return m.toMap(val, fieldPath, depth)
	case NewtypeKind:
		fields, _ := structFields(typ)
		return m.toIR(val.FieldByIndex(fields[0].index), fieldPath, depth+1)
	default:
		return nil, &UnsupportedShapeError{FieldPath: fieldPath, Shape: shape, Type: typ}
	}
}

func (m *mapper) callMarshalVDF(val reflect.Value, fieldPath string) (*ir.Node, error) {
	hv, ok := hookValue(val, marshalerType)
	if !ok {
		return nil, &UnsupportedShapeError{FieldPath: fieldPath, Shape: "option", Type: val.Type()}
	}
	node, err := hv.(Marshaler).MarshalVDF()
	if err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	if node == nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%s.MarshalVDF returned no tree", val.Type())}
	}
	return node, nil
}

func (m *mapper) toRecord(val reflect.Value, fieldPath string, depth int) (*ir.Node, error) {
	fields, err := structFields(val.Type())
	if err != nil {
		return nil, err
	}
	res := ir.NewNode()
	for _, f := range fields {
		fp := joinPath(fieldPath, f.name)
		if !utf8.ValidString(f.name) {
			return nil, &UnsupportedShapeError{FieldPath: fp, Shape: "invalid utf8 string", Type: val.Type()}
		}
		child, err := m.toIR(val.FieldByIndex(f.index), fp, depth+1)
		if err != nil {
			return nil, err
		}
		res.Append(f.name, child)
	}
	return res, nil
}

func (m *mapper) toMap(val reflect.Value, fieldPath string, depth int) (*ir.Node, error) {
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key, err := scalarText(iter.Key(), fieldPath)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{key: key, val: iter.Value()})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})
	res := ir.NewNode()
	for _, e := range entries {
		child, err := m.toIR(e.val, joinPath(fieldPath, e.key), depth+1)
		if err != nil {
			return nil, err
		}
		res.Append(e.key, child)
	}
	return res, nil
}

// scalarText renders a scalar or enum value as leaf text, which must be
// valid UTF-8.
func scalarText(val reflect.Value, fieldPath string) (string, error) {
	text, err := rawScalarText(val, fieldPath)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(text) {
		return "", &UnsupportedShapeError{FieldPath: fieldPath, Shape: "invalid utf8 string", Type: val.Type()}
	}
	return text, nil
}

func rawScalarText(val reflect.Value, fieldPath string) (string, error) {
	typ := val.Type()
	if hv, ok := hookValue(val, enumType); ok {
		return enumText(val, hv.(Enum).Variants(), fieldPath)
	}
	if typ == charType {
		r := rune(val.Int())
		if !utf8.ValidRune(r) {
			return "", &UnsupportedShapeError{FieldPath: fieldPath, Shape: "invalid rune", Type: typ}
		}
		return string(r), nil
	}
	if hv, ok := hookValue(val, textMarshalerType); ok {
		text, err := hv.(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return string(text), nil
	}
	switch val.Kind() {
	case reflect.Bool:
		if val.Bool() {
			return "1", nil
		}
		return "0", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(val.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(val.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(val.Float(), 'f', -1, typ.Bits()), nil
	case reflect.String:
		return val.String(), nil
	}
	return "", &UnsupportedShapeError{FieldPath: fieldPath, Shape: "scalar without MarshalText", Type: typ}
}

func enumText(val reflect.Value, variants []string, fieldPath string) (string, error) {
	switch val.Kind() {
	case reflect.String:
		if s := val.String(); slices.Contains(variants, s) {
			return s, nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := val.Int(); i >= 0 && i < int64(len(variants)) {
			return variants[i], nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i := val.Uint(); i < uint64(len(variants)) {
			return variants[i], nil
		}
	}
	return "", &UnknownVariantError{
		FieldPath: fieldPath,
		Variant:   fmt.Sprint(reflectPrintable(val)),
		Variants:  variants,
	}
}

// reflectPrintable returns the underlying value of val for messages,
// without calling its methods.
func reflectPrintable(val reflect.Value) any {
	switch val.Kind() {
	case reflect.String:
		return val.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return val.Uint()
	}
	return val.Kind().String()
}
