package gomap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/vdf-format/debug"
	"github.com/signadot/vdf-format/ir"
	"github.com/signadot/vdf-format/parse"
)

var (
	errBool = errors.New(`expected "0" or "1"`)
	errChar = errors.New("expected exactly one character")
)

// FromVDF parses a VDF document and converts its value into v, which must
// be a non-nil pointer. The outer name is checked only when ExpectName is
// given.
func FromVDF(d []byte, v any, opts ...MapOption) error {
	cfg := newMapConfig(opts...)
	doc, err := parse.Parse(d, cfg.ParseOptions...)
	if err != nil {
		return err
	}
	name, node, err := doc.Unwrap()
	if err != nil {
		return err
	}
	if cfg.expectName != "" && name != cfg.expectName {
		return fmt.Errorf("%w: expected %q, got %q", ErrName, cfg.expectName, name)
	}
	return FromIR(node, v, opts...)
}

// FromIR converts node into v, which must be a non-nil pointer. v is left
// untouched when conversion fails.
func FromIR(node *ir.Node, v any, opts ...MapOption) error {
	val := reflect.ValueOf(v)
	if !val.IsValid() || val.Kind() != reflect.Pointer || val.IsNil() {
		return fmt.Errorf("%w, got %T", ErrTarget, v)
	}
	if node == nil {
		return &TypeMismatchError{Expected: "tree", Actual: "nothing"}
	}
	target := val.Elem()
	fresh := reflect.New(target.Type()).Elem()
	m := &mapper{cfg: newMapConfig(opts...)}
	if err := m.fromIR(node, fresh, "", 0); err != nil {
		if debug.Bridge() {
			debug.Logf("from ir %T: %v\n", v, err)
		}
		return err
	}
	target.Set(fresh)
	return nil
}

func (m *mapper) fromIR(node *ir.Node, val reflect.Value, fieldPath string, depth int) error {
	if depth > m.cfg.maxDepth {
		return depthErr(fieldPath)
	}
	typ := val.Type()
	if hooked(typ, true) {
		return m.callUnmarshalVDF(node, val, fieldPath)
	}
	kind, shape := classify(typ)
	switch kind {
	case ScalarKind, UnitVariantKind:
		if node.Type != ir.LeafType {
			return &TypeMismatchError{FieldPath: fieldPath, Expected: "leaf", Actual: "node"}
		}
		return parseScalar(node.String, val, fieldPath)
	case RecordKind:
		if node.Type != ir.NodeType {
			return &TypeMismatchError{FieldPath: fieldPath, Expected: "node", Actual: "leaf"}
		}
		return m.fromRecord(node, val, fieldPath, depth)
	case MapKind:
		if node.Type != ir.NodeType {
			return &TypeMismatchError{FieldPath: fieldPath, Expected: "node", Actual: "leaf"}
		}
		return m.fromMap(node, val, fieldPath, depth)
	case NewtypeKind:
		fields, _ := structFields(typ)
		return m.fromIR(node, val.FieldByIndex(fields[0].index), fieldPath, depth+1)
	default:
		return &UnsupportedShapeError{FieldPath: fieldPath, Shape: shape, Type: typ}
	}
}

func (m *mapper) callUnmarshalVDF(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.Kind() == reflect.Pointer {
		val.Set(reflect.New(val.Type().Elem()))
	}
	hv, ok := hookValue(val, unmarshalerType)
	if !ok {
		return &UnsupportedShapeError{FieldPath: fieldPath, Shape: "option", Type: val.Type()}
	}
	if err := hv.(Unmarshaler).UnmarshalVDF(node); err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	return nil
}

func (m *mapper) fromRecord(node *ir.Node, val reflect.Value, fieldPath string, depth int) error {
	fields, err := structFields(val.Type())
	if err != nil {
		return err
	}
	for _, f := range fields {
		fp := joinPath(fieldPath, f.name)
		child := ir.Get(node, f.name)
		if child == nil {
			return &MissingFieldError{FieldPath: fp, Field: f.name}
		}
		if err := m.fromIR(child, val.FieldByIndex(f.index), fp, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// fromMap fills a new map from the entries of node. When a key repeats,
// the last entry wins.
func (m *mapper) fromMap(node *ir.Node, val reflect.Value, fieldPath string, depth int) error {
	typ := val.Type()
	res := reflect.MakeMapWithSize(typ, len(node.Fields))
	for i, field := range node.Fields {
		fp := joinPath(fieldPath, field)
		key := reflect.New(typ.Key()).Elem()
		if err := parseScalar(field, key, fp); err != nil {
			return err
		}
		elem := reflect.New(typ.Elem()).Elem()
		if err := m.fromIR(node.Values[i], elem, fp, depth+1); err != nil {
			return err
		}
		res.SetMapIndex(key, elem)
	}
	val.Set(res)
	return nil
}

// parseScalar sets val, which must be addressable, from leaf text.
func parseScalar(text string, val reflect.Value, fieldPath string) error {
	typ := val.Type()
	fail := func(err error) error {
		return &ScalarParseError{FieldPath: fieldPath, Text: text, Type: typ, Err: err}
	}
	if hv, ok := hookValue(val, enumType); ok {
		variants := hv.(Enum).Variants()
		i := slices.Index(variants, text)
		if i < 0 {
			return &UnknownVariantError{FieldPath: fieldPath, Variant: text, Variants: variants}
		}
		switch val.Kind() {
		case reflect.String:
			val.SetString(text)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if val.OverflowInt(int64(i)) {
				return fail(strconv.ErrRange)
			}
			val.SetInt(int64(i))
		default:
			if val.OverflowUint(uint64(i)) {
				return fail(strconv.ErrRange)
			}
			val.SetUint(uint64(i))
		}
		return nil
	}
	if typ == charType {
		r, size := utf8.DecodeRuneInString(text)
		if size == 0 || size != len(text) {
			return fail(errChar)
		}
		val.SetInt(int64(r))
		return nil
	}
	if hv, ok := hookValue(val, textUnmarshalerType); ok {
		if err := hv.(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			return fail(err)
		}
		return nil
	}
	switch val.Kind() {
	case reflect.Bool:
		switch text {
		case "1":
			val.SetBool(true)
		case "0":
			val.SetBool(false)
		default:
			return fail(errBool)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(text, 10, typ.Bits())
		if err != nil {
			return fail(errors.Unwrap(err))
		}
		val.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(text, 10, typ.Bits())
		if err != nil {
			return fail(errors.Unwrap(err))
		}
		val.SetUint(u)
	case reflect.Float32, reflect.Float64:
		if !decimalFloat(text) {
			return fail(strconv.ErrSyntax)
		}
		f, err := strconv.ParseFloat(text, typ.Bits())
		if err != nil {
			return fail(errors.Unwrap(err))
		}
		val.SetFloat(f)
	case reflect.String:
		val.SetString(text)
	default:
		return &UnsupportedShapeError{FieldPath: fieldPath, Shape: "scalar without UnmarshalText", Type: typ}
	}
	return nil
}

// decimalFloat reports whether text is a base-10 float, or one of the
// spellings FormatFloat uses for infinities and NaN.
func decimalFloat(text string) bool {
	switch text {
	case "+Inf", "-Inf", "NaN":
		return true
	}
	return text != "" && strings.Trim(text, "0123456789+-.eE") == ""
}
