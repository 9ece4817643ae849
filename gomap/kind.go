package gomap

import (
	"fmt"
	"reflect"
)

// Kind is the shape a Go type takes in a tree.
type Kind int

const (
	UnsupportedKind Kind = iota
	ScalarKind
	RecordKind
	MapKind
	UnitVariantKind
	NewtypeKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		UnsupportedKind: "unsupported",
		ScalarKind:      "scalar",
		RecordKind:      "record",
		MapKind:         "map",
		UnitVariantKind: "unit variant",
		NewtypeKind:     "newtype",
	}[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

// Kinder is implemented by types that declare their kind instead of having
// it inferred. The declared kind must fit the Go type: RecordKind and
// NewtypeKind need a struct, MapKind a map, UnitVariantKind an Enum and
// ScalarKind a basic or text marshaling type. Declaring UnsupportedKind
// always succeeds and keeps the type out of trees.
//
// NewtypeKind may be declared by a struct with one serializable field
// instead of tagging that field.
type Kinder interface {
	VDFKind() Kind
}

var kinderType = reflect.TypeFor[Kinder]()

// KindOf classifies t. Types implementing Marshaler or Unmarshaler are
// converted by their methods whatever their kind.
func KindOf(t reflect.Type) Kind {
	k, _ := classify(t)
	return k
}

// classify returns the kind of t and, for UnsupportedKind, the name of the
// offending shape.
func classify(t reflect.Type) (Kind, string) {
	inferred, shape := infer(t)
	if t.Kind() == reflect.Interface || !implements(t, kinderType) {
		return inferred, shape
	}
	declared := reflect.Zero(t).Interface()
	if t.Kind() != reflect.Pointer && !t.Implements(kinderType) {
		declared = reflect.New(t).Interface()
	}
	k := declared.(Kinder).VDFKind()
	switch {
	case k == UnsupportedKind:
		return UnsupportedKind, "declared unsupported"
	case k == inferred:
		return k, ""
	case k == NewtypeKind && inferred == RecordKind:
		fields, _ := structFields(t)
		if len(fields) == 1 {
			return NewtypeKind, ""
		}
	}
	return UnsupportedKind, fmt.Sprintf("declared %s", k)
}

func infer(t reflect.Type) (Kind, string) {
	if implements(t, enumType) {
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.String:
			return UnitVariantKind, ""
		}
		return UnsupportedKind, "enum variant with data"
	}
	if t == charType {
		return ScalarKind, ""
	}
	if t.Kind() != reflect.Pointer && (implements(t, textMarshalerType) || implements(t, textUnmarshalerType)) {
		return ScalarKind, ""
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return ScalarKind, ""
	case reflect.Uintptr:
		return UnsupportedKind, "uintptr"
	case reflect.Complex64, reflect.Complex128:
		return UnsupportedKind, "complex"
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return UnsupportedKind, "byte array"
		}
		return UnsupportedKind, "seq"
	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return UnsupportedKind, "byte array"
		}
		return UnsupportedKind, "tuple"
	case reflect.Pointer:
		return UnsupportedKind, "option"
	case reflect.Interface:
		return UnsupportedKind, "interface"
	case reflect.Chan:
		return UnsupportedKind, "chan"
	case reflect.Func:
		return UnsupportedKind, "func"
	case reflect.UnsafePointer:
		return UnsupportedKind, "unsafe pointer"
	case reflect.Map:
		switch k, _ := classify(t.Key()); k {
		case ScalarKind, UnitVariantKind:
			return MapKind, ""
		}
		return UnsupportedKind, "map key " + t.Key().String()
	case reflect.Struct:
		fields, err := structFields(t)
		if err != nil {
			return UnsupportedKind, err.Error()
		}
		switch {
		case len(fields) == 0:
			return UnsupportedKind, "unit_struct"
		case fields[0].newtype:
			return NewtypeKind, ""
		}
		return RecordKind, ""
	}
	return UnsupportedKind, t.Kind().String()
}

// hooked reports whether t converts itself to a tree, or from one when
// decoding.
func hooked(t reflect.Type, decoding bool) bool {
	if decoding {
		return implements(t, unmarshalerType)
	}
	return implements(t, marshalerType)
}
