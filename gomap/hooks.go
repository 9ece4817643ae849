package gomap

import (
	"encoding"
	"reflect"

	"github.com/signadot/vdf-format/ir"
)

// Marshaler is implemented by types that build their own tree.
type Marshaler interface {
	MarshalVDF() (*ir.Node, error)
}

// Unmarshaler is implemented by types that read their own tree.
type Unmarshaler interface {
	UnmarshalVDF(*ir.Node) error
}

// Enum is implemented by unit-like enumerations. The value of an integer
// kinded enum is the index of its variant; the value of a string kinded
// enum is the variant name itself.
type Enum interface {
	Variants() []string
}

// Char is a single character, written as a one character string.
type Char rune

var (
	marshalerType       = reflect.TypeFor[Marshaler]()
	unmarshalerType     = reflect.TypeFor[Unmarshaler]()
	enumType            = reflect.TypeFor[Enum]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	charType            = reflect.TypeFor[Char]()
)

// implements reports whether t or *t implements iface.
func implements(t, iface reflect.Type) bool {
	return t.Implements(iface) || (t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(iface))
}

// hookValue returns val, or its address, as an interface value of a type
// implementing iface. It allocates a copy when val is not addressable.
func hookValue(val reflect.Value, iface reflect.Type) (any, bool) {
	if val.Type().Implements(iface) {
		if val.Kind() == reflect.Pointer && val.IsNil() {
			return nil, false
		}
		return val.Interface(), true
	}
	if val.Kind() == reflect.Pointer || !reflect.PointerTo(val.Type()).Implements(iface) {
		return nil, false
	}
	if val.CanAddr() {
		return val.Addr().Interface(), true
	}
	cp := reflect.New(val.Type())
	cp.Elem().Set(val)
	return cp.Interface(), true
}
