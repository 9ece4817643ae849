// Package gomap converts between Go values and VDF trees.
//
// # Kinds
//
// Every Go type is classified into one [Kind] and both directions dispatch
// on it:
//
//   - ScalarKind: bool, integers, floats, string, [Char] and types
//     implementing encoding.TextMarshaler / encoding.TextUnmarshaler
//   - RecordKind: structs with at least one serializable field
//   - MapKind: maps whose keys are scalars or enums
//   - UnitVariantKind: types implementing [Enum]
//   - NewtypeKind: structs whose single field is tagged `vdf:",newtype"`
//   - UnsupportedKind: everything else (slices, arrays, pointers, ...)
//
// Types implementing [Marshaler] or [Unmarshaler] bypass classification
// and produce or consume a tree directly. *ir.Node is one of them.
//
// # Scalars
//
// Booleans are written "1" and "0" and only those are read back. Integers
// are written in base 10, floats in the shortest decimal form that reads
// back to the same value.
//
// # Struct Tags
//
//	type Example struct {
//	    Thing      string            // key "thing"
//	    Renamed    int    `vdf:"Count"`
//	    Internal   string `vdf:"-"`
//	}
//
// Without a tag, the key is the field name in snake case. Embedded structs
// without a tag have their fields promoted.
//
// # Documents
//
// [ToVDF] writes a value as a document named after its type, or after the
// name given with [WithName]. [FromVDF] reads one, checking its name when
// [ExpectName] is given.
//
// # Errors
//
// Failures are reported with [UnsupportedShapeError], [TypeMismatchError],
// [ScalarParseError], [MissingFieldError] and [UnknownVariantError], each
// carrying the path of the offending field. Nothing is written on failure:
// serialization produces no text and deserialization leaves the target
// untouched.
package gomap
