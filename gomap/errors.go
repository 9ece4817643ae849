package gomap

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnsupportedShape = errors.New("unsupported shape")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrParseFailure     = errors.New("parse failure")
	ErrMissingField     = errors.New("missing field")
	ErrUnknownVariant   = errors.New("unknown variant")
	ErrDepth            = errors.New("nesting too deep")
	ErrName             = errors.New("document name mismatch")
	ErrNoName           = errors.New("no document name")
	ErrTarget           = errors.New("target must be a non-nil pointer")
)

func at(fieldPath string) string {
	if fieldPath == "" {
		return ""
	}
	return " at " + fieldPath
}

// UnsupportedShapeError reports a Go type outside the data model.
type UnsupportedShapeError struct {
	FieldPath string
	Shape     string
	Type      reflect.Type
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape %s (%s)%s", e.Shape, e.Type, at(e.FieldPath))
}

func (e *UnsupportedShapeError) Is(target error) bool {
	return target == ErrUnsupportedShape
}

// TypeMismatchError reports a Leaf where a Node is expected or the reverse.
type TypeMismatchError struct {
	FieldPath string
	Expected  string
	Actual    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch%s: expected %s, got %s", at(e.FieldPath), e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ScalarParseError reports leaf text that does not parse as the target
// scalar.
type ScalarParseError struct {
	FieldPath string
	Text      string
	Type      reflect.Type
	Err       error
}

func (e *ScalarParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %q as %s%s", e.Text, e.Type, at(e.FieldPath))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ScalarParseError) Unwrap() error {
	return e.Err
}

func (e *ScalarParseError) Is(target error) bool {
	return target == ErrParseFailure
}

// MissingFieldError reports a record field absent from a Node. FieldPath
// includes the field itself.
type MissingFieldError struct {
	FieldPath string
	Field     string
}

func (e *MissingFieldError) Error() string {
	if e.FieldPath == "" {
		return fmt.Sprintf("missing field %q", e.Field)
	}
	return fmt.Sprintf("missing field %s", e.FieldPath)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// UnknownVariantError reports text, or a Go value, that is not one of the
// variants of an enum.
type UnknownVariantError struct {
	FieldPath string
	Variant   string
	Variants  []string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q%s, expected one of %q", e.Variant, at(e.FieldPath), e.Variants)
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// MarshalError wraps an error returned by a MarshalVDF or MarshalText
// method.
type MarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError wraps an error returned by an UnmarshalVDF or
// UnmarshalText method.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

func depthErr(fieldPath string) error {
	return fmt.Errorf("%w%s", ErrDepth, at(fieldPath))
}
