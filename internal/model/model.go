package model

import (
	"errors"
	"fmt"
)

// UnitSuffix is appended to an owner type name to form its generated unit name.
const UnitSuffix = "JSON"

// PostprocessMethod is the method a type implements to transform itself after parsing.
const PostprocessMethod = "PostProcess"

// ErrInvalid is wrapped by every descriptor validation failure.
var ErrInvalid = errors.New("invalid type descriptor")

type ValueKind int

const (
	KindBoolean ValueKind = iota + 1
	KindBooleanNullable
	KindInteger
	KindIntegerNullable
	KindLong
	KindLongNullable
	KindFloat
	KindFloatNullable
	KindDouble
	KindDoubleNullable
	KindString
	KindNestedObject
)

// ValueKinds lists every kind in declaration order.
var ValueKinds = []ValueKind{
	KindBoolean,
	KindBooleanNullable,
	KindInteger,
	KindIntegerNullable,
	KindLong,
	KindLongNullable,
	KindFloat,
	KindFloatNullable,
	KindDouble,
	KindDoubleNullable,
	KindString,
	KindNestedObject,
}

var kindNames = map[ValueKind]string{
	KindBoolean:         "boolean",
	KindBooleanNullable: "boolean-nullable",
	KindInteger:         "integer",
	KindIntegerNullable: "integer-nullable",
	KindLong:            "long",
	KindLongNullable:    "long-nullable",
	KindFloat:           "float",
	KindFloatNullable:   "float-nullable",
	KindDouble:          "double",
	KindDoubleNullable:  "double-nullable",
	KindString:          "string",
	KindNestedObject:    "nested-object",
}

func (k ValueKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ValueKind(%d)", int(k))
}

func (k ValueKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Nullable reports whether values of the kind admit an explicit absent value.
func (k ValueKind) Nullable() bool {
	switch k {
	case KindBoolean, KindInteger, KindLong, KindFloat, KindDouble:
		return false
	}

	return true
}

// NullableOf returns the nullable counterpart of a primitive kind. Other kinds
// are returned unchanged.
func (k ValueKind) NullableOf() ValueKind {
	switch k {
	case KindBoolean:
		return KindBooleanNullable
	case KindInteger:
		return KindIntegerNullable
	case KindLong:
		return KindLongNullable
	case KindFloat:
		return KindFloatNullable
	case KindDouble:
		return KindDoubleNullable
	}

	return k
}

func ParseValueKind(s string) (ValueKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf(`unknown value kind "%s"`, s)
}

type ContainerKind int

const (
	ContainerNone ContainerKind = iota
	ContainerList
	ContainerQueue
)

func (c ContainerKind) String() string {
	switch c {
	case ContainerNone:
		return "none"
	case ContainerList:
		return "list"
	case ContainerQueue:
		return "queue"
	}

	return fmt.Sprintf("ContainerKind(%d)", int(c))
}

type MappingMode int

const (
	MappingCoerced MappingMode = iota
	MappingExact
)

func (m MappingMode) String() string {
	switch m {
	case MappingCoerced:
		return "coerced"
	case MappingExact:
		return "exact"
	}

	return fmt.Sprintf("MappingMode(%d)", int(m))
}

func ParseMappingMode(s string) (MappingMode, error) {
	switch s {
	case "", "coerced":
		return MappingCoerced, nil
	case "exact":
		return MappingExact, nil
	}

	return 0, fmt.Errorf(`unknown mapping mode "%s"`, s)
}

// NestedRef points at the generated unit of a nested user type.
type NestedRef struct {
	Unit string
	Type string
}

// ParentRef points at the generated unit of the declared supertype. Embedded
// is the selector of the embedded parent struct inside the owner struct.
type ParentRef struct {
	Unit     string
	Embedded string
}

// Field describes one field of a user type. The template overrides are empty
// unless the field author replaced the default code for that site.
type Field struct {
	FieldName string
	WireKey   string
	Kind      ValueKind
	Container ContainerKind
	Mapping   MappingMode
	Nested    *NestedRef

	AssignTemplate    string
	ExtractTemplate   string
	SerializeTemplate string
}

func (f *Field) IsCollection() bool {
	return f.Container != ContainerNone
}

// Type describes one user type and its place in the inheritance chain.
type Type struct {
	Owner       string
	Unit        string
	Abstract    bool
	Postprocess bool
	Parent      *ParentRef
	Fields      []Field
}

// UnitName returns the generated unit name for an owner type name.
func UnitName(owner string) string {
	return owner + UnitSuffix
}

// Validate checks the preconditions the code emitter relies on.
func (t *Type) Validate() error {
	if t.Owner == "" {
		return fmt.Errorf("%w: empty owner name", ErrInvalid)
	}

	if t.Unit == "" {
		return fmt.Errorf(`%w: empty unit name for "%s"`, ErrInvalid, t.Owner)
	}

	if t.Parent != nil && (t.Parent.Unit == "" || t.Parent.Embedded == "") {
		return fmt.Errorf(`%w: incomplete parent reference in "%s"`, ErrInvalid, t.Owner)
	}

	keys := make(map[string]string, len(t.Fields))
	for _, f := range t.Fields {
		if f.FieldName == "" {
			return fmt.Errorf(`%w: field with wire key "%s" in "%s" has no name`, ErrInvalid, f.WireKey, t.Owner)
		}

		if !f.Kind.Valid() {
			return fmt.Errorf(`%w: field "%s" in "%s" has unknown kind %s`, ErrInvalid, f.FieldName, t.Owner, f.Kind)
		}

		switch f.Container {
		case ContainerNone, ContainerList, ContainerQueue:
		default:
			return fmt.Errorf(`%w: field "%s" in "%s" has unknown container %s`, ErrInvalid, f.FieldName, t.Owner, f.Container)
		}

		switch f.Mapping {
		case MappingCoerced, MappingExact:
		default:
			return fmt.Errorf(`%w: field "%s" in "%s" has unknown mapping %s`, ErrInvalid, f.FieldName, t.Owner, f.Mapping)
		}

		if f.Kind == KindNestedObject && (f.Nested == nil || f.Nested.Unit == "" || f.Nested.Type == "") {
			return fmt.Errorf(`%w: nested field "%s" in "%s" has no nested type`, ErrInvalid, f.FieldName, t.Owner)
		}

		if other, ok := keys[f.WireKey]; ok {
			return fmt.Errorf(`%w: fields "%s" and "%s" in "%s" share wire key "%s"`, ErrInvalid, other, f.FieldName, t.Owner, f.WireKey)
		}

		keys[f.WireKey] = f.FieldName
	}

	return nil
}
