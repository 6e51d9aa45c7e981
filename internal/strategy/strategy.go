// Package strategy holds the default code templates for every value kind.
//
// Extraction templates read one value from the cursor named by ${cursor}.
// Scalar serialization templates write ${object}.${field} under the quoted
// key ${key}. Array serialization templates write one ${element}. Nested
// object templates call the generated unit named by ${unit}.
package strategy

import (
	"errors"
	"fmt"

	"github.com/parashar08/ig-json-parser/internal/model"
)

// ErrUnmapped is returned when a kind has no entry in a table. It signals that
// the descriptor model and the tables have drifted apart.
var ErrUnmapped = errors.New("no template for value kind")

const (
	Assign = "${object}.${field} = ${value}"

	NestedExtract        = "${unit}{}.ParseFromCursor(${cursor})"
	NestedSerialize      = "${unit}{}.SerializeToWriter(${writer}, ${object}.${field}, true)"
	NestedArraySerialize = "${unit}{}.SerializeToWriter(${writer}, ${element}, true)"
)

// ExactExtract reads a value only from the matching token. Primitive kinds fail
// the parse on a mismatch, nullable kinds are nil.
func ExactExtract(kind model.ValueKind) (string, error) {
	switch kind {
	case model.KindBoolean:
		return "${cursor}.Bool()", nil
	case model.KindBooleanNullable:
		return "jsonstream.PtrIf(${cursor}.Token() == jsonstream.True || ${cursor}.Token() == jsonstream.False, ${cursor}.ValueAsBool())", nil
	case model.KindInteger:
		return "${cursor}.Int()", nil
	case model.KindIntegerNullable:
		return "jsonstream.PtrIf(${cursor}.Token() == jsonstream.Int, ${cursor}.ValueAsInt())", nil
	case model.KindLong:
		return "${cursor}.Int64()", nil
	case model.KindLongNullable:
		return "jsonstream.PtrIf(${cursor}.Token() == jsonstream.Int, ${cursor}.ValueAsInt64())", nil
	case model.KindFloat:
		return "${cursor}.Float32()", nil
	case model.KindFloatNullable:
		return "jsonstream.PtrIf(${cursor}.Token() == jsonstream.Float || ${cursor}.Token() == jsonstream.Int, float32(${cursor}.ValueAsFloat64()))", nil
	case model.KindDouble:
		return "${cursor}.Float64()", nil
	case model.KindDoubleNullable:
		return "jsonstream.PtrIf(${cursor}.Token() == jsonstream.Float || ${cursor}.Token() == jsonstream.Int, ${cursor}.ValueAsFloat64())", nil
	case model.KindString:
		return "jsonstream.PtrIf(${cursor}.Token() == jsonstream.String, ${cursor}.Text())", nil
	}

	return "", unmapped("exact extract", kind)
}

// CoercedExtract converts whatever scalar the cursor holds. Nullable kinds are
// nil only for a null token.
func CoercedExtract(kind model.ValueKind) (string, error) {
	switch kind {
	case model.KindBoolean:
		return "${cursor}.ValueAsBool()", nil
	case model.KindBooleanNullable:
		return "jsonstream.PtrIf(${cursor}.Token() != jsonstream.Null, ${cursor}.ValueAsBool())", nil
	case model.KindInteger:
		return "${cursor}.ValueAsInt()", nil
	case model.KindIntegerNullable:
		return "jsonstream.PtrIf(${cursor}.Token() != jsonstream.Null, ${cursor}.ValueAsInt())", nil
	case model.KindLong:
		return "${cursor}.ValueAsInt64()", nil
	case model.KindLongNullable:
		return "jsonstream.PtrIf(${cursor}.Token() != jsonstream.Null, ${cursor}.ValueAsInt64())", nil
	case model.KindFloat:
		return "float32(${cursor}.ValueAsFloat64())", nil
	case model.KindFloatNullable:
		return "jsonstream.PtrIf(${cursor}.Token() != jsonstream.Null, float32(${cursor}.ValueAsFloat64()))", nil
	case model.KindDouble:
		return "${cursor}.ValueAsFloat64()", nil
	case model.KindDoubleNullable:
		return "jsonstream.PtrIf(${cursor}.Token() != jsonstream.Null, ${cursor}.ValueAsFloat64())", nil
	case model.KindString:
		return "jsonstream.PtrIf(${cursor}.Token() != jsonstream.Null, ${cursor}.Text())", nil
	}

	return "", unmapped("coerced extract", kind)
}

// Extract picks the extraction table for a mapping mode.
func Extract(mode model.MappingMode, kind model.ValueKind) (string, error) {
	switch mode {
	case model.MappingExact:
		return ExactExtract(kind)
	case model.MappingCoerced:
		return CoercedExtract(kind)
	}

	return "", fmt.Errorf("%w: unknown mapping mode %s", ErrUnmapped, mode)
}

func ScalarSerialize(kind model.ValueKind) (string, error) {
	switch kind {
	case model.KindBoolean:
		return "${writer}.WriteBoolField(${key}, ${object}.${field})", nil
	case model.KindBooleanNullable:
		return "${writer}.WriteBoolField(${key}, *${object}.${field})", nil
	case model.KindInteger:
		return "${writer}.WriteIntField(${key}, ${object}.${field})", nil
	case model.KindIntegerNullable:
		return "${writer}.WriteIntField(${key}, *${object}.${field})", nil
	case model.KindLong:
		return "${writer}.WriteInt64Field(${key}, ${object}.${field})", nil
	case model.KindLongNullable:
		return "${writer}.WriteInt64Field(${key}, *${object}.${field})", nil
	case model.KindFloat:
		return "${writer}.WriteFloat32Field(${key}, ${object}.${field})", nil
	case model.KindFloatNullable:
		return "${writer}.WriteFloat32Field(${key}, *${object}.${field})", nil
	case model.KindDouble:
		return "${writer}.WriteFloat64Field(${key}, ${object}.${field})", nil
	case model.KindDoubleNullable:
		return "${writer}.WriteFloat64Field(${key}, *${object}.${field})", nil
	case model.KindString:
		return "${writer}.WriteStringField(${key}, *${object}.${field})", nil
	}

	return "", unmapped("scalar serialize", kind)
}

func ArraySerialize(kind model.ValueKind) (string, error) {
	switch kind {
	case model.KindBoolean:
		return "${writer}.WriteBool(${element})", nil
	case model.KindBooleanNullable:
		return "${writer}.WriteBool(*${element})", nil
	case model.KindInteger:
		return "${writer}.WriteInt(${element})", nil
	case model.KindIntegerNullable:
		return "${writer}.WriteInt(*${element})", nil
	case model.KindLong:
		return "${writer}.WriteInt64(${element})", nil
	case model.KindLongNullable:
		return "${writer}.WriteInt64(*${element})", nil
	case model.KindFloat:
		return "${writer}.WriteFloat32(${element})", nil
	case model.KindFloatNullable:
		return "${writer}.WriteFloat32(*${element})", nil
	case model.KindDouble:
		return "${writer}.WriteFloat64(${element})", nil
	case model.KindDoubleNullable:
		return "${writer}.WriteFloat64(*${element})", nil
	case model.KindString:
		return "${writer}.WriteString(*${element})", nil
	}

	return "", unmapped("array serialize", kind)
}

// GoType returns the Go type holding one value of a kind. Nested objects are
// pointers to the nested type.
func GoType(kind model.ValueKind, nested *model.NestedRef) (string, error) {
	switch kind {
	case model.KindBoolean:
		return "bool", nil
	case model.KindBooleanNullable:
		return "*bool", nil
	case model.KindInteger:
		return "int", nil
	case model.KindIntegerNullable:
		return "*int", nil
	case model.KindLong:
		return "int64", nil
	case model.KindLongNullable:
		return "*int64", nil
	case model.KindFloat:
		return "float32", nil
	case model.KindFloatNullable:
		return "*float32", nil
	case model.KindDouble:
		return "float64", nil
	case model.KindDoubleNullable:
		return "*float64", nil
	case model.KindString:
		return "*string", nil
	case model.KindNestedObject:
		if nested == nil || nested.Type == "" {
			return "", fmt.Errorf("%w: nested object without a nested type", ErrUnmapped)
		}

		return "*" + nested.Type, nil
	}

	return "", unmapped("go type", kind)
}

func unmapped(table string, kind model.ValueKind) error {
	return fmt.Errorf("%w: %s has no entry for %s", ErrUnmapped, table, kind)
}
