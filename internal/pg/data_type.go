package pg

import (
	"fmt"

	"github.com/parashar08/ig-json-parser/internal/model"
)

// dataTypeKinds maps the postgres types a column can be generated for to the
// kind of a NOT NULL column of that type. Types not listed are unsupported.
var dataTypeKinds = map[string]model.ValueKind{
	"bool":    model.KindBoolean,
	"boolean": model.KindBoolean,

	"smallint":    model.KindInteger,
	"int2":        model.KindInteger,
	"int":         model.KindInteger,
	"integer":     model.KindInteger,
	"int4":        model.KindInteger,
	"smallserial": model.KindInteger,
	"serial2":     model.KindInteger,
	"serial":      model.KindInteger,
	"serial4":     model.KindInteger,

	"bigint":    model.KindLong,
	"int8":      model.KindLong,
	"bigserial": model.KindLong,
	"serial8":   model.KindLong,

	"real":   model.KindFloat,
	"float4": model.KindFloat,

	"double precision": model.KindDouble,
	"float8":           model.KindDouble,
	"numeric":          model.KindDouble,
	"decimal":          model.KindDouble,

	"text":                        model.KindString,
	"varchar":                     model.KindString,
	"char":                        model.KindString,
	"bpchar":                      model.KindString,
	"character":                   model.KindString,
	"character varying":           model.KindString,
	"citext":                      model.KindString,
	"uuid":                        model.KindString,
	"date":                        model.KindString,
	"time":                        model.KindString,
	"time without time zone":      model.KindString,
	"time with time zone":         model.KindString,
	"timetz":                      model.KindString,
	"timestamp":                   model.KindString,
	"timestamp without time zone": model.KindString,
	"timestamp with time zone":    model.KindString,
	"timestamptz":                 model.KindString,
	"interval":                    model.KindString,
}

// DataType represents a postgres data type.
type DataType struct {
	Name    string
	Schema  *string
	NotNull bool

	// Array is true if the type is a postgres array. For example `INT[]`
	// would produce a DataType `{ Name: "int4", Array: true }`.
	Array bool
}

// Kind returns the kind of one value of the type. Array elements may be null
// in postgres, so they always get the nullable kind.
func (d *DataType) Kind() (model.ValueKind, error) {
	kind, ok := dataTypeKinds[d.Name]
	if !ok {
		return 0, fmt.Errorf(`unsupported data type "%s"`, d.String())
	}

	if d.Array || !d.NotNull {
		return kind.NullableOf(), nil
	}

	return kind, nil
}

func (d *DataType) Clone() DataType {
	return DataType{
		Name:    d.Name,
		NotNull: d.NotNull,
		Array:   d.Array,
		Schema:  d.Schema,
	}
}

func (d *DataType) writeString(s *stringBuilder) {
	if d.Schema != nil {
		s.write(*d.Schema)
		s.writeByte('.')
	}

	s.write(d.Name)

	if d.Array {
		s.write("[]")
	}

	if d.NotNull {
		s.write(" not null")
	}
}

func (d *DataType) String() string {
	var s stringBuilder
	d.writeString(&s)
	return s.String()
}
