package pg

import (
	"fmt"

	"github.com/parashar08/ig-json-parser/internal/model"
	"github.com/parashar08/ig-json-parser/internal/names"
)

// Types returns one type descriptor per table, in creation order. A table
// created with `INHERITS (parent)` gets the parent table's type as its parent.
func Types(db *DB, mapping model.MappingMode) ([]model.Type, error) {
	types := make([]model.Type, 0, len(db.Tables))

	for _, table := range db.Tables {
		t, err := tableType(db, table, mapping)
		if err != nil {
			return nil, fmt.Errorf(`in table "%s": %w`, table.Name.String(), err)
		}

		types = append(types, *t)
	}

	return types, nil
}

// TypeName returns the Go type name generated for a table.
func TypeName(name TableName) string {
	return names.Go(name.Name)
}

func tableType(db *DB, table *Table, mapping model.MappingMode) (*model.Type, error) {
	owner := TypeName(*table.Name)

	t := &model.Type{
		Owner:  owner,
		Unit:   model.UnitName(owner),
		Fields: make([]model.Field, 0, len(table.Columns)),
	}

	if parent := db.Parent(table); parent != nil {
		parentOwner := TypeName(*parent.Name)

		t.Parent = &model.ParentRef{
			Unit:     model.UnitName(parentOwner),
			Embedded: parentOwner,
		}
	}

	for _, c := range table.Columns {
		kind, err := c.Type.Kind()
		if err != nil {
			return nil, fmt.Errorf(`column "%s": %w`, c.Name, err)
		}

		f := model.Field{
			FieldName: names.Go(c.Name),
			WireKey:   c.Name,
			Kind:      kind,
			Mapping:   mapping,
		}

		if c.Type.Array {
			f.Container = model.ContainerList
		}

		t.Fields = append(t.Fields, f)
	}

	return t, nil
}
