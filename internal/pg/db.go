package pg

import (
	"fmt"
	"slices"
)

// DB is the schema built up by applying migrations in order.
type DB struct {
	Tables       []*Table
	TablesByName map[TableName]*Table
}

func NewDB() *DB {
	return &DB{
		Tables:       make([]*Table, 0),
		TablesByName: make(map[TableName]*Table),
	}
}

func (db *DB) AddTable(table *Table) {
	db.TablesByName[*table.Name] = table
	db.Tables = append(db.Tables, table)
}

func (db *DB) RemoveTable(name TableName) error {
	for _, t := range db.Tables {
		if t.Inherits != nil && *t.Inherits == name {
			return fmt.Errorf(`table "%s" is inherited by "%s"`, name.String(), t.Name.String())
		}
	}

	delete(db.TablesByName, name)
	db.Tables = slices.DeleteFunc(db.Tables, func(t *Table) bool { return *t.Name == name })

	return nil
}

// RenameTable renames a table and repoints the tables inheriting from it.
func (db *DB) RenameTable(name TableName, newName TableName) {
	t := db.TablesByName[name]
	delete(db.TablesByName, name)

	t.Name = &newName
	db.TablesByName[newName] = t

	for _, child := range db.Tables {
		if child.Inherits != nil && *child.Inherits == name {
			child.Inherits = newName.Clone()
		}
	}
}

// Parent returns the table t inherits from, or nil.
func (db *DB) Parent(t *Table) *Table {
	if t.Inherits == nil {
		return nil
	}

	return db.TablesByName[*t.Inherits]
}
