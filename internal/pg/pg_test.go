package pg

import (
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	assert "github.com/stretchr/testify/require"

	"github.com/parashar08/ig-json-parser/internal/model"
)

func migrateTestdata(t *testing.T) *DB {
	t.Helper()

	files, err := filepath.Glob("testdata/migrations/*.sql")
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	db := NewDB()
	for _, f := range files {
		assert.NoError(t, MigrateFile(db, f))
	}

	return db
}

func TestMigrateFiles(t *testing.T) {
	db := migrateTestdata(t)

	assert.Len(t, db.Tables, 2)
	assert.Nil(t, db.TablesByName[NewTableName("animals")])
	assert.Nil(t, db.TablesByName[NewTableName("scratch")])

	pets := db.TablesByName[NewTableName("pets")]
	assert.NotNil(t, pets)
	assert.Equal(t, []string{"id", "name", "legs", "weight"}, columnNames(pets))
	assert.True(t, pets.ColumnsByName["id"].Type.NotNull)
	assert.True(t, pets.ColumnsByName["name"].Type.NotNull)
	assert.Equal(t, "float4", pets.ColumnsByName["weight"].Type.Name)

	dogs := db.TablesByName[NewTableName("dogs")]
	assert.NotNil(t, dogs)
	assert.Equal(t, []string{"breed", "is_good", "tricks"}, columnNames(dogs))
	assert.Equal(t, &TableName{Name: "pets"}, dogs.Inherits)
	assert.Same(t, pets, db.Parent(dogs))
	assert.Equal(t, "text[]", dogs.ColumnsByName["tricks"].Type.String())
}

func TestTypes(t *testing.T) {
	db := migrateTestdata(t)

	types, err := Types(db, model.MappingExact)
	assert.NoError(t, err)

	assert.Equal(t, []model.Type{
		{
			Owner: "Pets",
			Unit:  "PetsJSON",
			Fields: []model.Field{
				{FieldName: "ID", WireKey: "id", Kind: model.KindLong, Mapping: model.MappingExact},
				{FieldName: "Name", WireKey: "name", Kind: model.KindString, Mapping: model.MappingExact},
				{FieldName: "Legs", WireKey: "legs", Kind: model.KindInteger, Mapping: model.MappingExact},
				{FieldName: "Weight", WireKey: "weight", Kind: model.KindFloatNullable, Mapping: model.MappingExact},
			},
		},
		{
			Owner:  "Dogs",
			Unit:   "DogsJSON",
			Parent: &model.ParentRef{Unit: "PetsJSON", Embedded: "Pets"},
			Fields: []model.Field{
				{FieldName: "Breed", WireKey: "breed", Kind: model.KindString, Mapping: model.MappingExact},
				{FieldName: "IsGood", WireKey: "is_good", Kind: model.KindBoolean, Mapping: model.MappingExact},
				{FieldName: "Tricks", WireKey: "tricks", Kind: model.KindString, Container: model.ContainerList, Mapping: model.MappingExact},
			},
		},
	}, types, spew.Sdump(types))

	for _, typ := range types {
		assert.NoError(t, typ.Validate())
	}
}

func TestArrayElementsAreNullable(t *testing.T) {
	db := NewDB()
	assert.NoError(t, Migrate(db, `CREATE TABLE scores (points int[] NOT NULL, ratios float8[])`))

	types, err := Types(db, model.MappingCoerced)
	assert.NoError(t, err)

	assert.Equal(t, model.KindIntegerNullable, types[0].Fields[0].Kind)
	assert.Equal(t, model.ContainerList, types[0].Fields[0].Container)
	assert.Equal(t, model.KindDoubleNullable, types[0].Fields[1].Kind)
}

func TestUnsupportedDataType(t *testing.T) {
	db := NewDB()
	assert.NoError(t, Migrate(db, `CREATE TABLE events (id int NOT NULL, payload jsonb)`))

	_, err := Types(db, model.MappingCoerced)
	assert.EqualError(t, err, `in table "events": column "payload": unsupported data type "jsonb"`)
}

func TestInheritsErrors(t *testing.T) {
	db := NewDB()
	err := Migrate(db, `CREATE TABLE cats (name text) INHERITS (animals)`)
	assert.ErrorContains(t, err, `table "cats" inherits from unknown table "animals"`)

	db = NewDB()
	err = Migrate(db, `
		CREATE TABLE a (x int);
		CREATE TABLE b (y int);
		CREATE TABLE c (z int) INHERITS (a, b);
	`)
	assert.ErrorContains(t, err, "only one parent is supported")

	db = NewDB()
	err = Migrate(db, `
		CREATE TABLE a (x int);
		CREATE TABLE b (y int) INHERITS (a);
		DROP TABLE a;
	`)
	assert.ErrorContains(t, err, `table "a" is inherited by "b"`)
}

func TestParseErrorReportsLine(t *testing.T) {
	err := Migrate(NewDB(), "CREATE TABLE a (x int);\nCREATE TABLEE b (y int);")
	assert.ErrorContains(t, err, "line 2")
}

func TestUnknownTables(t *testing.T) {
	err := Migrate(NewDB(), `ALTER TABLE nope ADD COLUMN x int`)
	assert.ErrorContains(t, err, `table "nope" hasn't been created`)

	err = Migrate(NewDB(), `DROP TABLE nope`)
	assert.ErrorContains(t, err, `unknown table "nope"`)
}

func TestSchemaQualifiedNames(t *testing.T) {
	db := NewDB()
	assert.NoError(t, Migrate(db, `
		CREATE TABLE zoo.keepers (id int NOT NULL);
		CREATE TABLE zoo.head_keepers (level int) INHERITS (zoo.keepers);
	`))

	keepers := db.TablesByName[NewTableName("keepers", "zoo")]
	assert.NotNil(t, keepers)
	assert.Equal(t, "zoo.keepers", keepers.Name.String())

	types, err := Types(db, model.MappingCoerced)
	assert.NoError(t, err)
	assert.Equal(t, "HeadKeepers", types[1].Owner)
	assert.Equal(t, &model.ParentRef{Unit: "KeepersJSON", Embedded: "Keepers"}, types[1].Parent)
}

func TestResolveLine(t *testing.T) {
	assert.Equal(t, 1, resolveLine("abc", 2))
	assert.Equal(t, 2, resolveLine("a\nbc", 2))
	assert.Equal(t, 3, resolveLine("a\n\nc", 4))
}

func columnNames(t *Table) []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}

	return names
}

func TestStringBuilderIndentsLineStarts(t *testing.T) {
	var s stringBuilder
	s.write("a")
	s.newLine()
	s.indent()
	s.writeByte('b')
	s.write("c")
	s.newLine()
	s.indent()
	s.write("d")
	s.newLine()
	s.dedent()
	s.dedent()
	s.write("e")

	assert.Equal(t, "a\n  bc\n    d\ne", s.String())
}

func TestTableString(t *testing.T) {
	db := migrateTestdata(t)

	assert.Equal(t,
		"dogs (\n  breed pg_catalog.varchar,\n  is_good pg_catalog.bool not null,\n  tricks text[]\n) inherits (pets)",
		db.TablesByName[NewTableName("dogs")].String(),
	)
}
