package gen

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	assert "github.com/stretchr/testify/require"

	"github.com/parashar08/ig-json-parser/internal/model"
	"github.com/parashar08/ig-json-parser/internal/strategy"
)

var opts = Options{Package: "zoo"}

func animalType() model.Type {
	return model.Type{
		Owner:    "Animal",
		Unit:     "AnimalJSON",
		Abstract: true,
		Fields: []model.Field{
			{FieldName: "Name", WireKey: "name", Kind: model.KindString},
			{FieldName: "Legs", WireKey: "legs", Kind: model.KindInteger},
		},
	}
}

func dogType() model.Type {
	return model.Type{
		Owner:  "Dog",
		Unit:   "DogJSON",
		Parent: &model.ParentRef{Unit: "AnimalJSON", Embedded: "Animal"},
		Fields: []model.Field{
			{FieldName: "Breed", WireKey: "breed", Kind: model.KindString},
			{FieldName: "Good", WireKey: "good", Kind: model.KindBoolean},
			{FieldName: "Tricks", WireKey: "tricks", Kind: model.KindString, Container: model.ContainerList},
		},
	}
}

func keeperType() model.Type {
	address := &model.NestedRef{Unit: "AddressJSON", Type: "Address"}

	return model.Type{
		Owner: "Keeper",
		Unit:  "KeeperJSON",
		Fields: []model.Field{
			{FieldName: "ID", WireKey: "id", Kind: model.KindLong},
			{FieldName: "Home", WireKey: "home", Kind: model.KindNestedObject, Nested: address},
			{FieldName: "Offices", WireKey: "offices", Kind: model.KindNestedObject, Nested: address, Container: model.ContainerList},
			{FieldName: "Scores", WireKey: "scores", Kind: model.KindDouble, Container: model.ContainerQueue},
			{FieldName: "Codes", WireKey: "codes", Kind: model.KindIntegerNullable, Container: model.ContainerList, Mapping: model.MappingExact},
		},
	}
}

func generate(t *testing.T, typ model.Type, o Options) *Unit {
	t.Helper()

	unit, err := GenerateUnit(typ, o)
	assert.NoError(t, err, spew.Sdump(typ))
	assert.Empty(t, unit.Diagnostics)

	return unit
}

func TestGenerateUnitHeaderAndName(t *testing.T) {
	unit := generate(t, dogType(), opts)

	assert.Equal(t, "DogJSON", unit.Name)
	assert.Equal(t, "Dog", unit.Owner)
	assert.Equal(t, "dog_jsongen.go", unit.Filename)
	assert.Contains(t, unit.Text, "// Code generated by igjson. DO NOT EDIT.")
	assert.Contains(t, unit.Text, "package zoo")
	assert.Contains(t, unit.Text, `"github.com/parashar08/ig-json-parser/jsonstream"`)
	assert.Contains(t, unit.Text, "type DogJSON struct{}")
}

func TestGenerateUnitStreamPath(t *testing.T) {
	unit := generate(t, dogType(), Options{Package: "zoo", StreamPath: "example.com/vendor/jsonstream"})

	assert.Contains(t, unit.Text, `"example.com/vendor/jsonstream"`)
	assert.NotContains(t, unit.Text, DefaultStreamPath)
}

func TestGenerateParseFromCursor(t *testing.T) {
	unit := generate(t, dogType(), opts)

	for _, want := range []string{
		"func (u DogJSON) ParseFromCursor(cursor *jsonstream.Cursor) *Dog {",
		"if cursor.Token() != jsonstream.StartObject {",
		"cursor.SkipChildren()",
		"instance := &Dog{}",
		"for cursor.Next() != jsonstream.EndObject && cursor.Err() == nil {",
		"fieldName := cursor.Name()",
		"u.ProcessField(instance, fieldName, cursor)",
		"return instance\n",
	} {
		assert.Contains(t, unit.Text, want)
	}
}

func TestGenerateProcessFieldDelegatesToParent(t *testing.T) {
	unit := generate(t, dogType(), opts)

	assert.Contains(t, unit.Text, "func (u DogJSON) ProcessField(instance *Dog, fieldName string, cursor *jsonstream.Cursor) bool {")
	assert.Contains(t, unit.Text, "case \"breed\":\n\t\tinstance.Breed = jsonstream.PtrIf(cursor.Token() != jsonstream.Null, cursor.Text())\n\t\treturn true")
	assert.Contains(t, unit.Text, "instance.Good = cursor.ValueAsBool()")
	assert.Contains(t, unit.Text, "return AnimalJSON{}.ProcessField(&instance.Animal, fieldName, cursor)")
	assert.NotContains(t, unit.Text, "return false")
}

func TestGenerateProcessFieldCaseOrder(t *testing.T) {
	unit := generate(t, dogType(), opts)

	breed := indexOf(t, unit.Text, `case "breed":`)
	good := indexOf(t, unit.Text, `case "good":`)
	tricks := indexOf(t, unit.Text, `case "tricks":`)

	assert.Less(t, breed, good)
	assert.Less(t, good, tricks)
}

func TestGenerateRootProcessFieldReturnsFalse(t *testing.T) {
	unit := generate(t, keeperType(), opts)

	assert.Contains(t, unit.Text, "return false")
	assert.NotContains(t, unit.Text, "}{}.ProcessField(&instance.")
}

func TestGenerateWithoutFields(t *testing.T) {
	unit := generate(t, model.Type{
		Owner:  "Empty",
		Unit:   "EmptyJSON",
		Parent: &model.ParentRef{Unit: "AnimalJSON", Embedded: "Animal"},
	}, opts)

	assert.NotContains(t, unit.Text, "switch")
	assert.Contains(t, unit.Text, "return AnimalJSON{}.ProcessField(&instance.Animal, fieldName, cursor)")
	assert.Contains(t, unit.Text, "AnimalJSON{}.SerializeToWriter(writer, &instance.Animal, false)")
}

func TestGenerateAbstractUnit(t *testing.T) {
	unit := generate(t, animalType(), opts)

	assert.Contains(t, unit.Text, "func (u AnimalJSON) ProcessField(")
	assert.Contains(t, unit.Text, "func (u AnimalJSON) SerializeToWriter(")
	assert.NotContains(t, unit.Text, "ParseFromCursor")
	assert.NotContains(t, unit.Text, "ParseFromText")
	assert.NotContains(t, unit.Text, "SerializeToText")
	assert.NotContains(t, unit.Text, `"strings"`)
}

func TestGenerateSerializeToWriter(t *testing.T) {
	unit := generate(t, dogType(), opts)

	for _, want := range []string{
		"func (u DogJSON) SerializeToWriter(writer *jsonstream.Writer, instance *Dog, writeDelimiters bool) {",
		"if writeDelimiters {\n\t\twriter.WriteStartObject()\n\t}",
		"if instance.Breed != nil {\n\t\twriter.WriteStringField(\"breed\", *instance.Breed)\n\t}",
		"\twriter.WriteBoolField(\"good\", instance.Good)\n",
		"if instance.Tricks != nil {\n\t\twriter.WriteFieldName(\"tricks\")\n\t\twriter.WriteStartArray()",
		"for _, element := range instance.Tricks {\n\t\t\tif element != nil {\n\t\t\t\twriter.WriteString(*element)",
		"writer.WriteEndArray()",
		"AnimalJSON{}.SerializeToWriter(writer, &instance.Animal, false)",
		"if writeDelimiters {\n\t\twriter.WriteEndObject()\n\t}",
	} {
		assert.Contains(t, unit.Text, want)
	}

	assert.Less(t,
		indexOf(t, unit.Text, `writer.WriteFieldName("tricks")`),
		indexOf(t, unit.Text, "AnimalJSON{}.SerializeToWriter"),
	)
}

func TestGenerateCollections(t *testing.T) {
	unit := generate(t, keeperType(), opts)

	for _, want := range []string{
		`"container/list"`,
		"var results []*Address",
		"results = make([]*Address, 0)",
		"for cursor.Next() != jsonstream.EndArray && cursor.Err() == nil {",
		"parsed := AddressJSON{}.ParseFromCursor(cursor)",
		"if parsed != nil {\n\t\t\t\t\tresults = append(results, parsed)",
		"instance.Offices = results",
		"var results *list.List",
		"results = list.New()",
		"if cursor.Token() != jsonstream.Null {\n\t\t\t\t\tparsed := cursor.ValueAsFloat64()\n\t\t\t\t\tresults.PushBack(parsed)\n\t\t\t\t}\n\t\t\t\tcursor.SkipChildren()",
		"instance.Scores = results",
		"for e := instance.Scores.Front(); e != nil; e = e.Next() {",
		"if element, ok := e.Value.(float64); ok {\n\t\t\t\twriter.WriteFloat64(element)",
		"parsed := jsonstream.PtrIf(cursor.Token() == jsonstream.Int, cursor.ValueAsInt())",
		"writer.WriteInt(*element)",
	} {
		assert.Contains(t, unit.Text, want)
	}
}

func TestGenerateNestedObject(t *testing.T) {
	unit := generate(t, keeperType(), opts)

	assert.Contains(t, unit.Text, "instance.Home = AddressJSON{}.ParseFromCursor(cursor)")
	assert.Contains(t, unit.Text, "if instance.Home != nil {\n\t\twriter.WriteFieldName(\"home\")\n\t\tAddressJSON{}.SerializeToWriter(writer, instance.Home, true)")
	assert.Contains(t, unit.Text, "AddressJSON{}.SerializeToWriter(writer, element, true)")
	assert.Contains(t, unit.Text, "\twriter.WriteInt64Field(\"id\", instance.ID)\n")
}

func TestGeneratePostprocess(t *testing.T) {
	typ := keeperType()
	typ.Postprocess = true

	unit := generate(t, typ, opts)

	assert.Contains(t, unit.Text, "return instance.PostProcess()")
}

func TestGenerateTextEntryPoints(t *testing.T) {
	unit := generate(t, dogType(), opts)

	for _, want := range []string{
		"func (u DogJSON) ParseFromText(text string) (*Dog, error) {",
		"cursor := jsonstream.NewCursorString(text)",
		"instance := u.ParseFromCursor(cursor)",
		"if err := cursor.Err(); err != nil {",
		"func (u DogJSON) SerializeToText(instance *Dog) (string, error) {",
		"var sb strings.Builder",
		"writer := jsonstream.NewWriter(&sb)",
		"u.SerializeToWriter(writer, instance, true)",
		"if err := writer.Flush(); err != nil {",
		"return sb.String(), nil",
	} {
		assert.Contains(t, unit.Text, want)
	}
}

func TestGenerateOverrides(t *testing.T) {
	typ := dogType()
	typ.Fields[0].AssignTemplate = "${object}.Set${field}(${value})"
	typ.Fields[0].SerializeTemplate = `${writer}.WriteStringField(${key}, "hidden")`
	typ.Fields[1].ExtractTemplate = "${cursor}.Text() == \"yes\""

	unit := generate(t, typ, opts)

	assert.Contains(t, unit.Text, "instance.SetBreed(jsonstream.PtrIf(cursor.Token() != jsonstream.Null, cursor.Text()))")
	assert.Contains(t, unit.Text, `writer.WriteStringField("breed", "hidden")`)
	assert.Contains(t, unit.Text, `instance.Good = cursor.Text() == "yes"`)
}

func TestGenerateEmitTypes(t *testing.T) {
	unit := generate(t, keeperType(), Options{Package: "zoo", EmitTypes: true})

	assert.Contains(t, unit.Text, "type Keeper struct {")
	assert.Contains(t, unit.Text, `json:"offices"`)
	assert.Contains(t, unit.Text, "[]*Address")
	assert.Contains(t, unit.Text, "*list.List")

	dog := generate(t, dogType(), Options{Package: "zoo", EmitTypes: true})
	assert.Contains(t, dog.Text, "type Dog struct {\n\tAnimal\n")
}

func TestGenerateBadOverrideIsDiagnostic(t *testing.T) {
	typ := dogType()
	typ.Fields[0].ExtractTemplate = "${cursor}.Text("

	unit, err := GenerateUnit(typ, opts)
	assert.NoError(t, err)

	assert.True(t, unit.Failed())
	assert.Len(t, unit.Diagnostics, 1)
	assert.Equal(t, "DogJSON", unit.Diagnostics[0].Unit)
	assert.Contains(t, unit.Diagnostics[0].Message, "failed to render `dog_jsongen.go`")
	assert.NotContains(t, unit.Diagnostics[0].Message, "\n")

	// The unformatted source shows where the override broke it.
	assert.Contains(t, unit.Text, "package zoo")
	assert.Contains(t, unit.Text, "cursor.Text(")
	assert.Contains(t, unit.Text, "type DogJSON struct{}")
}

func TestGenerateUnknownPlaceholderIsFatal(t *testing.T) {
	typ := dogType()
	typ.Fields[0].SerializeTemplate = "${writer}.Write(${nope})"

	unit, err := GenerateUnit(typ, opts)
	assert.Nil(t, unit)
	assert.ErrorContains(t, err, `unknown placeholder "nope"`)
	assert.ErrorContains(t, err, "in field `Breed`")
}

func TestGenerateInvalidDescriptorIsFatal(t *testing.T) {
	typ := dogType()
	typ.Fields[1].WireKey = "breed"

	_, err := GenerateUnit(typ, opts)
	assert.ErrorIs(t, err, model.ErrInvalid)

	typ = dogType()
	typ.Fields[0].Kind = model.ValueKind(42)

	_, err = GenerateUnit(typ, opts)
	assert.ErrorIs(t, err, model.ErrInvalid)
}

func TestGenerateUnmappedIsFatal(t *testing.T) {
	_, err := planField(model.Field{FieldName: "X", WireKey: "x", Kind: model.ValueKind(77)})
	assert.ErrorIs(t, err, strategy.ErrUnmapped)
}

func TestGenerateKeepsOrder(t *testing.T) {
	types := make([]model.Type, 0, 20)
	for i := 0; i < 20; i++ {
		types = append(types, model.Type{
			Owner: fmt.Sprintf("T%d", i),
			Unit:  fmt.Sprintf("T%dJSON", i),
			Fields: []model.Field{
				{FieldName: "A", WireKey: "a", Kind: model.KindInteger},
			},
		})
	}

	units, err := Generate(context.Background(), types, opts, 3)
	assert.NoError(t, err)
	assert.Len(t, units, len(types))

	for i, u := range units {
		assert.Equal(t, types[i].Unit, u.Name)
		assert.Contains(t, u.Text, fmt.Sprintf("func (u T%dJSON) ProcessField(", i))
	}
}

func TestGenerateIsolatesDiagnostics(t *testing.T) {
	broken := dogType()
	broken.Fields[0].ExtractTemplate = "("

	units, err := Generate(context.Background(), []model.Type{animalType(), broken, keeperType()}, opts, 0)
	assert.NoError(t, err)

	assert.Empty(t, units[0].Diagnostics)
	assert.NotEmpty(t, units[0].Text)
	assert.Len(t, units[1].Diagnostics, 1)
	assert.Empty(t, units[2].Diagnostics)
	assert.NotEmpty(t, units[2].Text)
}

func TestGenerateStopsOnFatal(t *testing.T) {
	broken := dogType()
	broken.Unit = ""

	_, err := Generate(context.Background(), []model.Type{animalType(), broken}, opts, 1)
	assert.ErrorContains(t, err, "failed to generate `Dog`")
	assert.ErrorIs(t, err, model.ErrInvalid)
}

func indexOf(t *testing.T, s string, sub string) int {
	t.Helper()

	i := strings.Index(s, sub)
	assert.GreaterOrEqual(t, i, 0, "%q not found in:\n%s", sub, s)

	return i
}
