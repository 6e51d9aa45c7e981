package cmd

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	assert "github.com/stretchr/testify/require"
)

const projectConfig = `
version: 1
package:
  path: gen/zoo
mapping: exact
schemas:
  - path: schemas/*.yaml
migrations:
  - path: migrations/*.sql
`

const projectSchema = `
components:
  schemas:
    Animal:
      type: object
      x-abstract: true
      properties:
        name:
          type: string
    Dog:
      allOf:
        - $ref: "#/components/schemas/Animal"
        - type: object
          properties:
            breed:
              type: string
`

const projectMigration = `
-- +goose Up
CREATE TABLE keepers (
    id bigint PRIMARY KEY,
    name text
);

-- +goose Down
DROP TABLE keepers;
`

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		assert.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		assert.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	return dir
}

func project(t *testing.T) string {
	return writeProject(t, map[string]string{
		"igjson.yaml":                projectConfig,
		"schemas/zoo.yaml":           projectSchema,
		"migrations/001_init.sql":    projectMigration,
		"migrations/002_empty.sql":   "-- +goose Up\n",
		"migrations/notes/readme.md": "not a migration",
	})
}

func run(t *testing.T, s Settings) (string, error) {
	t.Helper()

	var out bytes.Buffer
	s.Logger = log.New(&out, "", 0)

	err := Run(context.Background(), s)
	return out.String(), err
}

func TestRun(t *testing.T) {
	dir := project(t)

	out, err := run(t, Settings{WorkingDir: dir})
	assert.NoError(t, err)

	assert.Equal(t, "wrote gen/zoo/animal_jsongen.go\nwrote gen/zoo/dog_jsongen.go\nwrote gen/zoo/keepers_jsongen.go\n", out)

	dog, err := os.ReadFile(filepath.Join(dir, "gen/zoo/dog_jsongen.go"))
	assert.NoError(t, err)
	assert.Contains(t, string(dog), "package zoo")
	assert.Contains(t, string(dog), "type Dog struct {\n\tAnimal\n")
	assert.Contains(t, string(dog), "type DogJSON struct{}")
	assert.Contains(t, string(dog), "AnimalJSON{}.ProcessField(&instance.Animal, fieldName, cursor)")

	keepers, err := os.ReadFile(filepath.Join(dir, "gen/zoo/keepers_jsongen.go"))
	assert.NoError(t, err)

	// Exact mapping from the config.
	assert.Contains(t, string(keepers), "cursor.Int64()")
	assert.Contains(t, string(keepers), "cursor.Token() == jsonstream.String")
}

func TestRunDryRunWritesNothing(t *testing.T) {
	dir := project(t)

	out, err := run(t, Settings{WorkingDir: dir, DryRun: true, Jobs: 1})
	assert.NoError(t, err)
	assert.Contains(t, out, "would write gen/zoo/dog_jsongen.go\n")

	_, err = os.Stat(filepath.Join(dir, "gen"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunCustomConfigFile(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"conf/custom.yaml": "version: 1\npackage: {path: out, name: models}\nschemas: [{path: schemas/*.yaml}]\n",
		"schemas/zoo.yaml": projectSchema,
	})

	_, err := run(t, Settings{WorkingDir: dir, ConfigFile: "conf/custom.yaml"})
	assert.NoError(t, err)

	animal, err := os.ReadFile(filepath.Join(dir, "out/animal_jsongen.go"))
	assert.NoError(t, err)
	assert.Contains(t, string(animal), "package models")
	assert.NotContains(t, string(animal), "ParseFromText")
}

func TestRunReportsUnitsThatFailToRender(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"igjson.yaml": "version: 1\npackage: {path: out}\nschemas: [{path: zoo.yaml}]\n",
		"zoo.yaml": `
components:
  schemas:
    Broken:
      type: object
      properties:
        name:
          type: string
          x-serialize: "${writer}.WriteString("
    Fine:
      type: object
      properties:
        name:
          type: string
`,
	})

	out, err := run(t, Settings{WorkingDir: dir})
	assert.EqualError(t, err, "1 unit(s) could not be generated")
	assert.Contains(t, out, "error: BrokenJSON: failed to render `broken_jsongen.go`")
	assert.Contains(t, out, "wrote out/fine_jsongen.go")
	assert.NotContains(t, out, "type BrokenJSON struct{}")

	_, err = os.Stat(filepath.Join(dir, "out/broken_jsongen.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunErrors(t *testing.T) {
	cases := map[string]struct {
		files map[string]string
		err   string
	}{
		"missing config": {
			files: map[string]string{},
			err:   "failed to read config file",
		},
		"type defined twice": {
			files: map[string]string{
				"igjson.yaml": "version: 1\npackage: {path: out}\nschemas: [{path: a.yaml}]\nmigrations: [{path: a.sql}]\n",
				"a.yaml":      "components:\n  schemas:\n    Dogs:\n      type: object\n",
				"a.sql":       "CREATE TABLE dogs (id int);",
			},
			err: `type "Dogs" is defined by more than one schema or table`,
		},
		"unsupported column": {
			files: map[string]string{
				"igjson.yaml": "version: 1\npackage: {path: out}\nmigrations: [{path: a.sql}]\n",
				"a.sql":       "CREATE TABLE events (payload jsonb);",
			},
			err: `unsupported data type "jsonb"`,
		},
		"unknown placeholder": {
			files: map[string]string{
				"igjson.yaml": "version: 1\npackage: {path: out}\nschemas: [{path: a.yaml}]\n",
				"a.yaml":      "components:\n  schemas:\n    Dog:\n      type: object\n      properties:\n        name:\n          type: string\n          x-extract: \"${nope}\"\n",
			},
			err: "failed to generate `Dog`",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, Settings{WorkingDir: writeProject(t, c.files)})
			assert.ErrorContains(t, err, c.err)
		})
	}
}

func TestRunScansGoPackages(t *testing.T) {
	wd, err := filepath.Abs("../fixtures/zoo")
	assert.NoError(t, err)

	out, err := run(t, Settings{WorkingDir: wd, DryRun: true})
	assert.NoError(t, err)

	for _, f := range []string{"animal", "dog", "address", "keeper", "all_kinds", "strict", "temperature"} {
		assert.Contains(t, out, "would write "+f+"_jsongen.go\n")
	}
}

func TestParseArgs(t *testing.T) {
	args, err := ParseArgs(nil, "/work", io.Discard)
	assert.NoError(t, err)
	assert.Equal(t, &Args{Settings: Settings{WorkingDir: "/work", ConfigFile: "igjson.yaml"}}, args)

	args, err = ParseArgs([]string{"-C", "sub", "-c", "other.yaml", "-j", "3", "--dry-run"}, "/work", io.Discard)
	assert.NoError(t, err)
	assert.Equal(t, Settings{WorkingDir: "/work/sub", ConfigFile: "other.yaml", Jobs: 3, DryRun: true}, args.Settings)

	args, err = ParseArgs([]string{"--dir=/abs", "--version"}, "/work", io.Discard)
	assert.NoError(t, err)
	assert.Equal(t, "/abs", args.Settings.WorkingDir)
	assert.True(t, args.Version)
}

func TestParseArgsErrors(t *testing.T) {
	_, err := ParseArgs([]string{"--jobs", "-2"}, "/work", io.Discard)
	assert.ErrorContains(t, err, "--jobs can't be negative")

	_, err = ParseArgs([]string{"extra"}, "/work", io.Discard)
	assert.ErrorContains(t, err, `unexpected arguments ["extra"]`)

	_, err = ParseArgs([]string{"--nope"}, "/work", io.Discard)
	assert.ErrorContains(t, err, "unknown flag: --nope")

	_, err = ParseArgs([]string{"-h"}, "/work", io.Discard)
	assert.ErrorIs(t, err, pflag.ErrHelp)
}
