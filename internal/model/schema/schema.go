// Package schema reads type descriptors from YAML files laid out like the
// components section of an OpenAPI document.
package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/parashar08/ig-json-parser/internal/model"
	"github.com/parashar08/ig-json-parser/internal/names"
	"gopkg.in/yaml.v3"
)

const refPath = "#/components/schemas/"

type File struct {
	Components Components `yaml:"components"`
}

type Components struct {
	Schemas NamedSchemas `yaml:"schemas"`
}

type Schema struct {
	Type       string       `yaml:"type"`
	Format     string       `yaml:"format"`
	Nullable   bool         `yaml:"nullable"`
	Ref        *string      `yaml:"$ref"`
	AllOf      []Schema     `yaml:"allOf"`
	Properties NamedSchemas `yaml:"properties"`
	Items      *Schema      `yaml:"items"`
	Required   []string     `yaml:"required"`

	Abstract    bool   `yaml:"x-abstract"`
	Postprocess bool   `yaml:"x-postprocess"`
	Mapping     string `yaml:"x-mapping"`
	Container   string `yaml:"x-container"`
	Field       string `yaml:"x-field"`
	Assign      string `yaml:"x-assign"`
	Extract     string `yaml:"x-extract"`
	Serialize   string `yaml:"x-serialize"`
}

type NamedSchema struct {
	Name   string
	Schema Schema
}

// NamedSchemas is a YAML mapping of schemas that keeps the document order.
type NamedSchemas []NamedSchema

func (ns *NamedSchemas) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of schemas", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		var s Schema
		if err := node.Content[i+1].Decode(&s); err != nil {
			return err
		}

		*ns = append(*ns, NamedSchema{Name: node.Content[i].Value, Schema: s})
	}

	return nil
}

func (ns NamedSchemas) Get(name string) (Schema, bool) {
	for _, s := range ns {
		if s.Name == name {
			return s.Schema, true
		}
	}

	return Schema{}, false
}

func (s *Schema) isObject() bool {
	return s.Type == "object" || len(s.AllOf) > 0
}

func (s *Schema) isAbstract() bool {
	if s.Abstract {
		return true
	}

	for _, part := range s.AllOf {
		if part.Ref == nil && part.Abstract {
			return true
		}
	}

	return false
}

type reader struct {
	files  map[string]*File
	order  []string
	owners map[string]string
}

// ReadTypes returns the types of every schema in filePaths and in the files
// they reference, in document order.
func ReadTypes(filePaths []string) ([]model.Type, error) {
	r := &reader{
		files:  make(map[string]*File),
		owners: make(map[string]string),
	}

	for _, p := range filePaths {
		if _, err := r.load(p); err != nil {
			return nil, err
		}
	}

	types := make([]model.Type, 0)

	// Resolving references can load more files.
	for i := 0; i < len(r.order); i += 1 {
		path := r.order[i]

		for _, s := range r.files[path].Components.Schemas {
			t, err := r.resolveType(path, s.Name, s.Schema)
			if err != nil {
				return nil, fmt.Errorf(`in schema "%s" of "%s": %w`, s.Name, path, err)
			}

			types = append(types, *t)
		}
	}

	if err := checkParents(types); err != nil {
		return nil, err
	}

	return types, nil
}

func (r *reader) load(filePath string) (*File, error) {
	path, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf(`failed to resolve schema file "%s": %w`, filePath, err)
	}

	if f, ok := r.files[path]; ok {
		return f, nil
	}

	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read schema file "%s": %w`, path, err)
	}

	var file File
	if err := yaml.Unmarshal(fileData, &file); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal schema file "%s": %w`, path, err)
	}

	for _, s := range file.Components.Schemas {
		owner := names.Go(s.Name)

		if other, ok := r.owners[owner]; ok {
			return nil, fmt.Errorf(`type "%s" of "%s" is already defined in "%s"`, owner, path, other)
		}

		r.owners[owner] = path
	}

	r.files[path] = &file
	r.order = append(r.order, path)

	return &file, nil
}

// lookup resolves a reference made in filePath to the owner name and schema
// it points at.
func (r *reader) lookup(filePath string, ref string) (string, *Schema, error) {
	parts := strings.Split(ref, refPath)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf(`couldn't parse reference "%s"`, ref)
	}

	target := filePath
	if len(parts[0]) != 0 {
		target = filepath.Join(filepath.Dir(filePath), parts[0])
	}

	file, err := r.load(target)
	if err != nil {
		return "", nil, err
	}

	s, ok := file.Components.Schemas.Get(parts[1])
	if !ok {
		return "", nil, fmt.Errorf(`reference "%s" points at an unknown schema`, ref)
	}

	if !s.isObject() {
		return "", nil, fmt.Errorf(`reference "%s" points at a schema that is not an object`, ref)
	}

	return names.Go(parts[1]), &s, nil
}

func (r *reader) resolveType(filePath string, name string, schema Schema) (*model.Type, error) {
	owner := names.Go(name)

	t := &model.Type{
		Owner:  owner,
		Unit:   model.UnitName(owner),
		Fields: make([]model.Field, 0),
	}

	body := schema
	if len(schema.AllOf) > 0 {
		b, parent, err := r.flattenAllOf(filePath, schema)
		if err != nil {
			return nil, err
		}

		body = *b
		t.Parent = parent
	}

	if body.Type != "object" {
		return nil, fmt.Errorf(`expected an object schema, got type "%s"`, body.Type)
	}

	t.Abstract = body.Abstract
	t.Postprocess = body.Postprocess

	mapping, err := model.ParseMappingMode(body.Mapping)
	if err != nil {
		return nil, err
	}

	for _, p := range body.Properties {
		f, err := r.resolveField(filePath, p, slices.Contains(body.Required, p.Name), mapping)
		if err != nil {
			return nil, fmt.Errorf(`property "%s": %w`, p.Name, err)
		}

		t.Fields = append(t.Fields, *f)
	}

	return t, nil
}

// flattenAllOf merges the inline parts of an allOf schema into one object
// schema. The single referenced part becomes the parent.
func (r *reader) flattenAllOf(filePath string, schema Schema) (*Schema, *model.ParentRef, error) {
	merged := &Schema{
		Type:        "object",
		Properties:  slices.Clone(schema.Properties),
		Required:    slices.Clone(schema.Required),
		Abstract:    schema.Abstract,
		Postprocess: schema.Postprocess,
		Mapping:     schema.Mapping,
	}

	var parent *model.ParentRef

	for _, part := range schema.AllOf {
		if part.Ref != nil {
			if parent != nil {
				return nil, nil, errors.New(`more than one "$ref" in allOf, only one parent is supported`)
			}

			owner, _, err := r.lookup(filePath, *part.Ref)
			if err != nil {
				return nil, nil, err
			}

			parent = &model.ParentRef{
				Unit:     model.UnitName(owner),
				Embedded: owner,
			}

			continue
		}

		if part.Type != "" && part.Type != "object" {
			return nil, nil, fmt.Errorf(`allOf part of type "%s" can't be merged into an object`, part.Type)
		}

		merged.Properties = append(merged.Properties, part.Properties...)
		merged.Required = append(merged.Required, part.Required...)
		merged.Abstract = merged.Abstract || part.Abstract
		merged.Postprocess = merged.Postprocess || part.Postprocess

		if part.Mapping != "" {
			merged.Mapping = part.Mapping
		}
	}

	return merged, parent, nil
}

func (r *reader) resolveField(filePath string, p NamedSchema, required bool, mapping model.MappingMode) (*model.Field, error) {
	s := p.Schema

	f := &model.Field{
		FieldName:         names.Go(p.Name),
		WireKey:           p.Name,
		Mapping:           mapping,
		AssignTemplate:    s.Assign,
		ExtractTemplate:   s.Extract,
		SerializeTemplate: s.Serialize,
	}

	if s.Field != "" {
		f.FieldName = s.Field
	}

	if s.Mapping != "" {
		m, err := model.ParseMappingMode(s.Mapping)
		if err != nil {
			return nil, err
		}

		f.Mapping = m
	}

	elem := s
	if s.Type == "array" {
		if s.Items == nil {
			return nil, errors.New("array schema without items")
		}

		switch s.Container {
		case "", "list":
			f.Container = model.ContainerList
		case "queue":
			f.Container = model.ContainerQueue
		default:
			return nil, fmt.Errorf(`unknown container "%s"`, s.Container)
		}

		elem = *s.Items
		required = !elem.Nullable
	} else if s.Container != "" {
		return nil, fmt.Errorf(`x-container "%s" on a schema that is not an array`, s.Container)
	} else {
		required = required && !s.Nullable
	}

	kind, nested, err := r.resolveKind(filePath, elem, required)
	if err != nil {
		return nil, err
	}

	f.Kind = kind
	f.Nested = nested

	return f, nil
}

func (r *reader) resolveKind(filePath string, s Schema, required bool) (model.ValueKind, *model.NestedRef, error) {
	if s.Ref != nil {
		owner, target, err := r.lookup(filePath, *s.Ref)
		if err != nil {
			return 0, nil, err
		}

		if target.isAbstract() {
			return 0, nil, fmt.Errorf(`nested type "%s" is abstract and can't be parsed on its own`, owner)
		}

		return model.KindNestedObject, &model.NestedRef{Unit: model.UnitName(owner), Type: owner}, nil
	}

	var kind model.ValueKind

	switch s.Type {
	case "boolean":
		kind = model.KindBoolean
	case "integer":
		kind = model.KindInteger
		if s.Format == "int64" {
			kind = model.KindLong
		}
	case "number":
		kind = model.KindDouble
		if s.Format == "float" {
			kind = model.KindFloat
		}
	case "string":
		return model.KindString, nil, nil
	case "array":
		return 0, nil, errors.New("arrays of arrays are not supported")
	case "object":
		return 0, nil, errors.New(`inline object schemas are not supported, use "$ref"`)
	default:
		return 0, nil, fmt.Errorf(`unsupported schema type "%s"`, s.Type)
	}

	if !required {
		kind = kind.NullableOf()
	}

	return kind, nil, nil
}

func checkParents(types []model.Type) error {
	parents := make(map[string]string, len(types))
	for _, t := range types {
		if t.Parent != nil {
			parents[t.Owner] = t.Parent.Embedded
		}
	}

	for _, t := range types {
		seen := map[string]bool{t.Owner: true}

		for owner, ok := parents[t.Owner]; ok; owner, ok = parents[owner] {
			if seen[owner] {
				return fmt.Errorf(`type "%s" inherits from itself through "%s"`, t.Owner, owner)
			}

			seen[owner] = true
		}
	}

	return nil
}
