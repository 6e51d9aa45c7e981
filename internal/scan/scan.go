// Package scan finds the struct types of Go packages that are annotated for
// generation and describes them.
//
// A struct is annotated with a `//igjson:generate` or `//igjson:abstract` line
// in its doc comment. Every exported field needs a json tag and can carry an
// igjson tag with the options `exact`, `coerced` and `queue=<kind or type>`.
// The igjson-assign, igjson-extract and igjson-serialize tags replace the
// default templates of a field.
package scan

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/parashar08/ig-json-parser/internal/gen"
	"github.com/parashar08/ig-json-parser/internal/model"
	"golang.org/x/tools/go/packages"
)

const (
	GenerateDirective = "//igjson:generate"
	AbstractDirective = "//igjson:abstract"

	tagKey      = "igjson"
	queueOption = "queue="

	assignTagKey    = "igjson-assign"
	extractTagKey   = "igjson-extract"
	serializeTagKey = "igjson-serialize"
)

// Package is a scanned Go package. Its units are generated into Dir.
type Package struct {
	Name  string
	Path  string
	Dir   string
	Types []model.Type
}

// Load scans the packages matching patterns, resolved relative to dir.
func Load(ctx context.Context, dir string, patterns ...string) ([]Package, error) {
	cfg := &packages.Config{
		Context:   ctx,
		Dir:       dir,
		Mode:      packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		ParseFile: parseFile,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf(`failed to load packages %q: %w`, patterns, err)
	}

	out := make([]Package, 0, len(pkgs))

	for _, p := range pkgs {
		if err := loadError(p); err != nil {
			return nil, err
		}

		described, err := Types(p.Types, p.Syntax)
		if err != nil {
			return nil, fmt.Errorf(`in package "%s": %w`, p.PkgPath, err)
		}

		pkg := Package{
			Name:  p.Name,
			Path:  p.PkgPath,
			Types: described,
		}

		if len(p.GoFiles) > 0 {
			pkg.Dir = filepath.Dir(p.GoFiles[0])
		}

		out = append(out, pkg)
	}

	return out, nil
}

// parseFile reads only the package clause of generated files so that stale
// generated code can be regenerated.
func parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	mode := parser.ParseComments | parser.AllErrors
	if strings.HasSuffix(filename, gen.FileSuffix) {
		mode = parser.PackageClauseOnly
	}

	return parser.ParseFile(fset, filename, src, mode)
}

// loadError returns the first error that makes the package unusable. Type
// errors are tolerated since hand-written code may use the generated units.
func loadError(p *packages.Package) error {
	for _, e := range p.Errors {
		if e.Kind != packages.TypeError {
			return fmt.Errorf(`failed to load package "%s": %w`, p.PkgPath, e)
		}
	}

	if p.Types == nil {
		return fmt.Errorf(`failed to load package "%s": no type information`, p.PkgPath)
	}

	return nil
}

type annotation struct {
	name     string
	abstract bool
}

type scanner struct {
	pkg       *types.Package
	annotated map[string]annotation
}

// Types describes the annotated struct types declared in files, in source
// order. pkg is the type-checked package of files.
func Types(pkg *types.Package, files []*ast.File) ([]model.Type, error) {
	annotations := annotations(files)

	s := &scanner{
		pkg:       pkg,
		annotated: make(map[string]annotation, len(annotations)),
	}

	for _, a := range annotations {
		s.annotated[a.name] = a
	}

	out := make([]model.Type, 0, len(annotations))
	for _, a := range annotations {
		t, err := s.typeOf(a)
		if err != nil {
			return nil, fmt.Errorf(`in type "%s": %w`, a.name, err)
		}

		out = append(out, *t)
	}

	return out, nil
}

func annotations(files []*ast.File) []annotation {
	out := make([]annotation, 0)

	for _, f := range files {
		for _, d := range f.Decls {
			decl, ok := d.(*ast.GenDecl)
			if !ok || decl.Tok != token.TYPE {
				continue
			}

			for _, spec := range decl.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(decl.Specs) == 1 {
					doc = decl.Doc
				}

				if generate, abstract := directives(doc); generate || abstract {
					out = append(out, annotation{name: ts.Name.Name, abstract: abstract})
				}
			}
		}
	}

	return out
}

func directives(doc *ast.CommentGroup) (generate bool, abstract bool) {
	if doc == nil {
		return false, false
	}

	for _, c := range doc.List {
		switch strings.TrimSpace(c.Text) {
		case GenerateDirective:
			generate = true
		case AbstractDirective:
			abstract = true
		}
	}

	return generate, abstract
}

func (s *scanner) typeOf(a annotation) (*model.Type, error) {
	obj, ok := s.pkg.Scope().Lookup(a.name).(*types.TypeName)
	if !ok {
		return nil, errors.New("not found in package scope")
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, errors.New("annotated type is an alias")
	}

	if named.TypeParams().Len() > 0 {
		return nil, errors.New("generic types are not supported")
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("annotated type is not a struct but %s", types.TypeString(named.Underlying(), types.RelativeTo(s.pkg)))
	}

	t := &model.Type{
		Owner:    a.name,
		Unit:     model.UnitName(a.name),
		Abstract: a.abstract,
		Fields:   make([]model.Field, 0, st.NumFields()),
	}

	for i := 0; i < st.NumFields(); i += 1 {
		v := st.Field(i)

		if v.Embedded() {
			if err := s.embed(t, v); err != nil {
				return nil, fmt.Errorf(`embedded field "%s": %w`, v.Name(), err)
			}

			continue
		}

		if !v.Exported() {
			continue
		}

		f, err := s.field(v, reflect.StructTag(st.Tag(i)))
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, v.Name(), err)
		}

		if f != nil {
			t.Fields = append(t.Fields, *f)
		}
	}

	postprocess, err := postprocess(named)
	if err != nil {
		return nil, err
	}

	t.Postprocess = postprocess
	return t, nil
}

// embed makes the first embedded annotated struct the parent of t.
func (s *scanner) embed(t *model.Type, v *types.Var) error {
	name, ok := s.annotatedName(v.Type())
	if !ok {
		if p, isPtr := v.Type().(*types.Pointer); isPtr {
			if _, ok := s.annotatedName(p.Elem()); ok {
				return errors.New("a parent struct must be embedded by value")
			}
		}

		return nil
	}

	if t.Parent != nil {
		return fmt.Errorf(`already embeds the parent "%s", only one parent is supported`, t.Parent.Embedded)
	}

	t.Parent = &model.ParentRef{
		Unit:     model.UnitName(name),
		Embedded: v.Name(),
	}

	return nil
}

func (s *scanner) field(v *types.Var, tag reflect.StructTag) (*model.Field, error) {
	jsonTag, ok := tag.Lookup("json")
	if !ok {
		return nil, errors.New("no json tag")
	}

	key, _, _ := strings.Cut(jsonTag, ",")
	if key == "-" {
		return nil, nil
	}

	if key == "" {
		key = v.Name()
	}

	opts, err := parseOptions(tag.Get(tagKey))
	if err != nil {
		return nil, err
	}

	f := &model.Field{
		FieldName:         v.Name(),
		WireKey:           key,
		Mapping:           opts.mapping,
		AssignTemplate:    tag.Get(assignTagKey),
		ExtractTemplate:   tag.Get(extractTagKey),
		SerializeTemplate: tag.Get(serializeTagKey),
	}

	if isList(v.Type()) {
		if opts.queue == "" {
			return nil, fmt.Errorf(`a *list.List needs an %s:"%s<kind or type>" tag`, tagKey, queueOption)
		}

		f.Container = model.ContainerQueue
		f.Kind, f.Nested, err = s.queueElement(opts.queue)
		return f, err
	}

	if opts.queue != "" {
		return nil, fmt.Errorf(`the %s option needs a *list.List field`, strings.TrimSuffix(queueOption, "="))
	}

	typ := v.Type()
	if sl, ok := typ.(*types.Slice); ok {
		if _, ok := sl.Elem().(*types.Slice); ok {
			return nil, errors.New("slices of slices are not supported")
		}

		f.Container = model.ContainerList
		typ = sl.Elem()
	}

	f.Kind, f.Nested, err = s.valueKind(typ)
	return f, err
}

func (s *scanner) queueElement(element string) (model.ValueKind, *model.NestedRef, error) {
	if kind, err := model.ParseValueKind(element); err == nil {
		if kind == model.KindNestedObject {
			return 0, nil, errors.New("name the nested type of the queue elements")
		}

		return kind, nil, nil
	}

	if _, ok := s.annotated[element]; !ok {
		return 0, nil, fmt.Errorf(`queue element "%s" is neither a value kind nor an annotated type`, element)
	}

	return s.nested(element)
}

// nested refers to the unit of an annotated type. Abstract units have no
// entry point to parse a value with.
func (s *scanner) nested(name string) (model.ValueKind, *model.NestedRef, error) {
	if s.annotated[name].abstract {
		return 0, nil, fmt.Errorf(`nested type "%s" is abstract and can't be parsed on its own`, name)
	}

	return model.KindNestedObject, &model.NestedRef{Unit: model.UnitName(name), Type: name}, nil
}

var basicKinds = map[types.BasicKind]model.ValueKind{
	types.Bool:    model.KindBoolean,
	types.Int:     model.KindInteger,
	types.Int64:   model.KindLong,
	types.Float32: model.KindFloat,
	types.Float64: model.KindDouble,
}

func (s *scanner) valueKind(t types.Type) (model.ValueKind, *model.NestedRef, error) {
	switch tt := t.(type) {
	case *types.Basic:
		if kind, ok := basicKinds[tt.Kind()]; ok {
			return kind, nil, nil
		}

		if tt.Kind() == types.String {
			return 0, nil, errors.New("use *string for string fields")
		}
	case *types.Pointer:
		if b, ok := tt.Elem().(*types.Basic); ok {
			if b.Kind() == types.String {
				return model.KindString, nil, nil
			}

			if kind, ok := basicKinds[b.Kind()]; ok {
				return kind.NullableOf(), nil, nil
			}
		}

		if name, ok := s.annotatedName(tt.Elem()); ok {
			return s.nested(name)
		}

		if n, ok := tt.Elem().(*types.Named); ok && n.Obj().Pkg() == s.pkg {
			if _, ok := n.Underlying().(*types.Struct); ok {
				return 0, nil, fmt.Errorf(`nested type "%s" is not annotated with %s`, n.Obj().Name(), GenerateDirective)
			}
		}
	}

	return 0, nil, fmt.Errorf(`unsupported field type "%s"`, types.TypeString(t, types.RelativeTo(s.pkg)))
}

// annotatedName returns the name of t if it is an annotated type of the
// scanned package.
func (s *scanner) annotatedName(t types.Type) (string, bool) {
	n, ok := t.(*types.Named)
	if !ok || n.Obj().Pkg() != s.pkg {
		return "", false
	}

	name := n.Obj().Name()
	_, ok = s.annotated[name]
	return name, ok
}

func isList(t types.Type) bool {
	p, ok := t.(*types.Pointer)
	if !ok {
		return false
	}

	n, ok := p.Elem().(*types.Named)
	if !ok || n.Obj().Pkg() == nil {
		return false
	}

	return n.Obj().Pkg().Path() == "container/list" && n.Obj().Name() == "List"
}

// postprocess reports whether the type declares a `PostProcess() *T` method.
// Promoted methods of an embedded parent don't count.
func postprocess(named *types.Named) (bool, error) {
	for i := 0; i < named.NumMethods(); i += 1 {
		m := named.Method(i)
		if m.Name() != model.PostprocessMethod {
			continue
		}

		sig := m.Type().(*types.Signature)
		want := types.NewPointer(named)

		if sig.Params().Len() != 0 || sig.Results().Len() != 1 || !types.Identical(sig.Results().At(0).Type(), want) {
			return false, fmt.Errorf(`method %s must have the signature "func() *%s"`, m.Name(), named.Obj().Name())
		}

		return true, nil
	}

	return false, nil
}

type options struct {
	mapping model.MappingMode
	queue   string
}

func parseOptions(tag string) (options, error) {
	var o options
	if tag == "" {
		return o, nil
	}

	for _, opt := range strings.Split(tag, ",") {
		switch {
		case opt == model.MappingExact.String():
			o.mapping = model.MappingExact
		case opt == model.MappingCoerced.String():
			o.mapping = model.MappingCoerced
		case strings.HasPrefix(opt, queueOption):
			o.queue = strings.TrimPrefix(opt, queueOption)
			if o.queue == "" {
				return o, fmt.Errorf(`empty %s option`, opt)
			}
		default:
			return o, fmt.Errorf(`unknown %s option "%s"`, tagKey, opt)
		}
	}

	return o, nil
}
