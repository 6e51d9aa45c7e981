package gen

import (
	"github.com/dave/jennifer/jen"
	"github.com/parashar08/ig-json-parser/internal/model"
)

const (
	streamPackage = "jsonstream"

	idReceiver             = "u"
	idParamCursor          = "cursor"
	idParamWriter          = "writer"
	idParamInstance        = "instance"
	idParamFieldName       = "fieldName"
	idParamWriteDelimiters = "writeDelimiters"
	idParamText            = "text"

	idVarResults = "results"
	idVarParsed  = "parsed"
	idVarElement = "element"
	idVarEntry   = "e"
	idVarOk      = "ok"
	idVarBuilder = "sb"

	methodParseFromCursor   = "ParseFromCursor"
	methodProcessField      = "ProcessField"
	methodSerializeToWriter = "SerializeToWriter"
	methodParseFromText     = "ParseFromText"
	methodSerializeToText   = "SerializeToText"
)

type emitter struct {
	t      model.Type
	codes  []fieldCode
	stream string
}

func (e *emitter) genOwnerStruct(f *jen.File) {
	f.Type().Id(e.t.Owner).StructFunc(func(g *jen.Group) {
		if p := e.t.Parent; p != nil {
			g.Id(p.Embedded)
		}

		for _, c := range e.codes {
			g.Id(c.field.FieldName).Add(e.fieldType(c)).Tag(map[string]string{
				"json": c.field.WireKey,
			})
		}
	})
	f.Line()
}

func (e *emitter) genUnitStruct(f *jen.File) {
	f.Commentf("%s parses and serializes %s values.", e.t.Unit, e.t.Owner)
	f.Type().Id(e.t.Unit).Struct()
	f.Line()
}

func (e *emitter) genParseFromCursor(f *jen.File) {
	f.Func().Params(
		jen.Id(idReceiver).Id(e.t.Unit),
	).Id(methodParseFromCursor).Params(
		jen.Id(idParamCursor).Op("*").Qual(e.stream, "Cursor"),
	).Op("*").Id(e.t.Owner).BlockFunc(func(g *jen.Group) {
		g.If(
			jen.Id(idParamCursor).Dot("Token").Call().Op("!=").Qual(e.stream, "StartObject"),
		).Block(
			jen.Id(idParamCursor).Dot("SkipChildren").Call(),
			jen.Return(jen.Nil()),
		)
		g.Line()

		g.Id(idParamInstance).Op(":=").Op("&").Id(e.t.Owner).Values()
		g.For(
			jen.Id(idParamCursor).Dot("Next").Call().Op("!=").Qual(e.stream, "EndObject").
				Op("&&").Id(idParamCursor).Dot("Err").Call().Op("==").Nil(),
		).Block(
			jen.Id(idParamFieldName).Op(":=").Id(idParamCursor).Dot("Name").Call(),
			jen.Id(idParamCursor).Dot("Next").Call(),
			jen.Id(idReceiver).Dot(methodProcessField).Call(
				jen.Id(idParamInstance),
				jen.Id(idParamFieldName),
				jen.Id(idParamCursor),
			),
			jen.Id(idParamCursor).Dot("SkipChildren").Call(),
		)
		g.Line()

		g.If(jen.Id(idParamCursor).Dot("Err").Call().Op("!=").Nil()).Block(
			jen.Return(jen.Nil()),
		)

		if e.t.Postprocess {
			g.Return(jen.Id(idParamInstance).Dot(model.PostprocessMethod).Call())
		} else {
			g.Return(jen.Id(idParamInstance))
		}
	})
	f.Line()
}

func (e *emitter) genProcessField(f *jen.File) {
	f.Func().Params(
		jen.Id(idReceiver).Id(e.t.Unit),
	).Id(methodProcessField).Params(
		jen.Id(idParamInstance).Op("*").Id(e.t.Owner),
		jen.Id(idParamFieldName).String(),
		jen.Id(idParamCursor).Op("*").Qual(e.stream, "Cursor"),
	).Bool().BlockFunc(func(g *jen.Group) {
		if len(e.codes) > 0 {
			g.Switch(jen.Id(idParamFieldName)).BlockFunc(func(g *jen.Group) {
				for _, c := range e.codes {
					g.Case(jen.Lit(c.field.WireKey)).BlockFunc(func(g *jen.Group) {
						if c.field.IsCollection() {
							e.genReadArray(g, c)
						}

						g.Id(c.assign)
						g.Return(jen.True())
					})
				}
			})
			g.Line()
		}

		if p := e.t.Parent; p != nil {
			g.Return(jen.Id(p.Unit).Values().Dot(methodProcessField).Call(
				jen.Op("&").Id(idParamInstance).Dot(p.Embedded),
				jen.Id(idParamFieldName),
				jen.Id(idParamCursor),
			))
		} else {
			g.Return(jen.False())
		}
	})
	f.Line()
}

// genReadArray collects the elements of an array into the results variable.
// Any other token leaves results nil.
func (e *emitter) genReadArray(g *jen.Group, c fieldCode) {
	queue := c.field.Container == model.ContainerQueue

	g.Var().Id(idVarResults).Add(e.fieldType(c))
	g.If(
		jen.Id(idParamCursor).Dot("Token").Call().Op("==").Qual(e.stream, "StartArray"),
	).BlockFunc(func(g *jen.Group) {
		if queue {
			g.Id(idVarResults).Op("=").Qual("container/list", "New").Call()
		} else {
			g.Id(idVarResults).Op("=").Make(jen.Index().Id(c.elemType), jen.Lit(0))
		}

		g.For(
			jen.Id(idParamCursor).Dot("Next").Call().Op("!=").Qual(e.stream, "EndArray").
				Op("&&").Id(idParamCursor).Dot("Err").Call().Op("==").Nil(),
		).BlockFunc(func(g *jen.Group) {
			parse := jen.Id(idVarParsed).Op(":=").Id(c.extract)

			var add *jen.Statement
			if queue {
				add = jen.Id(idVarResults).Dot("PushBack").Call(jen.Id(idVarParsed))
			} else {
				add = jen.Id(idVarResults).Op("=").Append(jen.Id(idVarResults), jen.Id(idVarParsed))
			}

			// Null elements are dropped. Primitive kinds can't hold a null,
			// so the token is checked before extracting.
			if c.field.Kind.Nullable() {
				g.Add(parse)
				g.If(jen.Id(idVarParsed).Op("!=").Nil()).Block(add)
			} else {
				g.If(
					jen.Id(idParamCursor).Dot("Token").Call().Op("!=").Qual(e.stream, "Null"),
				).Block(parse, add)
			}

			g.Id(idParamCursor).Dot("SkipChildren").Call()
		})
	})
}

func (e *emitter) genSerializeToWriter(f *jen.File) {
	f.Func().Params(
		jen.Id(idReceiver).Id(e.t.Unit),
	).Id(methodSerializeToWriter).Params(
		jen.Id(idParamWriter).Op("*").Qual(e.stream, "Writer"),
		jen.Id(idParamInstance).Op("*").Id(e.t.Owner),
		jen.Id(idParamWriteDelimiters).Bool(),
	).BlockFunc(func(g *jen.Group) {
		g.If(jen.Id(idParamWriteDelimiters)).Block(
			jen.Id(idParamWriter).Dot("WriteStartObject").Call(),
		)
		g.Line()

		for _, c := range e.codes {
			e.genSerializeField(g, c)
		}

		if p := e.t.Parent; p != nil {
			g.Id(p.Unit).Values().Dot(methodSerializeToWriter).Call(
				jen.Id(idParamWriter),
				jen.Op("&").Id(idParamInstance).Dot(p.Embedded),
				jen.False(),
			)
		}

		g.Line()
		g.If(jen.Id(idParamWriteDelimiters)).Block(
			jen.Id(idParamWriter).Dot("WriteEndObject").Call(),
		)
	})
	f.Line()
}

func (e *emitter) genSerializeField(g *jen.Group, c fieldCode) {
	field := jen.Id(idParamInstance).Dot(c.field.FieldName)

	switch {
	case c.field.IsCollection():
		g.If(field.Clone().Op("!=").Nil()).BlockFunc(func(g *jen.Group) {
			g.Id(idParamWriter).Dot("WriteFieldName").Call(jen.Lit(c.field.WireKey))
			g.Id(idParamWriter).Dot("WriteStartArray").Call()

			if c.field.Container == model.ContainerQueue {
				e.genSerializeQueue(g, c)
			} else {
				e.genSerializeList(g, c)
			}

			g.Id(idParamWriter).Dot("WriteEndArray").Call()
		})

	case c.field.Kind == model.KindNestedObject:
		g.If(field.Clone().Op("!=").Nil()).Block(
			jen.Id(idParamWriter).Dot("WriteFieldName").Call(jen.Lit(c.field.WireKey)),
			jen.Id(c.serialize),
		)

	case c.field.Kind.Nullable():
		g.If(field.Clone().Op("!=").Nil()).Block(
			jen.Id(c.serialize),
		)

	default:
		g.Id(c.serialize)
	}
}

func (e *emitter) genSerializeList(g *jen.Group, c fieldCode) {
	g.For(
		jen.List(jen.Id("_"), jen.Id(idVarElement)).Op(":=").Range().Id(idParamInstance).Dot(c.field.FieldName),
	).BlockFunc(func(g *jen.Group) {
		if c.field.Kind.Nullable() {
			g.If(jen.Id(idVarElement).Op("!=").Nil()).Block(
				jen.Id(c.serializeElement),
			)
		} else {
			g.Id(c.serializeElement)
		}
	})
}

func (e *emitter) genSerializeQueue(g *jen.Group, c fieldCode) {
	ok := jen.Id(idVarOk)
	if c.field.Kind.Nullable() {
		ok = ok.Op("&&").Id(idVarElement).Op("!=").Nil()
	}

	g.For(
		jen.Id(idVarEntry).Op(":=").Id(idParamInstance).Dot(c.field.FieldName).Dot("Front").Call(),
		jen.Id(idVarEntry).Op("!=").Nil(),
		jen.Id(idVarEntry).Op("=").Id(idVarEntry).Dot("Next").Call(),
	).Block(
		jen.If(
			jen.List(jen.Id(idVarElement), jen.Id(idVarOk)).Op(":=").Id(idVarEntry).Dot("Value").Assert(jen.Id(c.elemType)),
			ok,
		).Block(
			jen.Id(c.serializeElement),
		),
	)
}

func (e *emitter) genParseFromText(f *jen.File) {
	f.Func().Params(
		jen.Id(idReceiver).Id(e.t.Unit),
	).Id(methodParseFromText).Params(
		jen.Id(idParamText).String(),
	).Params(
		jen.Op("*").Id(e.t.Owner),
		jen.Error(),
	).Block(
		jen.Id(idParamCursor).Op(":=").Qual(e.stream, "NewCursorString").Call(jen.Id(idParamText)),
		jen.Id(idParamCursor).Dot("Next").Call(),
		jen.Line(),
		jen.Id(idParamInstance).Op(":=").Id(idReceiver).Dot(methodParseFromCursor).Call(jen.Id(idParamCursor)),
		jen.If(
			jen.Err().Op(":=").Id(idParamCursor).Dot("Err").Call(),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.Line(),
		jen.Return(jen.Id(idParamInstance), jen.Nil()),
	)
	f.Line()
}

func (e *emitter) genSerializeToText(f *jen.File) {
	f.Func().Params(
		jen.Id(idReceiver).Id(e.t.Unit),
	).Id(methodSerializeToText).Params(
		jen.Id(idParamInstance).Op("*").Id(e.t.Owner),
	).Params(
		jen.String(),
		jen.Error(),
	).Block(
		jen.Var().Id(idVarBuilder).Qual("strings", "Builder"),
		jen.Id(idParamWriter).Op(":=").Qual(e.stream, "NewWriter").Call(jen.Op("&").Id(idVarBuilder)),
		jen.Line(),
		jen.Id(idReceiver).Dot(methodSerializeToWriter).Call(
			jen.Id(idParamWriter),
			jen.Id(idParamInstance),
			jen.True(),
		),
		jen.If(
			jen.Err().Op(":=").Id(idParamWriter).Dot("Flush").Call(),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Lit(""), jen.Err()),
		),
		jen.Line(),
		jen.Return(jen.Id(idVarBuilder).Dot("String").Call(), jen.Nil()),
	)
}

func (e *emitter) fieldType(c fieldCode) *jen.Statement {
	switch c.field.Container {
	case model.ContainerList:
		return jen.Index().Id(c.elemType)
	case model.ContainerQueue:
		return jen.Op("*").Qual("container/list", "List")
	}

	return jen.Id(c.elemType)
}
