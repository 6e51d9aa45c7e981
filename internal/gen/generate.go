package gen

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/parashar08/ig-json-parser/internal/diag"
	"github.com/parashar08/ig-json-parser/internal/model"
	"github.com/parashar08/ig-json-parser/internal/names"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultStreamPath = "github.com/parashar08/ig-json-parser/jsonstream"

	// FileSuffix ends the name of every generated file.
	FileSuffix = "_jsongen.go"

	header = "Code generated by igjson. DO NOT EDIT."
)

type Options struct {
	// Package is the name of the Go package the units are generated into.
	Package string

	// StreamPath is the import path of the jsonstream package. Empty means
	// DefaultStreamPath.
	StreamPath string

	// EmitTypes also declares the owner struct types in the generated files.
	EmitTypes bool
}

func (o Options) streamPath() string {
	if o.StreamPath == "" {
		return DefaultStreamPath
	}

	return o.StreamPath
}

// Unit is the generated code of one type descriptor.
type Unit struct {
	Name     string
	Owner    string
	Filename string

	// Text is the rendered Go source. When the source does not format,
	// Diagnostics says why and Text holds the unformatted source to look at.
	Text        string
	Diagnostics []diag.Diagnostic
}

// GenerateUnit emits the parse and serialize procedures of one type. An error
// is returned only for descriptors or templates the emitter cannot work with.
// Source that does not render is reported as a diagnostic of the unit.
func GenerateUnit(t model.Type, opts Options) (*Unit, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	codes, err := planFields(t)
	if err != nil {
		return nil, fmt.Errorf("in unit `%s`: %w", t.Unit, err)
	}

	unit := &Unit{
		Name:     t.Unit,
		Owner:    t.Owner,
		Filename: names.Snake(t.Owner) + FileSuffix,
	}

	f := jen.NewFile(opts.Package)
	f.HeaderComment(header)
	f.ImportName(opts.streamPath(), streamPackage)

	e := &emitter{
		t:      t,
		codes:  codes,
		stream: opts.streamPath(),
	}

	if opts.EmitTypes {
		e.genOwnerStruct(f)
	}

	e.genUnitStruct(f)

	if !t.Abstract {
		e.genParseFromCursor(f)
	}

	e.genProcessField(f)
	e.genSerializeToWriter(f)

	if !t.Abstract {
		e.genParseFromText(f)
		e.genSerializeToText(f)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		// The error carries the whole source after its first line.
		msg, _, _ := strings.Cut(err.Error(), "\n")
		unit.Diagnostics = append(unit.Diagnostics, diag.Report(t.Unit, "failed to render `%s`: %s", unit.Filename, msg))

		buf.Reset()
		f.NoFormat = true
		if err := f.Render(&buf); err == nil {
			unit.Text = buf.String()
		}

		return unit, nil
	}

	unit.Text = buf.String()
	return unit, nil
}

// Failed reports whether the unit has diagnostics and its text is not fit to
// be written out.
func (u Unit) Failed() bool {
	return len(u.Diagnostics) > 0
}

// Generate emits the units of many types, at most jobs at a time. The units
// are returned in the order of types. The first fatal error stops the batch.
func Generate(ctx context.Context, types []model.Type, opts Options, jobs int) ([]Unit, error) {
	units := make([]Unit, len(types))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, t := range types {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			u, err := GenerateUnit(t, opts)
			if err != nil {
				return fmt.Errorf("failed to generate `%s`: %w", t.Owner, err)
			}

			units[i] = *u
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return units, nil
}
