package gen

import (
	"fmt"
	"strconv"

	"github.com/parashar08/ig-json-parser/internal/model"
	"github.com/parashar08/ig-json-parser/internal/strategy"
	"github.com/parashar08/ig-json-parser/internal/tmpl"
)

// fieldCode is the expanded code of one field, ready to be placed into the
// generated procedures.
type fieldCode struct {
	field model.Field

	// elemType is the Go type of one value of the field.
	elemType string

	// extract reads one value. For collections it reads one element.
	extract string

	// assign stores the extracted value, or the collected results, into the
	// instance.
	assign string

	// serialize writes a non-collection field. For nested objects the field
	// name is written separately.
	serialize string

	// serializeElement writes one collection element.
	serializeElement string
}

func planFields(t model.Type) ([]fieldCode, error) {
	codes := make([]fieldCode, 0, len(t.Fields))

	for _, f := range t.Fields {
		c, err := planField(f)
		if err != nil {
			return nil, fmt.Errorf("in field `%s`: %w", f.FieldName, err)
		}

		codes = append(codes, *c)
	}

	return codes, nil
}

func planField(f model.Field) (*fieldCode, error) {
	elemType, err := strategy.GoType(f.Kind, f.Nested)
	if err != nil {
		return nil, err
	}

	params := fieldParams(f)
	c := &fieldCode{
		field:    f,
		elemType: elemType,
	}

	if c.extract, err = expandSite(tmpl.SiteExtract, f, params); err != nil {
		return nil, err
	}

	if f.IsCollection() {
		params[tmpl.ParamValue] = idVarResults
	} else {
		params[tmpl.ParamValue] = c.extract
	}

	if c.assign, err = expandSite(tmpl.SiteAssign, f, params); err != nil {
		return nil, err
	}

	if f.IsCollection() {
		c.serializeElement, err = expandSite(tmpl.SiteArraySerialize, f, params)
	} else {
		c.serialize, err = expandSite(tmpl.SiteSerialize, f, params)
	}

	if err != nil {
		return nil, err
	}

	return c, nil
}

func fieldParams(f model.Field) tmpl.Params {
	params := tmpl.Params{
		tmpl.ParamCursor:  idParamCursor,
		tmpl.ParamWriter:  idParamWriter,
		tmpl.ParamObject:  idParamInstance,
		tmpl.ParamField:   f.FieldName,
		tmpl.ParamKey:     strconv.Quote(f.WireKey),
		tmpl.ParamElement: idVarElement,
	}

	if f.Nested != nil {
		params[tmpl.ParamUnit] = f.Nested.Unit
	}

	return params
}

func expandSite(site tmpl.Site, f model.Field, params tmpl.Params) (string, error) {
	template, err := tmpl.For(site, f)
	if err != nil {
		return "", err
	}

	code, err := tmpl.Expand(template, params)
	if err != nil {
		return "", fmt.Errorf("in %s template: %w", site, err)
	}

	return code, nil
}
