package tmpl

import (
	"fmt"

	"github.com/parashar08/ig-json-parser/internal/model"
	"github.com/parashar08/ig-json-parser/internal/strategy"
)

// Site is a place in the generated code that is filled from a template.
type Site int

const (
	SiteAssign Site = iota
	SiteExtract
	SiteSerialize
	SiteArraySerialize
)

func (s Site) String() string {
	switch s {
	case SiteAssign:
		return "assign"
	case SiteExtract:
		return "extract"
	case SiteSerialize:
		return "serialize"
	case SiteArraySerialize:
		return "array serialize"
	}

	return fmt.Sprintf("Site(%d)", int(s))
}

type SourceKind int

const (
	SourceDefault SourceKind = iota
	SourceNestedObject
	SourceOverride
)

// Source says where the template of a site comes from. Override is only set
// for SourceOverride.
type Source struct {
	Kind     SourceKind
	Override string
}

// Select applies the precedence: a field override for the site, then the
// nested object default, then the strategy tables.
func Select(site Site, f model.Field) Source {
	if o := override(site, f); o != "" {
		return Source{Kind: SourceOverride, Override: o}
	}

	if f.Kind == model.KindNestedObject && site != SiteAssign {
		return Source{Kind: SourceNestedObject}
	}

	return Source{Kind: SourceDefault}
}

// Resolve returns the template text of src for a site.
func Resolve(src Source, site Site, f model.Field) (string, error) {
	switch src.Kind {
	case SourceOverride:
		return src.Override, nil

	case SourceNestedObject:
		switch site {
		case SiteExtract:
			return strategy.NestedExtract, nil
		case SiteSerialize:
			return strategy.NestedSerialize, nil
		case SiteArraySerialize:
			return strategy.NestedArraySerialize, nil
		case SiteAssign:
			return strategy.Assign, nil
		}

	case SourceDefault:
		switch site {
		case SiteAssign:
			return strategy.Assign, nil
		case SiteExtract:
			return strategy.Extract(f.Mapping, f.Kind)
		case SiteSerialize:
			return strategy.ScalarSerialize(f.Kind)
		case SiteArraySerialize:
			return strategy.ArraySerialize(f.Kind)
		}
	}

	return "", fmt.Errorf("%w: no %s template source %d", strategy.ErrUnmapped, site, src.Kind)
}

// For selects and resolves the template of a site in one step.
func For(site Site, f model.Field) (string, error) {
	return Resolve(Select(site, f), site, f)
}

func override(site Site, f model.Field) string {
	switch site {
	case SiteAssign:
		return f.AssignTemplate
	case SiteExtract:
		return f.ExtractTemplate
	case SiteSerialize, SiteArraySerialize:
		return f.SerializeTemplate
	}

	return ""
}
