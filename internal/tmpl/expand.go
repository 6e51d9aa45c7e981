// Package tmpl expands code templates and decides which template a generation
// site uses.
package tmpl

import (
	"fmt"
	"strings"
)

// Placeholder names understood by the built-in templates.
const (
	ParamCursor  = "cursor"
	ParamWriter  = "writer"
	ParamObject  = "object"
	ParamField   = "field"
	ParamValue   = "value"
	ParamKey     = "key"
	ParamElement = "element"
	ParamUnit    = "unit"
)

// Params maps placeholder names to their replacement text.
type Params map[string]string

// Expand replaces every ${name} in template with params[name]. "$$" is a
// literal dollar sign. A placeholder without a parameter is an error, as is an
// unterminated one.
func Expand(template string, params Params) (string, error) {
	var out strings.Builder
	out.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 == len(template) {
			out.WriteByte(c)
			continue
		}

		switch template[i+1] {
		case '$':
			out.WriteByte('$')
			i++
		case '{':
			end := strings.IndexByte(template[i+2:], '}')
			if end == -1 {
				return "", fmt.Errorf(`unterminated placeholder in template "%s"`, template)
			}

			name := template[i+2 : i+2+end]
			value, ok := params[name]
			if !ok {
				return "", fmt.Errorf(`unknown placeholder "%s" in template "%s"`, name, template)
			}

			out.WriteString(value)
			i += 2 + end
		default:
			out.WriteByte(c)
		}
	}

	return out.String(), nil
}
