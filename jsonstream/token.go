// Package jsonstream is the streaming JSON cursor and writer used by code
// generated with igjson.
//
// Both the Cursor and the Writer keep the first error they hit and turn every
// later call into a no-op, so generated code can chain calls and check Err
// once at the end.
package jsonstream

import "fmt"

type Token int

const (
	None Token = iota
	StartObject
	EndObject
	StartArray
	EndArray
	FieldName
	String
	Int
	Float
	True
	False
	Null
)

var tokenNames = [...]string{
	None:        "none",
	StartObject: "start object",
	EndObject:   "end object",
	StartArray:  "start array",
	EndArray:    "end array",
	FieldName:   "field name",
	String:      "string",
	Int:         "integer",
	Float:       "float",
	True:        "true",
	False:       "false",
	Null:        "null",
}

func (t Token) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}

	return fmt.Sprintf("Token(%d)", int(t))
}

// PtrIf returns a pointer to v when ok, nil otherwise.
func PtrIf[T any](ok bool, v T) *T {
	if !ok {
		return nil
	}

	return &v
}
