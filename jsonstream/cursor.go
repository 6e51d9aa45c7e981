package jsonstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

type frame struct {
	object    bool
	expectKey bool
}

// Cursor walks the tokens of a JSON stream one at a time.
type Cursor struct {
	dec   *json.Decoder
	tok   Token
	text  string
	name  string
	stack []frame
	err   error
}

func NewCursor(r io.Reader) *Cursor {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	return &Cursor{dec: dec}
}

func NewCursorString(s string) *Cursor {
	return NewCursor(strings.NewReader(s))
}

// Token returns the current token. It is None before the first call to Next,
// at the end of the stream and after an error.
func (c *Cursor) Token() Token {
	return c.tok
}

// Name returns the most recent field name read in the current object.
func (c *Cursor) Name() string {
	return c.name
}

// Text returns the textual form of the current token.
func (c *Cursor) Text() string {
	return c.text
}

func (c *Cursor) Err() error {
	return c.err
}

// Next advances to the next token and returns it.
func (c *Cursor) Next() Token {
	if c.err != nil {
		return None
	}

	raw, err := c.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) && len(c.stack) == 0 {
			c.set(None, "")
			return None
		}

		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		c.fail(fmt.Errorf("failed to read token: %w", err))
		return None
	}

	switch v := raw.(type) {
	case json.Delim:
		switch v {
		case '{':
			c.set(StartObject, "{")
			c.stack = append(c.stack, frame{object: true, expectKey: true})
		case '[':
			c.set(StartArray, "[")
			c.stack = append(c.stack, frame{})
		case '}':
			c.set(EndObject, "}")
			c.pop()
		case ']':
			c.set(EndArray, "]")
			c.pop()
		}
	case string:
		if top := c.top(); top != nil && top.object && top.expectKey {
			top.expectKey = false
			c.name = v
			c.set(FieldName, v)
		} else {
			c.set(String, v)
			c.valueDone()
		}
	case json.Number:
		if strings.ContainsAny(string(v), ".eE") {
			c.set(Float, string(v))
		} else {
			c.set(Int, string(v))
		}
		c.valueDone()
	case bool:
		if v {
			c.set(True, "true")
		} else {
			c.set(False, "false")
		}
		c.valueDone()
	case nil:
		c.set(Null, "null")
		c.valueDone()
	}

	return c.tok
}

// SkipChildren moves to the matching end token when the cursor sits on the
// start of an object or array. It does nothing on any other token.
func (c *Cursor) SkipChildren() {
	if c.tok != StartObject && c.tok != StartArray {
		return
	}

	for depth := 1; depth > 0; {
		switch c.Next() {
		case StartObject, StartArray:
			depth++
		case EndObject, EndArray:
			depth--
		case None:
			return
		}
	}
}

// Bool reads a boolean token. Any other token is an error.
func (c *Cursor) Bool() bool {
	switch c.tok {
	case True:
		return true
	case False:
		return false
	}

	c.mismatch("boolean")
	return false
}

// Int reads a number token as an int, truncating fractions.
func (c *Cursor) Int() int {
	v := c.Int64()
	if v < math.MinInt || v > math.MaxInt {
		c.fail(fmt.Errorf(`number "%s" overflows int`, c.text))
		return 0
	}

	return int(v)
}

// Int64 reads a number token as an int64, truncating fractions.
func (c *Cursor) Int64() int64 {
	switch c.tok {
	case Int:
		v, err := strconv.ParseInt(c.text, 10, 64)
		if err != nil {
			c.fail(fmt.Errorf(`failed to read integer "%s": %w`, c.text, err))
			return 0
		}

		return v
	case Float:
		f, err := strconv.ParseFloat(c.text, 64)
		if err != nil || f < math.MinInt64 || f >= math.MaxInt64 {
			c.fail(fmt.Errorf(`number "%s" overflows int64`, c.text))
			return 0
		}

		return int64(f)
	}

	c.mismatch("number")
	return 0
}

// Float32 reads a number token as a float32.
func (c *Cursor) Float32() float32 {
	return float32(c.float(32))
}

// Float64 reads a number token as a float64.
func (c *Cursor) Float64() float64 {
	return c.float(64)
}

// ValueAsBool converts the current token to a boolean: non-zero integers and
// the string "true" are true, everything else but the true token is false.
func (c *Cursor) ValueAsBool() bool {
	switch c.tok {
	case True:
		return true
	case Int:
		v, err := strconv.ParseInt(c.text, 10, 64)
		return err == nil && v != 0
	case String:
		return strings.TrimSpace(c.text) == "true"
	}

	return false
}

func (c *Cursor) ValueAsInt() int {
	return int(c.ValueAsInt64())
}

// ValueAsInt64 converts the current token to an int64. Tokens that cannot be
// converted yield 0.
func (c *Cursor) ValueAsInt64() int64 {
	switch c.tok {
	case Int, Float, String:
		s := strings.TrimSpace(c.text)
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v
		}

		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
			return int64(f)
		}
	case True:
		return 1
	}

	return 0
}

// ValueAsFloat64 converts the current token to a float64. Tokens that cannot
// be converted yield 0.
func (c *Cursor) ValueAsFloat64() float64 {
	switch c.tok {
	case Int, Float, String:
		if f, err := strconv.ParseFloat(strings.TrimSpace(c.text), 64); err == nil {
			return f
		}
	case True:
		return 1
	}

	return 0
}

func (c *Cursor) float(bits int) float64 {
	if c.tok != Int && c.tok != Float {
		c.mismatch("number")
		return 0
	}

	f, err := strconv.ParseFloat(c.text, bits)
	if err != nil {
		c.fail(fmt.Errorf(`failed to read number "%s": %w`, c.text, err))
		return 0
	}

	return f
}

func (c *Cursor) set(tok Token, text string) {
	c.tok = tok
	c.text = text
}

func (c *Cursor) top() *frame {
	if len(c.stack) == 0 {
		return nil
	}

	return &c.stack[len(c.stack)-1]
}

func (c *Cursor) pop() {
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}

	c.valueDone()
}

// valueDone marks the end of a value so the enclosing object expects a key.
func (c *Cursor) valueDone() {
	if top := c.top(); top != nil && top.object {
		top.expectKey = true
	}
}

func (c *Cursor) mismatch(want string) {
	c.fail(fmt.Errorf(`expected a %s but the current token is %s`, want, c.tok))
}

func (c *Cursor) fail(err error) {
	if c.err == nil {
		c.err = err
	}

	c.set(None, "")
}
