package jsonstream

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

type scope struct {
	object bool
	count  int
}

// Writer writes a JSON stream token by token, placing commas and colons.
type Writer struct {
	w         *bufio.Writer
	stack     []scope
	afterName bool
	roots     int
	err       error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Err() error {
	return w.err
}

// Flush writes buffered output to the underlying writer. It reports the first
// error of the stream, including unclosed objects and arrays.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}

	if len(w.stack) > 0 {
		w.fail(errors.New("unclosed object or array"))
		return w.err
	}

	if err := w.w.Flush(); err != nil {
		w.fail(err)
	}

	return w.err
}

func (w *Writer) WriteStartObject() {
	w.open(true, '{')
}

func (w *Writer) WriteEndObject() {
	w.close(true, '}')
}

func (w *Writer) WriteStartArray() {
	w.open(false, '[')
}

func (w *Writer) WriteEndArray() {
	w.close(false, ']')
}

// WriteFieldName writes an object key. The next write is its value.
func (w *Writer) WriteFieldName(name string) {
	if w.err != nil {
		return
	}

	top := w.top()
	if top == nil || !top.object || w.afterName {
		w.fail(fmt.Errorf(`field name "%s" written outside of an object`, name))
		return
	}

	if top.count > 0 {
		w.raw(",")
	}
	top.count++

	w.quoted(name)
	w.raw(":")
	w.afterName = true
}

func (w *Writer) WriteString(v string) {
	if w.value() {
		w.quoted(v)
	}
}

func (w *Writer) WriteBool(v bool) {
	if w.value() {
		w.raw(strconv.FormatBool(v))
	}
}

func (w *Writer) WriteInt(v int) {
	if w.value() {
		w.raw(strconv.Itoa(v))
	}
}

func (w *Writer) WriteInt64(v int64) {
	if w.value() {
		w.raw(strconv.FormatInt(v, 10))
	}
}

func (w *Writer) WriteFloat32(v float32) {
	w.float(float64(v), 32)
}

func (w *Writer) WriteFloat64(v float64) {
	w.float(v, 64)
}

func (w *Writer) WriteNull() {
	if w.value() {
		w.raw("null")
	}
}

func (w *Writer) WriteStringField(name string, v string) {
	w.WriteFieldName(name)
	w.WriteString(v)
}

func (w *Writer) WriteBoolField(name string, v bool) {
	w.WriteFieldName(name)
	w.WriteBool(v)
}

func (w *Writer) WriteIntField(name string, v int) {
	w.WriteFieldName(name)
	w.WriteInt(v)
}

func (w *Writer) WriteInt64Field(name string, v int64) {
	w.WriteFieldName(name)
	w.WriteInt64(v)
}

func (w *Writer) WriteFloat32Field(name string, v float32) {
	w.WriteFieldName(name)
	w.WriteFloat32(v)
}

func (w *Writer) WriteFloat64Field(name string, v float64) {
	w.WriteFieldName(name)
	w.WriteFloat64(v)
}

func (w *Writer) float(v float64, bits int) {
	if w.err != nil {
		return
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		w.fail(fmt.Errorf("unsupported number %v", v))
		return
	}

	if w.value() {
		w.raw(strconv.FormatFloat(v, 'g', -1, bits))
	}
}

func (w *Writer) open(object bool, delim byte) {
	if w.value() {
		w.raw(string(delim))
		w.stack = append(w.stack, scope{object: object})
	}
}

func (w *Writer) close(object bool, delim byte) {
	if w.err != nil {
		return
	}

	top := w.top()
	if top == nil || top.object != object || w.afterName {
		w.fail(fmt.Errorf("unexpected %c", delim))
		return
	}

	w.stack = w.stack[:len(w.stack)-1]
	w.raw(string(delim))
}

// value prepares the stream for one value and reports whether it may be written.
func (w *Writer) value() bool {
	if w.err != nil {
		return false
	}

	if w.afterName {
		w.afterName = false
		return true
	}

	top := w.top()
	switch {
	case top == nil:
		if w.roots > 0 {
			w.raw(" ")
		}
		w.roots++
	case top.object:
		w.fail(errors.New("value written without a field name"))
		return false
	default:
		if top.count > 0 {
			w.raw(",")
		}
		top.count++
	}

	return w.err == nil
}

func (w *Writer) top() *scope {
	if len(w.stack) == 0 {
		return nil
	}

	return &w.stack[len(w.stack)-1]
}

func (w *Writer) quoted(s string) {
	b, err := json.Marshal(s)
	if err != nil {
		w.fail(err)
		return
	}

	if _, err := w.w.Write(b); err != nil {
		w.fail(err)
	}
}

func (w *Writer) raw(s string) {
	if _, err := w.w.WriteString(s); err != nil {
		w.fail(err)
	}
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}
