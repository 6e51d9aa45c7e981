package jsonstream

import (
	"math"
	"strings"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestWriterObject(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)

	w.WriteStartObject()
	w.WriteStringField("name", "Rex \"the\" dog")
	w.WriteIntField("age", 3)
	w.WriteInt64Field("id", 9007199254740993)
	w.WriteBoolField("good", true)
	w.WriteFloat32Field("weight", 12.5)
	w.WriteFloat64Field("ratio", 0.1)
	w.WriteFieldName("tags")
	w.WriteStartArray()
	w.WriteString("a")
	w.WriteString("b")
	w.WriteEndArray()
	w.WriteFieldName("empty")
	w.WriteStartObject()
	w.WriteEndObject()
	w.WriteEndObject()

	assert.NoError(t, w.Flush())
	assert.Equal(t,
		`{"name":"Rex \"the\" dog","age":3,"id":9007199254740993,"good":true,"weight":12.5,"ratio":0.1,"tags":["a","b"],"empty":{}}`,
		sb.String(),
	)
}

func TestWriterArrayOfObjects(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)

	w.WriteStartArray()
	for i := 0; i < 2; i++ {
		w.WriteStartObject()
		w.WriteIntField("i", i)
		w.WriteEndObject()
	}
	w.WriteNull()
	w.WriteEndArray()

	assert.NoError(t, w.Flush())
	assert.Equal(t, `[{"i":0},{"i":1},null]`, sb.String())
}

func TestWriterFloat32Shortest(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)

	w.WriteFloat32(0.1)

	assert.NoError(t, w.Flush())
	assert.Equal(t, "0.1", sb.String())
}

func TestWriterRootValues(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)

	w.WriteInt(1)
	w.WriteInt(2)

	assert.NoError(t, w.Flush())
	assert.Equal(t, "1 2", sb.String())
}

func TestWriterErrors(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *Writer)
		err   string
	}{
		{
			name:  "value without name",
			write: func(w *Writer) { w.WriteStartObject(); w.WriteInt(1) },
			err:   "value written without a field name",
		},
		{
			name:  "name outside object",
			write: func(w *Writer) { w.WriteStartArray(); w.WriteFieldName("a") },
			err:   `field name "a" written outside of an object`,
		},
		{
			name:  "mismatched end",
			write: func(w *Writer) { w.WriteStartObject(); w.WriteEndArray() },
			err:   "unexpected ]",
		},
		{
			name:  "unclosed",
			write: func(w *Writer) { w.WriteStartArray() },
			err:   "unclosed object or array",
		},
		{
			name:  "nan",
			write: func(w *Writer) { w.WriteFloat64(math.NaN()) },
			err:   "unsupported number NaN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			w := NewWriter(&sb)

			tt.write(w)

			assert.EqualError(t, w.Flush(), tt.err)
		})
	}
}

func TestWriterErrorIsSticky(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)

	w.WriteStartObject()
	w.WriteEndArray()
	w.WriteEndObject()

	assert.EqualError(t, w.Err(), "unexpected ]")
}
