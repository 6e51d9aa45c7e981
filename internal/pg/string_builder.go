package pg

import "strings"

// stringBuilder writes the text of the String methods of this package. Text
// that starts a line is indented by two spaces per level.
type stringBuilder struct {
	buf       strings.Builder
	depth     int
	lineStart bool
}

func (s *stringBuilder) indent() {
	s.depth += 1
}

func (s *stringBuilder) dedent() {
	s.depth -= 1
}

func (s *stringBuilder) newLine() {
	s.buf.WriteByte('\n')
	s.lineStart = true
}

func (s *stringBuilder) write(str string) {
	s.pad()
	s.buf.WriteString(str)
}

func (s *stringBuilder) writeByte(b byte) {
	s.pad()
	s.buf.WriteByte(b)
}

func (s *stringBuilder) pad() {
	if !s.lineStart {
		return
	}

	s.lineStart = false
	s.buf.WriteString(strings.Repeat("  ", s.depth))
}

func (s *stringBuilder) String() string {
	return s.buf.String()
}
