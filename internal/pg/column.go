package pg

// Column is a table column.
type Column struct {
	Name string
	Type DataType
}

func (c *Column) Clone() *Column {
	return &Column{
		Name: c.Name,
		Type: c.Type.Clone(),
	}
}

func (c *Column) writeString(s *stringBuilder) {
	s.write(c.Name)
	s.write(" ")
	c.Type.writeString(s)
}
