package ptr

// V returns a pointer to a copy of v.
func V[T any](v T) *T {
	return &v
}
