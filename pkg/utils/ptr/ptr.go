// Package ptr has helpers to take pointers of literals.
package ptr

// To returns a pointer to the given value.
func To[T any](v T) *T {
	return &v
}
