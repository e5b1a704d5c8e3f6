// Package common holds small helpers shared across layers.
package common

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
