package testutil

// DatabaseError is the generic message used by mocked repository failures.
const DatabaseError = "database error occurred"

// Ptr returns a pointer to the given value, for optional model fields.
func Ptr[T any](v T) *T {
	return &v
}
