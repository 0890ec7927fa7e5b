// Package util holds small generic slice helpers shared across packages.
package util

// Map applies mapper to each element of coll and returns the results in order.
// The mapper also receives the element's index.
func Map[A any, B any](coll []A, mapper func(item A, index uint64) B) []B {
	out := make([]B, len(coll))
	for i, item := range coll {
		out[i] = mapper(item, uint64(i))
	}
	return out
}

// Find returns the first element of coll that satisfies criteria.
// The boolean is false when no element matches; later matches are never considered.
func Find[A any](coll []A, criteria func(item A) bool) (A, bool) {
	for _, item := range coll {
		if criteria(item) {
			return item, true
		}
	}
	var zero A
	return zero, false
}
