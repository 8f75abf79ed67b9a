package compare

import (
	"slices"
)

// Sort sorts s in place in the order defined by c. The sort is stable, so
// elements that c considers equivalent keep their original relative order.
// Sorting an already sorted slice leaves it unchanged.
func (c Comparator[T]) Sort(s []T) {
	slices.SortStableFunc(s, c)
}

// Sorted returns a sorted copy of s, leaving s untouched.
func (c Comparator[T]) Sorted(s []T) []T {
	sorted := slices.Clone(s)
	c.Sort(sorted)
	return sorted
}

// IsSorted reports whether s is sorted in the order defined by c.
func (c Comparator[T]) IsSorted(s []T) bool {
	return slices.IsSortedFunc(s, c)
}

// Min returns the first minimal element of s according to c. It reports false
// for an empty slice.
func (c Comparator[T]) Min(s []T) (m T, ok bool) {
	if len(s) == 0 {
		return m, false
	}
	return slices.MinFunc(s, c), true
}

// Max returns the first maximal element of s according to c. It reports false
// for an empty slice.
func (c Comparator[T]) Max(s []T) (m T, ok bool) {
	if len(s) == 0 {
		return m, false
	}
	return slices.MaxFunc(s, c), true
}
