// Package compare provides composable comparison functions for ordering
// values with the standard library sorts. A [Comparator] is a plain function
// value that can be passed directly to [slices.SortFunc] and friends, and
// combined with other comparators to express multi-key orderings.
//
// # Comparator Contract
//
// A Comparator returns a negative number when a sorts before b, zero when the
// two are equivalent for ordering purposes, and a positive number when a sorts
// after b. Every Comparator built by this package satisfies the total order
// contract required by comparison sorts:
//
//   - Reflexivity: c(a, a) == 0
//   - Antisymmetry: c(a, b) and c(b, a) have opposite signs, or are both zero
//   - Transitivity: c(a, b) <= 0 and c(b, c) <= 0 imply c(a, c) <= 0
//
// Comparators built from components that honour the contract honour it too.
// The comparetest package verifies the contract over sample values.
//
// # Building Comparators
//
// Start from a key-extraction function and derive a comparator from it:
//
//	byName := compare.Comparing(func(h Human) string { return h.Name })
//	byAge := compare.Comparing(func(h Human) int { return h.Age })
//
// Resolve ties with then-by composition, and flip an ordering with Reverse:
//
//	byNameThenAge := compare.ThenBy(byName, byAge)
//	slices.SortFunc(people, byNameThenAge.Reversed())
//
// Keys that do not have a natural order are compared with ComparingFunc, which
// takes the comparator for the key explicitly:
//
//	byNameCollated := compare.ComparingFunc(func(h Human) string { return h.Name }, collator.Comparator())
//
// # Absent Keys
//
// Comparators never guess an ordering for missing keys. When a key is optional
// and represented by a pointer, wrap the key comparator with [NilFirst] or
// [NilLast] to decide explicitly where nil keys belong.
package compare
