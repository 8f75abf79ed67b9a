package compare

import (
	"cmp"
)

// Comparator is a comparison function defining an ordering of values of type T.
// It reports whether a sorts before b (negative), after b (positive), or
// neither (zero).
//
// A Comparator has the same shape as the comparison functions accepted by the
// slices package, so it can be passed to [slices.SortFunc],
// [slices.SortStableFunc], [slices.BinarySearchFunc] and others directly.
//
// The zero Comparator is nil and must not be called.
type Comparator[T any] func(a, b T) int

// Interface is implemented by comparison objects that order values of type T
// through a single method.
type Interface[T any] interface {
	Compare(a, b T) int
}

// Comparable is implemented by types that can compare themselves to another
// value of the same type.
type Comparable[T any] interface {
	Compare(other T) int
}

// Compare calls c(a, b). It makes every Comparator an [Interface].
func (c Comparator[T]) Compare(a, b T) int {
	return c(a, b)
}

// Of returns the Comparator calling i.Compare.
func Of[T any](i Interface[T]) Comparator[T] {
	// Avoid another level of indirection for values that are already functions.
	if c, ok := i.(Comparator[T]); ok {
		return c
	}
	return i.Compare
}

// Natural returns the natural order of an ordered type, as defined by
// [cmp.Compare]. Integers are compared without subtraction, so the result is
// correct across the whole range of the type.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Method returns a Comparator that orders values using their own Compare
// method, so that Method[T]()(a, b) is a.Compare(b).
func Method[T Comparable[T]]() Comparator[T] {
	return func(a, b T) int {
		return a.Compare(b)
	}
}

// Comparing returns a Comparator that orders values by the natural order of
// the key extracted from them.
//
// The key extraction function is called once per value per comparison, so it
// should be cheap. For keys that are expensive to derive, sort a slice of
// precomputed keys instead.
func Comparing[T any, K cmp.Ordered](keyOf func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(keyOf(a), keyOf(b))
	}
}

// ComparingFunc returns a Comparator that orders values by comparing the keys
// extracted from them with keyCompare.
func ComparingFunc[T, K any](keyOf func(T) K, keyCompare Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return keyCompare(keyOf(a), keyOf(b))
	}
}

// ThenBy returns a Comparator that orders values by primary and resolves ties
// with each of the rest in turn. The result is that of the first comparator
// reporting a non-zero result, or zero when all of them consider the values
// equivalent.
//
// Composition is associative: ThenBy(a, ThenBy(b, c)) and ThenBy(ThenBy(a, b), c)
// define the same ordering as ThenBy(a, b, c).
func ThenBy[T any](primary Comparator[T], rest ...Comparator[T]) Comparator[T] {
	if len(rest) == 0 {
		return primary
	}
	chain := make([]Comparator[T], 0, len(rest)+1)
	chain = append(chain, primary)
	chain = append(chain, rest...)
	return func(a, b T) int {
		for _, c := range chain {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// ThenBy is the method form of the ThenBy function, so that c.ThenBy(d) is
// ThenBy(c, d).
func (c Comparator[T]) ThenBy(next ...Comparator[T]) Comparator[T] {
	return ThenBy(c, next...)
}

// Reverse returns a Comparator imposing the reverse ordering of c.
//
// The reversed comparator swaps its arguments rather than negating the
// result, which keeps it correct for comparators that return math.MinInt.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Reversed is the method form of Reverse.
func (c Comparator[T]) Reversed() Comparator[T] {
	return Reverse(c)
}

// NilFirst returns a Comparator of pointers that orders nil before any
// non-nil pointer, and compares non-nil pointers by the values they point to.
// Two nil pointers are equivalent.
func NilFirst[T any](c Comparator[T]) Comparator[*T] {
	return nilOrder(c, -1)
}

// NilLast returns a Comparator of pointers that orders nil after any non-nil
// pointer, and compares non-nil pointers by the values they point to. Two nil
// pointers are equivalent.
func NilLast[T any](c Comparator[T]) Comparator[*T] {
	return nilOrder(c, +1)
}

// nilOrder places nil pointers on the side given by nilSign.
func nilOrder[T any](c Comparator[T], nilSign int) Comparator[*T] {
	return func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return nilSign
		case b == nil:
			return -nilSign
		}
		return c(*a, *b)
	}
}
