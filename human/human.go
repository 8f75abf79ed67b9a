// Package human defines the Human record and the orderings used to sort
// collections of them: by name, by age, and by name then age.
//
// The orderings are available in several equivalent forms. The comparators
// ByName, ByAge and ByNameThenAge are function values built from method
// expressions, CompareByNameThenAge is a plain function, and the Compare
// method lets a Human order itself:
//
//	slices.SortFunc(people, human.ByNameThenAge)
//	slices.SortFunc(people, human.CompareByNameThenAge)
//	slices.SortFunc(people, compare.Method[human.Human]())
package human

import (
	"cmp"
	"fmt"

	"github.com/notorious-go/compare"
	"github.com/notorious-go/compare/collation"
)

// Human is an immutable record of a person's name and age. Humans are
// compared by value and carry no identity beyond their fields.
type Human struct {
	name string
	age  int
}

// New returns a Human with the given name and age. Neither is validated.
func New(name string, age int) Human {
	return Human{name: name, age: age}
}

// Name returns the name of h.
func (h Human) Name() string {
	return h.name
}

// Age returns the age of h.
func (h Human) Age() int {
	return h.age
}

// String formats h as "Name(Age)".
func (h Human) String() string {
	return fmt.Sprintf("%s(%d)", h.name, h.age)
}

// Compare orders h relative to other by name, then by age. It makes Human a
// compare.Comparable.
func (h Human) Compare(other Human) int {
	return CompareByNameThenAge(h, other)
}

// CompareByNameThenAge orders a and b by name in byte-wise lexical order, and
// orders humans sharing a name by age.
func CompareByNameThenAge(a, b Human) int {
	if a.name == b.name {
		return cmp.Compare(a.age, b.age)
	}
	return cmp.Compare(a.name, b.name)
}

var (
	// ByName orders humans by name in byte-wise lexical order.
	ByName = compare.Comparing(Human.Name)

	// ByAge orders humans by age, youngest first.
	ByAge = compare.Comparing(Human.Age)

	// ByNameThenAge orders humans by name, and humans sharing a name by age.
	ByNameThenAge = compare.ThenBy(ByName, ByAge)
)

// ByNameCollated orders humans by name in the collation order of c, and
// humans whose names collate equally by age.
func ByNameCollated(c *collation.Collator) compare.Comparator[Human] {
	return compare.ComparingFunc(Human.Name, c.Comparator()).ThenBy(ByAge)
}

// Sort sorts hs in place by name, then age.
func Sort(hs []Human) {
	ByNameThenAge.Sort(hs)
}
