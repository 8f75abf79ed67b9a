package compare_test

import (
	"fmt"
	"slices"

	"github.com/notorious-go/compare"
)

type planet struct {
	Name     string
	Moons    int
	Distance float64
}

var planets = []planet{
	{"Mercury", 0, 0.4},
	{"Venus", 0, 0.7},
	{"Earth", 1, 1.0},
	{"Mars", 2, 1.5},
}

// This example derives comparators from key-extraction functions and passes
// them straight to the slices package.
func ExampleComparing() {
	byName := compare.Comparing(func(p planet) string { return p.Name })
	byDistance := compare.Comparing(func(p planet) float64 { return p.Distance })

	s := slices.Clone(planets)
	slices.SortFunc(s, byName)
	fmt.Println(s)
	slices.SortFunc(s, byDistance.Reversed())
	fmt.Println(s)

	// Output:
	// [{Earth 1 1} {Mars 2 1.5} {Mercury 0 0.4} {Venus 0 0.7}]
	// [{Mars 2 1.5} {Earth 1 1} {Venus 0 0.7} {Mercury 0 0.4}]
}

// This example resolves ties on the number of moons by name.
func ExampleThenBy() {
	byMoons := compare.Comparing(func(p planet) int { return p.Moons })
	byName := compare.Comparing(func(p planet) string { return p.Name })

	for _, p := range compare.ThenBy(byMoons, byName.Reversed()).Sorted(planets) {
		fmt.Println(p.Moons, p.Name)
	}

	// Output:
	// 0 Venus
	// 0 Mercury
	// 1 Earth
	// 2 Mars
}

// This example places planets with an unknown number of rings last, without
// inventing a default ring count for them.
func ExampleNilLast() {
	three, zero := 3, 0
	rings := map[string]*int{"Neptune": &three, "Venus": &zero, "Pluto": nil}
	names := []string{"Pluto", "Neptune", "Venus"}

	byRings := compare.ComparingFunc(func(name string) *int { return rings[name] }, compare.NilLast(compare.Natural[int]()))
	fmt.Println(byRings.Sorted(names))

	// Output:
	// [Venus Neptune Pluto]
}
