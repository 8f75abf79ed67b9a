// Package comparetest provides utilities for testing comparators. It verifies
// that a compare.Comparator honours the total order contract over a set of
// sample values, which is what every comparison sort relies on.
//
// # Overview
//
// [Verify] checks every sample, pair and triple of samples and returns all
// violations of the contract at once. [Test] does the same and reports the
// violations as test failures:
//
//	samples := []human.Human{human.New("Sarah", 12), human.New("Sarah", 10), human.New("Zack", 12)}
//	comparetest.Test(t, human.ByNameThenAge, samples)
//
// The checks grow with the cube of the number of samples, so a few dozen
// well-chosen values (duplicates, ties on the primary key, extremes) serve
// better than many random ones. Samples are checked concurrently; see
// [WithLimit].
package comparetest

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/notorious-go/compare"
	"github.com/notorious-go/compare/internal/semaphore"
)

// The properties of the total order contract. A *Violation wraps exactly one
// of them, so errors.Is(err, ErrTransitivity) tells which property failed.
var (
	ErrReflexivity  = errors.New("comparator is not reflexive")
	ErrAntisymmetry = errors.New("comparator is not antisymmetric")
	ErrTransitivity = errors.New("comparator is not transitive")
)

// ErrPanicked is reported by Verify when the comparator or the formatter
// panics while checking a sample.
var ErrPanicked = errors.New("comparator panicked")

// A Violation describes samples on which a comparator breaks the contract.
type Violation struct {
	// Err is the property that was violated: ErrReflexivity, ErrAntisymmetry or
	// ErrTransitivity.
	Err error
	// Indexes are the positions in the samples slice of the offending values,
	// in the order they were passed to the comparator.
	Indexes []int
	// Detail shows the comparisons that break the property.
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%v: samples %v: %s", v.Err, v.Indexes, v.Detail)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// An Option configures Verify, Test and CheckSorted.
type Option func(*config)

type config struct {
	limit  int
	format func(any) string
}

// WithLimit limits the number of samples checked concurrently to n. A negative
// value means no limit. The default, also used for n == 0, is GOMAXPROCS.
func WithLimit(n int) Option {
	return func(c *config) { c.limit = n }
}

// WithFormatter sets how samples are printed in violations. The default is
// fmt.Sprint, which is also used for samples that are not of type T.
func WithFormatter[T any](format func(T) string) Option {
	return func(c *config) {
		c.format = func(v any) string {
			if t, ok := v.(T); ok {
				return format(t)
			}
			return fmt.Sprint(v)
		}
	}
}

func newConfig(opts []Option) config {
	c := config{format: func(v any) string { return fmt.Sprint(v) }}
	for _, opt := range opts {
		opt(&c)
	}
	if c.limit == 0 {
		c.limit = runtime.GOMAXPROCS(0)
	}
	return c
}

// Verify checks that c honours the total order contract over the samples:
//
//   - Reflexivity: c(a, a) == 0 for every sample a.
//   - Antisymmetry: c(a, b) and c(b, a) have opposite signs, or are both zero,
//     for every pair of samples.
//   - Transitivity: c(a, b) <= 0 and c(b, d) <= 0 imply c(a, d) <= 0 for every
//     triple of samples.
//
// It returns nil if the contract holds, or a *multierror.Error listing every
// *Violation found, ordered by the index of the first sample involved. A panic
// while checking a sample is reported as an error wrapping ErrPanicked, in
// place of that sample's violations.
func Verify[T any](c compare.Comparator[T], samples []T, opts ...Option) error {
	cfg := newConfig(opts)
	ck := checker[T]{c: c, samples: samples, format: cfg.format}

	// Each anchor writes only to its own slot, so the slots need no lock and the
	// violations come out in a deterministic order.
	found := make([][]error, len(samples))

	sem := semaphore.New(cfg.limit)
	var wg sync.WaitGroup
	for i := range samples {
		i := i // per-iteration copy for the goroutine (implicit from Go 1.22)
		sem.Acquire()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release()
			defer func() {
				if r := recover(); r != nil {
					found[i] = []error{fmt.Errorf("%w: sample %d: %v", ErrPanicked, i, r)}
				}
			}()
			found[i] = ck.anchoredAt(i)
		}()
	}
	wg.Wait()

	var result *multierror.Error
	for _, errs := range found {
		result = multierror.Append(result, errs...)
	}
	return result.ErrorOrNil()
}

// Test verifies c with Verify and reports each violation as a test error.
func Test[T any](t testing.TB, c compare.Comparator[T], samples []T, opts ...Option) {
	t.Helper()

	err := Verify(c, samples, opts...)
	if err == nil {
		return
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Error(err)
		return
	}
	for _, e := range merr.Errors {
		t.Error(e)
	}
}

// CheckSorted reports a test error for every adjacent pair of s that is out of
// order according to c. Elements are printed as configured by WithFormatter;
// WithLimit has no effect.
func CheckSorted[T any](t testing.TB, c compare.Comparator[T], s []T, opts ...Option) {
	t.Helper()

	cfg := newConfig(opts)
	for i := 1; i < len(s); i++ {
		if c(s[i-1], s[i]) > 0 {
			t.Errorf("elements %d and %d are out of order: %s > %s", i-1, i, cfg.format(s[i-1]), cfg.format(s[i]))
		}
	}
}

// checker runs the contract checks for a single comparator.
type checker[T any] struct {
	c       compare.Comparator[T]
	samples []T
	format  func(any) string
}

// anchoredAt checks every property whose first sample is samples[i]. Pairs are
// checked once, with i as the smaller index.
func (ck checker[T]) anchoredAt(i int) []error {
	var errs []error
	a := ck.samples[i]

	if r := ck.c(a, a); r != 0 {
		errs = append(errs, &Violation{
			Err:     ErrReflexivity,
			Indexes: []int{i},
			Detail:  fmt.Sprintf("compare(%s, %s) = %d", ck.format(a), ck.format(a), r),
		})
	}

	for j := i + 1; j < len(ck.samples); j++ {
		b := ck.samples[j]
		ab, ba := ck.c(a, b), ck.c(b, a)
		if sign(ab) != -sign(ba) {
			errs = append(errs, &Violation{
				Err:     ErrAntisymmetry,
				Indexes: []int{i, j},
				Detail: fmt.Sprintf("compare(%s, %s) = %d, compare(%s, %s) = %d",
					ck.format(a), ck.format(b), ab, ck.format(b), ck.format(a), ba),
			})
		}
	}

	for j, b := range ck.samples {
		ab := ck.c(a, b)
		if ab > 0 {
			continue
		}
		for k, d := range ck.samples {
			bd := ck.c(b, d)
			if bd > 0 {
				continue
			}
			if ad := ck.c(a, d); ad > 0 {
				errs = append(errs, &Violation{
					Err:     ErrTransitivity,
					Indexes: []int{i, j, k},
					Detail: strings.Join([]string{
						fmt.Sprintf("compare(%s, %s) = %d", ck.format(a), ck.format(b), ab),
						fmt.Sprintf("compare(%s, %s) = %d", ck.format(b), ck.format(d), bd),
						fmt.Sprintf("compare(%s, %s) = %d", ck.format(a), ck.format(d), ad),
					}, ", "),
				})
			}
		}
	}
	return errs
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
