// Package collation orders text the way people of a given locale expect,
// rather than by the bytes of its UTF-8 encoding. It wraps
// golang.org/x/text/collate so that a locale-aware ordering can be used
// wherever a compare.Comparator[string] is accepted.
//
// Byte order places every accented or non-Latin letter after "Z"; a Collator
// for English sorts "Élodie" between "Eli" and "Zack":
//
//	c := collation.New(language.English)
//	slices.SortFunc(names, c.Comparator())
package collation

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/notorious-go/compare"
)

// ErrInvalidTag is returned by Parse for strings that are not well-formed BCP
// 47 language tags.
var ErrInvalidTag = errors.New("collation: invalid language tag")

// An Option adjusts the strength of a Collator.
type Option func(*options)

type options struct {
	collate []collate.Option
}

// IgnoreCase makes letters that differ only in case compare equal.
func IgnoreCase() Option {
	return func(o *options) { o.collate = append(o.collate, collate.IgnoreCase) }
}

// IgnoreDiacritics makes letters that differ only in accents compare equal.
func IgnoreDiacritics() Option {
	return func(o *options) { o.collate = append(o.collate, collate.IgnoreDiacritics) }
}

// IgnoreWidth makes full-width and half-width forms compare equal.
func IgnoreWidth() Option {
	return func(o *options) { o.collate = append(o.collate, collate.IgnoreWidth) }
}

// Loose combines IgnoreCase, IgnoreDiacritics and IgnoreWidth.
func Loose() Option {
	return func(o *options) { o.collate = append(o.collate, collate.Loose) }
}

// Numeric orders runs of digits by their numeric value, so "item2" sorts
// before "item10".
func Numeric() Option {
	return func(o *options) { o.collate = append(o.collate, collate.Numeric) }
}

// A Collator compares strings according to the rules of a locale.
//
// A Collator is safe for concurrent use. The underlying collate.Collator keeps
// scratch buffers between calls, so comparisons are serialized.
type Collator struct {
	tag language.Tag

	mu sync.Mutex
	c  *collate.Collator
}

// New returns a Collator for the given locale.
func New(tag language.Tag, opts ...Option) *Collator {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Collator{
		tag: tag,
		c:   collate.New(tag, o.collate...),
	}
}

// Parse returns a Collator for the locale named by the BCP 47 tag s, such as
// "en-US" or "de-u-co-phonebk".
func Parse(s string, opts ...Option) (*Collator, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTag, s, err)
	}
	return New(tag, opts...), nil
}

// Tag returns the locale of the Collator.
func (c *Collator) Tag() language.Tag {
	return c.tag
}

// Compare returns an integer comparing a and b in the collation order of the
// locale: negative if a sorts before b, zero if they are equivalent, and
// positive if a sorts after b.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}

// Comparator returns the collation order as a compare.Comparator.
func (c *Collator) Comparator() compare.Comparator[string] {
	return c.Compare
}

// Sort sorts s in place in the collation order of the locale.
func (c *Collator) Sort(s []string) {
	c.Comparator().Sort(s)
}
