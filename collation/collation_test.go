package collation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/notorious-go/compare"
	"github.com/notorious-go/compare/collation"
	"github.com/notorious-go/compare/comparetest"
)

func TestCollatorOrdersAccentedLetters(t *testing.T) {
	names := []string{"Zack", "Élodie", "Eli"}

	bytewise := compare.Natural[string]().Sorted(names)
	assert.Equal(t, []string{"Eli", "Zack", "Élodie"}, bytewise)

	c := collation.New(language.English)
	collated := c.Comparator().Sorted(names)
	assert.Equal(t, []string{"Eli", "Élodie", "Zack"}, collated)

	c.Sort(names)
	assert.Equal(t, []string{"Eli", "Élodie", "Zack"}, names)
}

func TestCollatorOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []collation.Option
		a, b string
		want int
	}{
		{name: "CaseSensitive", a: "alice", b: "Alice", want: -1},
		{name: "IgnoreCase", opts: []collation.Option{collation.IgnoreCase()}, a: "alice", b: "Alice", want: 0},
		{name: "IgnoreDiacritics", opts: []collation.Option{collation.IgnoreDiacritics()}, a: "Elodie", b: "Élodie", want: 0},
		{name: "IgnoreWidth", opts: []collation.Option{collation.IgnoreWidth()}, a: "ＡＢＣ", b: "ABC", want: 0},
		{name: "Loose", opts: []collation.Option{collation.Loose()}, a: "elodie", b: "ÉLODIE", want: 0},
		{name: "Lexical", a: "item10", b: "item2", want: -1},
		{name: "Numeric", opts: []collation.Option{collation.Numeric()}, a: "item10", b: "item2", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := collation.New(language.English, tt.opts...)
			assert.Equal(t, tt.want, sign(c.Compare(tt.a, tt.b)))
		})
	}
}

func TestParse(t *testing.T) {
	c, err := collation.Parse("en-US")
	require.NoError(t, err)
	assert.Equal(t, "en-US", c.Tag().String())

	_, err = collation.Parse("not a tag")
	assert.ErrorIs(t, err, collation.ErrInvalidTag)
}

func TestCollatorContract(t *testing.T) {
	c := collation.New(language.English, collation.Numeric())
	samples := []string{"", "a", "A", "b", "Élodie", "Eli", "eli", "item2", "item10", "Zack", "zack"}
	comparetest.Test(t, c.Comparator(), samples)
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
