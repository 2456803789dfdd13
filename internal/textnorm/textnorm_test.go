package textnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Organic Fresh Bananas":     "organic fresh bananas",
		"Ben & Jerry's Ice-Cream!!": "ben jerry s ice cream",
		"Oatly™ Oat-Milk®":          "oatly oat milk",
		"  Crème Brûlée  ":          "creme brulee",
		"":                          "",
		"---":                       "",
	}
	for in, want := range cases {
		require.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestSingularize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"berries":  "berry",
		"tomatoes": "tomato",
		"bananas":  "banana",
		"slices":   "slic",
		// below the length floor, untouched
		"gas": "gas",
		"ies": "ies",
		"es":  "es",
		// three runes even though four bytes
		"öes": "öes",
	}
	for in, want := range cases {
		require.Equal(t, want, Singularize(in), "input %q", in)
	}
}

func TestTokenizeIncludesSingulars(t *testing.T) {
	t.Parallel()

	tokens := Tokenize("Fresh Strawberries & Tomatoes")
	for _, want := range []string{"fresh", "strawberries", "strawberry", "tomatoes", "tomato"} {
		require.True(t, tokens[want], "missing token %q", want)
	}
}
