package cart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://share-a-cart.com/get/t4geu", "T4GEU", true},
		{"https://share-a-cart.com/get/T4GEU?utm=share", "T4GEU", true},
		{"t4geu", "T4GEU", true},
		{"  T4GEU  ", "T4GEU", true},
		{"not a url", "", false},
		{"https://example.com/get/t4geu", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ExtractID(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
