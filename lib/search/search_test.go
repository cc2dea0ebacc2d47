package search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveRedirect(t *testing.T) {
	testCases := []struct {
		name     string
		href     string
		expected string
	}{
		{
			name:     "uddg redirect",
			href:     "//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Findex.php%2Fdish%2F&rut=abc",
			expected: "https://example.com/index.php/dish/",
		},
		{
			name:     "direct link",
			href:     "https://example.com/about/",
			expected: "https://example.com/about/",
		},
		{
			name:     "redirect without target",
			href:     "//duckduckgo.com/l/?rut=abc",
			expected: "",
		},
	}

	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, resolveRedirect(c.href))
		})
	}
}

func TestManualSearch(t *testing.T) {
	var out strings.Builder
	provider := NewManual(strings.NewReader("https://example.com/post/\n\n"), &out)

	results, err := provider.Search(context.Background(), "first query")
	require.NoError(t, err)
	require.Equal(t, []string{"https://example.com/post/"}, results)
	require.Contains(t, out.String(), "first query")

	results, err = provider.Search(context.Background(), "second query")
	require.NoError(t, err)
	require.Empty(t, results)
}
