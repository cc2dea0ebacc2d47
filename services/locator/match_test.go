package locator

import (
	"context"
	"strings"
	"testing"

	"restaurant-locator/lib/testutil"
	"restaurant-locator/services/locator/db"

	"github.com/antzucaro/matchr"
	"github.com/stretchr/testify/require"
)

func TestResultSlug(t *testing.T) {
	testCases := []struct {
		url      string
		expected string
	}{
		{url: "https://example.com/index.php/2020/01/pho-corner/", expected: "pho-corner"},
		{url: "https://example.com/index.php/2020/01/pho-corner", expected: "pho-corner"},
		{url: "https://example.com/pho-corner/?utm_source=x", expected: "pho-corner"},
		{url: "pho-corner", expected: "pho-corner"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, resultSlug(tc.url))
	}
}

func TestResultSlugSimilarity(t *testing.T) {
	// the article slug usually repeats the location slug, so the right
	// result scores above the warning threshold and a stray one below
	right := matchr.JaroWinkler("pho-corner", resultSlug("https://example.com/index.php/2020/01/pho-corner/"), true)
	require.GreaterOrEqual(t, right, minSlugSimilarity)

	stray := matchr.JaroWinkler("pho-corner", resultSlug("https://example.com/index.php/2020/01/six-burgers-to-try/"), true)
	require.Less(t, stray, minSlugSimilarity)
}

// A result whose slug looks unrelated is warned about but still
// accepted, the operator corrects bad matches with --force.
func TestMatchAcceptsDissimilarResult(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/locator/match",
		DbSchema: db.Schema,
	})
	defer cleanup()

	search := &fakeSearch{results: map[string][]string{
		"Pho Corner": {"https://example.com/index.php/2020/01/six-burgers-to-try/"},
	}}
	service := NewService(setup.DB, Options{
		Search:     search,
		SearchSite: "example.com",
	})
	ctx := context.Background()

	_, err := service.ImportListing(ctx, strings.NewReader(sampleListing))
	require.NoError(t, err)

	results, err := service.Match(ctx, false)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/index.php/2020/01/six-burgers-to-try/", results[0].URL)
}
