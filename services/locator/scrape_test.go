package locator

import (
	"context"
	"testing"

	"restaurant-locator/lib/htmlutil"
	"restaurant-locator/lib/listing"

	"github.com/stretchr/testify/require"
)

func TestClassifyAnchor(t *testing.T) {
	testCases := []struct {
		name     string
		anchor   htmlutil.Anchor
		expected linkClass
	}{
		{
			name:     "review site",
			anchor:   htmlutil.Anchor{Href: "https://www.yelp.com/biz/pho-corner"},
			expected: classReview,
		},
		{
			name:     "social profile",
			anchor:   htmlutil.Anchor{Href: "https://plus.google.com/+PhoCorner"},
			expected: classSocial,
		},
		{
			name:     "maps link",
			anchor:   htmlutil.Anchor{Href: "https://www.google.com/maps/place/x", Name: "123 Main St"},
			expected: classMaps,
		},
		{
			name:     "maps host without maps path",
			anchor:   htmlutil.Anchor{Href: "https://www.google.com/search?q=x"},
			expected: classExtra,
		},
		{
			name:     "transit by suffix",
			anchor:   htmlutil.Anchor{Href: "https://www.wmata.com/"},
			expected: classTransit,
		},
		{
			name:     "transit by link text",
			anchor:   htmlutil.Anchor{Href: "https://transit.example.com/plan", Name: "Metro Trip Planner"},
			expected: classTransit,
		},
		{
			name:     "transit by restyled link text",
			anchor:   htmlutil.Anchor{Href: "https://transit.example.com/plan", Name: "metro  trip\nplanner"},
			expected: classTransit,
		},
		{
			name:     "thumbnail",
			anchor:   htmlutil.Anchor{Href: "https://example.com/photo.jpg", HasImage: true},
			expected: classThumbnail,
		},
		{
			name:     "generic link",
			anchor:   htmlutil.Anchor{Href: "https://phocorner.example.com/", Name: "Pho Corner"},
			expected: classExtra,
		},
	}

	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, classifyAnchor(DefaultLinkRules, c.anchor))
		})
	}
}

func TestApplyAnchorReviewForceSemantics(t *testing.T) {
	s := Service{opts: Options{Rules: DefaultLinkRules}}
	ctx := context.Background()

	loc := &listing.Location{Content: &listing.Content{}}
	first := htmlutil.Anchor{Href: "https://www.yelp.com/biz/first"}
	second := htmlutil.Anchor{Href: "https://www.yelp.com/biz/second"}

	s.applyAnchor(ctx, loc, first, false)
	require.Equal(t, first.Href, loc.URL.Yelp)

	// existing value wins without force
	s.applyAnchor(ctx, loc, second, false)
	require.Equal(t, first.Href, loc.URL.Yelp)

	s.applyAnchor(ctx, loc, second, true)
	require.Equal(t, second.Href, loc.URL.Yelp)
}

func TestApplyAnchorExtraLinkDedupe(t *testing.T) {
	s := Service{opts: Options{Rules: DefaultLinkRules}}
	ctx := context.Background()

	loc := &listing.Location{Content: &listing.Content{}}
	a := htmlutil.Anchor{Href: "https://phocorner.example.com/", Name: "Pho Corner"}

	s.applyAnchor(ctx, loc, a, false)
	s.applyAnchor(ctx, loc, a, false)
	require.Len(t, loc.Content.A, 1)

	// force replaces the stale entry instead of duplicating it
	refreshed := htmlutil.Anchor{Href: "https://phocorner.example.com/", Name: "Pho Corner (new)"}
	s.applyAnchor(ctx, loc, refreshed, true)
	require.Len(t, loc.Content.A, 1)
	require.Equal(t, "Pho Corner (new)", loc.Content.A[0].Name)
}

func TestApplyAnchorMapsRecordsRawAddress(t *testing.T) {
	s := Service{opts: Options{Rules: DefaultLinkRules}}
	ctx := context.Background()

	loc := &listing.Location{Content: &listing.Content{}}
	s.applyAnchor(ctx, loc, htmlutil.Anchor{
		Href: "https://www.google.com/maps/place/x",
		Name: "123 Main St NW",
	}, false)

	require.Equal(t, "https://www.google.com/maps/place/x", loc.URL.Maps)
	require.Equal(t, "123 Main St NW", loc.RawAddress)
}
