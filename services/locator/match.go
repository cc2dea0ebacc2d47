package locator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"restaurant-locator/lib/listing"
	"restaurant-locator/lib/textutil"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type MatchResult struct {
	Slug    string
	URL     string
	Skipped bool
	Err     error
}

// Match resolves a blog article URL for every location that does not
// have one yet. Each search call waits on the search rate gate. A
// location that stays unmatched is a warning, not an error, the run
// continues.
func (s Service) Match(ctx context.Context, force bool) ([]MatchResult, error) {
	ctx, span := tracer.Start(ctx, "Match")
	defer span.End()
	span.SetAttributes(attribute.Bool("force", force))

	locations, positions, err := s.loadLocations(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var results []MatchResult
	for i, loc := range locations {
		if !force && loc.HasMatch() {
			slog.Info("location already has a blog url, skipping", "slug", loc.Slug)
			results = append(results, MatchResult{Slug: loc.Slug, URL: loc.URL.Blog, Skipped: true})
			continue
		}

		slog.Info("finding blog url", "slug", loc.Slug)

		matched, err := s.matchOne(ctx, loc, locations[:i])
		if err != nil {
			slog.Warn("search failed", "slug", loc.Slug, "err", err)
			results = append(results, MatchResult{Slug: loc.Slug, Err: err})
			continue
		}
		if matched == "" {
			slog.Warn("could not find a blog url", "slug", loc.Slug)
			results = append(results, MatchResult{Slug: loc.Slug})
			continue
		}

		loc.URL.Blog = matched
		err = s.saveLocation(ctx, loc, positions[i])
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return results, err
		}
		results = append(results, MatchResult{Slug: loc.Slug, URL: matched})
	}
	return results, nil
}

func (s Service) matchOne(ctx context.Context, loc *listing.Location, earlier []*listing.Location) (string, error) {
	// the first description paragraph usually names the dish that
	// got the place onto the blog, it sharpens the query a lot
	desc := textutil.StripMarkdown(textutil.FirstParagraph(loc.Description))
	query := strings.TrimSpace(fmt.Sprintf("site:%s %s %s", s.opts.SearchSite, loc.Name, desc))
	nameQuery := fmt.Sprintf("site:%s %s", s.opts.SearchSite, loc.Name)

	matched, err := s.searchAndPick(ctx, query, loc, earlier)
	if err != nil {
		return "", err
	}
	if matched == "" && query != nameQuery {
		matched, err = s.searchAndPick(ctx, nameQuery, loc, earlier)
		if err != nil {
			return "", err
		}
	}
	return matched, nil
}

func (s Service) searchAndPick(ctx context.Context, query string, loc *listing.Location, earlier []*listing.Location) (string, error) {
	if s.opts.SearchGate != nil {
		err := s.opts.SearchGate.Wait(ctx)
		if err != nil {
			return "", err
		}
	}

	results, err := s.opts.Search.Search(ctx, query)
	if err != nil {
		return "", err
	}

	for _, result := range results {
		// pagination results point at the listing itself
		if strings.Contains(result, "/page/") {
			continue
		}

		for _, other := range earlier {
			if other.URL.Blog == result {
				slog.Warn("location has the same blog url as an earlier one",
					"slug", loc.Slug, "other", other.Slug, "url", result)
			}
		}

		similarity := matchr.JaroWinkler(loc.Slug, resultSlug(result), true)
		if similarity < minSlugSimilarity {
			slog.Warn("search result slug looks unrelated to the location",
				"slug", loc.Slug, "url", result, "similarity", similarity)
		} else {
			slog.Debug("picked search result",
				"slug", loc.Slug, "url", result, "similarity", similarity)
		}
		return result, nil
	}
	return "", nil
}

// Below this an accepted result gets a warning so a bad match can be
// spotted and corrected with --force before the scrape stage runs.
const minSlugSimilarity = 0.6

// resultSlug pulls the article slug out of a search result URL, the
// last non-empty path segment with any query string dropped.
func resultSlug(result string) string {
	result, _, _ = strings.Cut(result, "?")
	result = strings.TrimRight(result, "/")
	if i := strings.LastIndex(result, "/"); i >= 0 {
		result = result[i+1:]
	}
	return result
}
