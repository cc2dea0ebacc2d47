package locator

import (
	"context"
	"log/slog"

	"restaurant-locator/lib/scrapers/blog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type FetchResult struct {
	Slug    string
	Skipped bool
	Err     error
}

// Fetch downloads the wp-json record for every matched location that
// does not have one yet. A url the slug cannot be derived from aborts
// that location only, everything else degrades to a warning.
func (s Service) Fetch(ctx context.Context, force bool) ([]FetchResult, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()
	span.SetAttributes(attribute.Bool("force", force))

	locations, positions, err := s.loadLocations(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var results []FetchResult
	for i, loc := range locations {
		if !loc.HasMatch() {
			slog.Info("location does not have a blog url, skipping", "slug", loc.Slug)
			results = append(results, FetchResult{Slug: loc.Slug, Skipped: true})
			continue
		}
		if !force && loc.HasPost() {
			slog.Info("location already has blog data, skipping", "slug", loc.Slug)
			results = append(results, FetchResult{Slug: loc.Slug, Skipped: true})
			continue
		}

		slog.Info("downloading blog page", "slug", loc.Slug)

		targetSlug, err := blog.SlugFromURL(loc.URL.Blog)
		if err != nil {
			// a malformed stored url is a config mistake, not an
			// external failure, so it surfaces per entity
			slog.Error("cannot derive article slug", "slug", loc.Slug, "url", loc.URL.Blog, "err", err)
			results = append(results, FetchResult{Slug: loc.Slug, Err: err})
			continue
		}

		if s.opts.FetchGate != nil {
			err := s.opts.FetchGate.Wait(ctx)
			if err != nil {
				return results, err
			}
		}

		raw, err := s.opts.Blog.PostsBySlug(ctx, targetSlug)
		if err != nil {
			slog.Warn("could not retrieve blog json", "slug", loc.Slug, "err", err)
			results = append(results, FetchResult{Slug: loc.Slug, Err: err})
			continue
		}

		// an empty post list must not be stored, it would mark the
		// location fetched and starve the scrape stage
		posts, err := blog.ParsePosts(raw)
		if err != nil {
			slog.Warn("blog returned malformed json", "slug", loc.Slug, "err", err)
			results = append(results, FetchResult{Slug: loc.Slug, Err: err})
			continue
		}
		if len(posts) == 0 {
			slog.Warn("blog has no post for slug", "slug", loc.Slug, "articleSlug", targetSlug)
			results = append(results, FetchResult{Slug: loc.Slug, Err: blog.ErrNoPosts})
			continue
		}

		loc.BlogData = raw
		err = s.saveLocation(ctx, loc, positions[i])
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return results, err
		}
		results = append(results, FetchResult{Slug: loc.Slug})
	}
	return results, nil
}
