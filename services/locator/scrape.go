package locator

import (
	"context"
	"log/slog"
	"strings"

	"restaurant-locator/lib/htmlutil"
	"restaurant-locator/lib/listing"
	"restaurant-locator/lib/scrapers/blog"
	"restaurant-locator/lib/textutil"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// LinkRules holds the substring markers that route an article anchor
// to its destination field.
type LinkRules struct {
	// review site, routed to url.yelp
	ReviewMarker string
	// social profile, dropped
	SocialMarker string
	// both must match for url.maps
	MapsHostMarker string
	MapsPathMarker string
	// transit planner links, dropped
	TransitSuffix string
	TransitText   string
}

var DefaultLinkRules = LinkRules{
	ReviewMarker:   "yelp.",
	SocialMarker:   "plus.google.",
	MapsHostMarker: "google.",
	MapsPathMarker: "maps",
	TransitSuffix:  "wmata.com",
	TransitText:    "Metro Trip Planner",
}

type linkClass int

const (
	classExtra linkClass = iota
	classReview
	classSocial
	classMaps
	classTransit
	classThumbnail
)

// classifyAnchor picks exactly one outcome per anchor, in priority
// order. Href markers are plain substring checks, the transit link
// text is matched ignoring case and whitespace since authors style it
// inconsistently.
func classifyAnchor(rules LinkRules, a htmlutil.Anchor) linkClass {
	switch {
	case strings.Contains(a.Href, rules.ReviewMarker):
		return classReview
	case strings.Contains(a.Href, rules.SocialMarker):
		return classSocial
	case strings.Contains(a.Href, rules.MapsHostMarker) && strings.Contains(a.Href, rules.MapsPathMarker):
		return classMaps
	case strings.HasSuffix(strings.TrimSuffix(a.Href, "/"), rules.TransitSuffix),
		textutil.MatchName(a.Name, []string{textutil.NormalizeName(rules.TransitText)}):
		return classTransit
	case a.HasImage:
		return classThumbnail
	default:
		return classExtra
	}
}

type ScrapeResult struct {
	Slug    string
	Links   int
	Skipped bool
	Err     error
}

// Scrape classifies the article anchors and normalizes the remote
// metadata for every location with downloaded blog data.
func (s Service) Scrape(ctx context.Context, force bool) ([]ScrapeResult, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()
	span.SetAttributes(attribute.Bool("force", force))

	locations, positions, err := s.loadLocations(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var results []ScrapeResult
	for i, loc := range locations {
		if !loc.HasPost() {
			slog.Info("location does not have blog data, skipping", "slug", loc.Slug)
			results = append(results, ScrapeResult{Slug: loc.Slug, Skipped: true})
			continue
		}
		if !force && loc.HasScrape() {
			slog.Info("location already scraped, skipping", "slug", loc.Slug)
			results = append(results, ScrapeResult{Slug: loc.Slug, Skipped: true})
			continue
		}

		slog.Info("scraping blog data", "slug", loc.Slug)

		links, err := s.scrapeOne(ctx, loc, force)
		if err != nil {
			slog.Warn("could not scrape blog data", "slug", loc.Slug, "err", err)
			results = append(results, ScrapeResult{Slug: loc.Slug, Err: err})
			continue
		}

		err = s.saveLocation(ctx, loc, positions[i])
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return results, err
		}
		results = append(results, ScrapeResult{Slug: loc.Slug, Links: links})
	}
	return results, nil
}

func (s Service) scrapeOne(ctx context.Context, loc *listing.Location, force bool) (int, error) {
	ctx, span := tracer.Start(ctx, "scrapeOne")
	defer span.End()
	span.SetAttributes(attribute.String("slug", loc.Slug))

	posts, err := blog.ParsePosts(loc.BlogData)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	if len(posts) == 0 {
		span.SetStatus(codes.Error, "blog data holds no posts")
		return 0, blog.ErrNoPosts
	}
	post := posts[0]

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(post.Content.Rendered))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	// links under the recommendation widget point at other articles
	doc.Find("ul.related_post").Remove()

	if loc.Content == nil {
		loc.Content = &listing.Content{}
	}

	anchors := htmlutil.GetAnchors(doc.Find("a"))
	for _, a := range anchors {
		s.applyAnchor(ctx, loc, a, force)
	}

	loc.Name = post.Title.Rendered
	if s.opts.FillDescriptions && loc.Description == "" {
		converter := md.NewConverter("", true, nil)
		desc, err := converter.ConvertString(post.Content.Rendered)
		if err != nil {
			slog.Warn("could not convert article body", "slug", loc.Slug, "err", err)
		} else {
			loc.Description = desc
		}
	}

	date, err := resolveLocalTime(post.Date, post.DateGMT)
	if err != nil {
		slog.Warn("unparseable publish timestamp", "slug", loc.Slug, "err", err)
	} else {
		loc.Date = &date
	}
	modified, err := resolveLocalTime(post.Modified, post.ModifiedGMT)
	if err != nil {
		slog.Warn("unparseable modified timestamp", "slug", loc.Slug, "err", err)
	} else {
		loc.Modified = &modified
	}

	loc.ID = &listing.IDSet{Blog: post.ID}
	return len(loc.Content.A), nil
}

func (s Service) applyAnchor(ctx context.Context, loc *listing.Location, a htmlutil.Anchor, force bool) {
	switch classifyAnchor(s.opts.Rules, a) {
	case classReview:
		if force || loc.URL.Yelp == "" {
			loc.URL.Yelp = a.Href
		}
	case classMaps:
		if force || loc.URL.Maps == "" {
			loc.URL.Maps = a.Href
			// the link text is most often the street address
			loc.RawAddress = a.Name
		}
	case classSocial, classTransit, classThumbnail:
	case classExtra:
		found := -1
		for i, entry := range loc.Content.A {
			if entry.Href == a.Href {
				found = i
				break
			}
		}
		if force && found >= 0 {
			loc.Content.A = append(loc.Content.A[:found], loc.Content.A[found+1:]...)
			found = -1
		}
		if found >= 0 {
			return
		}

		status := 0
		if s.opts.Blog != nil {
			status = s.opts.Blog.CheckLink(ctx, a.Href)
		}
		if status == 0 || status >= 400 {
			slog.Warn("extra link looks dead", "slug", loc.Slug, "url", a.Href, "status", status)
		}
		loc.Content.A = append(loc.Content.A, listing.Link{
			Name:       a.Name,
			Href:       a.Href,
			StatusCode: status,
		})
	}
}
