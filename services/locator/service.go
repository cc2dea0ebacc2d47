// Package locator orchestrates the listing pipeline: parse the master
// listing, match each location to a blog article, download the article
// record, scrape its body. Progress is checkpointed to sqlite after
// every entity so an interrupted run resumes where it stopped.
package locator

import (
	"context"
	"database/sql"
	"io"

	"restaurant-locator/lib/listing"
	"restaurant-locator/lib/rategate"
	"restaurant-locator/lib/search"
	locatordb "restaurant-locator/services/locator/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/locator")

// BlogAPI is the slice of the blog client the pipeline depends on.
type BlogAPI interface {
	PostsBySlug(ctx context.Context, slug string) ([]byte, error)
	CheckLink(ctx context.Context, href string) int
}

type Options struct {
	Search search.Provider
	Blog   BlogAPI
	// SearchSite restricts match queries, e.g. "example.com".
	SearchSite string
	SearchGate *rategate.Gate
	FetchGate  *rategate.Gate
	Rules      LinkRules
	// FillDescriptions converts the article body to markdown and
	// uses it as the location description when the listing had none.
	FillDescriptions bool
}

type Service struct {
	db   *sql.DB
	qry  *locatordb.Queries
	opts Options
}

func NewService(database *sql.DB, opts Options) Service {
	if opts.Rules == (LinkRules{}) {
		opts.Rules = DefaultLinkRules
	}
	return Service{
		db:   database,
		qry:  locatordb.New(database),
		opts: opts,
	}
}

type ImportStats struct {
	Cuisines  int
	Locations int
}

// ImportListing parses a master listing and stores both collections.
// Slugs already present keep their stored document, so re-importing
// never clobbers enrichment results of previous runs.
func (s Service) ImportListing(ctx context.Context, r io.Reader) (ImportStats, error) {
	ctx, span := tracer.Start(ctx, "ImportListing")
	defer span.End()

	registry, err := listing.NewParser().Parse(r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ImportStats{}, err
	}

	cuisines := registry.Cuisines()
	locations := registry.Locations()
	span.SetAttributes(
		attribute.Int("cuisines", len(cuisines)),
		attribute.Int("locations", len(locations)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ImportStats{}, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	for i, c := range cuisines {
		err := upsertCuisine(ctx, txqry, c, int64(i))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return ImportStats{}, err
		}
	}
	for i, l := range locations {
		err := importLocation(ctx, txqry, l, int64(i))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return ImportStats{}, err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return ImportStats{}, err
	}
	return ImportStats{Cuisines: len(cuisines), Locations: len(locations)}, nil
}

// ResetListing drops both stored collections, enrichment results
// included. Meant for re-importing a listing from scratch.
func (s Service) ResetListing(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "ResetListing")
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.ClearListing(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	err = txqry.ClearLocations(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Cuisines returns the stored cuisine collection in listing order.
func (s Service) Cuisines(ctx context.Context) ([]*listing.Cuisine, error) {
	return s.loadCuisines(ctx)
}

// Locations returns the stored location collection in listing order.
func (s Service) Locations(ctx context.Context) ([]*listing.Location, error) {
	locations, _, err := s.loadLocations(ctx)
	return locations, err
}
