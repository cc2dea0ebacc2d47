package locator

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"restaurant-locator/lib/listing"
	locatordb "restaurant-locator/services/locator/db"
)

func upsertCuisine(ctx context.Context, qry *locatordb.Queries, c *listing.Cuisine, position int64) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return qry.UpsertCuisine(ctx, locatordb.UpsertCuisineParams{
		Slug:     c.Slug,
		Position: position,
		Data:     string(data),
	})
}

// importLocation keeps the stored document when the slug already
// exists, only the position follows the new listing order.
func importLocation(ctx context.Context, qry *locatordb.Queries, l *listing.Location, position int64) error {
	existing, err := qry.GetLocation(ctx, l.Slug)
	if err == nil {
		return qry.UpsertLocation(ctx, locatordb.UpsertLocationParams{
			Slug:      existing.Slug,
			Position:  position,
			Data:      existing.Data,
			HasMatch:  existing.HasMatch,
			HasPost:   existing.HasPost,
			HasScrape: existing.HasScrape,
		})
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return qry.UpsertLocation(ctx, locatordb.UpsertLocationParams{
		Slug:     l.Slug,
		Position: position,
		Data:     string(data),
	})
}

func (s Service) loadCuisines(ctx context.Context) ([]*listing.Cuisine, error) {
	rows, err := s.qry.GetCuisines(ctx)
	if err != nil {
		return nil, err
	}
	cuisines := make([]*listing.Cuisine, 0, len(rows))
	for _, row := range rows {
		var c listing.Cuisine
		err := json.Unmarshal([]byte(row.Data), &c)
		if err != nil {
			return nil, err
		}
		cuisines = append(cuisines, &c)
	}
	return cuisines, nil
}

func (s Service) loadLocations(ctx context.Context) ([]*listing.Location, []int64, error) {
	rows, err := s.qry.GetLocations(ctx)
	if err != nil {
		return nil, nil, err
	}
	locations := make([]*listing.Location, 0, len(rows))
	positions := make([]int64, 0, len(rows))
	for _, row := range rows {
		var l listing.Location
		err := json.Unmarshal([]byte(row.Data), &l)
		if err != nil {
			return nil, nil, err
		}
		locations = append(locations, &l)
		positions = append(positions, row.Position)
	}
	return locations, positions, nil
}

// saveLocation checkpoints a single document along with its
// completion markers.
func (s Service) saveLocation(ctx context.Context, l *listing.Location, position int64) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return s.qry.UpsertLocation(ctx, locatordb.UpsertLocationParams{
		Slug:      l.Slug,
		Position:  position,
		Data:      string(data),
		HasMatch:  l.HasMatch(),
		HasPost:   l.HasPost(),
		HasScrape: l.HasScrape(),
	})
}
