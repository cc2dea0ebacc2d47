package locator

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/codes"
)

// Export writes cuisines.json and locations.json into dir. The opaque
// blogData payload is stripped from locations unless asked for, it
// dwarfs everything else in the document.
func (s Service) Export(ctx context.Context, dir string, includeBlogData bool) error {
	ctx, span := tracer.Start(ctx, "Export")
	defer span.End()

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cuisines, err := s.loadCuisines(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	locations, _, err := s.loadLocations(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if !includeBlogData {
		for _, loc := range locations {
			loc.BlogData = nil
		}
	}

	locationUri := filepath.Join(dir, "locations.json")
	err = writeJson(locationUri, locations)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	slog.Info("exported locations", "path", locationUri, "count", len(locations))

	cuisineUri := filepath.Join(dir, "cuisines.json")
	err = writeJson(cuisineUri, cuisines)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	slog.Info("exported cuisines", "path", cuisineUri, "count", len(cuisines))

	return nil
}

func writeJson(path string, value any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
