package listing

import "log/slog"

// Registry stores committed documents in insertion order, unique by
// slug. The first committed document with a given slug wins, later
// ones are discarded with a notice.
type Registry struct {
	cuisines      []*Cuisine
	locations     []*Location
	cuisineSlugs  map[string]struct{}
	locationSlugs map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		cuisineSlugs:  map[string]struct{}{},
		locationSlugs: map[string]struct{}{},
	}
}

func (r *Registry) CommitCuisine(c *Cuisine) bool {
	if _, ok := r.cuisineSlugs[c.Slug]; ok {
		slog.Info("cuisine slug already exists, not recording", "slug", c.Slug)
		return false
	}
	r.cuisineSlugs[c.Slug] = struct{}{}
	r.cuisines = append(r.cuisines, c)
	return true
}

func (r *Registry) CommitLocation(l *Location) bool {
	if _, ok := r.locationSlugs[l.Slug]; ok {
		slog.Info("location slug already exists, not recording", "slug", l.Slug)
		return false
	}
	r.locationSlugs[l.Slug] = struct{}{}
	r.locations = append(r.locations, l)
	return true
}

// Cuisines returns the ordered cuisine collection. The slice is shared,
// callers must not reorder it.
func (r *Registry) Cuisines() []*Cuisine { return r.cuisines }

func (r *Registry) Locations() []*Location { return r.locations }
